// Package devserver поднимает локальный фейк удаленного API - с ним клиент
// работает точно так же, как с настоящим бэкендом, но без сети и базы.
package devserver

import (
	"fmt"
	"time"

	"campushub_client/internal/config"
	"campushub_client/internal/logger"
	"campushub_client/internal/models"

	"github.com/gin-gonic/gin"
)

type Server struct {
	store     *Store
	jwtSecret string
	tokenTTL  time.Duration
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		store:     NewStore(),
		jwtSecret: cfg.DevServer.JWTSecret,
		tokenTTL:  time.Duration(cfg.DevServer.TokenTTL) * time.Minute,
	}
}

// Store открывает хранилище наружу: тесты читают из него OTP-коды
// вместо почтового ящика.
func (s *Server) Store() *Store {
	return s.store
}

// SetupRouter регистрирует все HTTP маршруты.
func (s *Server) SetupRouter() *gin.Engine {
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())

	auth := ginRouter.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.POST("/verify-email", s.handleVerifyEmail)
		auth.POST("/resend-otp", s.handleResendOTP)
	}

	student := ginRouter.Group("/student/profile")
	student.Use(s.AuthMiddleware(), RequireRoles(models.UserTypeStudent))
	{
		student.GET("", s.handleStudentProfile)
		student.GET("/completion-steps", s.handleStudentCompletionSteps)
		student.PUT("/personal", s.handleStudentUpdatePersonal)
		student.PUT("/academic", s.handleStudentUpdateAcademic)
		student.PUT("/preferences", s.handleStudentUpdatePreferences)
		student.POST("/documents", s.handleStudentUploadDocument)
		student.DELETE("/documents/:id", s.handleStudentDeleteDocument)
	}

	owner := ginRouter.Group("/owner/profile")
	owner.Use(s.AuthMiddleware(), RequireOwner())
	{
		owner.GET("", s.handleOwnerProfile)
		owner.GET("/completion-steps", s.handleOwnerCompletionSteps)
		owner.PUT("/personal", s.handleOwnerUpdatePersonal)
		owner.PUT("/business", s.handleOwnerUpdateBusiness)
		owner.PUT("/payment", s.handleOwnerUpdatePayment)
		owner.PUT("/preferences", s.handleOwnerUpdatePreferences)
		owner.POST("/documents", s.handleOwnerUploadDocument)
		owner.DELETE("/documents/:id", s.handleOwnerDeleteDocument)
		owner.POST("/profileImage", s.handleOwnerUploadProfileImage)
	}

	return ginRouter
}

// Run блокирует горутину до остановки сервера.
func (s *Server) Run(cfg *config.Config) error {
	addr := fmt.Sprintf("%s:%d", cfg.DevServer.Host, cfg.DevServer.Port)
	logger.Info("Dev server listening", "addr", addr)
	return s.SetupRouter().Run(addr)
}
