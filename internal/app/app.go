// Package app собирает клиент целиком: конфиг, логгер, хранилище,
// менеджер сессии, API-клиент и менеджеры профилей.
package app

import (
	"context"
	"time"

	"campushub_client/internal/api"
	"campushub_client/internal/config"
	"campushub_client/internal/guard"
	"campushub_client/internal/logger"
	"campushub_client/internal/models"
	"campushub_client/internal/notify"
	"campushub_client/internal/profile"
	"campushub_client/internal/session"
	"campushub_client/internal/storage"
	"campushub_client/internal/validator"
	"campushub_client/internal/verification"
)

type App struct {
	Config   *config.Config
	Session  session.Manager
	Auth     *api.AuthAPI
	Student  *profile.StudentManager
	Owner    *profile.OwnerManager
	Notifier notify.Notifier

	navigate  session.Navigate
	validator *validator.Validator
}

// New собирает все зависимости клиента. Restore вызывается отдельно -
// потребитель сам решает, когда гидратировать сессию.
func New(navigate session.Navigate) (*App, error) {
	cfg := config.GetConfig()
	logger.Init(cfg.Client.Env)

	store, err := storage.NewStore(storage.Config{
		Type:     storageType(cfg),
		BasePath: cfg.Client.StoragePath,
	})
	if err != nil {
		return nil, err
	}

	sessionMgr := session.NewManager(store, navigate)

	client := api.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.Timeout)*time.Second,
		sessionMgr,
	)

	notifier := notify.NewLogNotifier()
	limits := profile.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	return &App{
		Config:    cfg,
		Session:   sessionMgr,
		Auth:      api.NewAuthAPI(client),
		Student:   profile.NewStudentManager(api.NewStudentProfileAPI(client), notifier, limits),
		Owner:     profile.NewOwnerManager(api.NewOwnerProfileAPI(client), notifier, limits),
		Notifier:  notifier,
		navigate:  navigate,
		validator: validator.New(),
	}, nil
}

func storageType(cfg *config.Config) string {
	if cfg.Client.Env == "test" {
		return "memory"
	}
	return "local"
}

// Login аутентифицирует и скармливает результат менеджеру сессии.
// Для неверифицированного аккаунта активной сессии не возникает -
// менеджер уводит его в pending.
func (a *App) Login(ctx context.Context, req *api.LoginRequest) (*models.User, error) {
	if err := a.validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := a.Auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	a.Session.Login(resp.Token, resp.User)
	return resp.User, nil
}

// Register создает аккаунт; новый пользователь всегда попадает в pending.
func (a *App) Register(ctx context.Context, req *api.RegisterRequest) (*models.User, error) {
	if err := a.validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := a.Auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	a.Session.Login(resp.Token, resp.User)
	return resp.User, nil
}

// Logout сбрасывает локальные состояния профилей и сессию. Callback
// уходит в менеджер сессии как есть: при nil тот сам делает жесткую
// навигацию на логин.
func (a *App) Logout(onComplete func()) {
	a.Student.Clear()
	a.Owner.Clear()
	a.Session.Logout(onComplete)
}

// StartVerification открывает OTP-флоу для pending (или активного
// неверифицированного) пользователя.
func (a *App) StartVerification() (*verification.Flow, error) {
	return verification.NewFlow(
		a.Session,
		a.Auth,
		a.Notifier,
		a.Config.OTP.Length,
		time.Duration(a.Config.OTP.ResendCooldown)*time.Second,
	)
}

// GuardRoute - решение о доступе к пути для текущего снимка сессии
func (a *App) GuardRoute(requestedPath string, allowedRoles []models.UserType) guard.Decision {
	return guard.Decide(a.Session.State(), requestedPath, allowedRoles)
}
