package logger

import (
	"log/slog"
	"os"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	log *slog.Logger
)

// Init инициализирует глобальный логгер
// env: "development" или "production"
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true, // Добавляет файл и строку где вызван лог
	}

	if env == "development" {
		// Development: читаемый текстовый формат
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Production: JSON формат для парсинга
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	l := slog.New(handler)
	slog.SetDefault(l) // Устанавливаем как default для всего приложения

	mu.Lock()
	log = l
	mu.Unlock()
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	mu.Lock()
	l := log
	mu.Unlock()
	if l == nil {
		// Fallback если Init не вызван
		Init("development")
		mu.Lock()
		l = log
		mu.Unlock()
	}
	return l
}

// ============================================
// Convenience функции для быстрого логирования
// ============================================

// Debug логирует debug сообщение
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info логирует info сообщение
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn логирует warning сообщение
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error логирует error сообщение
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует fatal ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// ============================================
// Логирование с дополнительными полями
// ============================================

// With создает новый логгер с дополнительными полями
// Пример: logger.With("user_id", 123, "action", "login").Info("user logged in")
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WithError создает логгер с полем error
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}

// ============================================
// Специализированные логгеры
// ============================================

// APILog логирует запрос к удаленному API
func APILog(method, path string, status int, duration time.Duration, requestID string) {
	fields := []any{
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
		"request_id", requestID,
	}

	if status >= 400 {
		GetLogger().Warn("api request failed", fields...)
	} else {
		GetLogger().Debug("api request", fields...)
	}
}

// StateLog логирует переход состояния в менеджерах (session, profile)
func StateLog(manager, action string, err error) {
	fields := []any{
		"manager", manager,
		"action", action,
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("state transition failed", fields...)
	} else {
		GetLogger().Debug("state transition", fields...)
	}
}
