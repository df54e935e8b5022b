package notify

import "campushub_client/internal/logger"

// Level - тип всплывающего уведомления
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notifier - приемник user-visible уведомлений (toast/banner).
// Одна нотификация на одну неудавшуюся операцию - контракт из managers.
type Notifier interface {
	Notify(level Level, message string)
}

// LogNotifier пишет уведомления в лог (headless-режим и тесты)
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(level Level, message string) {
	switch level {
	case LevelError:
		logger.Warn("notification", "level", string(level), "message", message)
	default:
		logger.Info("notification", "level", string(level), "message", message)
	}
}
