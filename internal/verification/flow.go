package verification

import (
	"context"
	"sync"
	"time"

	"campushub_client/internal/api"
	"campushub_client/internal/logger"
	"campushub_client/internal/notify"
	"campushub_client/internal/roles"
	"campushub_client/internal/session"
	"campushub_client/pkg/apperrors"
)

// State - состояние flow верификации email
type State string

const (
	StateCollecting State = "collecting"
	StateSubmitting State = "submitting"
	StateVerified   State = "verified"
	StateFailed     State = "failed"
)

// Flow - state-машина верификации email: сбор кода по ячейкам,
// отправка, промоут сессии и маршрут на роль-специфичный landing.
type Flow struct {
	mu       sync.Mutex
	state    State
	email    string
	input    *CodeInput
	resend   *ResendGate
	session  session.Manager
	auth     *api.AuthAPI
	notifier notify.Notifier
}

// NewFlow разрешает целевой email: сначала pending-запись, затем активный
// (залогиненный, но неверифицированный) пользователь. Если нет ни того,
// ни другого - верифицировать нечего, вызывающий уходит на логин.
func NewFlow(sessionMgr session.Manager, authAPI *api.AuthAPI, notifier notify.Notifier, codeLength int, resendCooldown time.Duration) (*Flow, error) {
	email := ""
	if pending := sessionMgr.PendingUser(); pending != nil {
		email = pending.Email
	} else if snap := sessionMgr.State(); snap.User != nil && !snap.User.IsVerified {
		email = snap.User.Email
	}

	if email == "" {
		return nil, apperrors.ErrNoPendingVerification
	}

	return &Flow{
		state:    StateCollecting,
		email:    email,
		input:    NewCodeInput(codeLength),
		resend:   NewResendGate(resendCooldown),
		session:  sessionMgr,
		auth:     authAPI,
		notifier: notifier,
	}, nil
}

// Email возвращает адрес, который подтверждается
func (f *Flow) Email() string {
	return f.email
}

// Input возвращает ячейки ввода кода
func (f *Flow) Input() *CodeInput {
	return f.input
}

// Resend возвращает gate повторной отправки
func (f *Flow) Resend() *ResendGate {
	return f.resend
}

// State возвращает текущее состояние flow
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit отправляет код. Требуется ПОЛНЫЙ код - неполный отклоняется до
// сетевого вызова. Успех промоутит сессию и возвращает landing-маршрут.
func (f *Flow) Submit(ctx context.Context) (string, error) {
	if !f.input.IsComplete() {
		err := apperrors.ErrIncompleteCode
		f.notifier.Notify(notify.LevelError, apperrors.UserMessage(err))
		return "", err
	}

	f.setState(StateSubmitting)

	res, err := f.auth.VerifyEmail(ctx, &api.VerifyEmailRequest{
		Email: f.email,
		OTP:   f.input.Value(),
	})
	if err != nil {
		f.setState(StateFailed)
		logger.StateLog("verification", "submit", err)
		f.notifier.Notify(notify.LevelError, apperrors.UserMessage(err))
		return "", err
	}

	// Сервер подтвердил верификацию - безусловный промоут сессии
	f.session.CompleteVerification(res.Token, res.User)
	f.setState(StateVerified)

	route := roles.RouteHome
	if res.User != nil {
		route = roles.LandingRoute(res.User.UserType)
	}
	return route, nil
}

// Retry возвращает flow из Failed в Collecting с чистыми ячейками
func (f *Flow) Retry() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateFailed {
		f.state = StateCollecting
		f.input.Reset()
	}
}

// RequestResend просит новый код. Во время отсчета контрол недоступен.
func (f *Flow) RequestResend(ctx context.Context) error {
	if !f.resend.CanResend() {
		return apperrors.ErrResendCooldown
	}

	if err := f.auth.ResendOTP(ctx, f.email); err != nil {
		logger.StateLog("verification", "resend", err)
		f.notifier.Notify(notify.LevelError, apperrors.UserMessage(err))
		return err
	}

	f.resend.Arm()
	f.notifier.Notify(notify.LevelSuccess, "A new verification code has been sent")
	return nil
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}
