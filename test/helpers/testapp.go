package helpers

import (
	"context"
	"sync"
	"testing"

	"campushub_client/internal/api"
	"campushub_client/internal/app"
	"campushub_client/internal/models"
)

// RouteRecorder подменяет жесткую навигацию браузера: запоминает
// маршруты, которые запросил клиент.
type RouteRecorder struct {
	mu     sync.Mutex
	routes []string
}

func NewRouteRecorder() *RouteRecorder {
	return &RouteRecorder{}
}

func (r *RouteRecorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

// Last возвращает последний запрошенный маршрут ("" если не было)
func (r *RouteRecorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.routes) == 0 {
		return ""
	}
	return r.routes[len(r.routes)-1]
}

// NewTestApp собирает клиентский SDK, направленный на тестовый сервер.
// Конфиг уже загружен в NewTestServer, storage в тестовом режиме - memory.
func NewTestApp(t *testing.T) (*app.App, *RouteRecorder) {
	rec := NewRouteRecorder()
	a, err := app.New(rec.Navigate)
	if err != nil {
		t.Fatalf("Не удалось собрать клиент: %v", err)
	}
	a.Session.Restore()
	return a, rec
}

// RegisterAndVerify проводит аккаунт через полный цикл:
// регистрация -> OTP из хранилища dev-сервера -> verify-email.
func RegisterAndVerify(t *testing.T, ts *TestServer, a *app.App, username, email, password, userType string) *models.User {
	ctx := context.Background()

	user, err := a.Register(ctx, &api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
		UserType: userType,
	})
	if err != nil {
		t.Fatalf("Регистрация %s провалилась: %v", email, err)
	}
	if user.IsVerified {
		t.Fatalf("Свежий аккаунт %s не должен быть верифицирован", email)
	}

	flow, err := a.StartVerification()
	if err != nil {
		t.Fatalf("OTP-флоу для %s не открылся: %v", email, err)
	}

	code := ts.CurrentOTP(t, email)
	flow.Input().Paste(code)
	if _, err := flow.Submit(ctx); err != nil {
		t.Fatalf("Подтверждение email для %s провалилось: %v", email, err)
	}

	verified := a.Session.State().User
	if verified == nil || !verified.IsVerified {
		t.Fatalf("После verify-email ожидалась активная сессия для %s", email)
	}
	return verified
}
