package session

import (
	"testing"
	"time"

	"campushub_client/internal/models"
	"campushub_client/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifiedUser() *models.User {
	return &models.User{
		ID:         "u-1",
		Username:   "student1",
		Email:      "student1@test.com",
		UserType:   models.UserTypeStudent,
		IsVerified: true,
	}
}

func unverifiedUser() *models.User {
	u := verifiedUser()
	u.IsVerified = false
	return u
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("unit-secret"))
	require.NoError(t, err)
	return s
}

func TestLogin_VerifiedBecomesActive(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, nil)
	m.Restore()

	m.Login("tok-1", verifiedUser())

	snap := m.State()
	require.NotNil(t, snap.User)
	assert.True(t, snap.User.IsVerified)
	assert.Nil(t, snap.PendingUser)
	assert.Equal(t, "tok-1", snap.Token)
}

func TestLogin_UnverifiedStaysPending(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, nil)
	m.Restore()

	m.Login("tok-1", unverifiedUser())

	snap := m.State()
	assert.Nil(t, snap.User, "неверифицированный пользователь не должен становиться активным")
	require.NotNil(t, snap.PendingUser)
	assert.Equal(t, "student1@test.com", snap.PendingUser.Email)
}

func TestLogin_NilUserLeavesPendingEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, nil)
	m.Restore()

	// Сервер вернул токен без пользователя: pending-слот должен остаться
	// пустым, а не декодироваться в нулевого User
	m.Login("tok-1", nil)

	snap := m.State()
	assert.Nil(t, snap.User)
	assert.Nil(t, snap.PendingUser)
	assert.Nil(t, m.PendingUser())

	second := NewManager(store, nil)
	second.Restore()
	assert.Nil(t, second.State().PendingUser)
}

func TestRestore_SurvivesProcessRestart(t *testing.T) {
	store := storage.NewMemoryStore()

	first := NewManager(store, nil)
	first.Restore()
	first.Login("tok-1", verifiedUser())

	// Новый менеджер поверх того же storage - "перезапуск процесса"
	second := NewManager(store, nil)
	assert.True(t, second.State().Loading, "до Restore сессия в состоянии загрузки")

	second.Restore()

	snap := second.State()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.User)
	assert.Equal(t, "u-1", snap.User.ID)
	assert.Equal(t, "tok-1", snap.Token)
}

func TestRestore_RunsOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, nil)
	m.Restore()
	m.Login("tok-1", verifiedUser())

	// Повторный Restore не затирает состояние, набранное после первого
	m.Restore()

	require.NotNil(t, m.State().User)
	assert.Equal(t, "tok-1", m.State().Token)
}

func TestRestore_DropsExpiredToken(t *testing.T) {
	store := storage.NewMemoryStore()

	first := NewManager(store, nil)
	first.Restore()
	expired := signedToken(t, time.Now().Add(-time.Hour))
	first.Login(expired, verifiedUser())

	second := NewManager(store, nil)
	second.Restore()

	snap := second.State()
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Token)
}

func TestRestore_KeepsPendingWithExpiredToken(t *testing.T) {
	store := storage.NewMemoryStore()

	first := NewManager(store, nil)
	first.Restore()
	expired := signedToken(t, time.Now().Add(-time.Hour))
	first.Login(expired, unverifiedUser())

	// Просроченный bearer гасит активную часть, но verify-email идет по
	// email - pending-запись обязана пережить рестарт
	second := NewManager(store, nil)
	second.Restore()

	snap := second.State()
	assert.Empty(t, snap.Token)
	require.NotNil(t, snap.PendingUser)
	assert.Equal(t, "student1@test.com", snap.PendingUser.Email)
}

func TestCompleteVerification_PromotesAndIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, nil)
	m.Restore()
	m.Login("tok-1", unverifiedUser())

	promoted := verifiedUser()
	m.CompleteVerification("tok-2", promoted)

	snap := m.State()
	require.NotNil(t, snap.User)
	assert.True(t, snap.User.IsVerified)
	assert.Nil(t, snap.PendingUser)
	assert.Equal(t, "tok-2", snap.Token)
	assert.Nil(t, m.PendingUser())

	// Повторный вызов ничего не ломает
	m.CompleteVerification("tok-2", promoted)
	assert.Equal(t, "tok-2", m.State().Token)
	require.NotNil(t, m.State().User)
}

func TestLogout_ClearsEverything(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, nil)
	m.Restore()
	m.Login("tok-1", verifiedUser())

	called := false
	m.Logout(func() { called = true })

	assert.True(t, called)
	snap := m.State()
	assert.Nil(t, snap.User)
	assert.Nil(t, snap.PendingUser)
	assert.Empty(t, snap.Token)

	// Durable storage тоже пуст - рестарт дает чистую сессию
	fresh := NewManager(store, nil)
	fresh.Restore()
	assert.Nil(t, fresh.State().User)
}

func TestLogout_NavigatesWithoutCallback(t *testing.T) {
	store := storage.NewMemoryStore()

	var route string
	m := NewManager(store, func(r string) { route = r })
	m.Restore()
	m.Login("tok-1", verifiedUser())

	m.Logout(nil)

	assert.Equal(t, "/login", route)
}

func TestPendingUser_ReadsStorageBeforeRestore(t *testing.T) {
	store := storage.NewMemoryStore()

	first := NewManager(store, nil)
	first.Restore()
	first.Login("tok-1", unverifiedUser())

	// Второй менеджер еще не гидрирован, но email для верификации доступен
	second := NewManager(store, nil)
	pending := second.PendingUser()
	require.NotNil(t, pending)
	assert.Equal(t, "student1@test.com", pending.Email)
}
