package session

import (
	"sync"
	"time"

	"campushub_client/internal/logger"
	"campushub_client/internal/models"
	"campushub_client/internal/roles"
	"campushub_client/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

// Snapshot - иммутабельный снимок состояния сессии для потребителей.
// Loading=true только до первого Restore.
type Snapshot struct {
	User        *models.User
	PendingUser *models.User
	Token       string
	Loading     bool
}

// Manager владеет process-wide состоянием аутентификации.
// Инвариант: авторитетен максимум один из {верифицированный User, PendingUser}.
type Manager interface {
	Restore()
	Login(token string, user *models.User)
	CompleteVerification(token string, user *models.User)
	Logout(onComplete func())
	PendingUser() *models.User
	State() Snapshot
	Token() string
}

// Navigate - хук жесткой навигации (fallback для Logout без callback)
type Navigate func(route string)

type ManagerImpl struct {
	mu       sync.Mutex
	store    storage.Store
	navigate Navigate

	user        *models.User
	pendingUser *models.User
	token       string
	loading     bool
	restored    bool
}

func NewManager(store storage.Store, navigate Navigate) *ManagerImpl {
	if navigate == nil {
		navigate = func(route string) {
			logger.Info("navigation requested", "route", route)
		}
	}
	return &ManagerImpl{
		store:    store,
		navigate: navigate,
		loading:  true,
	}
}

// Restore - синхронное восстановление из durable storage при старте.
// Выполняется ровно один раз за время жизни процесса.
func (m *ManagerImpl) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.restored {
		return
	}
	m.restored = true
	m.loading = false

	var token string
	if ok, err := storage.GetJSON(m.store, storage.KeyToken, &token); err != nil {
		logger.StateLog("session", "restore", err)
	} else if ok {
		m.token = token
	}

	var user models.User
	if ok, err := storage.GetJSON(m.store, storage.KeyUser, &user); err != nil {
		logger.StateLog("session", "restore", err)
	} else if ok {
		m.user = &user
	}

	var pending models.User
	if ok, err := storage.GetJSON(m.store, storage.KeyPendingVerification, &pending); err != nil {
		logger.StateLog("session", "restore", err)
	} else if ok {
		m.pendingUser = &pending
	}

	// Просроченный bearer бесполезен: активная часть сессии сбрасывается.
	// PendingUser остается - verify-email идет без авторизации, по email.
	if m.token != "" && tokenExpired(m.token) {
		logger.Warn("stored token is expired, dropping active session")
		m.token = ""
		m.user = nil
		_ = m.store.Delete(storage.KeyToken)
		_ = m.store.Delete(storage.KeyUser)
	}

	logger.StateLog("session", "restore", nil)
}

// Login сохраняет результат уже выполненного HTTP-логина.
// Верифицированный пользователь становится активным; неверифицированный
// попадает ТОЛЬКО в pending-слот - активный user не заполняется.
func (m *ManagerImpl) Login(token string, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.persist(storage.KeyToken, token)

	if user != nil && user.IsVerified {
		m.user = user
		m.pendingUser = nil
		m.persist(storage.KeyUser, user)
		_ = m.store.Delete(storage.KeyPendingVerification)
	} else {
		m.user = nil
		m.pendingUser = user
		_ = m.store.Delete(storage.KeyUser)
		// nil вместо пользователя не сериализуем: JSON null в pending-слоте
		// декодировался бы обратно в пустого User
		if user != nil {
			m.persist(storage.KeyPendingVerification, user)
		} else {
			_ = m.store.Delete(storage.KeyPendingVerification)
		}
	}

	logger.StateLog("session", "login", nil)
}

// CompleteVerification безусловно промоутит пользователя в активный слот.
// Вызывается только после подтверждения верификации сервером. Идемпотентна.
func (m *ManagerImpl) CompleteVerification(token string, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.user = user
	m.pendingUser = nil

	m.persist(storage.KeyToken, token)
	m.persist(storage.KeyUser, user)
	_ = m.store.Delete(storage.KeyPendingVerification)

	logger.StateLog("session", "complete_verification", nil)
}

// Logout очищает память и durable storage. Вызывает onComplete, если он
// передан, иначе - жесткая навигация на экран логина.
func (m *ManagerImpl) Logout(onComplete func()) {
	m.mu.Lock()

	m.user = nil
	m.pendingUser = nil
	m.token = ""
	if err := m.store.Clear(); err != nil {
		logger.StateLog("session", "logout", err)
	}

	m.mu.Unlock()

	logger.StateLog("session", "logout", nil)

	if onComplete != nil {
		onComplete()
		return
	}
	m.navigate(roles.RouteLogin)
}

// PendingUser возвращает pending-запись из durable storage.
// Читает хранилище напрямую: нужен ответ "какой email верифицировать"
// даже до того, как in-memory состояние гидрировано.
func (m *ManagerImpl) PendingUser() *models.User {
	var pending models.User
	ok, err := storage.GetJSON(m.store, storage.KeyPendingVerification, &pending)
	if err != nil {
		logger.StateLog("session", "pending_user", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &pending
}

// State возвращает снимок текущего состояния
func (m *ManagerImpl) State() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		User:        m.user,
		PendingUser: m.pendingUser,
		Token:       m.token,
		Loading:     m.loading,
	}
}

// Token возвращает текущий bearer (для API-клиента)
func (m *ManagerImpl) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// persist пишет значение в durable storage; ошибки записи не фатальны
func (m *ManagerImpl) persist(key string, value interface{}) {
	if err := storage.SetJSON(m.store, key, value); err != nil {
		logger.StateLog("session", "persist "+key, err)
	}
}

// tokenExpired делает unverified разбор claims: подпись проверяет сервер,
// клиенту нужен только exp, чтобы не таскать заведомо мертвый bearer.
func tokenExpired(tokenStr string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		// Неразборчивый токен считаем живым: авторитетен сервер, не клиент
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
