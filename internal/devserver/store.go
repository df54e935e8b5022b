package devserver

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"campushub_client/internal/models"

	"github.com/google/uuid"
)

// Account - учетная запись в памяти dev-сервера
type Account struct {
	User         models.User
	PasswordHash string
}

// Store - in-memory состояние dev-сервера. Никакой БД: сервер
// существует для тестов клиента и локальной разработки.
type Store struct {
	mu sync.Mutex

	accounts map[string]*Account // email -> account
	otps     map[string]string   // email -> текущий код
	students map[string]*models.StudentProfile
	owners   map[string]*models.OwnerProfile

	rng *rand.Rand
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*Account),
		otps:     make(map[string]string),
		students: make(map[string]*models.StudentProfile),
		owners:   make(map[string]*models.OwnerProfile),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateAccount регистрирует аккаунт и пустой профиль под его роль
func (s *Store) CreateAccount(username, email, passwordHash string, userType models.UserType) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return nil, false
	}

	acc := &Account{
		User: models.User{
			ID:         uuid.NewString(),
			Username:   username,
			Email:      email,
			UserType:   userType,
			IsVerified: false,
			CreatedAt:  time.Now().UTC(),
		},
		PasswordHash: passwordHash,
	}
	s.accounts[email] = acc

	now := time.Now().UTC()
	if userType == models.UserTypeStudent {
		prefs := models.DefaultPreferences()
		s.students[acc.User.ID] = &models.StudentProfile{
			ID:          uuid.NewString(),
			UserID:      acc.User.ID,
			Preferences: &prefs,
			Documents:   []models.Document{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	} else {
		prefs := models.DefaultPreferences()
		s.owners[acc.User.ID] = &models.OwnerProfile{
			ID:          uuid.NewString(),
			UserID:      acc.User.ID,
			Preferences: &prefs,
			Documents:   []models.Document{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	return acc, true
}

// FindByEmail возвращает аккаунт по email
func (s *Store) FindByEmail(email string) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[email]
	return acc, ok
}

// FindByID возвращает аккаунт по id пользователя
func (s *Store) FindByID(userID string) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.User.ID == userID {
			return acc, true
		}
	}
	return nil, false
}

// IssueOTP генерирует и запоминает код подтверждения для email
func (s *Store) IssueOTP(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := fmt.Sprintf("%06d", s.rng.Intn(1000000))
	s.otps[email] = code
	return code
}

// CurrentOTP - тестовый хук: интеграционным тестам нужен выданный код
func (s *Store) CurrentOTP(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.otps[email]
}

// ConsumeOTP проверяет код; совпавший код одноразовый
func (s *Store) ConsumeOTP(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.otps[email]
	if !ok || current != code {
		return false
	}
	delete(s.otps, email)
	return true
}

// MarkVerified помечает аккаунт как верифицированный
func (s *Store) MarkVerified(email string) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return nil, false
	}
	acc.User.IsVerified = true
	return acc, true
}

// StudentProfile возвращает копию профиля студента по id пользователя.
// Копия, а не указатель: хендлеры сериализуют результат уже вне лока,
// пока Update*-методы мутируют оригинал.
func (s *Store) StudentProfile(userID string) (*models.StudentProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.students[userID]
	if !ok {
		return nil, false
	}
	return cloneStudentProfile(p), true
}

// OwnerProfile возвращает копию профиля владельца по id пользователя
func (s *Store) OwnerProfile(userID string) (*models.OwnerProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.owners[userID]
	if !ok {
		return nil, false
	}
	return cloneOwnerProfile(p), true
}

func cloneStudentProfile(p *models.StudentProfile) *models.StudentProfile {
	cp := *p
	if p.Preferences != nil {
		prefs := *p.Preferences
		cp.Preferences = &prefs
	}
	cp.Documents = append([]models.Document(nil), p.Documents...)
	return &cp
}

func cloneOwnerProfile(p *models.OwnerProfile) *models.OwnerProfile {
	cp := *p
	if p.Preferences != nil {
		prefs := *p.Preferences
		cp.Preferences = &prefs
	}
	cp.Documents = append([]models.Document(nil), p.Documents...)
	return &cp
}

// UpdateStudentProfile выполняет мутацию профиля под локом
func (s *Store) UpdateStudentProfile(userID string, fn func(p *models.StudentProfile)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.students[userID]
	if !ok {
		return false
	}
	fn(p)
	p.UpdatedAt = time.Now().UTC()
	return true
}

// UpdateOwnerProfile выполняет мутацию профиля под локом
func (s *Store) UpdateOwnerProfile(userID string, fn func(p *models.OwnerProfile)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.owners[userID]
	if !ok {
		return false
	}
	fn(p)
	p.UpdatedAt = time.Now().UTC()
	return true
}
