package profile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"campushub_client/internal/api"
	"campushub_client/internal/models"
	"campushub_client/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

// recordingNotifier копит сообщения для проверки контракта
// "ровно одно user-visible уведомление на сбой"
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(level notify.Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, string(level)+": "+message)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

// profileStub - минимальный сервер профиля с переключателем отказа
type profileStub struct {
	mu       sync.Mutex
	profile  models.StudentProfile
	failing  bool
	noSteps  bool // completion-steps отвечает пустым объектом
	lastBody []byte
}

func (s *profileStub) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/student/profile", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.failing {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"Profile service unavailable"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(s.profile)
	})

	mux.HandleFunc("/student/profile/completion-steps", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.noSteps {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		steps := DeriveStudentCompletion(&s.profile)
		_ = json.NewEncoder(w).Encode(models.Completion{
			CompletionSteps:      steps,
			CompletionPercentage: Percentage(steps),
		})
	})

	mux.HandleFunc("/student/profile/preferences", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.lastBody = body
		var prefs models.Preferences
		if json.Unmarshal(body, &prefs) == nil {
			s.profile.Preferences = &prefs
		}
		s.mu.Unlock()
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	return mux
}

func (s *profileStub) setFailing(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = v
}

func newStubManager(t *testing.T, stub *profileStub) (*StudentManager, *recordingNotifier, func()) {
	t.Helper()
	server := httptest.NewServer(stub.handler())

	client := api.NewClient(server.URL, 5*time.Second, staticToken("tok"))
	notifier := &recordingNotifier{}
	m := NewStudentManager(api.NewStudentProfileAPI(client), notifier, UploadLimits{
		MaxSize:      1024,
		AllowedTypes: []string{"application/pdf"},
	})
	return m, notifier, server.Close
}

func TestStudentManager_ErrorKeepsStaleProfile(t *testing.T) {
	stub := &profileStub{profile: models.StudentProfile{
		ID:     "p-1",
		UserID: "u-1",
		PersonalInfo: models.PersonalInfo{
			FullName:    "Арман Студентов",
			PhoneNumber: "+77001234567",
		},
	}}
	m, notifier, closeFn := newStubManager(t, stub)
	defer closeFn()
	ctx := context.Background()

	require.NoError(t, m.GetProfile(ctx))
	require.NotNil(t, m.State().Profile)

	// Сервер упал - повторная загрузка проваливается
	stub.setFailing(true)
	err := m.GetProfile(ctx)
	require.Error(t, err)

	state := m.State()
	assert.Error(t, state.Err)
	assert.False(t, state.Loading, "после сбоя спиннер обязан остановиться")
	// Несвежие данные лучше пустого экрана
	require.NotNil(t, state.Profile)
	assert.Equal(t, "Арман Студентов", state.Profile.PersonalInfo.FullName)

	// Ровно одно уведомление на сбой, с текстом сервера
	assert.Equal(t, 1, notifier.count())
	assert.Contains(t, notifier.messages[0], "Profile service unavailable")
}

func TestStudentManager_SuccessClearsError(t *testing.T) {
	stub := &profileStub{}
	m, _, closeFn := newStubManager(t, stub)
	defer closeFn()
	ctx := context.Background()

	stub.setFailing(true)
	require.Error(t, m.GetProfile(ctx))
	require.Error(t, m.State().Err)

	stub.setFailing(false)
	require.NoError(t, m.GetProfile(ctx))
	assert.NoError(t, m.State().Err)
}

func TestStudentManager_ServerStepsInProfileAreAuthoritative(t *testing.T) {
	// Сервер прислал карту прямо в профиле, и она противоречит локальной
	// деривации (документов нет, но шаг закрыт). Выигрывает сервер.
	stub := &profileStub{profile: models.StudentProfile{
		ID: "p-1",
		CompletionSteps: map[string]bool{
			models.SectionProfile:   false,
			models.SectionAcademic:  false,
			models.SectionDocuments: true,
		},
	}}
	stub.noSteps = true
	m, _, closeFn := newStubManager(t, stub)
	defer closeFn()

	require.NoError(t, m.GetProfile(context.Background()))

	assert.True(t, m.State().CompletionSteps[models.SectionDocuments])
}

func TestStudentManager_DerivesWhenServerOmitsSteps(t *testing.T) {
	stub := &profileStub{profile: models.StudentProfile{
		ID: "p-1",
		PersonalInfo: models.PersonalInfo{
			FullName:    "Арман Студентов",
			PhoneNumber: "+77001234567",
		},
	}}
	stub.noSteps = true
	m, _, closeFn := newStubManager(t, stub)
	defer closeFn()

	require.NoError(t, m.GetProfile(context.Background()))

	state := m.State()
	assert.True(t, state.CompletionSteps[models.SectionProfile])
	assert.False(t, state.CompletionSteps[models.SectionAcademic])
	assert.Equal(t, 33, state.CompletionPercentage)
}

func TestStudentManager_UpdatePreferencesSendsFullMergedDocument(t *testing.T) {
	stub := &profileStub{}
	m, _, closeFn := newStubManager(t, stub)
	defer closeFn()
	ctx := context.Background()

	require.NoError(t, m.GetProfile(ctx))

	on := true
	require.NoError(t, m.UpdatePreferences(ctx, &models.PreferencesPatch{
		BookingSettings: &models.BookingSettingsPatch{InstantBooking: &on},
	}))

	// На провод ушел ПОЛНЫЙ документ: тронутое поле + нетронутые дефолты
	stub.mu.Lock()
	var sent models.Preferences
	require.NoError(t, json.Unmarshal(stub.lastBody, &sent))
	stub.mu.Unlock()

	assert.True(t, sent.BookingSettings.InstantBooking)
	assert.True(t, sent.NotificationSettings.EmailNotifications)
	assert.True(t, sent.DisplaySettings.ShowContactInfo)
}

func TestStudentManager_Clear(t *testing.T) {
	stub := &profileStub{profile: models.StudentProfile{ID: "p-1"}}
	m, _, closeFn := newStubManager(t, stub)
	defer closeFn()

	require.NoError(t, m.GetProfile(context.Background()))
	require.NotNil(t, m.State().Profile)

	m.Clear()

	state := m.State()
	assert.Nil(t, state.Profile)
	assert.Nil(t, state.CompletionSteps)
	assert.NoError(t, state.Err)
}
