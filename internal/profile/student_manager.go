package profile

import (
	"context"
	"sync"

	"campushub_client/internal/api"
	"campushub_client/internal/logger"
	"campushub_client/internal/models"
	"campushub_client/internal/notify"
	"campushub_client/internal/validator"
	"campushub_client/pkg/apperrors"
)

// StudentState - снимок состояния менеджера профиля студента
type StudentState struct {
	Profile              *models.StudentProfile
	Loading              bool
	Err                  error
	CompletionSteps      map[string]bool
	CompletionPercentage int
}

// StudentManager владеет документом профиля студента и картой заполненности.
// Views только читают State() и зовут операции - прямых мутаций нет.
type StudentManager struct {
	mu       sync.Mutex
	api      *api.StudentProfileAPI
	notifier notify.Notifier
	limits   UploadLimits

	state StudentState
}

func NewStudentManager(profileAPI *api.StudentProfileAPI, notifier notify.Notifier, limits UploadLimits) *StudentManager {
	return &StudentManager{
		api:      profileAPI,
		notifier: notifier,
		limits:   limits,
	}
}

// State возвращает снимок текущего состояния
func (m *StudentManager) State() StudentState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// GetProfile загружает профиль и обновляет карту заполненности.
// Все известные секции заполняются дефолтами, чтобы потребители
// никогда не видели nil для известного поля.
func (m *StudentManager) GetProfile(ctx context.Context) error {
	return m.fetchProfile(ctx, true)
}

// UpdatePersonalInfo сохраняет контактную секцию и делает полный refetch
func (m *StudentManager) UpdatePersonalInfo(ctx context.Context, info *models.PersonalInfo) error {
	m.dispatchRequest()

	if err := m.api.UpdatePersonalInfo(ctx, info); err != nil {
		return m.fail("update_personal_info", err)
	}

	return m.fetchProfile(ctx, true)
}

// UpdateAcademicInfo сохраняет учебную секцию и делает полный refetch
func (m *StudentManager) UpdateAcademicInfo(ctx context.Context, info *models.AcademicInfo) error {
	m.dispatchRequest()

	if err := m.api.UpdateAcademicInfo(ctx, info); err != nil {
		return m.fail("update_academic_info", err)
	}

	return m.fetchProfile(ctx, true)
}

// UpdatePreferences накладывает частичное обновление на текущие настройки
// ПЕРЕД отправкой: обновление только notificationSettings не должно стереть
// несвязанные подгруппы. Отправляется полный merged-объект.
func (m *StudentManager) UpdatePreferences(ctx context.Context, patch *models.PreferencesPatch) error {
	m.mu.Lock()
	base := models.DefaultPreferences()
	if m.state.Profile != nil && m.state.Profile.Preferences != nil {
		base = *m.state.Profile.Preferences
	}
	m.mu.Unlock()

	merged := models.ApplyPatch(base, patch)

	m.dispatchRequest()

	if err := m.api.UpdatePreferences(ctx, &merged); err != nil {
		return m.fail("update_preferences", err)
	}

	return m.fetchProfile(ctx, true)
}

// UploadDocument - pre-flight проверка файла, multipart POST, полный refetch
func (m *StudentManager) UploadDocument(ctx context.Context, upload *api.DocumentUpload) error {
	if !models.IsAllowedDocumentType(models.DocumentType(upload.DocumentType), models.StudentDocumentTypes) {
		err := apperrors.ErrInvalidDocumentType
		m.notifier.Notify(notify.LevelError, apperrors.UserMessage(err))
		return err
	}
	if err := validator.ValidateUpload(upload.ContentType, upload.Size, m.limits.MaxSize, m.limits.AllowedTypes); err != nil {
		m.notifier.Notify(notify.LevelError, apperrors.UserMessage(err))
		return err
	}

	m.dispatchRequest()

	if err := m.api.UploadDocument(ctx, upload); err != nil {
		return m.fail("upload_document", err)
	}

	return m.fetchProfile(ctx, true)
}

// DeleteDocument удаляет документ и делает полный refetch
func (m *StudentManager) DeleteDocument(ctx context.Context, documentID string) error {
	m.dispatchRequest()

	if err := m.api.DeleteDocument(ctx, documentID); err != nil {
		return m.fail("delete_document", err)
	}

	return m.fetchProfile(ctx, true)
}

// GetCompletionSteps запрашивает карту заполненности, сохраняет ее и
// возвращает payload синхронно - вызывающему не нужно ждать re-render.
func (m *StudentManager) GetCompletionSteps(ctx context.Context) (*models.Completion, error) {
	completion, err := m.api.GetCompletionSteps(ctx)
	if err != nil {
		logger.StateLog("student_profile", "get_completion_steps", err)
		return nil, err
	}

	if completion.CompletionSteps == nil {
		// Сервер не прислал карту - best-effort локальный снимок
		completion = m.localCompletion()
	}

	m.dispatchCompletion(completion)
	return completion, nil
}

// Clear сбрасывает состояние менеджера (вызывается при очистке сессии)
func (m *StudentManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StudentState{}
	logger.StateLog("student_profile", "clear", nil)
}

// --- Внутренние переходы state-машины ---

// fetchProfile - SUCCESS-путь всех операций: профиль с сервера,
// нормализация секций и (кроме refreshCompletion=false) обновление карты.
func (m *StudentManager) fetchProfile(ctx context.Context, refreshCompletion bool) error {
	m.dispatchRequest()

	p, err := m.api.GetProfile(ctx)
	if err != nil {
		return m.fail("get_profile", err)
	}
	p.Normalize()

	m.dispatchSuccess(p)

	if refreshCompletion {
		if _, err := m.GetCompletionSteps(ctx); err != nil {
			// Карта устарела, но профиль валиден: локальный снимок
			m.dispatchCompletion(m.localCompletion())
		}
	}

	return nil
}

// localCompletion строит карту без похода на сервер: карта из самого
// профиля авторитетна, деривация - запасной путь для ее отсутствия.
func (m *StudentManager) localCompletion() *models.Completion {
	m.mu.Lock()
	defer m.mu.Unlock()

	var steps map[string]bool
	if m.state.Profile != nil {
		steps = m.state.Profile.CompletionSteps
	}
	if steps == nil {
		steps = DeriveStudentCompletion(m.state.Profile)
	}

	return &models.Completion{
		CompletionSteps:      steps,
		CompletionPercentage: Percentage(steps),
	}
}

func (m *StudentManager) dispatchRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = true
}

func (m *StudentManager) dispatchSuccess(p *models.StudentProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Profile = p
	m.state.Err = nil
	m.state.Loading = false

	// Сервер прислал карту прямо в профиле - она авторитетна
	if p.CompletionSteps != nil {
		m.state.CompletionSteps = p.CompletionSteps
		m.state.CompletionPercentage = Percentage(p.CompletionSteps)
	}
}

func (m *StudentManager) dispatchCompletion(c *models.Completion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.CompletionSteps = c.CompletionSteps
	m.state.CompletionPercentage = c.CompletionPercentage
}

// fail - ERROR-переход: error установлен, профиль не трогается,
// одно user-visible уведомление, ошибка возвращается вызывающему
// (ему нужно остановить спиннер сохранения).
func (m *StudentManager) fail(action string, err error) error {
	m.mu.Lock()
	m.state.Err = err
	m.state.Loading = false
	m.mu.Unlock()

	logger.StateLog("student_profile", action, err)
	m.notifier.Notify(notify.LevelError, apperrors.UserMessage(err))
	return err
}
