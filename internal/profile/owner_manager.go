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

// OwnerState - снимок состояния менеджера профиля владельца
type OwnerState struct {
	Profile              *models.OwnerProfile
	Loading              bool
	Err                  error
	CompletionSteps      map[string]bool
	CompletionPercentage int
}

// OwnerManager - та же state-машина, что и у студента, но для владельца:
// добавляются бизнес-секция, платежная секция и изображение профиля.
type OwnerManager struct {
	mu       sync.Mutex
	api      *api.OwnerProfileAPI
	notifier notify.Notifier
	limits   UploadLimits

	state OwnerState
}

func NewOwnerManager(profileAPI *api.OwnerProfileAPI, notifier notify.Notifier, limits UploadLimits) *OwnerManager {
	return &OwnerManager{
		api:      profileAPI,
		notifier: notifier,
		limits:   limits,
	}
}

// State возвращает снимок текущего состояния
func (m *OwnerManager) State() OwnerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// GetProfile загружает профиль и обновляет карту заполненности
func (m *OwnerManager) GetProfile(ctx context.Context) error {
	return m.fetchProfile(ctx, true)
}

// UpdatePersonalInfo сохраняет контактную секцию и делает полный refetch
func (m *OwnerManager) UpdatePersonalInfo(ctx context.Context, info *models.PersonalInfo) error {
	m.dispatchRequest()

	if err := m.api.UpdatePersonalInfo(ctx, info); err != nil {
		return m.fail("update_personal_info", err)
	}

	return m.fetchProfile(ctx, true)
}

// UpdateBusinessInfo сохраняет бизнес-секцию и делает полный refetch
func (m *OwnerManager) UpdateBusinessInfo(ctx context.Context, info *models.BusinessInfo) error {
	m.dispatchRequest()

	if err := m.api.UpdateBusinessInfo(ctx, info); err != nil {
		return m.fail("update_business_info", err)
	}

	return m.fetchProfile(ctx, true)
}

// UpdatePaymentInfo сохраняет платежную секцию и делает полный refetch
func (m *OwnerManager) UpdatePaymentInfo(ctx context.Context, info *models.PaymentInfo) error {
	m.dispatchRequest()

	if err := m.api.UpdatePaymentInfo(ctx, info); err != nil {
		return m.fail("update_payment_info", err)
	}

	return m.fetchProfile(ctx, true)
}

// UpdatePreferences - merge частичного обновления поверх текущих настроек
// перед отправкой, затем полный refetch (см. StudentManager)
func (m *OwnerManager) UpdatePreferences(ctx context.Context, patch *models.PreferencesPatch) error {
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
func (m *OwnerManager) UploadDocument(ctx context.Context, upload *api.DocumentUpload) error {
	if !models.IsAllowedDocumentType(models.DocumentType(upload.DocumentType), models.OwnerDocumentTypes) {
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
func (m *OwnerManager) DeleteDocument(ctx context.Context, documentID string) error {
	m.dispatchRequest()

	if err := m.api.DeleteDocument(ctx, documentID); err != nil {
		return m.fail("delete_document", err)
	}

	return m.fetchProfile(ctx, true)
}

// UpdateProfileImage загружает изображение и перечитывает ТОЛЬКО профиль:
// изображение не влияет на карту заполненности.
func (m *OwnerManager) UpdateProfileImage(ctx context.Context, upload *api.ImageUpload) error {
	if err := validator.ValidateUpload(upload.ContentType, upload.Size, m.limits.MaxSize, m.limits.AllowedTypes); err != nil {
		m.notifier.Notify(notify.LevelError, apperrors.UserMessage(err))
		return err
	}

	m.dispatchRequest()

	if err := m.api.UpdateProfileImage(ctx, upload); err != nil {
		return m.fail("update_profile_image", err)
	}

	return m.fetchProfile(ctx, false)
}

// GetCompletionSteps запрашивает карту заполненности, сохраняет и
// возвращает payload синхронно
func (m *OwnerManager) GetCompletionSteps(ctx context.Context) (*models.Completion, error) {
	completion, err := m.api.GetCompletionSteps(ctx)
	if err != nil {
		logger.StateLog("owner_profile", "get_completion_steps", err)
		return nil, err
	}

	if completion.CompletionSteps == nil {
		completion = m.localCompletion()
	}

	m.dispatchCompletion(completion)
	return completion, nil
}

// Clear сбрасывает состояние менеджера (вызывается при очистке сессии)
func (m *OwnerManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = OwnerState{}
	logger.StateLog("owner_profile", "clear", nil)
}

// --- Внутренние переходы state-машины ---

func (m *OwnerManager) fetchProfile(ctx context.Context, refreshCompletion bool) error {
	m.dispatchRequest()

	p, err := m.api.GetProfile(ctx)
	if err != nil {
		return m.fail("get_profile", err)
	}
	p.Normalize()

	m.dispatchSuccess(p)

	if refreshCompletion {
		if _, err := m.GetCompletionSteps(ctx); err != nil {
			m.dispatchCompletion(m.localCompletion())
		}
	}

	return nil
}

// localCompletion строит карту без похода на сервер: карта из самого
// профиля авторитетна, деривация - запасной путь для ее отсутствия.
func (m *OwnerManager) localCompletion() *models.Completion {
	m.mu.Lock()
	defer m.mu.Unlock()

	var steps map[string]bool
	if m.state.Profile != nil {
		steps = m.state.Profile.CompletionSteps
	}
	if steps == nil {
		steps = DeriveOwnerCompletion(m.state.Profile)
	}

	return &models.Completion{
		CompletionSteps:      steps,
		CompletionPercentage: Percentage(steps),
	}
}

func (m *OwnerManager) dispatchRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = true
}

func (m *OwnerManager) dispatchSuccess(p *models.OwnerProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Profile = p
	m.state.Err = nil
	m.state.Loading = false

	if p.CompletionSteps != nil {
		m.state.CompletionSteps = p.CompletionSteps
		m.state.CompletionPercentage = Percentage(p.CompletionSteps)
	}
}

func (m *OwnerManager) dispatchCompletion(c *models.Completion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.CompletionSteps = c.CompletionSteps
	m.state.CompletionPercentage = c.CompletionPercentage
}

func (m *OwnerManager) fail(action string, err error) error {
	m.mu.Lock()
	m.state.Err = err
	m.state.Loading = false
	m.mu.Unlock()

	logger.StateLog("owner_profile", action, err)
	m.notifier.Notify(notify.LevelError, apperrors.UserMessage(err))
	return err
}
