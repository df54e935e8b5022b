package integration_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"campushub_client/internal/api"
	"campushub_client/internal/models"
	"campushub_client/pkg/apperrors"
	"campushub_client/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStudentProfile_LoadAndUpdate - загрузка профиля, обновление секций
// и движение карты заполненности после каждого refetch
func TestStudentProfile_LoadAndUpdate(t *testing.T) {
	t.Parallel()

	// 1. Подготовка (Arrange)
	ts := GetTestServer(t)
	a, _ := helpers.NewTestApp(t)
	helpers.RegisterAndVerify(t, ts, a, "profstudent", "profstudent@test.com", "super_password123", "student")
	ctx := context.Background()

	// 2. Действие: первая загрузка (Act)
	require.NoError(t, a.Student.GetProfile(ctx))

	// 3. Проверка: свежий профиль пуст, но секции известны (Assert)
	state := a.Student.State()
	require.NotNil(t, state.Profile)
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
	assert.Equal(t, false, state.CompletionSteps[models.SectionProfile])
	assert.Equal(t, false, state.CompletionSteps[models.SectionAcademic])
	assert.Equal(t, false, state.CompletionSteps[models.SectionDocuments])
	assert.Equal(t, 0, state.CompletionPercentage)

	// Дефолтные предпочтения материализованы даже для пустого профиля
	require.NotNil(t, state.Profile.Preferences)
	assert.True(t, state.Profile.Preferences.NotificationSettings.EmailNotifications)
	assert.True(t, state.Profile.Preferences.DisplaySettings.ShowContactInfo)

	// --- Шаг 2: контактная секция ---
	err := a.Student.UpdatePersonalInfo(ctx, &models.PersonalInfo{
		FullName:    "Арман Студентов",
		PhoneNumber: "+77001234567",
		City:        "Almaty",
	})
	require.NoError(t, err)

	state = a.Student.State()
	assert.Equal(t, "Арман Студентов", state.Profile.PersonalInfo.FullName)
	assert.True(t, state.CompletionSteps[models.SectionProfile], "после записи секция profile должна стать заполненной")
	assert.False(t, state.CompletionSteps[models.SectionAcademic])

	// --- Шаг 3: учебная секция ---
	err = a.Student.UpdateAcademicInfo(ctx, &models.AcademicInfo{
		Institution:    "KazNU",
		StudentID:      "ST-2026-001",
		Course:         "Computer Science",
		Year:           3,
		GraduationYear: 2027,
	})
	require.NoError(t, err)

	state = a.Student.State()
	assert.True(t, state.CompletionSteps[models.SectionAcademic])
	assert.Greater(t, state.CompletionPercentage, 0)
}

// TestStudentProfile_PreferencesMerge - частичный патч не затирает
// незатронутые поля
func TestStudentProfile_PreferencesMerge(t *testing.T) {
	t.Parallel()

	// 1. Подготовка
	ts := GetTestServer(t)
	a, _ := helpers.NewTestApp(t)
	helpers.RegisterAndVerify(t, ts, a, "prefstudent", "prefstudent@test.com", "super_password123", "student")
	ctx := context.Background()

	require.NoError(t, a.Student.GetProfile(ctx))

	// 2. Действие: меняем единственное поле в одной подгруппе
	off := false
	err := a.Student.UpdatePreferences(ctx, &models.PreferencesPatch{
		NotificationSettings: &models.NotificationSettingsPatch{
			EmailNotifications: &off,
		},
	})
	require.NoError(t, err)

	// 3. Проверка: тронутое поле изменилось, соседи остались дефолтными
	prefs := a.Student.State().Profile.Preferences
	require.NotNil(t, prefs)
	assert.False(t, prefs.NotificationSettings.EmailNotifications)
	assert.True(t, prefs.NotificationSettings.BookingUpdates)
	assert.True(t, prefs.DisplaySettings.ShowProfilePublicly)
	assert.False(t, prefs.BookingSettings.InstantBooking)
}

// TestStudentProfile_Documents - загрузка и удаление документа
func TestStudentProfile_Documents(t *testing.T) {
	t.Parallel()

	// 1. Подготовка
	ts := GetTestServer(t)
	a, _ := helpers.NewTestApp(t)
	helpers.RegisterAndVerify(t, ts, a, "docstudent", "docstudent@test.com", "super_password123", "student")
	ctx := context.Background()
	require.NoError(t, a.Student.GetProfile(ctx))

	content := "%PDF-1.4 fake admission letter"

	// 2. Действие: загрузка
	err := a.Student.UploadDocument(ctx, &api.DocumentUpload{
		DocumentType: string(models.DocumentTypeAdmissionLetter),
		FileName:     "admission.pdf",
		ContentType:  "application/pdf",
		Size:         int64(len(content)),
		Content:      strings.NewReader(content),
	})
	require.NoError(t, err)

	// 3. Проверка: документ в профиле, секция documents закрыта
	state := a.Student.State()
	require.Len(t, state.Profile.Documents, 1)
	doc := state.Profile.Documents[0]
	assert.Equal(t, models.DocumentTypeAdmissionLetter, doc.Type)
	assert.True(t, state.CompletionSteps[models.SectionDocuments])

	// --- Шаг 2: удаление возвращает секцию в незаполненные ---
	require.NoError(t, a.Student.DeleteDocument(ctx, doc.ID))
	state = a.Student.State()
	assert.Len(t, state.Profile.Documents, 0)
	assert.False(t, state.CompletionSteps[models.SectionDocuments])
}

// TestStudentProfile_UploadRejections - pre-flight проверки файла
// срабатывают до сетевого вызова
func TestStudentProfile_UploadRejections(t *testing.T) {
	t.Parallel()

	// 1. Подготовка
	ts := GetTestServer(t)
	a, _ := helpers.NewTestApp(t)
	helpers.RegisterAndVerify(t, ts, a, "badupload", "badupload@test.com", "super_password123", "student")
	ctx := context.Background()

	// 2-3. Чужой для студента тип документа
	err := a.Student.UploadDocument(ctx, &api.DocumentUpload{
		DocumentType: string(models.DocumentTypeBusinessLicense),
		FileName:     "license.pdf",
		ContentType:  "application/pdf",
		Size:         10,
		Content:      strings.NewReader("0123456789"),
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDocumentType))

	// Слишком большой файл
	err = a.Student.UploadDocument(ctx, &api.DocumentUpload{
		DocumentType: string(models.DocumentTypeIDProof),
		FileName:     "huge.pdf",
		ContentType:  "application/pdf",
		Size:         100 * 1024 * 1024,
		Content:      strings.NewReader("fake"),
	})
	assert.True(t, errors.Is(err, apperrors.ErrFileTooLarge))

	// Недопустимый MIME
	err = a.Student.UploadDocument(ctx, &api.DocumentUpload{
		DocumentType: string(models.DocumentTypeIDProof),
		FileName:     "script.sh",
		ContentType:  "application/x-sh",
		Size:         10,
		Content:      strings.NewReader("#!/bin/sh"),
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidFileType))
}

// TestStudentEndpoints_RoleSeparation - студенческий токен не проходит
// на owner-маршруты
func TestStudentEndpoints_RoleSeparation(t *testing.T) {
	t.Parallel()

	// 1. Подготовка
	ts := GetTestServer(t)
	a, _ := helpers.NewTestApp(t)
	helpers.RegisterAndVerify(t, ts, a, "rolestudent", "rolestudent@test.com", "super_password123", "student")
	token := a.Session.State().Token

	// 2. Действие: студент стучится в owner-профиль
	res, body := ts.SendRequest(t, "GET", "/owner/profile", token, nil)

	// 3. Проверка
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "message")
}
