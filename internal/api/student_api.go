package api

import (
	"context"
	"mime/multipart"

	"campushub_client/internal/models"
)

// StudentProfileAPI - вызовы /student/profile/*
type StudentProfileAPI struct {
	client *Client
}

func NewStudentProfileAPI(client *Client) *StudentProfileAPI {
	return &StudentProfileAPI{client: client}
}

func (a *StudentProfileAPI) GetProfile(ctx context.Context) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := a.client.doJSON(ctx, "GET", "/student/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *StudentProfileAPI) GetCompletionSteps(ctx context.Context) (*models.Completion, error) {
	var completion models.Completion
	if err := a.client.doJSON(ctx, "GET", "/student/profile/completion-steps", nil, &completion); err != nil {
		return nil, err
	}
	return &completion, nil
}

func (a *StudentProfileAPI) UpdatePersonalInfo(ctx context.Context, info *models.PersonalInfo) error {
	return a.client.doJSON(ctx, "PUT", "/student/profile/personal", info, nil)
}

func (a *StudentProfileAPI) UpdateAcademicInfo(ctx context.Context, info *models.AcademicInfo) error {
	return a.client.doJSON(ctx, "PUT", "/student/profile/academic", info, nil)
}

func (a *StudentProfileAPI) UpdatePreferences(ctx context.Context, prefs *models.Preferences) error {
	return a.client.doJSON(ctx, "PUT", "/student/profile/preferences", prefs, nil)
}

func (a *StudentProfileAPI) UploadDocument(ctx context.Context, upload *DocumentUpload) error {
	return a.client.doMultipart(ctx, "POST", "/student/profile/documents", func(w *multipart.Writer) error {
		if err := w.WriteField("type", upload.DocumentType); err != nil {
			return err
		}
		return writeFilePart(w, "document", upload.FileName, upload.ContentType, upload.Content)
	}, nil)
}

func (a *StudentProfileAPI) DeleteDocument(ctx context.Context, documentID string) error {
	return a.client.doJSON(ctx, "DELETE", "/student/profile/documents/"+documentID, nil, nil)
}
