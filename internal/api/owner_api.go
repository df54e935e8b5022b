package api

import (
	"context"
	"mime/multipart"

	"campushub_client/internal/models"
)

// OwnerProfileAPI - вызовы /owner/profile/*
type OwnerProfileAPI struct {
	client *Client
}

func NewOwnerProfileAPI(client *Client) *OwnerProfileAPI {
	return &OwnerProfileAPI{client: client}
}

func (a *OwnerProfileAPI) GetProfile(ctx context.Context) (*models.OwnerProfile, error) {
	var profile models.OwnerProfile
	if err := a.client.doJSON(ctx, "GET", "/owner/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *OwnerProfileAPI) GetCompletionSteps(ctx context.Context) (*models.Completion, error) {
	var completion models.Completion
	if err := a.client.doJSON(ctx, "GET", "/owner/profile/completion-steps", nil, &completion); err != nil {
		return nil, err
	}
	return &completion, nil
}

func (a *OwnerProfileAPI) UpdatePersonalInfo(ctx context.Context, info *models.PersonalInfo) error {
	return a.client.doJSON(ctx, "PUT", "/owner/profile/personal", info, nil)
}

func (a *OwnerProfileAPI) UpdateBusinessInfo(ctx context.Context, info *models.BusinessInfo) error {
	return a.client.doJSON(ctx, "PUT", "/owner/profile/business", info, nil)
}

func (a *OwnerProfileAPI) UpdatePaymentInfo(ctx context.Context, info *models.PaymentInfo) error {
	return a.client.doJSON(ctx, "PUT", "/owner/profile/payment", info, nil)
}

func (a *OwnerProfileAPI) UpdatePreferences(ctx context.Context, prefs *models.Preferences) error {
	return a.client.doJSON(ctx, "PUT", "/owner/profile/preferences", prefs, nil)
}

func (a *OwnerProfileAPI) UploadDocument(ctx context.Context, upload *DocumentUpload) error {
	return a.client.doMultipart(ctx, "POST", "/owner/profile/documents", func(w *multipart.Writer) error {
		if err := w.WriteField("type", upload.DocumentType); err != nil {
			return err
		}
		return writeFilePart(w, "document", upload.FileName, upload.ContentType, upload.Content)
	}, nil)
}

func (a *OwnerProfileAPI) DeleteDocument(ctx context.Context, documentID string) error {
	return a.client.doJSON(ctx, "DELETE", "/owner/profile/documents/"+documentID, nil, nil)
}

func (a *OwnerProfileAPI) UpdateProfileImage(ctx context.Context, upload *ImageUpload) error {
	return a.client.doMultipart(ctx, "POST", "/owner/profile/profileImage", func(w *multipart.Writer) error {
		return writeFilePart(w, "profileImage", upload.FileName, upload.ContentType, upload.Content)
	}, nil)
}
