package api

import (
	"context"

	"campushub_client/internal/models"
)

// AuthAPI - вызовы /auth, не требующие bearer-токена
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"userType" validate:"required,is-user-type"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,numeric"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AuthResponse - ответ сервера на register/login/verify-email
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (a *AuthAPI) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	var res AuthResponse
	if err := a.client.doJSON(ctx, "POST", "/auth/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *AuthAPI) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	var res AuthResponse
	if err := a.client.doJSON(ctx, "POST", "/auth/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *AuthAPI) VerifyEmail(ctx context.Context, req *VerifyEmailRequest) (*AuthResponse, error) {
	var res AuthResponse
	if err := a.client.doJSON(ctx, "POST", "/auth/verify-email", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *AuthAPI) ResendOTP(ctx context.Context, email string) error {
	return a.client.doJSON(ctx, "POST", "/auth/resend-otp", &ResendOTPRequest{Email: email}, nil)
}
