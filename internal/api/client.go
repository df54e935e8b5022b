package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"campushub_client/internal/logger"
	"campushub_client/pkg/apperrors"

	"github.com/google/uuid"
)

// TokenSource отдает текущий bearer. Реализуется session.Manager:
// только он читает durable storage с токеном.
type TokenSource interface {
	Token() string
}

// Client - базовый HTTP-клиент удаленного REST API.
// Все аутентифицированные вызовы несут bearer из TokenSource.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		tokens:     tokens,
	}
}

// errorEnvelope - формат ошибки удаленного сервиса
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// doJSON выполняет запрос с JSON-телом и декодирует ответ в out (если не nil)
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperrors.InternalError(err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart выполняет multipart/form-data запрос (загрузка файлов)
func (c *Client) doMultipart(ctx context.Context, method, path string, build func(w *multipart.Writer) error, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return apperrors.InternalError(err)
	}
	if err := w.Close(); err != nil {
		return apperrors.InternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return apperrors.InternalError(err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

// send добавляет заголовки, выполняет запрос и разбирает ответ
func (c *Client) send(req *http.Request, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.APILog(req.Method, req.URL.Path, 0, time.Since(start), requestID)
		return apperrors.NetworkError(err)
	}
	defer res.Body.Close()

	logger.APILog(req.Method, req.URL.Path, res.StatusCode, time.Since(start), requestID)

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return apperrors.NetworkError(err)
	}

	if res.StatusCode >= 400 {
		return c.decodeError(res.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperrors.Wrap(err, apperrors.CodeUnknownError, "api",
				"Unexpected response from server", res.StatusCode)
		}
	}

	return nil
}

// decodeError превращает ответ сервера в AppError.
// Сообщение сервера сохраняется, чтобы показать его пользователю.
func (c *Client) decodeError(status int, raw []byte) error {
	var envelope errorEnvelope
	_ = json.Unmarshal(raw, &envelope)

	message := envelope.Message
	if message == "" {
		message = envelope.Error
	}
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", status)
	}

	code := apperrors.CodeUnknownError
	domain := "api"
	switch status {
	case http.StatusUnauthorized:
		code = apperrors.CodeUnauthorized
		domain = "auth"
	case http.StatusForbidden:
		code = apperrors.CodeForbidden
		domain = "auth"
	case http.StatusNotFound:
		code = apperrors.CodeNotFound
	case http.StatusConflict:
		code = apperrors.CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = apperrors.CodeValidationFailed
		domain = "validation"
	case http.StatusTooManyRequests:
		code = apperrors.CodeLimitExceeded
	}

	return apperrors.New(code, domain, message, status)
}
