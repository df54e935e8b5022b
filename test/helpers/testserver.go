package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"campushub_client/internal/config"
	"campushub_client/internal/devserver"

	"github.com/gin-gonic/gin"
)

// TestServer оборачивает dev-сервер в httptest
type TestServer struct {
	Server *httptest.Server
	Dev    *devserver.Server
}

// NewTestServer поднимает dev-сервер и переводит глобальный конфиг
// клиента в тестовый режим (storage=memory, base_url=httptest).
func NewTestServer(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	devCfg := &config.Config{}
	devCfg.DevServer.JWTSecret = "my_super_secret_key_for_tests_12345"
	devCfg.DevServer.TokenTTL = 60

	dev := devserver.NewServer(devCfg)
	server := httptest.NewServer(dev.SetupRouter())

	// Конфиг клиента читается из окружения; URL известен только после
	// старта httptest, поэтому загружаем его здесь.
	os.Setenv("API_BASE_URL", server.URL)
	os.Setenv("CLIENT_ENV", "test")
	os.Setenv("JWT_SECRET", devCfg.DevServer.JWTSecret)
	config.LoadConfig()

	return &TestServer{
		Server: server,
		Dev:    dev,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

// CurrentOTP достает последний выданный код из хранилища dev-сервера -
// тестовая замена почтового ящика.
func (ts *TestServer) CurrentOTP(t *testing.T, email string) string {
	code := ts.Dev.Store().CurrentOTP(email)
	if code == "" {
		t.Fatalf("Для %s нет выданного OTP-кода", email)
	}
	return code
}

// SendRequest шлет сырой HTTP-запрос на dev-сервер (мимо клиентского SDK)
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
