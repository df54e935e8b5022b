package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Client struct {
		Env         string `yaml:"env"`
		StoragePath string `yaml:"storage_path"` // Каталог для durable session storage
	} `yaml:"client"`

	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout int    `yaml:"timeout"` // seconds
	} `yaml:"api"`

	OTP struct {
		Length         int `yaml:"length"`          // Длина кода подтверждения
		ResendCooldown int `yaml:"resend_cooldown"` // Секунды до повторной отправки
	} `yaml:"otp"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // Max file size in bytes
		AllowedTypes []string `yaml:"allowed_types"` // Allowed MIME types
	} `yaml:"upload"`

	DevServer struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		JWTSecret string `yaml:"jwt_secret"`
		TokenTTL  int    `yaml:"token_ttl"` // minutes
	} `yaml:"dev_server"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	apiURL := os.Getenv("API_BASE_URL")
	clientEnv := os.Getenv("CLIENT_ENV")
	storagePath := os.Getenv("SESSION_STORAGE_PATH")
	jwtSecret := os.Getenv("JWT_SECRET")

	if apiURL == "" {
		log.Println("Загрузка из config.yaml (режим НЕ-тест)")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из ПЕРЕМЕННЫХ ОКРУЖЕНИЯ (режим теста)")

	cfg.API.BaseURL = apiURL
	cfg.Client.Env = clientEnv
	cfg.Client.StoragePath = storagePath
	cfg.API.Timeout, _ = strconv.Atoi(os.Getenv("API_TIMEOUT"))
	cfg.DevServer.JWTSecret = jwtSecret
	cfg.DevServer.TokenTTL = 60

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults заполняет обязательные значения, если они не заданы
func applyDefaults(cfg *Config) {
	if cfg.Client.StoragePath == "" {
		cfg.Client.StoragePath = "./.campushub"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 15
	}
	if cfg.OTP.Length == 0 {
		cfg.OTP.Length = 6
	}
	if cfg.OTP.ResendCooldown == 0 {
		cfg.OTP.ResendCooldown = 60
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/webp", "application/pdf",
		}
	}
	if cfg.DevServer.Port == 0 {
		cfg.DevServer.Port = 4000
	}
	if cfg.DevServer.JWTSecret == "" {
		cfg.DevServer.JWTSecret = "dev-secret"
	}
	if cfg.DevServer.TokenTTL == 0 {
		cfg.DevServer.TokenTTL = 60
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
