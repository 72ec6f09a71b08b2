package config

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"backend"`
	Server struct {
		Port         string `yaml:"port"`
		TemplatePath string `yaml:"template_path"`
		StaticPath   string `yaml:"static_path"`
	} `yaml:"server"`
	App struct {
		DefaultLang string `yaml:"default_lang"` // es | en
	} `yaml:"app"`
	Session struct {
		Secret string `yaml:"secret"` // base64-ключ (32 байта) для шифрования кук
	} `yaml:"-"`
}

// Timeout — таймаут запросов к бэкенду.
func (c *Config) Timeout() time.Duration {
	if c.Backend.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

// LoadConfig загружает конфигурацию из файлов
func LoadConfig() *Config {
	config := &Config{}

	// 1. Загружаем основной конфиг (без секретов)
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка чтения config.yaml: %v", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		log.Fatalf("Ошибка парсинга config.yaml: %v", err)
	}

	// 2. Загружаем секретный конфиг (ключ подписи сессионной куки)
	secretData, err := os.ReadFile("config.secret.yaml")
	if err != nil {
		log.Fatalf("Ошибка чтения config.secret.yaml: %v", err)
	}

	var secretConfig struct {
		Session struct {
			Secret string `yaml:"secret"`
		} `yaml:"session"`
	}

	err = yaml.Unmarshal(secretData, &secretConfig)
	if err != nil {
		log.Fatalf("Ошибка парсинга config.secret.yaml: %v", err)
	}

	// 3. Объединяем конфиги — секрет берём из секретного файла
	config.Session.Secret = secretConfig.Session.Secret

	if config.Session.Secret == "" {
		log.Fatal("Session secret is required in config.secret.yaml")
	}
	if config.Backend.BaseURL == "" {
		log.Fatal("Backend base_url is required in config.yaml")
	}

	log.Println("Конфигурация успешно загружена")
	return config
}
