package config

import (
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var (
	ErrMissingAPIKey = errors.New("dial: empty API key (set DIAL_API_KEY in .env/ENV)")
	ErrMissingURL    = errors.New("dial: empty base URL (set DIAL_URL in .env/ENV)")
)

type Config struct {
	DebugMode  bool   `env:"DEBUG_MODE"`     // Режим дебага
	Stub       bool   `env:"TTI_STUB"`       // Вместо DIAL использовать заглушку (без сети для генерации)
	Deployment string `env:"TTI_DEPLOYMENT"` // Имя деплоймента модели в DIAL, напр. imagegeneration@005 или dall-e-3
	Prompt     string `env:"TTI_PROMPT"`     // Текст запроса на генерацию
	OutputDir  string `env:"TTI_OUTPUT_DIR"` // Куда сохранять картинки; пусто — текущая директория

	// Опции генерации; пустые не отправляются
	Size    string `env:"TTI_SIZE"`    // 1024x1024|1024x1792|1792x1024
	Style   string `env:"TTI_STYLE"`   // natural|vivid
	Quality string `env:"TTI_QUALITY"` // standard|hd

	Dial DialConfig
}

// DialConfig параметры подключения к DIAL. Общие для клиента модели и клиента бакета.
type DialConfig struct {
	APIKey          string        `env:"DIAL_API_KEY"`          // Ключ берём из .env/ENV
	URL             string        `env:"DIAL_URL"`              // Базовый адрес сервиса
	DeploymentsPath string        `env:"DIAL_DEPLOYMENTS_PATH"` // Путь к деплойментам, chat completions = <URL><path>/<deployment>/chat/completions
	Timeout         time.Duration `env:"DIAL_TIMEOUT"`          // Таймаут одного HTTP-запроса
}

// Validate проверяет, что заданы ключ и адрес.
func (c DialConfig) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if strings.TrimSpace(c.URL) == "" {
		return ErrMissingURL
	}
	return nil
}

// BaseURL адрес без завершающего слэша.
func (c DialConfig) BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.URL), "/")
}

// DeploymentURL базовый адрес конкретного деплоймента (со слэшем на конце).
func (c DialConfig) DeploymentURL(deployment string) string {
	path := "/" + strings.Trim(c.DeploymentsPath, "/")
	if path == "/" {
		path = ""
	}
	return c.BaseURL() + path + "/" + deployment + "/"
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode:  false,
		Deployment: "imagegeneration@005", // или "dall-e-3"
		Prompt:     "Sunny day on Bali",
		Dial: DialConfig{
			URL:             "https://ai-proxy.lab.epam.com",
			DeploymentsPath: "/openai/deployments",
			Timeout:         2 * time.Minute,
		},
	}
}

// Load стартует с дефолтов и перекрывает их .env и окружением. Флаги не трогает.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig загружает конфигурацию приложения: дефолты -> .env/ENV -> флаги.
// Позиционные аргументы после разбора доступны через flag.Args().
func NewConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	return cfg, nil
}

// BindFlags регистрирует флаги, перекрывающие значения конфигурации.
func (cfg *Config) BindFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага (подробные логи)")
	fs.BoolVar(&cfg.Stub, "stub", cfg.Stub, "использовать заглушку вместо DIAL для генерации")
	fs.StringVar(&cfg.Deployment, "deployment", cfg.Deployment, "деплоймент модели генерации изображений")
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "текст запроса на генерацию")
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "директория для сохранения картинок (пусто = текущая)")
	fs.StringVar(&cfg.Size, "size", cfg.Size, "размер: 1024x1024|1024x1792|1792x1024")
	fs.StringVar(&cfg.Style, "style", cfg.Style, "стиль: natural|vivid")
	fs.StringVar(&cfg.Quality, "quality", cfg.Quality, "качество: standard|hd")
}
