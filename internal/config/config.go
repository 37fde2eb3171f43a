package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config настройки сервиса и клиента
type Config struct {
	HTTPPort            int
	GRPCPort            int
	GRPCServer          string
	MaxExpressionLength int
	JWTSecret           string
	TokenTTL            time.Duration
}

// Значения по умолчанию
const (
	DefaultHTTPPort            = 8080
	DefaultGRPCPort            = 50052
	DefaultMaxExpressionLength = 1024
	DefaultTokenTTLMinutes     = 60
)

// Load читает настройки из переменных окружения. Если передан путь
// к .env файлу и он существует, значения из него подставляются
// в окружение, не перезаписывая уже заданные переменные.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
		log.Printf("Загружены настройки из %s", file)
	}

	cfg := &Config{
		HTTPPort:            getEnvInt("HTTP_PORT", DefaultHTTPPort),
		GRPCPort:            getEnvInt("GRPC_PORT", DefaultGRPCPort),
		MaxExpressionLength: getEnvInt("MAX_EXPRESSION_LENGTH", DefaultMaxExpressionLength),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenTTL:            time.Duration(getEnvInt("TOKEN_TTL_MINUTES", DefaultTokenTTLMinutes)) * time.Minute,
	}

	cfg.GRPCServer = os.Getenv("GRPC_SERVER")
	if cfg.GRPCServer == "" {
		cfg.GRPCServer = "localhost:" + strconv.Itoa(cfg.GRPCPort)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет диапазоны значений
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("некорректный HTTP_PORT: %d", c.HTTPPort)
	}
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("некорректный GRPC_PORT: %d", c.GRPCPort)
	}
	if c.MaxExpressionLength <= 0 {
		return fmt.Errorf("MAX_EXPRESSION_LENGTH должен быть положительным: %d", c.MaxExpressionLength)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL_MINUTES должен быть положительным")
	}
	return nil
}

// AuthEnabled сообщает, требуется ли токен для HTTP API
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnvInt(key string, defaultVal int) int {
	if val, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return val
	}
	return defaultVal
}
