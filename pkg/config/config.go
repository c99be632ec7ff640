package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OpenAI   OpenAIConfig
	ShopData ShopDataConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type OpenAIConfig struct {
	Endpoint string
	APIKey   string
	Model    string
}

type ShopDataConfig struct {
	BaseURL           string
	BasicAuthUsername string
	BasicAuthPassword string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid redis database")
		}
		redisDB = parsed
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Smart Shopper API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "smart_shopper"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		OpenAI: OpenAIConfig{
			Endpoint: getEnv("OPENAI_ENDPOINT", "https://api.openai.com/v1/chat/completions"),
			APIKey:   getEnv("OPENAI_API_KEY", ""),
			Model:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		ShopData: ShopDataConfig{
			BaseURL:           getEnv("SHOPDATA_BASE_URL", ""),
			BasicAuthUsername: getEnv("SHOPDATA_BASIC_AUTH_USERNAME", ""),
			BasicAuthPassword: getEnv("SHOPDATA_BASIC_AUTH_PASSWORD", ""),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
