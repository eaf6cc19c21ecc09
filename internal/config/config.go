package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config содержит настройки приложения из переменных окружения
type Config struct {
	DBDSN            string
	ListenAddr       string
	Environment      string
	BotToken         string
	JwtSecret        string
	JwtRefreshSecret string
	TelegramToken    string
	MigrationsPath   string
}

// Load загружает конфигурацию из .env файла и переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:            os.Getenv("DB_DSN"),
		ListenAddr:       os.Getenv("LISTEN_ADDR"),
		Environment:      os.Getenv("ENV"),
		BotToken:         os.Getenv("BOT_TOKEN"),
		JwtSecret:        os.Getenv("JWT_SECRET"),
		JwtRefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		MigrationsPath:   os.Getenv("MIGRATIONS_PATH"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required but not set")
	}
	if cfg.JwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if cfg.JwtRefreshSecret == "" {
		return nil, fmt.Errorf("JWT_REFRESH_SECRET is required but not set")
	}

	return cfg, nil
}
