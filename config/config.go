package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DatabasePath  string // Пустое значение — хранение в памяти
	AdminAddr     string // Пустое значение — волонтёрский API выключен
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DatabasePath:  os.Getenv("DATABASE_PATH"),
		AdminAddr:     os.Getenv("ADMIN_LISTEN_ADDR"),
	}

	return cfg, nil
}
