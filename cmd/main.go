package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/HardRise/KindHands-Bot/config"
	"github.com/HardRise/KindHands-Bot/internal/admin"
	telegram "github.com/HardRise/KindHands-Bot/internal/api"
	"github.com/HardRise/KindHands-Bot/internal/container"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
	"github.com/HardRise/KindHands-Bot/internal/infrastructure/content"
	"github.com/HardRise/KindHands-Bot/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_TOKEN is required")
	}

	// Выбираем хранилища: SQLite либо память
	var (
		users      port.UserRepository
		reports    port.ReportRepository
		photos     port.PhotoStore
		volunteers port.VolunteerRepository
	)

	if cfg.DatabasePath != "" {
		store, err := storage.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			logger.Fatal("open storage", zap.Error(err))
		}
		defer store.Close()

		users = store.Users()
		reports = store.Reports()
		photos = store.Photos()
		volunteers = store.Volunteers()
	} else {
		logger.Warn("DATABASE_PATH is not set, using in-memory storage")

		users = storage.NewMemoryUserRepository()
		reports = storage.NewMemoryReportRepository()
		photos = storage.NewMemoryPhotoStore()
		volunteers = storage.NewMemoryVolunteerRepository()
	}

	// Собираем сервисы приложения
	appContainer := container.New(users, reports, photos, volunteers, content.NewStaticProvider(), logger)

	// Волонтёрский API поднимаем отдельно от бота
	if cfg.AdminAddr != "" {
		srv := admin.NewServer(appContainer.Volunteers, logger)
		go func() {
			if err := srv.Listen(cfg.AdminAddr); err != nil {
				logger.Error("admin server", zap.Error(err))
			}
		}()
	}

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer.Engine, logger)
	if err != nil {
		logger.Fatal("create bot", zap.Error(err))
	}

	logger.Info("bot is running")
	if err := bot.Run(); err != nil {
		logger.Fatal("bot error", zap.Error(err))
	}
}
