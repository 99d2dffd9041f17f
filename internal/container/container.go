package container

import (
	"go.uber.org/zap"

	app "github.com/HardRise/KindHands-Bot/internal/application"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// Container собранные сервисы приложения
type Container struct {
	Engine     *app.Engine
	Volunteers *app.VolunteerService
}

// New строит сервисы поверх переданных хранилищ
func New(
	users port.UserRepository,
	reports port.ReportRepository,
	photos port.PhotoStore,
	volunteers port.VolunteerRepository,
	content port.ContentProvider,
	log *zap.Logger,
) *Container {
	reportService := app.NewReportService(users, reports, photos, log)

	return &Container{
		Engine:     app.NewEngine(users, reportService, content, log),
		Volunteers: app.NewVolunteerService(volunteers, reports, users),
	}
}
