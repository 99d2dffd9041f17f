package port

import (
	"context"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
)

// PhotoStore хранилище фотографий отчётов
type PhotoStore interface {
	// Save сохраняет фотографию и возвращает присвоенный ей идентификатор
	Save(ctx context.Context, photo *entity.ReportPhoto) (string, error)

	// Get возвращает фотографию по идентификатору, (nil, nil) если не найдена
	Get(ctx context.Context, ref string) (*entity.ReportPhoto, error)
}
