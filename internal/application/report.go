package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// ReportService сценарий приёма отчёта о питомце: сначала фотография,
// затем описание. Отчёт за день создаётся один раз, повторная фотография
// в тот же день использует уже созданный отчёт.
type ReportService struct {
	users   port.UserRepository
	reports port.ReportRepository
	photos  port.PhotoStore
	log     *zap.Logger

	now func() time.Time
}

// NewReportService создаёт сервис отчётов
func NewReportService(users port.UserRepository, reports port.ReportRepository, photos port.PhotoStore, log *zap.Logger) *ReportService {
	return &ReportService{
		users:   users,
		reports: reports,
		photos:  photos,
		log:     log,
		now:     time.Now,
	}
}

// Begin переводит пользователя в режим приёма отчёта и просит фотографию
func (s *ReportService) Begin(ctx context.Context, ev entity.Event, user *entity.User) ([]entity.Directive, error) {
	if user == nil {
		s.log.Error("report requested by unknown user", zap.Int64("chat_id", ev.ChatID))
		return []entity.Directive{newMessage(ev.ChatID, msgDefault)}, nil
	}

	user.SetState(entity.StateAwaitingReportPhoto)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return []entity.Directive{editMessage(ev, msgSendReportPhoto)}, nil
}

// AcceptPhoto принимает фотографию питомца. Если отчёта за сегодня ещё нет,
// создаёт его и привязывает сохранённую фотографию, затем просит описание.
func (s *ReportService) AcceptPhoto(ctx context.Context, ev entity.Event, user *entity.User) ([]entity.Directive, error) {
	date := s.now()

	report, err := s.reports.Get(ctx, ev.ChatID, date)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	if report == nil {
		ref, err := s.photos.Save(ctx, &entity.ReportPhoto{
			Data:      ev.Photo.Data,
			Size:      int64(len(ev.Photo.Data)),
			MediaType: ev.Photo.MediaType,
			Taken:     ev.Photo.Taken,
		})
		if err != nil {
			return nil, fmt.Errorf("save photo: %w", err)
		}

		report = entity.NewReport(ev.ChatID, date)
		report.PhotoRef = ref
		if err := s.reports.Save(ctx, report); err != nil {
			return nil, fmt.Errorf("save report: %w", err)
		}
	}

	user.SetState(entity.StateAwaitingReportDescription)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return []entity.Directive{newMessage(ev.ChatID, msgDescribeReport)}, nil
}

// AcceptDescription дописывает описание в созданный ранее отчёт и завершает сценарий.
// Отсутствие отчёта на этом шаге означает рассинхронизацию состояния и данных.
func (s *ReportService) AcceptDescription(ctx context.Context, ev entity.Event, user *entity.User) ([]entity.Directive, error) {
	report, err := s.reports.Get(ctx, ev.ChatID, s.now())
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	if report == nil {
		s.log.Error("report not found for description step",
			zap.Int64("chat_id", ev.ChatID),
			zap.String("state", string(user.State)))
		return []entity.Directive{newMessage(ev.ChatID, msgDefault)}, nil
	}

	report.Description = ev.Text
	if err := s.reports.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	user.SetState(entity.StateNone)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return []entity.Directive{newMessage(ev.ChatID, msgReportSent)}, nil
}
