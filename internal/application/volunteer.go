package app

import (
	"context"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/domain/port"
)

// VolunteerService операции волонтёрской части: списки волонтёров,
// кандидатов, непроверенных отчётов и запросов помощи.
type VolunteerService struct {
	volunteers port.VolunteerRepository
	reports    port.ReportRepository
	users      port.UserRepository
}

// NewVolunteerService создаёт сервис волонтёров
func NewVolunteerService(volunteers port.VolunteerRepository, reports port.ReportRepository, users port.UserRepository) *VolunteerService {
	return &VolunteerService{
		volunteers: volunteers,
		reports:    reports,
		users:      users,
	}
}

// Volunteers возвращает принятых волонтёров
func (s *VolunteerService) Volunteers(ctx context.Context) ([]*entity.Volunteer, error) {
	return s.volunteers.List(ctx, false)
}

// Candidates возвращает желающих стать волонтёром
func (s *VolunteerService) Candidates(ctx context.Context) ([]*entity.Volunteer, error) {
	return s.volunteers.List(ctx, true)
}

// Delete удаляет волонтёра по идентификатору
func (s *VolunteerService) Delete(ctx context.Context, id string) error {
	return s.volunteers.Delete(ctx, id)
}

// UnreviewedReports возвращает заполненные отчёты, которые ещё не проверены
func (s *VolunteerService) UnreviewedReports(ctx context.Context) ([]*entity.Report, error) {
	return s.reports.ListUnreviewed(ctx)
}

// HelpRequests возвращает пользователей, ожидающих звонка волонтёра
func (s *VolunteerService) HelpRequests(ctx context.Context) ([]*entity.User, error) {
	return s.users.ListNeedHelp(ctx)
}
