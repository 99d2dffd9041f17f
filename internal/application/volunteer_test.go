package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
	"github.com/HardRise/KindHands-Bot/internal/infrastructure/storage"
)

func newVolunteerFixture() (*VolunteerService, *storage.MemoryVolunteerRepository, *storage.MemoryReportRepository, *storage.MemoryUserRepository) {
	volunteers := storage.NewMemoryVolunteerRepository()
	reports := storage.NewMemoryReportRepository()
	users := storage.NewMemoryUserRepository()
	return NewVolunteerService(volunteers, reports, users), volunteers, reports, users
}

func TestVolunteerService_ListsSplitCandidates(t *testing.T) {
	svc, repo, _, _ := newVolunteerFixture()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.Volunteer{Name: "Ира", Contact: "@ira"}))
	require.NoError(t, repo.Save(ctx, &entity.Volunteer{Name: "Олег", Contact: "@oleg", Candidate: true}))

	accepted, err := svc.Volunteers(ctx)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	require.Equal(t, "Ира", accepted[0].Name)

	candidates, err := svc.Candidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, "Олег", candidates[0].Name)
}

func TestVolunteerService_Delete(t *testing.T) {
	svc, repo, _, _ := newVolunteerFixture()
	ctx := context.Background()

	v := &entity.Volunteer{Name: "Ира"}
	require.NoError(t, repo.Save(ctx, v))
	require.NoError(t, svc.Delete(ctx, v.ID))

	accepted, err := svc.Volunteers(ctx)
	require.NoError(t, err)
	require.Empty(t, accepted)
}

func TestVolunteerService_UnreviewedReports(t *testing.T) {
	svc, _, reports, _ := newVolunteerFixture()
	ctx := context.Background()
	day := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	complete := entity.NewReport(100, day)
	complete.Description = "Ест хорошо"
	require.NoError(t, reports.Save(ctx, complete))

	// Незаполненный отчёт волонтёру не показывается
	require.NoError(t, reports.Save(ctx, entity.NewReport(200, day)))

	reviewed := entity.NewReport(300, day)
	reviewed.Description = "Спит весь день"
	reviewed.Reviewed = true
	require.NoError(t, reports.Save(ctx, reviewed))

	out, err := svc.UnreviewedReports(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(100), out[0].ChatID)
}

func TestVolunteerService_HelpRequests(t *testing.T) {
	svc, _, _, users := newVolunteerFixture()
	ctx := context.Background()

	quiet := entity.NewUser(100, "Ann")
	require.NoError(t, users.Save(ctx, quiet))

	needy := entity.NewUser(200, "Boris")
	needy.NeedHelp = true
	require.NoError(t, users.Save(ctx, needy))

	out, err := svc.HelpRequests(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(200), out[0].ChatID)
}
