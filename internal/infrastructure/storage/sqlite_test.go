package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/HardRise/KindHands-Bot/internal/domain/entity"
)

func openTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteUserRepository_RoundTrip(t *testing.T) {
	store := openTestStorage(t)
	repo := store.Users()
	ctx := context.Background()

	user, err := repo.Get(ctx, 100)
	require.NoError(t, err)
	require.Nil(t, user)

	saved := entity.NewUser(100, "Ann")
	saved.NeedHelp = true
	require.NoError(t, repo.Save(ctx, saved))

	user, err = repo.Get(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, saved, user)

	// Повторное сохранение обновляет запись, а не добавляет вторую
	saved.SetState(entity.StateAwaitingReportPhoto)
	require.NoError(t, repo.Save(ctx, saved))

	user, err = repo.Get(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingReportPhoto, user.State)

	needy, err := repo.ListNeedHelp(ctx)
	require.NoError(t, err)
	require.Len(t, needy, 1)
	require.Equal(t, int64(100), needy[0].ChatID)
}

func TestSQLiteReportRepository_RoundTrip(t *testing.T) {
	store := openTestStorage(t)
	repo := store.Reports()
	ctx := context.Background()

	day := time.Date(2024, 3, 7, 15, 0, 0, 0, time.UTC)

	report := entity.NewReport(100, day)
	report.PhotoRef = "ref-1"
	require.NoError(t, repo.Save(ctx, report))

	got, err := repo.Get(ctx, 100, day)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "ref-1", got.PhotoRef)

	got.Description = "Ест хорошо"
	require.NoError(t, repo.Save(ctx, got))

	unreviewed, err := repo.ListUnreviewed(ctx)
	require.NoError(t, err)
	require.Len(t, unreviewed, 1)

	unreviewed[0].Reviewed = true
	require.NoError(t, repo.Save(ctx, unreviewed[0]))

	unreviewed, err = repo.ListUnreviewed(ctx)
	require.NoError(t, err)
	require.Empty(t, unreviewed)
}

func TestSQLitePhotoStore_RoundTrip(t *testing.T) {
	store := openTestStorage(t)
	photos := store.Photos()
	ctx := context.Background()

	taken := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

	ref, err := photos.Save(ctx, &entity.ReportPhoto{
		Data:      []byte("jpeg-bytes"),
		Size:      10,
		MediaType: "image/jpeg",
		Taken:     taken,
	})
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	photo, err := photos.Get(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg-bytes"), photo.Data)
	require.True(t, photo.Taken.Equal(taken))

	missing, err := photos.Get(ctx, "no-such-ref")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSQLiteVolunteerRepository_RoundTrip(t *testing.T) {
	store := openTestStorage(t)
	repo := store.Volunteers()
	ctx := context.Background()

	v := &entity.Volunteer{Name: "Ира", Contact: "@ira"}
	require.NoError(t, repo.Save(ctx, v))
	require.NotEmpty(t, v.ID)

	accepted, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, accepted, 1)

	candidates, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Empty(t, candidates)

	require.NoError(t, repo.Delete(ctx, v.ID))

	accepted, err = repo.List(ctx, false)
	require.NoError(t, err)
	require.Empty(t, accepted)
}
