package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewReport_TruncatesDate(t *testing.T) {
	at := time.Date(2024, 3, 7, 15, 42, 11, 0, time.UTC)

	r := NewReport(100, at)
	require.Equal(t, int64(100), r.ChatID)
	require.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), r.Date)
	require.False(t, r.Reviewed)
	require.False(t, r.Complete())
}

func TestReport_Complete(t *testing.T) {
	r := NewReport(1, time.Now())
	require.False(t, r.Complete())

	r.Description = "Ест хорошо"
	require.True(t, r.Complete())
}

func TestDayOf_SameDayDifferentTime(t *testing.T) {
	morning := time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 7, 22, 30, 0, 0, time.UTC)
	require.Equal(t, DayOf(morning), DayOf(evening))
}
