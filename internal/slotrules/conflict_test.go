package slotrules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

func commitment(date time.Time, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		BookingDate: date,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func TestHasConflict_Overlap(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	commitments := []*domain.Booking{
		commitment(date, "13:00:00", "17:00:00", domain.StatusPaid),
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"well before", "08:00:00", "12:00:00", false},
		{"overlapping start", "12:30:00", "14:00:00", true},
		{"contained", "14:00:00", "15:00:00", true},
		{"overlapping end", "16:30:00", "18:00:00", true},
		{"touching start boundary", "11:00:00", "13:00:00", false},
		{"touching end boundary", "17:00:00", "18:00:00", false},
		{"after", "17:30:00", "18:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasConflict(commitments, date, types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasConflict_TouchingBoundaryIsNotAConflict(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	commitments := []*domain.Booking{
		commitment(date, "09:00:00", "10:00:00", domain.StatusPending),
	}

	assert.False(t, HasConflict(commitments, date, "10:00:00", "11:00:00"))
	assert.True(t, HasConflict(commitments, date, "09:30:00", "10:30:00"))
}

func TestHasConflict_OnlyActiveStatusesCount(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		commitments := []*domain.Booking{commitment(date, "13:00:00", "17:00:00", status)}
		assert.False(t, HasConflict(commitments, date, "14:00:00", "15:00:00"),
			"status %s must not conflict", status)
	}

	for _, status := range []domain.BookingStatus{domain.StatusPending, domain.StatusPaid} {
		commitments := []*domain.Booking{commitment(date, "13:00:00", "17:00:00", status)}
		assert.True(t, HasConflict(commitments, date, "14:00:00", "15:00:00"),
			"status %s must conflict", status)
	}
}

func TestHasConflict_OtherDateIgnored(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	otherDate := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	commitments := []*domain.Booking{
		commitment(otherDate, "13:00:00", "17:00:00", domain.StatusPaid),
	}

	assert.False(t, HasConflict(commitments, date, "14:00:00", "15:00:00"))
}

func TestHasConflict_MalformedTimesExcluded(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	commitments := []*domain.Booking{
		commitment(date, "garbage", "17:00:00", domain.StatusPaid),
		commitment(date, "13:00:00", "", domain.StatusPaid),
	}

	assert.False(t, HasConflict(commitments, date, "14:00:00", "15:00:00"))

	// Некорректный кандидат ни с чем не конфликтует
	valid := []*domain.Booking{commitment(date, "13:00:00", "17:00:00", domain.StatusPaid)}
	assert.False(t, HasConflict(valid, date, "bad", "15:00:00"))
}

func TestHasConflict_EmptyCommitments(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.False(t, HasConflict(nil, date, "09:00:00", "10:00:00"))
}

func TestDayBefore(t *testing.T) {
	utc := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	local := time.FixedZone("UTC+12", 12*3600)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"previous day", utc.AddDate(0, 0, -1), utc, true},
		{"same day", utc, utc, false},
		{"next day", utc.AddDate(0, 0, 1), utc, false},
		{"year boundary", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), true},
		// Один календарный день в разных поясах - не раньше,
		// хотя как моменты времени значения различаются
		{"same day mixed locations", time.Date(2025, 6, 1, 9, 0, 0, 0, local), utc, false},
		{"same day mixed locations reversed", utc, time.Date(2025, 6, 1, 9, 0, 0, 0, local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayBefore(tt.a, tt.b))
		})
	}
}
