package slotrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

func slot(id, start, end string) domain.Slot {
	return domain.Slot{
		ID:        id,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

// morningCatalog три последовательных слота 08:00-11:00
func morningCatalog() []domain.Slot {
	return []domain.Slot{
		slot("1", "08:00:00", "09:00:00"),
		slot("2", "09:00:00", "10:00:00"),
		slot("3", "10:00:00", "11:00:00"),
	}
}

func TestNormalize_SortsByStartTime(t *testing.T) {
	catalog := []domain.Slot{
		slot("3", "10:00:00", "11:00:00"),
		slot("1", "08:00:00", "09:00:00"),
		slot("2", "09:00:00", "10:00:00"),
	}

	normalized := Normalize(catalog)

	require.Len(t, normalized, 3)
	assert.Equal(t, "1", normalized[0].ID)
	assert.Equal(t, "2", normalized[1].ID)
	assert.Equal(t, "3", normalized[2].ID)

	// Входной слайс не изменяется
	assert.Equal(t, "3", catalog[0].ID)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]domain.Slot{}))
}

func TestNormalize_ExcludesMalformedSlots(t *testing.T) {
	catalog := []domain.Slot{
		slot("ok", "08:00:00", "09:00:00"),
		slot("bad-time", "garbage", "09:00:00"),
		slot("inverted", "12:00:00", "11:00:00"),
		slot("empty", "", ""),
	}

	normalized := Normalize(catalog)

	require.Len(t, normalized, 1)
	assert.Equal(t, "ok", normalized[0].ID)
}

func TestResolve_ReportsMissingIDs(t *testing.T) {
	resolved, missing := Resolve(morningCatalog(), []string{"1", "ghost", "3"})

	require.Len(t, resolved, 2)
	assert.Equal(t, []string{"ghost"}, missing)
}

func TestResolve_DeduplicatesSelection(t *testing.T) {
	resolved, missing := Resolve(morningCatalog(), []string{"1", "1", "2"})

	assert.Len(t, resolved, 2)
	assert.Empty(t, missing)
}
