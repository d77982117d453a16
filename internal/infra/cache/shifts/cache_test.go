package shifts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func TestCache_FetchIfEmpty_LoadsOnce(t *testing.T) {
	cache, err := New(10, time.Minute, nopLogger{})
	require.NoError(t, err)

	loads := 0
	load := func(ctx context.Context, lawyerID int64, from, to string) ([]domain.Shift, error) {
		loads++
		return []domain.Shift{{LawyerID: lawyerID}}, nil
	}

	ctx := context.Background()

	shifts, err := cache.FetchIfEmpty(ctx, 7, "2025-06-01", "2025-06-30", load)
	require.NoError(t, err)
	assert.Len(t, shifts, 1)
	assert.Equal(t, 1, loads)

	// Повторный запрос того же периода идёт из кеша
	_, err = cache.FetchIfEmpty(ctx, 7, "2025-06-01", "2025-06-30", load)
	require.NoError(t, err)
	assert.Equal(t, 1, loads)

	// Другой период - новая загрузка
	_, err = cache.FetchIfEmpty(ctx, 7, "2025-07-01", "2025-07-31", load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestCache_FetchIfEmpty_ErrorNotCached(t *testing.T) {
	cache, err := New(10, time.Minute, nopLogger{})
	require.NoError(t, err)

	loads := 0
	load := func(ctx context.Context, lawyerID int64, from, to string) ([]domain.Shift, error) {
		loads++
		if loads == 1 {
			return nil, errors.New("upstream unavailable")
		}
		return []domain.Shift{}, nil
	}

	ctx := context.Background()

	_, err = cache.FetchIfEmpty(ctx, 7, "2025-06-01", "2025-06-30", load)
	require.Error(t, err)

	// Ошибка не закешировалась, загрузка повторяется
	_, err = cache.FetchIfEmpty(ctx, 7, "2025-06-01", "2025-06-30", load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestCache_Invalidate(t *testing.T) {
	cache, err := New(10, time.Minute, nopLogger{})
	require.NoError(t, err)

	loads := 0
	load := func(ctx context.Context, lawyerID int64, from, to string) ([]domain.Shift, error) {
		loads++
		return []domain.Shift{}, nil
	}

	ctx := context.Background()

	_, _ = cache.FetchIfEmpty(ctx, 7, "2025-06-01", "2025-06-30", load)
	_, _ = cache.FetchIfEmpty(ctx, 8, "2025-06-01", "2025-06-30", load)
	require.Equal(t, 2, loads)

	cache.Invalidate(7)

	// Записи юриста 7 сброшены, юриста 8 - нет
	_, _ = cache.FetchIfEmpty(ctx, 7, "2025-06-01", "2025-06-30", load)
	assert.Equal(t, 3, loads)
	_, _ = cache.FetchIfEmpty(ctx, 8, "2025-06-01", "2025-06-30", load)
	assert.Equal(t, 3, loads)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, err := New(10, time.Nanosecond, nopLogger{})
	require.NoError(t, err)

	loads := 0
	load := func(ctx context.Context, lawyerID int64, from, to string) ([]domain.Shift, error) {
		loads++
		return []domain.Shift{}, nil
	}

	ctx := context.Background()

	_, _ = cache.FetchIfEmpty(ctx, 7, "2025-06-01", "2025-06-30", load)
	time.Sleep(time.Millisecond)
	_, _ = cache.FetchIfEmpty(ctx, 7, "2025-06-01", "2025-06-30", load)

	assert.Equal(t, 2, loads)
}
