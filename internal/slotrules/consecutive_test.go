package slotrules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
)

func TestIsConsecutive_TrivialCases(t *testing.T) {
	catalog := morningCatalog()

	// Пустой выбор и выбор из одного слота всегда последовательны
	assert.True(t, IsConsecutive(catalog, nil))
	assert.True(t, IsConsecutive(catalog, []string{}))
	assert.True(t, IsConsecutive(catalog, []string{"2"}))

	// В том числе на пустом каталоге
	assert.True(t, IsConsecutive(nil, nil))
	assert.True(t, IsConsecutive(nil, []string{"ghost"}))
}

func TestIsConsecutive_Chain(t *testing.T) {
	catalog := morningCatalog()

	tests := []struct {
		name     string
		selected []string
		want     bool
	}{
		{"adjacent pair", []string{"1", "2"}, true},
		{"full chain", []string{"1", "2", "3"}, true},
		{"gap in the middle", []string{"1", "3"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConsecutive(catalog, tt.selected))
		})
	}
}

// Результат не зависит от порядка перечисления выбранных слотов
func TestIsConsecutive_OrderIndependent(t *testing.T) {
	catalog := morningCatalog()

	permutations := [][]string{
		{"1", "2", "3"},
		{"3", "2", "1"},
		{"2", "1", "3"},
		{"3", "1", "2"},
	}
	for _, p := range permutations {
		assert.True(t, IsConsecutive(catalog, p), "permutation %v", p)
	}

	gapped := [][]string{
		{"1", "3"},
		{"3", "1"},
	}
	for _, p := range gapped {
		assert.False(t, IsConsecutive(catalog, p), "permutation %v", p)
	}
}

func TestIsConsecutive_GapsAndOverlaps(t *testing.T) {
	catalog := []domain.Slot{
		slot("a", "08:00:00", "09:00:00"),
		slot("b", "09:15:00", "10:00:00"), // разрыв 15 минут после a
		slot("c", "09:30:00", "10:30:00"), // пересекается с b
	}

	assert.False(t, IsConsecutive(catalog, []string{"a", "b"}))
	assert.False(t, IsConsecutive(catalog, []string{"b", "c"}))
}

// Устаревший выбор: id отсутствует в обновлённом каталоге
func TestIsConsecutive_StaleSelectionFailsSafe(t *testing.T) {
	catalog := morningCatalog()

	assert.False(t, IsConsecutive(catalog, []string{"1", "ghost"}))
	assert.False(t, IsConsecutive([]domain.Slot{}, []string{"1", "2"}))
}

func TestIsConsecutive_MalformedSlotFailsSafe(t *testing.T) {
	catalog := []domain.Slot{
		slot("a", "08:00:00", "09:00:00"),
		slot("b", "garbage", "10:00:00"),
	}

	assert.False(t, IsConsecutive(catalog, []string{"a", "b"}))
}
