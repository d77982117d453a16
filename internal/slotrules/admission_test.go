package slotrules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanSelect_DeselectAlwaysAllowed(t *testing.T) {
	catalog := morningCatalog()

	assert.True(t, CanSelect(catalog, []string{"1", "2"}, "2", Uncapped))
	// Снятие выбора разрешено даже при достигнутом лимите
	assert.True(t, CanSelect(catalog, []string{"1", "2"}, "1", 2))
}

func TestCanSelect_EmptySelection(t *testing.T) {
	catalog := morningCatalog()

	assert.True(t, CanSelect(catalog, nil, "2", Uncapped))
	assert.True(t, CanSelect(catalog, []string{}, "1", 1))
}

func TestCanSelect_ExtendingChain(t *testing.T) {
	catalog := morningCatalog()

	assert.True(t, CanSelect(catalog, []string{"1"}, "2", Uncapped))
	assert.True(t, CanSelect(catalog, []string{"2"}, "1", Uncapped))

	// Слот через разрыв не допускается
	assert.False(t, CanSelect(catalog, []string{"1"}, "3", Uncapped))
}

// Если кандидат допущен, то расширенный выбор последователен
func TestCanSelect_AdmissionImpliesConsecutive(t *testing.T) {
	catalog := morningCatalog()

	selections := [][]string{
		nil,
		{"1"},
		{"2"},
		{"1", "2"},
		{"2", "3"},
	}
	candidates := []string{"1", "2", "3"}

	for _, sel := range selections {
		for _, cand := range candidates {
			inSelection := false
			for _, id := range sel {
				if id == cand {
					inSelection = true
				}
			}
			if inSelection {
				continue
			}
			if CanSelect(catalog, sel, cand, Uncapped) {
				extended := append(append([]string{}, sel...), cand)
				assert.True(t, IsConsecutive(catalog, extended),
					"selection %v + %s admitted but not consecutive", sel, cand)
			}
		}
	}
}

func TestCanSelect_CapEnforced(t *testing.T) {
	catalog := morningCatalog()

	// Лимит достигнут: любой новый кандидат отклоняется
	assert.False(t, CanSelect(catalog, []string{"1", "2"}, "3", 2))
	assert.False(t, CanSelect(catalog, []string{"2"}, "3", 1))

	// Лимит не достигнут: действует правило последовательности
	assert.True(t, CanSelect(catalog, []string{"1"}, "2", 2))
	assert.False(t, CanSelect(catalog, []string{"1"}, "3", 2))
}

func TestCanSelect_EmptyCatalog(t *testing.T) {
	assert.False(t, CanSelect(nil, []string{"1"}, "2", Uncapped))
	// Пустой выбор на пустом каталоге: допуск тривиален, конфликт проявится при брони
	assert.True(t, CanSelect(nil, nil, "1", Uncapped))
}
