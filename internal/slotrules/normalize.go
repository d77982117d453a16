// Package slotrules содержит правила выбора и валидации временных слотов.
//
// Все функции чистые: работают только с переданными данными, без I/O и
// без разделяемого состояния. Одни и те же правила используются при
// бронировании, обновлении бронирования и планировании смен, поэтому
// они собраны здесь, а не продублированы по usecase-ам.
package slotrules

import (
	"sort"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
)

// Normalize возвращает каталог, упорядоченный по времени начала.
// Входной срез не изменяется. Слоты с некорректными или перевёрнутыми
// границами времени исключаются: их нельзя забронировать, и они не должны
// ломать проверку цепочки.
//
// Лексикографическое сравнение строк фиксированной ширины "HH:MM:SS"
// монотонно по времени, поэтому для сортировки разбор не нужен.
func Normalize(slots []domain.Slot) []domain.Slot {
	normalized := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.IsValid() {
			normalized = append(normalized, s)
		}
	}

	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].StartTime.IsBefore(normalized[j].StartTime)
	})

	return normalized
}

// Resolve сопоставляет выбранные ID со слотами каталога.
// Второй результат содержит ID, отсутствующие в каталоге: устаревший выбор
// после того, как каталог обновился под ним. Отсутствующие ID логирует
// вызывающая сторона, сами правила считают такой выбор некорректным.
func Resolve(slots []domain.Slot, selectedIDs []string) (resolved []domain.Slot, missing []string) {
	byID := make(map[string]domain.Slot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}

	seen := make(map[string]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		slot, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		resolved = append(resolved, slot)
	}

	return resolved, missing
}
