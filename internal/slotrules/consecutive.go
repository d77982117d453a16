package slotrules

import "github.com/lexgrid/LSM-BookingService/internal/domain"

// IsConsecutive проверяет, что выбранные слоты образуют непрерывную цепочку:
// после сортировки по времени начала каждый слот заканчивается ровно там,
// где начинается следующий. Разрывы и пересечения не допускаются.
//
// Выбор из 0 или 1 слота непрерывен тривиально. Выбор с ID, отсутствующим
// в каталоге, непрерывным не считается: каталог мог обновиться под
// устаревшим выбором, и такой выбор остаётся незабронируемым.
//
// Результат не зависит от порядка selectedIDs.
func IsConsecutive(slots []domain.Slot, selectedIDs []string) bool {
	if len(selectedIDs) <= 1 {
		return true
	}

	resolved, missing := Resolve(slots, selectedIDs)
	if len(missing) > 0 {
		return false
	}

	chain := Normalize(resolved)
	if len(chain) < len(resolved) {
		// Часть выбранных слотов с некорректным временем
		return false
	}

	for i := 0; i < len(chain)-1; i++ {
		if !chain[i].Touches(&chain[i+1]) {
			return false
		}
	}

	return true
}
