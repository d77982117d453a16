package slotrules

import "github.com/lexgrid/LSM-BookingService/internal/domain"

// Uncapped снимает ограничение на количество слотов в выборе
const Uncapped = 0

// CanSelect решает, остаётся ли выбор корректным после переключения candidateID.
//
// Правила по порядку:
//   - кандидат, уже входящий в выбор, снимается с выбора, это разрешено всегда;
//   - при ограничении (maxCount > 0) заполненный выбор не принимает новых слотов;
//   - иначе кандидат допускается, только если выбор вместе с ним
//     остаётся непрерывным.
//
// Как показать отказ (неактивная кнопка или сообщение об ошибке), решает
// вызывающая сторона, функция отвечает только да или нет.
func CanSelect(slots []domain.Slot, selectedIDs []string, candidateID string, maxCount int) bool {
	for _, id := range selectedIDs {
		if id == candidateID {
			return true
		}
	}

	if maxCount > Uncapped && len(selectedIDs) >= maxCount {
		return false
	}

	withCandidate := make([]string, 0, len(selectedIDs)+1)
	withCandidate = append(withCandidate, selectedIDs...)
	withCandidate = append(withCandidate, candidateID)

	return IsConsecutive(slots, withCandidate)
}
