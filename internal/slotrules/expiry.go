package slotrules

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
)

// PartitionExpired разделяет неоплаченные резервы на актуальные и просроченные.
// Резерв просрочен, если его дата, сравниваемая как календарный день,
// не позже сегодняшней. Время суток и часовые пояса значений не учитываются.
//
// Разбиение полное: каждый входной резерв попадает ровно в один из двух
// результатов. Что делать с просроченными (отмена по best-effort),
// решает вызывающая сторона.
func PartitionExpired(reservations []*domain.Booking, today time.Time) (valid, expired []*domain.Booking) {
	valid = make([]*domain.Booking, 0, len(reservations))
	expired = make([]*domain.Booking, 0)

	for _, r := range reservations {
		if DayBefore(today, r.BookingDate) {
			valid = append(valid, r)
		} else {
			expired = append(expired, r)
		}
	}

	return valid, expired
}
