package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotReschedule возвращается, когда статус бронирования
	// не допускает перенос времени (переносятся только оплаченные)
	ErrCannotReschedule = errors.New("booking cannot be rescheduled")

	// ErrSlotLimitExceeded возвращается, когда новый выбор длиннее оплаченного
	ErrSlotLimitExceeded = errors.New("selection exceeds the paid slot count")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrSlotsNotInCatalog возвращается, когда выбранные слоты отсутствуют
	// в актуальном каталоге
	ErrSlotsNotInCatalog = errors.New("selected slots are no longer in the catalog")

	// ErrSelectionNotConsecutive возвращается, когда выбранные слоты
	// не образуют непрерывную цепочку
	ErrSelectionNotConsecutive = errors.New("selected slots must be consecutive")

	// ErrSlotNotAvailable возвращается, когда выбранное время уже занято
	ErrSlotNotAvailable = errors.New("selected time is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
