package create_booking

import "errors"

var (
	// ErrLawyerNotFound возвращается, когда юрист не найден
	ErrLawyerNotFound = errors.New("lawyer not found")

	// ErrLawyerInactive возвращается, когда юрист не принимает бронирования
	ErrLawyerInactive = errors.New("lawyer is not accepting bookings")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotProvided возвращается, когда услуга не принадлежит юристу
	ErrServiceNotProvided = errors.New("service is not provided by this lawyer")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrSlotsNotInCatalog возвращается, когда выбранные слоты отсутствуют
	// в актуальном каталоге (каталог обновился под устаревшим выбором)
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
