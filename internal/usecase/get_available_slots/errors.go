package get_available_slots

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

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
