package schedule

import "errors"

var (
	// ErrLawyerNotFound возвращается, когда юрист не найден
	ErrLawyerNotFound = errors.New("lawyer not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrScheduleUnavailable возвращается, когда каталог смен недоступен
	// и проверку конфликтов выполнить нельзя
	ErrScheduleUnavailable = errors.New("shift catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
