package lawyerservice

import "errors"

var (
	// ErrLawyerNotFound возвращается, когда юрист не найден
	ErrLawyerNotFound = errors.New("lawyer not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("lawyerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("lawyerservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что LawyerService недоступен и каталог смен нужно считать неизвестным
	ErrServiceDegraded = errors.New("lawyerservice unavailable: graceful degradation applied")
)
