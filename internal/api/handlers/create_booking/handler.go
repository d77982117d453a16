package create_booking

import (
	"errors"
	"net/http"

	"github.com/lexgrid/LSM-BookingService/internal/api/handlers"
	"github.com/lexgrid/LSM-BookingService/internal/api/middleware"
	createBooking "github.com/lexgrid/LSM-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgLawyerNotFound     = "юрист не найден"
	msgLawyerInactive     = "юрист не принимает записи"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidBookingDate = "некорректная дата записи"
	msgSlotsNotInCatalog  = "выбранные слоты больше недоступны, обновите расписание"
	msgNotConsecutive     = "выбранные слоты должны идти подряд"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, lawyer_id=%d", userID, req.LawyerID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSlotsNotInCatalog):
			h.logger.Warn("POST /bookings - Stale slot selection: user_id=%d, lawyer_id=%d", userID, req.LawyerID)
			handlers.RespondError(w, http.StatusConflict, msgSlotsNotInCatalog)

		case errors.Is(err, createBooking.ErrSelectionNotConsecutive):
			h.logger.Warn("POST /bookings - Selection not consecutive: user_id=%d, lawyer_id=%d", userID, req.LawyerID)
			handlers.RespondBadRequest(w, msgNotConsecutive)

		case errors.Is(err, createBooking.ErrLawyerNotFound):
			h.logger.Warn("POST /bookings - Lawyer not found: lawyer_id=%d", req.LawyerID)
			handlers.RespondNotFound(w, msgLawyerNotFound)

		case errors.Is(err, createBooking.ErrLawyerInactive):
			h.logger.Warn("POST /bookings - Lawyer inactive: lawyer_id=%d", req.LawyerID)
			handlers.RespondBadRequest(w, msgLawyerInactive)

		case errors.Is(err, createBooking.ErrServiceNotFound),
			errors.Is(err, createBooking.ErrServiceNotProvided):
			h.logger.Warn("POST /bookings - Service not found: lawyer_id=%d, service_id=%d",
				req.LawyerID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, lawyer_id=%d", userID, req.LawyerID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, lawyer_id=%d, error=%v",
				userID, req.LawyerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, lawyer_id=%d",
		result.BookingID, userID, req.LawyerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
