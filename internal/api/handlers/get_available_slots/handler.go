package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/lexgrid/LSM-BookingService/internal/api/handlers"
	"github.com/lexgrid/LSM-BookingService/internal/domain"
	getAvailableSlots "github.com/lexgrid/LSM-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidLawyerID  = "некорректный ID юриста"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgLawyerNotFound   = "юрист не найден"
	msgLawyerInactive   = "юрист не принимает записи"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidBookDate  = "некорректная дата записи"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/lawyers/{lawyerId}/available-slots
// Query params: serviceId, date, selected (опционально, список ID через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lawyerID, err := strconv.ParseInt(vars["lawyerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/available-slots - Invalid lawyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLawyerID)
		return
	}

	serviceID, err := strconv.ParseInt(r.URL.Query().Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Текущий выбор пользователя - для подсветки допустимых слотов
	var selectedIDs []string
	if selected := r.URL.Query().Get("selected"); selected != "" {
		selectedIDs = strings.Split(selected, ",")
	}

	useCaseReq := &getAvailableSlots.Request{
		LawyerID:    lawyerID,
		ServiceID:   serviceID,
		Date:        date,
		SelectedIDs: selectedIDs,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrLawyerNotFound):
			h.logger.Warn("GET /lawyers/{id}/available-slots - Lawyer not found: lawyer_id=%d", lawyerID)
			handlers.RespondNotFound(w, msgLawyerNotFound)

		case errors.Is(err, getAvailableSlots.ErrLawyerInactive):
			h.logger.Warn("GET /lawyers/{id}/available-slots - Lawyer inactive: lawyer_id=%d", lawyerID)
			handlers.RespondBadRequest(w, msgLawyerInactive)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound),
			errors.Is(err, getAvailableSlots.ErrServiceNotProvided):
			h.logger.Warn("GET /lawyers/{id}/available-slots - Service not found: lawyer_id=%d, service_id=%d",
				lawyerID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate),
			errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /lawyers/{id}/available-slots - Invalid request: lawyer_id=%d, error=%v",
				lawyerID, err)
			handlers.RespondBadRequest(w, msgInvalidBookDate)

		default:
			h.logger.Error("GET /lawyers/{id}/available-slots - Failed to get slots: lawyer_id=%d, error=%v",
				lawyerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /lawyers/{id}/available-slots - Returned %d slots: lawyer_id=%d, service_id=%d",
		len(result.Slots), lawyerID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
