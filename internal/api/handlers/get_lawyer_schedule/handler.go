package get_lawyer_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lexgrid/LSM-BookingService/internal/api/handlers"
	"github.com/lexgrid/LSM-BookingService/internal/api/middleware"
	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/internal/service/schedule"
)

const (
	msgInvalidLawyerID     = "некорректный ID юриста"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidPeriod       = "некорректный период, ожидается from и to в формате YYYY-MM-DD"
	msgLawyerNotFound      = "юрист не найден"
	msgForbidden           = "доступ запрещен"
	msgScheduleUnavailable = "расписание временно недоступно, попробуйте позже"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lawyers/{lawyerId}/schedule
// Query params: from, to
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lawyerID, err := strconv.ParseInt(vars["lawyerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/schedule - Invalid lawyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLawyerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /lawyers/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")

	if _, err := time.Parse(domain.DateFormat, from); err != nil {
		h.logger.Warn("GET /lawyers/{id}/schedule - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	if _, err := time.Parse(domain.DateFormat, to); err != nil {
		h.logger.Warn("GET /lawyers/{id}/schedule - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetShifts(r.Context(), lawyerID, userID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrLawyerNotFound):
			h.logger.Warn("GET /lawyers/{id}/schedule - Lawyer not found: lawyer_id=%d", lawyerID)
			handlers.RespondNotFound(w, msgLawyerNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /lawyers/{id}/schedule - Access denied: lawyer_id=%d, user_id=%d",
				lawyerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrScheduleUnavailable):
			h.logger.Warn("GET /lawyers/{id}/schedule - Schedule unavailable: lawyer_id=%d", lawyerID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgScheduleUnavailable)

		default:
			h.logger.Error("GET /lawyers/{id}/schedule - Failed to get schedule: lawyer_id=%d, error=%v",
				lawyerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /lawyers/{id}/schedule - Schedule retrieved: lawyer_id=%d, shifts=%d",
		lawyerID, len(result.Shifts))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
