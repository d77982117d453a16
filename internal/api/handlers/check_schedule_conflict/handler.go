package check_schedule_conflict

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
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

const (
	msgInvalidLawyerID     = "некорректный ID юриста"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM:SS"
	msgLawyerNotFound      = "юрист не найден"
	msgForbidden           = "доступ запрещен"
	msgInvalidParams       = "некорректные параметры запроса"
	msgScheduleUnavailable = "расписание временно недоступно, попробуйте позже"
)

// ConflictResponse HTTP модель результата проверки конфликта
type ConflictResponse struct {
	HasConflict        bool `json:"hasConflict"`
	CommitmentsChecked int  `json:"commitmentsChecked"`
}

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

// Handle GET /api/v1/lawyers/{lawyerId}/schedule/conflict
// Query params: date, startTime, endTime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lawyerID, err := strconv.ParseInt(vars["lawyerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Invalid lawyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLawyerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := types.NewTimeStringFromString(query.Get("endTime"))
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Invalid end time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	serviceReq := &schedule.CheckConflictRequest{
		LawyerID:  lawyerID,
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}

	result, err := h.service.CheckConflict(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrLawyerNotFound):
			h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Lawyer not found: lawyer_id=%d", lawyerID)
			handlers.RespondNotFound(w, msgLawyerNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Access denied: lawyer_id=%d, user_id=%d",
				lawyerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Invalid params: lawyer_id=%d, error=%v",
				lawyerID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, schedule.ErrScheduleUnavailable):
			h.logger.Warn("GET /lawyers/{id}/schedule/conflict - Schedule unavailable: lawyer_id=%d", lawyerID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgScheduleUnavailable)

		default:
			h.logger.Error("GET /lawyers/{id}/schedule/conflict - Check failed: lawyer_id=%d, error=%v",
				lawyerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /lawyers/{id}/schedule/conflict - Checked: lawyer_id=%d, conflict=%t, commitments=%d",
		lawyerID, result.HasConflict, result.CommitmentsChecked)
	handlers.RespondJSON(w, http.StatusOK, ConflictResponse{
		HasConflict:        result.HasConflict,
		CommitmentsChecked: result.CommitmentsChecked,
	})
}
