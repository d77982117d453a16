package get_lawyer_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lexgrid/LSM-BookingService/internal/api/handlers"
	"github.com/lexgrid/LSM-BookingService/internal/api/middleware"
	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/internal/service/bookings"
	"github.com/lexgrid/LSM-BookingService/internal/service/bookings/models"
	"github.com/lexgrid/LSM-BookingService/pkg/ptr"
)

const (
	msgInvalidLawyerID = "некорректный ID юриста"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidParams   = "некорректные параметры запроса"
	msgLawyerNotFound  = "юрист не найден"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lawyers/{lawyerId}/bookings
// Query params: from, to, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	lawyerID, err := strconv.ParseInt(vars["lawyerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /lawyers/{id}/bookings - Invalid lawyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLawyerID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /lawyers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	var startDate, endDate *time.Time
	if from := query.Get("from"); from != "" {
		parsed, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /lawyers/{id}/bookings - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		startDate = ptr.Ptr(parsed)
	}
	if to := query.Get("to"); to != "" {
		parsed, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			h.logger.Warn("GET /lawyers/{id}/bookings - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		endDate = ptr.Ptr(parsed)
	}

	var statusPtr *string
	if status := query.Get("status"); status != "" {
		statusPtr = ptr.Ptr(status)
	}

	includeInactive := query.Get("includeInactive") == "true"

	serviceReq := &models.GetLawyerBookingsRequest{
		LawyerID:        lawyerID,
		UserID:          userID,
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          statusPtr,
		IncludeInactive: includeInactive,
	}

	result, err := h.service.GetLawyerBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrLawyerNotFound):
			h.logger.Warn("GET /lawyers/{id}/bookings - Lawyer not found: lawyer_id=%d", lawyerID)
			handlers.RespondNotFound(w, msgLawyerNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /lawyers/{id}/bookings - Access denied: lawyer_id=%d, user_id=%d",
				lawyerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /lawyers/{id}/bookings - Invalid params: lawyer_id=%d, error=%v",
				lawyerID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /lawyers/{id}/bookings - Failed to get bookings: lawyer_id=%d, error=%v",
				lawyerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /lawyers/{id}/bookings - Bookings retrieved successfully: lawyer_id=%d, count=%d",
		lawyerID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
