package sweep_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lexgrid/LSM-BookingService/internal/api/handlers"
	"github.com/lexgrid/LSM-BookingService/internal/api/middleware"
	sweepReservations "github.com/lexgrid/LSM-BookingService/internal/usecase/sweep_reservations"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	useCase SweepReservationsUseCase
	logger  Logger
}

func NewHandler(useCase SweepReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/reservations/sweep
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/reservations/sweep - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Получаем userID из контекста (через middleware Auth).
	// Чистка отменяет резервы, поэтому запускать её можно только для себя
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/reservations/sweep - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != userID {
		h.logger.Warn("GET /users/{userId}/reservations/sweep - Access denied: user_id=%d, auth_user_id=%d",
			userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sweepReservations.Request{UserID: userID})
	if err != nil {
		if errors.Is(err, sweepReservations.ErrInvalidInput) {
			h.logger.Warn("GET /users/{userId}/reservations/sweep - Invalid input: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}

		h.logger.Error("GET /users/{userId}/reservations/sweep - Sweep failed: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/reservations/sweep - Sweep done: user_id=%d, valid=%d, expired=%d",
		userID, len(result.Valid), result.Report.Expired)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
