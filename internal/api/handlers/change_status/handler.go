package change_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations/models"
	changeStatus "github.com/m04kA/SMC-FieldReservationService/internal/usecase/change_status"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус, ожидается pending, confirmed или cancelled"
	msgInvalidTransition    = "недопустимая смена статуса"
	msgNotFound             = "бронирование не найдено"
)

type Handler struct {
	useCase ChangeStatusUseCase
	logger  Logger
}

func NewHandler(useCase ChangeStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staffID, _ := middleware.GetStaffID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &changeStatus.Request{
		ReservationID: id,
		Status:        req.Status,
		StaffID:       staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, changeStatus.ErrNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, changeStatus.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, changeStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid transition: reservation_id=%d, %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to change status: reservation_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Status changed: reservation_id=%d, status=%s, staff_id=%s",
		id, result.Status, staffID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainReservation(result))
}
