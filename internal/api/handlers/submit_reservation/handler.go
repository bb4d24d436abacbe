package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations/models"
	submitReservation "github.com/m04kA/SMC-FieldReservationService/internal/usecase/submit_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, время ожидается в RFC 3339"
	msgValidationFailed   = "некорректные данные бронирования"
	msgInvalidRange       = "время начала должно быть раньше времени окончания"
	msgUnknownField       = "поле не найдено"
	msgInactiveField      = "поле недоступно для бронирования"
	msgWindowNotFound     = "окно календаря не найдено"
	msgSlotTaken          = "выбранное время уже занято"
)

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, submitReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: field_id=%d", req.FieldID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, submitReservation.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, submitReservation.ErrValidationFailed):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, submitReservation.ErrUnknownResource):
			handlers.RespondBadRequest(w, msgUnknownField)

		case errors.Is(err, submitReservation.ErrInactiveResource):
			handlers.RespondBadRequest(w, msgInactiveField)

		case errors.Is(err, submitReservation.ErrWindowNotFound):
			handlers.RespondBadRequest(w, msgWindowNotFound)

		default:
			h.logger.Error("POST /reservations - Failed to submit reservation: field_id=%d, error=%v", req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, field_id=%d", result.ID, result.FieldID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainReservation(result))
}
