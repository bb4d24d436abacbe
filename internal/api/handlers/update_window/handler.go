package update_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
)

const (
	msgInvalidWindowID    = "некорректный ID окна"
	msgInvalidRequestBody = "некорректное тело запроса, даты ожидаются в RFC 3339"
	msgInvalidWindow      = "некорректные данные окна"
	msgFieldNotFound      = "поле не найдено"
	msgNotFound           = "окно календаря не найдено"
	msgWindowInUse        = "у окна есть активные бронирования, поле и вид окна менять нельзя"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/calendar/windows/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	var req models.WindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/windows/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	window, err := h.service.UpdateWindow(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrWindowInUse):
			handlers.RespondConflict(w, msgWindowInUse)
		case errors.Is(err, calendar.ErrWindowNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, calendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidWindow)
		case errors.Is(err, calendar.ErrFieldNotFound):
			handlers.RespondBadRequest(w, msgFieldNotFound)
		default:
			h.logger.Error("PUT /calendar/windows/{id} - Failed to update window: window_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, window)
}
