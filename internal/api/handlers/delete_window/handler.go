package delete_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar"
)

const (
	msgInvalidWindowID = "некорректный ID окна"
	msgNotFound        = "окно календаря не найдено"
	msgWindowInUse     = "у окна есть активные бронирования"
	msgDeleted         = "окно календаря удалено"
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

// Handle DELETE /api/v1/calendar/windows/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.DeleteWindow(r.Context(), id); err != nil {
		var inUse *calendar.WindowInUseError
		switch {
		case errors.As(err, &inUse):
			h.logger.Warn("DELETE /calendar/windows/{id} - Window in use: window_id=%d, reservations=%d", id, inUse.ReservationCount)
			handlers.RespondJSON(w, http.StatusConflict, WindowInUseResponse{
				Code:             http.StatusConflict,
				Message:          msgWindowInUse,
				ReservationCount: inUse.ReservationCount,
			})
		case errors.Is(err, calendar.ErrWindowNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /calendar/windows/{id} - Failed to delete window: window_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgDeleted})
}
