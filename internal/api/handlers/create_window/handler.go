package create_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, даты ожидаются в RFC 3339"
	msgInvalidWindow      = "некорректные данные окна"
	msgFieldNotFound      = "поле не найдено"
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

// Handle POST /api/v1/calendar/windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.WindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staffID, _ := middleware.GetStaffID(r.Context())

	window, err := h.service.CreateWindow(r.Context(), &req, staffID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidWindow)
		case errors.Is(err, calendar.ErrFieldNotFound):
			handlers.RespondBadRequest(w, msgFieldNotFound)
		default:
			h.logger.Error("POST /calendar/windows - Failed to create window: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/windows - Window created: window_id=%d, staff_id=%s", window.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, window)
}
