package list_windows

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
)

const (
	msgInvalidFieldID = "некорректный fieldId"
	msgInvalidPeriod  = "некорректный период, ожидается RFC 3339"
	msgInvalidFilter  = "некорректный фильтр окон"
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

// Handle GET /api/v1/calendar/windows?start=&end=&kind=&fieldId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := handlers.QueryInt64(r, "fieldId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	start, err := handlers.QueryTime(r, "start")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	end, err := handlers.QueryTime(r, "end")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	list, err := h.service.ListWindows(r.Context(), &models.ListWindowsRequest{
		FieldID: fieldID,
		Start:   start,
		End:     end,
		Kind:    handlers.QueryString(r, "kind"),
	})
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidInput) {
			h.logger.Warn("GET /calendar/windows - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /calendar/windows - Failed to list windows: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
