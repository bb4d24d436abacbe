package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations/models"
)

const (
	msgInvalidFieldID = "некорректный fieldId"
	msgInvalidPeriod  = "некорректный период, ожидается RFC 3339"
	msgInvalidFilter  = "некорректный фильтр"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?status=&fieldId=&start=&end=
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

	list, err := h.service.List(r.Context(), &models.ListReservationsRequest{
		Status:  handlers.QueryString(r, "status"),
		FieldID: fieldID,
		Start:   start,
		End:     end,
	})
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
