package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	getDaySlots "github.com/m04kA/SMC-FieldReservationService/internal/usecase/get_day_slots"
)

const (
	msgInvalidDate     = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidTimezone = "неизвестная тайм-зона"
	msgInvalidFieldID  = "некорректный fieldId"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD&fieldId=&tz=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := handlers.QueryInt64(r, "fieldId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	query := r.URL.Query()
	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{
		Date:     query.Get("date"),
		FieldID:  fieldID,
		Timezone: query.Get("tz"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, getDaySlots.ErrInvalidTimezone):
			handlers.RespondBadRequest(w, msgInvalidTimezone)
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFieldID)
		default:
			h.logger.Error("GET /availability - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
