package update_field

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
)

const (
	msgInvalidFieldID     = "некорректный ID поля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidField       = "некорректные данные поля"
	msgNotFound           = "поле не найдено"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/fields/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	var req models.FieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /fields/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	field, err := h.service.UpdateField(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrFieldNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidField)
		default:
			h.logger.Error("PUT /fields/{id} - Failed to update field: field_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, field)
}
