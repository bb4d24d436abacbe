package create_field

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidField       = "некорректные данные поля"
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

// Handle POST /api/v1/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.FieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staffID, _ := middleware.GetStaffID(r.Context())

	field, err := h.service.CreateField(r.Context(), &req, staffID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidField)
		default:
			h.logger.Error("POST /fields - Failed to create field: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields - Field created: field_id=%d, staff_id=%s", field.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, field)
}
