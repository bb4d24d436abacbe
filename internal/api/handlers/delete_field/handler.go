package delete_field

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
)

const (
	msgInvalidFieldID = "некорректный ID поля"
	msgNotFound       = "поле не найдено"
	msgFieldInUse     = "у поля есть окна календаря или бронирования, отключите его вместо удаления"
	msgDeleted        = "поле удалено"
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

// Handle DELETE /api/v1/fields/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	staffID, _ := middleware.GetStaffID(r.Context())

	if err := h.service.DeleteField(r.Context(), id, staffID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrFieldNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, catalog.ErrFieldInUse):
			handlers.RespondConflict(w, msgFieldInUse)
		default:
			h.logger.Error("DELETE /fields/{id} - Failed to delete field: field_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgDeleted})
}
