package list_fields

import (
	"net/http"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
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

// Handle GET /api/v1/fields (только активные поля)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListFields(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /fields - Failed to list fields: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleAll GET /api/v1/admin/fields (все поля, включая отключённые)
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListFields(r.Context(), false)
	if err != nil {
		h.logger.Error("GET /admin/fields - Failed to list fields: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
