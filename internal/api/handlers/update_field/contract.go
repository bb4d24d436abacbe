package update_field

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateField(ctx context.Context, id int64, req *models.FieldRequest) (*models.FieldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
