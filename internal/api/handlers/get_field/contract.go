package get_field

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	GetFieldResponse(ctx context.Context, id int64) (*models.FieldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
