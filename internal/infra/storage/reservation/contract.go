package reservation

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// TxManager открывает транзакцию для TryInsert; внутри уже открытой транзакции переиспользует её
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
