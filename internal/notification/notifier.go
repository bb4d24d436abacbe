package notification

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// FieldCatalog поиск поля для текста письма
type FieldCatalog interface {
	GetField(ctx context.Context, id int64) (*domain.Field, error)
}

// Queue очередь писем
type Queue interface {
	Notify(msg Message) error
}

// DefaultLookupTimeout предел поиска поля для письма
const DefaultLookupTimeout = 2 * time.Second

// Notifier превращает события бронирования в письма и ставит их в очередь.
// Ошибки не возвращаются: уведомления не влияют на результат операции
type Notifier struct {
	composer      *Composer
	queue         Queue
	catalog       FieldCatalog
	lookupTimeout time.Duration
	logger        Logger
}

// NewNotifier создает Notifier. lookupTimeout <= 0 заменяется на DefaultLookupTimeout
func NewNotifier(composer *Composer, queue Queue, catalog FieldCatalog, lookupTimeout time.Duration, logger Logger) *Notifier {
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}
	return &Notifier{
		composer:      composer,
		queue:         queue,
		catalog:       catalog,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// NotifyReservation ставит в очередь письмо о событии бронирования.
// Вызывается на горутине запроса, поэтому поиск поля ограничен lookupTimeout
func (n *Notifier) NotifyReservation(ctx context.Context, event Event, res *domain.Reservation) {
	lookupCtx, cancel := context.WithTimeout(ctx, n.lookupTimeout)
	defer cancel()

	field, err := n.catalog.GetField(lookupCtx, res.FieldID)
	if err != nil {
		n.logger.Warn("NotifyReservation: field id=%d lookup failed, using default name: %v", res.FieldID, err)
		field = nil
	}

	msg, err := n.composer.Compose(event, res, field)
	if err != nil {
		n.logger.Error("NotifyReservation: compose %s for reservation id=%d: %v", event, res.ID, err)
		return
	}

	if err := n.queue.Notify(msg); err != nil {
		n.logger.Warn("NotifyReservation: enqueue %s for reservation id=%d: %v", event, res.ID, err)
	}
}
