package mailer

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-FieldReservationService/internal/notification"
)

// publisher часть *amqp.Channel, нужная отправителю
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSender публикует письма в topic exchange; доставку выполняет внешний почтовый воркер
type AMQPSender struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	pub      publisher
	exchange string
}

// NewAMQPSender подключается к брокеру и объявляет durable topic exchange
func NewAMQPSender(url, exchange string) (*AMQPSender, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial rabbitmq: %v", ErrConnect, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange: %v", ErrConnect, err)
	}
	return &AMQPSender{conn: conn, ch: ch, pub: ch, exchange: exchange}, nil
}

// RoutingKey ключ маршрутизации события: reservation.<event>
func RoutingKey(event notification.Event) string {
	return "reservation." + string(event)
}

// Send публикует письмо как persistent JSON сообщение
func (s *AMQPSender) Send(ctx context.Context, msg notification.Message) error {
	if msg.To == "" {
		return fmt.Errorf("%w: empty recipient", ErrInvalidMessage)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrSend, err)
	}

	err = s.pub.PublishWithContext(ctx, s.exchange, RoutingKey(msg.Event), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    fmt.Sprintf("reservation-%d-%s", msg.ReservationID, msg.Event),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: publish: %v", ErrSend, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (s *AMQPSender) Close() error {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
