package mailer

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/notification"
)

// LogSender пишет письма в лог вместо отправки (локальная разработка)
type LogSender struct {
	logger Logger
}

// NewLogSender создает LogSender
func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send логирует письмо
func (s *LogSender) Send(_ context.Context, msg notification.Message) error {
	s.logger.Info("mail[%s] to=%s subject=%q reservation=%d", msg.Event, msg.To, msg.Subject, msg.ReservationID)
	return nil
}
