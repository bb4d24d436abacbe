package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/notification"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

func sampleMessage() notification.Message {
	return notification.Message{
		To:            "guest@example.com",
		Subject:       "Бронирование подтверждено #7",
		HTMLBody:      "<p>Ждём вас</p>",
		Event:         notification.EventConfirmed,
		ReservationID: 7,
	}
}

func TestBuildMessage(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	raw := string(buildMessage("Поля <noreply@example.com>", sampleMessage(), now))

	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)

	assert.Contains(t, headers, "To: guest@example.com")
	assert.Contains(t, headers, "Subject: =?UTF-8?b?")
	assert.Contains(t, headers, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, headers, "X-Reservation-ID: 7")

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(strings.TrimSpace(body), "\r\n", ""))
	require.NoError(t, err)
	assert.Equal(t, "<p>Ждём вас</p>", string(decoded))
}

func TestEnvelopeAddress(t *testing.T) {
	assert.Equal(t, "noreply@example.com", envelopeAddress("Поля <noreply@example.com>"))
	assert.Equal(t, "noreply@example.com", envelopeAddress(" noreply@example.com "))
}

func TestSMTPSender_DialFailure(t *testing.T) {
	// Занимаем порт и сразу освобождаем, чтобы соединение было отклонено
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	s := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: port, From: "noreply@example.com"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.ErrorIs(t, s.Send(ctx, sampleMessage()), ErrConnect)
}

func TestSMTPSender_RejectsEmptyRecipient(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: 25})
	msg := sampleMessage()
	msg.To = ""

	assert.ErrorIs(t, s.Send(context.Background(), msg), ErrInvalidMessage)
}

type fakePublisher struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (f *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func TestAMQPSender_Send(t *testing.T) {
	pub := &fakePublisher{}
	s := &AMQPSender{pub: pub, exchange: "reservations"}

	require.NoError(t, s.Send(context.Background(), sampleMessage()))

	assert.Equal(t, "reservations", pub.exchange)
	assert.Equal(t, "reservation.confirmed", pub.key)
	assert.Equal(t, amqp.Persistent, pub.msg.DeliveryMode)
	assert.Equal(t, "reservation-7-confirmed", pub.msg.MessageId)

	var decoded notification.Message
	require.NoError(t, json.Unmarshal(pub.msg.Body, &decoded))
	assert.Equal(t, sampleMessage(), decoded)
}

func TestAMQPSender_PublishError(t *testing.T) {
	s := &AMQPSender{pub: &fakePublisher{err: errors.New("channel closed")}, exchange: "reservations"}

	assert.ErrorIs(t, s.Send(context.Background(), sampleMessage()), ErrSend)
}

func TestAMQPSender_CloseWithoutConnection(t *testing.T) {
	assert.NoError(t, (&AMQPSender{}).Close())
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, NewLogSender(logger.Discard()).Send(context.Background(), sampleMessage()))
}
