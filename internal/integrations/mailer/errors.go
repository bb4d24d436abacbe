package mailer

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к серверу доставки
	ErrConnect = errors.New("mailer: failed to connect")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send message")

	// ErrInvalidMessage возвращается для письма без получателя
	ErrInvalidMessage = errors.New("mailer: invalid message")
)
