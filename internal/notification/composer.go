// Package notification собирает письма о бронированиях и доставляет их в фоне
package notification

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// Event событие жизненного цикла бронирования
type Event string

const (
	EventReceived  Event = "received"
	EventConfirmed Event = "confirmed"
	EventCancelled Event = "cancelled"
)

// ErrUnknownEvent возвращается для события без шаблона
var ErrUnknownEvent = errors.New("notification: unknown event")

// EventForStatus событие, соответствующее переходу в статус
func EventForStatus(status domain.ReservationStatus) (Event, bool) {
	switch status {
	case domain.StatusConfirmed:
		return EventConfirmed, true
	case domain.StatusCancelled:
		return EventCancelled, true
	}
	return "", false
}

// Message готовое к отправке письмо
type Message struct {
	To            string `json:"to"`
	Subject       string `json:"subject"`
	HTMLBody      string `json:"htmlBody"`
	Event         Event  `json:"event"`
	ReservationID int64  `json:"reservationId"`
}

var subjects = map[Event]string{
	EventReceived:  "Заявка на бронирование получена",
	EventConfirmed: "Бронирование подтверждено",
	EventCancelled: "Бронирование отменено",
}

const layout = `<!DOCTYPE html>
<html><body>
<p>Здравствуйте, {{.GuestName}}!</p>
<p>{{.Lead}}</p>
<table>
<tr><td>Номер</td><td>#{{.ID}}</td></tr>
<tr><td>Поле</td><td>{{.FieldName}}</td></tr>
<tr><td>Дата</td><td>{{.Date}}</td></tr>
<tr><td>Время</td><td>{{.Start}} - {{.End}}</td></tr>
{{- if .PlayerCount}}
<tr><td>Игроков</td><td>{{.PlayerCount}}</td></tr>
{{- end}}
</table>
</body></html>`

var leads = map[Event]string{
	EventReceived:  "Мы получили вашу заявку. Она ожидает подтверждения администратором.",
	EventConfirmed: "Ваше бронирование подтверждено. Ждём вас!",
	EventCancelled: "Ваше бронирование отменено. Время снова свободно для записи.",
}

type templateData struct {
	GuestName   string
	Lead        string
	ID          int64
	FieldName   string
	Date        string
	Start       string
	End         string
	PlayerCount int
}

// Composer собирает письма по шаблонам
type Composer struct {
	tmpl *template.Template
	loc  *time.Location
}

// NewComposer создает композер; время в письмах выводится в loc
func NewComposer(loc *time.Location) *Composer {
	if loc == nil {
		loc = time.UTC
	}
	return &Composer{
		tmpl: template.Must(template.New("reservation").Parse(layout)),
		loc:  loc,
	}
}

// Compose собирает письмо о событии. field может быть nil
func (c *Composer) Compose(event Event, res *domain.Reservation, field *domain.Field) (Message, error) {
	subject, ok := subjects[event]
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}

	fieldName := fmt.Sprintf("Поле #%d", res.FieldID)
	if field != nil && field.Name != "" {
		fieldName = field.Name
	}

	start := res.StartTime.In(c.loc)
	data := templateData{
		GuestName: res.GuestName,
		Lead:      leads[event],
		ID:        res.ID,
		FieldName: fieldName,
		Date:      start.Format(domain.DateFormat),
		Start:     start.Format("15:04"),
		End:       res.EndTime.In(c.loc).Format("15:04"),
	}
	if res.PlayerCount != nil {
		data.PlayerCount = *res.PlayerCount
	}

	var body bytes.Buffer
	if err := c.tmpl.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("notification: render %s: %w", event, err)
	}

	return Message{
		To:            res.GuestEmail,
		Subject:       fmt.Sprintf("%s #%d", subject, res.ID),
		HTMLBody:      body.String(),
		Event:         event,
		ReservationID: res.ID,
	}, nil
}
