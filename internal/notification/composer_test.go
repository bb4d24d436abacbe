package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/pkg/ptr"
)

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          12,
		FieldID:     3,
		GuestName:   "Анна <script>",
		GuestEmail:  "anna@example.com",
		StartTime:   time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
		PlayerCount: ptr.Ptr(10),
		Status:      domain.StatusPending,
	}
}

func TestCompose(t *testing.T) {
	c := NewComposer(time.FixedZone("MSK", 3*60*60))

	msg, err := c.Compose(EventConfirmed, sampleReservation(), &domain.Field{Name: "Центральное"})

	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", msg.To)
	assert.Equal(t, "Бронирование подтверждено #12", msg.Subject)
	assert.Equal(t, EventConfirmed, msg.Event)
	assert.Equal(t, int64(12), msg.ReservationID)
	assert.Contains(t, msg.HTMLBody, "Центральное")
	assert.Contains(t, msg.HTMLBody, "10:00 - 11:30")
	assert.Contains(t, msg.HTMLBody, "2025-06-01")
	assert.Contains(t, msg.HTMLBody, "Игроков")
	assert.NotContains(t, msg.HTMLBody, "<script>")
}

func TestCompose_WithoutField(t *testing.T) {
	c := NewComposer(nil)
	res := sampleReservation()
	res.PlayerCount = nil

	msg, err := c.Compose(EventReceived, res, nil)

	require.NoError(t, err)
	assert.Contains(t, msg.HTMLBody, "Поле #3")
	assert.NotContains(t, msg.HTMLBody, "Игроков")
}

func TestCompose_UnknownEvent(t *testing.T) {
	_, err := NewComposer(nil).Compose(Event("archived"), sampleReservation(), nil)
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestEventForStatus(t *testing.T) {
	e, ok := EventForStatus(domain.StatusConfirmed)
	assert.True(t, ok)
	assert.Equal(t, EventConfirmed, e)

	e, ok = EventForStatus(domain.StatusCancelled)
	assert.True(t, ok)
	assert.Equal(t, EventCancelled, e)

	_, ok = EventForStatus(domain.StatusPending)
	assert.False(t, ok)
}
