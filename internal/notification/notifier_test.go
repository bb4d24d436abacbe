package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type sliceQueue struct {
	msgs []Message
	err  error
}

func (q *sliceQueue) Notify(msg Message) error {
	if q.err != nil {
		return q.err
	}
	q.msgs = append(q.msgs, msg)
	return nil
}

type stubCatalog struct{ err error }

func (c stubCatalog) GetField(_ context.Context, id int64) (*domain.Field, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &domain.Field{ID: id, Name: "Малое поле"}, nil
}

func TestNotifier_EnqueuesComposedMessage(t *testing.T) {
	q := &sliceQueue{}
	n := NewNotifier(NewComposer(time.UTC), q, stubCatalog{}, 0, logger.Discard())

	n.NotifyReservation(context.Background(), EventReceived, sampleReservation())

	require.Len(t, q.msgs, 1)
	assert.Contains(t, q.msgs[0].HTMLBody, "Малое поле")
}

func TestNotifier_FallsBackWhenCatalogFails(t *testing.T) {
	q := &sliceQueue{}
	n := NewNotifier(NewComposer(time.UTC), q, stubCatalog{err: errors.New("timeout")}, 0, logger.Discard())

	n.NotifyReservation(context.Background(), EventCancelled, sampleReservation())

	require.Len(t, q.msgs, 1)
	assert.Contains(t, q.msgs[0].HTMLBody, "Поле #3")
}

func TestNotifier_AbsorbsQueueErrors(t *testing.T) {
	q := &sliceQueue{err: ErrQueueFull}
	n := NewNotifier(NewComposer(time.UTC), q, stubCatalog{}, 0, logger.Discard())

	assert.NotPanics(t, func() {
		n.NotifyReservation(context.Background(), EventConfirmed, sampleReservation())
	})
}

type blockingCatalog struct{}

func (blockingCatalog) GetField(ctx context.Context, _ int64) (*domain.Field, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestNotifier_BoundsFieldLookupWithoutRequestDeadline(t *testing.T) {
	q := &sliceQueue{}
	n := NewNotifier(NewComposer(time.UTC), q, blockingCatalog{}, 50*time.Millisecond, logger.Discard())

	reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		n.NotifyReservation(context.WithoutCancel(reqCtx), EventConfirmed, sampleReservation())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("NotifyReservation did not return after lookup timeout")
	}

	require.Len(t, q.msgs, 1)
	assert.Contains(t, q.msgs[0].HTMLBody, "Поле #3")
}
