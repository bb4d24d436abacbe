package notification

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrQueueFull возвращается, когда очередь уведомлений заполнена
	ErrQueueFull = errors.New("notification: queue is full")

	// ErrStopped возвращается после остановки диспетчера
	ErrStopped = errors.New("notification: dispatcher stopped")
)

// Sender доставляет одно письмо
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// MetricsRecorder счётчик доставок (sent, failed, dropped)
type MetricsRecorder interface {
	IncNotification(event, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options параметры пула доставки
type Options struct {
	Workers      int
	QueueSize    int
	Timeout      time.Duration // на одну попытку
	MaxAttempts  int
	RetryBackoff time.Duration // пауза растёт линейно с номером попытки
}

// Dispatcher пул воркеров с ограниченной очередью.
// Notify никогда не блокирует вызывающего; сбои доставки только логируются
type Dispatcher struct {
	sender  Sender
	opts    Options
	jobs    chan Message
	metrics MetricsRecorder
	logger  Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher создает диспетчер. metrics может быть nil
func NewDispatcher(sender Sender, opts Options, metrics MetricsRecorder, logger Logger) *Dispatcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	return &Dispatcher{
		sender:  sender,
		opts:    opts,
		jobs:    make(chan Message, opts.QueueSize),
		metrics: metrics,
		logger:  logger,
	}
}

// Start запускает воркеры
func (d *Dispatcher) Start() {
	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for msg := range d.jobs {
		d.deliver(id, msg)
	}
}

// Notify ставит письмо в очередь
func (d *Dispatcher) Notify(msg Message) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.jobs <- msg:
		return nil
	default:
		d.record(msg.Event, "dropped")
		d.logger.Error("Notify: queue full, dropping %s notification for reservation id=%d", msg.Event, msg.ReservationID)
		return ErrQueueFull
	}
}

// Stop закрывает очередь и ждёт, пока воркеры разберут оставшиеся письма, но не дольше ctx
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) deliver(workerID int, msg Message) {
	var err error
	for attempt := 1; attempt <= d.opts.MaxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), d.opts.Timeout)
		err = d.sender.Send(ctx, msg)
		cancel()

		if err == nil {
			d.record(msg.Event, "sent")
			d.logger.Info("worker %d: %s notification for reservation id=%d sent", workerID, msg.Event, msg.ReservationID)
			return
		}

		d.logger.Warn("worker %d: attempt %d/%d for reservation id=%d failed: %v",
			workerID, attempt, d.opts.MaxAttempts, msg.ReservationID, err)

		if attempt < d.opts.MaxAttempts && d.opts.RetryBackoff > 0 {
			time.Sleep(time.Duration(attempt) * d.opts.RetryBackoff)
		}
	}

	d.record(msg.Event, "failed")
	d.logger.Error("worker %d: giving up on %s notification for reservation id=%d: %v",
		workerID, msg.Event, msg.ReservationID, err)
}

func (d *Dispatcher) record(event Event, outcome string) {
	if d.metrics != nil {
		d.metrics.IncNotification(string(event), outcome)
	}
}
