package alerts

import (
	"context"
	"sync"

	"github.com/caterstock/caterstock-backend/pkg/logger"
	"github.com/caterstock/caterstock-backend/pkg/metrics"
)

// Notifier is the delivery capability the dispatcher hands messages to.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, message string) error

// Send calls the wrapped function.
func (f NotifierFunc) Send(ctx context.Context, message string) error {
	return f(ctx, message)
}

// Dispatcher delivers alert messages off the write path. Delivery is
// at-most-once and best-effort: a full queue drops the alert, a failed send is
// logged and counted, and neither ever reaches the caller of Enqueue. There is
// no per-delivery timeout or retry; a hung send occupies one pool worker and
// shows up in the in-flight gauge.
type Dispatcher struct {
	notifier Notifier
	logg     *logger.Logger
	metrics  *metrics.AlertMetrics

	queue chan string
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// DispatcherOptions bounds the worker pool and queue.
type DispatcherOptions struct {
	QueueSize int
	Workers   int
}

const (
	defaultQueueSize = 64
	defaultWorkers   = 2
)

// NewDispatcher starts the worker pool. A nil notifier is valid and turns
// every enqueue into a logged no-op, so an unconfigured alert channel never
// breaks writes.
func NewDispatcher(notifier Notifier, logg *logger.Logger, m *metrics.AlertMetrics, opts DispatcherOptions) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}

	d := &Dispatcher{
		notifier: notifier,
		logg:     logg,
		metrics:  m,
		queue:    make(chan string, opts.QueueSize),
	}

	for i := 0; i < opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Enqueue hands a composed message to the pool without blocking. Empty
// messages are ignored.
func (d *Dispatcher) Enqueue(message string) {
	if message == "" {
		return
	}
	if d.notifier == nil {
		d.metrics.IncDropped()
		d.logg.Debug(context.Background(), "alert dropped: notifier not configured")
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.metrics.IncDropped()
		d.logg.Warn(context.Background(), "alert dropped: dispatcher closed")
		return
	}
	select {
	case d.queue <- message:
		d.mu.Unlock()
		d.metrics.IncEnqueued()
	default:
		d.mu.Unlock()
		d.metrics.IncDropped()
		d.logg.Warn(context.Background(), "alert dropped: dispatch queue full")
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for message := range d.queue {
		d.deliver(message)
	}
}

func (d *Dispatcher) deliver(message string) {
	d.metrics.DeliveryStarted()
	defer d.metrics.DeliveryFinished()

	if err := d.notifier.Send(context.Background(), message); err != nil {
		d.metrics.IncFailed()
		d.logg.Error(context.Background(), "alert delivery failed", err)
		return
	}
	d.metrics.IncDelivered()
}

// Close stops accepting alerts and waits for in-flight deliveries to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}
