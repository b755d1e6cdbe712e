package audit

import (
	"sync"

	"github.com/BruksfildServices01/clientbook/internal/logging"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher hands events to a single background worker so callers never
// wait on audit output.
type Dispatcher struct {
	logger *Logger
	queue  chan Event

	done      chan struct{}
	closeOnce sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logging.Errorf("audit error: %v", err)
		}
	}
}

// Dispatch never blocks: with a full queue the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logging.Errorf("audit queue full, dropping %s event", ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
