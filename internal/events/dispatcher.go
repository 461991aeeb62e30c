package events

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultQueueSize is the queue capacity used when none is given.
const DefaultQueueSize = 1000

// Dispatcher owns the event queue and the workers draining it into a Publisher.
type Dispatcher struct {
	publisher  Publisher
	logger     *logrus.Logger
	queue      chan TransactionCreated
	numWorkers int
	wg         sync.WaitGroup
	mu         sync.RWMutex
	stopped    bool
	stopOnce   sync.Once
}

func NewDispatcher(publisher Publisher, logger *logrus.Logger, numWorkers, queueSize int) *Dispatcher {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		publisher:  publisher,
		logger:     logger,
		queue:      make(chan TransactionCreated, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		w := newWorker(d.publisher, d.logger, d.queue)
		go func() {
			defer d.wg.Done()
			w.Run()
		}()
	}
}

// Stop closes the queue and waits until queued events have been published.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Dispatch enqueues evt without blocking. It reports false when the event was
// dropped because the queue is full or the dispatcher has stopped.
func (d *Dispatcher) Dispatch(evt TransactionCreated) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.logger.WithField("transactionID", evt.ID.String()).Warn("Dispatcher.Dispatch.stopped")
		return false
	}

	select {
	case d.queue <- evt:
		return true
	default:
		d.logger.WithField("transactionID", evt.ID.String()).Warn("Dispatcher.Dispatch.queue full")
		return false
	}
}

// worker publishes items from the queue. It exits when the queue is closed.
type worker struct {
	publisher Publisher
	logger    *logrus.Logger
	queue     <-chan TransactionCreated
}

func newWorker(publisher Publisher, logger *logrus.Logger, queue <-chan TransactionCreated) *worker {
	return &worker{
		publisher: publisher,
		logger:    logger,
		queue:     queue,
	}
}

func (w *worker) Run() {
	for evt := range w.queue {
		w.processItem(evt)
	}
}

func (w *worker) processItem(evt TransactionCreated) {
	err := w.publisher.Publish(context.Background(), evt)
	if err != nil {
		w.logger.WithError(err).
			WithField("transactionID", evt.ID.String()).
			Error("Dispatcher.worker.publish failed")
	}
}
