package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/propertyhub/marketplace/internal/api/metrics"
	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// AlertDispatcher delivers alerts off the request path. Alerts are sharded by
// recipient onto a fixed set of workers that hand each batch to the
// downstream sink. Enqueueing never blocks: when a worker's channel is full
// the batch is dropped and counted. Delivery is at-most-once.
type AlertDispatcher struct {
	workers []chan []*domain.Alert
	sink    ports.AlertSink
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewAlertDispatcher creates a dispatcher with numWorkers sharded workers,
// each buffering up to buffer batches. Non-positive values use the defaults.
func NewAlertDispatcher(numWorkers, buffer int, sink ports.AlertSink, log zerolog.Logger) *AlertDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = channelBuffer
	}
	d := &AlertDispatcher{
		workers: make([]chan []*domain.Alert, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan []*domain.Alert, buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// batches still queued at that point are lost.
func (d *AlertDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has exited.
func (d *AlertDispatcher) Wait() {
	d.wg.Wait()
}

// Publish splits alerts by worker and enqueues one batch per worker. The
// caller's context is not propagated: delivery outlives the request.
func (d *AlertDispatcher) Publish(_ context.Context, alerts []*domain.Alert) {
	if len(alerts) == 0 {
		return
	}

	batches := make(map[int][]*domain.Alert, len(d.workers))
	for _, a := range alerts {
		i := d.shardIndex(a.UserID)
		batches[i] = append(batches[i], a)
	}

	for i, batch := range batches {
		select {
		case d.workers[i] <- batch:
			metrics.AlertsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
		default:
			for _, a := range batch {
				metrics.AlertsDroppedTotal.WithLabelValues(string(a.Type), "queue_full").Inc()
			}
			d.log.Warn().
				Int("worker_id", i).
				Int("count", len(batch)).
				Msg("alert queue full, batch dropped")
		}
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *AlertDispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AlertDispatcher) runWorker(ctx context.Context, id int, ch <-chan []*domain.Alert) {
	defer d.wg.Done()
	depth := metrics.AlertsQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.sink.Publish(ctx, batch)
		}
	}
}
