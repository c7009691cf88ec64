package outbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

// DispatcherConfig contains tunables for the Dispatcher.
type DispatcherConfig struct {
	BatchSize     int
	FlushInterval time.Duration
	// ShutdownGrace bounds the final flush after the run context is cancelled.
	ShutdownGrace time.Duration
}

// Dispatcher drains the outbox in batches and delivers events to Kafka.
type Dispatcher struct {
	outbox           *Outbox
	producer         messageWriter
	cfg              DispatcherConfig
	logger           *slog.Logger
	shutdownComplete chan struct{}
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(outbox *Outbox, producer messageWriter, cfg DispatcherConfig, logger *slog.Logger) *Dispatcher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 25
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 2 * time.Second
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		outbox:           outbox,
		producer:         producer,
		cfg:              cfg,
		logger:           logger.With(slog.String("component", "outbox")),
		shutdownComplete: make(chan struct{}),
	}
}

// Start runs the delivery loop until ctx is cancelled, then flushes what is
// still buffered. It should be called in a goroutine.
func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.FlushInterval)
	defer func() {
		ticker.Stop()
		close(d.shutdownComplete)
	}()

	batch := make([]Message, 0, d.cfg.BatchSize)
	for {
		select {
		case <-ctx.Done():
			batch = d.drain(batch)
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.cfg.ShutdownGrace)
			d.flush(flushCtx, batch)
			cancel()
			return
		case msg := <-d.outbox.queue:
			batch = append(batch, msg)
			if len(batch) >= d.cfg.BatchSize {
				d.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				d.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

// Wait waits until dispatcher stops.
func (d *Dispatcher) Wait() {
	<-d.shutdownComplete
}

func (d *Dispatcher) drain(batch []Message) []Message {
	for {
		select {
		case msg := <-d.outbox.queue:
			batch = append(batch, msg)
		default:
			return batch
		}
	}
}

func (d *Dispatcher) flush(ctx context.Context, batch []Message) {
	if len(batch) == 0 {
		return
	}
	start := time.Now()
	defer func() {
		batchDuration.Observe(time.Since(start).Seconds())
		queueDepthGauge.Set(float64(d.outbox.Len()))
	}()

	if err := d.deliver(ctx, batch); err != nil {
		failedCounter.Add(float64(len(batch)))
		d.logger.ErrorContext(ctx, "delivery failure",
			slog.Int("events", len(batch)),
			slog.Any("error", err),
		)
		return
	}
	deliveredCounter.Add(float64(len(batch)))
}

func (d *Dispatcher) deliver(ctx context.Context, batch []Message) error {
	byTopic := make(map[string][]kafka.Message)
	for _, msg := range batch {
		byTopic[msg.Topic] = append(byTopic[msg.Topic], kafka.Message{
			Key:   []byte(msg.PartitionKey),
			Value: []byte(msg.Payload),
			Time:  msg.CreatedAt,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(msg.EventType)},
				{Key: "event_id", Value: []byte(msg.EventID)},
				{Key: "activity", Value: []byte(msg.PartitionKey)},
			},
		})
	}

	for topic, records := range byTopic {
		if err := d.producer.WriteMessages(ctx, topic, records...); err != nil {
			return err
		}
	}
	return nil
}
