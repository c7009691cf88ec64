// Package outbox buffers committed roster changes and delivers them to Kafka.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"example.com/activitysignup/internal/domain"
	"example.com/activitysignup/internal/events"
)

// ErrOutboxFull is returned when the buffer has no room for another event.
var ErrOutboxFull = errors.New("outbox buffer is full")

// Message is a roster event waiting for delivery.
type Message struct {
	EventID      string
	EventType    string
	Topic        string
	PartitionKey string
	Payload      json.RawMessage
	CreatedAt    time.Time
}

// Outbox is a bounded in-memory queue implementing domain.RosterPublisher.
type Outbox struct {
	topic string
	queue chan Message
}

// New creates an Outbox that routes every event to topic.
func New(topic string, buffer int) *Outbox {
	if buffer <= 0 {
		buffer = 1
	}
	return &Outbox{
		topic: topic,
		queue: make(chan Message, buffer),
	}
}

// Publish enqueues change without blocking.
func (o *Outbox) Publish(ctx context.Context, change domain.RosterChange) error {
	msg, err := o.encode(change)
	if err != nil {
		return err
	}

	select {
	case o.queue <- msg:
		queueDepthGauge.Set(float64(len(o.queue)))
		return nil
	default:
		droppedCounter.Inc()
		return ErrOutboxFull
	}
}

// Len reports the number of buffered events.
func (o *Outbox) Len() int {
	return len(o.queue)
}

func (o *Outbox) encode(change domain.RosterChange) (Message, error) {
	eventID := uuid.NewString()

	var payload any
	switch change.Type {
	case domain.RosterSignedUp:
		payload = events.ParticipantSignedUp{
			EventID:      eventID,
			Activity:     change.Activity,
			Email:        change.Email,
			Participants: change.Participants,
			Capacity:     change.Capacity,
			OccurredAt:   change.OccurredAt,
		}
	case domain.RosterUnregistered:
		payload = events.ParticipantUnregistered{
			EventID:      eventID,
			Activity:     change.Activity,
			Email:        change.Email,
			Participants: change.Participants,
			Capacity:     change.Capacity,
			OccurredAt:   change.OccurredAt,
		}
	default:
		return Message{}, fmt.Errorf("unsupported roster change %q", change.Type)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s: %w", change.Type, err)
	}

	return Message{
		EventID:      eventID,
		EventType:    string(change.Type),
		Topic:        o.topic,
		PartitionKey: change.Activity,
		Payload:      body,
		CreatedAt:    change.OccurredAt,
	}, nil
}
