// Package events defines roster event payloads shared by the publisher and the audit consumer.
package events

import "time"

// Event type names carried in the event_type Kafka header.
const (
	TypeParticipantSignedUp     = "participant.signed_up"
	TypeParticipantUnregistered = "participant.unregistered"
)

// ParticipantSignedUp is emitted after an email joins an activity roster.
type ParticipantSignedUp struct {
	EventID      string    `json:"event_id"`
	Activity     string    `json:"activity"`
	Email        string    `json:"email"`
	Participants int       `json:"participants"`
	Capacity     int       `json:"capacity"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// ParticipantUnregistered is emitted after an email leaves an activity roster.
type ParticipantUnregistered struct {
	EventID      string    `json:"event_id"`
	Activity     string    `json:"activity"`
	Email        string    `json:"email"`
	Participants int       `json:"participants"`
	Capacity     int       `json:"capacity"`
	OccurredAt   time.Time `json:"occurred_at"`
}
