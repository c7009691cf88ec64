package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"example.com/activitysignup/internal/events"
)

// AuditHandler records an audit trail of roster changes.
type AuditHandler struct {
	logger *slog.Logger
}

// NewAuditHandler constructs an AuditHandler writing to logger.
func NewAuditHandler(logger *slog.Logger) *AuditHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditHandler{logger: logger.With(slog.String("component", "audit"))}
}

// Handle implements Handler. Unknown event types are skipped.
func (h *AuditHandler) Handle(ctx context.Context, msg Message) error {
	switch msg.EventType {
	case events.TypeParticipantSignedUp:
		var evt events.ParticipantSignedUp
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", msg.EventType, err)
		}
		h.record(ctx, msg, evt.Activity, evt.Email, evt.Participants, evt.Capacity)
	case events.TypeParticipantUnregistered:
		var evt events.ParticipantUnregistered
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", msg.EventType, err)
		}
		h.record(ctx, msg, evt.Activity, evt.Email, evt.Participants, evt.Capacity)
	default:
		h.logger.DebugContext(ctx, "skipping event", slog.String("event_type", msg.EventType))
	}
	return nil
}

func (h *AuditHandler) record(ctx context.Context, msg Message, activity, email string, participants, capacity int) {
	enrolledGauge.WithLabelValues(activity).Set(float64(participants))
	h.logger.InfoContext(ctx, "roster change",
		slog.String("event_type", msg.EventType),
		slog.String("event_id", msg.EventID),
		slog.String("activity", activity),
		slog.String("email", email),
		slog.Int("participants", participants),
		slog.Int("capacity", capacity),
		slog.Int64("offset", msg.Offset),
	)
}
