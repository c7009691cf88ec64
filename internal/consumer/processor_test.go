package consumer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"example.com/activitysignup/internal/events"
)

func rosterMessage(offset int64, eventType string, payload []byte) kafka.Message {
	return kafka.Message{
		Topic:     "activity_roster_events",
		Partition: 0,
		Offset:    offset,
		Time:      time.Now().UTC(),
		Key:       []byte("Chess Club"),
		Value:     payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "event_id", Value: []byte("evt-1")},
			{Key: "activity", Value: []byte("Chess Club")},
		},
	}
}

func TestProcessorCommitsOnSuccess(t *testing.T) {
	payload := []byte(`{"event_id":"evt-1","activity":"Chess Club","email":"a@x.edu","participants":3,"capacity":12}`)
	reader := &stubReader{
		messages: []kafka.Message{rosterMessage(10, events.TypeParticipantSignedUp, payload)},
		after:    contextCanceled,
	}
	handler := &stubHandler{}

	processor := NewProcessor(reader, handler, WithLogger(discardLogger()))

	err := processor.Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 1, reader.commitCalls)
	require.Equal(t, events.TypeParticipantSignedUp, handler.last.EventType)
	require.Equal(t, "evt-1", handler.last.EventID)
	require.Equal(t, "Chess Club", handler.last.Activity)
	require.JSONEq(t, string(payload), string(handler.last.Payload))
}

func TestProcessorSkipsCommitOnHandlerError(t *testing.T) {
	reader := &stubReader{
		messages: []kafka.Message{rosterMessage(20, events.TypeParticipantUnregistered, []byte(`{}`))},
		after:    contextCanceled,
	}
	handler := &stubHandler{err: errors.New("boom")}

	processor := NewProcessor(reader, handler, WithLogger(discardLogger()))

	err := processor.Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 0, reader.commitCalls)
}

func TestProcessorCommitsMalformedMessages(t *testing.T) {
	missingHeader := kafka.Message{Topic: "activity_roster_events", Offset: 1, Value: []byte(`{}`)}
	badJSON := rosterMessage(2, events.TypeParticipantSignedUp, []byte(`{not json`))
	reader := &stubReader{
		messages: []kafka.Message{missingHeader, badJSON},
		after:    contextCanceled,
	}
	handler := &stubHandler{}

	before := testutil.ToFloat64(decodeErrorCounter.WithLabelValues("activity_roster_events"))
	processor := NewProcessor(reader, handler, WithLogger(discardLogger()))

	require.ErrorIs(t, processor.Run(context.Background()), context.Canceled)
	require.Equal(t, 0, handler.calls)
	require.Equal(t, 2, reader.commitCalls)
	require.Equal(t, before+2, testutil.ToFloat64(decodeErrorCounter.WithLabelValues("activity_roster_events")))
}

func TestAuditHandlerTracksEnrollment(t *testing.T) {
	var buf bytes.Buffer
	handler := NewAuditHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	msg := Message{
		Topic:     "activity_roster_events",
		EventType: events.TypeParticipantSignedUp,
		EventID:   "evt-9",
		Activity:  "Debate Team",
		Payload:   []byte(`{"event_id":"evt-9","activity":"Debate Team","email":"a@x.edu","participants":4,"capacity":12}`),
	}
	require.NoError(t, handler.Handle(context.Background(), msg))
	require.Equal(t, 4.0, testutil.ToFloat64(enrolledGauge.WithLabelValues("Debate Team")))
	require.Contains(t, buf.String(), `"email":"a@x.edu"`)

	msg.EventType = events.TypeParticipantUnregistered
	msg.Payload = []byte(`{"event_id":"evt-10","activity":"Debate Team","email":"a@x.edu","participants":3,"capacity":12}`)
	require.NoError(t, handler.Handle(context.Background(), msg))
	require.Equal(t, 3.0, testutil.ToFloat64(enrolledGauge.WithLabelValues("Debate Team")))

	msg.Payload = []byte(`[]`)
	require.Error(t, handler.Handle(context.Background(), msg))

	require.NoError(t, handler.Handle(context.Background(), Message{EventType: "participant.renamed"}))
}

type stubReader struct {
	messages    []kafka.Message
	index       int
	commitCalls int
	after       func() error
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.index >= len(r.messages) {
		if r.after != nil {
			return kafka.Message{}, r.after()
		}
		return kafka.Message{}, context.Canceled
	}
	msg := r.messages[r.index]
	r.index++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	r.commitCalls++
	return nil
}

func (r *stubReader) Close() error { return nil }

func contextCanceled() error { return context.Canceled }

type stubHandler struct {
	calls int
	err   error
	last  Message
}

func (h *stubHandler) Handle(_ context.Context, msg Message) error {
	h.calls++
	h.last = msg
	return h.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
