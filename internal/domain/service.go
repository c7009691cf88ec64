// Package domain defines the business rules for the activity signup service.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"example.com/activitysignup/internal/observability"
)

// ActivityRepository captures storage operations. AddParticipant and
// RemoveParticipant must apply Enroll/Withdraw atomically with respect to
// other writers.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*Activity, error)
}

// RosterChangeType names the kind of roster mutation.
type RosterChangeType string

const (
	RosterSignedUp     RosterChangeType = "participant.signed_up"
	RosterUnregistered RosterChangeType = "participant.unregistered"
)

// RosterChange describes a committed roster mutation.
type RosterChange struct {
	Type         RosterChangeType
	Activity     string
	Email        string
	Participants int
	Capacity     int
	OccurredAt   time.Time
}

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks example.com/activitysignup/internal/domain RosterPublisher

// RosterPublisher receives roster changes after they are committed.
type RosterPublisher interface {
	Publish(ctx context.Context, change RosterChange) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, RosterChange) error { return nil }

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithPublisher routes committed roster changes to p.
func WithPublisher(p RosterPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source used to stamp roster changes.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service orchestrates signup workflows over an ActivityRepository.
type Service struct {
	repo      ActivityRepository
	publisher RosterPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a Service.
func NewService(repo ActivityRepository, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		publisher: noopPublisher{},
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// GetActivity fetches a single activity by name.
func (s *Service) GetActivity(ctx context.Context, name string) (*Activity, error) {
	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// SignUp adds email to the named activity.
func (s *Service) SignUp(ctx context.Context, name, email string) (*Activity, error) {
	activity, err := s.repo.AddParticipant(ctx, name, email)
	if err != nil {
		observability.RecordSignup(outcome(err))
		return nil, fmt.Errorf("sign up %q: %w", name, err)
	}
	observability.RecordSignup(observability.OutcomeOK)
	observability.RecordRoster(activity.Name, len(activity.Participants), activity.MaxParticipants)

	s.logger.InfoContext(ctx, "participant signed up",
		slog.String("activity", activity.Name),
		slog.String("email", email),
		slog.Int("participants", len(activity.Participants)),
		slog.Int("capacity", activity.MaxParticipants),
	)
	s.publish(ctx, RosterSignedUp, activity, email)
	return activity, nil
}

// Unregister removes email from the named activity.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	activity, err := s.repo.RemoveParticipant(ctx, name, email)
	if err != nil {
		observability.RecordUnregister(outcome(err))
		return nil, fmt.Errorf("unregister %q: %w", name, err)
	}
	observability.RecordUnregister(observability.OutcomeOK)
	observability.RecordRoster(activity.Name, len(activity.Participants), activity.MaxParticipants)

	s.logger.InfoContext(ctx, "participant unregistered",
		slog.String("activity", activity.Name),
		slog.String("email", email),
		slog.Int("participants", len(activity.Participants)),
	)
	s.publish(ctx, RosterUnregistered, activity, email)
	return activity, nil
}

// publish never fails the caller; the roster change is already committed.
func (s *Service) publish(ctx context.Context, kind RosterChangeType, activity *Activity, email string) {
	change := RosterChange{
		Type:         kind,
		Activity:     activity.Name,
		Email:        email,
		Participants: len(activity.Participants),
		Capacity:     activity.MaxParticipants,
		OccurredAt:   s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, change); err != nil {
		s.logger.WarnContext(ctx, "roster change not published",
			slog.String("event_type", string(kind)),
			slog.String("activity", activity.Name),
			slog.Any("error", err),
		)
	}
}

func outcome(err error) string {
	switch KindOf(err) {
	case KindNotFound:
		return observability.OutcomeNotFound
	case KindConflict:
		return observability.OutcomeConflict
	case KindCapacityExceeded:
		return observability.OutcomeFull
	default:
		return observability.OutcomeError
	}
}
