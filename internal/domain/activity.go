package domain

import (
	"errors"
	"slices"
)

var (
	// ErrActivityNotFound is returned when no activity carries the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipantNotFound is returned when unregistering an email that is not on the roster.
	ErrParticipantNotFound = errors.New("participant not found in activity")
	// ErrAlreadySignedUp is returned when the email is already on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up for this activity")
	// ErrActivityFull is returned when the roster has reached max participants.
	ErrActivityFull = errors.New("activity has reached maximum capacity")
)

// ErrorKind groups domain errors by how callers should surface them.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindConflict
	KindCapacityExceeded
)

// KindOf classifies err. Wrapped errors are unwrapped with errors.Is.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrActivityNotFound), errors.Is(err, ErrParticipantNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadySignedUp):
		return KindConflict
	case errors.Is(err, ErrActivityFull):
		return KindCapacityExceeded
	default:
		return KindUnknown
	}
}

// Activity is an extracurricular offering with a fixed capacity and an ordered roster.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SpotsLeft returns the remaining capacity.
func (a *Activity) SpotsLeft() int {
	if left := a.MaxParticipants - len(a.Participants); left > 0 {
		return left
	}
	return 0
}

// Enroll appends email to the roster. The duplicate check runs before the
// capacity check so an enrolled email resubmitted to a full activity
// reports ErrAlreadySignedUp.
func (a *Activity) Enroll(email string) error {
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if len(a.Participants) >= a.MaxParticipants {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Withdraw removes email from the roster, keeping the order of the others.
func (a *Activity) Withdraw(email string) error {
	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return ErrParticipantNotFound
	}
	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}

// Clone returns a deep copy so callers never share the roster backing array.
func (a Activity) Clone() Activity {
	a.Participants = slices.Clone(a.Participants)
	if a.Participants == nil {
		a.Participants = []string{}
	}
	return a
}
