package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnrollDuplicateWinsOverCapacity(t *testing.T) {
	a := Activity{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.edu", "b@x.edu"}}

	require.ErrorIs(t, a.Enroll("a@x.edu"), ErrAlreadySignedUp)
	require.ErrorIs(t, a.Enroll("c@x.edu"), ErrActivityFull)
	require.Equal(t, []string{"a@x.edu", "b@x.edu"}, a.Participants)
}

func TestEnrollAppendsInSignupOrder(t *testing.T) {
	a := Activity{Name: "Gym Class", MaxParticipants: 3}
	for _, email := range []string{"c@x.edu", "a@x.edu", "b@x.edu"} {
		require.NoError(t, a.Enroll(email))
	}
	require.Equal(t, []string{"c@x.edu", "a@x.edu", "b@x.edu"}, a.Participants)
	require.Zero(t, a.SpotsLeft())
}

func TestWithdrawKeepsRemainingOrder(t *testing.T) {
	a := Activity{Name: "Drama Club", MaxParticipants: 5, Participants: []string{"a@x.edu", "b@x.edu", "c@x.edu"}}

	require.NoError(t, a.Withdraw("b@x.edu"))
	require.Equal(t, []string{"a@x.edu", "c@x.edu"}, a.Participants)
	require.ErrorIs(t, a.Withdraw("b@x.edu"), ErrParticipantNotFound)
	require.Equal(t, 3, a.SpotsLeft())
}

func TestCloneDetachesRoster(t *testing.T) {
	a := Activity{Name: "Art Studio", MaxParticipants: 2, Participants: []string{"a@x.edu"}}
	c := a.Clone()
	c.Participants[0] = "z@x.edu"
	require.Equal(t, "a@x.edu", a.Participants[0])

	empty := Activity{Name: "Empty", MaxParticipants: 1}.Clone()
	require.NotNil(t, empty.Participants)
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{ErrActivityNotFound, KindNotFound},
		{ErrParticipantNotFound, KindNotFound},
		{fmt.Errorf("sign up: %w", ErrAlreadySignedUp), KindConflict},
		{ErrActivityFull, KindCapacityExceeded},
		{fmt.Errorf("boom"), KindUnknown},
		{nil, KindUnknown},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, KindOf(tc.err), "%v", tc.err)
	}
}
