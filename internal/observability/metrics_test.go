package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordSignupIncrementsByResult(t *testing.T) {
	before := testutil.ToFloat64(signupCounter.WithLabelValues(OutcomeFull))
	RecordSignup(OutcomeFull)
	RecordSignup(OutcomeFull)
	require.Equal(t, before+2, testutil.ToFloat64(signupCounter.WithLabelValues(OutcomeFull)))
}

func TestRecordRosterSetsGauges(t *testing.T) {
	RecordRoster("Chess Club", 3, 12)
	require.Equal(t, 3.0, testutil.ToFloat64(participantsGauge.WithLabelValues("Chess Club")))
	require.Equal(t, 12.0, testutil.ToFloat64(capacityGauge.WithLabelValues("Chess Club")))
}
