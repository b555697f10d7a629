package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPayment(t *testing.T) {
	before := testutil.ToFloat64(paymentsRecorded.WithLabelValues("upi"))
	RecordPayment("upi", 40)
	assert.Equal(t, before+1, testutil.ToFloat64(paymentsRecorded.WithLabelValues("upi")))
}

func TestRecordTransition(t *testing.T) {
	before := testutil.ToFloat64(statusTransitions.WithLabelValues("active", "expired", "sweep"))
	RecordTransition("active", "expired", "sweep")
	assert.Equal(t, before+1, testutil.ToFloat64(statusTransitions.WithLabelValues("active", "expired", "sweep")))
}

func TestRecordSweep_SetsLastRun(t *testing.T) {
	finished := time.Unix(1_700_000_000, 0)
	RecordSweep(finished.Add(-time.Second), finished)
	assert.Equal(t, float64(finished.Unix()), testutil.ToFloat64(sweepLastRun))

	RecordSweep(time.Time{}, time.Time{})
	assert.Equal(t, float64(finished.Unix()), testutil.ToFloat64(sweepLastRun))
}
