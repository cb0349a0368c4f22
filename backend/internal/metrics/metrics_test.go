package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordQuery(t *testing.T) {
	queries := testutil.ToFloat64(QueriesTotal)
	intent := testutil.ToFloat64(IntentTotal.WithLabelValues("list_all"))
	btc := testutil.ToFloat64(EntityMentions.WithLabelValues("Bitcoin"))

	RecordQuery("list_all", []string{"Bitcoin", "Solana"})

	assert.Equal(t, queries+1, testutil.ToFloat64(QueriesTotal))
	assert.Equal(t, intent+1, testutil.ToFloat64(IntentTotal.WithLabelValues("list_all")))
	assert.Equal(t, btc+1, testutil.ToFloat64(EntityMentions.WithLabelValues("Bitcoin")))
}

func TestRecordObligationAndFault(t *testing.T) {
	before := testutil.ToFloat64(ObligationsTotal.WithLabelValues("disclaimer"))
	faults := testutil.ToFloat64(RecoveredFaults)

	RecordObligation("disclaimer")
	RecordFault()

	assert.Equal(t, before+1, testutil.ToFloat64(ObligationsTotal.WithLabelValues("disclaimer")))
	assert.Equal(t, faults+1, testutil.ToFloat64(RecoveredFaults))
}

func sampleCount(t *testing.T) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, ResponseLatency.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestObserveLatency(t *testing.T) {
	before := sampleCount(t)
	ObserveLatency(time.Now())
	assert.Equal(t, before+1, sampleCount(t))
}
