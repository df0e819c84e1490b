package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustRegister(reg)

	EventsTotal.WithLabelValues(ResultSuccess).Inc()
	ZapReceiptsTotal.WithLabelValues("sent").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "lnw_events_total")
	assert.Contains(t, names, "lnw_zap_receipts_total")
	assert.GreaterOrEqual(t, testutil.ToFloat64(EventsTotal.WithLabelValues(ResultSuccess)), 1.0)
}

func TestMustRegister_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustRegister(reg)

	assert.Panics(t, func() { MustRegister(reg) })
}
