package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namesdao/namesdao-cli/metrics"
)

func TestPrometheusRecorderCountsAndWrites(t *testing.T) {
	r := metrics.NewPrometheusRecorder()
	r.IncCounter("record_fetch", map[string]string{"outcome": "not_found"})
	r.IncCounter("record_fetch", map[string]string{"outcome": "not_found"})
	r.IncCounter("record_fetch", map[string]string{"outcome": "ok"})
	r.ObserveLatency("resolve", 150*time.Millisecond, map[string]string{"outcome": "ok"})

	n, err := testutil.GatherAndCount(r.Gatherer(), "namesdao_events_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	path := filepath.Join(t.TempDir(), "namesdao.prom")
	require.NoError(t, r.WriteTextfile(path))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `namesdao_events_total{outcome="not_found",type="record_fetch"} 2`)
	assert.Contains(t, string(body), "namesdao_latency_seconds_count")
}

func TestNoopRecorderIsARecorder(t *testing.T) {
	var r metrics.Recorder = metrics.NoopRecorder{}
	r.IncCounter("anything", nil)
	r.ObserveLatency("anything", time.Second, nil)
}
