package bolt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchTestLatency(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	b := &BenchTest{
		Init:      base,
		StartSend: base.Add(1 * time.Millisecond),
		EndSend:   base.Add(2 * time.Millisecond),
		StartRecv: base.Add(5 * time.Millisecond),
		EndRecv:   base.Add(7 * time.Millisecond),
		Done:      base.Add(8 * time.Millisecond),
	}

	latency := b.Latency()
	assert.Equal(t, 8*time.Millisecond, latency.Overall)
	assert.Equal(t, 6*time.Millisecond, latency.Network)
	assert.Equal(t, 3*time.Millisecond, latency.Wait)
}

func TestSessionBenchTests(t *testing.T) {
	_, session := newTestSession(t, map[string]stubResult{
		"RETURN 1": {fields: []string{"1"}, rows: [][]interface{}{{int64(1)}}},
	})

	const runs = 3
	for i := 0; i < runs; i++ {
		_, err := session.Run("RETURN 1", nil)
		require.NoError(t, err)
	}

	tests := session.BenchTests()
	require.Len(t, tests, runs)

	for i, b := range tests {
		// Timestamps are taken in order around the round trip.
		assert.False(t, b.StartSend.Before(b.Init), "run %d", i)
		assert.False(t, b.EndSend.Before(b.StartSend), "run %d", i)
		assert.False(t, b.StartRecv.Before(b.EndSend), "run %d", i)
		assert.False(t, b.EndRecv.Before(b.StartRecv), "run %d", i)
		assert.False(t, b.Done.Before(b.EndRecv), "run %d", i)
	}
}

func TestSessionLatencyMetrics(t *testing.T) {
	_, session := newTestSession(t, map[string]stubResult{
		"RETURN 1": {fields: []string{"1"}, rows: [][]interface{}{{int64(1)}}},
	})

	metrics := session.LatencyMetrics()
	assert.Equal(t, 0, metrics.Count)

	const runs = 5
	for i := 0; i < runs; i++ {
		_, err := session.Run("RETURN 1", nil)
		require.NoError(t, err)
	}

	metrics = session.LatencyMetrics()
	assert.Equal(t, runs, metrics.Count)
	assert.True(t, metrics.Time.Max >= metrics.Time.Min)
}
