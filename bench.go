package bolt

import (
	"time"

	"github.com/jamiealquiza/tachymeter"
)

// BenchTest holds the six timestamps taken around one Run call. Under
// correct operation they are non-decreasing in declaration order.
type BenchTest struct {
	Init      time.Time
	StartSend time.Time
	EndSend   time.Time
	StartRecv time.Time
	EndRecv   time.Time
	Done      time.Time
}

// Latency is the reduction of a BenchTest to the three durations a
// caller cares about: total round trip, time on the wire and in the
// server, and the gap spent waiting for the first response byte.
type Latency struct {
	Overall time.Duration
	Network time.Duration
	Wait    time.Duration
}

// Latency derives the latency triple from the raw timestamps.
func (b *BenchTest) Latency() Latency {
	return Latency{
		Overall: b.Done.Sub(b.Init),
		Network: b.EndRecv.Sub(b.StartSend),
		Wait:    b.StartRecv.Sub(b.EndSend),
	}
}

// BenchTests returns the latency samples accumulated by this session,
// one per completed Run call, in execution order.
func (s *Session) BenchTests() []*BenchTest {
	return append([]*BenchTest(nil), s.benchTests...)
}

// LatencyMetrics summarizes the session's overall per-Run latencies:
// percentiles, min/max and the rest of the tachymeter reduction. Handy
// when diagnosing whether round trips are send-, wait- or
// receive-dominated alongside the per-sample Latency triples.
func (s *Session) LatencyMetrics() *tachymeter.Metrics {
	size := len(s.benchTests)
	if size == 0 {
		size = 1
	}
	t := tachymeter.New(&tachymeter.Config{Size: size})
	for _, b := range s.benchTests {
		t.AddTime(b.Latency().Overall)
	}
	return t.Calc()
}
