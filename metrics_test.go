package metro

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsIncAndSnapshot(t *testing.T) {
	m := NewMetrics()
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricNavDenied)

	snap := m.Snapshot()
	if snap.Counters[MetricLoginSuccess] != 2 {
		t.Fatalf("expected 2 login successes, got %d", snap.Counters[MetricLoginSuccess])
	}
	if snap.Counters[MetricNavDenied] != 1 {
		t.Fatalf("expected 1 denial, got %d", snap.Counters[MetricNavDenied])
	}
	if snap.Counters[MetricLogout] != 0 {
		t.Fatalf("expected untouched counter at zero, got %d", snap.Counters[MetricLogout])
	}
	if len(snap.Counters) != int(metricCount) {
		t.Fatalf("snapshot must cover every counter, got %d", len(snap.Counters))
	}
}

func TestMetricsIgnoresOutOfRangeID(t *testing.T) {
	m := NewMetrics()
	m.Inc(metricCount)
	m.Inc(MetricID(9999))

	snap := m.Snapshot()
	for id, v := range snap.Counters {
		if v != 0 {
			t.Fatalf("counter %d unexpectedly %d", id, v)
		}
	}
}

func TestLatencyHistogramBucketing(t *testing.T) {
	m := NewMetrics()
	m.ObserveProfileFetch(time.Millisecond)        // bucket 0 (<=5ms)
	m.ObserveProfileFetch(7 * time.Millisecond)    // bucket 1 (<=10ms)
	m.ObserveProfileFetch(10 * time.Millisecond)   // bucket 1, bound inclusive
	m.ObserveProfileFetch(500 * time.Millisecond)  // bucket 6 (<=1s)
	m.ObserveProfileFetch(5 * time.Second)         // overflow bucket
	m.ObserveProfileFetch(time.Hour)               // overflow bucket

	snap := m.Snapshot()
	want := []uint64{1, 2, 0, 0, 0, 0, 1, 2}
	if len(snap.ProfileFetchLatency) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(snap.ProfileFetchLatency))
	}
	for i, w := range want {
		if snap.ProfileFetchLatency[i] != w {
			t.Fatalf("bucket %d: expected %d, got %d (%v)", i, w, snap.ProfileFetchLatency[i], snap.ProfileFetchLatency)
		}
	}
}

func TestMetricsConcurrentIncrements(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	const workers = 8
	const perWorker = 1000
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.Inc(MetricNavAllowed)
			}
		}()
	}
	wg.Wait()

	if got := m.Snapshot().Counters[MetricNavAllowed]; got != workers*perWorker {
		t.Fatalf("expected %d, got %d", workers*perWorker, got)
	}
}

func TestNilMetricsAreInert(t *testing.T) {
	var m *Metrics
	m.Inc(MetricLoginSuccess)
	m.ObserveProfileFetch(time.Second)

	snap := m.Snapshot()
	if len(snap.ProfileFetchLatency) != latencyBucketCount {
		t.Fatalf("nil snapshot must still size its buckets, got %d", len(snap.ProfileFetchLatency))
	}
}
