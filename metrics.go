package metro

import (
	"sync/atomic"
	"time"
)

// MetricID names one in-process counter.
type MetricID uint16

const (
	// MetricLoginSuccess counts successful credential exchanges.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts rejected or failed logins.
	MetricLoginFailure
	// MetricRegisterSuccess counts successful registrations.
	MetricRegisterSuccess
	// MetricRegisterFailure counts failed registrations.
	MetricRegisterFailure
	// MetricProfileFetchSuccess counts profile fetches that replaced the
	// cached user.
	MetricProfileFetchSuccess
	// MetricProfileFetchFailure counts profile fetches that invalidated
	// the session.
	MetricProfileFetchFailure
	// MetricLogout counts logouts, local or remote.
	MetricLogout
	// MetricNavAllowed counts navigations the gate allowed.
	MetricNavAllowed
	// MetricNavRedirectLogin counts navigations redirected to login.
	MetricNavRedirectLogin
	// MetricNavDenied counts navigations denied for missing roles.
	MetricNavDenied
	// MetricNavSuperseded counts navigation decisions discarded because a
	// newer navigation started.
	MetricNavSuperseded

	metricCount
)

// Latency histogram bucket upper bounds for profile fetches.
var latencyBuckets = [...]time.Duration{
	5 * time.Millisecond,
	10 * time.Millisecond,
	25 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
	250 * time.Millisecond,
	time.Second,
	// +Inf
}

const latencyBucketCount = len(latencyBuckets) + 1

// Metrics holds lock-free counters plus a fixed-bucket latency histogram
// for profile fetches. All methods are allocation-free and safe for
// concurrent use.
type Metrics struct {
	counters [metricCount]atomic.Uint64
	latency  [latencyBucketCount]atomic.Uint64
}

// NewMetrics returns zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Inc adds one to the counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// ObserveProfileFetch records one profile-fetch duration.
func (m *Metrics) ObserveProfileFetch(d time.Duration) {
	if m == nil {
		return
	}
	for i, bound := range latencyBuckets {
		if d <= bound {
			m.latency[i].Add(1)
			return
		}
	}
	m.latency[latencyBucketCount-1].Add(1)
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters            map[MetricID]uint64
	ProfileFetchLatency []uint64
}

// Snapshot copies the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Counters:            make(map[MetricID]uint64, metricCount),
		ProfileFetchLatency: make([]uint64, latencyBucketCount),
	}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricCount; id++ {
		snap.Counters[id] = m.counters[id].Load()
	}
	for i := range m.latency {
		snap.ProfileFetchLatency[i] = m.latency[i].Load()
	}
	return snap
}
