package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks room and session activity for the drawing server.
type Metrics struct {
	// Rooms is the number of rooms in the registry. Rooms are never removed.
	Rooms prometheus.Gauge

	// Merges counts merge attempts.
	// Labels: result (ok|mismatch)
	Merges *prometheus.CounterVec

	// ActiveSessions is the number of open OpenConnection streams.
	ActiveSessions prometheus.Gauge

	// SnapshotsSent counts canvases delivered to streaming sessions,
	// including the initial frame.
	SnapshotsSent prometheus.Counter

	// SnapshotsCoalesced counts published states a session skipped because a
	// newer one was already available when its reader loop woke up.
	SnapshotsCoalesced prometheus.Counter
}

var (
	metricsOnce     sync.Once
	metricsInstance *Metrics
)

// NewMetrics returns the process-wide metrics, registering them with the
// default prometheus registry on first use.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			Rooms: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "drawd_rooms",
				Help: "Number of rooms in the registry",
			}),
			Merges: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "drawd_merges_total",
				Help: "Total number of canvas merges by result",
			}, []string{"result"}),
			ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "drawd_active_sessions",
				Help: "Current number of open streaming sessions",
			}),
			SnapshotsSent: promauto.NewCounter(prometheus.CounterOpts{
				Name: "drawd_snapshots_sent_total",
				Help: "Total number of canvas snapshots sent to streaming sessions",
			}),
			SnapshotsCoalesced: promauto.NewCounter(prometheus.CounterOpts{
				Name: "drawd_snapshots_coalesced_total",
				Help: "Total number of superseded canvas states skipped by streaming sessions",
			}),
		}
	})
	return metricsInstance
}

func (m *Metrics) RoomCreated() {
	if m == nil || m.Rooms == nil {
		return
	}
	m.Rooms.Inc()
}

func (m *Metrics) RecordMerge(err error) {
	if m == nil || m.Merges == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "mismatch"
	}
	m.Merges.WithLabelValues(result).Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil || m.ActiveSessions == nil {
		return
	}
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil || m.ActiveSessions == nil {
		return
	}
	m.ActiveSessions.Dec()
}

func (m *Metrics) RecordSnapshot(skipped int) {
	if m == nil || m.SnapshotsSent == nil {
		return
	}
	m.SnapshotsSent.Inc()
	if skipped > 0 && m.SnapshotsCoalesced != nil {
		m.SnapshotsCoalesced.Add(float64(skipped))
	}
}
