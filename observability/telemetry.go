package observability

import (
	"sync/atomic"
	"time"
)

// Telemetry aggregates runtime counters for the heartbeat log and the debug
// endpoint. All increments are atomic; methods are nil-safe so components can
// run without telemetry wired in (tests mostly do).
type Telemetry struct {
	trackingStarted uint64
	trackingStopped uint64
	warningsSent    uint64
	removals        uint64
	guardedCalls    uint64
	startedAt       time.Time
}

func NewTelemetry() *Telemetry {
	return &Telemetry{startedAt: time.Now()}
}

func (t *Telemetry) IncrTrackingStarted() {
	if t == nil {
		return
	}
	atomic.AddUint64(&t.trackingStarted, 1)
}

func (t *Telemetry) IncrTrackingStopped() {
	if t == nil {
		return
	}
	atomic.AddUint64(&t.trackingStopped, 1)
}

func (t *Telemetry) IncrWarningsSent() {
	if t == nil {
		return
	}
	atomic.AddUint64(&t.warningsSent, 1)
}

func (t *Telemetry) IncrRemovals() {
	if t == nil {
		return
	}
	atomic.AddUint64(&t.removals, 1)
}

func (t *Telemetry) IncrGuardedCalls() {
	if t == nil {
		return
	}
	atomic.AddUint64(&t.guardedCalls, 1)
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	TrackingStarted uint64        `json:"tracking_started"`
	TrackingStopped uint64        `json:"tracking_stopped"`
	WarningsSent    uint64        `json:"warnings_sent"`
	Removals        uint64        `json:"removals"`
	GuardedCalls    uint64        `json:"guarded_calls"`
	Uptime          time.Duration `json:"uptime"`
}

func (t *Telemetry) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	return Snapshot{
		TrackingStarted: atomic.LoadUint64(&t.trackingStarted),
		TrackingStopped: atomic.LoadUint64(&t.trackingStopped),
		WarningsSent:    atomic.LoadUint64(&t.warningsSent),
		Removals:        atomic.LoadUint64(&t.removals),
		GuardedCalls:    atomic.LoadUint64(&t.guardedCalls),
		Uptime:          time.Since(t.startedAt),
	}
}
