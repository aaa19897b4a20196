package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"voice-lab/observability"
	"voice-lab/ratelimit"
)

type HeartbeatWorker struct {
	log      *slog.Logger
	interval time.Duration
	tel      *observability.Telemetry
	guard    *ratelimit.Guard
}

func NewHeartbeatWorker(
	log *slog.Logger,
	interval time.Duration,
	tel *observability.Telemetry,
	guard *ratelimit.Guard,
) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:      log,
		interval: interval,
		tel:      tel,
		guard:    guard,
	}
}

// Run logs process health (CPU, RAM, status) together with the tracker
// telemetry snapshot and the current in-window platform call count on every
// tick.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			snap := w.tel.Snapshot()
			w.log.Info("Heartbeat",
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"tracking_started", snap.TrackingStarted,
				"tracking_stopped", snap.TrackingStopped,
				"warnings_sent", snap.WarningsSent,
				"removals", snap.Removals,
				"guarded_calls", snap.GuardedCalls,
				"actions_in_window", w.guard.ActionCount(),
			)
		}
	}
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for
// the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
