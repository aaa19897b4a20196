package ratelimit

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"voice-lab/observability"
)

// Config bounds the volume of platform API calls over a sliding window.
// The platform enforces its own per-minute ceilings; these values are a
// deliberately conservative local approximation of them.
type Config struct {
	Window         time.Duration
	WarnThreshold  int
	CrashThreshold int
}

// DefaultConfig leaves a comfortable margin between the first warning and the
// fatal cutoff under the platform's known per-minute ceilings.
func DefaultConfig() Config {
	return Config{
		Window:         time.Minute,
		WarnThreshold:  20,
		CrashThreshold: 50,
	}
}

// Guard is a sliding-window counter of recent platform API calls.
// Every remote call the tracker makes is recorded here first. When the call
// volume approaches the platform ceiling the guard escalates: warnings past
// WarnThreshold, then a single deliberate process termination at
// CrashThreshold. Terminating is preferable to the punitive ban the platform
// imposes on clients that blow through its limits.
type Guard struct {
	log   *slog.Logger
	clock clock.Clock
	cfg   Config
	tel   *observability.Telemetry
	exit  func(code int)

	mu     sync.Mutex
	stamps []time.Time // append-only within the window, oldest first
	exited bool        // monotonic: once true, stays true
}

func NewGuard(log *slog.Logger, clk clock.Clock, cfg Config, tel *observability.Telemetry) *Guard {
	if cfg.Window <= 0 {
		cfg = DefaultConfig()
	}
	return &Guard{
		log:   log,
		clock: clk,
		cfg:   cfg,
		tel:   tel,
		exit:  os.Exit,
	}
}

// RecordAction records one platform API call at the current time and
// evaluates the thresholds on the resulting in-window count.
//
// The crash path fires at most once per process lifetime. Once it has fired,
// subsequent calls still prune and append (so ActionCount stays accurate for
// whatever remains of the runtime) but never warn or terminate again.
func (g *Guard) RecordAction(kind string) {
	now := g.clock.Now()
	cutoff := now.Add(-g.cfg.Window)

	g.mu.Lock()
	// Timestamps are monotonically non-decreasing, so expiry is a prefix trim.
	// A stamp exactly Window old is still in the window.
	i := 0
	for i < len(g.stamps) && g.stamps[i].Before(cutoff) {
		i++
	}
	g.stamps = append(g.stamps[i:], now)
	count := len(g.stamps)
	alreadyExited := g.exited
	if count >= g.cfg.CrashThreshold && !alreadyExited {
		g.exited = true
	}
	g.mu.Unlock()

	g.tel.IncrGuardedCalls()

	if g.log.Enabled(context.Background(), slog.LevelDebug) {
		g.log.Debug("Platform action recorded", "action", kind, "action_count", count)
	}

	switch {
	case alreadyExited:
		// Process exit is already underway; remaining calls are vestigial.
	case count >= g.cfg.CrashThreshold:
		g.log.Error("Platform action ceiling reached, terminating before the platform bans us",
			"action", kind,
			"action_count", count,
			"threshold", g.cfg.CrashThreshold,
		)
		g.exit(1)
	case count >= g.cfg.WarnThreshold:
		g.log.Warn("Platform action volume approaching ceiling",
			"action", kind,
			"action_count", count,
			"threshold", g.cfg.WarnThreshold,
		)
	}
}

// ActionCount returns the number of recorded calls still inside the window
// without mutating the stored timestamps.
func (g *Guard) ActionCount() int {
	cutoff := g.clock.Now().Add(-g.cfg.Window)

	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, s := range g.stamps {
		if !s.Before(cutoff) {
			n++
		}
	}
	return n
}

// Exited reports whether the fatal threshold has been crossed.
func (g *Guard) Exited() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exited
}

// SetExitFunc replaces the process-termination hook. Tests use this to assert
// the crash path without killing the test binary.
func (g *Guard) SetExitFunc(exit func(code int)) {
	g.exit = exit
}
