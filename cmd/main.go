package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/benbjohnson/clock"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"voice-lab/afk"
	"voice-lab/client"
	"voice-lab/domain"
	"voice-lab/internal"
	"voice-lab/observability"
	"voice-lab/ratelimit"
	"voice-lab/repositories"
	"voice-lab/runtime/workers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and
// centralizes error reporting so every defer (database cleanup included)
// executes before the program exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Settings storage (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core wiring
	clk := clock.New()
	tel := observability.NewTelemetry()
	guard := ratelimit.NewGuard(log, clk, ratelimit.Config{
		Window:         config.RateWindow,
		WarnThreshold:  config.RateWarnThreshold,
		CrashThreshold: config.RateCrashThreshold,
	}, tel)
	settings := repositories.NewSettingsRepository(db, log)
	gateway := client.NewSimulator(log, config.PresenceBufferSize)
	tracker := afk.NewTracker(log, clk, guard, settings, gateway, gateway, tel)

	// 4. Workers under supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewPresenceWorker(tracker, gateway.Events(), log),
		workers.NewHeartbeatWorker(log, config.HeartbeatInterval, tel, guard),
	)

	// 5. Debug surface
	internal.StartDebugServer(config.DebugPort,
		tracker.Entries,
		settings.ListGroupSettings,
		func() map[string]any {
			snap := tel.Snapshot()
			return map[string]any{
				"actions_in_window": guard.ActionCount(),
				"guard_exited":      guard.Exited(),
				"warnings_sent":     snap.WarningsSent,
				"removals":          snap.Removals,
				"uptime":            snap.Uptime.Round(time.Second),
			}
		})
	log.Info("Debug server started", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(done)
	}()

	if config.DemoScenario {
		go runDemoScenario(ctx, gateway, settings, log)
	}

	// 7. Wait for Stop
	<-ctx.Done()
	log.Info("Shutting down gracefully...")
	sup.Stop()
	<-done
	log.Info("Program stopped cleanly")

	return nil
}

// runDemoScenario seeds a group and two members, then lets one of them go
// silent so the whole warning/removal pipeline can be observed end to end
// against the in-memory gateway.
func runDemoScenario(ctx context.Context, gateway *client.Simulator, settings repositories.SettingsRepository, log *slog.Logger) {
	const groupID = "demo-group"
	const channelID = "demo-voice"

	if err := settings.StoreGroupSettings(groupID, domain.GroupSettings{
		Enabled:          true,
		TimeoutSeconds:   90,
		WarningSeconds:   30,
		WarningChannelID: "demo-text",
	}); err != nil {
		log.Error("Demo scenario could not store settings", "err", err)
		return
	}

	gateway.AddGroup(domain.Group{ID: groupID, Name: "Demo"})
	gateway.AddMember(domain.Member{GroupID: groupID, ParticipantID: "alice", DisplayName: "Alice"})
	gateway.AddMember(domain.Member{GroupID: groupID, ParticipantID: "bob", DisplayName: "Bob"})

	gateway.JoinVoice(groupID, "alice", channelID)
	gateway.JoinVoice(groupID, "bob", channelID)

	// Alice keeps talking; Bob never does and gets warned, then removed.
	ticker := time.NewTicker(45 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gateway.Speak(groupID, "alice")
		}
	}
}
