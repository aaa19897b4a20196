package test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"voice-lab/afk"
	"voice-lab/client"
	"voice-lab/domain"
	"voice-lab/observability"
	"voice-lab/ratelimit"
	"voice-lab/repositories"
	"voice-lab/runtime/workers"

	"github.com/benbjohnson/clock"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func Test_Scenario(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	// 1. Persist the group configuration: 100s timeout, warning 30s ahead
	settingsRepository := repositories.NewSettingsRepository(db, log)
	req.NoError(settingsRepository.StoreGroupSettings("g1", domain.GroupSettings{
		Enabled:          true,
		TimeoutSeconds:   100,
		WarningSeconds:   30,
		WarningChannelID: "warnings",
	}))

	// 2. Wire the full pipeline on a mock clock: simulator gateway, guarded
	// tracker, presence worker under the supervisor
	clk := clock.NewMock()
	tel := observability.NewTelemetry()
	guard := ratelimit.NewGuard(log, clk, ratelimit.DefaultConfig(), tel)
	exits := 0
	guard.SetExitFunc(func(int) { exits++ })

	sim := client.NewSimulator(log, 64)
	sim.AddGroup(domain.Group{ID: "g1", Name: "voice lab"})
	sim.AddMember(domain.Member{GroupID: "g1", ParticipantID: "alice"})
	sim.AddMember(domain.Member{GroupID: "g1", ParticipantID: "bob"})

	tracker := afk.NewTracker(log, clk, guard, settingsRepository, sim, sim, tel)
	supervisor := workers.NewSupervisor(log, 200*time.Millisecond)

	go supervisor.Add(workers.NewPresenceWorker(tracker, sim.Events(), log)).Run(ctx)

	// Clean everything at the end of the test
	t.Cleanup(func() {
		cancel()
		db.Close()
	})

	// 3. When two participants share a voice channel, both start tracking
	sim.JoinVoice("g1", "alice", "lounge")
	sim.JoinVoice("g1", "bob", "lounge")
	req.Eventually(func() bool {
		return tracker.IsTracking("g1", "alice") && tracker.IsTracking("g1", "bob")
	}, 2*time.Second, 10*time.Millisecond, "both participants should be tracked")

	// 4. Alice speaks at t=60s: her deadlines restart, bob's do not
	clk.Add(60 * time.Second)
	sim.Speak("g1", "alice")
	req.Eventually(func() bool {
		return tel.Snapshot().TrackingStarted == 3
	}, 2*time.Second, 10*time.Millisecond, "alice's timer should have restarted")

	// 5. At t=70s only bob crosses his warning deadline, in his original channel
	clk.Add(10 * time.Second)
	warnings := sim.Warnings()
	req.Len(warnings, 1)
	req.Equal("bob", warnings[0].ParticipantID)
	req.Equal("lounge", warnings[0].ChannelID)

	// 6. At t=100s bob crosses his removal deadline and is disconnected
	clk.Add(30 * time.Second)
	member, err := sim.FetchMember(ctx, "g1", "bob")
	req.NoError(err)
	req.False(member.InVoice(), "bob should have been disconnected")

	// The disconnect leaves alice alone in the channel, so her tracking stops
	// through the regular presence flow
	req.Eventually(func() bool {
		return !tracker.IsTracking("g1", "bob") && !tracker.IsTracking("g1", "alice")
	}, 2*time.Second, 10*time.Millisecond, "tracking should be cleared after the removal")

	snapshot := tel.Snapshot()
	req.Equal(uint64(1), snapshot.WarningsSent)
	req.Equal(uint64(1), snapshot.Removals)

	// The whole scenario cost exactly one guarded removal flow
	req.Equal(3, guard.ActionCount())
	req.Equal(0, exits)
}
