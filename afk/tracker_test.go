package afk

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"voice-lab/domain"
	"voice-lab/mocks"
	"voice-lab/observability"
	"voice-lab/ratelimit"
)

type trackerFixture struct {
	tracker   *Tracker
	clk       *clock.Mock
	settings  *mocks.MockIConfigProvider
	directory *mocks.MockIDirectory
	notifier  *mocks.MockINotifier
	guard     *ratelimit.Guard
	tel       *observability.Telemetry
}

func newFixture(t *testing.T) *trackerFixture {
	ctrl := gomock.NewController(t)
	clk := clock.NewMock()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	f := &trackerFixture{
		clk:       clk,
		settings:  mocks.NewMockIConfigProvider(ctrl),
		directory: mocks.NewMockIDirectory(ctrl),
		notifier:  mocks.NewMockINotifier(ctrl),
		tel:       observability.NewTelemetry(),
	}
	// Thresholds high enough that guard escalation never interferes here.
	f.guard = ratelimit.NewGuard(log, clk, ratelimit.Config{
		Window:         time.Hour,
		WarnThreshold:  1000,
		CrashThreshold: 2000,
	}, nil)
	f.tracker = NewTracker(log, clk, f.guard, f.settings, f.directory, f.notifier, f.tel)
	return f
}

func enabledSettings(timeout, warning float64) domain.GroupSettings {
	return domain.GroupSettings{
		Enabled:        true,
		TimeoutSeconds: timeout,
		WarningSeconds: warning,
	}
}

func TestTracker_StartTracking(t *testing.T) {
	t.Run("should warn at the warning deadline and remove at the removal deadline", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30))

		warnings := 0
		f.notifier.EXPECT().
			SendWarning(gomock.Any(), "g1", "p1", "c1").
			DoAndReturn(func(context.Context, string, string, string) error {
				warnings++
				return nil
			})

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		req.True(f.tracker.IsTracking("g1", "p1"))

		f.clk.Add(69 * time.Second)
		req.Equal(0, warnings)

		f.clk.Add(1 * time.Second)
		req.Equal(1, warnings)
		req.True(f.tracker.IsTracking("g1", "p1"))

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").Return(domain.Group{ID: "g1"}, nil)
		f.directory.EXPECT().FetchMember(gomock.Any(), "g1", "p1").
			Return(domain.Member{GroupID: "g1", ParticipantID: "p1", VoiceChannelID: "c1"}, nil)
		f.directory.EXPECT().Disconnect(gomock.Any(), "g1", "p1", DisconnectReason).Return(nil)

		f.clk.Add(30 * time.Second)
		req.Equal(1, warnings)
		req.False(f.tracker.IsTracking("g1", "p1"))
	})

	t.Run("should not track when the group is disabled", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(domain.GroupSettings{Enabled: false})

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		req.False(f.tracker.IsTracking("g1", "p1"))
	})

	t.Run("should reject invalid timeout configurations", func(t *testing.T) {
		cases := []struct {
			name     string
			settings domain.GroupSettings
		}{
			{"nan timeout", enabledSettings(math.NaN(), 30)},
			{"nan warning", enabledSettings(100, math.NaN())},
			{"infinite timeout", enabledSettings(math.Inf(1), 30)},
			{"negative infinite timeout", enabledSettings(math.Inf(-1), 30)},
			{"infinite warning", enabledSettings(100, math.Inf(1))},
			{"zero timeout", enabledSettings(0, 0)},
			{"negative timeout", enabledSettings(-5, 1)},
			{"negative warning", enabledSettings(100, -1)},
			{"warning equals timeout", enabledSettings(100, 100)},
			{"warning exceeds timeout", enabledSettings(100, 150)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := require.New(t)
				f := newFixture(t)

				f.settings.EXPECT().GetGroupSettings("g1").Return(tc.settings)

				f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
				req.False(f.tracker.IsTracking("g1", "p1"))

				// No deadline was scheduled: advancing far past any timeout
				// triggers no collaborator call.
				f.clk.Add(time.Hour)
			})
		}
	})

	t.Run("should restart deadlines when called again for the same pair", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30)).Times(2)

		warnings := 0
		f.notifier.EXPECT().
			SendWarning(gomock.Any(), "g1", "p1", "c1").
			DoAndReturn(func(context.Context, string, string, string) error {
				warnings++
				return nil
			})

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.clk.Add(50 * time.Second)
		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")

		// First schedule would have warned at t=70; only the second (t=120)
		// may fire.
		f.clk.Add(20 * time.Second)
		req.Equal(0, warnings)

		f.clk.Add(50 * time.Second)
		req.Equal(1, warnings)
	})

	t.Run("should count the displaced pair as stopped on a restart", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30)).Times(2)

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")

		snap := f.tel.Snapshot()
		req.Equal(uint64(2), snap.TrackingStarted)
		req.Equal(uint64(1), snap.TrackingStopped)
	})
}

func TestTracker_Exemptions(t *testing.T) {
	t.Run("should not track a participant holding an exempt role", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		settings := enabledSettings(100, 30)
		settings.ExemptRoleIDs = []string{"moderator"}
		f.settings.EXPECT().GetGroupSettings("g1").Return(settings)

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").Return(domain.Group{ID: "g1"}, nil)
		f.directory.EXPECT().FetchMember(gomock.Any(), "g1", "p1").
			Return(domain.Member{RoleIDs: []string{"member", "moderator"}}, nil)

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")

		req.False(f.tracker.IsTracking("g1", "p1"))
		req.Equal(2, f.guard.ActionCount())
	})

	t.Run("should fail closed when the group lookup fails", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		settings := enabledSettings(100, 30)
		settings.ExemptRoleIDs = []string{"moderator"}
		f.settings.EXPECT().GetGroupSettings("g1").Return(settings)

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").
			Return(domain.Group{}, fmt.Errorf("platform unavailable"))

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")

		req.False(f.tracker.IsTracking("g1", "p1"))
		// Only the attempted call is recorded.
		req.Equal(1, f.guard.ActionCount())
	})

	t.Run("should fail closed when the member lookup fails", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		settings := enabledSettings(100, 30)
		settings.ExemptRoleIDs = []string{"moderator"}
		f.settings.EXPECT().GetGroupSettings("g1").Return(settings)

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").Return(domain.Group{ID: "g1"}, nil)
		f.directory.EXPECT().FetchMember(gomock.Any(), "g1", "p1").
			Return(domain.Member{}, fmt.Errorf("member gone"))

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")

		req.False(f.tracker.IsTracking("g1", "p1"))
		req.Equal(2, f.guard.ActionCount())
	})

	t.Run("should track when no role intersects the exempt list", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		settings := enabledSettings(100, 30)
		settings.ExemptRoleIDs = []string{"moderator"}
		f.settings.EXPECT().GetGroupSettings("g1").Return(settings)

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").Return(domain.Group{ID: "g1"}, nil)
		f.directory.EXPECT().FetchMember(gomock.Any(), "g1", "p1").
			Return(domain.Member{RoleIDs: []string{"member"}}, nil)

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		req.True(f.tracker.IsTracking("g1", "p1"))
	})
}

func TestTracker_StopTracking(t *testing.T) {
	t.Run("should be idempotent and silent for untracked pairs", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.tracker.StopTracking("g1", "p1")
		f.tracker.StopTracking("g1", "p1")
		req.False(f.tracker.IsTracking("g1", "p1"))
	})

	t.Run("should cancel both deadlines", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30))

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.tracker.StopTracking("g1", "p1")
		req.False(f.tracker.IsTracking("g1", "p1"))

		// Neither the warning nor the removal callback may fire.
		f.clk.Add(time.Hour)
	})
}

func TestTracker_ResetTimer(t *testing.T) {
	t.Run("should do nothing for an untracked pair", func(t *testing.T) {
		f := newFixture(t)
		// No settings fetch, no collaborator call, no panic.
		f.tracker.ResetTimer(context.Background(), "g1", "p1")
	})

	t.Run("should restart deadlines keeping the original channel", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30)).Times(2)

		warnings := 0
		f.notifier.EXPECT().
			SendWarning(gomock.Any(), "g1", "p1", "c1").
			DoAndReturn(func(context.Context, string, string, string) error {
				warnings++
				return nil
			})

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.clk.Add(60 * time.Second)
		f.tracker.ResetTimer(context.Background(), "g1", "p1")

		// The first schedule's warning (t=70) must not fire.
		f.clk.Add(10 * time.Second)
		req.Equal(0, warnings)

		// The reset schedule warns 70s after the reset.
		f.clk.Add(60 * time.Second)
		req.Equal(1, warnings)
	})
}

func TestTracker_BulkOperations(t *testing.T) {
	t.Run("should stop only the pairs in the given channel", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30)).Times(3)

		warnings := 0
		f.notifier.EXPECT().
			SendWarning(gomock.Any(), "g1", "p3", "c2").
			DoAndReturn(func(context.Context, string, string, string) error {
				warnings++
				return nil
			})

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.tracker.StartTracking(context.Background(), "g1", "p2", "c1")
		f.tracker.StartTracking(context.Background(), "g1", "p3", "c2")

		f.tracker.StopAllTrackingForChannel("g1", "c1")

		req.False(f.tracker.IsTracking("g1", "p1"))
		req.False(f.tracker.IsTracking("g1", "p2"))
		req.True(f.tracker.IsTracking("g1", "p3"))

		// The survivor keeps its original warning deadline.
		f.clk.Add(70 * time.Second)
		req.Equal(1, warnings)
	})

	t.Run("should do nothing at all for an empty participant list", func(t *testing.T) {
		f := newFixture(t)
		// The settings provider must not even be consulted.
		f.tracker.StartTrackingAllInChannel(context.Background(), "g1", "c1", nil)
	})

	t.Run("should start tracking every listed participant", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30)).Times(2)

		f.tracker.StartTrackingAllInChannel(context.Background(), "g1", "c1", []string{"p1", "p2"})

		req.True(f.tracker.IsTracking("g1", "p1"))
		req.True(f.tracker.IsTracking("g1", "p2"))
	})
}

func TestTracker_Callbacks(t *testing.T) {
	t.Run("should keep the removal deadline when warning delivery fails", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30))
		f.notifier.EXPECT().
			SendWarning(gomock.Any(), "g1", "p1", "c1").
			Return(fmt.Errorf("channel deleted"))

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.clk.Add(70 * time.Second)
		req.True(f.tracker.IsTracking("g1", "p1"))

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").Return(domain.Group{ID: "g1"}, nil)
		f.directory.EXPECT().FetchMember(gomock.Any(), "g1", "p1").
			Return(domain.Member{VoiceChannelID: "c1"}, nil)
		f.directory.EXPECT().Disconnect(gomock.Any(), "g1", "p1", DisconnectReason).Return(nil)

		f.clk.Add(30 * time.Second)
		req.False(f.tracker.IsTracking("g1", "p1"))
	})

	t.Run("should clear tracking even when the disconnect fails", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30))
		f.notifier.EXPECT().SendWarning(gomock.Any(), "g1", "p1", "c1").Return(nil)

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").Return(domain.Group{ID: "g1"}, nil)
		f.directory.EXPECT().FetchMember(gomock.Any(), "g1", "p1").
			Return(domain.Member{VoiceChannelID: "c1"}, nil)
		f.directory.EXPECT().Disconnect(gomock.Any(), "g1", "p1", DisconnectReason).
			Return(fmt.Errorf("missing permission"))

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.clk.Add(100 * time.Second)

		req.False(f.tracker.IsTracking("g1", "p1"))
	})

	t.Run("should clear tracking when the member lookup fails during removal", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30))
		f.notifier.EXPECT().SendWarning(gomock.Any(), "g1", "p1", "c1").Return(nil)

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").Return(domain.Group{ID: "g1"}, nil)
		f.directory.EXPECT().FetchMember(gomock.Any(), "g1", "p1").
			Return(domain.Member{}, fmt.Errorf("member gone"))

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.clk.Add(100 * time.Second)

		req.False(f.tracker.IsTracking("g1", "p1"))
	})

	t.Run("should skip the disconnect when the member already left voice", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30))
		f.notifier.EXPECT().SendWarning(gomock.Any(), "g1", "p1", "c1").Return(nil)

		f.directory.EXPECT().FetchGroup(gomock.Any(), "g1").Return(domain.Group{ID: "g1"}, nil)
		f.directory.EXPECT().FetchMember(gomock.Any(), "g1", "p1").
			Return(domain.Member{VoiceChannelID: ""}, nil)
		// No Disconnect expectation: calling it would fail the test.

		f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
		f.clk.Add(100 * time.Second)

		req.False(f.tracker.IsTracking("g1", "p1"))
	})
}

func TestTracker_Entries(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.settings.EXPECT().GetGroupSettings("g1").Return(enabledSettings(100, 30)).Times(2)

	f.tracker.StartTracking(context.Background(), "g1", "p1", "c1")
	f.tracker.StartTracking(context.Background(), "g1", "p2", "c1")

	entries := f.tracker.Entries()
	req.Len(entries, 2)
	req.ElementsMatch(
		[]EntryInfo{
			{GroupID: "g1", ParticipantID: "p1", ChannelID: "c1"},
			{GroupID: "g1", ParticipantID: "p2", ChannelID: "c1"},
		},
		entries,
	)
}
