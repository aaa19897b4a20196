// Package afk tracks inactive voice participants per (group, participant)
// pair, warns them ahead of a configurable deadline, and disconnects them
// when the deadline fires.
package afk

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"voice-lab/contract"
	"voice-lab/observability"
	"voice-lab/ratelimit"
)

// MinVoiceOccupancy is the channel occupancy at which group-wide tracking
// begins. The presence caller must reproduce this boundary exactly: below it
// nobody is tracked, at it everybody in the channel starts tracking, above it
// only the newcomer does.
const MinVoiceOccupancy = 2

// DisconnectReason is the fixed audit-log reason attached to every AFK
// disconnect.
const DisconnectReason = "AFK voice timeout"

// Validation rejection reasons, logged with the offending values.
const (
	reasonNaNValues             = "nan_values" // any non-finite value, NaN or ±Inf
	reasonNegativeValues        = "negative_values"
	reasonWarningExceedsTimeout = "warning_exceeds_timeout"
)

// entry is one actively tracked (group, participant) pair. It exists iff both
// timers are live. The uuid stamp ties the scheduled callbacks to this exact
// entry, so a callback that outlives a restart cannot touch its successor.
type entry struct {
	id            uuid.UUID
	groupID       string
	participantID string
	channelID     string
	warnTimer     *clock.Timer
	removeTimer   *clock.Timer
}

// EntryInfo is a read-only view of one tracked pair, for introspection.
type EntryInfo struct {
	GroupID       string `json:"group_id"`
	ParticipantID string `json:"participant_id"`
	ChannelID     string `json:"channel_id"`
}

// Tracker owns the map of tracked entities and drives the warning/removal
// sequence. Map mutations happen under the mutex; collaborator calls never
// do, so a slow platform lookup stalls only its own flow.
type Tracker struct {
	log       *slog.Logger
	clock     clock.Clock
	guard     *ratelimit.Guard
	settings  contract.IConfigProvider
	directory contract.IDirectory
	notifier  contract.INotifier
	tel       *observability.Telemetry

	mu      sync.Mutex
	entries map[string]*entry
}

func NewTracker(
	log *slog.Logger,
	clk clock.Clock,
	guard *ratelimit.Guard,
	settings contract.IConfigProvider,
	directory contract.IDirectory,
	notifier contract.INotifier,
	tel *observability.Telemetry,
) *Tracker {
	return &Tracker{
		log:       log,
		clock:     clk,
		guard:     guard,
		settings:  settings,
		directory: directory,
		notifier:  notifier,
		tel:       tel,
		entries:   make(map[string]*entry),
	}
}

func trackingKey(groupID, participantID string) string {
	return groupID + ":" + participantID
}

// StartTracking begins or restarts tracking for one participant. The settings
// snapshot is re-fetched on every call so configuration changes apply on the
// next restart. Validation failures and exemption matches are terminal for
// this call; nothing is retried.
func (t *Tracker) StartTracking(ctx context.Context, groupID, participantID, channelID string) {
	cfg := t.settings.GetGroupSettings(groupID)
	if !cfg.Enabled {
		if t.log.Enabled(ctx, slog.LevelDebug) {
			t.log.Debug("AFK tracking disabled for group",
				"action", "start_tracking", "group_id", groupID, "participant_id", participantID)
		}
		return
	}

	if reason, ok := validateTimeouts(cfg.TimeoutSeconds, cfg.WarningSeconds); !ok {
		t.log.Error("Rejecting AFK tracking configuration",
			"action", "start_tracking",
			"group_id", groupID,
			"participant_id", participantID,
			"reason", reason,
			"timeout_seconds", cfg.TimeoutSeconds,
			"warning_seconds", cfg.WarningSeconds,
		)
		return
	}

	if len(cfg.ExemptRoleIDs) > 0 {
		exempt, err := t.isExempt(ctx, groupID, participantID, cfg.ExemptRoleIDs)
		if err != nil {
			// Fail closed: a broken exemption lookup must not let tracking
			// start for a participant who may hold an exempt role.
			t.log.Error("Exemption check failed, not tracking",
				"action", "start_tracking", "group_id", groupID, "participant_id", participantID, "err", err)
			return
		}
		if exempt {
			return
		}
	}

	warnDelay := secondsToDuration(cfg.TimeoutSeconds - cfg.WarningSeconds)
	removeDelay := secondsToDuration(cfg.TimeoutSeconds)

	e := &entry{
		id:            uuid.New(),
		groupID:       groupID,
		participantID: participantID,
		channelID:     channelID,
	}
	key := trackingKey(groupID, participantID)

	t.mu.Lock()
	displaced := false
	if old, ok := t.entries[key]; ok {
		// At most one live timer pair per key: the old pair is cancelled
		// before the new one is installed.
		old.warnTimer.Stop()
		old.removeTimer.Stop()
		displaced = true
	}
	id := e.id
	e.warnTimer = t.clock.AfterFunc(warnDelay, func() { t.fireWarning(key, id) })
	e.removeTimer = t.clock.AfterFunc(removeDelay, func() { t.fireRemoval(key, id) })
	t.entries[key] = e
	t.mu.Unlock()

	if displaced {
		// An implicit restart ends the old tracking span, same as an
		// explicit stop would.
		t.tel.IncrTrackingStopped()
	}
	t.tel.IncrTrackingStarted()
	t.log.Info("AFK tracking started",
		"action", "start_tracking",
		"group_id", groupID,
		"participant_id", participantID,
		"channel_id", channelID,
		"warning_delay_ms", warnDelay.Milliseconds(),
		"removal_delay_ms", removeDelay.Milliseconds(),
	)
}

// StopTracking cancels both deadlines and forgets the pair. Calling it for an
// untracked pair is a silent no-op.
func (t *Tracker) StopTracking(groupID, participantID string) {
	key := trackingKey(groupID, participantID)

	t.mu.Lock()
	e, ok := t.entries[key]
	if !ok {
		t.mu.Unlock()
		return
	}
	e.warnTimer.Stop()
	e.removeTimer.Stop()
	delete(t.entries, key)
	t.mu.Unlock()

	t.tel.IncrTrackingStopped()
	if t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug("AFK tracking stopped",
			"action", "stop_tracking", "group_id", groupID, "participant_id", participantID)
	}
}

// ResetTimer restarts both deadlines from the current time, re-running the
// full validation and exemption pipeline against possibly-changed settings.
// Untracked pairs are a silent no-op.
func (t *Tracker) ResetTimer(ctx context.Context, groupID, participantID string) {
	key := trackingKey(groupID, participantID)

	t.mu.Lock()
	e, ok := t.entries[key]
	if !ok {
		t.mu.Unlock()
		return
	}
	channelID := e.channelID
	t.mu.Unlock()

	t.StopTracking(groupID, participantID)
	t.StartTracking(ctx, groupID, participantID, channelID)
}

// StopAllTrackingForChannel stops every tracked pair in the group whose
// stored channel matches. Pairs in other channels or groups keep their
// deadlines untouched.
func (t *Tracker) StopAllTrackingForChannel(groupID, channelID string) {
	var stopped int

	t.mu.Lock()
	for key, e := range t.entries {
		if e.groupID == groupID && e.channelID == channelID {
			e.warnTimer.Stop()
			e.removeTimer.Stop()
			delete(t.entries, key)
			stopped++
		}
	}
	t.mu.Unlock()

	if stopped == 0 {
		return
	}
	for i := 0; i < stopped; i++ {
		t.tel.IncrTrackingStopped()
	}
	t.log.Info("AFK tracking stopped for channel",
		"action", "stop_channel", "group_id", groupID, "channel_id", channelID, "stopped", stopped)
}

// StartTrackingAllInChannel starts tracking for every listed participant. An
// empty list does nothing at all, not even a settings fetch; that distinction
// matters for platform call accounting. Duplicates are each processed, which
// is idempotent: the later call restarts the earlier call's timers.
func (t *Tracker) StartTrackingAllInChannel(ctx context.Context, groupID, channelID string, participantIDs []string) {
	if len(participantIDs) == 0 {
		return
	}
	for _, pid := range participantIDs {
		t.StartTracking(ctx, groupID, pid, channelID)
	}
}

// IsTracking reports whether the pair currently has live deadlines.
func (t *Tracker) IsTracking(groupID, participantID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[trackingKey(groupID, participantID)]
	return ok
}

// Entries returns a snapshot of all tracked pairs for introspection.
func (t *Tracker) Entries() []EntryInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return lo.MapToSlice(t.entries, func(_ string, e *entry) EntryInfo {
		return EntryInfo{GroupID: e.groupID, ParticipantID: e.participantID, ChannelID: e.channelID}
	})
}

// isExempt resolves the participant's roles through the directory, recording
// each attempted platform call with the guard before issuing it. Only calls
// actually attempted are recorded: a failed group fetch leaves the member
// fetch unrecorded.
func (t *Tracker) isExempt(ctx context.Context, groupID, participantID string, exemptRoleIDs []string) (bool, error) {
	t.guard.RecordAction("fetch_group")
	if _, err := t.directory.FetchGroup(ctx, groupID); err != nil {
		return false, fmt.Errorf("fetch group: %w", err)
	}

	t.guard.RecordAction("fetch_member")
	member, err := t.directory.FetchMember(ctx, groupID, participantID)
	if err != nil {
		return false, fmt.Errorf("fetch member: %w", err)
	}

	matched := lo.Intersect(member.RoleIDs, exemptRoleIDs)
	if len(matched) > 0 {
		t.log.Info("Participant exempt from AFK tracking",
			"action", "start_tracking",
			"group_id", groupID,
			"participant_id", participantID,
			"matched_role_id", matched[0],
		)
		return true, nil
	}
	return false, nil
}

// fireWarning is the warning-deadline callback. Delivery is best-effort: a
// failure is logged and the still-pending removal deadline stays untouched.
func (t *Tracker) fireWarning(key string, id uuid.UUID) {
	t.mu.Lock()
	e, ok := t.entries[key]
	if !ok || e.id != id {
		t.mu.Unlock()
		return
	}
	groupID, participantID, channelID := e.groupID, e.participantID, e.channelID
	t.mu.Unlock()

	ctx := context.Background()
	if err := t.notifier.SendWarning(ctx, groupID, participantID, channelID); err != nil {
		t.log.Warn("AFK warning delivery failed",
			"action", "send_warning", "group_id", groupID, "participant_id", participantID, "err", err)
		return
	}

	t.tel.IncrWarningsSent()
	t.log.Info("AFK warning sent",
		"action", "send_warning", "group_id", groupID, "participant_id", participantID, "channel_id", channelID)
}

// fireRemoval is the removal-deadline callback: guarded group fetch, guarded
// member fetch, then a guarded disconnect if the member still holds a voice
// session. Whatever happens, the entry this callback belongs to is cleared so
// the tracker never leaks a stale record after a permanently failing removal.
func (t *Tracker) fireRemoval(key string, id uuid.UUID) {
	t.mu.Lock()
	e, ok := t.entries[key]
	if !ok || e.id != id {
		t.mu.Unlock()
		return
	}
	groupID, participantID := e.groupID, e.participantID
	t.mu.Unlock()

	defer t.clearAfterRemoval(key, id)

	ctx := context.Background()

	t.guard.RecordAction("fetch_group")
	if _, err := t.directory.FetchGroup(ctx, groupID); err != nil {
		t.log.Error("Removal aborted, group lookup failed",
			"action", "remove", "group_id", groupID, "participant_id", participantID, "err", err)
		return
	}

	t.guard.RecordAction("fetch_member")
	member, err := t.directory.FetchMember(ctx, groupID, participantID)
	if err != nil {
		t.log.Error("Removal aborted, member lookup failed",
			"action", "remove", "group_id", groupID, "participant_id", participantID, "err", err)
		return
	}

	if !member.InVoice() {
		t.log.Info("Removal skipped, participant already left voice",
			"action", "remove", "group_id", groupID, "participant_id", participantID)
		return
	}

	t.guard.RecordAction("disconnect")
	if err := t.directory.Disconnect(ctx, groupID, participantID, DisconnectReason); err != nil {
		t.log.Error("Removal disconnect failed",
			"action", "remove", "group_id", groupID, "participant_id", participantID, "err", err)
		return
	}

	t.tel.IncrRemovals()
	t.log.Info("Participant disconnected after AFK timeout",
		"action", "remove",
		"group_id", groupID,
		"participant_id", participantID,
		"channel_id", member.VoiceChannelID,
	)
}

// clearAfterRemoval drops the entry the removal callback belonged to. The
// uuid comparison keeps a slow removal flow from deleting an entry that a
// concurrent restart installed for the same key while the flow was awaiting
// the platform.
func (t *Tracker) clearAfterRemoval(key string, id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[key]
	if !ok || e.id != id {
		return
	}
	e.warnTimer.Stop()
	delete(t.entries, key)
}

func validateTimeouts(timeoutSeconds, warningSeconds float64) (string, bool) {
	// Both values must be finite: an infinity survives every numeric
	// comparison below and converts to a garbage deadline.
	if !isFinite(timeoutSeconds) || !isFinite(warningSeconds) {
		return reasonNaNValues, false
	}
	if timeoutSeconds <= 0 || warningSeconds < 0 {
		return reasonNegativeValues, false
	}
	if warningSeconds >= timeoutSeconds {
		return reasonWarningExceedsTimeout, false
	}
	return "", true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
