package workers

import (
	"context"
	"log/slog"

	"voice-lab/afk"
	"voice-lab/contract"
	"voice-lab/domain"
)

// PresenceWorker consumes voice presence events from the platform gateway and
// drives the AFK tracker. It keeps a roster per (group, channel) and applies
// the occupancy threshold exactly as the tracker publishes it:
//
//   - a channel reaching afk.MinVoiceOccupancy starts tracking for everybody
//     already in it,
//   - above the threshold only the newcomer starts tracking,
//   - dropping below the threshold stops tracking for the whole channel.
//
// The gateway only emits events for non-automated participants, so roster
// sizes are human occupancy.
type PresenceWorker struct {
	tracker contract.ITracker
	events  chan domain.PresenceEvent
	rosters map[string]map[string]struct{} // group:channel -> participant set
	log     *slog.Logger
}

func NewPresenceWorker(tracker contract.ITracker, events chan domain.PresenceEvent, log *slog.Logger) *PresenceWorker {
	return &PresenceWorker{
		tracker: tracker,
		events:  events,
		rosters: make(map[string]map[string]struct{}),
		log:     log,
	}
}

func (w *PresenceWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.events:
			if !ok {
				w.log.Debug("Presence channel is closed")
				return nil
			}
			w.handle(ctx, e)
		}
	}
}

func (w *PresenceWorker) handle(ctx context.Context, e domain.PresenceEvent) {
	switch e.Type {
	case domain.PresenceJoin:
		w.handleJoin(ctx, e.GroupID, e.ParticipantID, e.ChannelID)
	case domain.PresenceLeave:
		w.handleLeave(e.GroupID, e.ParticipantID, e.ChannelID)
	case domain.PresenceMove:
		w.handleLeave(e.GroupID, e.ParticipantID, e.OldChannelID)
		w.handleJoin(ctx, e.GroupID, e.ParticipantID, e.ChannelID)
	case domain.PresenceActivity:
		w.tracker.ResetTimer(ctx, e.GroupID, e.ParticipantID)
	default:
		w.log.Warn("Unknown presence event type", "type", string(e.Type))
	}
}

func (w *PresenceWorker) handleJoin(ctx context.Context, groupID, participantID, channelID string) {
	roster := w.roster(groupID, channelID)
	roster[participantID] = struct{}{}

	switch n := len(roster); {
	case n < afk.MinVoiceOccupancy:
		// Alone in the channel: nobody to be AFK towards.
	case n == afk.MinVoiceOccupancy:
		w.tracker.StartTrackingAllInChannel(ctx, groupID, channelID, participants(roster))
	default:
		w.tracker.StartTracking(ctx, groupID, participantID, channelID)
	}
}

func (w *PresenceWorker) handleLeave(groupID, participantID, channelID string) {
	w.tracker.StopTracking(groupID, participantID)

	roster := w.roster(groupID, channelID)
	delete(roster, participantID)
	if len(roster) < afk.MinVoiceOccupancy {
		w.tracker.StopAllTrackingForChannel(groupID, channelID)
	}
	if len(roster) == 0 {
		delete(w.rosters, rosterKey(groupID, channelID))
	}
}

func (w *PresenceWorker) roster(groupID, channelID string) map[string]struct{} {
	key := rosterKey(groupID, channelID)
	roster, ok := w.rosters[key]
	if !ok {
		roster = make(map[string]struct{})
		w.rosters[key] = roster
	}
	return roster
}

func rosterKey(groupID, channelID string) string {
	return groupID + ":" + channelID
}

func participants(roster map[string]struct{}) []string {
	out := make([]string, 0, len(roster))
	for pid := range roster {
		out = append(out, pid)
	}
	return out
}
