package domain

import "time"

// Group is the subset of a platform group (server) the tracker needs.
type Group struct {
	ID   string
	Name string
}

// Member is a group membership record as returned by the directory.
// VoiceChannelID is empty when the member is not in any voice session.
type Member struct {
	GroupID        string
	ParticipantID  string
	DisplayName    string
	RoleIDs        []string
	VoiceChannelID string
	Bot            bool
}

// InVoice reports whether the member currently holds a live voice session.
func (m Member) InVoice() bool {
	return m.VoiceChannelID != ""
}

type PresenceEventType string

const (
	PresenceJoin     PresenceEventType = "join"
	PresenceLeave    PresenceEventType = "leave"
	PresenceMove     PresenceEventType = "move"
	PresenceActivity PresenceEventType = "activity"
)

// PresenceEvent is emitted by the platform gateway whenever voice membership
// or voice activity changes. For PresenceMove, OldChannelID carries the
// channel the participant left.
type PresenceEvent struct {
	Type          PresenceEventType
	GroupID       string
	ParticipantID string
	ChannelID     string
	OldChannelID  string
	At            time.Time
}
