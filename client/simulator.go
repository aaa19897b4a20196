// Package client provides the platform gateway implementations the tracker
// talks to. The Simulator is an in-memory stand-in for a live voice platform:
// it backs lab mode and the integration tests with real presence mechanics
// (joins, leaves, disconnect side effects) without any network.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"voice-lab/domain"
	apperrors "voice-lab/errors"
)

// Warning is one recorded AFK warning delivery.
type Warning struct {
	GroupID       string
	ParticipantID string
	ChannelID     string
}

// Simulator implements contract.IDirectory and contract.INotifier over an
// in-memory group/member table and emits presence events the way a live
// gateway would.
type Simulator struct {
	log    *slog.Logger
	events chan domain.PresenceEvent

	mu       sync.Mutex
	groups   map[string]domain.Group
	members  map[string]map[string]domain.Member // group id -> participant id
	warnings []Warning
	failWarn bool
}

func NewSimulator(log *slog.Logger, eventBufferSize int) *Simulator {
	return &Simulator{
		log:     log,
		events:  make(chan domain.PresenceEvent, eventBufferSize),
		groups:  make(map[string]domain.Group),
		members: make(map[string]map[string]domain.Member),
	}
}

// Events is the presence stream consumed by the presence worker.
func (s *Simulator) Events() chan domain.PresenceEvent {
	return s.events
}

func (s *Simulator) AddGroup(group domain.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[group.ID] = group
	if _, ok := s.members[group.ID]; !ok {
		s.members[group.ID] = make(map[string]domain.Member)
	}
}

func (s *Simulator) AddMember(member domain.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[member.GroupID]; !ok {
		s.members[member.GroupID] = make(map[string]domain.Member)
	}
	s.members[member.GroupID][member.ParticipantID] = member
}

// JoinVoice puts the member into the channel and emits a join event.
func (s *Simulator) JoinVoice(groupID, participantID, channelID string) {
	s.mu.Lock()
	member, ok := s.members[groupID][participantID]
	if ok {
		member.VoiceChannelID = channelID
		s.members[groupID][participantID] = member
	}
	s.mu.Unlock()

	s.emit(domain.PresenceEvent{
		Type:          domain.PresenceJoin,
		GroupID:       groupID,
		ParticipantID: participantID,
		ChannelID:     channelID,
	})
}

// LeaveVoice clears the member's voice session and emits a leave event.
func (s *Simulator) LeaveVoice(groupID, participantID string) {
	s.mu.Lock()
	var channelID string
	member, ok := s.members[groupID][participantID]
	if ok {
		channelID = member.VoiceChannelID
		member.VoiceChannelID = ""
		s.members[groupID][participantID] = member
	}
	s.mu.Unlock()

	s.emit(domain.PresenceEvent{
		Type:          domain.PresenceLeave,
		GroupID:       groupID,
		ParticipantID: participantID,
		ChannelID:     channelID,
	})
}

// Speak emits a voice activity event; the presence worker turns it into a
// timer reset.
func (s *Simulator) Speak(groupID, participantID string) {
	s.emit(domain.PresenceEvent{
		Type:          domain.PresenceActivity,
		GroupID:       groupID,
		ParticipantID: participantID,
	})
}

func (s *Simulator) FetchGroup(_ context.Context, groupID string) (domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[groupID]
	if !ok {
		return domain.Group{}, fmt.Errorf("%w: %s", apperrors.ErrGroupNotFound, groupID)
	}
	return group, nil
}

func (s *Simulator) FetchMember(_ context.Context, groupID, participantID string) (domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.members[groupID][participantID]
	if !ok {
		return domain.Member{}, fmt.Errorf("%w: %s/%s", apperrors.ErrMemberNotFound, groupID, participantID)
	}
	return member, nil
}

// Disconnect ends the member's voice session and emits the leave event the
// platform would, so the presence worker sees the removal like any other
// departure.
func (s *Simulator) Disconnect(_ context.Context, groupID, participantID, reason string) error {
	s.mu.Lock()
	member, ok := s.members[groupID][participantID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s/%s", apperrors.ErrMemberNotFound, groupID, participantID)
	}
	channelID := member.VoiceChannelID
	member.VoiceChannelID = ""
	s.members[groupID][participantID] = member
	s.mu.Unlock()

	s.log.Info("Simulated disconnect", "group_id", groupID, "participant_id", participantID, "reason", reason)
	s.emit(domain.PresenceEvent{
		Type:          domain.PresenceLeave,
		GroupID:       groupID,
		ParticipantID: participantID,
		ChannelID:     channelID,
	})
	return nil
}

func (s *Simulator) SendWarning(_ context.Context, groupID, participantID, channelID string) error {
	s.mu.Lock()
	fail := s.failWarn
	if !fail {
		s.warnings = append(s.warnings, Warning{
			GroupID:       groupID,
			ParticipantID: participantID,
			ChannelID:     channelID,
		})
	}
	s.mu.Unlock()

	if fail {
		return fmt.Errorf("warning channel unavailable")
	}
	s.log.Info("Simulated AFK warning", "group_id", groupID, "participant_id", participantID, "channel_id", channelID)
	return nil
}

// Warnings returns the warnings delivered so far.
func (s *Simulator) Warnings() []Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// FailWarnings toggles warning-delivery failures for tests.
func (s *Simulator) FailWarnings(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWarn = fail
}

func (s *Simulator) emit(e domain.PresenceEvent) {
	e.At = time.Now().UTC()
	select {
	case s.events <- e:
	default:
		s.log.Warn("Presence event dropped, buffer full", "type", string(e.Type))
	}
}
