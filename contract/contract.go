//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"voice-lab/domain"
)

// IConfigProvider supplies the effective per-group settings snapshot.
// The call is synchronous and does not count against the action rate guard:
// settings live in local storage, not behind the platform API.
type IConfigProvider interface {
	GetGroupSettings(groupID string) domain.GroupSettings
}

// IDirectory is the identity/permission lookup against the voice platform.
// Every method maps to one remote API call; callers are responsible for
// recording each attempt with the action rate guard before issuing it.
type IDirectory interface {
	FetchGroup(ctx context.Context, groupID string) (domain.Group, error)
	FetchMember(ctx context.Context, groupID, participantID string) (domain.Member, error)
	// Disconnect removes the participant from their current voice session.
	Disconnect(ctx context.Context, groupID, participantID, reason string) error
}

// INotifier delivers the AFK warning message. Delivery is best-effort: a
// failed warning must never affect the pending removal deadline.
type INotifier interface {
	SendWarning(ctx context.Context, groupID, participantID, channelID string) error
}

// ITracker is the public surface of the AFK timeout tracker, consumed by the
// presence event worker. Every operation either completes normally or is a
// documented no-op; none of them return an error to the caller.
type ITracker interface {
	StartTracking(ctx context.Context, groupID, participantID, channelID string)
	StopTracking(groupID, participantID string)
	ResetTimer(ctx context.Context, groupID, participantID string)
	StopAllTrackingForChannel(groupID, channelID string)
	StartTrackingAllInChannel(ctx context.Context, groupID, channelID string, participantIDs []string)
	IsTracking(groupID, participantID string) bool
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
