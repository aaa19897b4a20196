// Package domain contains core concepts of the voice moderation system.
// No runtime, network, or UI logic should be added here.
package domain

// GroupSettings is the effective per-group configuration snapshot used by the
// AFK tracker. It is re-fetched on every tracking start so that settings
// changes take effect the next time tracking restarts for a participant.
//
// TimeoutSeconds and WarningSeconds are floats on purpose: the settings store
// accepts raw operator input, and the tracker must be able to reject NaN or
// out-of-range values itself instead of trusting the storage layer.
type GroupSettings struct {
	Enabled          bool     `json:"enabled"`
	TimeoutSeconds   float64  `json:"timeout_seconds" validate:"omitempty,gt=0"`
	WarningSeconds   float64  `json:"warning_seconds" validate:"omitempty,gte=0"`
	WarningChannelID string   `json:"warning_channel_id"`
	ExemptRoleIDs    []string `json:"exempt_role_ids" validate:"dive,required"`
	AdminRoleIDs     []string `json:"admin_role_ids" validate:"dive,required"`
}

// DefaultGroupSettings is returned for groups that were never configured.
// Disabled by default: the feature only runs where an operator opted in.
func DefaultGroupSettings() GroupSettings {
	return GroupSettings{
		Enabled:        false,
		TimeoutSeconds: 600,
		WarningSeconds: 60,
	}
}
