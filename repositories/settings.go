//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=../mocks/mock_settings_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"

	"voice-lab/domain"
	apperrors "voice-lab/errors"
)

type ISettingsRepository interface {
	StoreGroupSettings(groupID string, settings domain.GroupSettings) error
	GetGroupSettings(groupID string) domain.GroupSettings
	ListGroupSettings() (map[string]domain.GroupSettings, error)
	DeleteGroupSettings(groupID string) error
}

// SettingsRepository persists per-group AFK settings in BadgerDB under
// "settings:{group_id}". Values are JSON: settings are operator-edited and
// small, so a self-describing codec beats a binary one here.
//
// Only settings are persisted. Timer state is deliberately in-memory: after a
// restart, tracking resumes from fresh presence events.
type SettingsRepository struct {
	db       *badger.DB
	log      *slog.Logger
	validate *validator.Validate
}

func NewSettingsRepository(db *badger.DB, log *slog.Logger) SettingsRepository {
	return SettingsRepository{
		db:       db,
		log:      log,
		validate: validator.New(),
	}
}

const settingsKeyPrefix = "settings:"

func settingsKey(groupID string) []byte {
	return []byte(settingsKeyPrefix + groupID)
}

// StoreGroupSettings validates and persists one group's settings. Structural
// validation only: the tracker re-checks the numeric relationship between
// timeout and warning offset on every tracking start.
func (r SettingsRepository) StoreGroupSettings(groupID string, settings domain.GroupSettings) error {
	if err := r.validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSettingsInvalid, err)
	}
	bytes, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(settingsKey(groupID), bytes)
	})
}

// GetGroupSettings returns the stored settings for the group, or the disabled
// defaults when the group was never configured or its record is unreadable.
func (r SettingsRepository) GetGroupSettings(groupID string) domain.GroupSettings {
	settings := domain.DefaultGroupSettings()
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(settingsKey(groupID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &settings)
		})
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			r.log.Warn("Unreadable group settings, using defaults", "group_id", groupID, "err", err)
		}
		return domain.DefaultGroupSettings()
	}
	return settings
}

// ListGroupSettings scans the settings prefix and returns every configured
// group, keyed by group id.
func (r SettingsRepository) ListGroupSettings() (map[string]domain.GroupSettings, error) {
	out := make(map[string]domain.GroupSettings)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(settingsKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			groupID := string(item.Key()[len(settingsKeyPrefix):])
			err := item.Value(func(val []byte) error {
				var settings domain.GroupSettings
				if err := json.Unmarshal(val, &settings); err != nil {
					return err
				}
				out[groupID] = settings
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r SettingsRepository) DeleteGroupSettings(groupID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(settingsKey(groupID))
	})
}
