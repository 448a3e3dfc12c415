package ledger

import (
	"errors"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrEntryNotFound indicates the referenced token has never been issued
var ErrEntryNotFound = errors.New("ownership entry not found")

// GetEntryByTokenIdProvider retrieves an ownership entry by token ID
func GetEntryByTokenIdProvider(db *gorm.DB, log logrus.FieldLogger) func(tokenId uint32, tenantId uuid.UUID) model.Provider[Entry] {
	return func(tokenId uint32, tenantId uuid.UUID) model.Provider[Entry] {
		return func() (Entry, error) {
			log.WithFields(logrus.Fields{
				"tokenId":  tokenId,
				"tenantId": tenantId,
			}).Debug("Retrieving ownership entry by token ID")

			var entity Entity
			err := db.Where("token_id = ? AND tenant_id = ?", tokenId, tenantId).First(&entity).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return Entry{}, ErrEntryNotFound
				}
				return Entry{}, err
			}

			return Make(entity)
		}
	}
}

// GetEntriesMissingURIProvider retrieves ownership entries whose URI slot has not been populated
func GetEntriesMissingURIProvider(db *gorm.DB, log logrus.FieldLogger) func(tenantId uuid.UUID) model.Provider[[]Entry] {
	return func(tenantId uuid.UUID) model.Provider[[]Entry] {
		return func() ([]Entry, error) {
			log.WithField("tenantId", tenantId).Debug("Retrieving ownership entries with empty URI slots")

			var entities []Entity
			err := db.Where("tenant_id = ? AND (uri IS NULL OR uri = '')", tenantId).
				Order("token_id ASC").
				Find(&entities).Error
			if err != nil {
				return nil, err
			}

			entries := make([]Entry, 0, len(entities))
			for _, entity := range entities {
				entry, err := Make(entity)
				if err != nil {
					return nil, err
				}
				entries = append(entries, entry)
			}

			return entries, nil
		}
	}
}
