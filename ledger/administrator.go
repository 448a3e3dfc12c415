package ledger

import (
	"time"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateEntry registers ownership of a freshly issued token
func CreateEntry(db *gorm.DB, log logrus.FieldLogger) func(tokenId uint32, ownerId uint32, tenantId uuid.UUID) model.Provider[Entity] {
	return func(tokenId uint32, ownerId uint32, tenantId uuid.UUID) model.Provider[Entity] {
		return func() (Entity, error) {
			log.WithFields(logrus.Fields{
				"tokenId":  tokenId,
				"ownerId":  ownerId,
				"tenantId": tenantId,
			}).Debug("Creating ownership entry")

			now := time.Now()
			entity := Entity{
				TokenId:   tokenId,
				OwnerId:   ownerId,
				TenantId:  tenantId,
				CreatedAt: now,
				UpdatedAt: now,
			}

			if err := db.Create(&entity).Error; err != nil {
				return Entity{}, err
			}

			return entity, nil
		}
	}
}

// UpdateEntryURI replaces the stored metadata reference for a token
func UpdateEntryURI(db *gorm.DB, log logrus.FieldLogger) func(tokenId uint32, uri string, tenantId uuid.UUID) model.Provider[Entity] {
	return func(tokenId uint32, uri string, tenantId uuid.UUID) model.Provider[Entity] {
		return func() (Entity, error) {
			log.WithField("tokenId", tokenId).Debug("Updating ownership entry URI")

			var entity Entity
			if err := db.Where("token_id = ? AND tenant_id = ?", tokenId, tenantId).First(&entity).Error; err != nil {
				return Entity{}, err
			}

			entity.URI = uri
			entity.UpdatedAt = time.Now()
			if err := db.Save(&entity).Error; err != nil {
				return Entity{}, err
			}

			return entity, nil
		}
	}
}
