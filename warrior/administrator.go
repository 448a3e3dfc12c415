package warrior

import (
	"time"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateWarrior inserts a new warrior at baseline stats and lets the primary
// key sequence issue its identifier
func CreateWarrior(db *gorm.DB, log logrus.FieldLogger) func(tenantId uuid.UUID) model.Provider[Entity] {
	return func(tenantId uuid.UUID) model.Provider[Entity] {
		return func() (Entity, error) {
			log.WithField("tenantId", tenantId).Debug("Creating warrior entity")

			now := time.Now()
			entity := Entity{
				Level:     BaselineLevel,
				Health:    BaselineHealth,
				Strength:  BaselineStrength,
				Speed:     BaselineSpeed,
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

// UpdateWarrior overwrites an existing warrior record
func UpdateWarrior(db *gorm.DB, log logrus.FieldLogger) func(warrior Warrior) model.Provider[Entity] {
	return func(warrior Warrior) model.Provider[Entity] {
		return func() (Entity, error) {
			log.WithField("warriorId", warrior.Id()).Debug("Updating warrior entity")

			entity := warrior.ToEntity()
			if err := db.Save(&entity).Error; err != nil {
				return Entity{}, err
			}

			return entity, nil
		}
	}
}
