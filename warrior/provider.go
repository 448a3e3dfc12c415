package warrior

import (
	"errors"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrWarriorNotFound indicates the referenced warrior has never been minted
var ErrWarriorNotFound = errors.New("warrior not found")

// GetWarriorByIdProvider retrieves a warrior by ID
func GetWarriorByIdProvider(db *gorm.DB, log logrus.FieldLogger) func(warriorId uint32, tenantId uuid.UUID) model.Provider[Warrior] {
	return func(warriorId uint32, tenantId uuid.UUID) model.Provider[Warrior] {
		return func() (Warrior, error) {
			log.WithFields(logrus.Fields{
				"warriorId": warriorId,
				"tenantId":  tenantId,
			}).Debug("Retrieving warrior by ID")

			var entity Entity
			err := db.Where("id = ? AND tenant_id = ?", warriorId, tenantId).First(&entity).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return Warrior{}, ErrWarriorNotFound
				}
				return Warrior{}, err
			}

			return Make(entity)
		}
	}
}

// GetWarriorByIdOrZeroProvider retrieves a warrior by ID, answering a
// zero-valued record for identifiers that were never issued. This mirrors
// default-zero-valued storage for the read-only stat accessors.
func GetWarriorByIdOrZeroProvider(db *gorm.DB, log logrus.FieldLogger) func(warriorId uint32, tenantId uuid.UUID) model.Provider[Warrior] {
	return func(warriorId uint32, tenantId uuid.UUID) model.Provider[Warrior] {
		return func() (Warrior, error) {
			warrior, err := GetWarriorByIdProvider(db, log)(warriorId, tenantId)()
			if err != nil {
				if errors.Is(err, ErrWarriorNotFound) {
					return Warrior{id: warriorId, tenantId: tenantId}, nil
				}
				return Warrior{}, err
			}
			return warrior, nil
		}
	}
}
