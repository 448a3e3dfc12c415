package warrior

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity represents the GORM-compatible database representation of a warrior.
// The auto-incremented primary key doubles as the identifier issuer: the first
// insert is assigned 1, identifiers are monotone, and the database sequence
// keeps concurrent mints from colliding.
type Entity struct {
	ID        uint32    `gorm:"primaryKey;autoIncrement"`
	Level     uint32    `gorm:"not null"`
	Health    uint32    `gorm:"not null"`
	Strength  uint32    `gorm:"not null"`
	Speed     uint32    `gorm:"not null"`
	TenantId  uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the warrior entity
func (Entity) TableName() string {
	return "warriors"
}

// Migration performs the database migration for the warrior entity
func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

// Make transforms a warrior entity to a domain model
func Make(entity Entity) (Warrior, error) {
	return NewBuilder(entity.TenantId).
		SetId(entity.ID).
		SetLevel(entity.Level).
		SetHealth(entity.Health).
		SetStrength(entity.Strength).
		SetSpeed(entity.Speed).
		SetCreatedAt(entity.CreatedAt).
		SetUpdatedAt(entity.UpdatedAt).
		Build()
}

// ToEntity converts a warrior domain model to a database entity
func (w Warrior) ToEntity() Entity {
	return Entity{
		ID:        w.id,
		Level:     w.level,
		Health:    w.health,
		Strength:  w.strength,
		Speed:     w.speed,
		TenantId:  w.tenantId,
		CreatedAt: w.createdAt,
		UpdatedAt: w.updatedAt,
	}
}
