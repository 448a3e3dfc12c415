package ledger

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity represents the GORM-compatible database representation of an ownership entry
type Entity struct {
	TokenId   uint32    `gorm:"primaryKey;autoIncrement:false"`
	OwnerId   uint32    `gorm:"index;not null"`
	URI       string    `gorm:"type:text"`
	TenantId  uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ownership entry entity
func (Entity) TableName() string {
	return "ledger_entries"
}

// Migration performs the database migration for the ownership entry entity
func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

// Make transforms an ownership entry entity to a domain model
func Make(entity Entity) (Entry, error) {
	return Entry{
		tokenId:   entity.TokenId,
		ownerId:   entity.OwnerId,
		uri:       entity.URI,
		tenantId:  entity.TenantId,
		createdAt: entity.CreatedAt,
		updatedAt: entity.UpdatedAt,
	}, nil
}

// ToEntity converts an ownership entry domain model to a database entity
func (e Entry) ToEntity() Entity {
	return Entity{
		TokenId:   e.tokenId,
		OwnerId:   e.ownerId,
		URI:       e.uri,
		TenantId:  e.tenantId,
		CreatedAt: e.createdAt,
		UpdatedAt: e.updatedAt,
	}
}
