package warrior

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Builder provides fluent construction of Warrior models
type Builder struct {
	id        uint32
	level     uint32
	health    uint32
	strength  uint32
	speed     uint32
	tenantId  uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewBuilder creates a new builder at baseline stats for the given tenant
func NewBuilder(tenantId uuid.UUID) *Builder {
	now := time.Now()
	return &Builder{
		level:     BaselineLevel,
		health:    BaselineHealth,
		strength:  BaselineStrength,
		speed:     BaselineSpeed,
		tenantId:  tenantId,
		createdAt: now,
		updatedAt: now,
	}
}

// SetId sets the warrior ID
func (b *Builder) SetId(id uint32) *Builder {
	b.id = id
	return b
}

// SetLevel sets the warrior level
func (b *Builder) SetLevel(level uint32) *Builder {
	b.level = level
	return b
}

// SetHealth sets the warrior health stat
func (b *Builder) SetHealth(health uint32) *Builder {
	b.health = health
	return b
}

// SetStrength sets the warrior strength stat
func (b *Builder) SetStrength(strength uint32) *Builder {
	b.strength = strength
	return b
}

// SetSpeed sets the warrior speed stat
func (b *Builder) SetSpeed(speed uint32) *Builder {
	b.speed = speed
	return b
}

// SetTenantId sets the tenant ID
func (b *Builder) SetTenantId(tenantId uuid.UUID) *Builder {
	b.tenantId = tenantId
	return b
}

// SetCreatedAt sets the creation timestamp
func (b *Builder) SetCreatedAt(createdAt time.Time) *Builder {
	b.createdAt = createdAt
	return b
}

// SetUpdatedAt sets the last update timestamp
func (b *Builder) SetUpdatedAt(updatedAt time.Time) *Builder {
	b.updatedAt = updatedAt
	return b
}

// Build validates the accumulated state and produces a Warrior
func (b *Builder) Build() (Warrior, error) {
	if b.tenantId == uuid.Nil {
		return Warrior{}, errors.New("tenant id is required")
	}

	return Warrior{
		id:        b.id,
		level:     b.level,
		health:    b.health,
		strength:  b.strength,
		speed:     b.speed,
		tenantId:  b.tenantId,
		createdAt: b.createdAt,
		updatedAt: b.updatedAt,
	}, nil
}
