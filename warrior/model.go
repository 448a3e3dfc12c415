package warrior

import (
	"os"
	"time"

	"github.com/google/uuid"
)

// Baseline stat values assigned at mint time
const (
	BaselineLevel    = 0
	BaselineHealth   = 10
	BaselineStrength = 6
	BaselineSpeed    = 3
)

// StatMode selects which stat shape the registry exposes
type StatMode uint8

const (
	// StatModeFull tracks level, health, strength, and speed
	StatModeFull StatMode = iota
	// StatModeLevelOnly tracks level alone
	StatModeLevelOnly
)

// String returns the string representation of StatMode
func (m StatMode) String() string {
	switch m {
	case StatModeFull:
		return "full"
	case StatModeLevelOnly:
		return "level"
	default:
		return "unknown"
	}
}

// ParseStatMode resolves a stat mode from its configuration value.
// Unrecognized values fall back to the full shape.
func ParseStatMode(value string) StatMode {
	if value == "level" {
		return StatModeLevelOnly
	}
	return StatModeFull
}

// StatModeFromEnv resolves the stat mode from the STAT_MODE environment variable
func StatModeFromEnv() StatMode {
	return ParseStatMode(os.Getenv("STAT_MODE"))
}

// Warrior represents an immutable warrior stat record
type Warrior struct {
	id        uint32
	level     uint32
	health    uint32
	strength  uint32
	speed     uint32
	tenantId  uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// Id returns the warrior ID
func (w Warrior) Id() uint32 {
	return w.id
}

// Level returns the warrior level
func (w Warrior) Level() uint32 {
	return w.level
}

// Health returns the warrior health stat
func (w Warrior) Health() uint32 {
	return w.health
}

// Strength returns the warrior strength stat
func (w Warrior) Strength() uint32 {
	return w.strength
}

// Speed returns the warrior speed stat
func (w Warrior) Speed() uint32 {
	return w.speed
}

// TenantId returns the tenant ID
func (w Warrior) TenantId() uuid.UUID {
	return w.tenantId
}

// CreatedAt returns the creation timestamp
func (w Warrior) CreatedAt() time.Time {
	return w.createdAt
}

// UpdatedAt returns the last update timestamp
func (w Warrior) UpdatedAt() time.Time {
	return w.updatedAt
}

// AtBaseline returns true if every stat still holds its mint-time value
func (w Warrior) AtBaseline() bool {
	return w.level == BaselineLevel &&
		w.health == BaselineHealth &&
		w.strength == BaselineStrength &&
		w.speed == BaselineSpeed
}

// Builder returns a new builder seeded from the warrior
func (w Warrior) Builder() *Builder {
	return &Builder{
		id:        w.id,
		level:     w.level,
		health:    w.health,
		strength:  w.strength,
		speed:     w.speed,
		tenantId:  w.tenantId,
		createdAt: w.createdAt,
		updatedAt: w.updatedAt,
	}
}
