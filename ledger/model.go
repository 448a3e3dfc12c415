package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents an immutable ownership entry domain object
type Entry struct {
	tokenId   uint32
	ownerId   uint32
	uri       string
	tenantId  uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// TokenId returns the token identifier
func (e Entry) TokenId() uint32 {
	return e.tokenId
}

// OwnerId returns the owning character identifier
func (e Entry) OwnerId() uint32 {
	return e.ownerId
}

// URI returns the stored metadata reference
func (e Entry) URI() string {
	return e.uri
}

// TenantId returns the tenant ID
func (e Entry) TenantId() uuid.UUID {
	return e.tenantId
}

// CreatedAt returns the creation timestamp
func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns the last update timestamp
func (e Entry) UpdatedAt() time.Time {
	return e.updatedAt
}

// IsOwnedBy returns true if the given character owns the token
func (e Entry) IsOwnedBy(characterId uint32) bool {
	return e.ownerId == characterId
}

// NewEntry creates a new ownership entry model for testing purposes
func NewEntry(tokenId uint32, ownerId uint32, uri string, tenantId uuid.UUID) Entry {
	now := time.Now()
	return Entry{
		tokenId:   tokenId,
		ownerId:   ownerId,
		uri:       uri,
		tenantId:  tenantId,
		createdAt: now,
		updatedAt: now,
	}
}
