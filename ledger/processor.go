package ledger

import (
	"context"
	"errors"

	"github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Processor is the narrow ownership ledger surface consumed by the registry.
// It answers existence and ownership queries, registers issued tokens, and
// stores the per-token metadata reference.
type Processor interface {
	Exists(tokenId uint32) (bool, error)
	OwnerOf(tokenId uint32) (uint32, error)
	Assign(tokenId uint32, ownerId uint32) (Entry, error)
	SetURI(tokenId uint32, uri string) (Entry, error)
	GetURI(tokenId uint32) (string, error)
}

// ProcessorImpl implements the Processor interface against the ledger table
type ProcessorImpl struct {
	l   logrus.FieldLogger
	ctx context.Context
	db  *gorm.DB
	t   tenant.Model
}

// NewProcessor creates a new ledger processor instance
func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) Processor {
	return &ProcessorImpl{
		l:   l,
		ctx: ctx,
		db:  db,
		t:   tenant.MustFromContext(ctx),
	}
}

// Exists returns true if the token has an ownership entry
func (p *ProcessorImpl) Exists(tokenId uint32) (bool, error) {
	_, err := GetEntryByTokenIdProvider(p.db, p.l)(tokenId, p.t.Id())()
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// OwnerOf returns the owning character of the token
func (p *ProcessorImpl) OwnerOf(tokenId uint32) (uint32, error) {
	entry, err := GetEntryByTokenIdProvider(p.db, p.l)(tokenId, p.t.Id())()
	if err != nil {
		return 0, err
	}
	return entry.OwnerId(), nil
}

// Assign registers ownership of a freshly issued token
func (p *ProcessorImpl) Assign(tokenId uint32, ownerId uint32) (Entry, error) {
	entity, err := CreateEntry(p.db, p.l)(tokenId, ownerId, p.t.Id())()
	if err != nil {
		return Entry{}, err
	}
	return Make(entity)
}

// SetURI replaces the stored metadata reference for the token
func (p *ProcessorImpl) SetURI(tokenId uint32, uri string) (Entry, error) {
	entity, err := UpdateEntryURI(p.db, p.l)(tokenId, uri, p.t.Id())()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, err
	}
	return Make(entity)
}

// GetURI returns the stored metadata reference for the token
func (p *ProcessorImpl) GetURI(tokenId uint32) (string, error) {
	entry, err := GetEntryByTokenIdProvider(p.db, p.l)(tokenId, p.t.Id())()
	if err != nil {
		return "", err
	}
	return entry.URI(), nil
}
