package warrior

import (
	"context"
	"errors"
	"time"

	"atlas-warriors/kafka/message"
	warriorMsg "atlas-warriors/kafka/message/warrior"
	"atlas-warriors/kafka/producer"
	"atlas-warriors/ledger"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNotOwner indicates the caller does not own the referenced warrior
var ErrNotOwner = errors.New("caller does not own warrior")

// LedgerProvider constructs an ownership ledger processor bound to the given
// database handle, so ledger writes join the registry's transaction
type LedgerProvider func(db *gorm.DB) ledger.Processor

// Processor interface defines the warrior registry operations
type Processor interface {
	WithLedgerProvider(provider LedgerProvider) Processor
	WithStatMode(mode StatMode) Processor

	// Mutations
	Mint(ownerId uint32) model.Provider[Warrior]
	MintAndEmit(transactionId uuid.UUID, ownerId uint32) (Warrior, error)
	Train(warriorId uint32, characterId uint32, at time.Time) model.Provider[Warrior]
	TrainAndEmit(transactionId uuid.UUID, warriorId uint32, characterId uint32, at time.Time) (Warrior, error)

	// Access guard
	AuthorizeMutation(warriorId uint32, characterId uint32) error

	// Maintenance
	ReconcileMissingURIs() error

	// Queries
	GetById(warriorId uint32) model.Provider[Warrior]
	TokenURI(warriorId uint32) model.Provider[string]
	Level(warriorId uint32) model.Provider[uint32]
	Health(warriorId uint32) model.Provider[uint32]
	Strength(warriorId uint32) model.Provider[uint32]
	Speed(warriorId uint32) model.Provider[uint32]
}

// ProcessorImpl implements the Processor interface
type ProcessorImpl struct {
	log            logrus.FieldLogger
	ctx            context.Context
	db             *gorm.DB
	producer       producer.Provider
	mode           StatMode
	ledgerProvider LedgerProvider
}

// NewProcessor creates a new processor instance
func NewProcessor(log logrus.FieldLogger, ctx context.Context, db *gorm.DB) Processor {
	return &ProcessorImpl{
		log:      log,
		ctx:      ctx,
		db:       db,
		producer: producer.ProviderImpl(log)(ctx),
		mode:     StatModeFromEnv(),
		ledgerProvider: func(db *gorm.DB) ledger.Processor {
			return ledger.NewProcessor(log, ctx, db)
		},
	}
}

// WithLedgerProvider creates a new processor instance with a custom ownership ledger for testing
func (p *ProcessorImpl) WithLedgerProvider(provider LedgerProvider) Processor {
	return &ProcessorImpl{
		log:            p.log,
		ctx:            p.ctx,
		db:             p.db,
		producer:       p.producer,
		mode:           p.mode,
		ledgerProvider: provider,
	}
}

// WithStatMode creates a new processor instance with an explicit stat shape
func (p *ProcessorImpl) WithStatMode(mode StatMode) Processor {
	return &ProcessorImpl{
		log:            p.log,
		ctx:            p.ctx,
		db:             p.db,
		producer:       p.producer,
		mode:           mode,
		ledgerProvider: p.ledgerProvider,
	}
}

// Mint issues a new warrior for the given owner: the record is created at
// baseline, ownership is registered, and the metadata snapshot is written to
// the ledger's URI slot. All writes share one transaction, so a failure
// leaves no partial state.
func (p *ProcessorImpl) Mint(ownerId uint32) model.Provider[Warrior] {
	return func() (Warrior, error) {
		p.log.WithField("ownerId", ownerId).Debug("Processing warrior mint")

		t := tenant.MustFromContext(p.ctx)

		var minted Warrior
		err := p.db.Transaction(func(tx *gorm.DB) error {
			entity, err := CreateWarrior(tx, p.log)(t.Id())()
			if err != nil {
				return err
			}

			minted, err = Make(entity)
			if err != nil {
				return err
			}

			lp := p.ledgerProvider(tx)
			if _, err = lp.Assign(minted.Id(), ownerId); err != nil {
				return err
			}

			uri, err := BuildMetadata(minted.Id(), minted, p.mode)
			if err != nil {
				return err
			}

			_, err = lp.SetURI(minted.Id(), uri)
			return err
		})
		if err != nil {
			return Warrior{}, err
		}

		p.log.WithFields(logrus.Fields{
			"warriorId": minted.Id(),
			"ownerId":   ownerId,
		}).Info("Warrior minted successfully")

		return minted, nil
	}
}

// MintAndEmit mints a warrior and emits a created event
func (p *ProcessorImpl) MintAndEmit(transactionId uuid.UUID, ownerId uint32) (Warrior, error) {
	minted, err := p.Mint(ownerId)()
	if err != nil {
		return Warrior{}, err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		return buf.Put(warriorMsg.EnvEventTopicStatus, CreatedEventProvider(minted.Id(), ownerId, minted.CreatedAt()))
	})
	if err != nil {
		return Warrior{}, err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"warriorId":     minted.Id(),
	}).Debug("Created event emitted")

	return minted, nil
}

// AuthorizeMutation validates that the warrior exists and the caller owns it.
// It must fully pass before any mutation runs; it has no side effect.
func (p *ProcessorImpl) AuthorizeMutation(warriorId uint32, characterId uint32) error {
	lp := p.ledgerProvider(p.db)

	exists, err := lp.Exists(warriorId)
	if err != nil {
		return err
	}
	if !exists {
		return ErrWarriorNotFound
	}

	ownerId, err := lp.OwnerOf(warriorId)
	if err != nil {
		return err
	}
	if ownerId != characterId {
		return ErrNotOwner
	}

	return nil
}

// Train advances the warrior's stats on behalf of its owner and replaces the
// metadata snapshot in the ledger's URI slot. The access guard runs first;
// on guard failure nothing is mutated.
func (p *ProcessorImpl) Train(warriorId uint32, characterId uint32, at time.Time) model.Provider[Warrior] {
	return func() (Warrior, error) {
		p.log.WithFields(logrus.Fields{
			"warriorId":   warriorId,
			"characterId": characterId,
		}).Debug("Processing warrior train")

		if err := p.AuthorizeMutation(warriorId, characterId); err != nil {
			return Warrior{}, err
		}

		t := tenant.MustFromContext(p.ctx)

		var updated Warrior
		err := p.db.Transaction(func(tx *gorm.DB) error {
			current, err := GetWarriorByIdProvider(tx, p.log)(warriorId, t.Id())()
			if err != nil {
				return err
			}

			updated, err = current.Train(p.mode, characterId, at)
			if err != nil {
				return err
			}

			if _, err = UpdateWarrior(tx, p.log)(updated)(); err != nil {
				return err
			}

			uri, err := BuildMetadata(warriorId, updated, p.mode)
			if err != nil {
				return err
			}

			_, err = p.ledgerProvider(tx).SetURI(warriorId, uri)
			return err
		})
		if err != nil {
			return Warrior{}, err
		}

		p.log.WithFields(logrus.Fields{
			"warriorId": warriorId,
			"level":     updated.Level(),
		}).Info("Warrior trained successfully")

		return updated, nil
	}
}

// TrainAndEmit trains a warrior and emits a trained event
func (p *ProcessorImpl) TrainAndEmit(transactionId uuid.UUID, warriorId uint32, characterId uint32, at time.Time) (Warrior, error) {
	updated, err := p.Train(warriorId, characterId, at)()
	if err != nil {
		return Warrior{}, err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		return buf.Put(warriorMsg.EnvEventTopicStatus, TrainedEventProvider(updated, characterId, at))
	})
	if err != nil {
		return Warrior{}, err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"warriorId":     warriorId,
	}).Debug("Trained event emitted")

	return updated, nil
}

// ReconcileMissingURIs repopulates ledger URI slots that were left empty,
// rendering each snapshot from the warrior's current stat record
func (p *ProcessorImpl) ReconcileMissingURIs() error {
	t := tenant.MustFromContext(p.ctx)

	entries, err := ledger.GetEntriesMissingURIProvider(p.db, p.log)(t.Id())()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	p.log.WithField("count", len(entries)).Info("Repairing empty metadata URI slots")

	lp := p.ledgerProvider(p.db)
	for _, entry := range entries {
		warrior, err := GetWarriorByIdProvider(p.db, p.log)(entry.TokenId(), t.Id())()
		if err != nil {
			return err
		}

		uri, err := BuildMetadata(warrior.Id(), warrior, p.mode)
		if err != nil {
			return err
		}

		if _, err = lp.SetURI(warrior.Id(), uri); err != nil {
			return err
		}
	}

	return nil
}

// GetById retrieves a warrior's stat record, answering a zero-valued record
// for identifiers that were never issued
func (p *ProcessorImpl) GetById(warriorId uint32) model.Provider[Warrior] {
	return func() (Warrior, error) {
		t := tenant.MustFromContext(p.ctx)
		return GetWarriorByIdOrZeroProvider(p.db, p.log)(warriorId, t.Id())()
	}
}

// TokenURI returns the metadata snapshot stored at the most recent mint or
// train. The slot value is returned as stored, never lazily re-rendered.
func (p *ProcessorImpl) TokenURI(warriorId uint32) model.Provider[string] {
	return func() (string, error) {
		uri, err := p.ledgerProvider(p.db).GetURI(warriorId)
		if err != nil {
			if errors.Is(err, ledger.ErrEntryNotFound) {
				return "", ErrWarriorNotFound
			}
			return "", err
		}
		return uri, nil
	}
}

// Level returns the warrior's level, zero for unissued identifiers
func (p *ProcessorImpl) Level(warriorId uint32) model.Provider[uint32] {
	return statAccessor(p, warriorId, Warrior.Level)
}

// Health returns the warrior's health stat, zero for unissued identifiers
func (p *ProcessorImpl) Health(warriorId uint32) model.Provider[uint32] {
	return statAccessor(p, warriorId, Warrior.Health)
}

// Strength returns the warrior's strength stat, zero for unissued identifiers
func (p *ProcessorImpl) Strength(warriorId uint32) model.Provider[uint32] {
	return statAccessor(p, warriorId, Warrior.Strength)
}

// Speed returns the warrior's speed stat, zero for unissued identifiers
func (p *ProcessorImpl) Speed(warriorId uint32) model.Provider[uint32] {
	return statAccessor(p, warriorId, Warrior.Speed)
}

func statAccessor(p *ProcessorImpl, warriorId uint32, stat func(Warrior) uint32) model.Provider[uint32] {
	return func() (uint32, error) {
		warrior, err := p.GetById(warriorId)()
		if err != nil {
			return 0, err
		}
		return stat(warrior), nil
	}
}
