package scheduler

import (
	"context"
	"time"

	"atlas-warriors/ledger"
	"atlas-warriors/retry"
	"atlas-warriors/warrior"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// URIReconciliationScheduler handles periodic repair of empty metadata URI slots
type URIReconciliationScheduler struct {
	log      logrus.FieldLogger
	ctx      context.Context
	db       *gorm.DB
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

// NewURIReconciliationScheduler creates a new URI reconciliation scheduler
func NewURIReconciliationScheduler(log logrus.FieldLogger, ctx context.Context, db *gorm.DB) *URIReconciliationScheduler {
	return &URIReconciliationScheduler{
		log:      log.WithField("component", "uri-reconciliation-scheduler"),
		ctx:      ctx,
		db:       db,
		interval: 5 * time.Minute,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// WithInterval sets the check interval
func (s *URIReconciliationScheduler) WithInterval(interval time.Duration) *URIReconciliationScheduler {
	s.interval = interval
	return s
}

// Start begins the background URI reconciliation checking
func (s *URIReconciliationScheduler) Start() {
	s.log.WithField("interval", s.interval).Info("Starting URI reconciliation scheduler")

	go s.run()
}

// Stop gracefully stops the scheduler
func (s *URIReconciliationScheduler) Stop() {
	s.log.Info("Stopping URI reconciliation scheduler")
	close(s.stop)
	<-s.done
	s.log.Info("URI reconciliation scheduler stopped")
}

// run is the main loop for the scheduler
func (s *URIReconciliationScheduler) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Process immediately on start
	s.processMissingURIs()

	for {
		select {
		case <-ticker.C:
			s.processMissingURIs()
		case <-s.stop:
			return
		case <-s.ctx.Done():
			s.log.Info("Context cancelled, stopping URI reconciliation scheduler")
			return
		}
	}
}

// processMissingURIs repairs empty URI slots for all tenants
func (s *URIReconciliationScheduler) processMissingURIs() {
	s.log.Debug("Checking URI slots for all tenants")

	tenantIds, err := s.getTenantsWithEntries()
	if err != nil {
		s.log.WithError(err).Error("Failed to get tenants with ledger entries")
		return
	}

	if len(tenantIds) == 0 {
		s.log.Debug("No tenants with ledger entries found")
		return
	}

	s.log.WithField("tenantCount", len(tenantIds)).Debug("Reconciling URI slots for tenants")

	for _, tenantId := range tenantIds {
		s.processMissingURIsForTenant(tenantId)
	}
}

// getTenantsWithEntries retrieves all tenant IDs that have ledger entries
func (s *URIReconciliationScheduler) getTenantsWithEntries() ([]uuid.UUID, error) {
	var tenantIds []uuid.UUID

	retryConfig := retry.DefaultRetryConfig().
		WithLogger(s.log.WithField("operation", "get-tenants-with-entries")).
		WithContext(s.ctx).
		WithMaxRetries(2).
		WithInitialDelay(500 * time.Millisecond)

	err := retry.ExecuteWithRetry(retryConfig, func() error {
		return s.db.Model(&ledger.Entity{}).
			Distinct("tenant_id").
			Pluck("tenant_id", &tenantIds).Error
	})

	return tenantIds, err
}

// processMissingURIsForTenant repairs empty URI slots for a specific tenant
func (s *URIReconciliationScheduler) processMissingURIsForTenant(tenantId uuid.UUID) {
	retryConfig := retry.DefaultRetryConfig().
		WithLogger(s.log.WithFields(logrus.Fields{
			"operation": "reconcile-missing-uris",
			"tenantId":  tenantId,
		})).
		WithContext(s.ctx).
		WithMaxRetries(3).
		WithInitialDelay(1 * time.Second).
		WithMaxDelay(10 * time.Second)

	err := retry.ExecuteWithRetry(retryConfig, func() error {
		tenantModel, err := tenant.Create(tenantId, "background-scheduler", 1, 0)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"tenantId": tenantId,
				"error":    err,
			}).Error("Failed to create tenant model")
			return err
		}

		tenantCtx := tenant.WithContext(s.ctx, tenantModel)

		processor := warrior.NewProcessor(s.log, tenantCtx, s.db)

		return processor.ReconcileMissingURIs()
	})

	if err != nil {
		s.log.WithFields(logrus.Fields{
			"tenantId": tenantId,
			"error":    err,
		}).Error("Failed to reconcile URI slots for tenant after retries")
		return
	}

	s.log.WithField("tenantId", tenantId).Debug("Successfully reconciled URI slots for tenant")
}
