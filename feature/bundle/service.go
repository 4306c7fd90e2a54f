package bundle

import (
	"context"

	"bundle-importer/feature/bundle/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes bundle synchronization over a database connection,
// handling the per-batch transaction boundary for its callers.
type Service struct {
	db     *gorm.DB
	tables Tables
	logger *zap.Logger
}

// NewService creates the bundle service. Table targets are validated once
// here; every later query builds on them.
func NewService(db *gorm.DB, tables Tables, logger *zap.Logger) (*Service, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &Service{db: db, tables: tables, logger: logger}, nil
}

// SyncBatch synchronizes one candidate batch inside a single transaction,
// so a failure never leaves a product with its subtree removed but not
// recreated.
func (s *Service) SyncBatch(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sync := NewSynchronizer(NewStore(tx), s.tables, s.logger)
		return sync.Sync(ctx, products)
	})
}

// DetectChanged reports which products of the batch would be rewritten,
// without writing anything. Used by dry runs.
func (s *Service) DetectChanged(ctx context.Context, products []*models.Product) ([]*models.Product, error) {
	detector := NewChangeDetector(NewStore(s.db), s.tables)
	return detector.DetectChanged(ctx, products)
}
