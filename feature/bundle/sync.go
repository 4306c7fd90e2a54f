package bundle

import (
	"context"

	"bundle-importer/feature/bundle/models"

	"go.uber.org/zap"
)

// Synchronizer sequences change detection and subtree rewriting for one
// batch of candidate products. Unchanged products receive zero writes;
// changed products get their whole subtree removed and recreated.
//
// The synchronizer does not open a transaction. The caller wraps the batch
// so that a failure between removal and recreation rolls the batch back as
// a whole. Concurrent runs over overlapping product ids are unsupported and
// must be serialized by the caller.
type Synchronizer struct {
	detector *ChangeDetector
	writer   *SubtreeWriter
	logger   *zap.Logger
}

// NewSynchronizer wires a detector and writer over the same store.
func NewSynchronizer(store Store, tables Tables, logger *zap.Logger) *Synchronizer {
	return &Synchronizer{
		detector: NewChangeDetector(store, tables),
		writer:   NewSubtreeWriter(store, tables),
		logger:   logger,
	}
}

// Sync detects the changed subset of the batch, removes its persisted
// subtrees, and recreates them from the candidates. An empty batch is a
// no-op.
func (s *Synchronizer) Sync(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	changed, err := s.detector.DetectChanged(ctx, products)
	if err != nil {
		return err
	}

	s.logger.Debug("bundle change detection finished",
		zap.Int("batch_size", len(products)),
		zap.Int("changed", len(changed)))

	if len(changed) == 0 {
		return nil
	}

	if err := s.writer.RemoveOptions(ctx, changed); err != nil {
		return err
	}
	if err := s.writer.CreateOptions(ctx, changed); err != nil {
		return err
	}

	s.logger.Info("bundle configurations rewritten",
		zap.Int("batch_size", len(products)),
		zap.Int("rewritten", len(changed)))
	return nil
}
