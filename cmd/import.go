package cmd

import (
	"context"
	"fmt"

	"bundle-importer/core/config"
	"bundle-importer/core/database"
	"bundle-importer/core/logger"
	"bundle-importer/core/storage"
	"bundle-importer/feature/bundle"
	"bundle-importer/feature/bundle/models"
	"bundle-importer/feature/feed"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	feedFile   string
	feedObject string
	dryRun     bool
)

// importCmd synchronizes bundle configurations from a candidate feed.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import bundle option configurations from a feed",
	Long: `Import bundle option configurations from a JSON feed.

Each product's candidate configuration is fingerprinted against the persisted
one; only products whose configuration changed get their option subtree
removed and recreated. Unchanged products receive zero writes. Each batch
runs inside its own transaction.

Examples:
  # Import from a local feed file
  bundle-importer import --file bundles.json

  # Import from object storage
  bundle-importer import --object feeds/bundles.json

  # Report which products would be rewritten, without writing
  bundle-importer import --file bundles.json --dry-run`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&feedFile, "file", "", "Path to a local feed file")
	importCmd.Flags().StringVar(&feedObject, "object", "", "Feed object name in the configured bucket")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Detect changes only, write nothing")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if (feedFile == "") == (feedObject == "") {
		return fmt.Errorf("exactly one of --file or --object must be given")
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger, tagged with a fresh run id
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	l.Info("Starting bundle import", zap.Bool("dry_run", dryRun))

	// Load the candidate feed
	var products []*models.Product
	if feedFile != "" {
		products, err = feed.LoadFile(feedFile)
	} else {
		var client storage.Client
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		products, err = feed.LoadObject(ctx, client, cfg.Storage.Bucket, feedObject)
	}
	if err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	l.Info("Feed loaded", zap.Int("products", len(products)))

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	tables := bundle.Tables{
		Option:    cfg.Import.OptionTable,
		Selection: cfg.Import.SelectionTable,
		Title:     cfg.Import.TitleTable,
	}
	service, err := bundle.NewService(db, tables, l)
	if err != nil {
		return fmt.Errorf("failed to create bundle service: %w", err)
	}

	batchSize := cfg.Import.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	if dryRun {
		changed, err := service.DetectChanged(ctx, products)
		if err != nil {
			return fmt.Errorf("change detection failed: %w", err)
		}
		ids := make([]int64, len(changed))
		for i, p := range changed {
			ids[i] = p.ID
		}
		l.Info("Dry-run: products that would be rewritten",
			zap.Int("count", len(changed)),
			zap.Int64s("product_ids", ids))
		return nil
	}

	for start := 0; start < len(products); start += batchSize {
		end := start + batchSize
		if end > len(products) {
			end = len(products)
		}
		if err := service.SyncBatch(ctx, products[start:end]); err != nil {
			return fmt.Errorf("batch starting at product %d failed: %w", products[start].ID, err)
		}
	}

	l.Info("Bundle import finished", zap.Int("products", len(products)))
	return nil
}
