package cmd

import (
	"fmt"
	"sort"

	"bundle-importer/core/config"
	"bundle-importer/core/database"
	"bundle-importer/core/logger"
	"bundle-importer/feature/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd verifies the bundle tables before an import is attempted.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the bundle table schema",
	Long: `Verify that the configured option, selection, and title tables exist and
carry every column the importer reads and writes.`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	tables := bundle.Tables{
		Option:    cfg.Import.OptionTable,
		Selection: cfg.Import.SelectionTable,
		Title:     cfg.Import.TitleTable,
	}
	if err := tables.Validate(); err != nil {
		return err
	}

	required := tables.RequiredColumns()
	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := false
	for _, name := range names {
		missing, err := database.VerifyTable(db, name, required[name])
		if err != nil {
			return fmt.Errorf("failed to inspect table %s: %w", name, err)
		}
		if len(missing) > 0 {
			failed = true
			l.Error("Table is missing columns",
				zap.String("table", name),
				zap.Strings("missing", missing))
			continue
		}
		l.Info("Table verified", zap.String("table", name))
	}

	if failed {
		return fmt.Errorf("schema verification failed")
	}

	l.Info("All bundle tables verified")
	return nil
}
