package config_test

import (
	"testing"

	"bundle-importer/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 500, cfg.Import.BatchSize)
	assert.Equal(t, "catalog_product_bundle_option", cfg.Import.OptionTable)
	assert.Equal(t, "catalog_product_bundle_selection", cfg.Import.SelectionTable)
	assert.Equal(t, "catalog_product_bundle_option_value", cfg.Import.TitleTable)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DATABASE_NAME", "magento_test")
	t.Setenv("IMPORT_BATCH_SIZE", "50")
	t.Setenv("IMPORT_OPTION_TABLE", "bundle_option_staging")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "magento_test", cfg.Database.Name)
	assert.Equal(t, 50, cfg.Import.BatchSize)
	assert.Equal(t, "bundle_option_staging", cfg.Import.OptionTable)
}
