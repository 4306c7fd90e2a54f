package bundle_test

import (
	"context"
	"testing"

	"bundle-importer/feature/bundle"
	"bundle-importer/feature/bundle/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSynchronizer(t *testing.T) (*bundle.Synchronizer, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return bundle.NewSynchronizer(bundle.NewStore(db), bundle.DefaultTables(), zap.NewNop()), mock
}

func expectDetectionQueries(mock sqlmock.Sqlmock, optionRows, selectionRows, titleRows *sqlmock.Rows) {
	mock.ExpectQuery("FROM `catalog_product_bundle_option` WHERE").WillReturnRows(optionRows)
	if selectionRows != nil {
		mock.ExpectQuery("FROM `catalog_product_bundle_selection`").WillReturnRows(selectionRows)
		mock.ExpectQuery("FROM `catalog_product_bundle_option_value`").WillReturnRows(titleRows)
	}
}

func TestSync_EmptyBatch(t *testing.T) {
	sync, mock := newSynchronizer(t)

	require.NoError(t, sync.Sync(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSync_UnchangedProductGetsZeroWrites(t *testing.T) {
	sync, mock := newSynchronizer(t)

	expectDetectionQueries(mock, persistedOptionRows(100), persistedSelectionRows("5.0000"), emptyTitleRows())

	require.NoError(t, sync.Sync(context.Background(), []*models.Product{fixtureProduct("5.00")}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSync_UnspecifiedProductUntouched(t *testing.T) {
	sync, mock := newSynchronizer(t)

	// Product 30 has persisted rows. Its candidate leaves the option list
	// unspecified, so beyond the bulk fingerprint fetch nothing happens.
	optionRows := sqlmock.NewRows([]string{"option_id", "parent_id", "required", "type"}).
		AddRow(300, 30, 1, "checkbox")
	selectionRows := sqlmock.NewRows([]string{
		"parent_product_id", "product_id", "is_default", "selection_price_type",
		"selection_price_value", "selection_qty", "selection_can_change_qty",
	}).AddRow(30, 44, 0, "percent", []byte("10.0000"), []byte("1.0000"), 1)
	expectDetectionQueries(mock, optionRows, selectionRows, emptyTitleRows())

	require.NoError(t, sync.Sync(context.Background(), []*models.Product{{ID: 30}}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The concrete rewrite scenario: persisted product 10 holds the same single
// option/selection as the candidate except for priceValue 5.00 vs 7.50. The
// whole subtree is deleted and recreated with fresh identities and positions
// restarting at 1.
func TestSync_PriceChangeRewritesSubtree(t *testing.T) {
	sync, mock := newSynchronizer(t)

	expectDetectionQueries(mock, persistedOptionRows(100), persistedSelectionRows("5.0000"), emptyTitleRows())

	// Removal: collect option ids, delete dependents, delete options.
	mock.ExpectQuery("SELECT `option_id` FROM `catalog_product_bundle_option`").
		WillReturnRows(sqlmock.NewRows([]string{"option_id"}).AddRow(100))
	mock.ExpectExec("DELETE FROM `catalog_product_bundle_selection`").
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `catalog_product_bundle_option_value`").
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `catalog_product_bundle_option`").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Recreation: a fresh option identity (not 100), positions back at 1.
	mock.ExpectExec("INSERT INTO `catalog_product_bundle_option`").
		WithArgs(int64(10), true, 1, "select").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectQuery("SELECT LAST_INSERT_ID").
		WillReturnRows(sqlmock.NewRows([]string{"LAST_INSERT_ID()"}).AddRow(101))
	mock.ExpectExec("INSERT INTO `catalog_product_bundle_selection`").
		WithArgs(int64(101), int64(10), int64(20), 1, true, "fixed", "7.5000", "1.0000", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, sync.Sync(context.Background(), []*models.Product{fixtureProduct("7.50")}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Idempotence: after a rewrite, the persisted rows match the candidate, so
// a second run over the same batch issues zero writes.
func TestSync_SecondRunIssuesZeroWrites(t *testing.T) {
	sync, mock := newSynchronizer(t)

	// The second run sees the rows the first run wrote.
	expectDetectionQueries(mock, persistedOptionRows(101), persistedSelectionRows("7.5000"), emptyTitleRows())

	require.NoError(t, sync.Sync(context.Background(), []*models.Product{fixtureProduct("7.50")}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A mixed batch: one changed product is rewritten, the unchanged and the
// unspecified ones receive zero writes.
func TestSync_MixedBatch(t *testing.T) {
	sync, mock := newSynchronizer(t)

	optionRows := sqlmock.NewRows([]string{"option_id", "parent_id", "required", "type"}).
		AddRow(100, 10, 1, "select").
		AddRow(300, 30, 0, "radio")
	selectionRows := persistedSelectionRows("5.0000")
	expectDetectionQueries(mock, optionRows, selectionRows, emptyTitleRows())

	mock.ExpectQuery("SELECT `option_id` FROM `catalog_product_bundle_option`").
		WillReturnRows(sqlmock.NewRows([]string{"option_id"}).AddRow(100))
	mock.ExpectExec("DELETE FROM `catalog_product_bundle_selection`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `catalog_product_bundle_option_value`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `catalog_product_bundle_option`").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec("INSERT INTO `catalog_product_bundle_option`").
		WillReturnResult(sqlmock.NewResult(102, 1))
	mock.ExpectQuery("SELECT LAST_INSERT_ID").
		WillReturnRows(sqlmock.NewRows([]string{"LAST_INSERT_ID()"}).AddRow(102))
	mock.ExpectExec("INSERT INTO `catalog_product_bundle_selection`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	changedCandidate := fixtureProduct("7.50")
	unspecified := &models.Product{ID: 30}

	require.NoError(t, sync.Sync(context.Background(), []*models.Product{changedCandidate, unspecified}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
