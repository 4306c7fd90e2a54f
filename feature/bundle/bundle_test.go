package bundle_test

import (
	"testing"

	"bundle-importer/feature/bundle/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// fixtureProduct builds the candidate used throughout: product 10 with one
// required select option holding one fixed-price selection of product 20.
func fixtureProduct(priceValue string) *models.Product {
	option := &models.Option{
		Required:  true,
		InputType: models.InputTypeSelect,
		Selections: []models.Selection{
			{
				MemberProductID:   20,
				IsDefault:         true,
				PriceType:         models.PriceTypeFixed,
				PriceValue:        decimal.RequireFromString(priceValue),
				Quantity:          decimal.NewFromInt(1),
				CanChangeQuantity: false,
			},
		},
	}
	return &models.Product{ID: 10, Options: []*models.Option{option}}
}

// persistedOptionRows returns option rows as the store delivers them for
// fixtureProduct after a create run.
func persistedOptionRows(optionID int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"option_id", "parent_id", "required", "type"}).
		AddRow(optionID, 10, 1, "select")
}

// persistedSelectionRows returns the matching selection rows, with the
// DECIMAL columns rendered at the persisted scale the way the driver
// delivers them.
func persistedSelectionRows(priceValue string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"parent_product_id", "product_id", "is_default", "selection_price_type",
		"selection_price_value", "selection_qty", "selection_can_change_qty",
	}).AddRow(10, 20, 1, "fixed", []byte(priceValue), []byte("1.0000"), 0)
}

func emptyTitleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"option_id", "title"})
}
