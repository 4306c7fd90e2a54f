package feed

import (
	"github.com/shopspring/decimal"
)

// ProductRecord is one bundle product entry of an import feed.
//
// A missing "options" key leaves Options nil, which the converter carries
// through as the "do not touch the persisted configuration" sentinel. An
// explicit empty array means the configuration is intentionally empty.
type ProductRecord struct {
	ProductID  int64             `json:"product_id"`
	Options    []OptionRecord    `json:"options"`
	StoreViews []StoreViewRecord `json:"store_views"`
}

// OptionRecord is one option of a feed product, in display order.
type OptionRecord struct {
	Required   bool              `json:"required"`
	InputType  string            `json:"input_type"`
	Selections []SelectionRecord `json:"selections"`
}

// SelectionRecord is one member-product choice of an option. Price and
// quantity accept JSON numbers or strings.
type SelectionRecord struct {
	MemberProductID   int64           `json:"member_product_id"`
	IsDefault         bool            `json:"is_default"`
	PriceType         string          `json:"price_type"`
	PriceValue        decimal.Decimal `json:"price_value"`
	Quantity          decimal.Decimal `json:"quantity"`
	CanChangeQuantity bool            `json:"can_change_quantity"`
}

// StoreViewRecord carries the per-store-view option titles of a product.
type StoreViewRecord struct {
	StoreID int64         `json:"store_id"`
	Titles  []TitleRecord `json:"titles"`
}

// TitleRecord is one option title override. Option is the 1-based index of
// the referenced option in the product's option list.
type TitleRecord struct {
	Option int    `json:"option"`
	Title  string `json:"title"`
}
