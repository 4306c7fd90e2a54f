package models

import (
	"github.com/shopspring/decimal"
)

// InputType is the selection widget a bundle option is rendered with.
type InputType string

const (
	InputTypeDropdown InputType = "dropdown"
	InputTypeRadio    InputType = "radio"
	InputTypeCheckbox InputType = "checkbox"
	InputTypeMulti    InputType = "multi"
	InputTypeSelect   InputType = "select"
)

// Valid reports whether the input type is one of the known values.
func (t InputType) Valid() bool {
	switch t {
	case InputTypeDropdown, InputTypeRadio, InputTypeCheckbox, InputTypeMulti, InputTypeSelect:
		return true
	default:
		return false
	}
}

// PriceType describes how a selection's price value is applied.
type PriceType string

const (
	PriceTypeFixed   PriceType = "fixed"
	PriceTypePercent PriceType = "percent"
)

// Valid reports whether the price type is one of the known values.
func (t PriceType) Valid() bool {
	switch t {
	case PriceTypeFixed, PriceTypePercent:
		return true
	default:
		return false
	}
}

// Selection is one concrete member-product choice within an option.
// It references a catalog product but does not own it.
type Selection struct {
	MemberProductID   int64
	IsDefault         bool
	PriceType         PriceType
	PriceValue        decimal.Decimal
	Quantity          decimal.Decimal
	CanChangeQuantity bool
}

// Option is one selectable slot within a bundle product's configuration.
// Candidates carry no persisted identity; generated option ids are tracked
// by the writer in an index keyed by the *Option pointer.
type Option struct {
	Required   bool
	InputType  InputType
	Selections []Selection
}

// OptionTitle is a per-store-view display title for one option of the
// owning product. Option points into the product's option list.
type OptionTitle struct {
	Option *Option
	Title  string
}

// StoreView holds the per-store-view title overrides of one product.
type StoreView struct {
	StoreID      int64
	OptionTitles []OptionTitle
}

// Product is one candidate bundle product in an import batch. Its id is
// assigned by the surrounding import system before synchronization runs.
//
// Options nil means "leave the persisted configuration untouched"; an empty
// non-nil slice means "the configuration is intentionally empty". The two
// states behave differently: only the latter can trigger removal of an
// existing configuration.
type Product struct {
	ID         int64
	Options    []*Option
	StoreViews []StoreView
}

// HasSpecifiedOptions reports whether the candidate carries a configuration
// at all, i.e. whether Options is non-nil.
func (p *Product) HasSpecifiedOptions() bool {
	return p.Options != nil
}
