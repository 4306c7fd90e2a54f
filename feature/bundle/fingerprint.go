package bundle

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bundle-importer/core/utils"
	"bundle-importer/feature/bundle/models"
)

// fingerprintWriter serializes field values into a canonical fingerprint.
// Each field is length-prefixed, so a free-text title can never collide with
// the encoding of a differently shaped configuration.
type fingerprintWriter struct {
	b strings.Builder
}

func (w *fingerprintWriter) field(v string) {
	w.b.WriteString(strconv.Itoa(len(v)))
	w.b.WriteByte(':')
	w.b.WriteString(v)
	w.b.WriteByte(';')
}

func (w *fingerprintWriter) boolField(v bool) {
	if v {
		w.field("1")
	} else {
		w.field("0")
	}
}

func (w *fingerprintWriter) String() string {
	return w.b.String()
}

// decimalScale is the scale of the persisted DECIMAL price and quantity
// columns. Both fingerprint sides render decimals at this scale so a value
// round-trips through the store without a false difference.
const decimalScale = 4

// ChangeDetector decides which candidate products differ from their
// persisted bundle configuration, by canonical fingerprint comparison.
type ChangeDetector struct {
	store  Store
	tables Tables
}

// NewChangeDetector creates a detector over the given store and tables.
func NewChangeDetector(store Store, tables Tables) *ChangeDetector {
	return &ChangeDetector{store: store, tables: tables}
}

// CandidateFingerprint computes the canonical fingerprint of a candidate's
// in-memory configuration: option fields in list order, then selection
// fields (options outer, selections inner), then store-view titles in the
// order the candidate supplies them.
func CandidateFingerprint(p *models.Product) string {
	var w fingerprintWriter

	for _, option := range p.Options {
		w.boolField(option.Required)
		w.field(string(option.InputType))
	}
	for _, option := range p.Options {
		for _, selection := range option.Selections {
			w.field(strconv.FormatInt(selection.MemberProductID, 10))
			w.boolField(selection.IsDefault)
			w.field(string(selection.PriceType))
			w.field(selection.PriceValue.StringFixed(decimalScale))
			w.field(selection.Quantity.StringFixed(decimalScale))
			w.boolField(selection.CanChangeQuantity)
		}
	}
	for _, storeView := range p.StoreViews {
		for _, title := range storeView.OptionTitles {
			w.field(title.Title)
		}
	}

	return w.String()
}

// FetchPersistedFingerprints reads the persisted option, selection, and
// title rows for the given product ids and builds one fingerprint per id,
// using the same field order and encoding as CandidateFingerprint. Products
// with no persisted rows get the empty fingerprint.
//
// Row order is pinned on immutable key columns: options by (parent_id,
// position, option_id), selections and titles by their auto-increment
// primary key, which the writer's insert order makes equal to candidate
// order. Two reads over identical rows always yield identical fingerprints.
func (d *ChangeDetector) FetchPersistedFingerprints(ctx context.Context, productIDs []int64) (map[int64]string, error) {
	fingerprints := make(map[int64]string, len(productIDs))
	if len(productIDs) == 0 {
		return fingerprints, nil
	}

	writers := make(map[int64]*fingerprintWriter, len(productIDs))
	for _, id := range productIDs {
		writers[id] = &fingerprintWriter{}
	}

	optionRows, err := d.store.FetchRows(ctx, fmt.Sprintf(
		"SELECT `option_id`, `parent_id`, `required`, `type` FROM `%s` WHERE `parent_id` IN ? ORDER BY `parent_id`, `position`, `option_id`",
		d.tables.Option), productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted options: %w", err)
	}

	optionIDs := make([]int64, 0, len(optionRows))
	optionProduct := make(map[int64]int64, len(optionRows))
	for _, row := range optionRows {
		optionID := utils.ToInt64(row["option_id"])
		parentID := utils.ToInt64(row["parent_id"])
		optionIDs = append(optionIDs, optionID)
		optionProduct[optionID] = parentID

		w := writers[parentID]
		if w == nil {
			continue
		}
		w.boolField(utils.ToBool(row["required"]))
		w.field(utils.ToString(row["type"]))
	}

	if len(optionIDs) > 0 {
		selectionRows, err := d.store.FetchRows(ctx, fmt.Sprintf(
			"SELECT `parent_product_id`, `product_id`, `is_default`, `selection_price_type`, `selection_price_value`, `selection_qty`, `selection_can_change_qty` FROM `%s` WHERE `option_id` IN ? ORDER BY `selection_id`",
			d.tables.Selection), optionIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to read persisted selections: %w", err)
		}

		for _, row := range selectionRows {
			w := writers[utils.ToInt64(row["parent_product_id"])]
			if w == nil {
				continue
			}
			w.field(strconv.FormatInt(utils.ToInt64(row["product_id"]), 10))
			w.boolField(utils.ToBool(row["is_default"]))
			w.field(utils.ToString(row["selection_price_type"]))
			w.field(utils.ToDecimal(row["selection_price_value"]).StringFixed(decimalScale))
			w.field(utils.ToDecimal(row["selection_qty"]).StringFixed(decimalScale))
			w.boolField(utils.ToBool(row["selection_can_change_qty"]))
		}

		titleRows, err := d.store.FetchRows(ctx, fmt.Sprintf(
			"SELECT `option_id`, `title` FROM `%s` WHERE `option_id` IN ? ORDER BY `value_id`",
			d.tables.Title), optionIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to read persisted titles: %w", err)
		}

		for _, row := range titleRows {
			w := writers[optionProduct[utils.ToInt64(row["option_id"])]]
			if w == nil {
				continue
			}
			w.field(utils.ToString(row["title"]))
		}
	}

	for id, w := range writers {
		fingerprints[id] = w.String()
	}
	return fingerprints, nil
}

// DetectChanged returns the subset of candidates whose specified
// configuration differs from the persisted one. Candidates with an
// unspecified option list are excluded unconditionally; their persisted
// rows are left untouched.
func (d *ChangeDetector) DetectChanged(ctx context.Context, products []*models.Product) ([]*models.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}

	productIDs := make([]int64, len(products))
	for i, p := range products {
		productIDs[i] = p.ID
	}

	persisted, err := d.FetchPersistedFingerprints(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	var changed []*models.Product
	for _, p := range products {
		if !p.HasSpecifiedOptions() {
			continue
		}
		if persisted[p.ID] != CandidateFingerprint(p) {
			changed = append(changed, p)
		}
	}
	return changed, nil
}
