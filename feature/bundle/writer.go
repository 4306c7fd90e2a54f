package bundle

import (
	"context"
	"fmt"

	"bundle-importer/core/utils"
	"bundle-importer/feature/bundle/models"
)

// SubtreeWriter removes and recreates the full persisted subtree (options,
// selections, titles) of bundle products. There is no partial update: a
// product's subtree is always rewritten as a whole, and option/selection
// identities are never reused across a rewrite.
type SubtreeWriter struct {
	store  Store
	tables Tables
}

// NewSubtreeWriter creates a writer over the given store and tables.
func NewSubtreeWriter(store Store, tables Tables) *SubtreeWriter {
	return &SubtreeWriter{store: store, tables: tables}
}

// RemoveOptions deletes every persisted option row owned by the given
// products, together with the selection and title rows that reference those
// options. No foreign-key cascade is assumed: dependents are deleted
// explicitly first, so the store never holds orphaned selection or title
// rows.
func (w *SubtreeWriter) RemoveOptions(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	productIDs := make([]int64, len(products))
	for i, p := range products {
		productIDs[i] = p.ID
	}

	optionRows, err := w.store.FetchRows(ctx, fmt.Sprintf(
		"SELECT `option_id` FROM `%s` WHERE `parent_id` IN ?", w.tables.Option), productIDs)
	if err != nil {
		return fmt.Errorf("failed to collect option ids for removal: %w", err)
	}

	optionIDs := make([]int64, 0, len(optionRows))
	for _, row := range optionRows {
		optionIDs = append(optionIDs, utils.ToInt64(row["option_id"]))
	}

	if err := w.store.DeleteWhereIn(ctx, w.tables.Selection, "option_id", optionIDs); err != nil {
		return err
	}
	if err := w.store.DeleteWhereIn(ctx, w.tables.Title, "option_id", optionIDs); err != nil {
		return err
	}
	return w.store.DeleteWhereIn(ctx, w.tables.Option, "parent_id", productIDs)
}

// CreateOptions inserts the full subtree for each product: option rows in
// candidate order with 1-based positions, their selection rows likewise,
// and finally the store-view title rows. Positions are derived from the
// candidate's array indices at write time, never from external ordering
// fields.
//
// Generated option identities are kept in an index keyed by the candidate
// option pointer; the title pass runs after all of a product's options are
// created so every referenced identity is known.
func (w *SubtreeWriter) CreateOptions(ctx context.Context, products []*models.Product) error {
	for _, product := range products {
		optionIDs := make(map[*models.Option]int64, len(product.Options))

		for i, option := range product.Options {
			optionID, err := w.store.ExecuteReturningID(ctx, fmt.Sprintf(
				"INSERT INTO `%s` (`parent_id`, `required`, `position`, `type`) VALUES (?, ?, ?, ?)",
				w.tables.Option),
				product.ID, option.Required, i+1, string(option.InputType))
			if err != nil {
				return fmt.Errorf("product %d: failed to insert option %d: %w", product.ID, i+1, err)
			}
			optionIDs[option] = optionID

			for j, selection := range option.Selections {
				err := w.store.Execute(ctx, fmt.Sprintf(
					"INSERT INTO `%s` (`option_id`, `parent_product_id`, `product_id`, `position`, `is_default`, `selection_price_type`, `selection_price_value`, `selection_qty`, `selection_can_change_qty`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
					w.tables.Selection),
					optionID, product.ID, selection.MemberProductID, j+1,
					selection.IsDefault, string(selection.PriceType),
					selection.PriceValue.StringFixed(decimalScale),
					selection.Quantity.StringFixed(decimalScale),
					selection.CanChangeQuantity)
				if err != nil {
					return fmt.Errorf("product %d: failed to insert selection %d of option %d: %w", product.ID, j+1, i+1, err)
				}
			}
		}

		// Title rows are driven by the store views, not the option loop.
		for _, storeView := range product.StoreViews {
			for _, title := range storeView.OptionTitles {
				optionID, ok := optionIDs[title.Option]
				if !ok {
					return fmt.Errorf("product %d: title %q for store view %d references an option outside the product's option list",
						product.ID, title.Title, storeView.StoreID)
				}
				err := w.store.Execute(ctx, fmt.Sprintf(
					"INSERT INTO `%s` (`option_id`, `store_id`, `title`) VALUES (?, ?, ?)",
					w.tables.Title),
					optionID, storeView.StoreID, title.Title)
				if err != nil {
					return fmt.Errorf("product %d: failed to insert title for store view %d: %w", product.ID, storeView.StoreID, err)
				}
			}
		}
	}

	return nil
}
