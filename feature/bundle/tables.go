package bundle

import (
	"fmt"
	"regexp"
)

// Tables enumerates the persisted tables the synchronizer reads and writes.
// Table targets are configuration, never free-form strings built into query
// text by callers; Validate rejects anything that is not a plain identifier.
type Tables struct {
	// Option holds one row per bundle option.
	Option string
	// Selection holds one row per member-product choice of an option.
	Selection string
	// Title holds one row per (store view, option) display title.
	Title string
}

// DefaultTables returns the standard catalog table names.
func DefaultTables() Tables {
	return Tables{
		Option:    "catalog_product_bundle_option",
		Selection: "catalog_product_bundle_selection",
		Title:     "catalog_product_bundle_option_value",
	}
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Validate checks that every table target is a plain SQL identifier.
func (t Tables) Validate() error {
	for _, name := range []string{t.Option, t.Selection, t.Title} {
		if !identifierPattern.MatchString(name) {
			return fmt.Errorf("invalid table name %q", name)
		}
	}
	return nil
}

// RequiredColumns returns, per table, the columns the synchronizer depends
// on. The check command verifies these against the live schema.
func (t Tables) RequiredColumns() map[string][]string {
	return map[string][]string{
		t.Option: {
			"option_id", "parent_id", "required", "position", "type",
		},
		t.Selection: {
			"selection_id", "option_id", "parent_product_id", "product_id",
			"position", "is_default", "selection_price_type",
			"selection_price_value", "selection_qty",
			"selection_can_change_qty",
		},
		t.Title: {
			"value_id", "option_id", "store_id", "title",
		},
	}
}
