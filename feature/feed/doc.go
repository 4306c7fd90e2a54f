// Package feed loads candidate bundle products from JSON import feeds.
//
// A feed is an array of product records, each carrying the product id, an
// optional ordered option list with selections, and per-store-view title
// overrides. Feeds can live on the local filesystem or in object storage.
//
// The converter validates enumerated fields (input type, price type),
// parses decimal price and quantity values, and resolves title records
// (which reference options by 1-based index) to the option instances of
// the candidate graph consumed by feature/bundle.
//
// A product record without an "options" key yields the nil-option sentinel:
// the synchronizer will leave that product's persisted configuration alone.
package feed
