// Package bundle synchronizes the nested configuration of bundle products
// (options, member-product selections, per-store-view titles) with the
// database during bulk import.
//
// Rewriting every product's configuration on every run is wasteful when
// most rows are unchanged, so the package works in two phases:
//
//  1. ChangeDetector builds a canonical fingerprint of each product's
//     persisted configuration and of the candidate configuration, and
//     returns the products whose fingerprints differ.
//  2. SubtreeWriter deletes the full persisted subtree of each changed
//     product and recreates it from the candidate, assigning fresh
//     identities and 1-based positions.
//
// Synchronizer sequences the two; Service adds the per-batch transaction
// boundary. A candidate with a nil option list is a sentinel meaning "do
// not touch the persisted configuration" and is never rewritten, unlike an
// explicitly empty option list.
//
// # Components
//
//   - Store: the narrow storage port (parameterized reads/writes, identity
//     retrieval, bulk delete) implemented over gorm.
//   - Tables: the enumerated persisted-table targets.
//   - ChangeDetector / SubtreeWriter / Synchronizer: the sync pipeline.
//   - Service: transaction-scoped entry point for the import command.
package bundle
