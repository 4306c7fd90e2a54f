// Package utils provides common utility functions for the bundle importer.
// It includes helper functions for converting loosely typed database values
// and other shared logic that doesn't fit into domain-specific packages.
package utils
