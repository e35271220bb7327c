// Package export provides functionality for exporting generated floor
// plan variants to various formats such as JSON and other serialization
// formats.
//
// The package offers both formatted (indented) and compact export options
// to accommodate different use cases, from human-readable output to
// space-efficient storage.
package export
