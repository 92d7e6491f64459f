// Package constants provides shared constants used throughout the bookshelf
// codebase: file names, permissions and the persisted row layout.
package constants

import "time"

// Catalog file constants
const (
	// DefaultCatalogFile is the backing file used when no path is configured
	DefaultCatalogFile = "books.txt"

	// FieldDelimiter separates title, author and isbn on a persisted line
	FieldDelimiter = ","

	// FieldsPerRecord is the number of fields on every well-formed line
	FieldsPerRecord = 3

	// DefaultRowFormat is the row codec used when none is configured
	DefaultRowFormat = "quoted"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// ShutdownTimeout bounds cleanup after a command fails.
const ShutdownTimeout = 5 * time.Second
