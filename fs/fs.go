package appfs

import "embed"

// FS holds the migration scripts and reference-data seeds shipped with the
// binary.
//
//go:embed migrations seed
var FS embed.FS
