package migrations

import "embed"

// Files holds the note store schema, applied in file-name order on open.
//
//go:embed *.sql
var Files embed.FS
