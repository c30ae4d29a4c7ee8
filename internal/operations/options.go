package operations

import (
	"github.com/cncutils/tapspeed/internal/util"
)

// UpdateOptions holds options for a spindle speed update run
type UpdateOptions struct {
	Extension   string // Eligible file extension, e.g. ".tap"
	GlobPattern string // Optional glob pattern(s) to filter files (comma-separated, supports negation with !)
	DryRun      bool   // Classify files without writing anything
	Backup      bool   // Write a compressed backup before rewriting a file
	Logger      util.Logger
	QuietMode   bool
}

// UpdateStatus represents the exit status of an update operation
type UpdateStatus int

const (
	UpdateSuccess      UpdateStatus = 0
	UpdateError        UpdateStatus = 1
	UpdateNoFilesFound UpdateStatus = 66
)

// Summary aggregates per-file rewrite results over one run.
type Summary struct {
	Total       int // eligible files discovered
	Updated     int // files rewritten (or that would be, in dry-run)
	Current     int // files whose directive already matched
	NoDirective int // files with no spindle directive line
}
