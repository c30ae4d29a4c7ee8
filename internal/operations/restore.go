package operations

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cncutils/tapspeed/internal/backup"
	"github.com/cncutils/tapspeed/internal/progress"
	"github.com/cncutils/tapspeed/internal/util"
)

// RestoreTree puts every backed-up program file under root back to its
// pre-rewrite contents. Backups are found by their suffix; the backup files
// themselves are kept.
func RestoreTree(root string, opts *UpdateOptions) (int, error) {
	backups, err := CollectFiles(root, opts.Extension+backup.Suffix, opts.GlobPattern)
	if err != nil {
		return 0, err
	}
	if len(backups) == 0 {
		return 0, nil
	}

	showProgress := util.IsATTY() && !opts.QuietMode
	bar := progress.NewFileBar(len(backups), "Restoring", showProgress)

	restored := 0
	for i, backupPath := range backups {
		original := strings.TrimSuffix(backupPath, backup.Suffix)
		bar.Describe(filepath.Base(original), i+1)

		if err := backup.Restore(original); err != nil {
			bar.Finish()
			return restored, fmt.Errorf("failed to restore %s: %w", original, err)
		}
		opts.Logger.VerbosePrintf("Restored %s\n", original)
		restored++
		bar.Add(1)
	}
	bar.Finish()

	return restored, nil
}

// RestoreMain runs a restore over root and reports the outcome, returning
// the process exit status.
func RestoreMain(root string, opts *UpdateOptions) UpdateStatus {
	restored, err := RestoreTree(root, opts)
	if err != nil {
		fmt.Println("Restore error:", err)
		return UpdateError
	}
	if restored == 0 {
		opts.Logger.Printf("No %s backups found under %s\n", opts.Extension+backup.Suffix, root)
		return UpdateNoFilesFound
	}
	opts.Logger.Printf("Restored %d files\n", restored)
	return UpdateSuccess
}
