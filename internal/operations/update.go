package operations

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cncutils/tapspeed/internal/backup"
	"github.com/cncutils/tapspeed/internal/gcode"
	"github.com/cncutils/tapspeed/internal/progress"
	"github.com/cncutils/tapspeed/internal/util"
)

// CollectFiles enumerates the eligible program files under root: every file
// whose name ends with ext, optionally narrowed by a glob pattern list
// applied to the slash-normalized path relative to root. A missing root
// yields no files rather than an error, so a run over an empty or absent
// tree completes with zero files processed.
func CollectFiles(root, ext, globPattern string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	return util.FilterWithGlob(files, globPattern, func(path string) string {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return filepath.ToSlash(path)
		}
		return filepath.ToSlash(rel)
	})
}

// UpdateTree rewrites every eligible file under root to the target speed,
// strictly sequentially, stopping at the first failure. The returned Summary
// is valid even on error and reflects the files completed before the
// failure.
func UpdateTree(root, speed string, opts *UpdateOptions) (Summary, error) {
	var summary Summary

	files, err := CollectFiles(root, opts.Extension, opts.GlobPattern)
	if err != nil {
		return summary, err
	}
	summary.Total = len(files)
	if len(files) == 0 {
		return summary, nil
	}

	showProgress := util.IsATTY() && !opts.QuietMode
	bar := progress.NewFileBar(len(files), "Updating", showProgress)

	for i, path := range files {
		bar.Describe(filepath.Base(path), i+1)

		result, err := updateFile(path, speed, opts)
		if err != nil {
			bar.Finish()
			return summary, fmt.Errorf("failed to update %s: %w", path, err)
		}

		switch result {
		case gcode.Updated:
			summary.Updated++
		case gcode.AlreadyCurrent:
			summary.Current++
		case gcode.NoDirective:
			summary.NoDirective++
		}
		opts.Logger.VerbosePrintf("%s: %s\n", path, result)

		bar.Add(1)
	}
	bar.Finish()

	return summary, nil
}

func updateFile(path, speed string, opts *UpdateOptions) (gcode.Result, error) {
	if opts.DryRun {
		return gcode.Plan(path, speed)
	}

	if opts.Backup {
		// Back up only files the rewrite will actually change.
		result, err := gcode.Plan(path, speed)
		if err != nil || result != gcode.Updated {
			return result, err
		}
		sum, err := backup.Create(path)
		if err != nil {
			return result, fmt.Errorf("backup failed: %w", err)
		}
		opts.Logger.VerbosePrintf("Backed up %s (sha256 %s)\n", path+backup.Suffix, sum)
	}

	return gcode.Rewrite(path, speed)
}

// UpdateMain runs an update over root and reports the outcome, returning the
// process exit status.
func UpdateMain(root, speed string, opts *UpdateOptions) UpdateStatus {
	summary, err := UpdateTree(root, speed, opts)
	if err != nil {
		fmt.Println("Update error:", err)
		return UpdateError
	}

	if summary.Total == 0 {
		opts.Logger.Printf("No %s files found under %s\n", opts.Extension, root)
		return UpdateNoFilesFound
	}

	if opts.DryRun {
		opts.Logger.Printf("Would update %d of %d files to %s (already current: %d, no directive: %d)\n",
			summary.Updated, summary.Total, gcode.CanonicalDirective(speed), summary.Current, summary.NoDirective)
	} else {
		opts.Logger.Printf("Updated %d of %d files to %s (already current: %d, no directive: %d)\n",
			summary.Updated, summary.Total, gcode.CanonicalDirective(speed), summary.Current, summary.NoDirective)
	}
	return UpdateSuccess
}
