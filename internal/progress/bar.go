package progress

import (
	"fmt"
	"io"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// FileBar tracks progress over a fixed number of files. It is display-only:
// correctness of a run never depends on it, and it renders nothing when
// showProgress is false or the total is zero.
type FileBar struct {
	bar          *progressbar.ProgressBar
	total        int
	description  string
	showProgress bool
}

// NewFileBar creates a progress bar over totalFiles files. The description
// parameter should describe the operation (e.g., "Updating"). The
// showProgress parameter controls whether progress should be shown
// (typically util.IsATTY() && !quietMode).
func NewFileBar(totalFiles int, description string, showProgress bool) *FileBar {
	var writer io.Writer = ansi.NewAnsiStdout()
	if !showProgress || totalFiles == 0 {
		writer = io.Discard
	}

	bar := progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	return &FileBar{
		bar:          bar,
		total:        totalFiles,
		description:  description,
		showProgress: showProgress,
	}
}

// Describe updates the bar label with the file currently being processed.
func (p *FileBar) Describe(name string, current int) {
	p.bar.Describe(fmt.Sprintf("[cyan][%d/%d][reset] %s %s", current, p.total, p.description, name))
}

// Add advances the bar by n files.
func (p *FileBar) Add(n int) error {
	return p.bar.Add(n)
}

// Finish completes the progress bar and prints a newline if progress is shown
func (p *FileBar) Finish() error {
	err := p.bar.Finish()
	if p.showProgress && p.total > 0 {
		fmt.Println()
	}
	return err
}
