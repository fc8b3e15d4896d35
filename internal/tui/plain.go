package tui

import (
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Interactive reports whether f is a terminal that can host the progress view.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PlainProgress is a single-line progress bar for non-interactive runs.
type PlainProgress struct {
	bar *progressbar.ProgressBar
}

// NewPlainProgress creates a progress bar writing to w.
func NewPlainProgress(w io.Writer, total int) *PlainProgress {
	return &PlainProgress{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Converting"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionOnCompletion(func() { io.WriteString(w, "\n") }),
		),
	}
}

// Add advances the bar by one file.
func (p *PlainProgress) Add(u Update) error {
	p.bar.Describe(filepath.Base(u.Path))
	return p.bar.Add(1)
}

// Finish completes the bar.
func (p *PlainProgress) Finish() error {
	return p.bar.Finish()
}
