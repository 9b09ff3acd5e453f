package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many selected question sets have been played
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	total int
	done  int
}

// NewProgressBar creates a new progress bar
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, total: count}
}

func describe(passed, failed int) string {
	return color.CyanString("Playing question sets: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// Update updates the progress bar with pass and failure counts
func (p *ProgressBar) Update(passed, failed int) {
	p.done = passed + failed
	p.bar.Describe(describe(passed, failed))
	p.bar.Set(p.done)
}

// Finish completes the progress bar. A run stopped early leaves the bar
// where it was instead of filling it.
func (p *ProgressBar) Finish() {
	if p.done >= p.total {
		p.bar.Finish()
		return
	}
	p.bar.Exit()
	fmt.Fprint(os.Stderr, "\n")
}
