package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows scan progress over a transcript's lines
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar sized to the transcript's line count
func NewProgressBar(lineCount int) *ProgressBar {
	bar := progressbar.NewOptions(lineCount,
		progressbar.OptionSetDescription(
			color.CyanString("Scanning lines: ")+
				color.GreenString("[records: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update advances the bar to the scanned line count
func (p *ProgressBar) Update(linesScanned, recordsFound int) {
	p.bar.Set(linesScanned)
	p.bar.Describe(
		color.CyanString("Scanning lines: ") +
			color.GreenString("[records: %d]", recordsFound),
	)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
