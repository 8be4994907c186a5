package ui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"ctp/internal/config"
	"ctp/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	var output domain.ParseRunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   CTest Transcript Statistics                 ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Lines")
	color.White("%-27d │\n", meta.TotalLines)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Records Parsed")
	color.Green("%-27d │\n", meta.Records)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Lines Skipped")
	color.Yellow("%-27d │\n", meta.SkippedLines)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Source")
	color.White("%-27s │\n", meta.Source)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", meta.Duration)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.Records == 0 {
		color.Yellow("No test invocations found in transcript")
		return nil
	}

	color.Green("✓ Parsed %d test invocation(s)", meta.Records)
	fmt.Println()
	f.printRecordList(output.Records)

	return nil
}

// printRecordList prints one line per parsed invocation
func (f *Formatter) printRecordList(records []domain.TestInvocationRecord) {
	for i, record := range records {
		fmt.Printf("  %s ", color.YellowString("%d.", i+1))
		color.White("%s", record.TestName)
		fmt.Printf("     %s %s\n", color.CyanString("exe:"), record.Executable)
		fmt.Printf("     %s%s\n", color.CyanString("dir:"), record.WorkingDirectory)
	}
}
