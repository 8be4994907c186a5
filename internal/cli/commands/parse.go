package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"ctp/internal/config"
	"ctp/internal/parser"
	"ctp/internal/storage"
	"ctp/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ParseCommand handles the parse command
type ParseCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewParseCommand creates a new ParseCommand
func NewParseCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ParseCommand {
	return &ParseCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (pc *ParseCommand) Execute(cmd *cobra.Command, args []string) error {
	// Read the transcript
	var data []byte
	var err error
	source := "stdin"
	if pc.config.Flags.File != "" {
		source = pc.config.Flags.File
		data, err = os.ReadFile(pc.config.Flags.File)
		if err != nil {
			return fmt.Errorf("read transcript: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	// Encode line breaks with the sentinel token, the form get_ctests consumes
	sentinel := pc.config.GetSentinel()
	transcript := strings.ReplaceAll(string(data), "\n", sentinel)
	totalLines := strings.Count(transcript, sentinel) + 1

	ctestParser := parser.NewCTestParser(sentinel)
	if !pc.config.Flags.Quiet {
		ctestParser.SetProgress(ui.NewProgressBar(totalLines))
	}

	start := time.Now()
	records := ctestParser.Parse(transcript)
	duration := time.Since(start)

	if pc.config.Flags.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), parser.Serialize(records))
		return nil
	}

	if len(records) == 0 {
		color.Yellow("No test invocations found")
		return nil
	}

	// Save the run so view can pick it up
	if err := pc.storage.Save(records, totalLines, source, duration); err != nil {
		return fmt.Errorf("failed to save parse results: %w", err)
	}

	return pc.formatter.PrintMetaStats()
}
