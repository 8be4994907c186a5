package commands

import (
	"ctp/internal/cli"
	"ctp/internal/config"
	"ctp/internal/storage"
	"ctp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Parse *ParseCommand
	View  *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	recordViewer := ui.NewRecordViewer(cfg)

	return &Commands{
		Parse: NewParseCommand(cfg, jsonStorage, formatter),
		View:  NewViewCommand(cfg, jsonStorage, recordViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Parse command
	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a CTest transcript into invocation records",
		Long:  "Read a multi-line CTest verbose transcript from a file or stdin, extract test invocation records, print a summary and save the run",
		RunE:  c.Parse.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	parseCmd.Flags().StringVarP(&flags.File, "file", "f", "", "Path to a transcript file (default: read stdin)")
	parseCmd.Flags().StringVarP(&flags.Sentinel, "sentinel", "s", "", "Override the line-break sentinel token")
	parseCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Print only the serialized records, no summary")
	rootCmd.AddCommand(parseCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "View the last parse run interactively",
		Long:  "Display the test invocation records from the last parse run in an interactive viewer",
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
