package main

import (
	"fmt"
	"os"
	"strings"

	"ctp/internal/cli"
	"ctp/internal/cli/commands"
	"ctp/internal/config"
	"ctp/internal/dispatch"

	"github.com/spf13/cobra"
)

var version = "dev"

// newRootCmd builds the root command: `ctp <function-name> <word> [<word> ...]`
// dispatches one of the exposed string functions; subcommands handle whole
// transcripts.
func newRootCmd(cfg *config.Config) *cobra.Command {
	table := dispatch.NewTable(cfg)

	rootCmd := &cobra.Command{
		Use:   "ctp <function-name> <word> [<word> ...]",
		Short: "CTest transcript processor",
		Long: `Parse CTest verbose-output transcripts into structured test invocation records, plus a handful of string transform helpers.

Exposed functions: ` + strings.Join(table.Names(), ", ") + `.
The remaining arguments are joined with single spaces into one input string; get_ctests expects line breaks encoded as the "` + cfg.Sentinel + `" sentinel token.`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Function name plus at least one word; anything less produces
			// no output and exits normally.
			if len(args) < 2 {
				return nil
			}

			fn, err := table.Resolve(args[0])
			if err != nil {
				return err
			}

			input := strings.Join(args[1:], " ")
			fmt.Fprintln(cmd.OutOrStdout(), fn(input))
			return nil
		},
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd
}

func main() {
	// Create initial config with defaults and environment overrides
	cfg := config.New()
	cfg.LoadEnv()

	rootCmd := newRootCmd(cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
