package commands

import (
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	cfgFile string
	verbose bool
	format  string
)

// NewRootCmd creates the intentctl root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intentctl",
		Short: "Inspect the MindBet intent pipeline",
		Long: `intentctl runs the MindBet intent pipeline outside the chat bot.

It resolves free text the same way the bot does (keyword table first,
LLM classifier on a miss), lists the keyword table and serves the
pipeline to LLM agents over MCP.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: config.yaml in ./config, ., /etc/app/)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline decisions to stderr")
	cmd.PersistentFlags().StringVar(&format, "format", formatText, "Output format: text or json")

	cmd.AddCommand(
		NewResolveCmd(),
		NewKeywordsCmd(),
		NewMCPCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
