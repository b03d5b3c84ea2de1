// Package commands provides CLI commands for planet.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/planet/internal/config"
	"github.com/diogo/planet/internal/logging"
	"github.com/diogo/planet/internal/render"
	"github.com/diogo/planet/internal/tui"
)

var (
	// Global flags
	apiURLFlag  string
	verboseFlag bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "planet",
	Short: "Chat with your PDFs from the terminal",
	Long: `planet is a terminal client for a PDF question-answering backend.
Upload a PDF, then ask questions about it in an interactive chat.

Examples:
  planet                                Start interactive chat
  planet chat --file report.pdf         Upload a PDF and start chatting
  planet upload report.pdf              Upload a PDF
  planet ask "What is the total?"       Ask a single question
  planet status                         Check that the backend is reachable
  planet config set api_url http://localhost:8000`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "planet %s (built %s)\n", Version, BuildTime)
			return nil
		}
		return runChat(defaultDeps, "")
	},
}

// defaultDeps are the production dependencies shared by all subcommands
var defaultDeps = NewDependencies()

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "",
		"Backend base URL (overrides "+config.EnvAPIURL+" and the config file)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Write debug logs to the configured log file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(NewChatCmd(defaultDeps))
	rootCmd.AddCommand(NewUploadCmd(defaultDeps))
	rootCmd.AddCommand(NewAskCmd(defaultDeps))
	rootCmd.AddCommand(NewStatusCmd(defaultDeps))
	rootCmd.AddCommand(NewConfigCmd())
}

// setup applies the user configuration: logging, markdown options and theme
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
	}

	if err := logging.Setup(verboseFlag || cfg.Verbose, cfg.LogFile); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	render.Configure(cfg)
	tui.UpdateTheme()
	updateStyles()
	return nil
}
