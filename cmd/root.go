package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/scratchpad/internal/config"
	"github.com/mj1618/scratchpad/internal/output"
	"github.com/mj1618/scratchpad/internal/version"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		socket     string
		format     string
		pretty     bool
	}
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "scratchpad",
	Short: "Toggle tagged scratchpad windows in sway and i3",
	Long: `Launch a program into the sway or i3 scratchpad and toggle it.

The first toggle launches the command, marks its window SCRATCHPAD_<mark>
and moves it to the scratchpad. Later toggles show the window, sized and
centered on the focused output, or hide it again when it has focus.

Examples:
  scratchpad -m term -c "foot -e tmux"
  scratchpad toggle term
  scratchpad list --format json`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		format, err := output.ParseFormat(globalOpts.format)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput = globalOpts.pretty
		return nil
	},
	// The bare command keeps the single-command surface: -m/--mark toggles.
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("mark") {
			return cmd.Help()
		}
		return runToggle(cmd, args)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "", "Path to config file (default: ~/.config/scratchpad/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.socket, "sock", "s", "", "Sway/i3 IPC socket path (default: $SWAYSOCK, $I3SOCK)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.format, "format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.pretty, "pretty", false, "Pretty-print JSON output")
	addScratchpadFlags(rootCmd)
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
