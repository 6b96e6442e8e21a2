package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/scratchpad/internal/output"
	"github.com/mj1618/scratchpad/internal/scratchpad"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [name]",
	Short: "Launch, show or hide a scratchpad",
	Long: `Toggle a scratchpad window.

If no window carries the mark, the command is launched and its first
window is marked and moved to the scratchpad. If the marked window has
focus it is hidden; otherwise it is shown on the current workspace.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	addScratchpadFlags(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	r, err := resolveScratchpad(cmd, args)
	if err != nil {
		return err
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	result, err := scratchpad.New(provider, r.Options(), logger).Toggle(r.Target())
	if err != nil {
		return err
	}
	return output.Print(result)
}
