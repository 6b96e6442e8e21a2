package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/scratchpad/internal/output"
	"github.com/mj1618/scratchpad/internal/scratchpad"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a scratchpad window on the current workspace",
	Long:  "Bring the marked window out of the scratchpad, focus it and resize it, even if it already has focus.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	addScratchpadFlags(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	r, err := resolveScratchpad(cmd, args)
	if err != nil {
		return err
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	result, err := scratchpad.New(provider, r.Options(), logger).Show(r.Target().Tag)
	if err != nil {
		return err
	}
	return output.Print(result)
}
