package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/scratchpad/internal/model"
	"github.com/mj1618/scratchpad/internal/output"
	"github.com/mj1618/scratchpad/internal/scratchpad"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scratchpad windows",
	Long:  "List windows carrying a SCRATCHPAD_ mark with their name, app, PID, focus and whether they are hidden.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("hidden", false, "Only list windows currently in the scratchpad")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	windows, err := scratchpad.New(provider, scratchpad.Options{}, logger).List()
	if err != nil {
		return err
	}

	hiddenOnly, _ := cmd.Flags().GetBool("hidden")
	return output.Print(output.ListResult{Windows: filterWindows(windows, hiddenOnly)})
}

func filterWindows(windows []model.Window, hiddenOnly bool) []model.Window {
	result := []model.Window{}
	for _, w := range windows {
		if hiddenOnly && !w.Hidden {
			continue
		}
		result = append(result, w)
	}
	return result
}
