package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/scratchpad/internal/model"
	"github.com/mj1618/scratchpad/internal/output"
	"github.com/mj1618/scratchpad/internal/scratchpad"
)

var hideCmd = &cobra.Command{
	Use:   "hide [name]",
	Short: "Move a scratchpad window back to the scratchpad",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHide,
}

func init() {
	rootCmd.AddCommand(hideCmd)
	hideCmd.Flags().StringP("mark", "m", "", "Scratchpad name")
}

func runHide(cmd *cobra.Command, args []string) error {
	name, err := scratchpadName(cmd, args)
	if err != nil {
		return err
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	defer provider.Close()

	result, err := scratchpad.New(provider, scratchpad.Options{}, logger).Hide(model.NewTag(name))
	if err != nil {
		return err
	}
	return output.Print(result)
}
