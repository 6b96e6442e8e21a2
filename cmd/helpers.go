package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/scratchpad/internal/config"
	"github.com/mj1618/scratchpad/internal/geometry"
	"github.com/mj1618/scratchpad/internal/platform"
)

// addScratchpadFlags registers the flags that describe one scratchpad.
func addScratchpadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mark", "m", "", "Scratchpad name; the window is marked SCRATCHPAD_<mark>")
	cmd.Flags().StringP("command", "c", "", "Command and arguments to launch, space delimited")
	cmd.Flags().Int("width", config.DefaultWidth, "Width in percent of the focused output")
	cmd.Flags().Int("height", config.DefaultHeight, "Height in percent of the focused output")
	cmd.Flags().Int("width-px", 0, "Width in pixels (0 = use --width)")
	cmd.Flags().Int("height-px", 0, "Height in pixels (0 = use --height)")
	cmd.Flags().String("placement", config.DefaultPlacement, "Placement when shown: center, offset")
	cmd.Flags().Duration("settle-delay", 50*time.Millisecond, "Pause between showing and resizing the window")
	cmd.Flags().Bool("notify", false, "Send a desktop notification when the command exits without a window")
}

// scratchpadName returns the name from the positional argument or --mark.
func scratchpadName(cmd *cobra.Command, args []string) (string, error) {
	mark, _ := cmd.Flags().GetString("mark")
	switch {
	case len(args) > 0 && mark != "" && args[0] != mark:
		return "", fmt.Errorf("conflicting names: %q and --mark %q", args[0], mark)
	case len(args) > 0:
		return args[0], nil
	case mark != "":
		return mark, nil
	default:
		return "", fmt.Errorf("specify a scratchpad name or --mark")
	}
}

// resolveScratchpad merges the named scratchpad from the config file with
// flags that were set explicitly on the command line.
func resolveScratchpad(cmd *cobra.Command, args []string) (config.Resolved, error) {
	name, err := scratchpadName(cmd, args)
	if err != nil {
		return config.Resolved{}, err
	}
	r, err := cfg.Scratchpad(name)
	if err != nil {
		return config.Resolved{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("command") {
		command, _ := flags.GetString("command")
		r.Command = strings.Fields(command)
	}
	if flags.Changed("width") {
		r.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		r.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("width-px") {
		r.WidthPx, _ = flags.GetInt("width-px")
	}
	if flags.Changed("height-px") {
		r.HeightPx, _ = flags.GetInt("height-px")
	}
	if flags.Changed("placement") {
		p, _ := flags.GetString("placement")
		if r.Placement, err = geometry.ParsePlacement(p); err != nil {
			return config.Resolved{}, err
		}
	}
	if flags.Changed("settle-delay") {
		r.SettleDelay, _ = flags.GetDuration("settle-delay")
		if r.SettleDelay < 0 {
			return config.Resolved{}, fmt.Errorf("--settle-delay must not be negative")
		}
	}
	if flags.Changed("notify") {
		r.Notify, _ = flags.GetBool("notify")
	}

	if r.Width < 0 || r.Height < 0 || r.WidthPx < 0 || r.HeightPx < 0 {
		return config.Resolved{}, fmt.Errorf("sizes must not be negative")
	}
	return r, nil
}

// newProvider connects to the window manager. The socket comes from
// --sock, then the config file, then discovery.
func newProvider() (*platform.Provider, error) {
	socket := globalOpts.socket
	if socket == "" && cfg != nil {
		socket = cfg.Defaults.Socket
	}
	return platform.NewProvider(platform.Options{SocketPath: socket, Logger: logger})
}
