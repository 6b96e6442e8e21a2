package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/scratchpad/internal/config"
	"github.com/mj1618/scratchpad/internal/geometry"
)

// parsedCommand returns a command with the scratchpad flags parsed from args.
func parsedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addScratchpadFlags(c)
	if err := c.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return c
}

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func TestScratchpadName(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		args    []string
		want    string
		wantErr bool
	}{
		{"mark flag", []string{"-m", "term"}, nil, "term", false},
		{"positional", nil, []string{"term"}, "term", false},
		{"both agree", []string{"--mark", "term"}, []string{"term"}, "term", false},
		{"conflict", []string{"--mark", "music"}, []string{"term"}, "", true},
		{"missing", nil, nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scratchpadName(parsedCommand(t, tt.flags...), tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveScratchpad_Defaults(t *testing.T) {
	withConfig(t, config.DefaultConfig())

	r, err := resolveScratchpad(parsedCommand(t, "-m", "term", "-c", "foot -e  tmux"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(r.Command, "|") != "foot|-e|tmux" {
		t.Errorf("command: got %q", r.Command)
	}
	if r.Size() != geometry.NewSize(95, 90, 0, 0) {
		t.Errorf("size: got %+v", r.Size())
	}
	if r.Placement != geometry.PlaceCenter {
		t.Errorf("placement: got %q", r.Placement)
	}
	if r.SettleDelay != 50*time.Millisecond {
		t.Errorf("settle delay: got %v", r.SettleDelay)
	}
}

func TestResolveScratchpad_FlagsOverrideConfig(t *testing.T) {
	c := config.DefaultConfig()
	c.Scratchpads["term"] = config.Scratchpad{Command: []string{"alacritty"}, Width: 60, Placement: "offset"}
	withConfig(t, c)

	r, err := resolveScratchpad(parsedCommand(t, "--height-px", "600", "--settle-delay", "100ms", "--notify"), []string{"term"})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Command) != 1 || r.Command[0] != "alacritty" {
		t.Errorf("command should come from config, got %q", r.Command)
	}
	want := geometry.Size{Width: geometry.Percent(60), Height: geometry.Pixel(600)}
	if r.Size() != want {
		t.Errorf("size: got %+v, want %+v", r.Size(), want)
	}
	if r.Placement != geometry.PlaceOffset {
		t.Errorf("placement: got %q", r.Placement)
	}
	if r.SettleDelay != 100*time.Millisecond || !r.Notify {
		t.Errorf("settle/notify: got %v/%v", r.SettleDelay, r.Notify)
	}

	// Unchanged flag defaults do not clobber config values.
	r, err = resolveScratchpad(parsedCommand(t), []string{"term"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 60 {
		t.Errorf("width: got %d, want 60 from config", r.Width)
	}
}

func TestResolveScratchpad_Invalid(t *testing.T) {
	withConfig(t, config.DefaultConfig())

	for _, args := range [][]string{
		{"-m", "term", "--placement", "corner"},
		{"-m", "term", "--width-px", "-5"},
		{"-m", "term", "--settle-delay", "-1s"},
	} {
		if _, err := resolveScratchpad(parsedCommand(t, args...), nil); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}
