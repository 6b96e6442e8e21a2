package main

import (
	"github.com/mj1618/scratchpad/cmd"

	_ "github.com/mj1618/scratchpad/internal/platform/sway"
)

func main() {
	cmd.Execute()
}
