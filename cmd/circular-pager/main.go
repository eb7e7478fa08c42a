// Circular Pager - windowed, optionally circular horizontal paging.
//
// - No args + display available → demo window
// - No args + no display → CLI help
// - Subcommands/flags → CLI mode
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rescale/circular-pager/internal/cli"
	"github.com/rescale/circular-pager/internal/gui"
)

func main() {
	if len(os.Args) == 1 && hasDisplay() {
		if err := gui.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// hasDisplay reports whether a window can be opened. Only Linux can run
// without one.
func hasDisplay() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
