package gui

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/rescale/circular-pager/internal/config"
)

// ErrNoDisplay is returned when the demo is started without a display.
var ErrNoDisplay = errors.New("the demo window requires a display; DISPLAY and WAYLAND_DISPLAY are not set\n" +
	"Use 'circular-pager simulate' to drive the pager without a window")

// checkDisplay checks for a headless environment on Linux.
func checkDisplay() error {
	if runtime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return ErrNoDisplay
		}
	}
	return nil
}

// Run launches the demo window with the configuration at configFile.
// An empty path uses the default configuration location.
func Run(configFile string) error {
	if err := checkDisplay(); err != nil {
		return err
	}

	cfg, err := config.LoadPagerConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return LaunchDemo(cfg)
}
