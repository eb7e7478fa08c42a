// Package config provides configuration management for the circular pager.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/ini.v1"

	"github.com/rescale/circular-pager/internal/constants"
)

// PagerConfig represents the pager configuration file.
//
// Config file location:
//   - Windows: %APPDATA%\CircularPager\pager.conf
//   - Unix: ~/.config/circular-pager/pager.conf
//
// INI format:
//
//	[pager]
//	preload_radius = 1
//	circular_threshold = 3
//
//	[demo]
//	pages = 5
//	window_width = 480
//	window_height = 320
//	settle_delay_ms = 150
type PagerConfig struct {
	Pager PagerSection
	Demo  DemoSection
}

// PagerSection contains the paging engine settings.
type PagerSection struct {
	// PreloadRadius is the number of neighbors kept attached on each side.
	// Minimum: 1, Default: 1
	PreloadRadius int `ini:"preload_radius"`

	// CircularThreshold is the minimum page count for wraparound paging.
	// Must be at least 2*PreloadRadius+1 so a window never spans one page twice.
	// Default: 3
	CircularThreshold int `ini:"circular_threshold"`
}

// DemoSection contains settings for the demo window.
type DemoSection struct {
	// Pages is the number of colored pages shown.
	// Minimum: 0, Maximum: 1000, Default: 5
	Pages int `ini:"pages"`

	// WindowWidth / WindowHeight is the initial window size.
	WindowWidth  int `ini:"window_width"`
	WindowHeight int `ini:"window_height"`

	// SettleDelayMS is the idle time after wheel scrolling before the
	// offset is snapped to a page.
	// Minimum: 10, Maximum: 5000, Default: 150
	SettleDelayMS int `ini:"settle_delay_ms"`
}

// PagerConfig validation errors
var (
	ErrInvalidPreloadRadius     = errors.New("preload_radius must be at least 1")
	ErrInvalidCircularThreshold = errors.New("circular_threshold must be at least 2*preload_radius+1")
	ErrInvalidDemoPages         = errors.New("pages must be between 0 and 1000")
	ErrInvalidWindowSize        = errors.New("window_width and window_height must be positive")
	ErrInvalidSettleDelay       = errors.New("settle_delay_ms must be between 10 and 5000")
)

// DefaultPagerConfigPath returns the default path for the pager.conf file.
func DefaultPagerConfigPath() (string, error) {
	dir, err := ConfigDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pager.conf"), nil
}

// NewPagerConfig creates a new PagerConfig with default values.
func NewPagerConfig() *PagerConfig {
	return &PagerConfig{
		Pager: PagerSection{
			PreloadRadius:     constants.DefaultPreloadRadius,
			CircularThreshold: constants.DefaultCircularThreshold,
		},
		Demo: DemoSection{
			Pages:         constants.DefaultDemoPages,
			WindowWidth:   constants.DefaultWindowWidth,
			WindowHeight:  constants.DefaultWindowHeight,
			SettleDelayMS: int(constants.DefaultSettleDelay / time.Millisecond),
		},
	}
}

// LoadPagerConfig loads configuration from the pager.conf file.
// If path is empty, uses the default path.
// If the file doesn't exist, returns a config with default values and no error.
// If the file exists but is invalid, returns an error.
func LoadPagerConfig(path string) (*PagerConfig, error) {
	cfg := NewPagerConfig()

	if path == "" {
		var err error
		path, err = DefaultPagerConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load pager.conf: %w", err)
	}

	pagerSection := iniFile.Section("pager")
	cfg.Pager.PreloadRadius = pagerSection.Key("preload_radius").MustInt(constants.DefaultPreloadRadius)
	cfg.Pager.CircularThreshold = pagerSection.Key("circular_threshold").MustInt(constants.DefaultCircularThreshold)

	demoSection := iniFile.Section("demo")
	cfg.Demo.Pages = demoSection.Key("pages").MustInt(constants.DefaultDemoPages)
	cfg.Demo.WindowWidth = demoSection.Key("window_width").MustInt(constants.DefaultWindowWidth)
	cfg.Demo.WindowHeight = demoSection.Key("window_height").MustInt(constants.DefaultWindowHeight)
	cfg.Demo.SettleDelayMS = demoSection.Key("settle_delay_ms").MustInt(int(constants.DefaultSettleDelay / time.Millisecond))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pager.conf %s: %w", path, err)
	}
	return cfg, nil
}

// SavePagerConfig saves configuration to the pager.conf file.
// If path is empty, uses the default path.
// Creates parent directories if they don't exist.
func SavePagerConfig(cfg *PagerConfig, path string) error {
	if path == "" {
		var err error
		path, err = DefaultPagerConfigPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	iniFile := ini.Empty()

	pagerSection, err := iniFile.NewSection("pager")
	if err != nil {
		return fmt.Errorf("failed to create pager section: %w", err)
	}
	pagerSection.Key("preload_radius").SetValue(fmt.Sprintf("%d", cfg.Pager.PreloadRadius))
	pagerSection.Key("circular_threshold").SetValue(fmt.Sprintf("%d", cfg.Pager.CircularThreshold))

	demoSection, err := iniFile.NewSection("demo")
	if err != nil {
		return fmt.Errorf("failed to create demo section: %w", err)
	}
	demoSection.Key("pages").SetValue(fmt.Sprintf("%d", cfg.Demo.Pages))
	demoSection.Key("window_width").SetValue(fmt.Sprintf("%d", cfg.Demo.WindowWidth))
	demoSection.Key("window_height").SetValue(fmt.Sprintf("%d", cfg.Demo.WindowHeight))
	demoSection.Key("settle_delay_ms").SetValue(fmt.Sprintf("%d", cfg.Demo.SettleDelayMS))

	// Temporary file + rename for atomicity
	tmpPath := path + ".tmp"
	if err := iniFile.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0600); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set config permissions: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Validate checks if the pager configuration is valid.
func (cfg *PagerConfig) Validate() error {
	if cfg.Pager.PreloadRadius < 1 {
		return ErrInvalidPreloadRadius
	}
	if cfg.Pager.CircularThreshold < 2*cfg.Pager.PreloadRadius+1 {
		return ErrInvalidCircularThreshold
	}
	if cfg.Demo.Pages < 0 || cfg.Demo.Pages > constants.MaxDemoPages {
		return ErrInvalidDemoPages
	}
	if cfg.Demo.WindowWidth <= 0 || cfg.Demo.WindowHeight <= 0 {
		return ErrInvalidWindowSize
	}
	delay := cfg.SettleDelay()
	if delay < constants.MinSettleDelay || delay > constants.MaxSettleDelay {
		return ErrInvalidSettleDelay
	}
	return nil
}

// SettleDelay returns the configured settle delay as a duration.
func (cfg *PagerConfig) SettleDelay() time.Duration {
	return time.Duration(cfg.Demo.SettleDelayMS) * time.Millisecond
}
