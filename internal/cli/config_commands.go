package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rescale/circular-pager/internal/config"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage circular-pager configuration",
		Long: `Configuration management commands for circular-pager.

Commands:
  init  - Write a configuration file with default values
  show  - Display current configuration
  path  - Show configuration file path`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Long: `Write pager.conf with default values to --config or the default location.

Use --force to overwrite existing configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !force {
				if _, err := os.Stat(path); err == nil {
					fmt.Fprintf(out, "Configuration already exists at: %s\n", path)
					fmt.Fprintln(out, "Use --force to overwrite or run 'config show' to view current config.")
					return nil
				}
			}

			if err := config.SavePagerConfig(config.NewPagerConfig(), path); err != nil {
				return err
			}
			GetLogger().Info().Str("path", path).Msg("Configuration saved")
			fmt.Fprintf(out, "Configuration written to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")
	return cmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path, err := configPath()
			if err != nil {
				return err
			}

			source := path
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				source = path + " (not found, using defaults)"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration: %s\n\n", source)
			fmt.Fprintln(out, "[pager]")
			fmt.Fprintf(out, "preload_radius     = %d\n", cfg.Pager.PreloadRadius)
			fmt.Fprintf(out, "circular_threshold = %d\n", cfg.Pager.CircularThreshold)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "[demo]")
			fmt.Fprintf(out, "pages              = %d\n", cfg.Demo.Pages)
			fmt.Fprintf(out, "window_width       = %d\n", cfg.Demo.WindowWidth)
			fmt.Fprintf(out, "window_height      = %d\n", cfg.Demo.WindowHeight)
			fmt.Fprintf(out, "settle_delay_ms    = %d\n", cfg.Demo.SettleDelayMS)
			return nil
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
