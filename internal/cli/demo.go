package cli

import (
	"github.com/spf13/cobra"

	"github.com/rescale/circular-pager/internal/gui"
)

// newDemoCmd creates the 'demo' command.
func newDemoCmd() *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open a window with colored pages",
		Long: `Open a Fyne window that pages horizontally through colored pages.

Drag the pages or the scroll bar, use the mouse wheel, the arrow keys or
the previous/next buttons. Only the centered page's button responds.

Window size, page count and scroll settle delay come from the [demo]
section of pager.conf. Set CIRCULAR_PAGER_DEBUG=1 for debug logging.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pages") {
				cfg.Demo.Pages = pages
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			GetLogger().Debug().
				Int("pages", cfg.Demo.Pages).
				Int("radius", cfg.Pager.PreloadRadius).
				Int("threshold", cfg.Pager.CircularThreshold).
				Msg("Launching demo window")
			return gui.LaunchDemo(cfg)
		},
	}

	cmd.Flags().IntVarP(&pages, "pages", "n", 0, "Number of pages (default: from config)")
	return cmd
}
