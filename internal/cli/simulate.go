package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rescale/circular-pager/internal/events"
	"github.com/rescale/circular-pager/internal/headless"
	"github.com/rescale/circular-pager/internal/logging"
	"github.com/rescale/circular-pager/internal/pager"
	"github.com/rescale/circular-pager/internal/progress"
)

// simulateOptions are the simulate command flags.
type simulateOptions struct {
	pages     int
	index     int
	radius    int
	threshold int
	width     float64
	height    float64
	events    bool
}

// newSimulateCmd creates the 'simulate' command.
func newSimulateCmd() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate [flags] STEP...",
		Short: "Drive the pager against in-memory surfaces",
		Long: `Run the paging engine against headless display and scroll surfaces and
print every current page notification and the attached pages after each step.

Steps:
  drag:<offset>    user drag to an offset (continuous change)
  settle:<offset>  scrolling comes to rest at an offset
  index:<i>        set the current logical index
  clear            clear the current index
  pages:<n>        replace the list with n pages, keeping the first min(n, old)
  reverse          reverse the page order
  resize:<width>   change the viewport width and lay out again

Offsets accept a p suffix meaning page widths (settle:1.5p).

Attached pages print as NAME@X, sorted by X, with the interactive page in
brackets.

Examples:
  circular-pager simulate --pages 5 drag:1.5p settle:1.5p
  circular-pager simulate --pages 4 --index 2 reverse pages:2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("radius") {
				opts.radius = cfg.Pager.PreloadRadius
			}
			if !cmd.Flags().Changed("threshold") {
				opts.threshold = cfg.Pager.CircularThreshold
			}
			if !cmd.Flags().Changed("index") {
				opts.index = pager.NoIndex
			}

			steps, err := parseSteps(args)
			if err != nil {
				return err
			}

			sim, err := newSimulation(cmd.OutOrStdout(), opts, progress.NewReporter(os.Stderr), GetLogger())
			if err != nil {
				return err
			}
			return sim.run(cmd.Context(), steps)
		},
	}

	cmd.Flags().IntVarP(&opts.pages, "pages", "n", 5, "Number of pages")
	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "Initial current index (default: first page)")
	cmd.Flags().IntVarP(&opts.radius, "radius", "k", 0, "Preload radius (default: from config)")
	cmd.Flags().IntVarP(&opts.threshold, "threshold", "t", 0, "Circular threshold (default: from config)")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", 100, "Viewport and page width")
	cmd.Flags().Float64Var(&opts.height, "height", 100, "Viewport and page height")
	cmd.Flags().BoolVar(&opts.events, "events", false, "Also print attach, detach and settle events")

	return cmd
}

// simulation owns an engine bound to headless surfaces.
type simulation struct {
	out      io.Writer
	display  *headless.Display
	scroll   *headless.Scroll
	pager    *pager.Pager
	bus      *events.EventBus
	feed     <-chan events.Event
	position progress.Reporter
	opts     simulateOptions
	created  int
}

func newSimulation(out io.Writer, opts simulateOptions, position progress.Reporter, log *logging.Logger) (*simulation, error) {
	if opts.pages < 0 {
		return nil, fmt.Errorf("--pages must not be negative, got %d", opts.pages)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("--width and --height must be positive")
	}

	s := &simulation{
		out:      out,
		display:  headless.NewDisplay(),
		scroll:   headless.NewScroll(opts.width, opts.height),
		position: position,
		opts:     opts,
	}

	pagerOpts := []pager.Option{
		pager.WithPreloadRadius(opts.radius),
		pager.WithCircularThreshold(opts.threshold),
		pager.WithLogger(log.Named("pager")),
	}
	if opts.events {
		s.bus = events.NewEventBus(0)
		s.feed = s.bus.SubscribeAll()
		pagerOpts = append(pagerOpts, pager.WithEvents(s.bus))
	}

	p, err := pager.New(s.display, s.scroll, pagerOpts...)
	if err != nil {
		if s.bus != nil {
			s.bus.Close()
		}
		return nil, fmt.Errorf("failed to create pager: %w", err)
	}
	s.pager = p
	p.OnCurrentIndexChanged(s.changed)
	return s, nil
}

// run lays out the initial pages, then applies each step, printing the
// state after each. It stops early when ctx is cancelled.
func (s *simulation) run(ctx context.Context, steps []step) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.close()

	fmt.Fprintln(s.out, "> init")
	s.setPages(s.newPages(s.opts.pages, nil))
	if s.opts.index != pager.NoIndex {
		s.pager.SetCurrentIndex(s.opts.index)
	}
	s.report()
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "> %s\n", st.raw)
		s.apply(st)
		s.report()
	}
	return nil
}

func (s *simulation) apply(st step) {
	w := s.scroll.ViewportWidth()

	switch st.kind {
	case stepDrag:
		s.scroll.DragTo(st.resolve(w))
	case stepSettle:
		s.scroll.SettleAt(st.resolve(w))
	case stepIndex:
		s.pager.SetCurrentIndex(st.n)
	case stepClear:
		s.pager.ClearCurrentIndex()
	case stepPages:
		s.setPages(s.newPages(st.n, s.pager.Pages()))
	case stepReverse:
		pages := s.pager.Pages()
		slices.Reverse(pages)
		s.setPages(pages)
	case stepResize:
		s.scroll.Resize(float64(st.n), s.scroll.ViewportHeight())
		s.pager.Layout()
	}
}

// newPages returns n pages, reusing the leading pages of old.
func (s *simulation) newPages(n int, old []pager.Page) []pager.Page {
	pages := slices.Clone(old[:min(n, len(old))])
	for len(pages) < n {
		pages = append(pages, &headless.Page{Name: pager.Name(s.created)})
		s.created++
	}
	return pages
}

func (s *simulation) setPages(pages []pager.Page) {
	s.position.SetTotal(len(pages))
	s.pager.SetPages(pages)
	s.pager.Layout()
	if cur, ok := s.pager.CurrentIndex(); ok {
		s.position.SetPosition(cur, fmt.Sprint(s.pager.CurrentPage()))
	}
}

func (s *simulation) changed(index int, page pager.Page) {
	if index == pager.NoIndex {
		fmt.Fprintln(s.out, "  changed: no current page")
		s.position.SetPosition(-1, "")
		return
	}
	fmt.Fprintf(s.out, "  changed: index=%d page=%v\n", index, page)
	s.position.SetPosition(index, fmt.Sprint(page))
}

func (s *simulation) report() {
	s.drainEvents()

	actual := "-"
	if i, ok := s.pager.ActualIndex(); ok {
		actual = fmt.Sprint(i)
	}
	fmt.Fprintf(s.out, "  offset=%g actual=%s attached: %s\n", s.scroll.OffsetX(), actual, s.display.Describe())
}

// drainEvents prints bus events published since the last report.
func (s *simulation) drainEvents() {
	if s.feed == nil {
		return
	}
	for {
		select {
		case e := <-s.feed:
			switch ev := e.(type) {
			case *events.PageLifecycleEvent:
				if ev.Type() == events.EventPageAttached {
					fmt.Fprintf(s.out, "  attached: %v@%d\n", ev.Page, ev.ActualIndex)
				} else {
					fmt.Fprintf(s.out, "  detached: %v\n", ev.Page)
				}
			case *events.SettledEvent:
				fmt.Fprintf(s.out, "  settled: raw=%g snapped=%g actual=%d\n", ev.RawOffset, ev.SnappedOffset, ev.ActualIndex)
			}
		default:
			return
		}
	}
}

func (s *simulation) close() {
	s.position.Finish()
	if s.bus != nil {
		s.bus.Close()
	}
}
