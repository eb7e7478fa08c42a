// Package gui provides the fyne demo window for the circular pager.
package gui

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"github.com/rescale/circular-pager/internal/config"
	"github.com/rescale/circular-pager/internal/constants"
	"github.com/rescale/circular-pager/internal/events"
	"github.com/rescale/circular-pager/internal/logging"
	"github.com/rescale/circular-pager/internal/pager"
	"github.com/rescale/circular-pager/internal/progress"
)

// Demo is the demo window content: a pager over colored pages with
// previous/next buttons and a status bar.
type Demo struct {
	view     *PagerView
	status   *StatusBar
	bus      *events.EventBus
	position progress.Reporter
	pages    []pager.Page
	log      *logging.Logger
	posCh    <-chan events.Event
	logCh    <-chan events.Event
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewDemo builds the demo content from cfg.
func NewDemo(cfg *config.PagerConfig, bus *events.EventBus, log *logging.Logger) (*Demo, error) {
	view, err := NewPagerView(log.Named("pager"),
		pager.WithPreloadRadius(cfg.Pager.PreloadRadius),
		pager.WithCircularThreshold(cfg.Pager.CircularThreshold),
		pager.WithEvents(bus),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pager: %w", err)
	}
	view.Scroll().SettleDelay = cfg.SettleDelay()

	ctx, cancel := context.WithCancel(context.Background())
	d := &Demo{
		view:     view,
		status:   NewStatusBar(),
		bus:      bus,
		position: progress.NewGUIPosition(bus),
		log:      log,
		posCh:    bus.Subscribe(events.EventPosition),
		logCh:    bus.Subscribe(events.EventLog),
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < cfg.Demo.Pages; i++ {
		title := pager.Name(i)
		c := demoPalette[i%len(demoPalette)]
		d.pages = append(d.pages, NewColorPage(title, c, func() {
			d.log.Infof("Page %s selected", title)
			d.status.SetInfo(fmt.Sprintf("Selected page %s", title))
		}))
	}

	view.Pager().OnCurrentIndexChanged(d.currentChanged)
	d.position.SetTotal(len(d.pages))
	view.SetPages(d.pages)
	return d, nil
}

// View returns the pager view.
func (d *Demo) View() *PagerView {
	return d.view
}

// Status returns the status bar.
func (d *Demo) Status() *StatusBar {
	return d.status
}

// Build creates the demo layout.
func (d *Demo) Build() fyne.CanvasObject {
	prev := NewPrimaryButtonWithIcon("", theme.NavigateBackIcon(), d.view.Previous)
	next := NewPrimaryButtonWithIcon("", theme.NavigateNextIcon(), d.view.Next)

	bottom := container.NewHBox(
		prev,
		HorizontalSpacer(8),
		d.status,
		layout.NewSpacer(),
		next,
	)
	return container.NewBorder(nil, container.NewVBox(VerticalSpacer(4), bottom), nil, nil, d.view.CanvasObject())
}

// HandleKey pages with the arrow keys.
func (d *Demo) HandleKey(e *fyne.KeyEvent) {
	switch e.Name {
	case fyne.KeyLeft:
		d.view.Previous()
	case fyne.KeyRight:
		d.view.Next()
	}
}

// Start begins event monitoring. The subscriptions are taken in NewDemo,
// so the position published by the initial layout is already queued.
func (d *Demo) Start() {
	go d.monitorPosition()
	go d.monitorLogs()
}

// Stop stops event monitoring
func (d *Demo) Stop() {
	d.cancel()
}

func (d *Demo) currentChanged(index int, page pager.Page) {
	title := ""
	if cp, ok := page.(*ColorPage); ok {
		title = cp.Title
	}
	d.position.SetPosition(index, title)
}

func (d *Demo) monitorPosition() {
	ch := d.posCh
	defer d.bus.Unsubscribe(events.EventPosition, ch)

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			pos := event.(*events.PositionEvent)
			if pos.Current == 0 {
				d.status.SetInfo("No page")
				continue
			}
			d.status.SetInfo(fmt.Sprintf("Page %s (%d of %d)", pos.Label, pos.Current, pos.Total))

		case <-d.ctx.Done():
			return
		}
	}
}

func (d *Demo) monitorLogs() {
	ch := d.logCh
	defer d.bus.Unsubscribe(events.EventLog, ch)

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			logEvent := event.(*events.LogEvent)
			switch logEvent.Level {
			case events.ErrorLevel:
				d.status.SetError(logEvent.Message)
			case events.WarnLevel:
				d.status.SetWarning(logEvent.Message)
			}

		case <-d.ctx.Done():
			return
		}
	}
}

// LaunchDemo opens the demo window and blocks until it is closed.
func LaunchDemo(cfg *config.PagerConfig) error {
	if err := checkDisplay(); err != nil {
		return err
	}

	bus := events.NewEventBus(constants.EventBusDefaultBuffer)
	defer bus.Close()

	guiLogger := logging.NewLogger("gui", bus)

	// Set CIRCULAR_PAGER_DEBUG=1 to see debug/info messages
	if os.Getenv("CIRCULAR_PAGER_DEBUG") != "" {
		logging.SetGlobalLevel(zerolog.DebugLevel)
		guiLogger.Info().Msg("Debug logging enabled via CIRCULAR_PAGER_DEBUG")
	}

	myApp := app.NewWithID("com.rescale.circularpager")
	myApp.Settings().SetTheme(&pagerTheme{})

	mainWindow := myApp.NewWindow("Circular Pager")
	mainWindow.SetMaster()

	demo, err := NewDemo(cfg, bus, guiLogger)
	if err != nil {
		return err
	}
	demo.Start()

	mainWindow.SetContent(demo.Build())
	mainWindow.Canvas().SetOnTypedKey(demo.HandleKey)
	mainWindow.Resize(fyne.NewSize(float32(cfg.Demo.WindowWidth), float32(cfg.Demo.WindowHeight)))
	mainWindow.CenterOnScreen()

	mainWindow.SetOnClosed(func() {
		demo.Stop()
	})

	mainWindow.ShowAndRun()
	return nil
}
