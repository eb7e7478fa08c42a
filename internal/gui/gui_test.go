package gui

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/rescale/circular-pager/internal/config"
	"github.com/rescale/circular-pager/internal/events"
	"github.com/rescale/circular-pager/internal/logging"
	"github.com/rescale/circular-pager/internal/pager"
)

func newTestScroll(t *testing.T) (*PagingScroll, *[]float64, *[]float64) {
	t.Helper()
	test.NewTempApp(t)

	ps := NewPagingScroll(canvas.NewRectangle(color.Black))
	ps.Resize(fyne.NewSize(100, 50))
	ps.SetContentWidth(500)

	var changes, settles []float64
	ps.OnContinuousOffsetChange(func(x float64) { changes = append(changes, x) })
	ps.OnSettle(func(x float64) { settles = append(settles, x) })
	return ps, &changes, &settles
}

func TestPagingScroll_DragAndSettle(t *testing.T) {
	ps, changes, settles := newTestScroll(t)

	ps.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-150, 0)})
	if len(*changes) != 1 || (*changes)[0] != 150 {
		t.Errorf("changes = %v, want [150]", *changes)
	}
	if len(*settles) != 0 {
		t.Errorf("settles = %v, want none before drag end", *settles)
	}

	ps.DragEnd()
	if len(*settles) != 1 || (*settles)[0] != 150 {
		t.Errorf("settles = %v, want [150]", *settles)
	}
}

func TestPagingScroll_SuppressedAndClamped(t *testing.T) {
	ps, changes, _ := newTestScroll(t)

	ps.SetOffsetX(250, true)
	if ps.OffsetX() != 250 {
		t.Errorf("OffsetX() = %v, want 250", ps.OffsetX())
	}
	if len(*changes) != 0 {
		t.Errorf("suppressed write reported changes %v", *changes)
	}

	ps.SetOffsetX(1000, false)
	if ps.OffsetX() != 400 {
		t.Errorf("OffsetX() = %v, want 400 (clamped)", ps.OffsetX())
	}
	if len(*changes) != 1 || (*changes)[0] != 400 {
		t.Errorf("changes = %v, want [400]", *changes)
	}

	ps.SetOffsetX(-5, true)
	if ps.OffsetX() != 0 {
		t.Errorf("OffsetX() = %v, want 0", ps.OffsetX())
	}
}

func TestPagingScroll_WheelSettlesAfterDelay(t *testing.T) {
	test.NewTempApp(t)

	ps := NewPagingScroll(canvas.NewRectangle(color.Black))
	ps.Resize(fyne.NewSize(100, 50))
	ps.SetContentWidth(500)
	ps.SettleDelay = 10 * time.Millisecond

	settled := make(chan float64, 1)
	ps.OnSettle(func(x float64) { settled <- x })

	ps.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -10)})
	if ps.OffsetX() != 30 {
		t.Errorf("OffsetX() = %v, want 30", ps.OffsetX())
	}

	select {
	case x := <-settled:
		if x != 30 {
			t.Errorf("settled at %v, want 30", x)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for wheel settle")
	}
}

func TestPageLayer(t *testing.T) {
	test.NewTempApp(t)

	layer := NewPageLayer(nil)
	page := NewColorPage("A", color.Black, nil)

	layer.Attach(page)
	if len(layer.Objects()) != 1 {
		t.Fatalf("attached objects = %d, want 1", len(layer.Objects()))
	}

	layer.SetFrame(page, pager.Rect{X: 100, Width: 100, Height: 50})
	obj := page.CanvasObject()
	if obj.Position() != fyne.NewPos(100, 0) {
		t.Errorf("Position() = %v, want (100, 0)", obj.Position())
	}
	if obj.Size() != fyne.NewSize(100, 50) {
		t.Errorf("Size() = %v, want 100x50", obj.Size())
	}

	layer.SetInteractive(page, false)
	if !page.Button().Disabled() {
		t.Error("button should be disabled on a non-interactive page")
	}
	layer.SetInteractive(page, true)
	if page.Button().Disabled() {
		t.Error("button should be enabled on the interactive page")
	}

	layer.Detach(page)
	if len(layer.Objects()) != 0 {
		t.Errorf("attached objects = %d, want 0", len(layer.Objects()))
	}
}

func newColorPages(titles ...string) []pager.Page {
	pages := make([]pager.Page, len(titles))
	for i, title := range titles {
		pages[i] = NewColorPage(title, demoPalette[i%len(demoPalette)], nil)
	}
	return pages
}

func TestPagerView_DragThenSettle(t *testing.T) {
	test.NewTempApp(t)

	view, err := NewPagerView(nil)
	if err != nil {
		t.Fatalf("NewPagerView() error = %v", err)
	}
	pages := newColorPages("A", "B", "C", "D", "E")
	view.SetPages(pages)
	view.CanvasObject().Resize(fyne.NewSize(100, 50))

	if got := view.Scroll().OffsetX(); got != 500 {
		t.Errorf("OffsetX() after layout = %v, want 500", got)
	}
	if got := len(view.Layer().Objects()); got != 3 {
		t.Errorf("attached objects = %d, want 3", got)
	}

	view.Scroll().Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-150, 0)})
	if cur, _ := view.Pager().CurrentIndex(); cur != 2 {
		t.Errorf("CurrentIndex() while dragging = %d, want 2", cur)
	}

	view.Scroll().DragEnd()
	if got := view.Scroll().OffsetX(); got != 700 {
		t.Errorf("OffsetX() after settle = %v, want 700", got)
	}
	if cur, _ := view.Pager().CurrentIndex(); cur != 2 {
		t.Errorf("CurrentIndex() after settle = %d, want 2", cur)
	}

	c := pages[2].(*ColorPage)
	b := pages[1].(*ColorPage)
	if c.Button().Disabled() {
		t.Error("current page button should be enabled")
	}
	if !b.Button().Disabled() {
		t.Error("neighbor page button should be disabled")
	}
	if !c.Attached() || pages[0].(*ColorPage).Attached() {
		t.Error("expected C attached and A detached")
	}
}

func TestPagerView_SinglePageOverscroll(t *testing.T) {
	test.NewTempApp(t)

	view, err := NewPagerView(nil)
	if err != nil {
		t.Fatalf("NewPagerView() error = %v", err)
	}
	view.SetPages(newColorPages("A"))
	view.CanvasObject().Resize(fyne.NewSize(100, 50))

	if !view.Scroll().AllowOverscroll {
		t.Fatal("AllowOverscroll should be set for a single page")
	}
	view.Scroll().Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(40, 0)})
	if got := view.Scroll().OffsetX(); got != -25 {
		t.Errorf("OffsetX() while pulled past the edge = %v, want -25", got)
	}
	view.Scroll().DragEnd()
	if got := view.Scroll().OffsetX(); got != 0 {
		t.Errorf("OffsetX() after settle = %v, want 0", got)
	}

	view.SetPages(newColorPages("A", "B", "C", "D", "E"))
	if view.Scroll().AllowOverscroll {
		t.Error("AllowOverscroll should be cleared for several pages")
	}
}

func TestPagerView_NextPrevious(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		name   string
		titles []string
		steps  []int
		want   int
	}{
		{"circular wraps backwards", []string{"A", "B", "C", "D", "E"}, []int{-1}, 4},
		{"circular wraps forwards", []string{"A", "B", "C"}, []int{1, 1, 1}, 0},
		{"linear stops at start", []string{"A", "B"}, []int{-1}, 0},
		{"linear stops at end", []string{"A", "B"}, []int{1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := NewPagerView(nil)
			if err != nil {
				t.Fatalf("NewPagerView() error = %v", err)
			}
			view.CanvasObject().Resize(fyne.NewSize(100, 50))
			view.SetPages(newColorPages(tt.titles...))

			for _, step := range tt.steps {
				if step > 0 {
					view.Next()
				} else {
					view.Previous()
				}
			}
			if cur, _ := view.Pager().CurrentIndex(); cur != tt.want {
				t.Errorf("CurrentIndex() = %d, want %d", cur, tt.want)
			}
		})
	}
}

func TestDemo(t *testing.T) {
	test.NewTempApp(t)

	bus := events.NewEventBus(10)
	defer bus.Close()
	ch := bus.Subscribe(events.EventPosition)

	demo, err := NewDemo(config.NewPagerConfig(), bus, logging.NewNopLogger())
	if err != nil {
		t.Fatalf("NewDemo() error = %v", err)
	}
	if demo.Build() == nil {
		t.Fatal("Build() returned nil")
	}

	select {
	case e := <-ch:
		pos := e.(*events.PositionEvent)
		if pos.Current != 1 || pos.Total != 5 || pos.Label != "A" {
			t.Errorf("PositionEvent = %+v, want page A (1 of 5)", *pos)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for position event")
	}

	demo.HandleKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	if cur, _ := demo.View().Pager().CurrentIndex(); cur != 1 {
		t.Errorf("CurrentIndex() after right arrow = %d, want 1", cur)
	}
	demo.HandleKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	demo.HandleKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	if cur, _ := demo.View().Pager().CurrentIndex(); cur != 4 {
		t.Errorf("CurrentIndex() after two left arrows = %d, want 4", cur)
	}
}

func TestDemoStartShowsInitialPage(t *testing.T) {
	test.NewTempApp(t)

	bus := events.NewEventBus(10)
	defer bus.Close()

	demo, err := NewDemo(config.NewPagerConfig(), bus, logging.NewNopLogger())
	if err != nil {
		t.Fatalf("NewDemo() error = %v", err)
	}
	demo.Start()
	defer demo.Stop()

	want := "Page A (1 of 5)"
	deadline := time.Now().Add(time.Second)
	for demo.Status().GetMessage() != want {
		if time.Now().After(deadline) {
			t.Fatalf("Status().GetMessage() = %q, want %q", demo.Status().GetMessage(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestNewDemoInvalidConfig(t *testing.T) {
	test.NewTempApp(t)

	cfg := config.NewPagerConfig()
	cfg.Pager.CircularThreshold = 2

	bus := events.NewEventBus(10)
	defer bus.Close()
	if _, err := NewDemo(cfg, bus, logging.NewNopLogger()); err == nil {
		t.Error("expected an error for a threshold below 2*radius+1")
	}
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	sb := NewStatusBar()
	if sb.GetMessage() != "No page" {
		t.Errorf("GetMessage() = %q, want %q", sb.GetMessage(), "No page")
	}

	sb.SetWarning("frame mismatch")
	if sb.GetLevel() != StatusWarning {
		t.Errorf("GetLevel() = %v, want StatusWarning", sb.GetLevel())
	}
	if sb.GetMessage() != "frame mismatch" {
		t.Errorf("GetMessage() = %q, want %q", sb.GetMessage(), "frame mismatch")
	}
}
