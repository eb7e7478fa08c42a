package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rescale/circular-pager/internal/events"
)

func TestNewReporterNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := NewReporter(&buf).(*NoOpPosition); !ok {
		t.Error("Expected NoOpPosition for a non-terminal writer")
	}
}

func TestCLIPosition(t *testing.T) {
	var buf bytes.Buffer
	p := NewCLIPosition(&buf)
	p.SetTotal(5)
	p.SetPosition(2, "C")

	if cur, label := p.Position(); cur != 2 || label != "C" {
		t.Errorf("Position() = (%d, %q), want (2, \"C\")", cur, label)
	}
	if !strings.Contains(buf.String(), "page") {
		t.Errorf("Expected bar output to mention page, got %q", buf.String())
	}

	p.Finish()
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Finish should terminate the bar line")
	}
}

func TestCLIPositionEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewCLIPosition(&buf)
	p.SetTotal(0)
	p.SetPosition(-1, "")
	p.Finish()

	if buf.Len() != 0 {
		t.Errorf("Expected no output for an empty list, got %q", buf.String())
	}
}

func TestGUIPosition(t *testing.T) {
	bus := events.NewEventBus(10)
	defer bus.Close()
	ch := bus.Subscribe(events.EventPosition)

	p := NewGUIPosition(bus)
	p.SetTotal(4)
	p.SetPosition(1, "B")

	select {
	case e := <-ch:
		pos, ok := e.(*events.PositionEvent)
		if !ok {
			t.Fatalf("Expected *PositionEvent, got %T", e)
		}
		if pos.Current != 2 || pos.Total != 4 || pos.Label != "B" {
			t.Errorf("PositionEvent = %+v, want Current=2 Total=4 Label=B", *pos)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for position event")
	}
}
