package events

import (
	"testing"
	"time"
)

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	ch := bus.Subscribe(EventPageChanged)

	bus.PublishPageChanged(2, "page-c", 3)

	select {
	case received := <-ch:
		changed, ok := received.(*PageChangedEvent)
		if !ok {
			t.Fatal("Expected PageChangedEvent")
		}
		if changed.Index != 2 {
			t.Errorf("Expected index 2, got %d", changed.Index)
		}
		if changed.Page != "page-c" {
			t.Errorf("Expected page 'page-c', got %v", changed.Page)
		}
		if changed.Count != 3 {
			t.Errorf("Expected count 3, got %d", changed.Count)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for event")
	}
}

func TestEventBus_MultipleSubscribers(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	ch1 := bus.Subscribe(EventLog)
	ch2 := bus.Subscribe(EventLog)

	bus.PublishLog(InfoLevel, "Test log", nil)

	received1 := false
	received2 := false

	select {
	case <-ch1:
		received1 = true
	case <-time.After(100 * time.Millisecond):
	}

	select {
	case <-ch2:
		received2 = true
	case <-time.After(100 * time.Millisecond):
	}

	if !received1 || !received2 {
		t.Error("Not all subscribers received the event")
	}
}

func TestEventBus_DifferentEventTypes(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	attachedCh := bus.Subscribe(EventPageAttached)
	detachedCh := bus.Subscribe(EventPageDetached)

	bus.PublishAttached("a", 4)

	select {
	case ev := <-attachedCh:
		lifecycle := ev.(*PageLifecycleEvent)
		if lifecycle.ActualIndex != 4 {
			t.Errorf("Expected actual index 4, got %d", lifecycle.ActualIndex)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Attached subscriber didn't receive event")
	}

	select {
	case <-detachedCh:
		t.Error("Detached subscriber received wrong event type")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEventBus_SubscribeAll(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	allCh := bus.SubscribeAll()

	bus.PublishSettled(130, 100, 1)
	bus.PublishPosition(2, 5, "page 2")

	count := 0
	for i := 0; i < 2; i++ {
		select {
		case <-allCh:
			count++
		case <-time.After(100 * time.Millisecond):
		}
	}

	if count != 2 {
		t.Errorf("Expected to receive 2 events, got %d", count)
	}
}

func TestEventBus_NonBlocking(t *testing.T) {
	bus := NewEventBus(2)
	defer bus.Close()

	ch := bus.Subscribe(EventPageChanged)

	for i := 0; i < 10; i++ {
		bus.PublishPageChanged(i, nil, 10)
	}

	count := 0
	for {
		select {
		case <-ch:
			count++
		case <-time.After(10 * time.Millisecond):
			goto done
		}
	}
done:

	if count != 2 {
		t.Errorf("Expected 2 buffered events, got %d", count)
	}
	if dropped := bus.GetDroppedEventCount(); dropped != 8 {
		t.Errorf("Expected 8 dropped events, got %d", dropped)
	}
	if reset := bus.ResetDroppedEventCount(); reset != 8 {
		t.Errorf("Expected reset to return 8, got %d", reset)
	}
	if dropped := bus.GetDroppedEventCount(); dropped != 0 {
		t.Errorf("Expected 0 dropped events after reset, got %d", dropped)
	}
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus(10)
	defer bus.Close()

	ch := bus.Subscribe(EventSettled)
	bus.Unsubscribe(EventSettled, ch)

	bus.PublishSettled(0, 0, 0)

	select {
	case <-ch:
		t.Error("Unsubscribed channel received an event")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestEventBus_Close(t *testing.T) {
	bus := NewEventBus(10)

	ch := bus.Subscribe(EventPageChanged)

	bus.Close()

	_, ok := <-ch
	if ok {
		t.Error("Channel should be closed after bus.Close()")
	}

	// Publishing after close should not panic
	bus.PublishPageChanged(0, nil, 0)

	// Subscribing after close returns a closed channel
	if _, ok := <-bus.Subscribe(EventLog); ok {
		t.Error("Subscribe after Close should return a closed channel")
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level %d: expected %s, got %s", tt.level, tt.expected, got)
		}
	}
}
