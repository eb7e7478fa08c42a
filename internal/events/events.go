package events

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rescale/circular-pager/internal/constants"
)

// EventType defines the types of events that can be emitted
type EventType string

const (
	EventLog EventType = "log"

	// Pager events
	EventPageChanged  EventType = "page_changed"  // Current logical index or page changed
	EventPageAttached EventType = "page_attached" // Page entered the preload window
	EventPageDetached EventType = "page_detached" // Page left the preload window
	EventSettled      EventType = "settled"       // Scroll surface settled and offset was snapped
	EventPosition     EventType = "position"      // Position indicator update (page N of M)
)

// LogLevel defines log severity levels
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Event is the base interface for all events
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventType EventType
	Time      time.Time
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// LogEvent represents log messages
type LogEvent struct {
	BaseEvent
	Level   LogLevel
	Message string
	Error   error
}

// PageChangedEvent is published after the pager's current page changed.
// Index is -1 and Page is nil when there is no current page.
type PageChangedEvent struct {
	BaseEvent
	Index int
	Page  any
	Count int // Logical page count at the time of the change
}

// PageLifecycleEvent is published when a page is attached to or detached
// from the display surface.
type PageLifecycleEvent struct {
	BaseEvent
	Page        any
	ActualIndex int // Position in the repeated sequence (-1 on detach)
}

// SettledEvent is published after a settle snapped the scroll offset.
type SettledEvent struct {
	BaseEvent
	RawOffset     float64 // Offset reported by the scroll surface
	SnappedOffset float64 // Offset written back by the pager
	ActualIndex   int
}

// PositionEvent carries a position indicator update.
type PositionEvent struct {
	BaseEvent
	Current int // 1-based page number, 0 when no page is current
	Total   int
	Label   string
}

// EventBus manages event subscriptions and publishing
type EventBus struct {
	subscribers   map[EventType][]chan Event
	all           []chan Event // Subscribers to all events
	mu            sync.RWMutex
	bufferSize    int
	closed        bool
	droppedEvents atomic.Int64 // Count of dropped events due to full buffers
}

// NewEventBus creates a new event bus with specified buffer size
func NewEventBus(bufferSize int) *EventBus {
	if bufferSize <= 0 {
		bufferSize = constants.EventBusDefaultBuffer
	}
	if bufferSize > constants.EventBusMaxBuffer {
		bufferSize = constants.EventBusMaxBuffer
	}
	return &EventBus{
		subscribers: make(map[EventType][]chan Event),
		all:         make([]chan Event, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a subscription to a specific event type
func (eb *EventBus) Subscribe(eventType EventType) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.subscribers[eventType] = append(eb.subscribers[eventType], ch)
	return ch
}

// SubscribeAll creates a subscription to all events
func (eb *EventBus) SubscribeAll() <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, eb.bufferSize)
	eb.all = append(eb.all, ch)
	return ch
}

// Publish sends an event to all subscribers without blocking.
// Events are dropped for subscribers whose buffer is full.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if eb.closed {
		return
	}

	for _, ch := range eb.subscribers[event.Type()] {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}

	for _, ch := range eb.all {
		select {
		case ch <- event:
		default:
			eb.droppedEvents.Add(1)
		}
	}
}

// Close shuts down the event bus and closes all channels
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	eb.closed = true

	for _, channels := range eb.subscribers {
		for _, ch := range channels {
			close(ch)
		}
	}

	for _, ch := range eb.all {
		close(ch)
	}
}

// PublishLog is a convenience method for publishing log events
func (eb *EventBus) PublishLog(level LogLevel, message string, err error) {
	eb.Publish(&LogEvent{
		BaseEvent: BaseEvent{
			EventType: EventLog,
			Time:      time.Now(),
		},
		Level:   level,
		Message: message,
		Error:   err,
	})
}

// PublishPageChanged is a convenience method for publishing page change events
func (eb *EventBus) PublishPageChanged(index int, page any, count int) {
	eb.Publish(&PageChangedEvent{
		BaseEvent: BaseEvent{
			EventType: EventPageChanged,
			Time:      time.Now(),
		},
		Index: index,
		Page:  page,
		Count: count,
	})
}

// PublishAttached is a convenience method for publishing attach events
func (eb *EventBus) PublishAttached(page any, actualIndex int) {
	eb.Publish(&PageLifecycleEvent{
		BaseEvent: BaseEvent{
			EventType: EventPageAttached,
			Time:      time.Now(),
		},
		Page:        page,
		ActualIndex: actualIndex,
	})
}

// PublishDetached is a convenience method for publishing detach events
func (eb *EventBus) PublishDetached(page any) {
	eb.Publish(&PageLifecycleEvent{
		BaseEvent: BaseEvent{
			EventType: EventPageDetached,
			Time:      time.Now(),
		},
		Page:        page,
		ActualIndex: -1,
	})
}

// PublishSettled is a convenience method for publishing settle events
func (eb *EventBus) PublishSettled(rawOffset, snappedOffset float64, actualIndex int) {
	eb.Publish(&SettledEvent{
		BaseEvent: BaseEvent{
			EventType: EventSettled,
			Time:      time.Now(),
		},
		RawOffset:     rawOffset,
		SnappedOffset: snappedOffset,
		ActualIndex:   actualIndex,
	})
}

// PublishPosition is a convenience method for publishing position indicator events
func (eb *EventBus) PublishPosition(current, total int, label string) {
	eb.Publish(&PositionEvent{
		BaseEvent: BaseEvent{
			EventType: EventPosition,
			Time:      time.Now(),
		},
		Current: current,
		Total:   total,
		Label:   label,
	})
}

// Unsubscribe removes a subscription channel from a specific event type
func (eb *EventBus) Unsubscribe(eventType EventType, ch <-chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	subscribers := eb.subscribers[eventType]
	for i, subCh := range subscribers {
		if subCh == ch {
			subscribers[i] = subscribers[len(subscribers)-1]
			eb.subscribers[eventType] = subscribers[:len(subscribers)-1]
			break
		}
	}
}

// UnsubscribeAll removes a subscription channel from all event types
func (eb *EventBus) UnsubscribeAll(ch <-chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return
	}

	for eventType, subscribers := range eb.subscribers {
		for i, subCh := range subscribers {
			if subCh == ch {
				subscribers[i] = subscribers[len(subscribers)-1]
				eb.subscribers[eventType] = subscribers[:len(subscribers)-1]
				break
			}
		}
	}

	for i, subCh := range eb.all {
		if subCh == ch {
			eb.all[i] = eb.all[len(eb.all)-1]
			eb.all = eb.all[:len(eb.all)-1]
			break
		}
	}
}

// GetDroppedEventCount returns the total number of events dropped due to full buffers
func (eb *EventBus) GetDroppedEventCount() int64 {
	return eb.droppedEvents.Load()
}

// ResetDroppedEventCount resets the dropped event counter to zero
func (eb *EventBus) ResetDroppedEventCount() int64 {
	return eb.droppedEvents.Swap(0)
}
