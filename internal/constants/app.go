package constants

import (
	"time"
)

// Paging window defaults
const (
	// DefaultPreloadRadius - number of neighbor pages kept attached on each side
	// of the current page. A radius of 1 keeps at most three pages materialized.
	DefaultPreloadRadius = 1

	// DefaultCircularThreshold - minimum page count for which circular
	// (wraparound) paging is activated. Below it the list is shown as-is.
	DefaultCircularThreshold = 3

	// RepeatFactor - number of copies of the page list laid out when circular
	// paging is active. The scroll position is kept in the middle copy.
	RepeatFactor = 3
)

// Scroll surface tuning
const (
	// DefaultScrollMultiplier increases wheel scroll speed by this factor.
	// Fyne default is ~12px per scroll event, which feels sluggish for paging.
	DefaultScrollMultiplier = 3.0

	// DefaultSettleDelay - idle time after the last wheel scroll event before
	// the scroll surface reports the offset as settled. Drags settle on DragEnd.
	DefaultSettleDelay = 150 * time.Millisecond

	// MinSettleDelay / MaxSettleDelay bound the configurable settle delay.
	MinSettleDelay = 10 * time.Millisecond
	MaxSettleDelay = 5 * time.Second
)

// Demo window defaults
const (
	// DefaultDemoPages - number of colored pages shown by the demo window
	DefaultDemoPages = 5

	// DefaultWindowWidth / DefaultWindowHeight - initial demo window size
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 320

	// MaxDemoPages caps the configurable demo page count.
	MaxDemoPages = 1000
)

// Event bus tuning
const (
	// EventBusDefaultBuffer - default buffer size for event channels (1000)
	// Page change events fire on every drag tick, so buffers must absorb bursts.
	EventBusDefaultBuffer = 1000

	// EventBusMaxBuffer - maximum buffer size for high-throughput scenarios (5000)
	EventBusMaxBuffer = 5000
)
