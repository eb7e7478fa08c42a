package pager

import (
	"math"

	"github.com/rescale/circular-pager/internal/constants"
)

// NoIndex is reported to listeners when there is no current page.
const NoIndex = -1

// Index is an optional page index.
type Index struct {
	Value int
	Valid bool
}

// None is the absent index.
var None = Index{}

// Some returns a present index.
func Some(i int) Index {
	return Index{Value: i, Valid: true}
}

// OrNoIndex returns the index value, or NoIndex when absent.
func (i Index) OrNoIndex() int {
	if !i.Valid {
		return NoIndex
	}
	return i.Value
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CircularActive reports whether a list of count pages is shown circularly.
func CircularActive(count, threshold int) bool {
	return count > 0 && count >= threshold
}

// Repeat returns the sequence the scroll surface lays out: the pages
// repeated constants.RepeatFactor times when circular, or the pages
// themselves otherwise.
func Repeat(pages []Page, circular bool) []Page {
	if !circular {
		return pages
	}
	out := make([]Page, 0, len(pages)*constants.RepeatFactor)
	for i := 0; i < constants.RepeatFactor; i++ {
		out = append(out, pages...)
	}
	return out
}

// ToLogical maps an actual index into the repeated sequence to the
// logical page index.
func ToLogical(actual Index, count int) Index {
	if !actual.Valid || count <= 0 {
		return None
	}
	return Some(mod(actual.Value, count))
}

// ToActual maps a logical index (absent means 0) to the canonical actual
// index. In circular mode the result lies in the middle copy so that a
// preload window never runs off either end of the repeated sequence.
// Returns 0 for an empty list.
func ToActual(logical Index, count int, circular bool) int {
	if count <= 0 {
		return 0
	}
	i := mod(logical.Value, count)
	if circular {
		i += count
	}
	return i
}

// CandidateIndex returns the actual index whose page covers the middle of
// the viewport at offset x.
func CandidateIndex(x, pageWidth float64) int {
	return int(math.Floor((x-pageWidth/2)/pageWidth)) + 1
}

// Window returns the actual indices whose pages must be attached: the
// center first, then neighbors out to radius, alternating right and left.
// An absent center yields every index of the repeated sequence.
func Window(center Index, repeatedCount, count int, circular bool, radius int) []int {
	limit := repeatedCount
	if !circular && count < limit {
		limit = count
	}
	if limit <= 0 {
		return nil
	}
	if !center.Valid {
		all := make([]int, limit)
		for i := range all {
			all[i] = i
		}
		return all
	}

	window := make([]int, 0, 2*radius+1)
	add := func(i int) {
		if i >= 0 && i < limit {
			window = append(window, i)
		}
	}
	add(center.Value)
	for d := 1; d <= radius; d++ {
		add(center.Value + d)
		add(center.Value - d)
	}
	return window
}
