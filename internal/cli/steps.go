package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidStep is returned for a simulate step that cannot be parsed.
var ErrInvalidStep = errors.New("invalid step")

type stepKind int

const (
	stepDrag stepKind = iota
	stepSettle
	stepIndex
	stepClear
	stepPages
	stepReverse
	stepResize
)

// step is one simulated input.
type step struct {
	raw  string
	kind stepKind

	// offset is in points, or in page widths when pageUnits is set
	offset    float64
	pageUnits bool

	// n is the index for index:, the page count for pages: and the
	// viewport width for resize:
	n int
}

// resolve converts the step offset to points for the given page width.
func (s step) resolve(pageWidth float64) float64 {
	if s.pageUnits {
		return s.offset * pageWidth
	}
	return s.offset
}

// parseSteps parses every step argument, stopping at the first error.
func parseSteps(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, arg := range args {
		s, err := parseStep(arg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// parseStep parses drag:<offset>, settle:<offset>, index:<i>, clear,
// pages:<n>, reverse and resize:<width>. Offsets accept a p suffix for
// page widths, e.g. settle:1.5p.
func parseStep(arg string) (step, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(arg), ":")
	s := step{raw: arg}

	switch name {
	case "clear", "reverse":
		if hasValue {
			return step{}, fmt.Errorf("%w %q: %s takes no value", ErrInvalidStep, arg, name)
		}
		if name == "clear" {
			s.kind = stepClear
		} else {
			s.kind = stepReverse
		}
		return s, nil

	case "drag", "settle":
		if !hasValue || value == "" {
			return step{}, fmt.Errorf("%w %q: missing offset", ErrInvalidStep, arg)
		}
		offset, pageUnits, err := parseOffset(value)
		if err != nil {
			return step{}, fmt.Errorf("%w %q: %v", ErrInvalidStep, arg, err)
		}
		s.kind = stepDrag
		if name == "settle" {
			s.kind = stepSettle
		}
		s.offset, s.pageUnits = offset, pageUnits
		return s, nil

	case "index", "pages", "resize":
		if !hasValue || value == "" {
			return step{}, fmt.Errorf("%w %q: missing value", ErrInvalidStep, arg)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return step{}, fmt.Errorf("%w %q: %v", ErrInvalidStep, arg, err)
		}
		switch name {
		case "index":
			s.kind = stepIndex
		case "pages":
			if n < 0 {
				return step{}, fmt.Errorf("%w %q: page count must not be negative", ErrInvalidStep, arg)
			}
			s.kind = stepPages
		case "resize":
			if n <= 0 {
				return step{}, fmt.Errorf("%w %q: width must be positive", ErrInvalidStep, arg)
			}
			s.kind = stepResize
		}
		s.n = n
		return s, nil
	}

	return step{}, fmt.Errorf("%w %q: unknown step %q", ErrInvalidStep, arg, name)
}

func parseOffset(value string) (float64, bool, error) {
	pageUnits := strings.HasSuffix(value, "p")
	if pageUnits {
		value = strings.TrimSuffix(value, "p")
	}
	offset, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, err
	}
	return offset, pageUnits, nil
}
