package scrub

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrDurationUnknown is returned when an operation needs the media
	// duration and the controller does not know it yet.
	ErrDurationUnknown = errors.New("media duration unknown")
	// ErrInvalidSelection is returned for selections with negative or
	// non-finite values, or operations that need a non-empty selection.
	ErrInvalidSelection = errors.New("invalid selection")
)

// Selection is a user-marked range of the timeline, in seconds.
type Selection struct {
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
}

// End returns the end of the range in seconds.
func (s Selection) End() float64 {
	return s.Start + s.Duration
}

// Validate reports ErrInvalidSelection for negative or non-finite values.
func (s Selection) Validate() error {
	if !finite(s.Start) || !finite(s.Duration) {
		return fmt.Errorf("%w: non-finite value", ErrInvalidSelection)
	}
	if s.Start < 0 {
		return fmt.Errorf("%w: start %g < 0", ErrInvalidSelection, s.Start)
	}
	if s.Duration < 0 {
		return fmt.Errorf("%w: duration %g < 0", ErrInvalidSelection, s.Duration)
	}
	return nil
}

// StartTime returns Start as a time.Duration.
func (s Selection) StartTime() time.Duration {
	return secondsToDuration(s.Start)
}

// String formats the selection as "start+duration" in seconds.
func (s Selection) String() string {
	return strconv.FormatFloat(s.Start, 'f', 2, 64) + "s+" +
		strconv.FormatFloat(s.Duration, 'f', 2, 64) + "s"
}

// ParseSelection parses "start:duration" in seconds, e.g. "12.5:30".
func ParseSelection(v string) (Selection, error) {
	startStr, durStr, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok {
		return Selection{}, fmt.Errorf("%w: %q is not start:duration", ErrInvalidSelection, v)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(startStr), 64)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: start: %w", ErrInvalidSelection, err)
	}
	dur, err := strconv.ParseFloat(strings.TrimSpace(durStr), 64)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: duration: %w", ErrInvalidSelection, err)
	}
	sel := Selection{Start: start, Duration: dur}
	if err := sel.Validate(); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

func (s *Selection) clone() *Selection {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
