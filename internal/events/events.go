// Package events detects bacterial division events in area time series.
//
// A division shows up as a sharp drop in measured area between two
// consecutive frames. Everything between two drops is one growth event,
// during which a single cell grows monotonically until it divides.
package events

import (
	"fmt"
	"math"
	"sort"
)

// DefaultThreshold is the area change (in sq µm) below which a
// frame-to-frame difference is treated as a division rather than noise.
const DefaultThreshold = -350

// ShapeMismatchError reports parallel slices of different lengths.
type ShapeMismatchError struct {
	Name string
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: length mismatch: want %d, got %d", e.Name, e.Want, e.Got)
}

// Detect assigns a growth-event ID to every sample of a time-ordered
// area series. The first sample is always event 0; the ID increments
// by exactly one whenever the area drops by more than the threshold
// magnitude between consecutive samples. Threshold must be negative
// (a drop); DefaultThreshold suits areas measured in sq µm.
//
// The result has the same length as areas and is monotonically
// non-decreasing. Inputs of length 0 or 1 produce no transitions.
func Detect(areas []float64, threshold float64) []int {
	ids := make([]int, 0, len(areas))
	eventID := 0

	for i := range areas {
		if i > 0 && areas[i]-areas[i-1] < threshold {
			eventID++
		}
		ids = append(ids, eventID)
	}

	return ids
}

// NormalizeTimes rebases each event's times onto that event's own
// clock: within every event the first observation becomes t=0.
//
// The output is grouped by event ID in ascending order, NOT aligned
// with the input positions. When event IDs come straight from Detect
// the two orders coincide (IDs are non-decreasing), but for arbitrary
// ID sequences callers must not index the result positionally; use
// NormalizeTimesAligned for that.
func NormalizeTimes(times []float64, events []int) ([]float64, error) {
	if len(times) != len(events) {
		return nil, &ShapeMismatchError{Name: "events", Want: len(times), Got: len(events)}
	}

	ids := distinctIDs(events)
	out := make([]float64, 0, len(times))

	for _, id := range ids {
		start := math.Inf(1)
		for i, ev := range events {
			if ev == id && times[i] < start {
				start = times[i]
			}
		}
		for i, ev := range events {
			if ev == id {
				out = append(out, times[i]-start)
			}
		}
	}

	return out, nil
}

// NormalizeTimesAligned is the order-preserving variant of
// NormalizeTimes: result[i] is times[i] rebased onto the clock of
// events[i], so the output stays parallel to the inputs.
func NormalizeTimesAligned(times []float64, events []int) ([]float64, error) {
	if len(times) != len(events) {
		return nil, &ShapeMismatchError{Name: "events", Want: len(times), Got: len(events)}
	}

	starts := make(map[int]float64, 4)
	for i, ev := range events {
		if t, ok := starts[ev]; !ok || times[i] < t {
			starts[ev] = times[i]
		}
	}

	out := make([]float64, len(times))
	for i, ev := range events {
		out[i] = times[i] - starts[ev]
	}

	return out, nil
}

// Split partitions parallel time/area series into per-event sub-series
// with times rebased per event, in ascending event-ID order. This is
// the shape the growth-model fitter consumes.
func Split(times, areas []float64, events []int) ([]Event, error) {
	if len(times) != len(areas) {
		return nil, &ShapeMismatchError{Name: "areas", Want: len(times), Got: len(areas)}
	}
	if len(times) != len(events) {
		return nil, &ShapeMismatchError{Name: "events", Want: len(times), Got: len(events)}
	}

	byID := make(map[int]*Event)
	for i, ev := range events {
		e, ok := byID[ev]
		if !ok {
			e = &Event{ID: ev}
			byID[ev] = e
		}
		e.Times = append(e.Times, times[i])
		e.Areas = append(e.Areas, areas[i])
	}

	out := make([]Event, 0, len(byID))
	for _, e := range byID {
		start := math.Inf(1)
		for _, t := range e.Times {
			if t < start {
				start = t
			}
		}
		for i := range e.Times {
			e.Times[i] -= start
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Event is one growth event: the samples between two divisions, with
// times rebased so the event starts at t=0.
type Event struct {
	ID    int
	Times []float64
	Areas []float64
}

func distinctIDs(events []int) []int {
	seen := make(map[int]bool, 4)
	ids := make([]int, 0, 4)
	for _, ev := range events {
		if !seen[ev] {
			seen[ev] = true
			ids = append(ids, ev)
		}
	}
	sort.Ints(ids)
	return ids
}
