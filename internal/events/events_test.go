package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		areas     []float64
		threshold float64
		want      []int
	}{
		{
			name:      "no drop exceeds default threshold",
			areas:     []float64{100, 105, 40, 45, 50},
			threshold: DefaultThreshold,
			want:      []int{0, 0, 0, 0, 0},
		},
		{
			name:      "single division",
			areas:     []float64{100, 105, 40, 45, 50},
			threshold: -50,
			want:      []int{0, 0, 1, 1, 1},
		},
		{
			name:      "two divisions",
			areas:     []float64{200, 400, 30, 60, 120, 10, 20},
			threshold: -100,
			want:      []int{0, 0, 1, 1, 1, 2, 2},
		},
		{
			name:      "drop exactly at threshold does not count",
			areas:     []float64{100, 50},
			threshold: -50,
			want:      []int{0, 0},
		},
		{
			name:      "single sample",
			areas:     []float64{42},
			threshold: -50,
			want:      []int{0},
		},
		{
			name:      "empty",
			areas:     nil,
			threshold: -50,
			want:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.areas, tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectMonotone(t *testing.T) {
	areas := []float64{500, 520, 100, 130, 170, 40, 55, 70, 20}
	ids := Detect(areas, -60)

	require.Len(t, ids, len(areas))
	assert.Equal(t, 0, ids[0])
	for i := 1; i < len(ids); i++ {
		step := ids[i] - ids[i-1]
		assert.Contains(t, []int{0, 1}, step, "event IDs must grow by 0 or 1")
	}
}

func TestNormalizeTimes(t *testing.T) {
	times := []float64{10, 20, 30, 40, 50}
	events := []int{0, 0, 1, 1, 1}

	got, err := NormalizeTimes(times, events)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 0, 10, 20}, got)
}

// NormalizeTimes groups its output by event ID rather than preserving
// input positions. This is deliberate: the fitter consumes per-event
// blocks. The test pins the reordering down so nobody "fixes" it.
func TestNormalizeTimesReordersByEvent(t *testing.T) {
	times := []float64{5, 100, 6, 101}
	events := []int{1, 0, 1, 0}

	got, err := NormalizeTimes(times, events)
	require.NoError(t, err)

	// Event 0 block (times 100, 101) comes first, then event 1 (5, 6).
	assert.Equal(t, []float64{0, 1, 0, 1}, got)
}

func TestNormalizeTimesPerEventMinimumIsZero(t *testing.T) {
	times := []float64{3, 7, 12, 19, 24, 31}
	events := Detect([]float64{100, 180, 20, 45, 90, 12}, -50)

	got, err := NormalizeTimes(times, events)
	require.NoError(t, err)
	require.Len(t, got, len(times))

	offset := 0
	for _, ev := range distinctIDs(events) {
		n := 0
		for _, e := range events {
			if e == ev {
				n++
			}
		}
		minT := got[offset]
		for _, v := range got[offset : offset+n] {
			if v < minT {
				minT = v
			}
		}
		assert.Zero(t, minT, "event %d must start at t=0", ev)
		offset += n
	}
}

func TestNormalizeTimesAligned(t *testing.T) {
	times := []float64{5, 100, 6, 101}
	events := []int{1, 0, 1, 0}

	got, err := NormalizeTimesAligned(times, events)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, got)
}

func TestNormalizeTimesShapeMismatch(t *testing.T) {
	_, err := NormalizeTimes([]float64{1, 2, 3}, []int{0, 0})
	var shapeErr *ShapeMismatchError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 3, shapeErr.Want)
	assert.Equal(t, 2, shapeErr.Got)
}

func TestSplit(t *testing.T) {
	times := []float64{10, 15, 20, 25, 30}
	areas := []float64{100, 105, 40, 45, 50}
	ids := Detect(areas, -50)

	evs, err := Split(times, areas, ids)
	require.NoError(t, err)
	require.Len(t, evs, 2)

	assert.Equal(t, 0, evs[0].ID)
	assert.Equal(t, []float64{0, 5}, evs[0].Times)
	assert.Equal(t, []float64{100, 105}, evs[0].Areas)

	assert.Equal(t, 1, evs[1].ID)
	assert.Equal(t, []float64{0, 5, 10}, evs[1].Times)
	assert.Equal(t, []float64{40, 45, 50}, evs[1].Areas)
}
