package segment

import (
	"fmt"

	"bacteria-tracker/pkg/geometry"

	"gocv.io/x/gocv"
)

// RegionStat describes one labeled bacterium.
type RegionStat struct {
	Label      int
	PixelCount int
	Area       float64 // sq µm
	Centroid   geometry.Point2D
}

// RegionAreas measures every labeled region of a LoGSegmentation
// result. n is the label count the segmentation returned (including
// background); micronsPerPixel converts pixel counts into areas.
//
// Results are ordered by label, so index i holds label i+1.
func RegionAreas(labels gocv.Mat, n int, micronsPerPixel float64) ([]RegionStat, error) {
	if labels.Empty() {
		return nil, ErrEmptyImage
	}
	if micronsPerPixel <= 0 {
		return nil, fmt.Errorf("segment: microns per pixel must be positive, got %v", micronsPerPixel)
	}

	stats := make([]RegionStat, n-1)
	sumX := make([]float64, n)
	sumY := make([]float64, n)

	rows, cols := labels.Rows(), labels.Cols()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			l := int(labels.GetIntAt(y, x))
			if l == 0 {
				continue
			}
			if l >= n {
				return nil, fmt.Errorf("segment: label %d out of range (count %d)", l, n)
			}
			stats[l-1].PixelCount++
			sumX[l] += float64(x)
			sumY[l] += float64(y)
		}
	}

	pxArea := micronsPerPixel * micronsPerPixel
	for i := range stats {
		stats[i].Label = i + 1
		stats[i].Area = float64(stats[i].PixelCount) * pxArea
		if c := float64(stats[i].PixelCount); c > 0 {
			stats[i].Centroid = geometry.Point2D{X: sumX[i+1] / c, Y: sumY[i+1] / c}
		}
	}

	return stats, nil
}

// TotalArea sums the areas of all regions, in sq µm. One frame of a
// mother-machine channel holds a single cell, so the per-frame total
// is that cell's area series sample.
func TotalArea(stats []RegionStat) float64 {
	var sum float64
	for _, s := range stats {
		sum += s.Area
	}
	return sum
}
