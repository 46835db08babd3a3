// Package analysis wires the full pipeline together: frames in,
// per-event growth-model fits out.
package analysis

import (
	"fmt"

	"bacteria-tracker/internal/events"
	"bacteria-tracker/internal/frames"
	"bacteria-tracker/internal/growthmodel"
	"bacteria-tracker/internal/ocr"
	"bacteria-tracker/internal/segment"
	"bacteria-tracker/pkg/geometry"
)

// Options configures a series analysis.
type Options struct {
	// Segmentation parameters for every frame.
	Segmentation segment.Params

	// DivisionThreshold is the area change (sq µm) treated as a
	// division; must be negative.
	DivisionThreshold float64

	// Fit options shared by all candidate models.
	Fit growthmodel.FitOptions

	// MicronsPerPixel is the fallback pixel calibration for frames
	// whose TIFF metadata carries none.
	MicronsPerPixel float64

	// MinEventSamples is the minimum number of observations an event
	// needs before fitting a three-parameter model to it is
	// meaningful. Shorter events (typically the truncated first and
	// last events of a movie) are measured but not fitted.
	MinEventSamples int

	// Candidates are the models to compare per event; nil means
	// growthmodel.DefaultCandidates.
	Candidates []growthmodel.Candidate
}

// DefaultOptions returns the standard analysis configuration.
func DefaultOptions() Options {
	return Options{
		Segmentation:      segment.DefaultParams(),
		DivisionThreshold: events.DefaultThreshold,
		Fit:               growthmodel.DefaultFitOptions(),
		MinEventSamples:   4,
	}
}

// EventFit is one growth event together with its ranked model fits.
// Ranking is zero-valued when the event was too short to fit.
type EventFit struct {
	Event   events.Event
	Fitted  bool
	Ranking growthmodel.Ranking
}

// SeriesResult is the outcome of analyzing one time-lapse series.
type SeriesResult struct {
	Times  []float64
	Areas  []float64
	Events []int
	Fits   []EventFit
}

// AnalyzeSeries measures every frame, detects division events and fits
// growth models per event.
func AnalyzeSeries(series frames.Series, opts Options) (*SeriesResult, error) {
	times := series.Times()
	areas := make([]float64, 0, len(series))

	for _, f := range series {
		area, err := MeasureFrame(f, opts)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", f.Path, err)
		}
		areas = append(areas, area)
	}

	return AnalyzeAreas(times, areas, opts)
}

// MeasureFrame segments one frame and returns the total bacterial
// area in sq µm.
func MeasureFrame(f *frames.Frame, opts Options) (float64, error) {
	mpp := f.MicronsPerPixel
	if mpp <= 0 {
		mpp = opts.MicronsPerPixel
	}
	if mpp <= 0 {
		return 0, fmt.Errorf("no pixel calibration: frame metadata and options both lack microns per pixel")
	}

	im := segment.GrayFloat(f.Image)
	defer im.Close()

	labels, n, err := segment.LoGSegmentation(im, opts.Segmentation)
	if err != nil {
		return 0, err
	}
	defer labels.Close()

	stats, err := segment.RegionAreas(labels, n, mpp)
	if err != nil {
		return 0, err
	}

	return segment.TotalArea(stats), nil
}

// StampTimes replaces each frame's Time with the burned-in timestamp
// read from the given region. Used when filenames and metadata carry
// no usable acquisition times.
func StampTimes(series frames.Series, eng *ocr.Engine, region geometry.RectInt) error {
	for _, f := range series {
		im := segment.GrayFloat(f.Image)
		minutes, err := eng.ReadStamp(im, region)
		im.Close()
		if err != nil {
			return fmt.Errorf("frame %s: %w", f.Path, err)
		}
		f.Time = minutes
	}
	return nil
}

// AnalyzeAreas runs the post-measurement half of the pipeline on an
// already measured area series.
func AnalyzeAreas(times, areas []float64, opts Options) (*SeriesResult, error) {
	ids := events.Detect(areas, opts.DivisionThreshold)

	evs, err := events.Split(times, areas, ids)
	if err != nil {
		return nil, err
	}

	fits := make([]EventFit, 0, len(evs))
	for _, ev := range evs {
		fit := EventFit{Event: ev}

		if len(ev.Times) >= opts.MinEventSamples {
			ranking, err := growthmodel.Compare(ev.Times, ev.Areas, opts.Fit, opts.Candidates...)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", ev.ID, err)
			}
			fit.Fitted = true
			fit.Ranking = ranking
		}

		fits = append(fits, fit)
	}

	return &SeriesResult{
		Times:  times,
		Areas:  areas,
		Events: ids,
		Fits:   fits,
	}, nil
}
