// Package frames loads time-lapse microscopy frames and their
// acquisition metadata.
package frames

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	_ "golang.org/x/image/tiff"
)

// Frame is one decoded time-lapse frame.
type Frame struct {
	Path  string
	Image image.Image

	// Index is the frame number parsed from the filename, -1 when the
	// name carries none.
	Index int

	// Time is minutes since the start of the series. Zero until
	// assigned by LoadSeries or the caller (e.g. from an OCR'd stamp).
	Time float64

	// MicronsPerPixel is the pixel calibration from TIFF resolution
	// metadata, 0 when unknown.
	MicronsPerPixel float64
}

// Load decodes a single frame. TIFF resolution tags, when present,
// populate MicronsPerPixel; the filename populates Index.
func Load(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}

	frame := &Frame{
		Path:  path,
		Image: img,
		Index: indexFromFilename(path),
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".tiff" || ext == ".tif" {
		if mpp, err := micronsPerPixelFromTIFF(path); err == nil {
			frame.MicronsPerPixel = mpp
		}
	}

	return frame, nil
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	if f.Image == nil {
		return 0
	}
	return f.Image.Bounds().Dx()
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	if f.Image == nil {
		return 0
	}
	return f.Image.Bounds().Dy()
}

// Series is a set of frames ordered by time.
type Series []*Frame

// LoadSeries loads every path, orders frames by their filename index
// and assigns Time = index * intervalMinutes relative to the earliest
// frame. Frames without a parseable index are rejected: a series with
// unknown ordering cannot be analyzed.
func LoadSeries(paths []string, intervalMinutes float64) (Series, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("frame interval must be positive, got %v", intervalMinutes)
	}

	series := make(Series, 0, len(paths))
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, err
		}
		if f.Index < 0 {
			return nil, fmt.Errorf("frame %s: no frame number in filename", p)
		}
		series = append(series, f)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Index < series[j].Index })

	if len(series) > 0 {
		first := series[0].Index
		for _, f := range series {
			f.Time = float64(f.Index-first) * intervalMinutes
		}
	}

	return series, nil
}

// Times returns the frame times in series order.
func (s Series) Times() []float64 {
	out := make([]float64, len(s))
	for i, f := range s {
		out[i] = f.Time
	}
	return out
}

// Common microscopy export conventions: "pos1_t0042.tif",
// "frame_042.png", "img-T17.tiff".
var indexPattern = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(?:t|frame[_-]?)(\d+)`)

func indexFromFilename(path string) int {
	base := filepath.Base(path)
	m := indexPattern.FindStringSubmatch(base)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}

// SupportedFormats returns the decodable frame formats.
func SupportedFormats() []string {
	return []string{".tiff", ".tif", ".png", ".jpg", ".jpeg"}
}

// IsSupportedFormat checks if the given path has a supported extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
