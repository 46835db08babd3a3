// Package ocr reads the burned-in timestamp overlay that time-lapse
// exports carry when acquisition metadata is lost.
package ocr

import (
	"fmt"
	"image"

	"bacteria-tracker/pkg/geometry"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// StampChars restricts recognition to what timestamp overlays contain.
// Excluding letters beyond h/m/s avoids 0/O and 1/I confusion.
const StampChars = "0123456789:.hms "

// Engine reads timestamps using Tesseract.
type Engine struct {
	client *gosseract.Client
}

// NewEngine creates a timestamp OCR engine.
func NewEngine() (*Engine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	// Timestamps are not words; dictionary correction only hurts.
	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")

	return &Engine{client: client}, nil
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// ReadStamp recognizes the timestamp inside the given region of a
// frame and returns it in minutes. img is a single-channel float mat
// scaled to [0, 1], as produced by segment.GrayFloat. The region is
// typically a corner strip; overlays are bright text on a dark field,
// so the crop is binarized before recognition.
func (e *Engine) ReadStamp(img gocv.Mat, region geometry.RectInt) (float64, error) {
	if img.Empty() {
		return 0, fmt.Errorf("empty image")
	}

	r := region.Clip(img.Cols(), img.Rows())
	if r.Empty() {
		return 0, fmt.Errorf("stamp region out of bounds")
	}

	crop := img.Region(image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height))
	defer crop.Close()

	// Otsu needs 8-bit input; the segmentation pipeline hands around
	// float mats in [0, 1].
	gray := gocv.NewMat()
	defer gray.Close()
	crop.ConvertToWithParams(&gray, gocv.MatTypeCV8U, 255, 0)

	bin := gocv.NewMat()
	defer bin.Close()
	gocv.Threshold(gray, &bin, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, bin)
	if err != nil {
		return 0, fmt.Errorf("failed to encode stamp region: %w", err)
	}
	defer buf.Close()

	if err := e.client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return 0, fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := e.client.SetWhitelist(StampChars); err != nil {
		return 0, fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := e.client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return 0, fmt.Errorf("OCR failed: %w", err)
	}

	return ParseStamp(text)
}
