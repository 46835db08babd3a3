package segment

import (
	"image"

	"gocv.io/x/gocv"
)

// GrayFloat converts a decoded image to the single-channel float32
// mat the pipeline operates on, with luminance scaled to [0, 1].
func GrayFloat(img image.Image) gocv.Mat {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV32F)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := 0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b)
			mat.SetFloatAt(y, x, lum/0xffff)
		}
	}

	return mat
}

// MatFromFloats builds a float32 mat from row-major data. Intended for
// tests and synthetic frames; panics if the data length does not match.
func MatFromFloats(rows, cols int, data []float32) gocv.Mat {
	if len(data) != rows*cols {
		panic("segment: data length does not match dimensions")
	}

	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mat.SetFloatAt(y, x, data[y*cols+x])
		}
	}

	return mat
}
