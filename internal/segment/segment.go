// Package segment extracts labeled bacterial regions from raw
// microscopy frames.
//
// All functions operate on single-channel float32 mats (MatTypeCV32F);
// use GrayFloat to convert a decoded image. Returned mats are owned by
// the caller, which must Close them.
package segment

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
)

// ErrEmptyImage is returned when a pipeline stage receives an empty mat.
var ErrEmptyImage = errors.New("segment: empty image")

// SubtractBackground removes slowly varying illumination by
// subtracting a wide Gaussian blur of the image from the image itself.
// The result can go negative, which is why the pipeline works in
// float32 throughout.
//
// Do not feed the result into LoGSegmentation: that function expects
// the raw frame and does its own smoothing.
func SubtractBackground(im gocv.Mat, sigma float64) gocv.Mat {
	if im.Empty() {
		return gocv.NewMat()
	}

	bg := gocv.NewMat()
	defer bg.Close()
	gocv.GaussianBlur(im, &bg, image.Pt(0, 0), sigma, sigma, gocv.BorderDefault)

	out := gocv.NewMat()
	gocv.Subtract(im, bg, &out)
	return out
}

// ZeroCrossingFilter marks pixels whose 3x3 neighborhood spans a sign
// change, restricted to locations where the Sobel gradient magnitude
// is at least threshold. Sign changes in a second-derivative image are
// the sub-pixel boundary locations; the gradient test rejects the flat
// near-zero regions that also flip sign due to noise.
//
// The returned mat is a binary CV8U mask (0 or 255).
func ZeroCrossingFilter(im gocv.Mat, threshold float64) gocv.Mat {
	if im.Empty() {
		return gocv.NewMat()
	}

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()

	// Grayscale dilate/erode give the 3x3 max and min filters.
	maxF := gocv.NewMat()
	defer maxF.Close()
	gocv.Dilate(im, &maxF, kernel)

	minF := gocv.NewMat()
	defer minF.Close()
	gocv.Erode(im, &minF, kernel)

	grad := gradientMagnitude(im)
	defer grad.Close()

	rows, cols := im.Rows(), im.Cols()
	mask := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8U)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := im.GetFloatAt(y, x)
			crossing := (v >= 0 && minF.GetFloatAt(y, x) < 0) ||
				(v <= 0 && maxF.GetFloatAt(y, x) > 0)
			if crossing && float64(grad.GetFloatAt(y, x)) >= threshold {
				mask.SetUCharAt(y, x, 255)
			}
		}
	}

	return mask
}

// gradientMagnitude computes sqrt(gx^2 + gy^2) with 3x3 Sobel kernels
// normalized so the result stays in intensity units per pixel.
func gradientMagnitude(im gocv.Mat) gocv.Mat {
	gx := gocv.NewMat()
	defer gx.Close()
	gy := gocv.NewMat()
	defer gy.Close()

	// The raw 3x3 Sobel kernel sums to 4x the unit gradient.
	const kernelScale = 0.25
	gocv.Sobel(im, &gx, gocv.MatTypeCV32F, 1, 0, 3, kernelScale, 0, gocv.BorderDefault)
	gocv.Sobel(im, &gy, gocv.MatTypeCV32F, 0, 1, 3, kernelScale, 0, gocv.BorderDefault)

	mag := gocv.NewMat()
	gocv.Magnitude(gx, gy, &mag)
	return mag
}

// LoGSegmentation segments bacteria out of a raw frame.
//
// The pipeline: Laplacian-of-Gaussian filter, zero-crossing edge
// detection, skeletonization of the edge mask, hole filling to produce
// solid blobs, removal of components smaller than MinSize, clearing of
// components within BufferSize of the border, and finally compact
// integer labeling.
//
// The input must be the RAW frame: the function applies its own
// Gaussian smoothing as part of the LoG step, and feeding it an
// already background-subtracted or blurred image silently degrades
// the edge response.
//
// Returns the label map (CV32S, 0 = background) and the label count
// including background, so a frame with one bacterium yields n = 2.
func LoGSegmentation(im gocv.Mat, params Params) (gocv.Mat, int, error) {
	if im.Empty() {
		return gocv.NewMat(), 0, ErrEmptyImage
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(im, &blurred, image.Pt(0, 0), params.LoGSigma, params.LoGSigma, gocv.BorderDefault)

	lap := gocv.NewMat()
	defer lap.Close()
	gocv.Laplacian(blurred, &lap, gocv.MatTypeCV32F, 3, 1, 0, gocv.BorderDefault)

	edges := ZeroCrossingFilter(lap, params.GradientThreshold)
	defer edges.Close()

	skel := skeletonize(edges)
	defer skel.Close()

	solid := fillHoles(skel)
	defer solid.Close()

	labels, n := labelRegions(solid, params.MinSize, params.BufferSize)
	return labels, n, nil
}
