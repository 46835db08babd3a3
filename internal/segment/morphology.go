package segment

import (
	"image"

	"gocv.io/x/gocv"
)

// skeletonize thins a binary mask to one-pixel-wide curves using the
// morphological skeleton: repeatedly erode, and keep what each erosion
// step destroys that an opening would not have.
func skeletonize(mask gocv.Mat) gocv.Mat {
	kernel := gocv.GetStructuringElement(gocv.MorphCross, image.Pt(3, 3))
	defer kernel.Close()

	skel := gocv.NewMatWithSize(mask.Rows(), mask.Cols(), gocv.MatTypeCV8U)

	work := mask.Clone()
	defer work.Close()
	eroded := gocv.NewMat()
	defer eroded.Close()
	opened := gocv.NewMat()
	defer opened.Close()
	ridge := gocv.NewMat()
	defer ridge.Close()

	for gocv.CountNonZero(work) > 0 {
		gocv.Erode(work, &eroded, kernel)
		gocv.Dilate(eroded, &opened, kernel)
		gocv.Subtract(work, opened, &ridge)
		gocv.BitwiseOr(skel, ridge, &skel)
		eroded.CopyTo(&work)
	}

	return skel
}

// fillHoles turns closed edge curves into solid blobs. Background
// components of the inverted mask that do not touch the frame border
// are enclosed by foreground, i.e. holes.
func fillHoles(mask gocv.Mat) gocv.Mat {
	inv := gocv.NewMat()
	defer inv.Close()
	gocv.BitwiseNot(mask, &inv)

	labels := gocv.NewMat()
	defer labels.Close()
	n := gocv.ConnectedComponents(inv, &labels)

	rows, cols := mask.Rows(), mask.Cols()

	touchesBorder := make([]bool, n)
	for x := 0; x < cols; x++ {
		touchesBorder[labels.GetIntAt(0, x)] = true
		touchesBorder[labels.GetIntAt(rows-1, x)] = true
	}
	for y := 0; y < rows; y++ {
		touchesBorder[labels.GetIntAt(y, 0)] = true
		touchesBorder[labels.GetIntAt(y, cols-1)] = true
	}

	filled := mask.Clone()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if mask.GetUCharAt(y, x) == 0 && !touchesBorder[labels.GetIntAt(y, x)] {
				filled.SetUCharAt(y, x, 255)
			}
		}
	}

	return filled
}

// labelRegions labels connected components of a binary mask, dropping
// components smaller than minSize pixels and components with any pixel
// within bufferSize of the frame border. Surviving components are
// relabeled compactly from 1.
//
// Returns the CV32S label map and the label count including the
// background label 0.
func labelRegions(mask gocv.Mat, minSize, bufferSize int) (gocv.Mat, int) {
	labels := gocv.NewMat()
	defer labels.Close()
	stats := gocv.NewMat()
	defer stats.Close()
	centroids := gocv.NewMat()
	defer centroids.Close()

	n := gocv.ConnectedComponentsWithStats(mask, &labels, &stats, &centroids)

	keep := make([]bool, n)
	for i := 1; i < n; i++ {
		area := int(stats.GetIntAt(i, int(gocv.CCStatArea)))
		keep[i] = area >= minSize
	}

	// Drop anything reaching into the border band.
	rows, cols := mask.Rows(), mask.Cols()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if y > bufferSize && y < rows-1-bufferSize &&
				x > bufferSize && x < cols-1-bufferSize {
				continue
			}
			if l := labels.GetIntAt(y, x); l > 0 {
				keep[l] = false
			}
		}
	}

	remap := make([]int32, n)
	next := int32(1)
	for i := 1; i < n; i++ {
		if keep[i] {
			remap[i] = next
			next++
		}
	}

	out := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32S)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if l := labels.GetIntAt(y, x); l > 0 {
				out.SetIntAt(y, x, remap[l])
			}
		}
	}

	return out, int(next)
}
