package segment

// Params configures the Laplacian-of-Gaussian segmentation pipeline.
type Params struct {
	// LoGSigma is the Gaussian smoothing strength applied before the
	// Laplacian. Small values keep thin bacterial boundaries sharp.
	LoGSigma float64

	// GradientThreshold is the minimum Sobel gradient magnitude for a
	// zero crossing to count as an edge, in normalized intensity
	// units (images scaled to [0, 1]).
	GradientThreshold float64

	// MinSize is the smallest connected component, in pixels, kept as
	// a bacterium. Smaller blobs are debris or noise.
	MinSize int

	// BufferSize is the width of the border band, in pixels, used to
	// discard partially imaged bacteria. Any region with a pixel
	// within BufferSize of the frame edge is dropped. The band is
	// wide because the LoG response itself comes off the border.
	BufferSize int

	// BackgroundSigma is the Gaussian strength used by
	// SubtractBackground to estimate slowly varying illumination.
	BackgroundSigma float64
}

// DefaultParams returns parameters tuned for phase-contrast frames of
// E. coli at roughly 10 px/µm.
func DefaultParams() Params {
	return Params{
		LoGSigma:          0.5,
		GradientThreshold: 0.001,
		MinSize:           500,
		BufferSize:        5,
		BackgroundSigma:   50,
	}
}

// WithLoGSigma returns a copy of params with a different smoothing
// strength.
func (p Params) WithLoGSigma(sigma float64) Params {
	p.LoGSigma = sigma
	return p
}

// WithGradientThreshold returns a copy of params with a different
// edge-gradient cutoff.
func (p Params) WithGradientThreshold(threshold float64) Params {
	p.GradientThreshold = threshold
	return p
}

// WithSizeRange returns a copy of params with different object-size
// and border-band limits.
func (p Params) WithSizeRange(minSize, bufferSize int) Params {
	p.MinSize = minSize
	p.BufferSize = bufferSize
	return p
}
