package preprocess

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

const (
	// MaxDimension is the longest side allowed before submission to the
	// model; larger images are downscaled to keep payloads small.
	MaxDimension = 1024
	// MinDimension is the shortest side required by the model; smaller
	// images are upscaled.
	MinDimension = 32
)

// Preprocessor normalizes an image before submission: 3-channel color
// representation, longest side capped, shortest side floored. It never
// mutates the caller's image.
type Preprocessor struct {
	maxDimension int
	minDimension int
}

// NewPreprocessor creates a preprocessor with the default size bounds.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{
		maxDimension: MaxDimension,
		minDimension: MinDimension,
	}
}

// NewPreprocessorWithBounds creates a preprocessor with custom size bounds.
func NewPreprocessorWithBounds(maxDimension, minDimension int) *Preprocessor {
	return &Preprocessor{
		maxDimension: maxDimension,
		minDimension: minDimension,
	}
}

// Prepare returns a normalized copy of img. Input already in NRGBA form
// and within bounds is returned unchanged. Defined for any image with
// positive dimensions; there are no failure modes.
func (p *Preprocessor) Prepare(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	resized := false
	out := img

	if longest(width, height) > p.maxDimension {
		// Lanczos keeps fine bone/tissue detail better than bilinear.
		out = imaging.Fit(out, p.maxDimension, p.maxDimension, imaging.Lanczos)
		b := out.Bounds()
		width, height = b.Dx(), b.Dy()
		resized = true
	}

	if shortest(width, height) < p.minDimension {
		newWidth, newHeight := scaleUpToMin(width, height, p.minDimension)
		out = imaging.Resize(out, newWidth, newHeight, imaging.Lanczos)
		resized = true
	}

	if resized {
		// imaging always yields *image.NRGBA, so color mode is settled.
		return out
	}
	if _, ok := img.(*image.NRGBA); ok {
		return img
	}
	return imaging.Clone(img)
}

// scaleUpToMin computes dimensions such that the shorter side equals
// minDim exactly and the aspect ratio is preserved as closely as
// integer rounding allows.
func scaleUpToMin(width, height, minDim int) (int, int) {
	if width <= height {
		ratio := float64(minDim) / float64(width)
		return minDim, int(math.Round(float64(height) * ratio))
	}
	ratio := float64(minDim) / float64(height)
	return int(math.Round(float64(width) * ratio)), minDim
}

func longest(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func shortest(a, b int) int {
	if a < b {
		return a
	}
	return b
}
