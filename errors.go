package smoothgrad

import (
	"errors"
	"math"
)

var (
	// ErrInvalidFactor means the interpolation factor is not strictly positive.
	ErrInvalidFactor = errors.New("invalid interpolation factor")

	// ErrDegenerateAxis means the start and end anchors coincide, so there
	// is no axis to project onto.
	ErrDegenerateAxis = errors.New("degenerate gradient axis")

	// ErrEmptySurface means the target surface has no pixels.
	ErrEmptySurface = errors.New("empty surface")

	// ErrNonFinite means a color, point or factor is NaN or infinite.
	ErrNonFinite = errors.New("non-finite gradient parameter")
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
