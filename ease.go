package smoothgrad

import (
	"fmt"
	"math"
)

// Curve selects the easing function applied to the projection scalar
// before colors are blended.
type Curve int

const (
	// CurvePower eases with t^factor. A factor of 1 is linear, larger
	// factors hold the start color longer, smaller ones rush toward the end.
	CurvePower Curve = iota

	// CurveSigmoid eases with t^f / (t^f + (1-t)^f), an S-shaped curve that
	// is symmetric around t = 0.5 and flattens both ends as f grows.
	CurveSigmoid
)

var curveNames = map[Curve]string{
	CurvePower:   "power",
	CurveSigmoid: "sigmoid",
}

func (c Curve) String() string {
	if s, ok := curveNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// ParseCurve is the inverse of Curve.String.
func ParseCurve(s string) (Curve, error) {
	for c, name := range curveNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown curve %q", s)
}

func (c Curve) MarshalText() ([]byte, error) {
	if _, ok := curveNames[c]; !ok {
		return nil, fmt.Errorf("unknown curve %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Curve) UnmarshalText(text []byte) error {
	p, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = p
	return nil
}

// Extend decides what the easing sees for pixels past the anchors when
// those pixels are painted at all.
type Extend int

const (
	// ExtendExtrapolate continues the eased curve past the anchors, so
	// colors keep evolving (until they hit the channel range).
	ExtendExtrapolate Extend = iota

	// ExtendClamp paints the endpoint colors past the anchors.
	ExtendClamp
)

var extendNames = map[Extend]string{
	ExtendExtrapolate: "extrapolate",
	ExtendClamp:       "clamp",
}

func (e Extend) String() string {
	if s, ok := extendNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Extend(%d)", int(e))
}

// ParseExtend is the inverse of Extend.String.
func ParseExtend(s string) (Extend, error) {
	for e, name := range extendNames {
		if name == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown extend policy %q", s)
}

func (e Extend) MarshalText() ([]byte, error) {
	if _, ok := extendNames[e]; !ok {
		return nil, fmt.Errorf("unknown extend policy %d", int(e))
	}
	return []byte(e.String()), nil
}

func (e *Extend) UnmarshalText(text []byte) error {
	p, err := ParseExtend(string(text))
	if err != nil {
		return err
	}
	*e = p
	return nil
}

// ease maps the projection scalar s to a blend weight. factor must be > 0.
func (c Curve) ease(s, factor float64, ext Extend) float64 {
	if ext == ExtendClamp {
		s = clamp01(s)
	}

	switch c {
	case CurveSigmoid:
		// no natural continuation outside [0,1]
		// t^f / (t^f + (1-t)^f) rewritten so large factors cannot
		// underflow both terms to 0/0
		s = clamp01(s)
		return 1 / (1 + math.Pow((1-s)/s, factor))
	default:
		if s < 0 {
			return -math.Pow(-s, factor)
		}
		return math.Pow(s, factor)
	}
}
