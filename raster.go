package smoothgrad

import (
	"fmt"
)

// Sample is the rasterizer's answer for one pixel. When Painted is false
// the pixel lies outside the painted extent and the surface keeps whatever
// it already holds there.
type Sample struct {
	Color   Color
	Painted bool
}

// axial is a validated model projected onto a concrete surface size. It is
// built per call and never outlives it.
type axial struct {
	origin Point // effective start anchor
	axis   Point // effective end - effective start
	lenSq  float64
	w, h   float64

	start, end Color
	factor     float64
	curve      Curve
	extend     Extend
	before     bool
	after      bool
}

func prepare(m Model, w, h int) (*axial, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySurface, w, h)
	}

	a, b := m.EffectiveAxis()
	axis := b.Sub(a)
	return &axial{
		origin: a,
		axis:   axis,
		lenSq:  axis.Dot(axis),
		w:      float64(w),
		h:      float64(h),
		start:  m.StartColor,
		end:    m.EndColor,
		factor: m.Factor,
		curve:  m.Curve,
		extend: m.Extend,
		before: m.DrawsBeforeStart,
		after:  m.DrawsAfterEnd,
	}, nil
}

// horizontal reports whether t depends on x alone.
func (a *axial) horizontal() bool { return a.axis.Y == 0 }

// vertical reports whether t depends on y alone.
func (a *axial) vertical() bool { return a.axis.X == 0 }

// project returns the position of pixel (px, py) along the effective axis,
// 0 at the effective start anchor and 1 at the effective end anchor.
func (a *axial) project(px, py int) float64 {
	p := Point{X: float64(px) / a.w, Y: float64(py) / a.h}
	return p.Sub(a.origin).Dot(a.axis) / a.lenSq
}

// shade turns a projection scalar into a color, or reports a skip.
func (a *axial) shade(s float64) (Color, bool) {
	if (s < 0 && !a.before) || (s > 1 && !a.after) {
		return Color{}, false
	}
	e := a.curve.ease(s, a.factor, a.extend)
	return a.start.Lerp(a.end, e).Clamp(), true
}

func (a *axial) at(px, py int) (Color, bool) {
	return a.shade(a.project(px, py))
}

// row appends the samples of scanline py to dst.
func (a *axial) row(dst []Sample, py, width int) []Sample {
	if a.vertical() {
		c, ok := a.at(0, py)
		for i := 0; i < width; i++ {
			dst = append(dst, Sample{Color: c, Painted: ok})
		}
		return dst
	}
	for px := 0; px < width; px++ {
		c, ok := a.at(px, py)
		dst = append(dst, Sample{Color: c, Painted: ok})
	}
	return dst
}

// ColorAt returns the color of pixel (px, py) on a w by h surface. The
// boolean is false when the pixel is outside the painted extent of the
// gradient and must be left untouched.
func ColorAt(m Model, px, py, w, h int) (Color, bool, error) {
	a, err := prepare(m, w, h)
	if err != nil {
		return Color{}, false, err
	}
	c, ok := a.at(px, py)
	return c, ok, nil
}

// ColorsForRow appends the w samples of scanline py to dst and returns the
// extended slice. For a vertical axis the whole row costs one evaluation.
func ColorsForRow(m Model, py, w, h int, dst []Sample) ([]Sample, error) {
	a, err := prepare(m, w, h)
	if err != nil {
		return dst, err
	}
	return a.row(dst, py, w), nil
}
