// Package smoothgrad evaluates and rasterizes smooth two-color axial
// gradients.
//
// A Model is a snapshot of everything needed to paint one frame: two colors,
// two anchor points in normalized surface space, an easing factor and the
// extension flags. The rasterizer functions (ColorAt, ColorsForRow, Draw and
// Model.Pattern) keep no state between calls, so a host can rebuild the
// Model on every slider tick and redraw without accumulating drift.
package smoothgrad

import (
	"errors"
	"fmt"
)

// Model is the configuration of one gradient. It is a plain value: copy it,
// change it, validate it and hand the copy to the rasterizer.
type Model struct {
	StartColor Color
	EndColor   Color

	// StartPoint and EndPoint define the gradient axis in normalized
	// surface coordinates.
	StartPoint Point
	EndPoint   Point

	// Factor is the steepness of the easing curve, it must be > 0.
	Factor float64

	// DrawsBeforeStart and DrawsAfterEnd decide whether pixels projecting
	// before the start anchor or past the end anchor are painted at all.
	DrawsBeforeStart bool
	DrawsAfterEnd    bool

	// Reverse swaps the roles of the two anchors (and so of the colors).
	Reverse bool

	Curve  Curve
	Extend Extend
}

// DefaultModel returns a vertical white to dark gray gradient with a factor
// of 2 that does not extend past its anchors.
func DefaultModel() Model {
	return Model{
		StartColor: White,
		EndColor:   DarkGray,
		StartPoint: Point{X: 0.5, Y: 0},
		EndPoint:   Point{X: 0.5, Y: 1},
		Factor:     2,
		Curve:      CurvePower,
		Extend:     ExtendExtrapolate,
	}
}

// NewModel applies opts on top of DefaultModel and validates the result.
func NewModel(opts ...Option) (Model, error) {
	m := DefaultModel()
	for _, opt := range opts {
		if err := opt(&m); err != nil {
			return Model{}, err
		}
	}
	return m, m.Validate()
}

// EffectiveStart is the color painted at StartPoint.
func (m Model) EffectiveStart() Color {
	if m.Reverse {
		return m.EndColor
	}
	return m.StartColor
}

// EffectiveEnd is the color painted at EndPoint.
func (m Model) EffectiveEnd() Color {
	if m.Reverse {
		return m.StartColor
	}
	return m.EndColor
}

// EffectiveAxis returns the anchors in the direction the easing curve runs.
// A reversed gradient flows the other way along the same line.
func (m Model) EffectiveAxis() (Point, Point) {
	if m.Reverse {
		return m.EndPoint, m.StartPoint
	}
	return m.StartPoint, m.EndPoint
}

// Validate reports every problem with the model. The result wraps
// ErrInvalidFactor, ErrDegenerateAxis and ErrNonFinite as appropriate.
func (m Model) Validate() error {
	var errs []error

	if !m.StartColor.finite() || !m.EndColor.finite() {
		errs = append(errs, fmt.Errorf("%w: colors %v and %v", ErrNonFinite, m.StartColor, m.EndColor))
	}
	if !m.StartPoint.finite() || !m.EndPoint.finite() {
		errs = append(errs, fmt.Errorf("%w: points %v and %v", ErrNonFinite, m.StartPoint, m.EndPoint))
	}
	if !isFinite(m.Factor) {
		errs = append(errs, fmt.Errorf("%w: factor %v", ErrNonFinite, m.Factor))
	}
	if !(m.Factor > 0) {
		errs = append(errs, fmt.Errorf("%w: must be greater than zero, given %v", ErrInvalidFactor, m.Factor))
	}

	if m.StartPoint.finite() && m.EndPoint.finite() {
		if err := m.validateAxis(); err != nil {
			errs = append(errs, err)
		}
	}

	if _, ok := curveNames[m.Curve]; !ok {
		errs = append(errs, fmt.Errorf("unknown curve %d", int(m.Curve)))
	}
	if _, ok := extendNames[m.Extend]; !ok {
		errs = append(errs, fmt.Errorf("unknown extend policy %d", int(m.Extend)))
	}

	return errors.Join(errs...)
}

// validateAxis checks that every projection onto the axis is a finite
// number. Anchors must be finite.
func (m Model) validateAxis() error {
	if m.StartPoint == m.EndPoint {
		return fmt.Errorf("%w: start and end are both %v", ErrDegenerateAxis, m.StartPoint)
	}

	axis := m.EndPoint.Sub(m.StartPoint)
	lenSq := axis.Dot(axis)
	switch {
	case lenSq == 0:
		return fmt.Errorf("%w: start %v and end %v are too close to project onto", ErrDegenerateAxis, m.StartPoint, m.EndPoint)
	case !isFinite(lenSq), !isFinite(m.StartPoint.Dot(axis)), !isFinite(m.EndPoint.Dot(axis)):
		return fmt.Errorf("%w: axis from %v to %v overflows", ErrNonFinite, m.StartPoint, m.EndPoint)
	}
	return nil
}
