package smoothgrad

import (
	"fmt"
)

// Option is something that can be configured on a Model by NewModel
type Option func(*Model) error

// WithColors sets the start and end colors.
func WithColors(start, end Color) Option {
	return func(m *Model) error {
		if !start.finite() || !end.finite() {
			return fmt.Errorf("%w: colors %v and %v", ErrNonFinite, start, end)
		}
		m.StartColor = start
		m.EndColor = end
		return nil
	}
}

// WithAxis sets the start and end anchors, in normalized surface space.
func WithAxis(start, end Point) Option {
	return func(m *Model) error {
		if start == end {
			return fmt.Errorf("%w: start and end are both %v", ErrDegenerateAxis, start)
		}
		m.StartPoint = start
		m.EndPoint = end
		return nil
	}
}

// WithFactor sets the easing steepness, which must be greater than zero.
func WithFactor(f float64) Option {
	return func(m *Model) error {
		if !(f > 0) {
			return fmt.Errorf("%w: must be greater than zero, given %v", ErrInvalidFactor, f)
		}
		m.Factor = f
		return nil
	}
}

// WithExtension sets whether the gradient is painted before the start
// anchor and after the end anchor.
func WithExtension(beforeStart, afterEnd bool) Option {
	return func(m *Model) error {
		m.DrawsBeforeStart = beforeStart
		m.DrawsAfterEnd = afterEnd
		return nil
	}
}

// WithReverse sets the reverse flag.
func WithReverse(reverse bool) Option {
	return func(m *Model) error {
		m.Reverse = reverse
		return nil
	}
}

// WithCurve selects the easing curve.
func WithCurve(c Curve) Option {
	return func(m *Model) error {
		if _, ok := curveNames[c]; !ok {
			return fmt.Errorf("unknown curve %d", int(c))
		}
		m.Curve = c
		return nil
	}
}

// WithExtend selects how painted pixels past the anchors are eased.
func WithExtend(e Extend) Option {
	return func(m *Model) error {
		if _, ok := extendNames[e]; !ok {
			return fmt.Errorf("unknown extend policy %d", int(e))
		}
		m.Extend = e
		return nil
	}
}
