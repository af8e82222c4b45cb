package host

import (
	"fmt"
	"log/slog"

	"golang.org/x/image/font"

	"github.com/voidshard/smoothgrad"
)

// ViewOption is something that can be configured on a View
type ViewOption func(*View) error

// WithModel sets the initial model, which must be valid.
func WithModel(m smoothgrad.Model) ViewOption {
	return func(v *View) error {
		if err := m.Validate(); err != nil {
			return err
		}
		v.model = m
		v.slider = SliderFromFactor(m.Factor)
		return nil
	}
}

// WithBackground sets what the surface is cleared to before each redraw,
// which is what shows through wherever the gradient is not painted.
func WithBackground(c smoothgrad.Color) ViewOption {
	return func(v *View) error {
		v.background = c
		return nil
	}
}

// WithFallback sets the policy for redraws of an invalid model. The color
// is only used by FallbackSolid.
func WithFallback(f Fallback, c smoothgrad.Color) ViewOption {
	return func(v *View) error {
		if f != FallbackSkip && f != FallbackSolid {
			return fmt.Errorf("unknown fallback %d", int(f))
		}
		v.fallback = f
		v.fallbackColor = c
		return nil
	}
}

// WithLabel turns on the factor caption.
func WithLabel(on bool) ViewOption {
	return func(v *View) error {
		v.label = on
		return nil
	}
}

// WithLabelFace turns on the caption using the given face instead of the
// built in Go Regular.
func WithLabelFace(face font.Face) ViewOption {
	return func(v *View) error {
		v.label = true
		v.face = face
		return nil
	}
}

// WithRoutines sets how many goroutines rasterize each redraw.
func WithRoutines(i int) ViewOption {
	return func(v *View) error {
		if i <= 0 {
			i = 1
		}
		v.routines = i
		return nil
	}
}

// UsePattern makes redraws fill the surface through gg's pattern painter
// instead of writing pixels directly.
func UsePattern(on bool) ViewOption {
	return func(v *View) error {
		v.usePattern = on
		return nil
	}
}

// WithLogger sets the logger for fallback warnings.
func WithLogger(l *slog.Logger) ViewOption {
	return func(v *View) error {
		if l == nil {
			return fmt.Errorf("nil logger")
		}
		v.logger = l
		return nil
	}
}
