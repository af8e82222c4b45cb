// Package host is a reference host for smoothgrad: it owns a gg.Context
// pixel surface, turns control input (slider, reverse toggle, mode switch,
// reset) into model updates and redraws the surface from a model snapshot.
package host

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/voidshard/smoothgrad"
)

// Fallback is what a redraw paints when the model cannot be rasterized.
type Fallback int

const (
	// FallbackSkip leaves the previous frame on the surface.
	FallbackSkip Fallback = iota
	// FallbackSolid clears the surface to the fallback color.
	FallbackSolid
)

// View wraps a gg.Context and the model it displays. All methods are safe
// for concurrent use; a redraw always works on a private copy of the model
// taken under the lock, so it never sees a half applied update.
type View struct {
	lock *sync.Mutex

	dc    *gg.Context
	model smoothgrad.Model
	// slider mirrors the control position, which stays where the user put
	// it even when the factor it maps to is invalid
	slider      float64
	needsRedraw bool

	background    smoothgrad.Color
	fallback      Fallback
	fallbackColor smoothgrad.Color
	label         bool
	face          font.Face
	usePattern    bool
	routines      int
	logger        *slog.Logger
}

// NewView creates a view with a w by h surface, showing the default model.
// The surface starts out dirty.
func NewView(w, h int, opts ...ViewOption) (*View, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", smoothgrad.ErrEmptySurface, w, h)
	}

	v := &View{
		lock:          &sync.Mutex{},
		dc:            gg.NewContext(w, h),
		model:         smoothgrad.DefaultModel(),
		slider:        SliderFromFactor(DefaultFactor),
		needsRedraw:   true,
		background:    smoothgrad.Transparent,
		fallbackColor: smoothgrad.Transparent,
		routines:      1,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	if v.label && v.face == nil {
		face, err := newLabelFace(labelSize)
		if err != nil {
			return nil, fmt.Errorf("could not load label font: %w", err)
		}
		v.face = face
	}
	return v, nil
}

// Model returns a copy of the current model.
func (v *View) Model() smoothgrad.Model {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.model
}

// Slider returns the current slider position.
func (v *View) Slider() float64 {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.slider
}

// Update applies fn to a copy of the model, stores the result and marks the
// surface dirty. The validation result of the new model is returned; an
// invalid model is still stored, the next redraw applies the fallback.
func (v *View) Update(fn func(*smoothgrad.Model)) error {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.update(fn)
}

func (v *View) update(fn func(*smoothgrad.Model)) error {
	m := v.model
	fn(&m)
	v.model = m
	v.needsRedraw = true
	return m.Validate()
}

// SetSlider moves the slider to value and sets the factor it maps to.
func (v *View) SetSlider(value float64) error {
	v.lock.Lock()
	defer v.lock.Unlock()
	v.slider = value
	return v.update(func(m *smoothgrad.Model) {
		m.Factor = FactorFromSlider(value)
	})
}

// ToggleReverse flips the reverse flag.
func (v *View) ToggleReverse() error {
	return v.Update(func(m *smoothgrad.Model) {
		m.Reverse = !m.Reverse
	})
}

// SwitchMode applies an anchor and flag preset.
func (v *View) SwitchMode(mode Mode) error {
	v.lock.Lock()
	defer v.lock.Unlock()

	m, err := mode.Apply(v.model)
	if err != nil {
		return err
	}
	return v.update(func(g *smoothgrad.Model) { *g = m })
}

// Reset restores the vertical anchors, the default factor (and slider) and
// clears the reverse flag. Colors and the curve are kept.
func (v *View) Reset() error {
	v.lock.Lock()
	defer v.lock.Unlock()

	m, err := ModeVertical.Apply(v.model)
	if err != nil {
		return err
	}
	m.Factor = DefaultFactor
	m.Reverse = false

	v.slider = SliderFromFactor(DefaultFactor)
	return v.update(func(g *smoothgrad.Model) { *g = m })
}

// Resize replaces the surface with a blank w by h one and marks it dirty.
// The model is resolution independent, so nothing else changes.
func (v *View) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", smoothgrad.ErrEmptySurface, w, h)
	}

	v.lock.Lock()
	defer v.lock.Unlock()
	if w == v.dc.Width() && h == v.dc.Height() {
		return nil
	}
	v.dc = gg.NewContext(w, h)
	v.needsRedraw = true
	return nil
}

// Size returns the surface size in pixels.
func (v *View) Size() (int, int) {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.dc.Width(), v.dc.Height()
}

// NeedsRedraw reports whether the surface is out of date with the model.
func (v *View) NeedsRedraw() bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.needsRedraw
}

// Display redraws only if something changed since the last redraw.
func (v *View) Display() error {
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.needsRedraw {
		return nil
	}
	return v.redraw()
}

// Redraw paints the current model onto the surface. If the model is invalid
// the fallback policy is applied and the validation error returned.
func (v *View) Redraw() error {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.redraw()
}

func (v *View) redraw() error {
	m := v.model
	v.needsRedraw = false

	if err := m.Validate(); err != nil {
		return v.fail(err)
	}

	w, h := v.dc.Width(), v.dc.Height()
	v.dc.SetColor(v.background)
	v.dc.Clear()

	if v.usePattern {
		p, err := m.Pattern(w, h)
		if err != nil {
			return v.fail(err)
		}
		v.dc.SetFillStyle(p)
		v.dc.DrawRectangle(0, 0, float64(w), float64(h))
		v.dc.Fill()
	} else {
		if err := smoothgrad.Draw(v.dc.Image().(*image.RGBA), m, smoothgrad.Routines(v.routines)); err != nil {
			return v.fail(err)
		}
	}

	if v.label {
		v.drawLabel(m)
	}
	return nil
}

// fail applies the fallback policy for err and returns it.
func (v *View) fail(err error) error {
	switch v.fallback {
	case FallbackSolid:
		v.dc.SetColor(v.fallbackColor)
		v.dc.Clear()
		v.logger.Warn("could not draw gradient, painted fallback", "color", v.fallbackColor, "error", err)
	default:
		v.logger.Warn("could not draw gradient, kept previous frame", "error", err)
	}
	return err
}

// Image returns a copy of the surface.
func (v *View) Image() *image.RGBA {
	v.lock.Lock()
	defer v.lock.Unlock()

	src := v.dc.Image().(*image.RGBA)
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// Encode writes the surface to w in the given format.
func (v *View) Encode(w io.Writer, format string) error {
	return Encode(w, v.Image(), format)
}

// Save writes the surface to path, the format comes from its extension.
func (v *View) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", path, closeErr)
		}
	}()

	return v.Encode(f, format)
}
