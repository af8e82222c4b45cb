package host

import (
	"fmt"
	"math"

	"github.com/voidshard/smoothgrad"
)

// DefaultFactor is the factor Reset returns to.
const DefaultFactor = 2.0

// FactorFromSlider maps a slider position to an interpolation factor. The
// slider is logarithmic: the factor is ln(v), so positions at or below 1
// give factors the model rejects.
func FactorFromSlider(v float64) float64 {
	return math.Log(v)
}

// SliderFromFactor is the inverse of FactorFromSlider.
func SliderFromFactor(f float64) float64 {
	return math.Exp(f)
}

// FactorLabel is the caption shown next to the slider.
func FactorLabel(f float64) string {
	return fmt.Sprintf("Slope factor: %0.4fx", f)
}

// Mode is a preset of anchors and extension flags, selected by the mode
// switch.
type Mode int

const (
	ModeVertical Mode = iota
	ModeHorizontal
	ModeDiagonal
	// ModeInset keeps the anchors away from the edges and paints past both,
	// which shows how the curve continues beyond them.
	ModeInset
)

var modeNames = []string{"vertical", "horizontal", "diagonal", "inset"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// apply writes the preset's anchors and flags into m.
func (m Mode) apply(g *smoothgrad.Model) error {
	switch m {
	case ModeVertical:
		g.StartPoint, g.EndPoint = smoothgrad.Pt(0.5, 0), smoothgrad.Pt(0.5, 1)
		g.DrawsBeforeStart, g.DrawsAfterEnd = false, false
	case ModeHorizontal:
		g.StartPoint, g.EndPoint = smoothgrad.Pt(0, 0.5), smoothgrad.Pt(1, 0.5)
		g.DrawsBeforeStart, g.DrawsAfterEnd = false, false
	case ModeDiagonal:
		g.StartPoint, g.EndPoint = smoothgrad.Pt(0, 0), smoothgrad.Pt(1, 1)
		g.DrawsBeforeStart, g.DrawsAfterEnd = false, false
	case ModeInset:
		g.StartPoint, g.EndPoint = smoothgrad.Pt(0.5, 0.25), smoothgrad.Pt(0.5, 0.75)
		g.DrawsBeforeStart, g.DrawsAfterEnd = true, true
	default:
		return fmt.Errorf("unknown mode %d", int(m))
	}
	return nil
}

// Apply returns a copy of g with the mode's anchors and flags.
func (m Mode) Apply(g smoothgrad.Model) (smoothgrad.Model, error) {
	err := m.apply(&g)
	return g, err
}
