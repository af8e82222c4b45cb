package host

import (
	"math"
	"testing"

	"github.com/voidshard/smoothgrad"
)

func TestSliderMapping(t *testing.T) {
	if got := SliderFromFactor(2); math.Abs(got-math.E*math.E) > 1e-12 {
		t.Errorf("SliderFromFactor(2) = %v, want e^2", got)
	}
	if got := FactorFromSlider(math.E * math.E); math.Abs(got-2) > 1e-12 {
		t.Errorf("FactorFromSlider(e^2) = %v, want 2", got)
	}
	for _, v := range []float64{0.5, 1, 3, 20} {
		if got := SliderFromFactor(FactorFromSlider(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
	if f := FactorFromSlider(1); f != 0 {
		t.Errorf("FactorFromSlider(1) = %v, want 0", f)
	}
}

func TestFactorLabel(t *testing.T) {
	if got, want := FactorLabel(2), "Slope factor: 2.0000x"; got != want {
		t.Errorf("FactorLabel(2) = %q, want %q", got, want)
	}
}

func TestModes(t *testing.T) {
	tests := []struct {
		mode          Mode
		start, end    smoothgrad.Point
		before, after bool
	}{
		{ModeVertical, smoothgrad.Pt(0.5, 0), smoothgrad.Pt(0.5, 1), false, false},
		{ModeHorizontal, smoothgrad.Pt(0, 0.5), smoothgrad.Pt(1, 0.5), false, false},
		{ModeDiagonal, smoothgrad.Pt(0, 0), smoothgrad.Pt(1, 1), false, false},
		{ModeInset, smoothgrad.Pt(0.5, 0.25), smoothgrad.Pt(0.5, 0.75), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			parsed, err := ParseMode(tt.mode.String())
			if err != nil || parsed != tt.mode {
				t.Fatalf("ParseMode(%q) = %v, %v", tt.mode.String(), parsed, err)
			}

			base := smoothgrad.DefaultModel()
			base.Factor = 3.5
			m, err := tt.mode.Apply(base)
			if err != nil {
				t.Fatal(err)
			}
			if m.StartPoint != tt.start || m.EndPoint != tt.end {
				t.Errorf("anchors = %v, %v, want %v, %v", m.StartPoint, m.EndPoint, tt.start, tt.end)
			}
			if m.DrawsBeforeStart != tt.before || m.DrawsAfterEnd != tt.after {
				t.Errorf("flags = %v, %v, want %v, %v", m.DrawsBeforeStart, m.DrawsAfterEnd, tt.before, tt.after)
			}
			if m.Factor != 3.5 {
				t.Errorf("mode changed the factor to %v", m.Factor)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("mode produced an invalid model: %v", err)
			}
		})
	}

	if _, err := ParseMode("radial"); err == nil {
		t.Error("ParseMode(radial) succeeded")
	}
	if _, err := Mode(9).Apply(smoothgrad.DefaultModel()); err == nil {
		t.Error("Mode(9).Apply succeeded")
	}
}
