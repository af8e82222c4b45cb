package smoothgrad

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Model)
		want   []error
	}{
		{"default is valid", func(*Model) {}, nil},
		{"zero factor", func(m *Model) { m.Factor = 0 }, []error{ErrInvalidFactor}},
		{"negative factor", func(m *Model) { m.Factor = -1.5 }, []error{ErrInvalidFactor}},
		{"NaN factor", func(m *Model) { m.Factor = math.NaN() }, []error{ErrInvalidFactor, ErrNonFinite}},
		{"infinite factor", func(m *Model) { m.Factor = math.Inf(1) }, []error{ErrNonFinite}},
		{"coincident anchors", func(m *Model) { m.EndPoint = m.StartPoint }, []error{ErrDegenerateAxis}},
		{"underflowing axis", func(m *Model) { m.StartPoint, m.EndPoint = Pt(0, 0), Pt(1e-170, 0) }, []error{ErrDegenerateAxis}},
		{"overflowing axis", func(m *Model) { m.StartPoint, m.EndPoint = Pt(0, 0), Pt(1e200, 1e200) }, []error{ErrNonFinite}},
		{"distant anchors with a short axis", func(m *Model) { m.StartPoint, m.EndPoint = Pt(1e300, 0), Pt(1e300, 1e10) }, nil},
		{"huge offset anchors", func(m *Model) { m.StartPoint, m.EndPoint = Pt(1e200, 1e200), Pt(1e200, 2e200) }, []error{ErrNonFinite}},
		{"NaN color", func(m *Model) { m.StartColor.G = math.NaN() }, []error{ErrNonFinite}},
		{"infinite point", func(m *Model) { m.EndPoint.X = math.Inf(-1) }, []error{ErrNonFinite}},
		{
			"factor and axis both reported",
			func(m *Model) { m.Factor = 0; m.StartPoint = m.EndPoint },
			[]error{ErrInvalidFactor, ErrDegenerateAxis},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultModel()
			tt.modify(&m)
			err := m.Validate()
			if len(tt.want) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Validate() = %v, want it to wrap %v", err, want)
				}
			}
		})
	}
}

func TestValidateNamesBothAnchors(t *testing.T) {
	m := DefaultModel()
	m.StartPoint, m.EndPoint = Pt(0, 0), Pt(1e-170, 0)
	err := m.Validate()
	if err == nil {
		t.Fatal("Validate() accepted an axis too short to project onto")
	}
	if msg := err.Error(); !strings.Contains(msg, "0,0") || !strings.Contains(msg, "1e-170,0") {
		t.Errorf("Validate() = %q, want both anchors named", msg)
	}
}

func TestColorAtHugeAnchors(t *testing.T) {
	m := DefaultModel()
	m.StartPoint, m.EndPoint = Pt(1e200, 1e200), Pt(0, 0)
	if _, _, err := ColorAt(m, 3, 3, 10, 10); !errors.Is(err, ErrNonFinite) {
		t.Errorf("ColorAt() error = %v, want ErrNonFinite", err)
	}
}

func TestValidateUnknownEnums(t *testing.T) {
	m := DefaultModel()
	m.Curve = Curve(42)
	if err := m.Validate(); err == nil {
		t.Error("Validate() accepted unknown curve")
	}
	m = DefaultModel()
	m.Extend = Extend(-1)
	if err := m.Validate(); err == nil {
		t.Error("Validate() accepted unknown extend policy")
	}
}

func TestEffectiveAccessors(t *testing.T) {
	m := DefaultModel()
	m.StartColor, m.EndColor = White, Navy
	m.StartPoint, m.EndPoint = Pt(0, 0), Pt(1, 0)

	if m.EffectiveStart() != White || m.EffectiveEnd() != Navy {
		t.Errorf("forward effective colors = %v, %v", m.EffectiveStart(), m.EffectiveEnd())
	}
	if a, b := m.EffectiveAxis(); a != Pt(0, 0) || b != Pt(1, 0) {
		t.Errorf("forward effective axis = %v, %v", a, b)
	}

	m.Reverse = true
	if m.EffectiveStart() != Navy || m.EffectiveEnd() != White {
		t.Errorf("reversed effective colors = %v, %v", m.EffectiveStart(), m.EffectiveEnd())
	}
	if a, b := m.EffectiveAxis(); a != Pt(1, 0) || b != Pt(0, 0) {
		t.Errorf("reversed effective axis = %v, %v", a, b)
	}
}

func TestNewModel(t *testing.T) {
	m, err := NewModel(
		WithColors(Black, White),
		WithAxis(Pt(0, 0), Pt(1, 0)),
		WithFactor(3),
		WithExtension(true, false),
		WithReverse(true),
		WithCurve(CurveSigmoid),
		WithExtend(ExtendClamp),
	)
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	want := Model{
		StartColor:       Black,
		EndColor:         White,
		StartPoint:       Pt(0, 0),
		EndPoint:         Pt(1, 0),
		Factor:           3,
		DrawsBeforeStart: true,
		Reverse:          true,
		Curve:            CurveSigmoid,
		Extend:           ExtendClamp,
	}
	if m != want {
		t.Errorf("NewModel() = %+v, want %+v", m, want)
	}
}

func TestNewModelRejects(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"zero factor", WithFactor(0), ErrInvalidFactor},
		{"negative factor", WithFactor(-2), ErrInvalidFactor},
		{"same anchors", WithAxis(Pt(0.3, 0.3), Pt(0.3, 0.3)), ErrDegenerateAxis},
		{"NaN color", WithColors(Color{R: math.NaN()}, White), ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewModel(tt.opt); !errors.Is(err, tt.want) {
				t.Errorf("NewModel() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCurveAndExtendText(t *testing.T) {
	for _, c := range []Curve{CurvePower, CurveSigmoid} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Curve
		if err := got.UnmarshalText(text); err != nil || got != c {
			t.Errorf("curve %v round trip = %v, %v", c, got, err)
		}
	}
	for _, e := range []Extend{ExtendExtrapolate, ExtendClamp} {
		text, err := e.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Extend
		if err := got.UnmarshalText(text); err != nil || got != e {
			t.Errorf("extend %v round trip = %v, %v", e, got, err)
		}
	}
	if _, err := ParseCurve("cubic"); err == nil {
		t.Error("ParseCurve(cubic) succeeded")
	}
	if _, err := ParseExtend("repeat"); err == nil {
		t.Error("ParseExtend(repeat) succeeded")
	}
}
