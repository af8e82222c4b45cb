package host

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/voidshard/smoothgrad"
)

// Preset is the JSON form of a model, so a gradient can be handed to the
// CLI as a file. Colors are #RRGGBBAA strings, points "x,y" strings.
type Preset struct {
	StartColor       smoothgrad.Color  `json:"startColor"`
	EndColor         smoothgrad.Color  `json:"endColor"`
	StartPoint       smoothgrad.Point  `json:"startPoint"`
	EndPoint         smoothgrad.Point  `json:"endPoint"`
	Factor           float64           `json:"interpolationFactor"`
	DrawsBeforeStart bool              `json:"drawsBeforeStart"`
	DrawsAfterEnd    bool              `json:"drawsAfterEnd"`
	Reverse          bool              `json:"reverse"`
	Curve            smoothgrad.Curve  `json:"curve"`
	Extend           smoothgrad.Extend `json:"extend"`
}

// PresetFrom captures m.
func PresetFrom(m smoothgrad.Model) Preset {
	return Preset{
		StartColor:       m.StartColor,
		EndColor:         m.EndColor,
		StartPoint:       m.StartPoint,
		EndPoint:         m.EndPoint,
		Factor:           m.Factor,
		DrawsBeforeStart: m.DrawsBeforeStart,
		DrawsAfterEnd:    m.DrawsAfterEnd,
		Reverse:          m.Reverse,
		Curve:            m.Curve,
		Extend:           m.Extend,
	}
}

// Model returns the model the preset describes, unvalidated.
func (p Preset) Model() smoothgrad.Model {
	return smoothgrad.Model{
		StartColor:       p.StartColor,
		EndColor:         p.EndColor,
		StartPoint:       p.StartPoint,
		EndPoint:         p.EndPoint,
		Factor:           p.Factor,
		DrawsBeforeStart: p.DrawsBeforeStart,
		DrawsAfterEnd:    p.DrawsAfterEnd,
		Reverse:          p.Reverse,
		Curve:            p.Curve,
		Extend:           p.Extend,
	}
}

// LoadPreset decodes a preset from r. Keys missing from the document keep
// their DefaultModel values. The result is validated.
func LoadPreset(r io.Reader) (smoothgrad.Model, error) {
	p := PresetFrom(smoothgrad.DefaultModel())
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return smoothgrad.Model{}, fmt.Errorf("could not decode preset: %w", err)
	}
	m := p.Model()
	return m, m.Validate()
}

// ReadPresetFile loads a preset from a file.
func ReadPresetFile(path string) (smoothgrad.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return smoothgrad.Model{}, err
	}
	defer f.Close()

	m, err := LoadPreset(f)
	if err != nil {
		return m, fmt.Errorf("preset %q: %w", path, err)
	}
	return m, nil
}

// WritePreset encodes m to w as indented JSON.
func WritePreset(w io.Writer, m smoothgrad.Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(PresetFrom(m))
}
