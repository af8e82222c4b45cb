package smoothgrad

import (
	"image/color"

	"github.com/fogleman/gg"
)

/*
Pattern adapter so a gg.Context can fill paths with a Model,
see github.com/fogleman/gg/blob/master/pattern.go
*/

type pattern struct {
	a *axial
}

var _ gg.Pattern = (*pattern)(nil)

// ColorAt implements gg.Pattern. Skipped pixels are fully transparent, so
// gg's Over compositing leaves the surface untouched there.
func (p *pattern) ColorAt(x, y int) color.Color {
	c, ok := p.a.at(x, y)
	if !ok {
		return color.Transparent
	}
	return c
}

// Pattern validates m and returns a gg fill style painting it over a w by h
// surface.
//
//	p, err := m.Pattern(dc.Width(), dc.Height())
//	if err != nil {
//		return err
//	}
//	dc.SetFillStyle(p)
//	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
//	dc.Fill()
func (m Model) Pattern(w, h int) (gg.Pattern, error) {
	a, err := prepare(m, w, h)
	if err != nil {
		return nil, err
	}
	return &pattern{a: a}, nil
}
