package host

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/voidshard/smoothgrad"
)

const (
	labelSize    = 14 // points
	labelPadding = 8  // pixels
)

var parseLabelFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// newLabelFace returns a fresh face; faces keep glyph buffers and must not
// be shared between views.
func newLabelFace(size float64) (font.Face, error) {
	f, err := parseLabelFont()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// drawLabel writes the factor caption in the bottom left corner, black or
// white depending on what is painted underneath.
func (v *View) drawLabel(m smoothgrad.Model) {
	w, h := v.dc.Width(), v.dc.Height()
	x, y := labelPadding, h-labelPadding

	under := v.background
	if c, ok, err := smoothgrad.ColorAt(m, x, y, w, h); err == nil && ok {
		under = c
	}
	ink := smoothgrad.Black
	if under.Luminance() < 0.5 {
		ink = smoothgrad.White
	}

	v.dc.SetFontFace(v.face)
	v.dc.SetColor(ink)
	v.dc.DrawStringAnchored(FactorLabel(m.Factor), float64(x), float64(y), 0, 0)
}
