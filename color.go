package smoothgrad

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Color is a straight (non-premultiplied) RGBA color with each channel
// normalized to [0, 1]. Interpolation happens directly on these values.
type Color struct {
	R, G, B, A float64
}

var (
	Black    = Color{R: 0, G: 0, B: 0, A: 1}
	White    = Color{R: 1, G: 1, B: 1, A: 1}
	DarkGray = Color{R: 1.0 / 3, G: 1.0 / 3, B: 1.0 / 3, A: 1}
	Navy     = Color{R: 0, G: 0, B: 128.0 / 255, A: 1}

	// Transparent is what a skipped pixel looks like to compositing code.
	Transparent = Color{}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromColor converts any color.Color into a Color, undoing premultiplication.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float64(a)
	return Color{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff,
	}
}

// RGBA implements color.Color. Channels are clamped to [0, 1] and
// premultiplied by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	fa := clamp01(c.A)
	r = uint32(clamp01(c.R)*fa*0xffff + 0.5)
	g = uint32(clamp01(c.G)*fa*0xffff + 0.5)
	b = uint32(clamp01(c.B)*fa*0xffff + 0.5)
	a = uint32(fa*0xffff + 0.5)
	return
}

// rgba8 is what color.RGBAModel would produce for c.
func (c Color) rgba8() color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Lerp interpolates every channel independently: c + (other - c) * t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Clamp restricts every channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// Luminance returns the Rec. 709 luma of the color, ignoring alpha.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

func (c Color) finite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && isFinite(c.A)
}

// Hex formats the color as #RRGGBBAA.
func (c Color) Hex() string {
	p := c.Clamp()
	return fmt.Sprintf("#%02x%02x%02x%02x",
		uint8(math.Round(p.R*255)), uint8(math.Round(p.G*255)),
		uint8(math.Round(p.B*255)), uint8(math.Round(p.A*255)))
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as #RRGGBBAA.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts anything ParseHex does.
func (c *Color) UnmarshalText(text []byte) error {
	p, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = p
	return nil
}

// ParseHex reads a color written as #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
// The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var r, g, b uint8
	a := uint8(0xff)
	var n, want int
	var err error
	switch len(h) {
	case 3:
		want = 3
		n, err = fmt.Sscanf(h, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*0x11, g*0x11, b*0x11
	case 4:
		want = 4
		n, err = fmt.Sscanf(h, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r, g, b, a = r*0x11, g*0x11, b*0x11, a*0x11
	case 6:
		want = 3
		n, err = fmt.Sscanf(h, "%2x%2x%2x", &r, &g, &b)
	case 8:
		want = 4
		n, err = fmt.Sscanf(h, "%2x%2x%2x%2x", &r, &g, &b, &a)
	default:
		return Color{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
	} else if n < want {
		return Color{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
	}

	return Color{
		R: float64(r) / 0xff,
		G: float64(g) / 0xff,
		B: float64(b) / 0xff,
		A: float64(a) / 0xff,
	}, nil
}
