package smoothgrad

import (
	"image"
	"image/draw"
	"sync"
)

// bandRows is the height of the row bands handed to each routine.
const bandRows = 64

type drawConfig struct {
	routines int
}

// DrawOption configures a single Draw call.
type DrawOption func(*drawConfig)

// Routines sets how many goroutines share the rows of a Draw call. All of
// them have finished by the time Draw returns. Values below 1 mean 1, which
// is the default and keeps rasterization on the calling goroutine.
//
// Only *image.RGBA destinations are split, other images are drawn serially.
func Routines(n int) DrawOption {
	return func(c *drawConfig) {
		if n < 1 {
			n = 1
		}
		c.routines = n
	}
}

// Draw paints m over the whole of dst. Pixel (0,0) of the gradient is
// dst.Bounds().Min. Painted pixels are replaced (Src), skipped pixels are
// not written.
//
// When the axis is horizontal one row is evaluated and copied to every row,
// when it is vertical each row is a single evaluation. Other axes are
// evaluated per pixel.
func Draw(dst draw.Image, m Model, opts ...DrawOption) error {
	cfg := drawConfig{routines: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := dst.Bounds()
	a, err := prepare(m, r.Dx(), r.Dy())
	if err != nil {
		return err
	}

	var shared []Sample
	path := "pixel"
	switch {
	case a.horizontal():
		path = "horizontal"
		shared = a.row(make([]Sample, 0, r.Dx()), 0, r.Dx())
	case a.vertical():
		path = "vertical"
	}

	im, direct := dst.(*image.RGBA)
	routines := cfg.routines
	if !direct {
		routines = 1
	}
	Logger().Debug("rasterize", "width", r.Dx(), "height", r.Dy(), "path", path, "routines", routines)

	put := pixelWriter(dst)
	if direct {
		put = rgbaWriter(im)
	}

	band := func(y0, y1 int) {
		var buf []Sample
		for py := y0; py < y1; py++ {
			row := shared
			if row == nil {
				row = a.row(buf[:0], py, r.Dx())
				buf = row
			}
			for px, s := range row {
				if s.Painted {
					put(r.Min.X+px, r.Min.Y+py, s.Color)
				}
			}
		}
	}

	if routines == 1 {
		band(0, r.Dy())
		return nil
	}

	// standard fan out -> fan in over row bands
	work := bands(r.Dy(), bandRows)
	wg := &sync.WaitGroup{}
	for i := 0; i < routines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range work {
				band(b[0], b[1])
			}
		}()
	}
	wg.Wait()

	return nil
}

// bands returns the [y0, y1) row ranges covering height rows, size rows at
// a time.
func bands(height, size int) <-chan [2]int {
	out := make(chan [2]int)
	go func() {
		for y := 0; y < height; y += size {
			out <- [2]int{y, min(y+size, height)}
		}
		close(out)
	}()
	return out
}

func pixelWriter(dst draw.Image) func(x, y int, c Color) {
	return func(x, y int, c Color) {
		dst.Set(x, y, c)
	}
}

// rgbaWriter writes straight into Pix. Distinct rows never share bytes, so
// bands may run concurrently.
func rgbaWriter(im *image.RGBA) func(x, y int, c Color) {
	return func(x, y int, c Color) {
		p := c.rgba8()
		i := im.PixOffset(x, y)
		s := im.Pix[i : i+4 : i+4]
		s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
	}
}
