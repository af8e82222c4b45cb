package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alecthomas/kong"

	"github.com/voidshard/smoothgrad"
	"github.com/voidshard/smoothgrad/host"
)

type SweepCmd struct {
	Gradient GradientFlags `embed:""`
	OnError  FallbackFlags `embed:""`

	Dir      string  `help:"Destination folder for the frames" default:"frames" env:"SMOOTHGRAD_DIR"`
	From     float64 `help:"Slider position of the first frame. The factor is ln(position)" default:"1.5"`
	To       float64 `help:"Slider position of the last frame" default:"20"`
	Frames   int     `help:"Number of frames" default:"30"`
	Format   string  `help:"Frame format" enum:"png,jpeg,gif,bmp,tiff" default:"png" env:"SMOOTHGRAD_FORMAT"`
	Label    bool    `help:"Caption every frame with its factor" env:"SMOOTHGRAD_LABEL"`
	Routines int     `help:"Goroutines sharing the rows of each frame, 0 for one per CPU" default:"0" env:"SMOOTHGRAD_ROUTINES"`

	Model       smoothgrad.Model `kong:"-"`
	FallbackOpt host.ViewOption  `kong:"-"`
}

func (c *SweepCmd) Validate(kctx *kong.Context) error {
	if err := c.Gradient.validateSurface(); err != nil {
		return err
	}
	if c.Frames < 1 {
		return fmt.Errorf("invalid frame count: %d", c.Frames)
	}

	var err error
	if c.Model, err = c.Gradient.build(); err != nil {
		return fmt.Errorf("invalid gradient: %w", err)
	}
	if c.FallbackOpt, err = c.OnError.option(); err != nil {
		return err
	}

	if c.Routines < 1 {
		c.Routines = runtime.GOMAXPROCS(0)
	}
	if c.Dir, err = filepath.Abs(c.Dir); err != nil {
		return fmt.Errorf("invalid frame path %q: %w", c.Dir, err)
	}
	return nil
}

func (c *SweepCmd) Run(logger *slog.Logger) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("unable to create frame folder %q: %w", c.Dir, err)
	}

	v, err := host.NewView(c.Gradient.Width, c.Gradient.Height,
		host.WithModel(c.Model),
		host.WithLabel(c.Label),
		host.WithRoutines(c.Routines),
		host.WithLogger(logger),
		c.FallbackOpt,
	)
	if err != nil {
		return fmt.Errorf("could not create surface: %w", err)
	}

	ext := c.Format
	if ext == "jpeg" {
		ext = "jpg"
	}

	var errCount int
	for i, value := range sliderPositions(c.From, c.To, c.Frames) {
		frameLogger := logger.With("frame", i, "slider", value)

		if err := v.SetSlider(value); err != nil {
			frameLogger.Debug("slider gives an invalid model", "error", err)
		}
		if err := v.Redraw(); err != nil {
			errCount++
		}

		name := filepath.Join(c.Dir, fmt.Sprintf("frame_%04d.%s", i, ext))
		if err := v.Save(name); err != nil {
			return fmt.Errorf("could not save frame %d: %w", i, err)
		}
		frameLogger.Debug("saved", "file", name, "factor", v.Model().Factor)
	}

	logger.Info("stats", "frames", c.Frames, "errors", errCount, "dir", c.Dir)
	return nil
}

// sliderPositions returns n evenly spaced positions from from to to, both
// included.
func sliderPositions(from, to float64, n int) []float64 {
	if n == 1 {
		return []float64{from}
	}
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + step*float64(i)
	}
	out[n-1] = to
	return out
}
