package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/voidshard/smoothgrad"
	"github.com/voidshard/smoothgrad/host"
)

type RenderCmd struct {
	Gradient GradientFlags `embed:""`

	Out         string `arg:"" optional:"" help:"Output file" default:"gradient.png"`
	Format      string `help:"Output format, auto picks it from the file extension" enum:"auto,png,jpeg,gif,bmp,tiff" default:"auto" env:"SMOOTHGRAD_FORMAT"`
	Background  string `help:"Color left where the gradient is not painted" default:"#00000000" env:"SMOOTHGRAD_BACKGROUND"`
	Label       bool   `help:"Caption the image with the factor" env:"SMOOTHGRAD_LABEL"`
	Pattern     bool   `help:"Fill through the gg pattern painter instead of writing pixels directly"`
	Routines    int    `help:"Goroutines sharing the rows of the surface" default:"1" env:"SMOOTHGRAD_ROUTINES"`
	WritePreset string `help:"Also write the model to this JSON preset file"`

	Model           smoothgrad.Model `kong:"-"`
	BackgroundColor smoothgrad.Color `kong:"-"`
}

func (c *RenderCmd) Validate(kctx *kong.Context) error {
	if err := c.Gradient.validateSurface(); err != nil {
		return err
	}

	var err error
	if c.Model, err = c.Gradient.build(); err != nil {
		return fmt.Errorf("invalid gradient: %w", err)
	}
	if c.BackgroundColor, err = smoothgrad.ParseHex(c.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}

	if c.Format == "auto" {
		if _, err := host.FormatFromPath(c.Out); err != nil {
			return err
		}
	}
	if c.Out, err = filepath.Abs(c.Out); err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	return nil
}

func (c *RenderCmd) Run(logger *slog.Logger) error {
	v, err := host.NewView(c.Gradient.Width, c.Gradient.Height,
		host.WithModel(c.Model),
		host.WithBackground(c.BackgroundColor),
		host.WithLabel(c.Label),
		host.UsePattern(c.Pattern),
		host.WithRoutines(c.Routines),
		host.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("could not create surface: %w", err)
	}
	if err := v.Redraw(); err != nil {
		return fmt.Errorf("could not draw gradient: %w", err)
	}

	if c.Format == "auto" {
		err = v.Save(c.Out)
	} else {
		err = saveAs(v, c.Out, c.Format)
	}
	if err != nil {
		return err
	}
	logger.Info("rendered", "file", c.Out, "width", c.Gradient.Width, "height", c.Gradient.Height,
		"factor", c.Model.Factor, "reverse", c.Model.Reverse)

	if c.WritePreset != "" {
		if err := writePresetFile(c.WritePreset, c.Model); err != nil {
			return err
		}
		logger.Info("wrote preset", "file", c.WritePreset)
	}
	return nil
}

// saveAs writes the surface to path in an explicit format, whatever the
// extension says.
func saveAs(v *host.View, path, format string) (err error) {
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

func writePresetFile(path string, m smoothgrad.Model) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create preset %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close preset %q: %w", path, closeErr)
		}
	}()
	return host.WritePreset(f, m)
}
