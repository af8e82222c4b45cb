package main

import (
	"fmt"

	"github.com/voidshard/smoothgrad"
	"github.com/voidshard/smoothgrad/host"
)

// GradientFlags are the model and surface flags shared by every command.
type GradientFlags struct {
	Preset string `help:"JSON preset file. When given it replaces every gradient flag below" env:"SMOOTHGRAD_PRESET" group:"gradient"`

	Mode       string  `help:"Anchor preset" enum:"vertical,horizontal,diagonal,inset" default:"vertical" env:"SMOOTHGRAD_MODE" group:"gradient"`
	StartColor string  `help:"Start color as #RGB, #RGBA, #RRGGBB or #RRGGBBAA" default:"#ffffff" env:"SMOOTHGRAD_START_COLOR" group:"gradient"`
	EndColor   string  `help:"End color as #RGB, #RGBA, #RRGGBB or #RRGGBBAA" default:"#555555" env:"SMOOTHGRAD_END_COLOR" group:"gradient"`
	Start      string  `help:"Start anchor as x,y in [0,1] surface space. Overrides the mode" env:"SMOOTHGRAD_START" group:"gradient"`
	End        string  `help:"End anchor as x,y in [0,1] surface space. Overrides the mode" env:"SMOOTHGRAD_END" group:"gradient"`
	Factor     float64 `help:"Interpolation factor, must be greater than zero" default:"2" env:"SMOOTHGRAD_FACTOR" group:"gradient"`
	Before     bool    `help:"Paint pixels before the start anchor" env:"SMOOTHGRAD_BEFORE" group:"gradient"`
	After      bool    `help:"Paint pixels after the end anchor" env:"SMOOTHGRAD_AFTER" group:"gradient"`
	Reverse    bool    `help:"Swap the roles of the anchors" env:"SMOOTHGRAD_REVERSE" group:"gradient"`
	Curve      string  `help:"Easing curve" enum:"power,sigmoid" default:"power" env:"SMOOTHGRAD_CURVE" group:"gradient"`
	Extend     string  `help:"How pixels past the anchors are eased" enum:"extrapolate,clamp" default:"extrapolate" env:"SMOOTHGRAD_EXTEND" group:"gradient"`

	Width  int `help:"Surface width in pixels" default:"320" env:"SMOOTHGRAD_WIDTH" group:"surface"`
	Height int `help:"Surface height in pixels" default:"480" env:"SMOOTHGRAD_HEIGHT" group:"surface"`
}

func (g *GradientFlags) validateSurface() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", smoothgrad.ErrEmptySurface, g.Width, g.Height)
	}
	return nil
}

// build turns the flags into a validated model.
func (g *GradientFlags) build() (smoothgrad.Model, error) {
	if g.Preset != "" {
		return host.ReadPresetFile(g.Preset)
	}

	mode, err := host.ParseMode(g.Mode)
	if err != nil {
		return smoothgrad.Model{}, err
	}
	base, err := mode.Apply(smoothgrad.DefaultModel())
	if err != nil {
		return smoothgrad.Model{}, err
	}

	startColor, err := smoothgrad.ParseHex(g.StartColor)
	if err != nil {
		return smoothgrad.Model{}, fmt.Errorf("invalid start color: %w", err)
	}
	endColor, err := smoothgrad.ParseHex(g.EndColor)
	if err != nil {
		return smoothgrad.Model{}, fmt.Errorf("invalid end color: %w", err)
	}

	start, end := base.StartPoint, base.EndPoint
	if g.Start != "" {
		if start, err = smoothgrad.ParsePoint(g.Start); err != nil {
			return smoothgrad.Model{}, fmt.Errorf("invalid start anchor: %w", err)
		}
	}
	if g.End != "" {
		if end, err = smoothgrad.ParsePoint(g.End); err != nil {
			return smoothgrad.Model{}, fmt.Errorf("invalid end anchor: %w", err)
		}
	}

	curve, err := smoothgrad.ParseCurve(g.Curve)
	if err != nil {
		return smoothgrad.Model{}, err
	}
	extend, err := smoothgrad.ParseExtend(g.Extend)
	if err != nil {
		return smoothgrad.Model{}, err
	}

	return smoothgrad.NewModel(
		smoothgrad.WithColors(startColor, endColor),
		smoothgrad.WithAxis(start, end),
		smoothgrad.WithFactor(g.Factor),
		smoothgrad.WithExtension(base.DrawsBeforeStart || g.Before, base.DrawsAfterEnd || g.After),
		smoothgrad.WithReverse(g.Reverse),
		smoothgrad.WithCurve(curve),
		smoothgrad.WithExtend(extend),
	)
}

// FallbackFlags pick what is painted when a frame cannot be drawn.
type FallbackFlags struct {
	Fallback      string `help:"What to paint for an invalid model" enum:"skip,solid" default:"skip" env:"SMOOTHGRAD_FALLBACK" group:"fallback"`
	FallbackColor string `help:"Color painted by the solid fallback" default:"#000080" env:"SMOOTHGRAD_FALLBACK_COLOR" group:"fallback"`
}

func (f *FallbackFlags) option() (host.ViewOption, error) {
	c, err := smoothgrad.ParseHex(f.FallbackColor)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback color: %w", err)
	}
	switch f.Fallback {
	case "solid":
		return host.WithFallback(host.FallbackSolid, c), nil
	case "skip":
		return host.WithFallback(host.FallbackSkip, c), nil
	}
	return nil, fmt.Errorf("unknown fallback %q", f.Fallback)
}
