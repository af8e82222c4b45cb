package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/voidshard/smoothgrad"
)

type CLI struct {
	Verbose bool `help:"Log debug output" short:"v" env:"SMOOTHGRAD_VERBOSE"`

	Render RenderCmd `cmd:"" help:"Render one gradient to an image file"`
	Sweep  SweepCmd  `cmd:"" help:"Render a slider drag as numbered frames"`
}

func main() {
	// flags may be preset from the environment, so .env must be read first
	envErr := godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("smoothgrad"),
		kong.Description("Renders smooth two color gradients with a non-linear falloff."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	smoothgrad.SetLogger(logger)

	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}

	kctx.FatalIfErrorf(kctx.Run(logger))
}
