package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
)

// Flags are the logging flags shared by every command
var Flags = []cli.Flag{
	&cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "Set logging level more verbose to include info level logs",
		Destination: &Opts.Verbose,
	},

	&cli.BoolFlag{
		Name:        "debug",
		Usage:       "Set logging level more verbose to include debug level logs",
		Destination: &Opts.Debug,
	},

	&cli.BoolFlag{
		Name:        "no-color",
		Usage:       "Disable colored log output",
		Destination: &Opts.NoColor,
	},
}

// Opts receives the values of Flags
var Opts Options

// Options selects the log level and formatting
type Options struct {
	Verbose bool
	Debug   bool
	NoColor bool
}

// Level returns the slog level implied by o
func (o Options) Level() slog.Level {
	switch {
	case o.Debug:
		return slog.LevelDebug
	case o.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// New returns a tint-backed logger writing to w
func New(w io.Writer, o Options) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      o.Level(),
		TimeFormat: time.TimeOnly,
		NoColor:    o.NoColor,
	}))
}

// Setup installs a logger built from Opts as the slog default. DEBUG=true
// enables debug logs and any non-empty NO_COLOR disables color.
func Setup(w io.Writer) *slog.Logger {
	Opts = FromEnv(Opts)
	logger := New(w, Opts)
	slog.SetDefault(logger)
	return logger
}

// FromEnv merges the DEBUG and NO_COLOR environment variables into o
func FromEnv(o Options) Options {
	o.Debug = o.Debug || os.Getenv("DEBUG") == "true"
	o.NoColor = o.NoColor || os.Getenv("NO_COLOR") != ""
	return o
}
