package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	logocropper "github.com/petuwrite/logo-cropper"
	"github.com/petuwrite/logo-cropper/internal/config"
	"github.com/petuwrite/logo-cropper/internal/logging"
	"github.com/petuwrite/logo-cropper/internal/utils"
	"github.com/petuwrite/logo-cropper/pkg/processing"
)

// errFailed is returned once the failure has already been reported
var errFailed = errors.New("logo crop failed")

var rule = strings.Repeat("=", 60)

var cmdopts struct {
	configFile string
	saveConfig string
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := append([]cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "JSON configuration file (default: " + config.GetConfigPath() + " when present)",
			Destination: &cmdopts.configFile,
		},
		&cli.StringFlag{
			Name:        "save-config",
			Usage:       "write the effective configuration to this file and exit",
			Destination: &cmdopts.saveConfig,
		},
	}, logging.Flags...)

	app := &cli.App{
		Name:      "logo-cropper",
		HelpName:  "logo-cropper",
		Usage:     "Remove the text from the logo, keeping a centered square icon",
		Writer:    stdout,
		ErrWriter: stderr,
		Action:    cropCmd,
		Flags:     flags,
	}

	if err := app.Run(args); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "%+v\n", err)
		}
		return 1
	}
	return 0
}

func cropCmd(cc *cli.Context) error {
	out := cc.App.Writer
	logger := logging.Setup(cc.App.ErrWriter)

	cfg, from, err := config.Resolve(cmdopts.configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if from != "" {
		logger.Info("loaded configuration", "path", from)
	}

	if cmdopts.saveConfig != "" {
		if err := cfg.SaveToFile(cmdopts.saveConfig); err != nil {
			return err
		}
		fmt.Fprintf(out, "Configuration written to %s\n", cmdopts.saveConfig)
		return nil
	}

	level, err := processing.CompressionLevel(cfg.Output.CompressionLevel)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "  PetUwrite Logo Cropper")
	fmt.Fprintln(out, "  Removes text, keeps icon only")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)

	in, dst := cfg.Paths.Input, cfg.Paths.Output
	if !utils.FileExists(in) {
		fmt.Fprintf(out, "✗ Error: Input file not found: %s\n", in)
		fmt.Fprintln(out, "  Please run this script from the project root directory")
		return errFailed
	}

	fmt.Fprintf(out, "📸 Processing: %s\n", in)
	fmt.Fprintln(out)

	p := logocropper.NewWithConfig(logocropper.Config{
		TopFraction:      cfg.Cropper.TopFraction,
		CompressionLevel: level,
	})
	p.SetOutput(out)
	p.SetLogger(logger)

	if !p.Run(in, dst) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "✗ Failed to crop logo")
		fmt.Fprintln(out, "  Check that the input is a PNG, JPEG, GIF, BMP, TIFF or WebP image")
		return errFailed
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "✅ SUCCESS! Logo cropped successfully")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "📁 Output file: %s\n", dst)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "🎯 Next steps:")
	fmt.Fprintln(out, "   1. Check the cropped image")
	fmt.Fprintln(out, "   2. If the crop area is wrong, adjust cropper.top_fraction in the config file")
	fmt.Fprintln(out, "   3. Re-run with the adjusted configuration")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "💡 To use in your app:")
	fmt.Fprintf(out, "   Image.asset('%s')\n", dst)
	return nil
}
