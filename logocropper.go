// Package logocropper removes the wordmark from a logo image and keeps a
// centered square icon.
//
// The crop is a fixed two step sequence applied to the decoded image:
//
//  1. keep the top TopFraction of the image at full width (0.55 by default,
//     the text is assumed to lie below that line)
//  2. keep the largest square centered in what is left
//
// The result is always written as PNG. Each step prints a progress line to the
// pipeline's output writer.
//
// Basic usage:
//
//	p := logocropper.New()
//	p.SetOutput(os.Stdout)
//	res, err := p.CropLogo("assets/logo.png", "assets/icon.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("icon is %s\n", res.Final)
package logocropper

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"time"

	"github.com/petuwrite/logo-cropper/internal/utils"
	"github.com/petuwrite/logo-cropper/pkg/cropper"
	"github.com/petuwrite/logo-cropper/pkg/processing"
	"github.com/petuwrite/logo-cropper/pkg/types"
)

// Version of the logo cropper
const Version = "1.0.0"

// Pipeline loads, crops and saves a single logo
type Pipeline struct {
	processor *processing.Processor
	cropper   *cropper.LogoCropper
	out       io.Writer
	logger    *slog.Logger
}

// Config holds the pipeline settings
type Config struct {
	TopFraction      float64
	CompressionLevel png.CompressionLevel
}

// New creates a new Pipeline with default configuration. Progress output is
// discarded until SetOutput is called.
func New() *Pipeline {
	return &Pipeline{
		processor: processing.NewProcessor(),
		cropper:   cropper.New(),
		out:       io.Discard,
		logger:    slog.Default(),
	}
}

// NewWithConfig creates a new Pipeline with custom configuration
func NewWithConfig(config Config) *Pipeline {
	p := New()
	p.processor = processing.NewProcessorWithCompression(config.CompressionLevel)
	p.cropper = cropper.NewWithConfig(cropper.CropConfig{TopFraction: config.TopFraction})
	return p
}

// SetOutput sets where progress lines are written
func (p *Pipeline) SetOutput(w io.Writer) {
	p.out = w
}

// SetLogger sets the diagnostic logger
func (p *Pipeline) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// CropLogo crops the image at inputPath and writes the square icon to
// outputPath as PNG. Nothing is written to outputPath unless every step before
// the write succeeds.
func (p *Pipeline) CropLogo(inputPath, outputPath string) (*types.Result, error) {
	start := time.Now()
	log := p.logger.With("input", inputPath, "output", outputPath)

	img, err := p.processor.LoadImage(inputPath)
	if err != nil {
		return nil, err
	}
	res := &types.Result{Original: types.DimensionsOf(img), OutputPath: outputPath}
	p.printf("✓ Loaded image: %dx%d pixels", res.Original.Width, res.Original.Height)
	log.Debug("loaded image", "size", res.Original, "format", fmt.Sprintf("%T", img))

	top, err := p.cropper.CropTop(img)
	if err != nil {
		return nil, err
	}
	res.TopRegion = top.Region
	res.Intermediate = top.Region.Dimensions()
	p.printf("✓ Cropped to: %dx%d pixels", res.Intermediate.Width, res.Intermediate.Height)
	log.Debug("top crop", "region", top.Region, "fraction", p.cropper.TopFraction())

	square, err := p.cropper.CropSquare(top.Image)
	if err != nil {
		return nil, err
	}
	res.SquareRegion = square.Region
	res.Final = square.Region.Dimensions()
	p.printf("✓ Made square: %dx%d pixels", res.Final.Width, res.Final.Height)
	log.Debug("square crop", "region", square.Region)

	if _, err := p.processor.SavePNG(square.Image, outputPath); err != nil {
		return nil, err
	}
	p.printf("✓ Saved to: %s", outputPath)

	n, err := utils.FileSize(outputPath)
	if err != nil {
		return nil, types.NewError(types.IoError, "stat", outputPath, err)
	}
	res.OutputBytes = n
	p.printf("✓ File size: %s", utils.FormatKB(n))

	log.Info("logo cropped", "original", res.Original, "final", res.Final, "bytes", n, "elapsed", time.Since(start))
	return res, nil
}

// Run is CropLogo reduced to a success flag. Failures are printed to the
// output writer and logged.
func (p *Pipeline) Run(inputPath, outputPath string) bool {
	if _, err := p.CropLogo(inputPath, outputPath); err != nil {
		p.printf("✗ Error: %v", err)
		p.logger.Error("crop failed", "kind", types.KindOf(err), "err", err)
		return false
	}
	return true
}

func (p *Pipeline) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
