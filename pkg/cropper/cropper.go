package cropper

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/petuwrite/logo-cropper/pkg/types"
)

// DefaultTopFraction keeps the top 55% of the logo, the wordmark sits below it
const DefaultTopFraction = 0.55

// LogoCropper removes the text band from a logo and squares what is left
type LogoCropper struct {
	config CropConfig
}

// CropConfig holds configuration for logo cropping
type CropConfig struct {
	// TopFraction is the share of the image height kept by the first crop, in (0,1]
	TopFraction float64
}

// New creates a new LogoCropper with default configuration
func New() *LogoCropper {
	return &LogoCropper{
		config: CropConfig{
			TopFraction: DefaultTopFraction,
		},
	}
}

// NewWithConfig creates a new LogoCropper with custom configuration
func NewWithConfig(config CropConfig) *LogoCropper {
	return &LogoCropper{config: config}
}

// TopFraction returns the configured top crop fraction
func (c *LogoCropper) TopFraction() float64 {
	return c.config.TopFraction
}

// CropResult contains the result of a cropping operation
type CropResult struct {
	Image  *image.NRGBA
	Region types.Rect
}

// CropTop keeps the top TopFraction of img at full width
func (c *LogoCropper) CropTop(img image.Image) (CropResult, error) {
	f := c.config.TopFraction
	if f <= 0 || f > 1 {
		return CropResult{}, types.NewError(types.InvalidConfig, "crop top", "",
			fmt.Errorf("top fraction %v is outside (0, 1]", f))
	}

	d := types.DimensionsOf(img)
	region := TopRegion(d.Width, d.Height, f)
	out, err := Crop(img, region)
	if err != nil {
		return CropResult{}, err
	}
	return CropResult{Image: out, Region: region}, nil
}

// CropSquare keeps the largest square centered in img
func (c *LogoCropper) CropSquare(img image.Image) (CropResult, error) {
	d := types.DimensionsOf(img)
	region := CenteredSquare(d.Width, d.Height)
	out, err := Crop(img, region)
	if err != nil {
		return CropResult{}, err
	}
	return CropResult{Image: out, Region: region}, nil
}

// TopRegion returns (0, 0, width, floor(height*fraction))
func TopRegion(width, height int, fraction float64) types.Rect {
	return types.Rect{
		Left:   0,
		Top:    0,
		Right:  width,
		Bottom: int(float64(height) * fraction),
	}
}

// CenteredSquare returns the largest square that fits a width x height image,
// centered with integer division so odd leftovers go to the right and bottom.
func CenteredSquare(width, height int) types.Rect {
	side := min(width, height)
	left := (width - side) / 2
	top := (height - side) / 2
	return types.Rect{
		Left:   left,
		Top:    top,
		Right:  left + side,
		Bottom: top + side,
	}
}

// Crop copies region out of img into a new buffer. Empty regions and regions
// that do not lie fully inside img are rejected with an EmptyCrop error.
func Crop(img image.Image, region types.Rect) (*image.NRGBA, error) {
	d := types.DimensionsOf(img)
	if region.Empty() {
		return nil, types.NewError(types.EmptyCrop, "crop", "",
			fmt.Errorf("region %s of %s image has no pixels", region, d))
	}
	if region.Left < 0 || region.Top < 0 || region.Right > d.Width || region.Bottom > d.Height {
		return nil, types.NewError(types.EmptyCrop, "crop", "",
			fmt.Errorf("region %s exceeds %s image", region, d))
	}

	return imaging.Crop(img, region.Rectangle(img.Bounds().Min)), nil
}
