package types

import (
	"fmt"
	"image"
)

// Rect is a crop region in pixel coordinates relative to the top-left corner
// of the image it is applied to. Right and Bottom are exclusive.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether the rectangle contains no pixels
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Dimensions returns the size of the region
func (r Rect) Dimensions() Dimensions {
	return Dimensions{Width: r.Width(), Height: r.Height()}
}

// Rectangle converts r to an image.Rectangle translated by origin
func (r Rect) Rectangle(origin image.Point) image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom).Add(origin)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Dimensions is the pixel size of an image
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DimensionsOf returns the size of img
func DimensionsOf(img image.Image) Dimensions {
	b := img.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Result describes a completed logo crop
type Result struct {
	Original     Dimensions `json:"original"`
	TopRegion    Rect       `json:"top_region"`
	Intermediate Dimensions `json:"intermediate"`
	SquareRegion Rect       `json:"square_region"`
	Final        Dimensions `json:"final"`
	OutputPath   string     `json:"output_path"`
	OutputBytes  int64      `json:"output_bytes"`
}
