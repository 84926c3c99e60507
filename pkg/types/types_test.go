package types

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	r := Rect{Left: 225, Top: 0, Right: 775, Bottom: 550}

	assert.Equal(t, 550, r.Width())
	assert.Equal(t, 550, r.Height())
	assert.False(t, r.Empty())
	assert.Equal(t, Dimensions{Width: 550, Height: 550}, r.Dimensions())
	assert.Equal(t, "(225, 0, 775, 550)", r.String())
	assert.Equal(t, image.Rect(235, 5, 785, 555), r.Rectangle(image.Pt(10, 5)))
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, Rect{Right: 10}.Empty())
	assert.True(t, Rect{Bottom: 10}.Empty())
	assert.True(t, Rect{Left: 5, Right: 5, Bottom: 3}.Empty())
}

func TestDimensionsOf(t *testing.T) {
	img := image.NewNRGBA(image.Rect(3, 4, 803, 404))
	d := DimensionsOf(img)
	assert.Equal(t, Dimensions{Width: 800, Height: 400}, d)
	assert.Equal(t, "800x400", d.String())
}

func TestKindOf(t *testing.T) {
	base := NewError(DecodeError, "decode", "logo.png", errors.New("image: unknown format"))
	wrapped := fmt.Errorf("crop logo: %w", base)

	assert.Equal(t, DecodeError, KindOf(base))
	assert.Equal(t, DecodeError, KindOf(wrapped))
	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestErrorMessage(t *testing.T) {
	err := NewError(NotFound, "open", "assets/logo.png", fs.ErrNotExist)
	assert.Equal(t, "open assets/logo.png: file does not exist", err.Error())
	require.ErrorIs(t, err, fs.ErrNotExist)

	err = NewError(EmptyCrop, "crop", "", errors.New("region is empty"))
	assert.Equal(t, "crop: region is empty", err.Error())
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		NotFound:      "not found",
		DecodeError:   "decode error",
		EncodeError:   "encode error",
		IoError:       "io error",
		EmptyCrop:     "empty crop",
		InvalidConfig: "invalid config",
		Unknown:       "unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
