package processing

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/petuwrite/logo-cropper/internal/utils"
	"github.com/petuwrite/logo-cropper/pkg/types"
)

// Processor handles image loading and PNG output
type Processor struct {
	compression png.CompressionLevel
}

// NewProcessor creates a new image processor using the default PNG compression
func NewProcessor() *Processor {
	return &Processor{compression: png.DefaultCompression}
}

// NewProcessorWithCompression creates a processor that writes PNGs at level
func NewProcessorWithCompression(level png.CompressionLevel) *Processor {
	return &Processor{compression: level}
}

// LoadImage loads an image from a file path. A missing file is reported as
// NotFound before any decode is attempted.
func (p *Processor) LoadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.NewError(types.NotFound, "open", path, fs.ErrNotExist)
		}
		return nil, types.NewError(types.IoError, "stat", path, err)
	}
	if info.IsDir() {
		return nil, types.NewError(types.IoError, "open", path, errors.New("is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, types.NewError(types.IoError, "open", path, err)
	}
	defer f.Close()

	img, err := p.DecodeImage(f, utils.GetFileExtension(path))
	if err != nil {
		return nil, types.NewError(types.DecodeError, "decode", path, err)
	}
	return img, nil
}

// DecodeImage decodes r with the registered decoders, retrying WebP input
// with the libwebp decoder when the registered one rejects it.
func (p *Processor) DecodeImage(r io.ReadSeeker, ext string) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err == nil {
		return img, nil
	}
	if ext != "webp" {
		return nil, err
	}

	if _, serr := r.Seek(0, io.SeekStart); serr != nil {
		return nil, err
	}
	if img, werr := webp.Decode(r); werr == nil {
		return img, nil
	}
	return nil, err
}

// EncodePNG encodes img as PNG into memory
func (p *Processor) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(p.compression)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG writes img to path as PNG, replacing any existing file, and returns
// the number of bytes written. The image is encoded before path is opened so a
// failed encode leaves an existing file untouched.
func (p *Processor) SavePNG(img image.Image, path string) (int64, error) {
	data, err := p.EncodePNG(img)
	if err != nil {
		return 0, types.NewError(types.EncodeError, "encode", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, types.NewError(types.IoError, "create", path, err)
	}
	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return int64(n), types.NewError(types.IoError, "write", path, err)
	}
	if err := f.Close(); err != nil {
		return int64(n), types.NewError(types.IoError, "close", path, err)
	}
	return int64(n), nil
}

// CompressionLevel parses a PNG compression level name
func CompressionLevel(name string) (png.CompressionLevel, error) {
	switch name {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return png.DefaultCompression, fmt.Errorf("unknown png compression level %q (use default|none|speed|best)", name)
	}
}
