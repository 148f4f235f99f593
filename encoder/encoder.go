// Package encoder writes rasterized mazes to image files.
package encoder

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an image file format.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"

	maxScale = 64
	// maxEncodedArea bounds the pixel area of a scaled image.
	maxEncodedArea = 1 << 26
)

var (
	ErrUnknownFormat = errors.New("unknown image format")
	ErrInvalidScale  = errors.New("invalid image scale")
	ErrImageTooLarge = errors.New("image too large")
)

// ParseFormat resolves a format name, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case PNG, BMP, TIFF:
		return f, nil
	case "tif":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension of f, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	return "image/" + string(f)
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithScale enlarges every pixel to a scale x scale block.
func WithScale(scale int) Option {
	return func(e *Encoder) {
		e.scale = scale
	}
}

// Encoder writes images in one format.
type Encoder struct {
	format Format
	scale  int
}

// New creates an encoder for format.
func New(format Format, opts ...Option) (*Encoder, error) {
	e := &Encoder{format: format, scale: 1}
	for _, opt := range opts {
		opt(e)
	}

	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if e.scale < 1 || e.scale > maxScale {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, e.scale)
	}
	return e, nil
}

// Format returns the format the encoder writes.
func (e *Encoder) Format() Format {
	return e.format
}

// CheckSize reports whether a width x height image stays within the encoder's
// area limit once scaled.
func (e *Encoder) CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrImageTooLarge, width, height)
	}
	w, h := width*e.scale, height*e.scale
	if w > maxEncodedArea/h {
		return fmt.Errorf("%w: %dx%d pixels at scale %d", ErrImageTooLarge, width, height, e.scale)
	}
	return nil
}

// Encode writes img to w.
func (e *Encoder) Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if err := e.CheckSize(b.Dx(), b.Dy()); err != nil {
		return err
	}
	img = e.scaled(img)
	switch e.format {
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// Save writes img to dir/name.<ext>, creating dir when needed, and returns the file path.
func (e *Encoder) Save(dir, name string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+"."+e.format.Ext())
	f, err := os.Create(path) //nolint:gosec // output directory is operator supplied
	if err != nil {
		return "", err
	}

	if err := e.Encode(f, img); err != nil {
		_ = f.Close()
		return "", err
	}
	return path, f.Close()
}

// scaled returns img enlarged by the encoder's scale with nearest-neighbour sampling,
// which keeps walls crisp.
func (e *Encoder) scaled(img image.Image) image.Image {
	if e.scale == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*e.scale, b.Dy()*e.scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
