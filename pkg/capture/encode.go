// Package capture turns camera frames and image files into the base64 JPEG
// payload the recognition endpoint expects.
package capture

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"

	"golang.org/x/image/draw"

	// Decoders registered for FromReader.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxSide = 1600
	DefaultQuality = 80
)

// Options controls the encoded output. Zero values select the defaults.
type Options struct {
	MaxSide int
	Quality int
}

func (o Options) withDefaults() Options {
	if o.MaxSide <= 0 {
		o.MaxSide = DefaultMaxSide
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	return o
}

// ErrUnsupportedImage is returned when a file is not in a known image format.
var ErrUnsupportedImage = errors.New("unsupported image format")

// Encode renders img onto an RGBA raster, scaled so that its longest side is at
// most opts.MaxSide, and returns it as base64 JPEG.
func Encode(img image.Image, opts Options) (string, error) {
	opts = opts.withDefaults()

	b := img.Bounds()
	if b.Empty() {
		return "", fmt.Errorf("encode: empty image")
	}

	w, h := fit(b.Dx(), b.Dy(), opts.MaxSide)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return "", fmt.Errorf("encode: jpeg: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// fit scales w x h down to fit in a limit x limit box, keeping the aspect ratio.
func fit(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, scaleSide(h, limit, w)
	}
	return scaleSide(w, limit, h), limit
}

func scaleSide(side, num, den int) int {
	v := (side*num + den/2) / den
	if v < 1 {
		return 1
	}
	return v
}

// FromReader decodes a JPEG, PNG, GIF, WebP or BMP image and re-encodes it.
func FromReader(r io.Reader, opts Options) (string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return "", ErrUnsupportedImage
		}
		return "", fmt.Errorf("decode image: %w", err)
	}
	out, err := Encode(img, opts)
	if err != nil {
		return "", fmt.Errorf("%s: %w", format, err)
	}
	return out, nil
}

// FromFile reads the image at path and re-encodes it.
func FromFile(path string, opts Options) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	return FromReader(f, opts)
}
