// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imaging probes and optionally downsamples the pictures embedded in
// generated documents.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
)

// EMUPerInch is the number of OOXML English Metric Units in one inch.
const EMUPerInch = 914400

// jpegQuality is used when a downsampled JPEG is re-encoded.
const jpegQuality = 90

// Info holds the pixel size and decoder name of an image.
type Info struct {
	Width  int
	Height int
	// Format is the registered decoder name: png, jpeg, gif, or bmp.
	Format string
}

// Probe reads the header of data and returns its dimensions. Files that do
// not decode as one of the supported formats produce an error.
func Probe(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, fmt.Errorf("image has empty dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Extent returns the display size in EMU for a picture shown widthInches
// wide. The height keeps the pixel aspect ratio.
func Extent(info Info, widthInches float64) (cx, cy int64) {
	cx = int64(widthInches * EMUPerInch)
	cy = cx * int64(info.Height) / int64(info.Width)
	return cx, cy
}

// Downsample shrinks images wider than maxWidth pixels with Lanczos3,
// keeping the aspect ratio. JPEG input stays JPEG; every other format is
// re-encoded as PNG. When no resize is needed data is returned unchanged.
func Downsample(data []byte, info Info, maxWidth int) ([]byte, Info, error) {
	if maxWidth <= 0 || info.Width <= maxWidth {
		return data, info, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, Info{}, fmt.Errorf("decoding image: %w", err)
	}

	resized := resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)
	b := resized.Bounds()
	out := Info{Width: b.Dx(), Height: b.Dy()}

	var buf bytes.Buffer
	if info.Format == "jpeg" {
		out.Format = "jpeg"
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality})
	} else {
		out.Format = "png"
		err = png.Encode(&buf, resized)
	}
	if err != nil {
		return nil, Info{}, fmt.Errorf("encoding resized image: %w", err)
	}
	return buf.Bytes(), out, nil
}

// ToPNG re-encodes data as PNG for consumers that cannot read BMP input.
func ToPNG(data []byte) ([]byte, error) {
	// Animated GIFs decode to their first frame.
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension used when storing an image of the
// given format inside a package.
func Extension(format string) string {
	switch format {
	case "jpeg":
		return ".jpeg"
	case "gif":
		return ".gif"
	default:
		return ".png"
	}
}

// ContentType returns the MIME type of a stored image extension.
func ContentType(ext string) string {
	switch ext {
	case ".jpeg", ".jpg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
