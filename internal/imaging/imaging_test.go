// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encode(t *testing.T, format string, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	}
	require.NoError(t, err)
	return buf.Bytes()
}

func TestProbe(t *testing.T) {
	for _, format := range []string{"png", "jpeg", "gif", "bmp"} {
		t.Run(format, func(t *testing.T) {
			info, err := Probe(encode(t, format, testImage(40, 20)))
			require.NoError(t, err)
			assert.Equal(t, Info{Width: 40, Height: 20, Format: format}, info)
		})
	}
}

func TestProbe_NotAnImage(t *testing.T) {
	_, err := Probe([]byte("this is a text file renamed to .png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding image header")
}

func TestExtent(t *testing.T) {
	cx, cy := Extent(Info{Width: 1000, Height: 500}, 5)
	assert.Equal(t, int64(4572000), cx)
	assert.Equal(t, int64(2286000), cy)

	cx, cy = Extent(Info{Width: 300, Height: 900}, 5)
	assert.Equal(t, int64(4572000), cx)
	assert.Equal(t, int64(13716000), cy)
}

func TestDownsample(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		maxWidth   int
		wantWidth  int
		wantFormat string
		unchanged  bool
	}{
		{name: "disabled", format: "png", maxWidth: 0, wantWidth: 200, wantFormat: "png", unchanged: true},
		{name: "narrower than limit", format: "png", maxWidth: 400, wantWidth: 200, wantFormat: "png", unchanged: true},
		{name: "png shrinks", format: "png", maxWidth: 50, wantWidth: 50, wantFormat: "png"},
		{name: "jpeg stays jpeg", format: "jpeg", maxWidth: 50, wantWidth: 50, wantFormat: "jpeg"},
		{name: "bmp becomes png", format: "bmp", maxWidth: 50, wantWidth: 50, wantFormat: "png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encode(t, tt.format, testImage(200, 100))
			info, err := Probe(data)
			require.NoError(t, err)

			out, outInfo, err := Downsample(data, info, tt.maxWidth)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWidth, outInfo.Width)
			assert.Equal(t, tt.wantWidth/2, outInfo.Height)
			assert.Equal(t, tt.wantFormat, outInfo.Format)
			if tt.unchanged {
				assert.Equal(t, data, out)
				return
			}
			probed, err := Probe(out)
			require.NoError(t, err)
			assert.Equal(t, outInfo, probed)
		})
	}
}

func TestToPNG(t *testing.T) {
	out, err := ToPNG(encode(t, "bmp", testImage(10, 10)))
	require.NoError(t, err)

	info, err := Probe(out)
	require.NoError(t, err)
	assert.Equal(t, "png", info.Format)
}

func TestExtensionAndContentType(t *testing.T) {
	assert.Equal(t, ".jpeg", Extension("jpeg"))
	assert.Equal(t, ".png", Extension("png"))
	assert.Equal(t, ".gif", Extension("gif"))
	assert.Equal(t, "image/jpeg", ContentType(".jpg"))
	assert.Equal(t, "image/gif", ContentType(".gif"))
	assert.Equal(t, "image/png", ContentType(".png"))
}
