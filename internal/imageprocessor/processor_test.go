package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestThumbnail_ScalesDownPreservingRatio(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Thumbnail(encodePNG(t, 1280, 640))
	require.NoError(t, err)

	decoded, format, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 320, decoded.Bounds().Dx())
	assert.Equal(t, 160, decoded.Bounds().Dy())
}

func TestThumbnail_SmallImageKeepsSize(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Thumbnail(encodePNG(t, 100, 80))
	require.NoError(t, err)

	decoded, _, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

func TestThumbnail_RejectsGarbage(t *testing.T) {
	p := NewProcessor(85)
	_, err := p.Thumbnail(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestCanProcess(t *testing.T) {
	assert.True(t, CanProcess("image/jpeg"))
	assert.True(t, CanProcess("image/png"))
	assert.False(t, CanProcess("image/gif"))
	assert.False(t, CanProcess("application/pdf"))
}
