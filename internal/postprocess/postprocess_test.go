package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleKeepsOpaqueColor(t *testing.T) {
	red := color.NRGBA{R: 200, A: 255}
	out := Downsample(filled(64, 64, red), 16, 16)
	assert.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())
	c := out.NRGBAAt(8, 8)
	assert.InDelta(t, 200, int(c.R), 1)
	assert.Equal(t, uint8(0), c.G)
	assert.InDelta(t, 255, int(c.A), 1)
}

func TestDownsampleNoHaloOnTransparentEdge(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
		}
	}
	out := Downsample(img, 16, 16)
	for x := 0; x < 16; x++ {
		c := out.NRGBAAt(x, 8)
		if c.A > 8 {
			assert.Greater(t, c.R, uint8(200), "x=%d", x)
		}
	}
}

func TestDownsampleSmallInputUnchanged(t *testing.T) {
	img := filled(8, 8, color.NRGBA{A: 255})
	assert.Same(t, img, Downsample(img, 16, 16))
}

func TestAlphaBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	assert.True(t, AlphaBounds(img).Empty())

	img.SetNRGBA(2, 3, color.NRGBA{A: 1})
	img.SetNRGBA(6, 8, color.NRGBA{A: 255})
	assert.Equal(t, image.Rect(2, 3, 7, 9), AlphaBounds(img))
}

func TestSheetLayout(t *testing.T) {
	a := filled(4, 4, color.NRGBA{R: 255, A: 255})
	b := filled(2, 2, color.NRGBA{G: 255, A: 255})
	sheet := Sheet([]*image.NRGBA{a, b, a}, 2, 1)

	assert.Equal(t, image.Rect(0, 0, 9, 9), sheet.Bounds())
	assert.Equal(t, uint8(255), sheet.NRGBAAt(0, 0).R)
	// b is centered in the second cell
	assert.Equal(t, uint8(0), sheet.NRGBAAt(5, 0).A)
	assert.Equal(t, uint8(255), sheet.NRGBAAt(6, 1).G)
	assert.Equal(t, uint8(255), sheet.NRGBAAt(0, 5).R)

	assert.True(t, Sheet(nil, 3, 1).Bounds().Empty())
}
