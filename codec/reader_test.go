package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	green = color.RGBA{0, 0xff, 0, 0xff}
)

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{uint8(x * 60), uint8(y * 100), 0x40, 0xff})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	anim, format, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, FormatPNG, format)
	require.Len(t, anim.Frames, 1)
	assert.Equal(t, src.Pix, anim.Frames[0].Pix.Pix)
}

func TestDecodeGIFCoalesce(t *testing.T) {
	palette := color.Palette{red, green}

	// First frame covers the canvas, the second only its bottom-right
	// quadrant. The decoder must replay the second frame over the first
	// so both come out at canvas size.
	first := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
	second := image.NewPaletted(image.Rect(2, 2, 4, 4), palette)
	for i := range second.Pix {
		second.Pix[i] = 1
	}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, &gif.GIF{
		Image:     []*image.Paletted{first, second},
		Delay:     []int{5, 10},
		Disposal:  []byte{gif.DisposalNone, gif.DisposalNone},
		LoopCount: 2,
	}))

	anim, format, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, FormatGIF, format)
	assert.Equal(t, 2, anim.LoopCount)
	require.Len(t, anim.Frames, 2)

	for _, f := range anim.Frames {
		assert.Equal(t, 4, f.Width())
		assert.Equal(t, 4, f.Height())
	}
	assert.Equal(t, 5, anim.Frames[0].Delay)
	assert.Equal(t, 10, anim.Frames[1].Delay)

	coalesced := anim.Frames[1].Pix
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, coalesced.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, coalesced.NRGBAAt(3, 1))
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, coalesced.NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, coalesced.NRGBAAt(3, 3))
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeConfig(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	w, h, format, err := DecodeConfig(&buf)
	require.NoError(t, err)

	assert.Equal(t, 6, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, FormatPNG, format)
}
