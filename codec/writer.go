package codec

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/unscale/unscale"
)

const maxPaletteColors = 256

// Encode writes the animation to w in the given format. Still formats
// take only the first frame; callers that care warn the user before
// getting here. GIF output keeps per-frame delays and the loop count.
func Encode(w io.Writer, anim *unscale.Animation, f Format) error {
	switch f {
	case FormatGIF:
		return encodeGIF(w, anim)
	case FormatPNG:
		return png.Encode(w, anim.Frames[0].Pix)
	case FormatJPEG:
		return jpeg.Encode(w, anim.Frames[0].Pix, nil)
	}
	return ErrUnsupportedEncode
}

func encodeGIF(w io.Writer, anim *unscale.Animation) error {
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(anim.Frames)),
		Delay:     make([]int, 0, len(anim.Frames)),
		Disposal:  make([]byte, 0, len(anim.Frames)),
		LoopCount: anim.LoopCount,
	}

	for _, f := range anim.Frames {
		out.Image = append(out.Image, palettize(f.Pix))
		out.Delay = append(out.Delay, f.Delay)
		// Frames were coalesced on decode, so each one fully replaces
		// the previous.
		out.Disposal = append(out.Disposal, gif.DisposalNone)
	}

	return gif.EncodeAll(w, out)
}

// palettize converts a frame to a paletted image, quantizing down to 256
// colors only when the frame has more than that. Pixel art reduced to
// native resolution usually fits its palette with room to spare, and an
// exact palette keeps the round trip lossless.
func palettize(m *image.NRGBA) *image.Paletted {
	p, ok := exactPalette(m)
	if !ok {
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		p = q.Quantize(make(color.Palette, 0, maxPaletteColors), m)
	}

	pm := image.NewPaletted(m.Rect, p)
	draw.Draw(pm, m.Rect, m, m.Rect.Min, draw.Src)
	return pm
}

// exactPalette collects the distinct colors of m, giving up once there
// are more than will fit in a GIF palette.
func exactPalette(m *image.NRGBA) (color.Palette, bool) {
	seen := make(map[color.NRGBA]struct{})
	p := make(color.Palette, 0, maxPaletteColors)

	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.NRGBAAt(x, y)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == maxPaletteColors {
				return nil, false
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}

	return p, true
}
