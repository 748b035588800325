package codec

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"

	"github.com/unscale/unscale"
)

// Decode reads an image or animation from r and returns it as an
// animation, along with the detected container format. Still formats
// yield a single-frame animation. Animated GIFs are coalesced so that
// every frame has the canvas dimensions.
func Decode(r io.Reader) (*unscale.Animation, Format, error) {
	br := bufio.NewReader(r)

	if isGIF(br) {
		anim, err := decodeGIF(br)
		return anim, FormatGIF, err
	}

	m, name, err := image.Decode(br)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}

	anim := &unscale.Animation{
		Frames:    []*unscale.Frame{{Pix: toNRGBA(m)}},
		LoopCount: -1,
	}
	return anim, Format(name), nil
}

// DecodeConfig returns the canvas dimensions and container format
// without decoding pixel data.
func DecodeConfig(r io.Reader) (int, int, Format, error) {
	cfg, name, err := image.DecodeConfig(bufio.NewReader(r))
	if err != nil {
		return 0, 0, "", fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	return cfg.Width, cfg.Height, Format(name), nil
}

func isGIF(br *bufio.Reader) bool {
	magic, err := br.Peek(6)
	if err != nil {
		return false
	}
	return string(magic) == "GIF87a" || string(magic) == "GIF89a"
}

// decodeGIF reads every frame of a GIF and replays disposal onto a
// shared canvas. GIF frames may cover only the region that changed;
// the detector needs each frame at full canvas size.
func decodeGIF(r io.Reader) (*unscale.Animation, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}

	anim := &unscale.Animation{
		Frames:    make([]*unscale.Frame, 0, len(g.Image)),
		LoopCount: g.LoopCount,
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, src := range g.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var saved *image.NRGBA
		if disposal == gif.DisposalPrevious {
			saved = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)

		frame := &unscale.Frame{Pix: cloneNRGBA(canvas)}
		if i < len(g.Delay) {
			frame.Delay = g.Delay[i]
		}
		anim.Frames = append(anim.Frames, frame)

		switch disposal {
		case gif.DisposalBackground:
			clearRect(canvas, src.Bounds())
		case gif.DisposalPrevious:
			canvas = saved
		}
	}

	return anim, nil
}

func toNRGBA(m image.Image) *image.NRGBA {
	if n, ok := m.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, m, b.Min, draw.Src)
	return dst
}

func cloneNRGBA(m *image.NRGBA) *image.NRGBA {
	dup := image.NewNRGBA(m.Rect)
	copy(dup.Pix, m.Pix)
	return dup
}

func clearRect(m *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(m.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		o := m.PixOffset(r.Min.X, y)
		clear(m.Pix[o : o+r.Dx()*4])
	}
}
