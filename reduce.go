package unscale

import "image"

// Reduce collapses frame to its native resolution for a known factor k,
// producing a frame of W/k by H/k pixels. Each output pixel is exactly
// the source pixel at the top-left corner of its block; no blending or
// interpolation takes place, so for a frame that detection established as
// uniform at k the reduction is lossless.
//
// A frame that was excluded from detection (first-frame-only mode) is
// reduced with the same corner-sample policy even though its blocks may
// not be uniform.
//
// k must divide both dimensions; anything else is a programming error and
// panics. k == 1 returns the frame unchanged.
func Reduce(f *Frame, k int) *Frame {
	if k < 1 || f.Width()%k != 0 || f.Height()%k != 0 {
		panic("unscale: Reduce called with a factor that does not divide the frame")
	}
	if k == 1 {
		return f
	}

	w, h := f.Width()/k, f.Height()/k
	src := f.Pix
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		do := dst.PixOffset(0, y)
		for x := 0; x < w; x++ {
			so := src.PixOffset(x*k+src.Rect.Min.X, y*k+src.Rect.Min.Y)
			copy(dst.Pix[do:do+4], src.Pix[so:so+4])
			do += 4
		}
	}

	return &Frame{
		Pix:   dst,
		Delay: f.Delay,
		Left:  f.Left / k,
		Top:   f.Top / k,
	}
}
