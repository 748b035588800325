package unscale

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result describes the outcome of a detection pass.
type Result struct {
	// Factor is the largest integer by which every analyzed frame was
	// uniformly upscaled. Always at least 1.
	Factor int

	// Width, Height are the native dimensions after dividing by Factor.
	Width, Height int
}

var errNotUniform = errors.New("unscale: frame not uniform at candidate factor")

// Detect returns the largest factor k such that every frame consists
// entirely of k by k single-color blocks on a k-aligned lattice. Factor 1
// is returned when no larger factor fits; this is a valid result, never
// an error.
//
// Candidates run from min(W, H) down to 2, skipping any that do not
// divide both dimensions. An image upscaled by factor n is trivially
// uniform at every divisor of n, so scanning downward and accepting the
// first hit yields the true factor rather than a spurious divisor.
//
// All frames must share the same dimensions and frames must be
// non-empty; violating either is a programming error and panics.
func Detect(frames []*Frame) int {
	if len(frames) == 0 {
		panic("unscale: Detect called with no frames")
	}
	w, h := frames[0].Width(), frames[0].Height()
	for _, f := range frames[1:] {
		if f.Width() != w || f.Height() != h {
			panic("unscale: Detect called with mismatched frame sizes")
		}
	}

	max := w
	if h < w {
		max = h
	}

	for k := max; k > 1; k-- {
		if w%k != 0 || h%k != 0 {
			continue
		}
		if uniformAll(frames, k) {
			return k
		}
	}

	return 1
}

// uniformAll reports whether every frame is uniform at k. Frames are
// independent, so they are checked concurrently; the first failure
// cancels the rest. The result is identical to checking them in order.
func uniformAll(frames []*Frame, k int) bool {
	if len(frames) == 1 {
		return uniform(context.Background(), frames[0], k)
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, f := range frames {
		f := f
		g.Go(func() error {
			if !uniform(ctx, f, k) {
				return errNotUniform
			}
			return nil
		})
	}
	return g.Wait() == nil
}

// uniform reports whether every k-aligned k by k block of the frame is a
// single color. It stops at the first block that is not, or once ctx is
// cancelled because a sibling frame already failed.
func uniform(ctx context.Context, f *Frame, k int) bool {
	bw, bh := f.Width()/k, f.Height()/k
	for by := 0; by < bh; by++ {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		for bx := 0; bx < bw; bx++ {
			if !uniformBlock(f, bx*k, by*k, k) {
				return false
			}
		}
	}
	return true
}

// uniformBlock reports whether the k by k block with top-left corner at
// (x0, y0) holds a single color. Comparison is exact across all four
// channels, alpha included.
func uniformBlock(f *Frame, x0, y0, k int) bool {
	m := f.Pix
	o := m.PixOffset(x0+m.Rect.Min.X, y0+m.Rect.Min.Y)
	r, g, b, a := m.Pix[o], m.Pix[o+1], m.Pix[o+2], m.Pix[o+3]

	for y := 0; y < k; y++ {
		row := m.PixOffset(x0+m.Rect.Min.X, y0+y+m.Rect.Min.Y)
		for x := 0; x < k; x++ {
			p := row + x*4
			if m.Pix[p] != r || m.Pix[p+1] != g || m.Pix[p+2] != b || m.Pix[p+3] != a {
				return false
			}
		}
	}
	return true
}
