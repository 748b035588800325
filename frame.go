package unscale

import "image"

// Frame is one still image within a (possibly single-frame) animation.
// Pixels are stored as non-premultiplied RGBA so that two pixels compare
// equal exactly when all four channels match; no tolerance is applied.
//
// A Frame is treated as read-only once constructed. Detection and
// reduction never mutate pixel data.
type Frame struct {
	Pix *image.NRGBA

	// Delay is the display time in 100ths of a second. Zero for still
	// images. The core does not interpret it beyond passing it through.
	Delay int

	// Left, Top is the frame's offset on the animation canvas.
	Left, Top int
}

func (f *Frame) Width() int {
	return f.Pix.Bounds().Dx()
}

func (f *Frame) Height() int {
	return f.Pix.Bounds().Dy()
}

// Animation is an ordered, non-empty sequence of frames sharing the same
// dimensions.
type Animation struct {
	Frames []*Frame

	// LoopCount follows the image/gif convention: 0 loops forever, -1
	// shows the animation once, n loops n+1 times.
	LoopCount int
}

func (a *Animation) Width() int {
	return a.Frames[0].Width()
}

func (a *Animation) Height() int {
	return a.Frames[0].Height()
}
