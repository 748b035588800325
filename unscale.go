/*
Package unscale recovers the native resolution of pixel art that has been
upscaled with nearest-neighbor replication.

An upscaled image is a grid of k by k blocks where every pixel in a block
carries the same color. Detection scans candidate factors from the largest
possible downward and accepts the first factor at which every frame is
made of uniform blocks; reduction then collapses each block back to a
single pixel. Factor 1 means the image is already at native resolution
and is a valid outcome, not a failure.
*/
package unscale

import "log"

// Unscaler ties detection and reduction together for a whole animation.
type Unscaler struct {
	logger *log.Logger

	// FirstFrameOnly restricts detection to the first frame of an
	// animation. Much faster on long animations, but if the first frame
	// happens to be uniform at a larger factor than the rest (a blank
	// title card, say) the remaining frames are reduced by that factor
	// regardless.
	FirstFrameOnly bool
}

func New(logger *log.Logger) *Unscaler {
	return &Unscaler{
		logger: logger,
	}
}
