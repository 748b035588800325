package unscale

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUnscaler() *Unscaler {
	return New(log.New(io.Discard, "", 0))
}

func TestAnalyze(t *testing.T) {
	anim := &Animation{
		Frames: []*Frame{expand(speckled(3, 2), 4)},
	}

	res := newTestUnscaler().Analyze(anim)

	assert.Equal(t, Result{Factor: 4, Width: 3, Height: 2}, res)
}

func TestProcessReducesEveryFrame(t *testing.T) {
	anim := &Animation{
		Frames: []*Frame{
			expand(speckled(2, 2), 2),
			expand(solid(2, 2, speckled(1, 1).Pix.NRGBAAt(0, 0)), 2),
		},
		LoopCount: 3,
	}
	anim.Frames[0].Delay = 10
	anim.Frames[1].Delay = 20

	reduced, res := newTestUnscaler().Process(anim)

	require.Equal(t, 2, res.Factor)
	require.Len(t, reduced.Frames, 2)
	assert.Equal(t, 3, reduced.LoopCount)
	for i, f := range reduced.Frames {
		assert.Equal(t, 2, f.Width())
		assert.Equal(t, 2, f.Height())
		assert.Equal(t, anim.Frames[i].Delay, f.Delay)
	}
}

func TestProcessFirstFrameOnly(t *testing.T) {
	// First frame is uniform at 3, the second only at 1. Analyzing the
	// whole animation keeps everything unchanged; analyzing just the
	// first frame reduces both by 3, corner-sampling the second.
	newAnim := func() *Animation {
		return &Animation{
			Frames: []*Frame{
				expand(speckled(2, 2), 3),
				speckled(6, 6),
			},
		}
	}

	u := newTestUnscaler()
	reduced, res := u.Process(newAnim())
	require.Equal(t, 1, res.Factor)
	assert.Equal(t, 6, reduced.Frames[1].Width())

	u.FirstFrameOnly = true
	reduced, res = u.Process(newAnim())
	require.Equal(t, 3, res.Factor)
	require.Len(t, reduced.Frames, 2)
	for _, f := range reduced.Frames {
		assert.Equal(t, 2, f.Width())
		assert.Equal(t, 2, f.Height())
	}
	assert.Equal(t, newAnim().Frames[1].Pix.NRGBAAt(3, 3), reduced.Frames[1].Pix.NRGBAAt(1, 1))
}
