package unscale

// Analyze runs detection over the animation and returns the chosen factor
// together with the native output dimensions, without producing any pixel
// data. With FirstFrameOnly set, only the first frame is fed to the
// detector.
func (u *Unscaler) Analyze(anim *Animation) Result {
	frames := anim.Frames
	if u.FirstFrameOnly && len(frames) > 1 {
		frames = frames[:1]
	}

	k := Detect(frames)
	u.logger.Printf("analyzed %d of %d frame(s), factor %d\n", len(frames), len(anim.Frames), k)

	return Result{
		Factor: k,
		Width:  anim.Width() / k,
		Height: anim.Height() / k,
	}
}

// Process analyzes the animation and reduces every frame by the single
// detected factor. All frames are reduced even when only the first was
// analyzed. The input animation is left untouched.
func (u *Unscaler) Process(anim *Animation) (*Animation, Result) {
	res := u.Analyze(anim)

	out := &Animation{
		Frames:    make([]*Frame, 0, len(anim.Frames)),
		LoopCount: anim.LoopCount,
	}
	for _, f := range anim.Frames {
		out.Frames = append(out.Frames, Reduce(f, res.Factor))
	}

	return out, res
}
