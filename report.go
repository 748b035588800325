package unscale

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Report is a machine-readable summary of an analysis, for external tools
// that want the detected geometry without the pixel data.
type Report struct {
	Input        string `yaml:"input"`
	Frames       int    `yaml:"frames"`
	Factor       int    `yaml:"factor"`
	SourceWidth  int    `yaml:"source_width"`
	SourceHeight int    `yaml:"source_height"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
}

// NewReport builds a report for an analyzed animation.
func NewReport(input string, anim *Animation, res Result) Report {
	return Report{
		Input:        input,
		Frames:       len(anim.Frames),
		Factor:       res.Factor,
		SourceWidth:  anim.Width(),
		SourceHeight: anim.Height(),
		Width:        res.Width,
		Height:       res.Height,
	}
}

// WriteTo marshals the report as YAML.
func (r Report) WriteTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
