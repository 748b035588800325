package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/unscale/unscale"
	"github.com/unscale/unscale/codec"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "unscale"
	app.Usage = "Recover the native resolution of upscaled pixel art"
	app.ArgsUsage = "INPUT [OUTPUT]"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "in-place",
			Aliases: []string{"i"},
			Usage:   "overwrite the input file, ignored when OUTPUT is given",
		},
		&cli.BoolFlag{
			Name:    "first-frame",
			Aliases: []string{"f"},
			Usage:   "only analyze the first frame of an animation",
		},
		&cli.BoolFlag{
			Name:    "analyze",
			Aliases: []string{"a"},
			Usage:   "print the detected dimensions without writing an image",
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: "write a YAML analysis report to `PATH`",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowAppHelpAndExit(c, 1)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	input := c.Args().Get(0)

	in, err := os.Open(input)
	if err != nil {
		return cli.Exit(err, 1)
	}
	anim, format, err := codec.Decode(in)
	in.Close()
	if err != nil {
		return cli.Exit(err, 1)
	}

	u := unscale.New(logger)
	u.FirstFrameOnly = c.Bool("first-frame")

	if c.Bool("analyze") {
		res := u.Analyze(anim)
		fmt.Printf("%d x %d -> %d x %d (factor %d)\n", anim.Width(), anim.Height(), res.Width, res.Height, res.Factor)
		return writeReport(c, input, anim, res)
	}

	reduced, res := u.Process(anim)
	if res.Factor == 1 {
		return cli.Exit("failed to detect pixel art scaling", 1)
	}
	fmt.Printf("resizing %d x %d -> %d x %d\n", anim.Width(), anim.Height(), res.Width, res.Height)

	output, outFormat, err := resolveOutput(c, input, format)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if len(reduced.Frames) > 1 && outFormat != codec.FormatGIF {
		fmt.Fprintf(os.Stderr, "animated %s images are not supported, writing still image instead\n", outFormat)
		reduced.Frames = reduced.Frames[:1]
	}

	out, err := os.Create(output)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := codec.Encode(out, reduced, outFormat); err != nil {
		out.Close()
		return cli.Exit(err, 1)
	}
	if err := out.Close(); err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Printf("written %s\n", output)

	return writeReport(c, input, anim, res)
}

// resolveOutput decides where the result goes and in which format. An
// explicit OUTPUT argument picks the format from its extension. Otherwise
// the input format is kept, falling back to PNG for formats without an
// encoder, and the file is named {basename}.scaled.{ext} unless
// --in-place is set.
func resolveOutput(c *cli.Context, input string, inFormat codec.Format) (string, codec.Format, error) {
	if c.NArg() > 1 {
		output := c.Args().Get(1)
		f, ok := codec.FormatForExtension(filepath.Ext(output))
		if !ok {
			f = inFormat
		}
		if !codec.CanEncode(f) {
			return "", "", fmt.Errorf("cannot encode %s output", f)
		}
		return output, f, nil
	}

	f := inFormat
	if !codec.CanEncode(f) {
		fmt.Fprintf(os.Stderr, "%s output is not supported, writing PNG instead\n", f)
		f = codec.FormatPNG
	}

	if c.Bool("in-place") && f == inFormat {
		return input, f, nil
	}

	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".scaled" + f.Extension(), f, nil
}

func writeReport(c *cli.Context, input string, anim *unscale.Animation, res unscale.Result) error {
	path := c.String("report")
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	if err := unscale.NewReport(input, anim, res).WriteTo(f); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}
