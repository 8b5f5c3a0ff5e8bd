package main

import (
	"errors"
	"image"

	annotate "github.com/swdee/go-annotate"
	"github.com/swdee/go-annotate/buffer"
	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/canvas/raster"
	"github.com/swdee/go-annotate/render"
	"github.com/swdee/go-annotate/result"
	"github.com/urfave/cli"
)

// frameOptions describe the surface each result is drawn on
type frameOptions struct {
	backend    string
	font       string
	background image.Image
	width      int
	height     int
}

// RenderResults draws every result file given as argument and writes one PNG
// per file
func RenderResults(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing result file argument")
	}

	style, err := loadStyle(ctx)

	if err != nil {
		return err
	}

	var labels []string

	if file := ctx.String("labels"); file != "" {
		if labels, err = result.LoadLabels(file); err != nil {
			return err
		}
	}

	opts := frameOptions{
		backend: ctx.String("backend"),
		font:    ctx.String("font"),
		width:   ctx.Int("width"),
		height:  ctx.Int("height"),
	}

	if file := ctx.String("image"); file != "" {
		if opts.background, err = loadImage(file); err != nil {
			return err
		}

		b := opts.background.Bounds()
		opts.width, opts.height = b.Dx(), b.Dy()
	}

	// one buffer carries the smoothed state from frame to frame
	buf := buffer.New()
	files := ctx.Args()

	for i, file := range files {
		res, err := result.Load(file)

		if err != nil {
			return err
		}

		res.ApplyLabels(labels)
		out := outputName(ctx.String("out"), i, len(files))

		if err := renderFrame(opts, res, buf, style, out); err != nil {
			return err
		}

		logger.Infof("Rendered %s to %s", file, out)
	}

	return nil
}

// renderFrame draws a single result onto a new surface and saves it
func renderFrame(opts frameOptions, res *result.Result, buf *buffer.Buffer,
	style render.Style, out string) error {

	t, err := newTarget(opts.backend, opts.width, opts.height)

	if err != nil {
		return err
	}

	defer closeTarget(t)

	if err := setFont(t, opts.font); err != nil {
		return err
	}

	if opts.background != nil {
		canvas.Copy(t, raster.FromImage(opts.background))
	}

	annotate.All(t, res, buf, style)

	return savePNG(t, out)
}
