package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/swdee/go-annotate/render"
	"github.com/urfave/cli"
)

// loadEnv loads environment variables from the given file, or from .env in
// the working directory when file is empty.  Variables already set in the
// process environment take precedence.
func loadEnv(file string) {
	var files []string

	if file != "" {
		files = append(files, file)
	}

	if err := godotenv.Load(files...); err != nil {
		if file != "" {
			logger.Warningf("Error loading env file %s: %v", file, err)
		}
	}
}

// styleFlags are the flags shared by every command that draws
func styleFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "style",
			Usage:  "JSON file overriding the default drawing style",
			EnvVar: "ANNOTATE_STYLE",
		},
		cli.StringFlag{
			Name:  "triangulation, t",
			Usage: "JSON face mesh triangulation table",
		},
		cli.StringFlag{
			Name:   "font, f",
			Usage:  "TrueType or OpenType font file used for labels",
			EnvVar: "ANNOTATE_FONT",
		},
		cli.BoolFlag{
			Name:  "buffered",
			Usage: "smooth bodies and hands across frames",
		},
		cli.Float64Flag{
			Name:  "factor",
			Value: 2,
			Usage: "convergence factor of the smoothing, 1 follows each frame exactly",
		},
	}
}

// loadStyle builds the drawing style from the default style, the style file
// and the command line flags, in that order of precedence
func loadStyle(ctx *cli.Context) (render.Style, error) {

	style := render.DefaultStyle()

	if file := ctx.String("style"); file != "" {
		o, err := render.LoadOverride(file)

		if err != nil {
			return style, err
		}

		style = style.With(o)
	}

	if file := ctx.String("triangulation"); file != "" {
		tri, err := render.LoadTriangulation(file)

		if err != nil {
			return style, err
		}

		style.Triangulation = tri
	}

	if ctx.Bool("buffered") {
		style.BufferedOutput = true
	}

	if ctx.IsSet("factor") {
		style.BufferedFactor = ctx.Float64("factor")
	}

	return style, nil
}

// outputName returns the file name for frame i of n.  A single frame uses
// out as is, otherwise out is used as a printf pattern when it holds a verb
// or the frame number is inserted before the extension.
func outputName(out string, i, n int) string {

	if n <= 1 {
		return out
	}

	if containsVerb(out) {
		return fmt.Sprintf(out, i)
	}

	ext := filepath.Ext(out)

	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(out, ext), i, ext)
}

// containsVerb reports whether s holds a printf integer verb
func containsVerb(s string) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '%' {
			continue
		}

		if s[i+1] == '%' {
			i++
			continue
		}

		for j := i + 1; j < len(s); j++ {
			c := s[j]

			if c == 'd' {
				return true
			}

			if c < '0' || c > '9' {
				break
			}
		}
	}

	return false
}
