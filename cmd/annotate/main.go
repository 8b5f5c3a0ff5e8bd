package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	loadEnv(os.Getenv("ANNOTATE_ENV_FILE"))

	app := cli.NewApp()
	app.Name = "annotate"
	app.Usage = "draw face, body, hand, object and gesture detection results"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render result files to PNG images",
			Description: `
Decode one or more JSON detection results and draw them onto a blank surface
or a background image.  Several result files are drawn in order through a
single interpolation buffer so --buffered output shows the smoothed state of
each frame.`,
			ArgsUsage: "result1.json result2.json ...",
			Flags: append(styleFlags(),
				cli.StringFlag{
					Name:  "image, i",
					Usage: "background image the annotations are drawn onto",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "annotated.png",
					Usage: "output PNG file, numbered per frame when rendering several results",
				},
				cli.StringFlag{
					Name:  "labels, l",
					Usage: "text file with one object class label per line",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "surface width when no background image is given",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 480,
					Usage: "surface height when no background image is given",
				},
				cli.StringFlag{
					Name:  "backend, b",
					Value: backendRaster,
					Usage: "drawing backend [raster|gg|opencv]",
				},
			),
			Action: RenderResults,
		},
		{
			Name:  "serve",
			Usage: "stream annotated frames over a websocket",
			Description: `
Start an HTTP server with a websocket endpoint at /stream.  Every text message
a client sends must hold one JSON detection result, the server replies with a
binary message holding the annotated frame as PNG.  Each connection keeps its
own interpolation buffer.`,
			Flags: append(styleFlags(),
				cli.StringFlag{
					Name:   "listen, a",
					Value:  "localhost:8080",
					Usage:  "HTTP address to listen on, format address:port",
					EnvVar: "ANNOTATE_LISTEN",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 640,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 480,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "pool, s",
					Value: 4,
					Usage: "number of pooled drawing surfaces",
				},
			),
			Action: Serve,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
