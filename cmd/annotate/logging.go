package main

import (
	"os"

	"github.com/swdee/go-annotate/log"
	"github.com/urfave/cli"
)

var logger = log.New("annotate")

// setupLogging applies ANNOTATE_LOG_LEVEL first, then the -v and -vv flags
func setupLogging(ctx *cli.Context) {
	if level := os.Getenv("ANNOTATE_LOG_LEVEL"); level != "" {
		log.SetLevel(log.ParseLevel(level))
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
