package main

import (
	"os"

	"github.com/sgorgun/gcd-version-2/internal/log"
	"github.com/urfave/cli"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gcd"
	app.Version = version
	app.Usage = "Computes the greatest common divisor of int32 values"
	app.HelpName = "gcd"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "level, l",
			Usage:  `Log level (none|error|warn|info|debug)`,
			EnvVar: "GCD_LOG_LEVEL",
			Value:  "info",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: `Show debug messages`,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Suppress information messages`,
		},
		cli.BoolFlag{
			Name:  "silent, Q",
			Usage: `Do not output any messages`,
		},
	}

	app.Commands = []cli.Command{
		euclidCmd,
		steinCmd,
		extCmd,
		compareCmd,
	}

	app.Before = func(ctx *cli.Context) error {
		level, err := log.ParseLevel(ctx.String("level"))
		if err != nil {
			return err
		}
		if ctx.Bool("debug") {
			level = log.LogLevel_Debug
		} else if ctx.Bool("silent") {
			level = log.LogLevel_None
		} else if ctx.Bool("quiet") {
			level = log.LogLevel_Warn
		}
		log.Level = level
		return nil
	}

	app.Action = func(ctx *cli.Context) error {
		return cli.ShowAppHelp(ctx)
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
