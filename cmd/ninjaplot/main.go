package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rodrigo-brito/ninjaplot/tools/log"
)

func newApp() *cli.App {
	return &cli.App{
		Name:     "ninjaplot",
		HelpName: "ninjaplot",
		Usage:    "Candlestick charts with gnuplot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "ninjaplot.yml",
				Usage:   "configuration file, ignored when missing",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logs",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			plotCommand(),
			downloadCommand(),
			inspectCommand(),
			historyCommand(),
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
