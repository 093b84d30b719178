package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logrus.New()

	app := &cli.App{
		Name:  "ilistbench",
		Usage: "exercise the intrusive list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level",
				EnvVars: []string{"ILIST_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "log in JSON format",
				EnvVars: []string{"ILIST_LOG_JSON"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a TOML config file",
				EnvVars: []string{"ILIST_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return errors.Wrap(err, "parsing log level")
			}
			log.SetLevel(level)

			if c.Bool("log-json") {
				log.SetFormatter(&logrus.JSONFormatter{})
			}

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "walk, remove and drain ten records, dumping the ring",
				Action: func(c *cli.Context) error {
					return runDemo(log)
				},
			},
			{
				Name:  "stress",
				Usage: "move records between two lists from many goroutines",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "workers", Usage: "number of goroutines"},
					&cli.IntFlag{Name: "records", Usage: "records per worker"},
					&cli.IntFlag{Name: "rounds", Usage: "rounds per worker"},
					&cli.IntFlag{Name: "chunk-size", Usage: "arena chunk size"},
				},
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					return runStress(c.Context, log, cfg)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("ilistbench failed")
	}
}
