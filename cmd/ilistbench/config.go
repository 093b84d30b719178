package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Config configures the stress command.
type Config struct {
	Workers   int `toml:"workers"`
	Records   int `toml:"records"`
	Rounds    int `toml:"rounds"`
	ChunkSize int `toml:"chunk_size"`
}

func defaultConfig() Config {
	return Config{
		Workers:   8,
		Records:   64,
		Rounds:    1000,
		ChunkSize: 64,
	}
}

// loadConfig reads the optional config file and applies command flags over it.
func loadConfig(c *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if path := c.String("config"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "reading config %s", path)
		}
	}

	for name, dst := range map[string]*int{
		"workers":    &cfg.Workers,
		"records":    &cfg.Records,
		"rounds":     &cfg.Rounds,
		"chunk-size": &cfg.ChunkSize,
	} {
		if c.IsSet(name) {
			*dst = c.Int(name)
		}
	}

	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	switch {
	case cfg.Workers <= 0:
		return errors.Errorf("workers must be positive, got %d", cfg.Workers)
	case cfg.Records <= 0:
		return errors.Errorf("records must be positive, got %d", cfg.Records)
	case cfg.Rounds < 0:
		return errors.Errorf("rounds must not be negative, got %d", cfg.Rounds)
	case cfg.ChunkSize <= 0:
		return errors.Errorf("chunk size must be positive, got %d", cfg.ChunkSize)
	}
	return nil
}
