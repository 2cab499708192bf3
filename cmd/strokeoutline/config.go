package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/outline"
)

// config is the style file format:
//
//	stroke:
//	  width: 20
//	  linecap: round
//	  linejoin: bevel
//	precision: 2
//	tolerance: 0.05
//	max_depth: 10
//	workers: 4
type config struct {
	Stroke    outline.Attrs `yaml:"stroke"`
	Precision int           `yaml:"precision"`
	Tolerance float64       `yaml:"tolerance"`
	MaxDepth  int           `yaml:"max_depth"`
	Workers   int           `yaml:"workers"`
}

func defaultConfig() config {
	return config{
		Stroke:    outline.Attrs{Width: 1, Linecap: "butt", Linejoin: "miter"},
		Precision: outline.DefaultPrecision,
	}
}

// loadConfig reads a style file over the defaults. Keys missing from the
// file keep their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// flagValues are the command line settings that can override the file.
type flagValues struct {
	width     float64
	linecap   string
	linejoin  string
	precision int
	tolerance float64
	maxDepth  int
	workers   int
}

// apply copies the flags that were set on the command line into cfg.
func (f flagValues) apply(fs *flag.FlagSet, cfg *config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Stroke.Width = f.width
		case "linecap":
			cfg.Stroke.Linecap = f.linecap
		case "linejoin":
			cfg.Stroke.Linejoin = f.linejoin
		case "precision":
			cfg.Precision = f.precision
		case "tolerance":
			cfg.Tolerance = f.tolerance
		case "max-depth":
			cfg.MaxDepth = f.maxDepth
		case "workers":
			cfg.Workers = f.workers
		}
	})
}

func (c config) options() []outline.Option {
	return []outline.Option{
		outline.WithPrecision(c.Precision),
		outline.WithTolerance(c.Tolerance),
		outline.WithMaxDepth(c.MaxDepth),
		outline.WithWorkers(c.Workers),
	}
}
