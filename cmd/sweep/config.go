package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/tedmax100/counter-sweep/sweep"
)

const (
	formatText = "text"
	formatHTML = "html"
)

type config struct {
	bounds     sweep.Bounds
	workers    int
	closedForm bool
	format     string
	repeat     int
	cache      bool
	progress   time.Duration
	dump       bool
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{bounds: sweep.DefaultBounds()}

	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: sweep [OPTIONS]")
		fs.PrintDefaults()
	}

	fs.Int64Var(&cfg.bounds.GridZ, "grid-z", cfg.bounds.GridZ, "grid depth")
	fs.Int64Var(&cfg.bounds.GridY, "grid-y", cfg.bounds.GridY, "grid height")
	fs.Int64Var(&cfg.bounds.GridX, "grid-x", cfg.bounds.GridX, "grid width")
	fs.Int64Var(&cfg.bounds.BlockZ, "block-z", cfg.bounds.BlockZ, "block depth")
	fs.Int64Var(&cfg.bounds.BlockY, "block-y", cfg.bounds.BlockY, "block height")
	fs.Int64Var(&cfg.bounds.BlockX, "block-x", cfg.bounds.BlockX, "block width")
	fs.IntVar(&cfg.workers, "workers", 1, "goroutines to sweep on (1 = sequential)")
	fs.BoolVar(&cfg.closedForm, "closed-form", false, "compute the tallies without iterating")
	fs.StringVar(&cfg.format, "format", formatText, "output format: text or html")
	fs.IntVar(&cfg.repeat, "repeat", 1, "run the sweep this many times and check the tallies agree")
	fs.BoolVar(&cfg.cache, "cache", true, "reuse tallies from earlier runs with the same N")
	fs.DurationVar(&cfg.progress, "progress", 0, "log progress at this interval (0 = off)")
	fs.BoolVar(&cfg.dump, "dump", false, "dump each run result to stderr")
	fs.BoolVar(&cfg.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

// validate reports every setting that would make the run fail, before any
// output is written.
func (c *config) validate() error {
	if _, err := c.bounds.Total(); err != nil {
		return err
	}
	if c.workers < 1 {
		return errors.Wrapf(sweep.ErrInvalidConfiguration, "workers must be positive, got %d", c.workers)
	}
	if c.repeat < 1 {
		return errors.Wrapf(sweep.ErrInvalidConfiguration, "repeat must be positive, got %d", c.repeat)
	}
	if c.progress < 0 {
		return errors.Wrapf(sweep.ErrInvalidConfiguration, "progress interval must not be negative, got %s", c.progress)
	}
	if c.format != formatText && c.format != formatHTML {
		return errors.Wrapf(sweep.ErrInvalidConfiguration, "unknown format %q", c.format)
	}
	return nil
}
