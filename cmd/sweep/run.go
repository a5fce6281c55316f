package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/shurcooL/go-goon"

	"github.com/tedmax100/counter-sweep/counter"
	"github.com/tedmax100/counter-sweep/entity"
	"github.com/tedmax100/counter-sweep/logging"
	"github.com/tedmax100/counter-sweep/monitor"
	"github.com/tedmax100/counter-sweep/report"
	"github.com/tedmax100/counter-sweep/repository"
	"github.com/tedmax100/counter-sweep/service"
	"github.com/tedmax100/counter-sweep/sweep"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

// run executes the command and returns its exit code. The report goes to
// stdout, logs and usage to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logging.SetOutput(stderr)

	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logging.Error(err)
		return exitConfig
	}

	if cfg.version {
		fmt.Fprintf(stdout, "sweep version %s\n", version)
		return exitOK
	}

	if err := cfg.validate(); err != nil {
		logging.Error(err)
		return exitConfig
	}

	if cfg.closedForm && cfg.progress > 0 {
		logging.Warn("-progress has no effect with -closed-form")
	}

	if cfg.format == formatText {
		report.Greet(stdout)
	}

	tally, err := sweepAll(ctx, cfg, stderr)
	if err != nil {
		logging.Error(err)
		if errors.Is(err, sweep.ErrInvalidConfiguration) {
			return exitConfig
		}
		return exitFailure
	}

	switch cfg.format {
	case formatHTML:
		stdout.Write(report.HTML(tally))
	default:
		report.WriteTally(stdout, tally)
	}
	return exitOK
}

// sweepAll runs the sweep cfg.repeat times and checks every run agrees.
func sweepAll(ctx context.Context, cfg *config, stderr io.Writer) (sweep.Tally, error) {
	repo := repository.NewMemory(cache.NoExpiration, 0)

	var first *entity.Result
	for i := 0; i < cfg.repeat; i++ {
		if !cfg.cache {
			repo = repository.NewMemory(cache.NoExpiration, 0)
		}

		result, err := sweepOnce(ctx, cfg, repo)
		if err != nil {
			return sweep.Tally{}, err
		}
		if cfg.dump {
			fmt.Fprint(stderr, goon.Sdump(result))
		}

		if first == nil {
			first = result
			continue
		}
		if result.Tally != first.Tally {
			return sweep.Tally{}, errors.Errorf("run %d disagrees with run 1: %+v != %+v", i+1, result.Tally, first.Tally)
		}
	}
	return first.Tally, nil
}

func sweepOnce(ctx context.Context, cfg *config, repo repository.IResultRepository) (*entity.Result, error) {
	opts := []service.Option{service.WithWorkers(cfg.workers)}
	if cfg.closedForm {
		opts = append(opts, service.WithClosedForm())
	}

	if cfg.progress > 0 {
		n, err := cfg.bounds.Total()
		if err != nil {
			return nil, err
		}
		progress := &counter.AtomicCounter{}
		pm := monitor.NewProgressMonitor(progress, n)
		pm.SetInterval(cfg.progress)
		go pm.Run()
		defer pm.Stop()

		opts = append(opts, service.WithProgress(progress))
	}

	return service.New(repo, opts...).Run(ctx, cfg.bounds)
}
