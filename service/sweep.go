package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/tedmax100/counter-sweep/entity"
	"github.com/tedmax100/counter-sweep/logging"
	"github.com/tedmax100/counter-sweep/repository"
	"github.com/tedmax100/counter-sweep/sweep"
)

type SweepService struct {
	repo       repository.IResultRepository
	workers    int
	closedForm bool
	progress   sweep.Progress
	now        func() time.Time
}

type Option func(*SweepService)

// WithWorkers splits the sweep across n goroutines. One worker is the plain
// sequential sweep.
func WithWorkers(n int) Option {
	return func(s *SweepService) {
		s.workers = n
	}
}

// WithClosedForm computes the tally arithmetically instead of iterating.
func WithClosedForm() Option {
	return func(s *SweepService) {
		s.closedForm = true
	}
}

// WithProgress receives the number of values swept as the sweep advances.
func WithProgress(p sweep.Progress) Option {
	return func(s *SweepService) {
		s.progress = p
	}
}

// WithClock replaces time.Now for measuring elapsed time.
func WithClock(now func() time.Time) Option {
	return func(s *SweepService) {
		s.now = now
	}
}

func New(repo repository.IResultRepository, opts ...Option) *SweepService {
	s := &SweepService{
		repo:    repo,
		workers: 1,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run validates the bounds, then returns the stored tally for their product
// or sweeps and stores it.
func (s *SweepService) Run(ctx context.Context, bounds sweep.Bounds) (*entity.Result, error) {
	n, err := bounds.Total()
	if err != nil {
		return nil, err
	}
	if s.workers < 1 {
		return nil, errors.Wrapf(sweep.ErrInvalidConfiguration, "workers must be positive, got %d", s.workers)
	}

	result := &entity.Result{
		Id:     uuid.New(),
		Bounds: bounds,
		N:      n,
	}

	tally, found, err := s.repo.Get(ctx, n)
	if err != nil {
		return nil, err
	}
	if found {
		logging.Infof("run %s: reusing stored tally for N=%d", result.Id, n)
		result.Tally = tally
		result.Cached = true
		return result, nil
	}

	logging.Info("run", result.Id, "sweeping N =", n, "with", s.strategy())
	start := s.now()
	tally, err = s.sweep(ctx, n)
	if err != nil {
		return nil, err
	}
	result.Tally = tally
	result.Elapsed = s.now().Sub(start)
	logging.Infof("run %s: swept N=%d (%s) in %s", result.Id, n, bounds, result.Elapsed)

	if err := s.repo.Put(ctx, n, tally); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SweepService) strategy() string {
	switch {
	case s.closedForm:
		return "closed form"
	case s.workers > 1:
		return fmt.Sprintf("%d workers", s.workers)
	default:
		return "sequential sweep"
	}
}

func (s *SweepService) sweep(ctx context.Context, n uint64) (sweep.Tally, error) {
	switch {
	case s.closedForm:
		tally := sweep.ClosedForm(1, n)
		if s.progress != nil {
			s.progress.Add(n)
		}
		return tally, nil
	case s.workers > 1:
		return sweep.Parallel(ctx, n, s.workers, s.progress)
	default:
		return sweep.CountContext(ctx, n, s.progress)
	}
}
