// Package scheduler runs periodic background jobs on cron expressions.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const defaultJobTimeout = time.Minute

// Locker guards a job so that only one replica runs it at a time.
type Locker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

type Job struct {
	Name    string
	Spec    string
	Timeout time.Duration
	// Lock is optional.
	Lock Locker
	Run  func(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
	base context.Context
}

func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:  log.With().Str("component", "scheduler").Logger(),
		base: context.Background(),
	}
}

// Add registers job. It must be called before Start.
func (s *Scheduler) Add(job Job) error {
	if job.Name == "" || job.Run == nil {
		return errors.New("scheduler: job needs a name and a run func")
	}
	if _, err := s.cron.AddFunc(job.Spec, func() { s.RunOnce(s.base, job) }); err != nil {
		return fmt.Errorf("scheduler: job %s: %w", job.Name, err)
	}
	s.log.Info().Str("job", job.Name).Str("spec", job.Spec).Msg("job registered")
	return nil
}

// Start begins firing jobs. Runs derive their context from ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.base = ctx
	s.cron.Start()
}

// Stop prevents new runs and blocks until running jobs return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce executes job immediately, honouring its lock and timeout.
func (s *Scheduler) RunOnce(ctx context.Context, job Job) {
	log := s.log.With().Str("job", job.Name).Logger()

	if job.Lock != nil {
		ok, err := job.Lock.Acquire(ctx)
		if err != nil {
			log.Error().Err(err).Msg("acquire job lock")
			return
		}
		if !ok {
			log.Debug().Msg("job held by another replica")
			return
		}
		defer func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := job.Lock.Release(releaseCtx); err != nil {
				log.Warn().Err(err).Msg("release job lock")
			}
		}()
	}

	timeout := job.Timeout
	if timeout <= 0 {
		timeout = defaultJobTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(runCtx); err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("job failed")
		return
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("job finished")
}
