// Package jobs runs the back-office background work on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"wildsafari/internal/config"
	"wildsafari/internal/services"
	mem "wildsafari/pkg/memcache"
	"wildsafari/pkg/utils"
)

// limiterIdle is how long a client may stay quiet before its rate limit
// bucket is dropped.
const limiterIdle = 10 * time.Minute

// IdlePruner drops per-client state that has gone quiet.
type IdlePruner interface {
	PruneIdle(idle time.Duration) int
}

type Scheduler struct {
	cron *cron.Cron
	log  logrus.FieldLogger
}

// NewScheduler registers the manifest job (only when a manifest directory is
// configured) and the purge of expired planner sessions and idle rate limit
// clients. limiter may be nil. Schedules use Kigali time.
func NewScheduler(cfg config.JobsConfig, export services.ExportServiceInterface, sessions mem.SessionStore, limiter IdlePruner, log logrus.FieldLogger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(utils.KigaliLocation()),
		cron.WithChain(cron.Recover(cron.PrintfLogger(log))),
	)

	if cfg.ManifestDir != "" {
		job := NewManifestJob(cfg.ManifestDir, export, log)
		if _, err := c.AddJob(cfg.ManifestSchedule, job); err != nil {
			return nil, fmt.Errorf("schedule manifest %q: %w", cfg.ManifestSchedule, err)
		}
	} else {
		log.Info("MANIFEST_DIR not set, daily manifest disabled")
	}

	if cfg.SessionPurgeSchedule != "" {
		job := &PurgeJob{sessions: sessions, limiter: limiter, log: log}
		if _, err := c.AddJob(cfg.SessionPurgeSchedule, job); err != nil {
			return nil, fmt.Errorf("schedule session purge %q: %w", cfg.SessionPurgeSchedule, err)
		}
	}

	return &Scheduler{cron: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.WithField("jobs", len(s.cron.Entries())).Info("scheduler started")
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

type PurgeJob struct {
	sessions mem.SessionStore
	limiter  IdlePruner
	log      logrus.FieldLogger
}

func (j *PurgeJob) Run() {
	if n, err := j.sessions.PurgeExpired(context.Background()); err != nil {
		j.log.WithError(err).Warn("session purge failed")
	} else if n > 0 {
		j.log.WithField("removed", n).Debug("purged expired planner sessions")
	}

	if j.limiter == nil {
		return
	}
	if n := j.limiter.PruneIdle(limiterIdle); n > 0 {
		j.log.WithField("removed", n).Debug("pruned idle rate limit clients")
	}
}
