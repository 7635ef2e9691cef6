package jobs_fx

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"wildsafari/internal/config"
	"wildsafari/internal/jobs"
	"wildsafari/internal/services"
	mem "wildsafari/pkg/memcache"
	"wildsafari/pkg/middleware"
)

var Module = fx.Options(
	fx.Provide(provideScheduler),
	fx.Invoke(startScheduler))

func provideScheduler(
	cfg *config.Config,
	export services.ExportServiceInterface,
	sessions mem.SessionStore,
	limiter *middleware.ClientRateLimiter,
	log logrus.FieldLogger,
) (*jobs.Scheduler, error) {
	var pruner jobs.IdlePruner
	if limiter != nil {
		pruner = limiter
	}
	return jobs.NewScheduler(cfg.Jobs, export, sessions, pruner, log)
}

func startScheduler(lc fx.Lifecycle, scheduler *jobs.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
