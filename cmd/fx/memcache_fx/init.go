package memcache_fx

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"wildsafari/internal/config"
	"wildsafari/internal/infra"
	mem "wildsafari/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

// provideSessionStore keeps planner sessions in redis when REDIS_ADDR is set,
// in process memory otherwise.
func provideSessionStore(lc fx.Lifecycle, cfg *config.Config, log logrus.FieldLogger) (mem.SessionStore, error) {
	client, err := infra.NewRedisClient(context.Background(), &cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		log.Info("planner sessions kept in memory")
		return mem.NewMemorySessions(), nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	log.WithField("addr", cfg.Redis.Addr).Info("planner sessions kept in redis")
	return mem.NewRedisSessions(client), nil
}
