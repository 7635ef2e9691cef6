package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"wildsafari/cmd/fx/account_fx"
	"wildsafari/cmd/fx/booking_fx"
	"wildsafari/cmd/fx/catalog_fx"
	"wildsafari/cmd/fx/config_fx"
	"wildsafari/cmd/fx/controllers_fx"
	"wildsafari/cmd/fx/dashboard_fx"
	"wildsafari/cmd/fx/db_fx"
	"wildsafari/cmd/fx/inbox_fx"
	"wildsafari/cmd/fx/jobs_fx"
	"wildsafari/cmd/fx/mail_fx"
	"wildsafari/cmd/fx/memcache_fx"
	"wildsafari/cmd/fx/notify_fx"
	"wildsafari/cmd/fx/planner_fx"
	"wildsafari/cmd/fx/settings_fx"
	"wildsafari/cmd/fx/story_fx"
	"wildsafari/internal/api"
	"wildsafari/internal/config"
	"wildsafari/internal/services"
	"wildsafari/pkg/logger"
	"wildsafari/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		notify_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		booking_fx.Module,
		story_fx.Module,
		inbox_fx.Module,
		settings_fx.Module,
		dashboard_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,
		jobs_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRateLimiter),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:              cfg.Server.ServerAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.WithField("addr", srv.Addr).Info("Starting HTTP server")
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.WithError(err).Fatal("HTTP server stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			stopCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.GracefulStop)*time.Second)
			defer cancel()
			return srv.Shutdown(stopCtx)
		},
	})
}

// ProvideRateLimiter returns nil when RATE_LIMIT_ENABLED is false.
func ProvideRateLimiter(cfg *config.Config) *middleware.ClientRateLimiter {
	if !cfg.Security.RateLimitEnabled {
		return nil
	}
	return middleware.NewClientRateLimiter(cfg.Security.RateLimitPerMinute, cfg.Security.RateLimitBurstSize)
}

func ProvideRouter(
	cfg *config.Config,
	log *logger.Logger,
	settings services.SettingsServiceInterface,
	limiter *middleware.ClientRateLimiter,
	ctl api.Controllers) *gin.Engine {

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(middleware.RecoveryMiddleware(log))
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	guards := api.Guards{
		JWTSecret:   []byte(cfg.Security.JWTSecret),
		Maintenance: settings,
	}
	if limiter != nil {
		guards.RateLimit = limiter.Middleware()
	}

	api.RegisterRoutes(r, ctl, guards)

	return r
}
