package config_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"wildsafari/internal/config"
	"wildsafari/pkg/logger"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideFieldLogger)

func provideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&cfg.Logging)
}

func provideFieldLogger(log *logger.Logger) logrus.FieldLogger {
	return log.Logger
}
