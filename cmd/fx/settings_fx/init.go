package settings_fx

import (
	"go.uber.org/fx"

	"wildsafari/internal/services"
)

var Module = fx.Provide(services.NewSettingsService)
