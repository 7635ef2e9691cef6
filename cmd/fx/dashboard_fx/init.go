package dashboard_fx

import (
	"go.uber.org/fx"

	"wildsafari/internal/services"
)

var Module = fx.Provide(
	services.NewDashboardService,
	services.NewExportService,
)
