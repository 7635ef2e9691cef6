package controllers_fx

import (
	"go.uber.org/fx"

	"wildsafari/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewStoryController),
	fx.Provide(controllers.NewInboxController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewPlannerController))
