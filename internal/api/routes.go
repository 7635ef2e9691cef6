// Package api wires the controllers into the HTTP route table.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"wildsafari/internal/api/controllers"
	"wildsafari/internal/models/db_models"
	"wildsafari/pkg/middleware"
	"wildsafari/pkg/utils"
)

type Controllers struct {
	fx.In

	Account   *controllers.AccountController
	Catalog   *controllers.CatalogController
	Booking   *controllers.BookingController
	Story     *controllers.StoryController
	Inbox     *controllers.InboxController
	Settings  *controllers.SettingsController
	Dashboard *controllers.DashboardController
	Planner   *controllers.PlannerController
}

// Guards are the per-group middlewares. RateLimit and Maintenance may be nil.
type Guards struct {
	JWTSecret   []byte
	RateLimit   gin.HandlerFunc
	Maintenance middleware.MaintenanceChecker
}

func RegisterRoutes(r *gin.Engine, ctl Controllers, g Guards) {
	auth := middleware.JWTAuthMiddleware(g.JWTSecret)
	admin := middleware.RoleMiddleware(db_models.RoleAdmin)

	// Public writes are throttled and closed during maintenance.
	var writes []gin.HandlerFunc
	if g.RateLimit != nil {
		writes = append(writes, g.RateLimit)
	}
	if g.Maintenance != nil {
		writes = append(writes, middleware.MaintenanceMiddleware(g.Maintenance))
	}
	throttle := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if g.RateLimit == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{g.RateLimit, h}
	}
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writes...), h)
	}

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})

	accounts := r.Group("/accounts")
	accounts.POST("/demo-login", throttle(ctl.Account.DemoLogin)...)
	accounts.POST("/register", guarded(ctl.Account.Register)...)
	accounts.POST("/login", throttle(ctl.Account.Login)...)
	accounts.GET("/me", auth, ctl.Account.Me)

	r.GET("/tours", ctl.Catalog.ListTours)
	r.GET("/tours/:id", ctl.Catalog.GetTour)
	r.GET("/destinations", ctl.Catalog.ListDestinations)
	r.GET("/destinations/:id", ctl.Catalog.GetDestination)

	bookings := r.Group("/bookings", auth)
	bookings.POST("", guarded(ctl.Booking.CreateBooking)...)
	bookings.GET("/me", ctl.Booking.MyBookings)

	r.GET("/stories", ctl.Story.ListPublished)
	r.POST("/stories", append([]gin.HandlerFunc{auth}, guarded(ctl.Story.SubmitStory)...)...)

	r.POST("/contact", guarded(ctl.Inbox.SubmitContact)...)
	r.POST("/newsletter", guarded(ctl.Inbox.Subscribe)...)
	r.GET("/settings", ctl.Settings.GetSettings)

	planner := r.Group("/planner")
	planner.GET("/options", ctl.Planner.Options)
	planner.POST("/itinerary", throttle(ctl.Planner.GenerateItinerary)...)
	planner.POST("/sessions", ctl.Planner.StartSession)
	planner.GET("/sessions/:id", ctl.Planner.GetSession)
	planner.PUT("/sessions/:id/preferences", ctl.Planner.UpdatePreferences)
	planner.POST("/sessions/:id/review", ctl.Planner.Review)
	planner.POST("/sessions/:id/generate", throttle(ctl.Planner.Generate)...)
	planner.POST("/sessions/:id/reset", ctl.Planner.Reset)
	planner.POST("/sessions/:id/email", throttle(ctl.Planner.EmailItinerary)...)

	adm := r.Group("/admin", auth, admin)
	adm.GET("/dashboard", ctl.Dashboard.GetOverview)
	adm.GET("/export/:collection", ctl.Dashboard.Export)

	adm.GET("/users", ctl.Account.ListAccounts)
	adm.PATCH("/users/:id/role", ctl.Account.UpdateRole)

	adm.POST("/tours", ctl.Catalog.CreateTour)
	adm.PUT("/tours/:id", ctl.Catalog.UpdateTour)
	adm.DELETE("/tours/:id", ctl.Catalog.DeleteTour)
	adm.POST("/destinations", ctl.Catalog.CreateDestination)
	adm.PUT("/destinations/:id", ctl.Catalog.UpdateDestination)
	adm.DELETE("/destinations/:id", ctl.Catalog.DeleteDestination)

	adm.GET("/bookings", ctl.Booking.ListBookings)
	adm.PATCH("/bookings/:id/status", ctl.Booking.UpdateBookingStatus)

	adm.GET("/stories", ctl.Story.ListStories)
	adm.PATCH("/stories/:id/status", ctl.Story.ModerateStory)

	adm.GET("/messages", ctl.Inbox.ListMessages)
	adm.PATCH("/messages/:id/status", ctl.Inbox.UpdateMessageStatus)
	adm.POST("/messages/:id/reply", ctl.Inbox.ReplyToMessage)
	adm.DELETE("/messages/:id", ctl.Inbox.DeleteMessage)
	adm.GET("/newsletters", ctl.Inbox.ListSignups)
	adm.DELETE("/newsletters/:id", ctl.Inbox.DeleteSignup)

	adm.PUT("/settings", ctl.Settings.UpdateSettings)
}
