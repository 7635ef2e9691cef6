package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	exportService    services.ExportServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, exportService services.ExportServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// GetOverview godoc
// @Summary Admin dashboard overview
// @Description Counts per collection and the latest notifications
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/dashboard [get]
func (d *DashboardController) GetOverview(c *gin.Context) {
	overview, err := d.dashboardService.GetOverview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overview, "Dashboard retrieved successfully")
}

// Export godoc
// @Summary Download a collection as CSV
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Param collection path string true "bookings, bookings_report, daily_manifest, safari_packages, destinations, stories, users, messages or newsletters"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/export/{collection} [get]
func (d *DashboardController) Export(c *gin.Context) {
	file, err := d.exportService.Export(c.Request.Context(), c.Param("collection"), time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", file.Content)
}
