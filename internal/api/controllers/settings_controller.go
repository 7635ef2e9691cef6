package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wildsafari/internal/models/request_models"
	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// GetSettings godoc
// @Summary Site settings
// @Tags Settings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /settings [get]
func (s *SettingsController) GetSettings(c *gin.Context) {
	settings, err := s.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings retrieved successfully")
}

// UpdateSettings godoc
// @Summary Replace site settings
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SettingsRequest true "Settings payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/settings [put]
func (s *SettingsController) UpdateSettings(c *gin.Context) {
	var req request_models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	settings, err := s.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, settings, "Settings updated successfully")
}
