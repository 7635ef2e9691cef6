package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wildsafari/internal/models/request_models"
	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

// PlannerController exposes the itinerary planner, both one-shot and as a
// step-by-step session.
type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

// Options godoc
// @Summary Planner form options
// @Description Interests, budget tiers, day and traveler bounds, and defaults
// @Tags Planner
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /planner/options [get]
func (p *PlannerController) Options(c *gin.Context) {
	utils.RespondSuccess(c, p.plannerService.Options(), "Planner options")
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlannerState true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /planner/itinerary [post]
func (p *PlannerController) GenerateItinerary(c *gin.Context) {
	var req request_models.PlannerState
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.plannerService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

// StartSession godoc
// @Summary Start a planner session
// @Tags Planner
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Router /planner/sessions [post]
func (p *PlannerController) StartSession(c *gin.Context) {
	session, err := p.plannerService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, session, "Planner session started")
}

// GetSession godoc
// @Summary Get a planner session
// @Tags Planner
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /planner/sessions/{id} [get]
func (p *PlannerController) GetSession(c *gin.Context) {
	session, err := p.plannerService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Planner session retrieved")
}

// UpdatePreferences godoc
// @Summary Update trip preferences
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.PlannerState true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /planner/sessions/{id}/preferences [put]
func (p *PlannerController) UpdatePreferences(c *gin.Context) {
	var req request_models.PlannerState
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := p.plannerService.UpdatePreferences(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Preferences updated")
}

// Review godoc
// @Summary Move a session to the review step
// @Tags Planner
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /planner/sessions/{id}/review [post]
func (p *PlannerController) Review(c *gin.Context) {
	session, err := p.plannerService.ReviewSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Review your trip")
}

// Generate godoc
// @Summary Generate the itinerary for a session
// @Description A failed generation is reported in the session status, not as an HTTP error
// @Tags Planner
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /planner/sessions/{id}/generate [post]
func (p *PlannerController) Generate(c *gin.Context) {
	session, err := p.plannerService.GenerateForSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Planner session updated")
}

// Reset godoc
// @Summary Start over with default preferences
// @Tags Planner
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /planner/sessions/{id}/reset [post]
func (p *PlannerController) Reset(c *gin.Context) {
	session, err := p.plannerService.ResetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Planner session reset")
}

// EmailItinerary godoc
// @Summary Email the generated itinerary
// @Tags Planner
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.EmailItineraryRequest true "Recipient"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /planner/sessions/{id}/email [post]
func (p *PlannerController) EmailItinerary(c *gin.Context) {
	var req request_models.EmailItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.plannerService.EmailItinerary(c.Request.Context(), c.Param("id"), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary sent")
}
