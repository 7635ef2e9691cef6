package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wildsafari/internal/models/request_models"
	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

type StoryController struct {
	storyService services.StoryServiceInterface
}

func NewStoryController(storyService services.StoryServiceInterface) *StoryController {
	return &StoryController{storyService: storyService}
}

// ListPublished godoc
// @Summary Approved traveler stories
// @Tags Stories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /stories [get]
func (s *StoryController) ListPublished(c *gin.Context) {
	stories, err := s.storyService.ListPublished(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stories, "Stories retrieved successfully")
}

// SubmitStory godoc
// @Summary Submit a story for review
// @Tags Stories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.StoryRequest true "Story payload"
// @Success 201 {object} utils.APIResponse
// @Router /stories [post]
func (s *StoryController) SubmitStory(c *gin.Context) {
	var req request_models.StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	story, err := s.storyService.SubmitStory(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, story, "Story submitted for review")
}

// ListStories godoc
// @Summary List all stories
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search text"
// @Param status query string false "pending, approved or rejected"
// @Param sort query string false "title, author, rating or created_at"
// @Success 200 {object} utils.APIResponse
// @Router /admin/stories [get]
func (s *StoryController) ListStories(c *gin.Context) {
	var q request_models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	stories, err := s.storyService.ListStories(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stories, "Stories retrieved successfully")
}

// ModerateStory godoc
// @Summary Approve or reject a story
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Param request body request_models.StatusUpdateRequest true "approved or rejected"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/stories/{id}/status [patch]
func (s *StoryController) ModerateStory(c *gin.Context) {
	var req request_models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stories, err := s.storyService.ModerateStory(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stories, "Story status updated")
}
