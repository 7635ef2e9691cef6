package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wildsafari/internal/models/request_models"
	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

// InboxController handles the contact form, newsletter signups and their admin views.
type InboxController struct {
	inboxService services.InboxServiceInterface
}

func NewInboxController(inboxService services.InboxServiceInterface) *InboxController {
	return &InboxController{inboxService: inboxService}
}

// SubmitContact godoc
// @Summary Send a contact message
// @Tags Inbox
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Contact form"
// @Success 201 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /contact [post]
func (i *InboxController) SubmitContact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := i.inboxService.SubmitContact(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Message sent successfully")
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags Inbox
// @Accept json
// @Produce json
// @Param request body request_models.NewsletterRequest true "Email"
// @Success 200 {object} utils.APIResponse
// @Success 201 {object} utils.APIResponse
// @Router /newsletter [post]
func (i *InboxController) Subscribe(c *gin.Context) {
	var req request_models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := i.inboxService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !created {
		utils.RespondSuccess(c, nil, "Already subscribed")
		return
	}
	utils.RespondCreated(c, nil, "Subscribed successfully")
}

// ListMessages godoc
// @Summary List contact messages
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search text"
// @Param status query string false "unread, read or replied"
// @Param sort query string false "name, subject or created_at"
// @Success 200 {object} utils.APIResponse
// @Router /admin/messages [get]
func (i *InboxController) ListMessages(c *gin.Context) {
	var q request_models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	messages, err := i.inboxService.ListMessages(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages retrieved successfully")
}

// UpdateMessageStatus godoc
// @Summary Mark a message unread, read or replied
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body request_models.StatusUpdateRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Router /admin/messages/{id}/status [patch]
func (i *InboxController) UpdateMessageStatus(c *gin.Context) {
	var req request_models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	messages, err := i.inboxService.UpdateMessageStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Message status updated")
}

// ReplyToMessage godoc
// @Summary Email a reply to the sender and mark the message replied
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Param request body request_models.ReplyRequest true "Reply text"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /admin/messages/{id}/reply [post]
func (i *InboxController) ReplyToMessage(c *gin.Context) {
	var req request_models.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	messages, err := i.inboxService.ReplyToMessage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Reply sent")
}

// DeleteMessage godoc
// @Summary Delete a contact message
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/messages/{id} [delete]
func (i *InboxController) DeleteMessage(c *gin.Context) {
	messages, err := i.inboxService.DeleteMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Message deleted")
}

// ListSignups godoc
// @Summary List newsletter subscribers
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/newsletters [get]
func (i *InboxController) ListSignups(c *gin.Context) {
	var q request_models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	signups, err := i.inboxService.ListSignups(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, signups, "Subscribers retrieved successfully")
}

// DeleteSignup godoc
// @Summary Remove a newsletter subscriber
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Signup ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/newsletters/{id} [delete]
func (i *InboxController) DeleteSignup(c *gin.Context) {
	signups, err := i.inboxService.DeleteSignup(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, signups, "Subscriber removed")
}
