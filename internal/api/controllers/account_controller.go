package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wildsafari/internal/models/request_models"
	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// DemoLogin godoc
// @Summary Passwordless demo login
// @Description Signs in with an email only, creating the account on first use. Enabled with DEMO_AUTH.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.DemoLoginRequest true "Demo login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /accounts/demo-login [post]
func (a *AccountController) DemoLogin(c *gin.Context) {
	var req request_models.DemoLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Authenticate(c.Request.Context(), req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// Register godoc
// @Summary Register a new account
// @Description Create a new traveler account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// Me godoc
// @Summary Current account
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	account, err := a.accountService.Me(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account retrieved successfully")
}

// ListAccounts godoc
// @Summary List accounts
// @Description Admin list of users with search, role filter and sort
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search by name or email"
// @Param status query string false "Role filter (user, admin)"
// @Param sort query string false "Sort field, prefix with - for descending"
// @Success 200 {object} utils.APIResponse
// @Router /admin/users [get]
func (a *AccountController) ListAccounts(c *gin.Context) {
	var q request_models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	accounts, err := a.accountService.ListAccounts(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Accounts retrieved successfully")
}

// UpdateRole godoc
// @Summary Change an account role
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body request_models.UpdateRoleRequest true "New role"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/users/{id}/role [patch]
func (a *AccountController) UpdateRole(c *gin.Context) {
	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accounts, err := a.accountService.UpdateRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Role updated successfully")
}
