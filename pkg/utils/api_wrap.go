package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondStatus(c, http.StatusCreated, data, message)
}

func RespondStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRecordNotFound), errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, ErrPlannerSessionNotFound):
		RespondError(c, http.StatusNotFound, "Planner session not found or expired")
	case errors.Is(err, ErrNothingToExport):
		RespondError(c, http.StatusNotFound, "No data available to export.")
	case errors.Is(err, ErrUnknownCollection):
		RespondError(c, http.StatusBadRequest, "Unknown export collection")
	case errors.Is(err, ErrInvalidStatus):
		RespondError(c, http.StatusBadRequest, "Invalid status value")
	case errors.Is(err, ErrInvalidRole):
		RespondError(c, http.StatusBadRequest, "Invalid role value")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrDemoAuthDisabled):
		RespondError(c, http.StatusForbidden, "Demo login is disabled")
	case errors.Is(err, ErrInvalidPlannerStep):
		RespondError(c, http.StatusConflict, "Planner session is not ready for this action")
	case errors.Is(err, ErrNoItineraryToSend):
		RespondError(c, http.StatusConflict, "Generate an itinerary before sending it")
	case errors.Is(err, ErrMissingAPIKey):
		RespondError(c, http.StatusServiceUnavailable, "Itinerary planner is not configured: missing API key")
	case errors.Is(err, ErrGenerationFailed):
		RespondError(c, http.StatusBadGateway, "Failed to generate itinerary. Please try again later.")
	case errors.Is(err, ErrMailNotSent):
		RespondError(c, http.StatusBadGateway, "Email could not be delivered, please try again later")
	case errors.Is(err, ErrDatabaseError):
		logrus.WithError(err).WithField("trace_id", c.GetString("trace_id")).Error("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logrus.WithError(err).WithField("trace_id", c.GetString("trace_id")).Error("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
