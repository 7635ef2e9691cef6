package utils

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidRole        = errors.New("invalid role value")
	ErrDatabaseError      = errors.New("database error")
	ErrUnknownCollection  = errors.New("unknown export collection")
	ErrNothingToExport    = errors.New("no data available to export")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDemoAuthDisabled   = errors.New("demo authentication is disabled")
	ErrMailNotSent        = errors.New("email could not be delivered")

	ErrMissingAPIKey          = errors.New("generation API key is not configured")
	ErrGenerationFailed       = errors.New("failed to generate itinerary, please try again later")
	ErrPlannerSessionNotFound = errors.New("planner session not found or expired")
	ErrInvalidPlannerStep     = errors.New("planner session is not at a step that allows this action")
	ErrNoItineraryToSend      = errors.New("planner session has no itinerary to send")
)
