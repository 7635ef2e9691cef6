package response_models

import (
	"time"

	"wildsafari/internal/models/request_models"
)

type PlannerStep int

const (
	StepCollect PlannerStep = 1
	StepReview  PlannerStep = 2
	StepResult  PlannerStep = 3
)

type PlannerStatus string

const (
	StatusIdle    PlannerStatus = "IDLE"
	StatusLoading PlannerStatus = "LOADING"
	StatusSuccess PlannerStatus = "SUCCESS"
	StatusError   PlannerStatus = "ERROR"
)

// PlannerErrorMessage is shown when generation fails; the session stays retryable.
const PlannerErrorMessage = "Sorry, we encountered an error connecting to our AI service. Please try again."

type TourRecommendation struct {
	TourID   string  `json:"tour_id"`
	Title    string  `json:"title"`
	Duration string  `json:"duration"`
	Price    string  `json:"price"`
	Image    string  `json:"image"`
	Score    float64 `json:"score"`
}

type ItineraryResult struct {
	Title           string               `json:"title,omitempty"`
	Content         string               `json:"content"`
	HTML            string               `json:"html"`
	Recommendations []TourRecommendation `json:"recommendations"`
}

type PlannerSession struct {
	ID          string                      `json:"id"`
	Step        PlannerStep                 `json:"step"`
	Status      PlannerStatus               `json:"status"`
	Preferences request_models.PlannerState `json:"preferences"`
	Result      *ItineraryResult            `json:"result,omitempty"`
	Error       string                      `json:"error,omitempty"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

type PlannerOptions struct {
	Interests    []string                    `json:"interests"`
	BudgetTiers  []string                    `json:"budget_tiers"`
	MinDays      int                         `json:"min_days"`
	MaxDays      int                         `json:"max_days"`
	MinTravelers int                         `json:"min_travelers"`
	MaxTravelers int                         `json:"max_travelers"`
	Defaults     request_models.PlannerState `json:"defaults"`
}
