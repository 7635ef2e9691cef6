package request_models

const (
	BudgetTierBudget   = "Budget"
	BudgetTierModerate = "Moderate"
	BudgetTierLuxury   = "Luxury"

	MinTripDays     = 3
	MaxTripDays     = 21
	MinTravelers    = 1
	MaxTravelers    = 10
	DefaultTripDays = 7
	DefaultGroup    = 2
)

var (
	BudgetTiers     = []string{BudgetTierBudget, BudgetTierModerate, BudgetTierLuxury}
	InterestOptions = []string{
		"Gorilla Trekking",
		"Cultural Villages",
		"Hiking",
		"Big 5 Safari",
		"Lake Kivu Relaxation",
		"Bird Watching",
		"Kigali City Tour",
	}
)

// PlannerState is the set of trip constraints sent to the itinerary planner.
type PlannerState struct {
	Budget    string   `json:"budget" binding:"required,oneof=Budget Moderate Luxury"`
	Days      int      `json:"days" binding:"required,min=3,max=21"`
	Travelers int      `json:"travelers" binding:"required,min=1,max=10"`
	Interests []string `json:"interests" binding:"omitempty,max=7,unique,dive,oneof='Gorilla Trekking' 'Cultural Villages' 'Hiking' 'Big 5 Safari' 'Lake Kivu Relaxation' 'Bird Watching' 'Kigali City Tour'"`
}

func DefaultPlannerState() PlannerState {
	return PlannerState{
		Budget:    BudgetTierModerate,
		Days:      DefaultTripDays,
		Travelers: DefaultGroup,
		Interests: []string{},
	}
}

type EmailItineraryRequest struct {
	Email string `json:"email" binding:"required,email"`
}
