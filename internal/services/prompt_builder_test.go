package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wildsafari/internal/models/request_models"
)

func TestBuildItineraryPromptEmbedsPreferences(t *testing.T) {
	prompt := BuildItineraryPrompt(request_models.PlannerState{
		Budget:    request_models.BudgetTierLuxury,
		Days:      5,
		Travelers: 2,
		Interests: []string{"Gorilla Trekking", "Bird Watching"},
	})

	assert.Contains(t, prompt, "Duration: 5 days")
	assert.Contains(t, prompt, "Budget Level: Luxury")
	assert.Contains(t, prompt, "Group Size: 2 people")
	assert.Contains(t, prompt, "Key Interests: Gorilla Trekking, Bird Watching")
	assert.Contains(t, prompt, "Packing tips")
}

func TestBuildItineraryPromptWithoutInterests(t *testing.T) {
	for _, interests := range [][]string{nil, {}, {"  "}} {
		prompt := BuildItineraryPrompt(request_models.PlannerState{
			Budget: "Budget", Days: 3, Travelers: 1, Interests: interests,
		})
		assert.Contains(t, prompt, "Key Interests: none specified")
		assert.NotContains(t, prompt, "undefined")
		assert.NotContains(t, prompt, "Key Interests: \n")
	}
}

func TestBuildItineraryPromptIsDeterministic(t *testing.T) {
	state := request_models.DefaultPlannerState()
	state.Interests = []string{"Hiking"}

	first := BuildItineraryPrompt(state)
	second := BuildItineraryPrompt(state)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(first, "Hiking"))
}
