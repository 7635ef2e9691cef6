package services

import (
	"fmt"
	"strings"

	"wildsafari/internal/models/request_models"
)

const itineraryPromptTemplate = `You are an expert travel agent specializing in Rwanda tourism (The Land of a Thousand Hills).
Create a detailed, day-by-day travel itinerary for a client with the following preferences:

- Duration: %d days
- Budget Level: %s
- Group Size: %d people
- Key Interests: %s

Please structure the response in Markdown.
Include:
1. A catchy title for the trip.
2. A brief overview of the experience.
3. Day-by-day breakdown (morning, afternoon, evening).
4. Recommended lodges or hotels that fit the budget (be specific with real names if known).
5. Estimated cost breakdown range (optional but helpful).
6. Packing tips for Rwanda (weather, terrain).

Keep the tone welcoming, professional, and exciting. Focus on sustainability and eco-tourism where possible.`

const noInterestsMarker = "none specified"

// BuildItineraryPrompt renders the generation prompt for a set of trip
// preferences. The output depends only on state.
func BuildItineraryPrompt(state request_models.PlannerState) string {
	interests := make([]string, 0, len(state.Interests))
	for _, interest := range state.Interests {
		if s := strings.TrimSpace(interest); s != "" {
			interests = append(interests, s)
		}
	}

	interestLine := noInterestsMarker
	if len(interests) > 0 {
		interestLine = strings.Join(interests, ", ")
	}

	return fmt.Sprintf(itineraryPromptTemplate, state.Days, state.Budget, state.Travelers, interestLine)
}
