package request_models

type ItineraryDayRequest struct {
	Day           int    `json:"day" binding:"required,min=1"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Accommodation string `json:"accommodation"`
	Meals         string `json:"meals"`
}

type TourRequest struct {
	Title           string                `json:"title" binding:"required,max=200"`
	Duration        string                `json:"duration" binding:"required"`
	Price           string                `json:"price" binding:"required"`
	Image           string                `json:"image"`
	Gallery         []string              `json:"gallery"`
	Description     string                `json:"description" binding:"required"`
	FullDescription string                `json:"full_description"`
	Highlights      []string              `json:"highlights"`
	DestinationID   string                `json:"destination_id"`
	DailyItinerary  []ItineraryDayRequest `json:"daily_itinerary" binding:"omitempty,dive"`
	Inclusions      []string              `json:"inclusions"`
	Exclusions      []string              `json:"exclusions"`
	Featured        bool                  `json:"featured"`
}

type DestinationRequest struct {
	Name         string   `json:"name" binding:"required,max=120"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	PackageCount int      `json:"package_count" binding:"min=0"`
	Price        string   `json:"price"`
	Highlights   []string `json:"highlights"`
}

// ListQuery drives the admin search, filter and sort controls.
// Sort is a field name, prefixed with "-" for descending order.
type ListQuery struct {
	Q      string `form:"q"`
	Status string `form:"status"`
	Sort   string `form:"sort"`
}
