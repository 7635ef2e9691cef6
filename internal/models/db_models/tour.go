package db_models

import "gorm.io/datatypes"

type ItineraryDay struct {
	Day           int    `json:"day"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Accommodation string `json:"accommodation,omitempty"`
	Meals         string `json:"meals,omitempty"`
}

// TourPackage prices and durations are display labels ("$1,500", "3 Days").
type TourPackage struct {
	BaseModel
	Title           string                            `gorm:"not null" json:"title"`
	Duration        string                            `json:"duration"`
	Price           string                            `json:"price"`
	Image           string                            `json:"image"`
	Gallery         StringList                        `json:"gallery"`
	Description     string                            `gorm:"type:text" json:"description"`
	FullDescription string                            `gorm:"type:text" json:"full_description,omitempty"`
	Highlights      StringList                        `json:"highlights"`
	DestinationID   string                            `gorm:"index" json:"destination_id,omitempty"`
	DailyItinerary  datatypes.JSONSlice[ItineraryDay] `json:"daily_itinerary"`
	Inclusions      StringList                        `json:"inclusions"`
	Exclusions      StringList                        `json:"exclusions"`
	Featured        bool                              `json:"featured"`
}
