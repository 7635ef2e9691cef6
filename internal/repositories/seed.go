package repositories

import (
	"time"

	"gorm.io/datatypes"

	"wildsafari/internal/models/db_models"
)

type SeedData struct {
	Tours        []db_models.TourPackage
	Destinations []db_models.Destination
	Bookings     []db_models.Booking
	Stories      []db_models.Story
	Accounts     []db_models.Account
	Messages     []db_models.ContactMessage
	Signups      []db_models.NewsletterSignup
	Settings     db_models.SiteSettings
}

func base(id string, created time.Time) db_models.BaseModel {
	return db_models.BaseModel{ID: id, CreatedAt: created, UpdatedAt: created}
}

// DefaultSeed is the catalog the site starts with. Within each collection the
// first record is the newest, so both backends list it first.
func DefaultSeed() SeedData {
	t0 := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)

	return SeedData{
		Tours: []db_models.TourPackage{
			{
				BaseModel:       base("1", t0),
				Title:           "Volcanoes Gorilla Trek",
				Duration:        "3 Days",
				Price:           "$1,500",
				Image:           "https://images.unsplash.com/photo-1576487248873-1f3020907c8d?q=80&w=2070&auto=format&fit=crop",
				Description:     "A once-in-a-lifetime encounter with the majestic mountain gorillas in their natural habitat.",
				FullDescription: "Experience the thrill of a lifetime as you trek into the dense rainforests of Volcanoes National Park to observe the endangered mountain gorillas in their natural habitat.",
				Highlights:      db_models.StringList{"Gorilla Trekking", "Golden Monkeys", "Cultural Visit"},
				DestinationID:   "volcanoes",
				DailyItinerary: datatypes.JSONSlice[db_models.ItineraryDay]{
					{Day: 1, Title: "Arrival & Transfer", Description: "Arrive at Kigali International Airport. Transfer to Musanze."},
					{Day: 2, Title: "Gorilla Trekking", Description: "Early morning briefing and trek into the forest."},
					{Day: 3, Title: "Departure", Description: "Transfer back to Kigali."},
				},
				Inclusions: db_models.StringList{"Permits", "Lodging"},
				Exclusions: db_models.StringList{"Flights"},
				Featured:   true,
			},
			{
				BaseModel:     base("2", t0.Add(-time.Hour)),
				Title:         "Akagera Wildlife Safari",
				Duration:      "2 Days",
				Price:         "$800",
				Image:         "https://images.unsplash.com/photo-1516426122078-c23e76319801?q=80&w=2068&auto=format&fit=crop",
				Description:   "Explore the savannah plains of Akagera National Park and spot the Big 5.",
				Highlights:    db_models.StringList{"Game Drives", "Boat Cruise", "Big 5 Spotting"},
				DestinationID: "akagera",
			},
			{
				BaseModel:     base("3", t0.Add(-2*time.Hour)),
				Title:         "Nyungwe Canopy Walk",
				Duration:      "4 Days",
				Price:         "$1,200",
				Image:         "https://images.unsplash.com/photo-1440557653066-54157b856dc6?q=80&w=1974&auto=format&fit=crop",
				Description:   "Walk above the ancient rainforest and track chimpanzees in Nyungwe.",
				Highlights:    db_models.StringList{"Canopy Walk", "Chimpanzee Trek", "Waterfall Hike"},
				DestinationID: "nyungwe",
			},
		},
		Destinations: []db_models.Destination{
			{
				BaseModel:    base("volcanoes", t0),
				Name:         "Volcanoes National Park",
				Image:        "https://images.unsplash.com/photo-1576487248873-1f3020907c8d?q=80&w=2070&auto=format&fit=crop",
				Description:  "Home of the mountain gorillas on the slopes of the Virunga volcanoes.",
				PackageCount: 1,
				Price:        "From $1,500",
				Highlights:   db_models.StringList{"Gorilla Trekking", "Golden Monkeys", "Dian Fossey Tomb"},
			},
			{
				BaseModel:    base("akagera", t0.Add(-time.Hour)),
				Name:         "Akagera National Park",
				Image:        "https://images.unsplash.com/photo-1516426122078-c23e76319801?q=80&w=2068&auto=format&fit=crop",
				Description:  "Rwanda's savannah park, where the Big 5 roam between lakes and papyrus swamps.",
				PackageCount: 1,
				Price:        "From $800",
				Highlights:   db_models.StringList{"Big 5 Safari", "Boat Cruise", "Bird Watching"},
			},
			{
				BaseModel:    base("nyungwe", t0.Add(-2*time.Hour)),
				Name:         "Nyungwe Forest National Park",
				Image:        "https://images.unsplash.com/photo-1440557653066-54157b856dc6?q=80&w=1974&auto=format&fit=crop",
				Description:  "One of Africa's oldest rainforests, with chimpanzees and a canopy walkway.",
				PackageCount: 1,
				Price:        "From $1,200",
				Highlights:   db_models.StringList{"Canopy Walk", "Chimpanzee Trek", "Hiking"},
			},
			{
				BaseModel:   base("lake-kivu", t0.Add(-3*time.Hour)),
				Name:        "Lake Kivu",
				Image:       db_models.DefaultDestinationImage,
				Description: "Beaches, island boat trips and coffee farms along the western border.",
				Highlights:  db_models.StringList{"Lake Kivu Relaxation", "Kayaking", "Coffee Tours"},
			},
			{
				BaseModel:   base("kigali", t0.Add(-4*time.Hour)),
				Name:        "Kigali",
				Image:       db_models.DefaultDestinationImage,
				Description: "A clean, green capital with markets, galleries and the Genocide Memorial.",
				Highlights:  db_models.StringList{"Kigali City Tour", "Cultural Villages", "Kimironko Market"},
			},
		},
		Bookings: []db_models.Booking{
			{
				BaseModel:  base("101", t0),
				TourID:     "1",
				TourTitle:  "Volcanoes Gorilla Trek",
				UserID:     "guest@example.com",
				UserName:   "Guest User",
				Email:      "guest@example.com",
				Date:       "2024-06-15",
				Travelers:  2,
				Status:     db_models.BookingPending,
				TotalPrice: "$3,000",
			},
		},
		Stories: []db_models.Story{
			{
				BaseModel:   base("1", t0),
				Title:       "Face to Face with the Silverbacks",
				Author:      "Sarah Jenkins",
				Role:        "Adventure Traveler",
				AuthorImage: "https://ui-avatars.com/api/?name=Sarah+Jenkins&background=random",
				CoverImage:  "https://images.unsplash.com/photo-1576487248873-1f3020907c8d?q=80&w=2070&auto=format&fit=crop",
				Excerpt:     "The hike was challenging, but the moment I looked into the eyes of a Silverback, time stood still.",
				Content:     db_models.StringList{"I had dreamed of this moment for years..."},
				Date:        "October 15, 2023",
				Rating:      5,
				Status:      db_models.StoryApproved,
			},
			{
				BaseModel:   base("2", t0.Add(-time.Hour)),
				Title:       "Hidden Gems of Kigali",
				Author:      "Mark Doe",
				Role:        "Food Blogger",
				AuthorImage: "https://ui-avatars.com/api/?name=Mark+Doe&background=random",
				CoverImage:  "https://images.unsplash.com/photo-1544258788-b7f73c4f74d0?q=80&w=2070&auto=format&fit=crop",
				Excerpt:     "Kigali is more than just a stopover.",
				Content:     db_models.StringList{"The coffee shops here are amazing..."},
				Date:        "January 20, 2024",
				Rating:      4,
				Status:      db_models.StoryPending,
			},
		},
		Accounts: []db_models.Account{
			{BaseModel: base("1", t0), Name: "Admin User", Email: "admin@wildlifesafari.rw", Role: db_models.RoleAdmin},
			{BaseModel: base("2", t0.Add(-time.Hour)), Name: "John Traveler", Email: "john@example.com", Role: db_models.RoleUser},
		},
		Messages: []db_models.ContactMessage{
			{
				BaseModel: base("m1", t0),
				Name:      "Amina Uwase",
				Email:     "amina@example.com",
				Subject:   "Group discount for a family of six",
				Message:   "Do you offer reduced rates for families travelling together in July?",
				Status:    db_models.MessageUnread,
			},
		},
		Signups: []db_models.NewsletterSignup{
			{BaseModel: base("n1", t0), Email: "traveler@example.com"},
		},
		Settings: db_models.SiteSettings{
			ID:           db_models.SiteSettingsID,
			SiteName:     "Wildlife Safari Rwanda",
			ContactEmail: "info@wildlifesafari.rw",
			ContactPhone: "+250 788 000 000",
			Address:      "KG 7 Ave, Kigali, Rwanda",
			SocialLinks: datatypes.NewJSONType(db_models.SocialLinks{
				Instagram: "https://instagram.com/wildlifesafari.rw",
				Facebook:  "https://facebook.com/wildlifesafari.rw",
				Twitter:   "https://twitter.com/wildsafari_rw",
				Whatsapp:  "+250788000000",
			}),
		},
	}
}
