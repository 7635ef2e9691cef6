package db_models

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
)

// Booking keeps a snapshot of the tour title; tour and user references are
// not enforced.
type Booking struct {
	BaseModel
	TourID     string        `gorm:"index" json:"tour_id"`
	TourTitle  string        `json:"tour_title"`
	UserID     string        `gorm:"index" json:"user_id"`
	UserName   string        `json:"user_name"`
	Email      string        `json:"email"`
	Date       string        `json:"date"`
	Travelers  int           `gorm:"check:travelers >= 1" json:"travelers"`
	Status     BookingStatus `gorm:"type:varchar(16);index" json:"status"`
	TotalPrice string        `json:"total_price,omitempty"`
	Message    string        `gorm:"type:text" json:"message,omitempty"`
}
