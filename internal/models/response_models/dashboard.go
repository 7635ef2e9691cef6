package response_models

import (
	"time"

	"wildsafari/internal/models/db_models"
)

type DashboardCounts struct {
	Tours             int `json:"tours"`
	Destinations      int `json:"destinations"`
	Bookings          int `json:"bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	RejectedBookings  int `json:"rejected_bookings"`
	Stories           int `json:"stories"`
	PendingStories    int `json:"pending_stories"`
	Messages          int `json:"messages"`
	UnreadMessages    int `json:"unread_messages"`
	Subscribers       int `json:"subscribers"`
	Users             int `json:"users"`
	Admins            int `json:"admins"`
}

type NotificationType string

const (
	NotificationBooking NotificationType = "booking"
	NotificationMessage NotificationType = "message"
	NotificationStory   NotificationType = "story"
)

type AdminNotification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    time.Time        `json:"time"`
}

type DashboardOverview struct {
	Counts         DashboardCounts     `json:"counts"`
	Notifications  []AdminNotification `json:"notifications"`
	RecentBookings []db_models.Booking `json:"recent_bookings"`
}

type DestinationDetail struct {
	db_models.Destination
	Tours []db_models.TourPackage `json:"tours"`
}
