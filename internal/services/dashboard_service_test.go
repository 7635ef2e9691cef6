package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/repositories"
)

func dashboardFor(store *repositories.MemoryStore) DashboardServiceInterface {
	return NewDashboardService(store, store, store, store, store, store, store)
}

func TestDashboardOverview(t *testing.T) {
	overview, err := dashboardFor(seededStore()).GetOverview(context.Background())
	require.NoError(t, err)

	c := overview.Counts
	assert.Equal(t, 3, c.Tours)
	assert.Equal(t, 5, c.Destinations)
	assert.Equal(t, 1, c.Bookings)
	assert.Equal(t, 1, c.PendingBookings)
	assert.Equal(t, 2, c.Stories)
	assert.Equal(t, 1, c.PendingStories)
	assert.Equal(t, 1, c.UnreadMessages)
	assert.Equal(t, 1, c.Subscribers)
	assert.Equal(t, 2, c.Users)
	assert.Equal(t, 1, c.Admins)

	require.Len(t, overview.Notifications, 3)
	assert.Equal(t, "b-101", overview.Notifications[0].ID)
	assert.Equal(t, "Guest User requested Volcanoes Gorilla Trek", overview.Notifications[0].Message)
	assert.Equal(t, "m-m1", overview.Notifications[1].ID)
	assert.Equal(t, "s-2", overview.Notifications[2].ID)
	assert.Equal(t, `"Hidden Gems of Kigali" by Mark Doe`, overview.Notifications[2].Message)
}

func TestDashboardCapsNotificationsAndRecent(t *testing.T) {
	store := seededStore()
	for i := 0; i < 6; i++ {
		_, err := store.CreateBooking(context.Background(), &db_models.Booking{
			TourID:    "2",
			TourTitle: "Akagera Wildlife Safari",
			UserName:  fmt.Sprintf("Guest %d", i),
			Date:      "2025-01-01",
			Travelers: 1,
			Status:    db_models.BookingPending,
		})
		require.NoError(t, err)
	}

	overview, err := dashboardFor(store).GetOverview(context.Background())
	require.NoError(t, err)
	assert.Len(t, overview.Notifications, 5)
	for _, n := range overview.Notifications {
		assert.Equal(t, "New Booking Request", n.Title)
	}
	require.Len(t, overview.RecentBookings, 5)
	assert.Equal(t, "Guest 5", overview.RecentBookings[0].UserName)
}
