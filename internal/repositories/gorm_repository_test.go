package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wildsafari/internal/models/db_models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&db_models.TourPackage{},
		&db_models.Account{},
		&db_models.Booking{},
		&db_models.TourEmbedding{},
	))
	return db
}

func TestGormTourRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTourRepository(openTestDB(t))

	seed := DefaultSeed().Tours
	for i := len(seed) - 1; i >= 0; i-- {
		tour := seed[i]
		_, err := repo.AddTour(ctx, &tour)
		require.NoError(t, err)
	}

	tours, err := repo.GetTours(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, tourIDs(tours))
	assert.Equal(t, db_models.StringList{"Gorilla Trekking", "Golden Monkeys", "Cultural Visit"}, tours[0].Highlights)
	require.Len(t, tours[0].DailyItinerary, 3)
	assert.Equal(t, "Gorilla Trekking", tours[0].DailyItinerary[1].Title)

	added := &db_models.TourPackage{Title: "Kigali City Tour", Duration: "1 Day", Price: "$150"}
	tours, err = repo.AddTour(ctx, added)
	require.NoError(t, err)
	assert.Equal(t, added.ID, tours[0].ID)

	edit := tours[2]
	edit.Title = "Akagera Big Five"
	updated, err := repo.UpdateTour(ctx, &edit)
	require.NoError(t, err)
	assert.Equal(t, tourIDs(tours), tourIDs(updated))
	assert.Equal(t, "Akagera Big Five", updated[2].Title)

	first, err := repo.DeleteTour(ctx, "3")
	require.NoError(t, err)
	second, err := repo.DeleteTour(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, tourIDs(first), tourIDs(second))
	assert.Len(t, second, 3)

	missing, err := repo.GetTourByID(ctx, "3")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGormAccountFindOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(openTestDB(t))

	a, created, err := repo.FindOrCreateByEmail(ctx, &db_models.Account{Name: "new", Email: "New@X.com", Role: db_models.RoleUser})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new@x.com", a.Email)

	again, created, err := repo.FindOrCreateByEmail(ctx, &db_models.Account{Name: "other", Email: "new@x.COM", Role: db_models.RoleUser})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, a.ID, again.ID)

	accounts, _ := repo.GetAccounts(ctx)
	assert.Len(t, accounts, 1)
}

func TestGormBookingStatusAndEmbeddings(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	bookings := NewBookingRepository(db)

	b, err := bookings.CreateBooking(ctx, &db_models.Booking{TourID: "1", TourTitle: "Volcanoes Gorilla Trek", UserID: "u", Travelers: 2})
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingPending, b.Status)

	list, err := bookings.UpdateBookingStatus(ctx, b.ID, db_models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingConfirmed, list[0].Status)

	emb := NewTourEmbeddingRepository(db)
	require.NoError(t, emb.UpsertTourEmbedding(ctx, &db_models.TourEmbedding{TourID: "1", ContentHash: "a", Embedding: pgvector.NewVector([]float32{1, 0})}))
	require.NoError(t, emb.UpsertTourEmbedding(ctx, &db_models.TourEmbedding{TourID: "1", ContentHash: "b", Embedding: pgvector.NewVector([]float32{0, 1})}))

	rows, err := emb.GetTourEmbeddings(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "b", rows[0].ContentHash)
	assert.Equal(t, []float32{0, 1}, rows[0].Embedding.Slice())
}
