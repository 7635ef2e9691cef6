package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/pkg/utils"
)

func TestSubmitStoryIsPending(t *testing.T) {
	store := seededStore()
	svc := &StoryService{
		storyRepo:   store,
		accountRepo: store,
		now:         func() time.Time { return time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC) },
	}
	ctx := context.Background()

	long := strings.Repeat("a", 200)
	story, err := svc.SubmitStory(ctx, "1", request_models.StoryRequest{
		Title:   "Sunrise over Kivu",
		Content: []string{long, "second paragraph"},
		Rating:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.StoryPending, story.Status, "admins submit pending stories too")
	assert.Equal(t, "Admin User", story.Author)
	assert.Equal(t, "Traveler", story.Role)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Admin+User&background=random", story.AuthorImage)
	assert.Equal(t, strings.Repeat("a", 160)+"...", story.Excerpt)
	assert.Equal(t, "March 2, 2024", story.Date)

	published, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	for _, p := range published {
		assert.NotEqual(t, story.ID, p.ID)
	}
}

func TestSubmitStoryUnknownAccount(t *testing.T) {
	store := seededStore()
	svc := NewStoryService(store, store)

	_, err := svc.SubmitStory(context.Background(), "ghost", request_models.StoryRequest{Title: "x", Content: []string{"y"}, Rating: 3})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestModerateStory(t *testing.T) {
	store := seededStore()
	svc := NewStoryService(store, store)
	ctx := context.Background()

	_, err := svc.ModerateStory(ctx, "2", "pending")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)

	_, err = svc.ModerateStory(ctx, "2", "approved")
	require.NoError(t, err)

	published, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 2)

	byRating, err := svc.ListStories(ctx, request_models.ListQuery{Sort: "rating"})
	require.NoError(t, err)
	assert.Equal(t, 4, byRating[0].Rating)
}
