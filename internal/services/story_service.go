package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"wildsafari/internal/models/db_models"
	"wildsafari/internal/models/request_models"
	"wildsafari/internal/repositories"
	"wildsafari/pkg/utils"
)

type StoryServiceInterface interface {
	ListPublished(ctx context.Context) ([]db_models.Story, error)
	ListStories(ctx context.Context, q request_models.ListQuery) ([]db_models.Story, error)
	SubmitStory(ctx context.Context, userID string, req request_models.StoryRequest) (*db_models.Story, error)
	ModerateStory(ctx context.Context, id, status string) ([]db_models.Story, error)
}

type StoryService struct {
	storyRepo   repositories.StoryRepository
	accountRepo repositories.AccountRepository
	now         func() time.Time
}

func NewStoryService(storyRepo repositories.StoryRepository, accountRepo repositories.AccountRepository) StoryServiceInterface {
	return &StoryService{
		storyRepo:   storyRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
}

var storyListSpec = listSpec[db_models.Story]{
	text: func(s db_models.Story) []string {
		return []string{s.Title, s.Author, s.Excerpt}
	},
	status: func(s db_models.Story) string { return string(s.Status) },
	sorts: map[string]func(a, b db_models.Story) int{
		"title":      byString(func(s db_models.Story) string { return s.Title }),
		"author":     byString(func(s db_models.Story) string { return s.Author }),
		"rating":     byNumber(func(s db_models.Story) int { return s.Rating }),
		"created_at": byNumber(func(s db_models.Story) int64 { return s.CreatedAt.UnixNano() }),
	},
}

func (s *StoryService) ListPublished(ctx context.Context) ([]db_models.Story, error) {
	stories, err := s.storyRepo.GetStories(ctx, db_models.StoryApproved)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return stories, nil
}

func (s *StoryService) ListStories(ctx context.Context, q request_models.ListQuery) ([]db_models.Story, error) {
	stories, err := s.storyRepo.GetStories(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return storyListSpec.apply(stories, q), nil
}

// SubmitStory always stores the story as pending, whatever the author's role.
func (s *StoryService) SubmitStory(ctx context.Context, userID string, req request_models.StoryRequest) (*db_models.Story, error) {
	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	authorImage := req.AuthorImage
	if authorImage == "" {
		authorImage = firstNonEmpty(account.Avatar, avatarURL(account.Name))
	}
	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = truncate(req.Content[0], 160)
	}

	story := &db_models.Story{
		Title:       req.Title,
		Author:      account.Name,
		Role:        firstNonEmpty(req.Role, "Traveler"),
		AuthorImage: authorImage,
		CoverImage:  req.CoverImage,
		Gallery:     db_models.StringList(req.Gallery),
		Excerpt:     excerpt,
		Content:     db_models.StringList(req.Content),
		Date:        s.now().In(utils.KigaliLocation()).Format("January 2, 2006"),
		Rating:      req.Rating,
		Status:      db_models.StoryPending,
	}

	if _, err := s.storyRepo.AddStory(ctx, story); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return story, nil
}

// ModerateStory accepts approved or rejected.
func (s *StoryService) ModerateStory(ctx context.Context, id, status string) ([]db_models.Story, error) {
	next := db_models.StoryStatus(strings.ToLower(strings.TrimSpace(status)))
	if next != db_models.StoryApproved && next != db_models.StoryRejected {
		return nil, utils.ErrInvalidStatus
	}
	stories, err := s.storyRepo.UpdateStoryStatus(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return stories, nil
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

func truncate(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return strings.TrimSpace(string(r[:max])) + "..."
}
