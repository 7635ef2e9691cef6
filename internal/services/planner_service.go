package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"wildsafari/internal/models/request_models"
	"wildsafari/internal/models/response_models"
	"wildsafari/pkg/markdown"
	mem "wildsafari/pkg/memcache"
	"wildsafari/pkg/utils"
)

const (
	plannerSessionPrefix = "session:"
	defaultSessionTTL    = 2 * time.Hour
)

type PlannerServiceInterface interface {
	Options() response_models.PlannerOptions
	// GenerateItinerary is the one-shot planner: preferences in, itinerary out.
	GenerateItinerary(ctx context.Context, state request_models.PlannerState) (*response_models.ItineraryResult, error)

	StartSession(ctx context.Context) (*response_models.PlannerSession, error)
	GetSession(ctx context.Context, id string) (*response_models.PlannerSession, error)
	UpdatePreferences(ctx context.Context, id string, state request_models.PlannerState) (*response_models.PlannerSession, error)
	ReviewSession(ctx context.Context, id string) (*response_models.PlannerSession, error)
	GenerateForSession(ctx context.Context, id string) (*response_models.PlannerSession, error)
	ResetSession(ctx context.Context, id string) (*response_models.PlannerSession, error)
	EmailItinerary(ctx context.Context, id, email string) error
}

type PlannerService struct {
	generator   utils.ItineraryGenerator
	recommender RecommendationServiceInterface
	sessions    mem.SessionStore
	mail        IMailService
	ttl         time.Duration
	log         logrus.FieldLogger
	now         func() time.Time
}

func NewPlannerService(
	generator utils.ItineraryGenerator,
	recommender RecommendationServiceInterface,
	sessions mem.SessionStore,
	mail IMailService,
	ttl time.Duration,
	log logrus.FieldLogger,
) PlannerServiceInterface {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &PlannerService{
		generator:   generator,
		recommender: recommender,
		sessions:    sessions,
		mail:        mail,
		ttl:         ttl,
		log:         log,
		now:         time.Now,
	}
}

func (p *PlannerService) Options() response_models.PlannerOptions {
	return response_models.PlannerOptions{
		Interests:    append([]string{}, request_models.InterestOptions...),
		BudgetTiers:  append([]string{}, request_models.BudgetTiers...),
		MinDays:      request_models.MinTripDays,
		MaxDays:      request_models.MaxTripDays,
		MinTravelers: request_models.MinTravelers,
		MaxTravelers: request_models.MaxTravelers,
		Defaults:     request_models.DefaultPlannerState(),
	}
}

func (p *PlannerService) GenerateItinerary(ctx context.Context, state request_models.PlannerState) (*response_models.ItineraryResult, error) {
	content, err := p.generator.GenerateItinerary(ctx, BuildItineraryPrompt(state))
	if err != nil {
		return nil, err
	}
	return p.buildResult(ctx, state, content), nil
}

// buildResult decorates generated markdown. Rendering and recommendation
// failures are logged and leave those parts empty.
func (p *PlannerService) buildResult(ctx context.Context, state request_models.PlannerState, content string) *response_models.ItineraryResult {
	result := &response_models.ItineraryResult{
		Title:           markdown.Title(content),
		Content:         content,
		Recommendations: []response_models.TourRecommendation{},
	}

	html, err := markdown.ToHTML(content)
	if err != nil {
		p.log.WithError(err).Warn("could not render itinerary markdown")
	} else {
		result.HTML = html
	}

	if p.recommender != nil {
		recs, err := p.recommender.RecommendTours(ctx, state, defaultRecommendationCount)
		if err != nil {
			p.log.WithError(err).Warn("could not compute tour recommendations")
		} else {
			result.Recommendations = recs
		}
	}
	return result
}

func (p *PlannerService) StartSession(ctx context.Context) (*response_models.PlannerSession, error) {
	session := &response_models.PlannerSession{
		ID:          uuid.NewString(),
		Step:        response_models.StepCollect,
		Status:      response_models.StatusIdle,
		Preferences: request_models.DefaultPlannerState(),
	}
	if err := p.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (p *PlannerService) GetSession(ctx context.Context, id string) (*response_models.PlannerSession, error) {
	return p.load(ctx, id)
}

// UpdatePreferences is allowed while collecting or reviewing and always
// returns the session to the collect step.
func (p *PlannerService) UpdatePreferences(ctx context.Context, id string, state request_models.PlannerState) (*response_models.PlannerSession, error) {
	session, err := p.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step == response_models.StepResult {
		return nil, utils.ErrInvalidPlannerStep
	}
	if state.Interests == nil {
		state.Interests = []string{}
	}

	session.Preferences = state
	session.Step = response_models.StepCollect
	session.Status = response_models.StatusIdle
	if err := p.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (p *PlannerService) ReviewSession(ctx context.Context, id string) (*response_models.PlannerSession, error) {
	session, err := p.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step == response_models.StepResult {
		return nil, utils.ErrInvalidPlannerStep
	}

	session.Step = response_models.StepReview
	if err := p.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GenerateForSession runs generation from the review step, or again from the
// result step as a retry. A failed generation is reported on the session
// itself with PlannerErrorMessage, not as an error.
func (p *PlannerService) GenerateForSession(ctx context.Context, id string) (*response_models.PlannerSession, error) {
	session, err := p.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step == response_models.StepCollect {
		return nil, utils.ErrInvalidPlannerStep
	}

	session.Step = response_models.StepResult
	session.Status = response_models.StatusLoading
	session.Result = nil
	session.Error = ""
	if err := p.save(ctx, session); err != nil {
		return nil, err
	}

	entry := p.log.WithField("session_id", session.ID)
	result, genErr := p.GenerateItinerary(ctx, session.Preferences)
	if genErr != nil {
		entry.WithError(genErr).Warn("itinerary generation failed")
		session.Status = response_models.StatusError
		session.Error = response_models.PlannerErrorMessage
	} else {
		session.Status = response_models.StatusSuccess
		session.Result = result
	}

	// The caller may have gone away; the outcome is still recorded.
	if err := p.save(context.WithoutCancel(ctx), session); err != nil {
		return nil, err
	}
	return session, nil
}

func (p *PlannerService) ResetSession(ctx context.Context, id string) (*response_models.PlannerSession, error) {
	session, err := p.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Step = response_models.StepCollect
	session.Status = response_models.StatusIdle
	session.Preferences = request_models.DefaultPlannerState()
	session.Result = nil
	session.Error = ""
	if err := p.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (p *PlannerService) EmailItinerary(ctx context.Context, id, email string) error {
	session, err := p.load(ctx, id)
	if err != nil {
		return err
	}
	if session.Status != response_models.StatusSuccess || session.Result == nil {
		return utils.ErrNoItineraryToSend
	}
	if err := p.mail.SendItinerary(email, *session.Result); err != nil {
		return fmt.Errorf("send itinerary: %w", err)
	}
	return nil
}

func (p *PlannerService) load(ctx context.Context, id string) (*response_models.PlannerSession, error) {
	raw, ok, err := p.sessions.Get(ctx, plannerSessionPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("load planner session: %w", err)
	}
	if !ok {
		return nil, utils.ErrPlannerSessionNotFound
	}

	var session response_models.PlannerSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode planner session: %w", err)
	}
	return &session, nil
}

func (p *PlannerService) save(ctx context.Context, session *response_models.PlannerSession) error {
	session.UpdatedAt = p.now().UTC()
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode planner session: %w", err)
	}
	if err := p.sessions.Set(ctx, plannerSessionPrefix+session.ID, raw, p.ttl); err != nil {
		return fmt.Errorf("store planner session: %w", err)
	}
	return nil
}
