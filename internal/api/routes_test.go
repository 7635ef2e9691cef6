package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildsafari/internal/api/controllers"
	"wildsafari/internal/config"
	"wildsafari/internal/repositories"
	"wildsafari/internal/services"
	mem "wildsafari/pkg/memcache"
	"wildsafari/pkg/utils"
)

var testSecret = []byte("route-test-secret")

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) GenerateItinerary(context.Context, string) (string, error) {
	return s.text, s.err
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T, gen utils.ItineraryGenerator) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := repositories.NewMemoryStore(repositories.DefaultSeed())
	mail := services.NewMailService(config.MailConfig{}, log)
	notifier := services.NewLogNotifier(log)
	settings := services.NewSettingsService(store, log)
	recommender := services.NewRecommendationService(store, store, utils.NewHashEmbeddingClient(32), log)

	ctl := Controllers{
		Account: controllers.NewAccountController(services.NewAccountService(store, services.AccountOptions{
			JWTSecret: testSecret, TokenTTL: time.Hour, DemoAuth: true,
		}, log)),
		Catalog:  controllers.NewCatalogController(services.NewTourService(store, store), services.NewDestinationService(store, store)),
		Booking:  controllers.NewBookingController(services.NewBookingService(store, store, store, mail, notifier, log)),
		Story:    controllers.NewStoryController(services.NewStoryService(store, store)),
		Inbox:    controllers.NewInboxController(services.NewInboxService(store, store, mail, notifier, log)),
		Settings: controllers.NewSettingsController(settings),
		Dashboard: controllers.NewDashboardController(
			services.NewDashboardService(store, store, store, store, store, store, store),
			services.NewExportService(store, store, store, store, store, store, store),
		),
		Planner: controllers.NewPlannerController(services.NewPlannerService(gen, recommender, mem.NewMemorySessions(), mail, time.Hour, log)),
	}

	r := gin.New()
	RegisterRoutes(r, ctl, Guards{JWTSecret: testSecret, Maintenance: settings})
	return &testServer{t: t, engine: r}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *testServer) login(email string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/accounts/demo-login", "", gin.H{"email": email})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	decode(s.t, w, &resp)
	return resp.Token
}

func TestPublicCatalog(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "# Trip"})

	w := s.do(http.MethodGet, "/tours?sort=-price", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tours []struct {
		ID string `json:"id"`
	}
	env := decode(t, w, &tours)
	assert.Equal(t, "success", env.Status)
	require.Len(t, tours, 3)
	assert.Equal(t, "1", tours[0].ID)

	w = s.do(http.MethodGet, "/tours/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/destinations/volcanoes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Name  string `json:"name"`
		Tours []struct {
			ID string `json:"id"`
		} `json:"tours"`
	}
	decode(t, w, &detail)
	assert.Equal(t, "Volcanoes National Park", detail.Name)
	assert.Len(t, detail.Tours, 1)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "# Trip"})

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/admin/dashboard", "", nil).Code)

	user := s.login("traveler@x.com")
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/admin/dashboard", user, nil).Code)

	admin := s.login("boss-admin@x.com")
	w := s.do(http.MethodGet, "/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var overview struct {
		Counts struct {
			Users int `json:"users"`
		} `json:"counts"`
	}
	decode(t, w, &overview)
	assert.Equal(t, 4, overview.Counts.Users)
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "# Trip"})
	user := s.login("new@x.com")

	w := s.do(http.MethodPost, "/bookings", user, gin.H{"tour_id": "1", "date": "2025-07-01", "travelers": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var booking struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		TotalPrice string `json:"total_price"`
	}
	decode(t, w, &booking)
	assert.Equal(t, "pending", booking.Status)
	assert.Equal(t, "$3,000", booking.TotalPrice)

	w = s.do(http.MethodPost, "/bookings", user, gin.H{"tour_id": "1", "date": "next week", "travelers": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	admin := s.login("admin@wildlifesafari.rw")
	w = s.do(http.MethodPatch, "/admin/bookings/"+booking.ID+"/status", admin, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(http.MethodPatch, "/admin/bookings/"+booking.ID+"/status", admin, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/bookings/me", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []struct {
		Status string `json:"status"`
	}
	decode(t, w, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, "confirmed", mine[0].Status)
}

func TestExportEndpoint(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "# Trip"})
	admin := s.login("admin@wildlifesafari.rw")

	w := s.do(http.MethodGet, "/admin/export/bookings", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="bookings_`))
	assert.True(t, strings.HasPrefix(w.Body.String(), "id,created_at,updated_at,tour_id"))

	w = s.do(http.MethodGet, "/admin/export/secrets", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/admin/newsletters/n1", admin, nil).Code)
	w = s.do(http.MethodGet, "/admin/export/newsletters", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No data available to export.", decode(t, w, nil).Message)
}

func TestMaintenanceClosesPublicWrites(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "# Trip"})
	admin := s.login("admin@wildlifesafari.rw")
	contact := gin.H{"name": "Eric", "email": "eric@x.com", "subject": "Hi", "message": "Hello"}

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/contact", "", contact).Code)

	w := s.do(http.MethodPut, "/admin/settings", admin, gin.H{"site_name": "Wildlife Safari Rwanda", "maintenance_mode": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, http.StatusServiceUnavailable, s.do(http.MethodPost, "/contact", "", contact).Code)
	assert.Equal(t, http.StatusServiceUnavailable, s.do(http.MethodPost, "/newsletter", "", gin.H{"email": "a@b.com"}).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/tours", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/admin/messages", admin, nil).Code)
}

func TestNewsletterIsIdempotent(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "# Trip"})

	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/newsletter", "", gin.H{"email": "Fan@x.com"}).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/newsletter", "", gin.H{"email": "fan@x.com"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/newsletter", "", gin.H{"email": "nope"}).Code)
}

func TestAdminReplyToMessage(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "# Trip"})
	admin := s.login("admin@wildlifesafari.rw")

	w := s.do(http.MethodPost, "/admin/messages/m1/reply", admin, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/admin/messages/m1/reply", admin, gin.H{"body": "Yes, families get 10% off."})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var messages []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &messages)
	require.Len(t, messages, 1)
	assert.Equal(t, "replied", messages[0].Status)

	w = s.do(http.MethodPost, "/admin/messages/nope/reply", admin, gin.H{"body": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlannerSessionOverHTTP(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "# Gorillas and Lakes\n\n- Day 1"})

	w := s.do(http.MethodPost, "/planner/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var session struct {
		ID     string `json:"id"`
		Step   int    `json:"step"`
		Status string `json:"status"`
		Result *struct {
			Title           string            `json:"title"`
			HTML            string            `json:"html"`
			Recommendations []json.RawMessage `json:"recommendations"`
		} `json:"result"`
	}
	decode(t, w, &session)
	base := "/planner/sessions/" + session.ID

	w = s.do(http.MethodPut, base+"/preferences", "", gin.H{"budget": "Luxury", "days": 2, "travelers": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(http.MethodPut, base+"/preferences", "", gin.H{"budget": "Luxury", "days": 5, "travelers": 11})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, base+"/preferences", "", gin.H{
		"budget": "Luxury", "days": 5, "travelers": 2, "interests": []string{"Gorilla Trekking"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, base+"/generate", "", nil).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, base+"/review", "", nil).Code)

	w = s.do(http.MethodPost, base+"/generate", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &session)
	assert.Equal(t, 3, session.Step)
	assert.Equal(t, "SUCCESS", session.Status)
	require.NotNil(t, session.Result)
	assert.Equal(t, "Gorillas and Lakes", session.Result.Title)
	assert.Contains(t, session.Result.HTML, "<li>Day 1</li>")
	assert.Len(t, session.Result.Recommendations, 3)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/planner/sessions/unknown", "", nil).Code)
}

func TestStatelessPlannerErrors(t *testing.T) {
	missing := newTestServer(t, utils.NewGenerationClient("gemini", "", nil, utils.DefaultGenerationParams, nil))
	body := gin.H{"budget": "Moderate", "days": 7, "travelers": 2}

	w := missing.do(http.MethodPost, "/planner/itinerary", "", body)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	failing := newTestServer(t, stubGenerator{err: utils.ErrGenerationFailed})
	w = failing.do(http.MethodPost, "/planner/itinerary", "", body)
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = failing.do(http.MethodPost, "/planner/itinerary", "", gin.H{"budget": "Cheap", "days": 7, "travelers": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
