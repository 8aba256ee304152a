package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubViews struct {
	home  *models.HomeView
	admin *models.AdminView
	at    time.Time
}

func (s *stubViews) BuildHomeView(_ context.Context, now time.Time) *models.HomeView {
	s.at = now
	return s.home
}

func (s *stubViews) BuildAdminView() *models.AdminView {
	return s.admin
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(templates.Pages())
	return r
}

func TestPageHandler_Home(t *testing.T) {
	views := &stubViews{home: &models.HomeView{
		CurrentDay: 3,
		DailyTask:  &models.DailyTask{Day: 3, Title: "Nollywood Skit Showdown"},
		Contestants: []*models.Contestant{
			{ID: "1", Name: "Adebola Johnson"},
		},
	}}
	fixed := time.Date(2025, 4, 17, 12, 0, 0, 0, time.UTC)
	h := NewPageHandler(views, zaptest.NewLogger(t))
	h.now = func() time.Time { return fixed }

	r := newEngine()
	r.GET("/", h.Home)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Nollywood Skit Showdown")
	assert.Contains(t, w.Body.String(), "Adebola Johnson")
	assert.True(t, views.at.Equal(fixed))
}

func TestPageHandler_Admin(t *testing.T) {
	views := &stubViews{admin: &models.AdminView{Credentials: models.Credentials{FirebaseProjectID: "smallie-prod"}}}
	h := NewPageHandler(views, zaptest.NewLogger(t))

	r := newEngine()
	r.GET("/admin", h.Admin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Firebase Project ID: smallie-prod")
}

func TestHealthHandler_Check(t *testing.T) {
	h := NewHealthHandler()
	h.now = func() time.Time { return time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC) }

	r := newEngine()
	r.GET("/api/health", h.Check)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "2025-04-15T09:00:00Z", body["timestamp"])
}
