package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallie-ng/smallie-web/internal/services"
	"github.com/smallie-ng/smallie-web/internal/templates"
	"go.uber.org/zap"
)

// PageHandler handles the HTML pages
type PageHandler struct {
	views  services.HomeViewBuilder
	logger *zap.Logger
	now    func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(views services.HomeViewBuilder, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		views:  views,
		logger: logger,
		now:    time.Now,
	}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	view := h.views.BuildHomeView(c.Request.Context(), h.now())
	h.logger.Debug("Rendering home page",
		zap.Int("day", view.CurrentDay),
		zap.Int("contestants", len(view.Contestants)),
	)
	c.HTML(http.StatusOK, templates.IndexPage, view)
}

// Admin handles GET /admin
func (h *PageHandler) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, templates.AdminPage, h.views.BuildAdminView())
}
