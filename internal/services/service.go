package services

import (
	"context"
	"time"

	"github.com/smallie-ng/smallie-web/internal/models"
)

// HomeViewBuilder defines the page-context operations the HTTP layer depends on
type HomeViewBuilder interface {
	// BuildHomeView assembles the homepage context for the given instant
	BuildHomeView(ctx context.Context, now time.Time) *models.HomeView

	// BuildAdminView assembles the admin dashboard context
	BuildAdminView() *models.AdminView
}

var _ HomeViewBuilder = (*ViewService)(nil)
