package services

import (
	"context"

	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/repositories"
	"go.uber.org/zap"
)

// ContestantService supplies contestant records, preferring the document store
// and falling back to the built-in table
type ContestantService struct {
	contestantRepo repositories.ContestantRepository
	logger         *zap.Logger
}

// NewContestantService creates a new ContestantService. A nil repository runs
// the service on fallback data only.
func NewContestantService(contestantRepo repositories.ContestantRepository, logger *zap.Logger) *ContestantService {
	return &ContestantService{
		contestantRepo: contestantRepo,
		logger:         logger.Named("contestants"),
	}
}

// ListContestants never fails: store errors and empty stores yield the fallback table.
// An empty but reachable store is seeded with the fallback table once.
func (s *ContestantService) ListContestants(ctx context.Context) []*models.Contestant {
	if s.contestantRepo == nil {
		return FallbackContestants()
	}

	contestants, err := s.contestantRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Error loading contestants from document store", zap.Error(err))
		return FallbackContestants()
	}
	if len(contestants) > 0 {
		s.logger.Debug("Loaded contestants from document store", zap.Int("count", len(contestants)))
		return contestants
	}

	fallback := FallbackContestants()
	if err := s.contestantRepo.SeedMany(ctx, fallback); err != nil {
		s.logger.Error("Error seeding contestants", zap.Error(err))
	} else {
		s.logger.Info("Initialized contestants in document store", zap.Int("count", len(fallback)))
	}
	return fallback
}
