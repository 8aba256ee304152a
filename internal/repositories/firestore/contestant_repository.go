// Package firestore implements the document store repositories on Cloud Firestore.
package firestore

import (
	"context"
	"fmt"

	gcfirestore "cloud.google.com/go/firestore"
	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/repositories"
)

// ContestantRepository implements the repositories.ContestantRepository interface
type ContestantRepository struct {
	collection *gcfirestore.CollectionRef
	client     *gcfirestore.Client
}

// NewContestantRepository creates a new ContestantRepository
func NewContestantRepository(client *gcfirestore.Client) repositories.ContestantRepository {
	return &ContestantRepository{
		collection: client.Collection(repositories.ContestantsCollection),
		client:     client,
	}
}

// FindAll reads every contestant document. The document key is the contestant ID.
func (r *ContestantRepository) FindAll(ctx context.Context) ([]*models.Contestant, error) {
	docs, err := r.collection.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query contestants: %w", err)
	}

	contestants := make([]*models.Contestant, 0, len(docs))
	for _, doc := range docs {
		var c models.Contestant
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to decode contestant %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		contestants = append(contestants, &c)
	}

	repositories.SortContestants(contestants)
	return contestants, nil
}

// SeedMany writes contestants in one bulk writer session
func (r *ContestantRepository) SeedMany(ctx context.Context, contestants []*models.Contestant) error {
	if len(contestants) == 0 {
		return nil
	}

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*gcfirestore.BulkWriterJob, 0, len(contestants))
	for _, c := range contestants {
		job, err := bw.Set(r.collection.Doc(c.ID), c)
		if err != nil {
			bw.End()
			return fmt.Errorf("failed to queue contestant %s: %w", c.ID, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return fmt.Errorf("failed to seed contestant %s: %w", contestants[i].ID, err)
		}
	}
	return nil
}
