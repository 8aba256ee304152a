// Package firestore wraps the Cloud Firestore client the way pkg/mongodb wraps
// the MongoDB driver: one constructor taking credentials, one accessor.
package firestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	gcfirestore "cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// ErrNoProjectID is returned when neither the config nor the service account names a project
var ErrNoProjectID = errors.New("firestore project id is not set")

// Client represents a Firestore client
type Client struct {
	client    *gcfirestore.Client
	projectID string
}

// NewClient creates a Firestore client from service-account JSON.
// An empty projectID falls back to the project_id field of the credentials.
func NewClient(ctx context.Context, projectID string, credentialsJSON []byte) (*Client, error) {
	if projectID == "" {
		projectID = projectIDFromCredentials(credentialsJSON)
	}
	if projectID == "" {
		return nil, ErrNoProjectID
	}

	client, err := gcfirestore.NewClient(ctx, projectID, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &Client{
		client:    client,
		projectID: projectID,
	}, nil
}

// Firestore returns the underlying client
func (c *Client) Firestore() *gcfirestore.Client {
	return c.client
}

// ProjectID returns the project the client is bound to
func (c *Client) ProjectID() string {
	return c.projectID
}

// Close closes the client
func (c *Client) Close() error {
	return c.client.Close()
}

func projectIDFromCredentials(credentialsJSON []byte) string {
	var sa struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(credentialsJSON, &sa); err != nil {
		return ""
	}
	return sa.ProjectID
}
