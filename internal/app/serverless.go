package app

import (
	"context"
	"fmt"

	"github.com/smallie-ng/smallie-web/internal/config"
	"github.com/smallie-ng/smallie-web/internal/serverless"
	"go.uber.org/zap"
)

// Loader builds the application from the environment for the serverless
// entry points. The store client outlives the request that triggered the load.
func Loader(logger *zap.Logger) serverless.Loader {
	return func(ctx context.Context) (serverless.Application, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}

		a, err := New(context.WithoutCancel(ctx), cfg, logger)
		if err != nil {
			return nil, err
		}
		return serverless.NewHandlerApplication(a.Router), nil
	}
}

// NewAdapter creates the serverless adapter shared by the Vercel and Lambda entry points
func NewAdapter(logger *zap.Logger) *serverless.Adapter {
	return serverless.New(Loader(logger), logger)
}
