// Package app wires configuration, the document store, services and the
// router into a servable application shared by every entry point.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smallie-ng/smallie-web/api/routes"
	"github.com/smallie-ng/smallie-web/internal/config"
	"github.com/smallie-ng/smallie-web/internal/credentials"
	"github.com/smallie-ng/smallie-web/internal/handlers"
	"github.com/smallie-ng/smallie-web/internal/repositories"
	firestorerepo "github.com/smallie-ng/smallie-web/internal/repositories/firestore"
	mongorepo "github.com/smallie-ng/smallie-web/internal/repositories/mongodb"
	"github.com/smallie-ng/smallie-web/internal/services"
	"github.com/smallie-ng/smallie-web/pkg/firestore"
	"github.com/smallie-ng/smallie-web/pkg/mongodb"
	"github.com/smallie-ng/smallie-web/pkg/session"
	"go.uber.org/zap"
)

// App is a fully wired application
type App struct {
	Router  http.Handler
	closers []io.Closer
}

// Store holds the repositories backing the data provider. Nil repositories
// mean the built-in data is served.
type Store struct {
	Contestants repositories.ContestantRepository
	Tasks       repositories.TaskRepository
	closer      io.Closer
}

// Close releases the underlying client, if any
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// ErrNoStore is returned by OpenStore for the memory driver
var ErrNoStore = errors.New("no document store configured")

// New builds the application. Document store failures are logged and the
// application falls back to built-in data; only invalid configuration fails.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	logStartup(cfg, logger)

	start, end, err := cfg.Competition.Window()
	if err != nil {
		return nil, err
	}
	sessions, err := session.NewManager(cfg.Session.Secret, time.Duration(cfg.Session.MaxAge)*time.Second)
	if err != nil {
		return nil, err
	}

	st, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		if errors.Is(err, ErrNoStore) {
			logger.Info("Using built-in data, no document store configured")
		} else {
			logger.Error("Error initializing document store, using built-in data", zap.Error(err))
		}
		st = &Store{}
	}

	contestantService := services.NewContestantService(st.Contestants, logger)
	taskService := services.NewTaskService(st.Tasks, logger)
	taskService.SeedTasks(ctx)
	viewService := services.NewViewService(contestantService, taskService, services.NewCompetitionWindow(start, end))

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		PageHandler:   handlers.NewPageHandler(viewService, logger),
		HealthHandler: handlers.NewHealthHandler(),
		Sessions:      sessions,
		Logger:        logger,
	})

	return &App{Router: router, closers: []io.Closer{st}}, nil
}

// Close releases the document store client
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenStore connects to the configured document store
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return nil, ErrNoStore
	case config.DriverMongoDB:
		st, err := openMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("MongoDB initialized successfully", zap.String("database", cfg.MongoDB.Database))
		return st, nil
	default:
		st, err := openFirestore(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("firebase: %w", err)
		}
		return st, nil
	}
}

func openFirestore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	if cfg.Firebase.Credentials == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS is not set")
	}
	creds, format, err := credentials.Decode(cfg.Firebase.Credentials, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Parsed Firebase credentials", zap.Stringer("format", format))

	client, err := firestore.NewClient(ctx, cfg.Firebase.ProjectID, creds)
	if err != nil {
		return nil, err
	}
	logger.Info("Firebase initialized successfully", zap.String("project_id", client.ProjectID()))
	return &Store{
		Contestants: firestorerepo.NewContestantRepository(client.Firestore()),
		Tasks:       firestorerepo.NewTaskRepository(client.Firestore()),
		closer:      client,
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
	if err != nil {
		return nil, fmt.Errorf("mongodb: %w", err)
	}
	db := client.Database(cfg.MongoDB.Database)
	return &Store{
		Contestants: mongorepo.NewContestantRepository(db),
		Tasks:       mongorepo.NewTaskRepository(db),
		closer:      client,
	}, nil
}

// logStartup reports which client credentials are available without their values
func logStartup(cfg *config.Config, logger *zap.Logger) {
	creds := config.LoadCredentials()
	logger.Info("Starting Smallie",
		zap.String("firebase_project_id", orNotSet(creds.FirebaseProjectID)),
		zap.Bool("firebase_app_id_available", creds.FirebaseAppID != ""),
		zap.Bool("firebase_api_key_available", creds.FirebaseAPIKey != ""),
		zap.String("store", cfg.Store.Driver),
	)
	if cfg.Vercel {
		logger.Info("Running in Vercel deployment mode")
	}
}

func orNotSet(v string) string {
	if v == "" {
		return "Not Set"
	}
	return v
}
