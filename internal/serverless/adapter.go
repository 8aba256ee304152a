package serverless

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/smallie-ng/smallie-web/internal/config"
	"github.com/smallie-ng/smallie-web/internal/templates"
	"go.uber.org/zap"
)

// Loader builds the application. It runs at most once per process.
type Loader func(ctx context.Context) (Application, error)

// Adapter serves platform requests through a lazily loaded Application.
// It never returns an error or panics to the platform.
type Adapter struct {
	loader Loader
	logger *zap.Logger

	once    sync.Once
	app     Application
	loadErr error
}

// New creates a new Adapter
func New(loader Loader, logger *zap.Logger) *Adapter {
	return &Adapter{
		loader: loader,
		logger: logger,
	}
}

type errorPayload struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Traceback string `json:"traceback"`
}

// Invoke serves req through the application
func (a *Adapter) Invoke(ctx context.Context, req *Request, conv Convention) (resp *Response) {
	app, err := a.load(ctx)
	if err != nil {
		return a.degraded(req, err)
	}

	defer func() {
		if r := recover(); r != nil {
			resp = a.failure(fmt.Errorf("panic: %v", r), debug.Stack())
		}
	}()

	var (
		status  string
		headers []Header
		started bool
	)
	start := func(s string, h []Header) {
		status, headers, started = s, h, true
	}

	chunks, err := app.Call(ctx, NewEnviron(req, conv), bytes.NewReader(req.Body), start)
	if err != nil {
		return a.failure(err, debug.Stack())
	}
	if !started {
		return a.failure(errors.New("application returned without starting a response"), nil)
	}

	resp, err = newResponse(status, headers, chunks)
	if err != nil {
		return a.failure(err, nil)
	}
	return resp
}

// HandleEvent is the entry point for the structured event convention
func (a *Adapter) HandleEvent(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := FromEvent(ev)
	if err != nil {
		return a.failure(err, nil).ToEvent(), nil
	}
	return a.Invoke(ctx, req, ConventionEvent).ToEvent(), nil
}

// ServeHTTP is the entry point for the socket convention
func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resp *Response
	req, err := FromHTTP(r)
	if err != nil {
		resp = a.failure(err, nil)
	} else {
		resp = a.Invoke(r.Context(), req, ConventionSocket)
	}
	if err := resp.Write(w); err != nil {
		a.logger.Warn("Failed to write response", zap.Error(err))
	}
}

func (a *Adapter) load(ctx context.Context) (Application, error) {
	a.once.Do(func() {
		a.app, a.loadErr = a.safeLoad(ctx)
		if a.loadErr != nil {
			a.logger.Error("Application failed to load, serving degraded page", zap.Error(a.loadErr))
		}
	})
	return a.app, a.loadErr
}

func (a *Adapter) safeLoad(ctx context.Context) (app Application, err error) {
	defer func() {
		if r := recover(); r != nil {
			app, err = nil, fmt.Errorf("panic while loading application: %v", r)
		}
	}()

	app, err = a.loader(ctx)
	if err == nil && app == nil {
		err = errors.New("loader returned no application")
	}
	return app, err
}

// failure logs err and returns the machine-readable 500 payload
func (a *Adapter) failure(err error, stack []byte) *Response {
	a.logger.Error("Serverless invocation failed", zap.Error(err), zap.ByteString("stack", stack))

	body, mErr := json.Marshal(errorPayload{
		Status:    "error",
		Message:   err.Error(),
		Traceback: string(stack),
	})
	if mErr != nil {
		body = []byte(`{"status":"error","message":"internal error","traceback":""}`)
	}

	return &Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

// degraded renders the informational page served while the application cannot load
func (a *Adapter) degraded(req *Request, cause error) *Response {
	creds := config.LoadCredentials()
	status := templates.DegradedStatus{
		Path:                 orDefault(req.Path, defaultPath),
		ProjectID:            creds.FirebaseProjectID,
		AppIDAvailable:       creds.FirebaseAppID != "",
		APIKeyAvailable:      creds.FirebaseAPIKey != "",
		CredentialsAvailable: config.IsSet("FIREBASE_CREDENTIALS"),
		Reason:               cause.Error(),
	}

	var page bytes.Buffer
	if err := templates.RenderDegraded(&page, status); err != nil {
		return a.failure(fmt.Errorf("failed to render degraded page: %w", err), nil)
	}

	return &Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "text/html; charset=utf-8"},
		Body:       page.String(),
	}
}
