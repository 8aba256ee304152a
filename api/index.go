package handler

import (
	"net/http"
	"sync"

	"github.com/smallie-ng/smallie-web/internal/app"
	"github.com/smallie-ng/smallie-web/internal/logging"
	"github.com/smallie-ng/smallie-web/internal/serverless"
)

var (
	adapter *serverless.Adapter
	once    sync.Once
)

func setup() {
	adapter = app.NewAdapter(logging.FromEnv())
}

// Handler is the Vercel Go runtime entry point. Every path is rewritten here.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	adapter.ServeHTTP(w, r)
}
