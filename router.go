package qhttp

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

// Routes is the static route table mapping exact request paths to literal
// response bodies. It is read-only after startup.
type Routes map[string]string

// DefaultRoutes is the route table served by the demo server
var DefaultRoutes = Routes{
	"/":       "Hello from http3 server",
	"/test":   "Hello from http3 test endpoint",
	"/health": "hello from http3 health check",
}

// notFoundBody is served for any path outside the route table
const notFoundBody = "404 Not Found"

// NewRouter builds the request router for a route table.
//
// Matching is exact: no prefix matching, no trailing-slash normalization, no
// case folding. Unmatched paths answer status 200 with a textual not-found
// body; that status/body combination is the contract of this demo, kept
// as observed in the original behavior.
func NewRouter(routes Routes) http.Handler {
	router := mux.NewRouter()
	for path, body := range routes {
		router.HandleFunc(path, textHandler(body))
	}
	router.NotFoundHandler = textHandler(notFoundBody)
	return router
}

func textHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, body)
	}
}
