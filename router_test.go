package qhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func routeBody(t *testing.T, path string) (int, string) {
	t.Helper()
	w := httptest.NewRecorder()
	NewRouter(DefaultRoutes).ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	res := w.Result()
	defer res.Body.Close()
	return res.StatusCode, w.Body.String()
}

func TestRouterKnownPaths(t *testing.T) {
	for path, want := range DefaultRoutes {
		status, body := routeBody(t, path)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, want, body, path)
	}
}

// Unmatched paths answer 200 with a textual not-found body. That is the
// contract of this demo, pinned here on purpose.
func TestRouterUnknownPathAnswers200(t *testing.T) {
	status, body := routeBody(t, "/unknown")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, notFoundBody, body)
}

func TestRouterMatchingIsExact(t *testing.T) {
	for _, path := range []string{"/test/", "/TEST", "/tes", "/test/x", "/Health"} {
		_, body := routeBody(t, path)
		assert.Equal(t, notFoundBody, body, path)
	}
}
