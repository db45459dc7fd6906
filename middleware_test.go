package qhttp

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ridge/qhttp/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzipNegotiated(t *testing.T) {
	handler := Gzip(textHandler("hello"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r.WithContext(test.Context(t)))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, "gzip", res.Header.Get("Content-Encoding"))

	gz, err := gzip.NewReader(res.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestGzipSkippedWithoutAcceptEncoding(t *testing.T) {
	handler := Gzip(textHandler("hello"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(test.Context(t)))

	res := w.Result()
	defer res.Body.Close()
	assert.Empty(t, res.Header.Get("Content-Encoding"))
	assert.Equal(t, "hello", w.Body.String())
}

func TestRecoverAnswers500(t *testing.T) {
	handler := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	// Does not panic through, answers 500.
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(test.Context(t)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogCapturesStatus(t *testing.T) {
	handler := Log(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(test.Context(t)))
	assert.Equal(t, http.StatusTeapot, w.Code)
}
