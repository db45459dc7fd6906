package qhttp

import (
	"bufio"
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseResponse(t *testing.T, raw *bytes.Buffer) (*http.Response, string) {
	t.Helper()
	resp, err := http.ReadResponse(bufio.NewReader(raw), nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	w := newStreamWriter(&buf)
	w.Header().Set("Content-Type", "text/plain")
	_, err := io.WriteString(w, "hello")
	require.NoError(t, err)
	require.NoError(t, w.finish())

	resp, body := parseResponse(t, &buf)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "hello", body)
}

func TestStreamWriterExplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	w := newStreamWriter(&buf)
	w.WriteHeader(http.StatusInternalServerError)
	w.WriteHeader(http.StatusOK) // repeated calls have no effect
	require.NoError(t, w.finish())

	resp, body := parseResponse(t, &buf)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, body)
}

func TestStreamWriterEmptyResponse(t *testing.T) {
	var buf bytes.Buffer
	w := newStreamWriter(&buf)
	require.NoError(t, w.finish())

	resp, body := parseResponse(t, &buf)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestStreamWriterStickyError(t *testing.T) {
	w := newStreamWriter(failingWriter{})
	// Writes go through the buffer; the error surfaces on finish.
	_, _ = io.WriteString(w, "hello")
	assert.Error(t, w.finish())
}
