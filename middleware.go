package qhttp

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/kevinpollet/nego"
	"github.com/ridge/qhttp/tlog"
	"go.uber.org/zap"
	"time"
)

// Wrap installs a number of middleware on an HTTP handler. The first
// middleware listed will be the first one to see the request.
func Wrap(handler http.Handler, mw ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}

// StandardMiddleware is a composition of typically used middleware, in the
// recommended order:
//
// 1. Log (log before and after the request)
// 2. Recover (catch and log panics, isolated to the exchange)
// 3. CORS (allow cross-origin requests)
// 4. Gzip (compress the response when the client asks for it)
func StandardMiddleware(next http.Handler) http.Handler {
	return Log(Recover(CORS(Gzip(next))))
}

// Log is a middleware that logs before and after handling of each request.
// Does not include logging of request and response bodies.
func Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ctx := tlog.With(r.Context(),
			zap.String("method", r.Method),
			zap.String("hostname", r.Host),
			zap.String("url", r.URL.String()),
		)
		logger := tlog.Get(ctx)
		logger.Debug("Request handling started")
		var status int
		next.ServeHTTP(captureStatus{ResponseWriter: w, status: &status}, r.WithContext(ctx))
		logger.Debug("Request handling ended",
			zap.Int("statusCode", status), zap.Duration("elapsed", time.Since(started)))
	})
}

// Recover is a middleware that catches panics from request handlers.
//
// A panic terminates only the exchange it happened in: it is logged, the
// client gets a 500 if nothing has been written yet, and the owning session
// and sibling exchanges continue unaffected.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := runTask(r.Context(), func(ctx context.Context) error {
			next.ServeHTTP(w, r)
			return nil
		})
		if err != nil {
			tlog.Get(r.Context()).Error("Request handler panicked", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

// CORS is a middleware that allows cross-origin requests
var CORS = handlers.CORS(
	handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
	handlers.AllowedOrigins([]string{"*"}),
)

// Gzip is a middleware that compresses the response body if the request asks
// for gzip Content-Encoding
func Gzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// nego.NegotiateContentEncoding(r, "gzip") returns "gzip" even
		// if there is no "Accept-Encoding" header. Guard against it.
		if r.Header.Get("Accept-Encoding") == "" || nego.NegotiateContentEncoding(r, "gzip") != "gzip" {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		gz := gzip.NewWriter(w)
		defer func() {
			if err := gz.Close(); err != nil {
				tlog.Get(r.Context()).Warn("Compressing response failed", zap.Error(err))
			}
		}()
		next.ServeHTTP(gzipResponseWriter{ResponseWriter: w, compressor: gz}, r)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	compressor io.Writer
}

func (g gzipResponseWriter) Write(p []byte) (int, error) {
	return g.compressor.Write(p)
}

// captureStatus wraps an http.ResponseWriter to capture the response status
// code into *status
type captureStatus struct {
	http.ResponseWriter
	status *int
}

func (cs captureStatus) Write(b []byte) (int, error) {
	if *cs.status == 0 {
		*cs.status = http.StatusOK
	}
	return cs.ResponseWriter.Write(b)
}

func (cs captureStatus) WriteHeader(statusCode int) {
	*cs.status = statusCode
	cs.ResponseWriter.WriteHeader(statusCode)
}
