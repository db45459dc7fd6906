package qhttp

import (
	"bufio"
	"context"
	"fmt"
	"net/http"

	"github.com/quic-go/quic-go"
	"github.com/ridge/qhttp/tlog"
	"go.uber.org/zap"
)

// stream error code used when abandoning a stream whose request could not be
// resolved
const errCodeBadRequest quic.StreamErrorCode = 1

// exchange handles a single request stream end to end: resolve the request,
// dispatch it through the handler, write the response, finish the stream
type exchange struct {
	stream  quic.Stream
	handler http.Handler
}

func newExchange(stream quic.Stream, handler http.Handler) *exchange {
	return &exchange{
		stream:  stream,
		handler: handler,
	}
}

// run never returns an error. The exchange is an isolation boundary:
// failures, including panics, terminate this exchange only and are logged
// here; the owning session and sibling exchanges continue unaffected.
func (e *exchange) run(ctx context.Context) error {
	ctx = tlog.With(ctx, zap.Int64("stream", int64(e.stream.StreamID())))
	if err := runTask(ctx, e.serve); err != nil && ctx.Err() == nil {
		tlog.Get(ctx).Warn("Exchange failed", zap.Error(err))
	}
	return nil
}

func (e *exchange) serve(ctx context.Context) error {
	req, err := http.ReadRequest(bufio.NewReader(e.stream))
	if err != nil {
		// The stream is abandoned without a response, best-effort.
		e.stream.CancelWrite(errCodeBadRequest)
		return fmt.Errorf("resolving request: %w", err)
	}
	req = req.WithContext(ctx)

	tlog.Get(ctx).Debug("Request resolved",
		zap.String("path", req.URL.Path), zap.String("proto", req.Proto))

	w := newStreamWriter(e.stream)
	e.handler.ServeHTTP(w, req)
	if err := w.finish(); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}

	// Finish the server-to-client direction of the stream.
	if err := e.stream.Close(); err != nil {
		return fmt.Errorf("finishing stream: %w", err)
	}
	return nil
}
