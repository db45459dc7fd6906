package qhttp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quic-go/quic-go"
	"github.com/ridge/parallel"
	"github.com/ridge/qhttp/tlog"
	"github.com/ridge/qhttp/tquic"
	"github.com/ridge/qhttp/ttls"
	"go.uber.org/zap"
)

// application error code used when tearing down a failed session
const errCodeSessionFailure quic.ApplicationErrorCode = 1

// session owns one connection: it verifies the negotiated application
// protocol, then turns every inbound stream into an independent exchange
type session struct {
	conn    quic.Connection
	handler http.Handler
}

func newSession(conn quic.Connection, handler http.Handler) *session {
	return &session{
		conn:    conn,
		handler: handler,
	}
}

// run never returns an error. The session is an isolation boundary: failures,
// including panics, terminate this session only and are logged here.
func (s *session) run(ctx context.Context) error {
	ctx = tlog.With(ctx, zap.Stringer("remoteAddr", s.conn.RemoteAddr()))
	if err := runTask(ctx, s.serve); err != nil && ctx.Err() == nil {
		tlog.Get(ctx).Warn("Session terminated", zap.Error(err))
		_ = s.conn.CloseWithError(errCodeSessionFailure, "session failure")
	}
	return nil
}

func (s *session) serve(ctx context.Context) error {
	logger := tlog.Get(ctx)

	proto := s.conn.ConnectionState().TLS.NegotiatedProtocol
	if proto != ttls.Proto {
		return fmt.Errorf("unexpected application protocol %q", proto)
	}
	logger.Info("Connection established", zap.String("proto", proto))

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("streams", parallel.Exit, func(ctx context.Context) error {
			for n := 0; ; n++ {
				stream, err := s.conn.AcceptStream(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					if err := tquic.StripClosedByPeerError(err); err != nil {
						return fmt.Errorf("accepting stream: %w", err)
					}
					logger.Info("Connection closed by peer")
					return nil
				}
				e := newExchange(stream, s.handler)
				spawn(fmt.Sprintf("exchange-%d", n), parallel.Continue, e.run)
			}
		})
		return nil
	})
}
