package qhttp

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/ridge/parallel"
	"github.com/ridge/qhttp/tlog"
	"github.com/ridge/qhttp/tquic"
	"go.uber.org/zap"
)

// Server accepts QUIC connections and serves request streams on them
type Server struct {
	listener *tquic.Listener
	handler  http.Handler
}

// NewServer creates a Server
func NewServer(listener *tquic.Listener, handler http.Handler) *Server {
	return &Server{
		listener: listener,
		handler:  handler,
	}
}

// ListenAddr returns the local address of the server's listener
func (s *Server) ListenAddr() net.Addr {
	return s.listener.Addr()
}

// Run accepts connections until the context is closed.
//
// Every accepted connection is handed to its own session task immediately;
// the accept loop never waits for a session, and a failing session never
// affects the loop or its sibling sessions. The transport surfaces a
// connection only after the handshake has completed, so failed connection
// attempts never reach this loop at all.
func (s *Server) Run(ctx context.Context) error {
	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("accept", parallel.Fail, func(ctx context.Context) error {
			defer s.listener.Close()

			ctx = tlog.With(ctx, zap.Stringer("server", s.listener.Addr()))
			tlog.Get(ctx).Info("Serving requests")
			for n := 0; ; n++ {
				conn, err := s.listener.Accept(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					return fmt.Errorf("accepting connection: %w", err)
				}
				sess := newSession(conn, s.handler)
				spawn(fmt.Sprintf("session-%d", n), parallel.Continue, sess.run)
			}
		})
		return nil
	})
}
