package tquic

import (
	"context"
	"crypto/tls"
	"net"

	"github.com/quic-go/quic-go"
	"github.com/ridge/must/v2"
	"time"
)

var config = &quic.Config{
	MaxIdleTimeout:  5 * time.Minute,
	KeepAlivePeriod: 15 * time.Second,
}

// Listener accepts inbound QUIC connections.
//
// Accept yields only fully established connections: the transport completes
// the handshake (including ALPN) before surfacing a connection, so a failed
// attempt never reaches the caller and never disturbs the accept loop.
type Listener struct {
	ql *quic.Listener
}

// Listen installs a QUIC listener on the specified UDP address
func Listen(address string, tlsConf *tls.Config) (*Listener, error) {
	ql, err := quic.ListenAddr(address, tlsConf, config)
	if err != nil {
		return nil, err
	}
	return &Listener{ql: ql}, nil
}

// ListenOnRandomPort selects a random local UDP port and installs a listener
// on it
func ListenOnRandomPort(tlsConf *tls.Config) *Listener {
	return must.OK1(Listen("127.0.0.1:0", tlsConf))
}

// Accept returns the next established connection. It blocks until one is
// available, the listener is closed, or the context is closed.
func (l *Listener) Accept(ctx context.Context) (quic.Connection, error) {
	return l.ql.Accept(ctx)
}

// Addr returns the local address the listener is bound to
func (l *Listener) Addr() net.Addr {
	return l.ql.Addr()
}

// Close closes the listener. Established connections are not affected.
func (l *Listener) Close() error {
	return l.ql.Close()
}
