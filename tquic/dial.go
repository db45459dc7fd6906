package tquic

import (
	"context"
	"crypto/tls"

	"github.com/quic-go/quic-go"
)

// NoError is the application error code used for orderly connection close
const NoError quic.ApplicationErrorCode = 0

// Dial establishes a QUIC connection to the given UDP address. It returns
// once the handshake, including application-protocol negotiation, has
// completed.
func Dial(ctx context.Context, address string, tlsConf *tls.Config) (quic.Connection, error) {
	return quic.DialAddr(ctx, address, tlsConf, config)
}
