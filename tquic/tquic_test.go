package tquic

import (
	"errors"
	"testing"

	"github.com/quic-go/quic-go"
	"github.com/ridge/must/v2"
	"github.com/ridge/qhttp/test"
	"github.com/ridge/qhttp/ttls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"time"
)

func TestIsClosedByPeer(t *testing.T) {
	assert.False(t, IsClosedByPeer(nil))
	assert.False(t, IsClosedByPeer(errors.New("boom")))
	assert.True(t, IsClosedByPeer(&quic.ApplicationError{Remote: true, ErrorCode: NoError}))
	assert.False(t, IsClosedByPeer(&quic.ApplicationError{Remote: true, ErrorCode: 1}))
	assert.False(t, IsClosedByPeer(&quic.ApplicationError{Remote: false, ErrorCode: NoError}))

	assert.NoError(t, StripClosedByPeerError(&quic.ApplicationError{Remote: true, ErrorCode: NoError}))
	assert.Error(t, StripClosedByPeerError(errors.New("boom")))
}

func TestListenDialClose(t *testing.T) {
	ctx := test.ContextWithTimeout(t, 10*time.Second)

	identity := must.OK1(ttls.NewIdentity())
	listener := ListenOnRandomPort(must.OK1(ttls.ServerConfig(identity)))
	defer listener.Close()

	type accepted struct {
		proto     string
		streamErr error
	}
	done := make(chan accepted, 1)
	go func() {
		conn, err := listener.Accept(ctx)
		if err != nil {
			done <- accepted{streamErr: err}
			return
		}
		// Blocks until the peer closes the connection.
		_, streamErr := conn.AcceptStream(ctx)
		done <- accepted{
			proto:     conn.ConnectionState().TLS.NegotiatedProtocol,
			streamErr: streamErr,
		}
	}()

	conn, err := Dial(ctx, listener.Addr().String(), ttls.ClientConfig(ttls.VerifyAcceptAny))
	require.NoError(t, err)
	assert.Equal(t, ttls.Proto, conn.ConnectionState().TLS.NegotiatedProtocol)
	require.NoError(t, conn.CloseWithError(NoError, ""))

	a := <-done
	assert.Equal(t, ttls.Proto, a.proto)
	require.Error(t, a.streamErr)
	assert.True(t, IsClosedByPeer(a.streamErr))
}
