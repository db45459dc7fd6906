package qhttp

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/quic-go/quic-go"
	"github.com/ridge/qhttp/tquic"
	"github.com/ridge/qhttp/ttls"
)

// Client issues requests over one QUIC connection, one fresh stream per
// request.
//
// Unlike the server, the client does not isolate per-request failures: any
// error propagates to the caller.
type Client struct {
	conn quic.Connection
}

// Dial connects to a server and negotiates the application protocol
func Dial(ctx context.Context, address string, tlsConf *tls.Config) (*Client, error) {
	conn, err := tquic.Dial(ctx, address, tlsConf)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", address, err)
	}
	return &Client{conn: conn}, nil
}

// Get issues a GET request for path on a fresh stream and reads the response
// in full
func (c *Client) Get(ctx context.Context, path string) (int, []byte, error) {
	stream, err := c.conn.OpenStreamSync(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("opening stream: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+ttls.Hostname+path, nil)
	if err != nil {
		return 0, nil, err
	}
	if err := req.Write(stream); err != nil {
		return 0, nil, fmt.Errorf("sending request: %w", err)
	}
	// Finish the client-to-server direction: the request has no body.
	if err := stream.Close(); err != nil {
		return 0, nil, fmt.Errorf("finishing request: %w", err)
	}

	resp, err := http.ReadResponse(bufio.NewReader(stream), req)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// Close closes the connection in an orderly manner
func (c *Client) Close() error {
	return c.conn.CloseWithError(tquic.NoError, "")
}
