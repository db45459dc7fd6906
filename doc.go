// Package qhttp is a demonstration of HTTP-style request/response exchanges
// carried over QUIC.
//
// The server accepts QUIC connections, negotiates the application protocol
// via ALPN, and serves every bidirectional stream as one request/response
// pair. Each connection is handled by an independent session task, and each
// stream by an independent exchange task; failures are contained to the unit
// they happen in.
//
// The client side opens one connection and issues requests sequentially, one
// fresh stream per request.
package qhttp
