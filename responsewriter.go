package qhttp

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
)

// streamWriter implements http.ResponseWriter over one request stream.
//
// The status line and headers go out when the handler first writes body bytes
// or calls WriteHeader, whichever comes first; body bytes follow in order.
// Write errors are sticky and reported by finish.
type streamWriter struct {
	bw          *bufio.Writer
	header      http.Header
	wroteHeader bool
	err         error
}

func newStreamWriter(w io.Writer) *streamWriter {
	return &streamWriter{
		bw:     bufio.NewWriter(w),
		header: make(http.Header),
	}
}

// Header returns the response headers
func (w *streamWriter) Header() http.Header {
	return w.header
}

// WriteHeader writes the status line and headers. Repeated calls have no
// effect.
func (w *streamWriter) WriteHeader(code int) {
	if w.wroteHeader || w.err != nil {
		return
	}
	w.wroteHeader = true

	if _, err := fmt.Fprintf(w.bw, "HTTP/1.1 %03d %s\r\n", code, http.StatusText(code)); err != nil {
		w.err = err
		return
	}
	if err := w.header.Write(w.bw); err != nil {
		w.err = err
		return
	}
	if _, err := io.WriteString(w.bw, "\r\n"); err != nil {
		w.err = err
	}
}

// Write writes body bytes, sending the headers first if they haven't been
// sent yet
func (w *streamWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.bw.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

// finish flushes the response to the stream, writing the header first if the
// handler never produced any output
func (w *streamWriter) finish() error {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.err != nil {
		return w.err
	}
	return w.bw.Flush()
}
