package tquic

import (
	"errors"

	"github.com/quic-go/quic-go"
)

// IsClosedByPeer returns whether the passed error is an orderly connection
// close by the remote peer
func IsClosedByPeer(err error) bool {
	var appErr *quic.ApplicationError
	return errors.As(err, &appErr) && appErr.Remote && appErr.ErrorCode == NoError
}

// StripClosedByPeerError returns nil if the passed error is an orderly close
// by the remote peer, and the original error otherwise.
//
// This is handy to decrease the amount of spam in logs, as an orderly close
// happens at the end of every well-behaved connection.
func StripClosedByPeerError(err error) error {
	if IsClosedByPeer(err) {
		return nil
	}
	return err
}
