package run

import (
	//
	// This package bundles CA certificates for use in TLS connections.
	//
	// Useful for empty containers, and for the client's strict verification
	// policy when no system cert store is available.
	//
	_ "golang.org/x/crypto/x509roots/fallback"
)
