package ttls

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
)

// Proto is the application-protocol identifier negotiated via ALPN. Both
// sides advertise exactly this token; a peer offering no overlapping token
// fails the handshake.
const Proto = "qhttp/1"

// VerifyPolicy selects how a client checks the server identity
type VerifyPolicy int

const (
	// VerifyStrict performs standard certificate chain validation
	VerifyStrict VerifyPolicy = iota

	// VerifyAcceptAny approves any server identity without validation.
	//
	// Development-only: this disables server authentication entirely and
	// must never be a silent default. The caller opts in explicitly.
	VerifyAcceptAny
)

// ServerConfig builds the server-role TLS configuration from an identity.
// No client certificate is requested.
func ServerConfig(id Identity) (*tls.Config, error) {
	if len(id.Chain) == 0 {
		return nil, errors.New("identity has an empty certificate chain")
	}
	leaf, err := x509.ParseCertificate(id.Chain[0])
	if err != nil {
		return nil, fmt.Errorf("parsing leaf certificate: %w", err)
	}
	key, err := x509.ParsePKCS8PrivateKey(id.Key)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: id.Chain,
			PrivateKey:  key,
			Leaf:        leaf,
		}},
		ClientAuth: tls.NoClientCert,
		NextProtos: []string{Proto},
		MinVersion: tls.VersionTLS13,
	}, nil
}

// ClientConfig builds the client-role TLS configuration with the given
// verification policy
func ClientConfig(policy VerifyPolicy) *tls.Config {
	return &tls.Config{
		ServerName:         Hostname,
		NextProtos:         []string{Proto},
		MinVersion:         tls.VersionTLS13,
		InsecureSkipVerify: policy == VerifyAcceptAny,
	}
}
