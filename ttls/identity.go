package ttls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"

	"time"
)

// Hostname is the development hostname the server identity is bound to.
// Clients dial the server by this name.
const Hostname = "localhost"

// Identity is a server certificate chain with its private key, both in DER
// form. The leaf certificate is first in the chain and is bound to Hostname.
type Identity struct {
	Chain [][]byte // DER-encoded certificates, leaf first
	Key   []byte   // PKCS#8 DER-encoded private key
}

// NewIdentity generates a fresh self-signed server identity for Hostname.
//
// A failure here is fatal to process startup: there is nothing to serve
// without an identity.
func NewIdentity() (Identity, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return Identity{}, fmt.Errorf("generating server key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return Identity{}, fmt.Errorf("generating certificate serial: %w", err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: Hostname},
		DNSNames:              []string{Hostname},
		NotBefore:             now.Add(-time.Hour), // tolerate clock skew
		NotAfter:              now.AddDate(1, 0, 0),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return Identity{}, fmt.Errorf("generating server certificate: %w", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return Identity{}, fmt.Errorf("encoding server key: %w", err)
	}

	return Identity{Chain: [][]byte{der}, Key: keyDER}, nil
}
