package ttls

import (
	"crypto/tls"
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	id, err := NewIdentity()
	require.NoError(t, err)
	require.Len(t, id.Chain, 1)

	leaf, err := x509.ParseCertificate(id.Chain[0])
	require.NoError(t, err)
	assert.Contains(t, leaf.DNSNames, Hostname)
	assert.Equal(t, Hostname, leaf.Subject.CommonName)

	_, err = x509.ParsePKCS8PrivateKey(id.Key)
	require.NoError(t, err)
}

func TestServerConfig(t *testing.T) {
	id, err := NewIdentity()
	require.NoError(t, err)

	conf, err := ServerConfig(id)
	require.NoError(t, err)
	assert.Equal(t, []string{Proto}, conf.NextProtos)
	assert.Equal(t, tls.NoClientCert, conf.ClientAuth)
	require.Len(t, conf.Certificates, 1)
}

func TestServerConfigRejectsMalformedIdentity(t *testing.T) {
	_, err := ServerConfig(Identity{})
	assert.Error(t, err)

	_, err = ServerConfig(Identity{Chain: [][]byte{{0xde, 0xad}}})
	assert.Error(t, err)

	id, err := NewIdentity()
	require.NoError(t, err)
	id.Key = []byte{0xbe, 0xef}
	_, err = ServerConfig(id)
	assert.Error(t, err)
}

func TestClientConfig(t *testing.T) {
	strict := ClientConfig(VerifyStrict)
	assert.False(t, strict.InsecureSkipVerify)
	assert.Equal(t, []string{Proto}, strict.NextProtos)
	assert.Equal(t, Hostname, strict.ServerName)

	acceptAny := ClientConfig(VerifyAcceptAny)
	assert.True(t, acceptAny.InsecureSkipVerify)
	assert.Equal(t, []string{Proto}, acceptAny.NextProtos)
}
