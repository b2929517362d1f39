// Package server provides the listeners the HTTP server accepts connections
// on.
package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/Deba69/BookList/internal/config"
	"github.com/Deba69/BookList/internal/model"
)

// NewSecurityLayer returns a TLS listener factory when HTTPS is enabled and a
// plain one otherwise.
func NewSecurityLayer(cfg config.HTTP) model.SecurityLayer {
	if cfg.EnableHTTPS {
		return NewTLSListener(cfg.CertFileName, cfg.PrivateKeyFileName)
	}
	return NewPlainListener()
}

// TLSListener opens listeners that terminate TLS with a certificate loaded
// from disk.
type TLSListener struct {
	certFileName       string
	privateKeyFileName string
}

// NewTLSListener creates a new TLSListener instance.
func NewTLSListener(certFileName, privateKeyFileName string) *TLSListener {
	return &TLSListener{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Listen loads the key pair and listens on addr. The key pair is read on every
// call so a restart picks up renewed certificates.
func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		NextProtos:   []string{"http/1.1"},
	}
	return tls.Listen(protocol, addr, tlsConfig)
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen(protocol, addr)
}
