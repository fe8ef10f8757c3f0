// Package gate decides whether a request may trigger a scheduled job or read
// admin-only data by comparing its credential with one configured secret.
package gate

import (
	"crypto/subtle"
	"fmt"
	"strings"
)

// Gate holds one shared secret. It is read-only after New.
type Gate struct {
	name   string
	secret []byte
}

// New returns a gate for secret. An empty secret is a configuration error,
// there is no allow-all mode.
func New(name, secret string) (*Gate, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrSecretNotConfigured)
	}

	return &Gate{name: name, secret: []byte(secret)}, nil
}

// Name identifies the gate in logs.
func (g *Gate) Name() string {
	return g.name
}

// CheckBearer validates an Authorization header of the form "Bearer <secret>".
func (g *Gate) CheckBearer(header string) error {
	if header == "" {
		return ErrMissingCredential
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return ErrMalformedHeader
	}

	return g.CheckKey(token)
}

// CheckKey validates a raw key, e.g. the x-admin-key header value.
func (g *Gate) CheckKey(key string) error {
	if key == "" {
		return ErrMissingCredential
	}

	if subtle.ConstantTimeCompare([]byte(key), g.secret) != 1 {
		return ErrInvalidCredential
	}

	return nil
}
