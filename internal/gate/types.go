package gate

import "errors"

// AdminKeyHeader carries the admin key on admin-only reads.
const AdminKeyHeader = "x-admin-key"

var (
	// returned by New when the expected secret is empty
	ErrSecretNotConfigured = errors.New("gate: secret not configured")

	ErrMissingCredential = errors.New("gate: missing credential")
	ErrMalformedHeader   = errors.New("gate: authorization header must be Bearer <token>")
	ErrInvalidCredential = errors.New("gate: invalid credential")
)
