package supabase

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds client configuration.
type Config struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client

	// outbound call budget; zero means defaultRequestsPerSecond
	RequestsPerSecond float64
	Burst             int
}

const (
	defaultTimeout           = 10 * time.Second
	defaultRequestsPerSecond = 20
	defaultBurst             = 10
)

// APIError is a non-2xx response from PostgREST.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase rpc: status %d: %s (%s)", e.Status, e.Message, e.Code)
	}

	return fmt.Sprintf("supabase rpc: status %d: %s", e.Status, e.Message)
}
