package errors

// Envelope is the failure body every endpoint writes: {"ok":false,"error":"..."}.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type ErrorInfo struct {
	category  string
	sanitized string
}

// error categories for classification
const (
	CategoryDatabase   = "database"
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryAuth       = "auth"
	CategoryNotFound   = "not_found"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

// messages used verbatim in response bodies
const (
	MsgUnauthorized    = "Unauthorized"
	MsgBadRequest      = "invalid request"
	MsgValidation      = "validation failed"
	MsgNotFound        = "not found"
	MsgTooManyRequests = "too many requests"
	MsgUnavailable     = "service unavailable"
	MsgServerError     = "an error occurred"
)
