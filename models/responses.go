package models

// Error codes carried in the ErrorResponse envelope. The set mirrors what
// the mobile client already matches on, so codes are part of the wire
// contract and must not be renamed.
const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
	ErrCodeInvalidParameter     = "INVALID_PARAMETER"
	ErrCodeStorageUnavailable   = "STORAGE_UNAVAILABLE"
	ErrCodeInternalServerError  = "INTERNAL_SERVER_ERROR"
)

// ErrorResponse is the uniform error envelope returned by every endpoint.
// Success is always false; it exists so clients can switch on one field
// before looking at the payload shape.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"errorCode"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"requestId"`
}
