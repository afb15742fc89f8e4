package models

// SuccessEnvelope is the uniform wrapper applied to every successful JSON
// response. Handlers normally return bare values and the HTTP layer wraps
// them; a handler may also return a ready-made envelope, which passes
// through unchanged (wrapping is idempotent).
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    any    `json:"meta,omitempty"`
}

// NewSuccessEnvelope wraps data in the standard success shape.
func NewSuccessEnvelope(data any, message string, meta any) SuccessEnvelope {
	if message == "" {
		message = "Success"
	}
	return SuccessEnvelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

// ErrorEnvelope is the uniform wrapper applied to every failed response,
// regardless of which pipeline stage produced the failure.
type ErrorEnvelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Errors     any    `json:"errors,omitempty"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
}
