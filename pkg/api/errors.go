package api

import "errors"

// ErrNilBook is returned when a handler is built without word packs.
var ErrNilBook = errors.New("api: word book is required")

// Error codes of the response envelope.
const (
	CodeInvalidInput         = "invalid_input"
	CodeLanguageNotSupported = "language_not_supported"
	CodeBadRequest           = "bad_request"
	CodeRequestTooLarge      = "request_too_large"
	CodeNotFound             = "not_found"
	CodeMethodNotAllowed     = "method_not_allowed"
	CodeRateLimited          = "rate_limited"
	CodeInternal             = "internal_error"
)
