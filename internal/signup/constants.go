package signup

import "errors"

const (
	// SignupPath is the downstream signup endpoint, relative to the downstream base URL.
	SignupPath = "/api/signup"

	// Header constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"
	RequestIDHeader = "X-Request-ID"

	// MaxResponseBytes bounds how much of a downstream body is read.
	MaxResponseBytes = 1 << 20

	// Form field names
	FieldUsername = "username"
	FieldPassword = "password"

	// Error messages
	ErrMsgMissingFormField      = "signup form is missing a required field"
	ErrMsgNetwork               = "signup downstream could not be reached"
	ErrMsgMalformedResponse     = "signup downstream returned a malformed response"
	ErrMsgFailedToDecodeForm    = "failed to decode signup form"
	ErrMsgFailedToEncodeRequest = "failed to encode signup request"
	ErrMsgFailedToBuildRequest  = "failed to build signup request"
	ErrMsgResponseTooLarge      = "signup downstream response is too large"
)

var (
	// ErrMissingFormField is returned when the username or password key is absent.
	ErrMissingFormField = errors.New(ErrMsgMissingFormField)
	// ErrNetwork is returned when the downstream call cannot be completed.
	ErrNetwork = errors.New(ErrMsgNetwork)
	// ErrMalformedResponse is returned when the downstream body is not valid JSON.
	ErrMalformedResponse = errors.New(ErrMsgMalformedResponse)
	// ErrResponseTooLarge is returned when the downstream body exceeds MaxResponseBytes.
	ErrResponseTooLarge = errors.New(ErrMsgResponseTooLarge)
)
