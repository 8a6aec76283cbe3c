package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// price oracle errors
	ErrUpstreamUnavailable = errors.New("price service unavailable")
	ErrUpstreamProtocol    = errors.New("malformed price service response")
	ErrUpstreamDataMissing = errors.New("price missing or invalid in response")

	// transaction submission errors
	ErrSubmissionRejected  = errors.New("transaction rejected before entering the pending pool")
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out, outcome unknown, check manually before retrying")
	ErrConfirmationFailed  = errors.New("transaction included but reverted")

	// ErrInvalidConfig is fatal at startup, the process must not serve traffic
	ErrInvalidConfig = errors.New("invalid configuration")

	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidAddress    = errors.New("Invalid address")
)
