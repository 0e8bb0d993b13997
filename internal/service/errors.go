package service

import "errors"

// Failure classes surfaced to the HTTP layer. NotFound also covers empty result pages and
// missing create fields, matching the API's long-standing contract.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
)
