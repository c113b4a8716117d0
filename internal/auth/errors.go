package auth

import "errors"

// Authentication failures. Handlers surface all of these as 401 without
// distinguishing them beyond a generic message.
var (
	ErrMissingToken    = errors.New("auth: missing authorization header")
	ErrMalformedHeader = errors.New("auth: malformed authorization header")
	ErrExpired         = errors.New("auth: token expired")
	ErrBadSignature    = errors.New("auth: token signature invalid")
	ErrMalformed       = errors.New("auth: token malformed")
)
