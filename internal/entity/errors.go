package entity

import (
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrTypeCoercion        = errors.New("cannot coerce value")
	ErrConstraintViolation = errors.New("value not allowed")
	ErrCredentialMismatch  = errors.New("public key mismatch")
	ErrMissingCredential   = errors.New("missing credential")
	ErrGatewayUnavailable  = errors.New("gateway communication failed")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrUnauthenticated     = errors.New("unauthenticated")
)
