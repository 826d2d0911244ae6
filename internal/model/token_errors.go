package model

import "errors"

// Token verification failures. Callers treat all three as unauthenticated;
// the split exists so operational logs can tell them apart.
var (
	ErrTokenExpired          = errors.New("access token expired")
	ErrTokenSignatureInvalid = errors.New("access token signature invalid")
	ErrTokenMalformed        = errors.New("access token malformed")
)
