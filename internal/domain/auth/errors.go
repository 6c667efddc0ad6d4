package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid user or PIN")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)
