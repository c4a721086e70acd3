package model

import "errors"

var (
	// Registration / login
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Tokens
	ErrMissingToken = errors.New("refresh token required")
	ErrInvalidToken = errors.New("invalid token")

	// Lookups
	ErrAccountNotFound  = errors.New("account not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrFAQNotFound      = errors.New("faq not found")
	ErrContractNotFound = errors.New("contract not found")

	// Store
	ErrDuplicateKey = errors.New("unique constraint violated")
)
