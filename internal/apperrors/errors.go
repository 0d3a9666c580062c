package apperrors

import "errors"

// Shared failure taxonomy for the ledger and stock engines. Handlers map these
// to HTTP statuses; services wrap them with context via fmt.Errorf and %w.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOutOfStock         = errors.New("out of stock")

	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCodeUsed    = errors.New("check-in code already used")
	ErrCodeExpired = errors.New("check-in code expired")
)
