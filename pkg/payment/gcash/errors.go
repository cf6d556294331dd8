package gcash

import "errors"

var (
	// ErrInvalidConfig is returned when the receiving wallet is not configured
	ErrInvalidConfig = errors.New("invalid gcash configuration")

	// ErrInvalidAmount is returned when the amount to send is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidReference is returned when the payment reference is empty
	ErrInvalidReference = errors.New("payment reference is required")
)
