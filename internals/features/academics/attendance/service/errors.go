package service

import "errors"

// Error taxonomy for the aggregator. Controllers map these to HTTP codes.
var (
	ErrUnauthorized  = errors.New("caller role not permitted for this operation")
	ErrNotFound      = errors.New("referenced record does not exist")
	ErrInvalidStatus = errors.New("attendance status outside the allowed set")
	ErrEmptyRollCall = errors.New("roll-call must contain at least one entry")
	ErrConflict      = errors.New("concurrent update conflict, retries exhausted")
)
