package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrEmptySeatSet   = errors.New("booking must have at least one seat")
	ErrInvalidAmount  = errors.New("payment amount must be positive")
)
