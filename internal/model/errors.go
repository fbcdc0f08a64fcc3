package model

import "errors"

var (
	ErrConnectionFailed = errors.New("connection_failed")
	ErrTimeout          = errors.New("timeout")
	ErrInvalidBlock     = errors.New("invalid_block")
	ErrMiningExhausted  = errors.New("mining_exhausted")
	ErrFileUnreadable   = errors.New("file_unreadable")
	ErrNotFound         = errors.New("not_found")

	// ErrInvalidTransition rejects a status change that skips or reverses the request lifecycle.
	ErrInvalidTransition = errors.New("invalid_transition")
)
