package domain

import "errors"

// Domain errors represent fatal conditions in the xargo domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrCommandTooLong is returned when the command template alone already
	// meets or exceeds the effective byte budget, before any input is read.
	ErrCommandTooLong = errors.New("xargo: command too long")

	// ErrArgumentTooLong is returned when a single input token alone exceeds
	// the effective byte budget, so no batch could ever hold it.
	ErrArgumentTooLong = errors.New("xargo: argument too long")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("xargo: invalid configuration")
)
