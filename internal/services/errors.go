package services

import "errors"

var (
	// ErrInfeasibleConstraints is returned when no valid assignment was found
	// within the attempt budget.
	ErrInfeasibleConstraints = errors.New("constraints infeasible for this participant set")

	// ErrCodeSpaceExhausted is returned when every code of the configured
	// length is already in use.
	ErrCodeSpaceExhausted = errors.New("no unique access codes left")

	ErrInvalidCodeLength    = errors.New("access code length must be at least 1")
	ErrDuplicateParticipant = errors.New("duplicate participant name")
	ErrEmptyParticipantName = errors.New("participant name cannot be empty")
)
