// Package nutrition implements the daily feeding requirement calculator for dogs.
//
// Every function in this package is pure: no I/O, no shared state, and identical
// inputs always produce identical outputs. Invalid input is rejected with an error
// before any arithmetic runs.
package nutrition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the parent of every input validation error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidWeight is returned when a weight is zero, negative or not finite.
	ErrInvalidWeight = fmt.Errorf("%w: weight must be a positive number of kilograms", ErrInvalidInput)
	// ErrInvalidAge is returned when an age in months is negative.
	ErrInvalidAge = fmt.Errorf("%w: age in months must not be negative", ErrInvalidInput)
	// ErrInvalidRER is returned when a resting energy requirement is zero, negative or not finite.
	ErrInvalidRER = fmt.Errorf("%w: resting energy requirement must be positive", ErrInvalidInput)
	// ErrUnknownObjective is returned when an objective value is not recognized.
	ErrUnknownObjective = fmt.Errorf("%w: unknown objective", ErrInvalidInput)
	// ErrUnknownBodyCondition is returned when a body condition value is not recognized.
	ErrUnknownBodyCondition = fmt.Errorf("%w: unknown body condition", ErrInvalidInput)
	// ErrUnknownActivityLevel is returned when an activity level value is not recognized.
	ErrUnknownActivityLevel = fmt.Errorf("%w: unknown activity level", ErrInvalidInput)

	// ErrMissingAdultWeight is returned by PuppyMER when the estimated adult weight
	// was not supplied. Callers default it with DefaultEstimatedAdultWeight.
	ErrMissingAdultWeight = errors.New("missing precondition: estimated adult weight must be positive")
)
