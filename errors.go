package twisty

import "errors"

// Sentinel errors for the twisty package.
var (
	// Move errors
	ErrInvalidMove     = errors.New("twisty: invalid move")
	ErrInvalidNotation = errors.New("twisty: invalid move notation")

	// State errors
	ErrNothingToReverse = errors.New("twisty: no moves to reverse")
	ErrBusy             = errors.New("twisty: moves still animating")
)
