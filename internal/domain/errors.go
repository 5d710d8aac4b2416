package domain

import "errors"

// Resolver error taxonomy. Every validation failure is raised before any
// balance mutation; terminal game outcomes (bust, bomb, exhausted tries) are
// states, not errors.
var (
	ErrInvalidWager      = errors.New("invalid wager")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoActiveSession   = errors.New("no active game")
	ErrSessionMismatch   = errors.New("another game is already in progress")
	ErrAlreadyRevealed   = errors.New("cell already revealed")
	ErrInvalidParam      = errors.New("parameter out of range")
	ErrDailyClaimed      = errors.New("daily bonus already claimed")
)
