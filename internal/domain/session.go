package domain

import (
	"time"

	"twitch_casino/internal/game"
)

// GameKind tags the session union.
type GameKind string

const (
	GameBlackjack GameKind = "blackjack"
	GameMines     GameKind = "mines"
	GameGuess     GameKind = "guess"
	GameSlotBonus GameKind = "slot_bonus"
)

// Session is one in-progress round attached to an account. Exactly one of
// the per-game state pointers is set, matching Kind. An account holds at
// most one session at a time; the slot free-spin bonus is a session variant
// so that rule covers it too.
type Session struct {
	Kind      GameKind             `json:"kind"`
	ID        string               `json:"id"`
	Bet       int64                `json:"bet"`
	CreatedAt time.Time            `json:"created_at"`
	Blackjack *game.BlackjackState `json:"blackjack,omitempty"`
	Mines     *game.MinesState     `json:"mines,omitempty"`
	Guess     *game.GuessState     `json:"guess,omitempty"`
	SlotBonus *game.SlotBonusState `json:"slot_bonus,omitempty"`
}
