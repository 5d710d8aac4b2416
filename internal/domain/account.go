package domain

import "time"

// Account is the per-player ledger entry. Created lazily on first access,
// mutated by every resolver call, never deleted.
type Account struct {
	PlayerID    string    `json:"player_id"`
	Credits     int64     `json:"credits"`
	ActiveGame  *Session  `json:"active_game,omitempty"`
	LastDaily   time.Time `json:"last_daily,omitempty"`
	DailyStreak int       `json:"daily_streak,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewAccount creates a fresh account with the configured starting balance.
func NewAccount(playerID string, credits int64) *Account {
	now := time.Now().UTC()
	return &Account{
		PlayerID:  playerID,
		Credits:   credits,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Debit removes amount from the balance. The caller must have verified
// sufficiency; the balance never goes negative.
func (a *Account) Debit(amount int64) {
	a.Credits -= amount
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount int64) {
	a.Credits += amount
}
