package events

import (
	"time"
)

// RoundEvent describes one resolved casino round. Published out of the
// request path for overlays and downstream consumers; delivery is
// best-effort and never blocks or fails game resolution.
type RoundEvent struct {
	PlayerID  string `json:"player_id"`
	Game      string `json:"game"`
	RoundID   string `json:"round_id"`
	Bet       int64  `json:"bet"`
	Win       int64  `json:"win"`
	Credits   int64  `json:"credits"`
	Detail    any    `json:"detail,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NewRoundEvent stamps the event with the current time.
func NewRoundEvent(playerID, gameName, roundID string, bet, win, credits int64, detail any) RoundEvent {
	return RoundEvent{
		PlayerID:  playerID,
		Game:      gameName,
		RoundID:   roundID,
		Bet:       bet,
		Win:       win,
		Credits:   credits,
		Detail:    detail,
		Timestamp: time.Now().Unix(),
	}
}

// Publisher receives resolved rounds.
type Publisher interface {
	PublishRound(ev RoundEvent)
	Close()
}

// Noop drops every event.
type Noop struct{}

func (Noop) PublishRound(RoundEvent) {}
func (Noop) Close()                  {}

// Multi fans one event out to several publishers.
type Multi []Publisher

func (m Multi) PublishRound(ev RoundEvent) {
	for _, p := range m {
		p.PublishRound(ev)
	}
}

func (m Multi) Close() {
	for _, p := range m {
		p.Close()
	}
}
