package service

import (
	"context"
	"time"

	"twitch_casino/internal/domain"
	"twitch_casino/internal/events"
	"twitch_casino/internal/game"
)

// Guess round statuses in responses.
const (
	GuessPlaying = "playing"
	GuessWon     = "won"
	GuessLost    = "lost"
)

// GuessView is the guess-the-number round as shown to the player. The
// target is only exposed once the round is over.
type GuessView struct {
	RoundID   string            `json:"round_id"`
	TriesLeft int               `json:"tries_left"`
	History   []game.GuessEntry `json:"history"`
	Status    string            `json:"status"`
	Target    int               `json:"target,omitempty"`
	Bet       int64             `json:"bet"`
	WinAmount int64             `json:"win_amount"`
	Credits   int64             `json:"credits"`
}

// StartGuess debits the bet and draws the secret number.
func (s *Casino) StartGuess(ctx context.Context, playerID string, bet int64) (*GuessView, error) {
	roundID := newRoundID()
	var st *game.GuessState

	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		if acc.ActiveGame != nil {
			return domain.ErrSessionMismatch
		}
		if err := s.checkWager(acc, bet); err != nil {
			return err
		}
		acc.Debit(bet)

		st = game.NewGuessGame(s.src)
		acc.ActiveGame = &domain.Session{
			Kind:      domain.GameGuess,
			ID:        roundID,
			Bet:       bet,
			CreatedAt: time.Now().UTC(),
			Guess:     st,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GuessView{
		RoundID:   roundID,
		TriesLeft: st.TriesLeft,
		Status:    GuessPlaying,
		Bet:       bet,
		Credits:   acc.Credits,
	}, nil
}

// Guess consumes one try. A hit pays by tries remaining; running out of
// tries ends the round.
func (s *Casino) Guess(ctx context.Context, playerID string, n int) (*GuessView, error) {
	if n < game.GuessMin || n > game.GuessMax {
		return nil, domain.ErrInvalidParam
	}

	var st *game.GuessState
	var roundID, status string
	var bet, win int64

	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		sess := acc.ActiveGame
		if sess == nil || sess.Kind != domain.GameGuess {
			return domain.ErrNoActiveSession
		}
		st = sess.Guess
		roundID, bet = sess.ID, sess.Bet

		_, correct := st.Guess(n)
		switch {
		case correct:
			status = GuessWon
			win = st.Win(sess.Bet)
			acc.Credit(win)
			acc.ActiveGame = nil
		case st.TriesLeft == 0:
			status = GuessLost
			acc.ActiveGame = nil
		default:
			status = GuessPlaying
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := &GuessView{
		RoundID:   roundID,
		TriesLeft: st.TriesLeft,
		History:   st.History,
		Status:    status,
		Bet:       bet,
		WinAmount: win,
		Credits:   acc.Credits,
	}
	if status != GuessPlaying {
		view.Target = st.Target
		s.publish(events.NewRoundEvent(playerID, "guess", roundID, bet, win, acc.Credits, status))
	}
	return view, nil
}
