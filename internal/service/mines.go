package service

import (
	"context"
	"time"

	"twitch_casino/internal/domain"
	"twitch_casino/internal/events"
	"twitch_casino/internal/game"
)

// Mines round statuses in responses.
const (
	MinesActive    = "active"
	MinesBusted    = "busted"
	MinesCashedOut = "cashed_out"
)

// MinesView is the mines round as shown to the player. The field is only
// exposed once the round is over.
type MinesView struct {
	RoundID        string   `json:"round_id"`
	BombCount      int      `json:"bomb_count"`
	Revealed       []bool   `json:"revealed"`
	SafeRevealed   int      `json:"safe_revealed"`
	Multiplier     float64  `json:"multiplier"`
	NextMultiplier float64  `json:"next_multiplier"`
	Status         string   `json:"status"`
	Field          []string `json:"field,omitempty"`
	Bet            int64    `json:"bet"`
	WinAmount      int64    `json:"win_amount"`
	Credits        int64    `json:"credits"`
}

func minesView(id string, st *game.MinesState, status string, bet, win, credits int64) *MinesView {
	v := &MinesView{
		RoundID:      id,
		BombCount:    st.BombCount,
		Revealed:     st.Revealed,
		SafeRevealed: st.SafeRevealed,
		Multiplier:   st.CurrentCashout,
		Status:       status,
		Bet:          bet,
		WinAmount:    win,
		Credits:      credits,
	}
	if status == MinesActive && st.SafeRevealed < game.MinesFieldSize-st.BombCount {
		v.NextMultiplier = game.MinesMultiplier(st.BombCount, st.SafeRevealed+1)
	}
	if status != MinesActive {
		v.Field = st.Field
	}
	return v
}

// StartMines debits the bet and lays out the field.
func (s *Casino) StartMines(ctx context.Context, playerID string, bet int64, bombCount int) (*MinesView, error) {
	if bombCount < game.MinesMinBombs || bombCount > game.MinesMaxBombs {
		return nil, domain.ErrInvalidParam
	}

	roundID := newRoundID()
	var st *game.MinesState

	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		if acc.ActiveGame != nil {
			return domain.ErrSessionMismatch
		}
		if err := s.checkWager(acc, bet); err != nil {
			return err
		}
		acc.Debit(bet)

		st = game.NewMinesField(s.src, bombCount)
		acc.ActiveGame = &domain.Session{
			Kind:      domain.GameMines,
			ID:        roundID,
			Bet:       bet,
			CreatedAt: time.Now().UTC(),
			Mines:     st,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return minesView(roundID, st, MinesActive, bet, 0, acc.Credits), nil
}

// RevealMines uncovers one cell. A bomb forfeits the bet and ends the
// round; revealing every gem cashes out automatically.
func (s *Casino) RevealMines(ctx context.Context, playerID string, cell int) (*MinesView, error) {
	if cell < 0 || cell >= game.MinesFieldSize {
		return nil, domain.ErrInvalidParam
	}

	var st *game.MinesState
	var roundID, status string
	var bet, win int64

	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		sess := acc.ActiveGame
		if sess == nil || sess.Kind != domain.GameMines {
			return domain.ErrNoActiveSession
		}
		st = sess.Mines
		roundID, bet = sess.ID, sess.Bet

		if st.Revealed[cell] {
			return domain.ErrAlreadyRevealed
		}

		status = MinesActive
		if st.Reveal(cell) {
			status = MinesBusted
			acc.ActiveGame = nil
			return nil
		}
		if st.SafeRevealed >= game.MinesFieldSize-st.BombCount {
			// every gem found, nothing left to reveal
			status = MinesCashedOut
			win = st.CashoutWin(sess.Bet)
			acc.Credit(win)
			acc.ActiveGame = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status != MinesActive {
		s.publish(events.NewRoundEvent(playerID, "mines", roundID, bet, win, acc.Credits, status))
	}
	return minesView(roundID, st, status, bet, win, acc.Credits), nil
}

// CashoutMines settles the round at the most recent safe-reveal multiplier.
// Requires at least one safe reveal.
func (s *Casino) CashoutMines(ctx context.Context, playerID string) (*MinesView, error) {
	var st *game.MinesState
	var roundID string
	var bet, win int64

	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		sess := acc.ActiveGame
		if sess == nil || sess.Kind != domain.GameMines {
			return domain.ErrNoActiveSession
		}
		st = sess.Mines
		roundID, bet = sess.ID, sess.Bet

		if st.SafeRevealed == 0 {
			return domain.ErrInvalidParam
		}
		win = st.CashoutWin(sess.Bet)
		acc.Credit(win)
		acc.ActiveGame = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.NewRoundEvent(playerID, "mines", roundID, bet, win, acc.Credits, MinesCashedOut))
	return minesView(roundID, st, MinesCashedOut, bet, win, acc.Credits), nil
}

// MinesState returns the in-progress round, or nil when there is none.
func (s *Casino) MinesState(ctx context.Context, playerID string) (*MinesView, error) {
	acc, err := s.store.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	sess := acc.ActiveGame
	if sess == nil || sess.Kind != domain.GameMines {
		return nil, nil
	}
	return minesView(sess.ID, sess.Mines, MinesActive, sess.Bet, 0, acc.Credits), nil
}
