package service

import (
	"context"
	"time"

	"twitch_casino/internal/domain"
	"twitch_casino/internal/events"
	"twitch_casino/internal/game"
)

// SlotSpinResult is the slot endpoint response.
type SlotSpinResult struct {
	RoundID          string                               `json:"round_id"`
	Grid             [game.SlotRows][game.SlotCols]string `json:"grid"`
	Lines            []game.LineWin                       `json:"lines"`
	WinAmount        int64                                `json:"win_amount"`
	ScatterCount     int                                  `json:"scatter_count"`
	FreeSpin         bool                                 `json:"free_spin"`
	FreeSpinsLeft    int                                  `json:"free_spins_left"`
	FreeSpinsAwarded int                                  `json:"free_spins_awarded"`
	Credits          int64                                `json:"credits"`
}

// SpinSlots resolves one paid spin, or the next free spin when a bonus
// round is active. Free spins consume no bet; line wins use the bet that
// triggered the bonus. Sticky wilds accumulate across the bonus and clear
// with it.
func (s *Casino) SpinSlots(ctx context.Context, playerID string, bet int64) (*SlotSpinResult, error) {
	res := &SlotSpinResult{RoundID: newRoundID()}

	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		sess := acc.ActiveGame

		if sess != nil && sess.Kind != domain.GameSlotBonus {
			return domain.ErrSessionMismatch
		}

		if sess == nil {
			if err := s.checkWager(acc, bet); err != nil {
				return err
			}
			acc.Debit(bet)

			spin := game.SpinSlots(s.src, bet, false, nil)
			acc.Credit(spin.TotalWin)
			fill(res, spin)

			if spin.FreeSpinsAwarded > 0 {
				acc.ActiveGame = &domain.Session{
					Kind:      domain.GameSlotBonus,
					ID:        res.RoundID,
					Bet:       bet,
					CreatedAt: time.Now().UTC(),
					SlotBonus: &game.SlotBonusState{FreeSpinsLeft: spin.FreeSpinsAwarded},
				}
				res.FreeSpinsLeft = spin.FreeSpinsAwarded
			}
			return nil
		}

		// free-spin continuation: no debit, bonus bet carries over
		bonus := sess.SlotBonus
		spin := game.SpinSlots(s.src, sess.Bet, true, bonus.StickyWilds)
		acc.Credit(spin.TotalWin)
		fill(res, spin)
		res.FreeSpin = true

		bonus.FreeSpinsLeft-- // this spin
		bonus.FreeSpinsLeft += spin.FreeSpinsAwarded
		bonus.StickyWilds = game.NewStickyWilds(spin.Grid, bonus.StickyWilds)

		if bonus.FreeSpinsLeft <= 0 {
			acc.ActiveGame = nil
			res.FreeSpinsLeft = 0
		} else {
			res.FreeSpinsLeft = bonus.FreeSpinsLeft
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Credits = acc.Credits
	betForEvent := bet
	if res.FreeSpin {
		betForEvent = 0
	}
	s.publish(events.NewRoundEvent(playerID, "slots", res.RoundID, betForEvent, res.WinAmount, acc.Credits, res.Lines))
	return res, nil
}

func fill(res *SlotSpinResult, spin game.SlotSpin) {
	res.Grid = spin.Grid
	res.Lines = spin.Lines
	res.WinAmount = spin.TotalWin
	res.ScatterCount = spin.ScatterCount
	res.FreeSpinsAwarded = spin.FreeSpinsAwarded
}
