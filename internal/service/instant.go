package service

import (
	"context"

	"twitch_casino/internal/domain"
	"twitch_casino/internal/events"
	"twitch_casino/internal/game"
)

// Single-request games: dice, high-low, roulette, plinko, case-opening.
// Each is one debit-resolve-credit cycle with no session left behind.

// DiceResult is the dice endpoint response.
type DiceResult struct {
	RoundID string `json:"round_id"`
	game.DiceRoll
	WinAmount int64 `json:"win_amount"`
	Credits   int64 `json:"credits"`
}

// RollDice resolves one dice round.
func (s *Casino) RollDice(ctx context.Context, playerID string, bet int64, target int, condition string) (*DiceResult, error) {
	if condition != game.DiceUnder && condition != game.DiceOver {
		return nil, domain.ErrInvalidParam
	}
	if target < game.DiceMinTarget || target > game.DiceMaxTarget {
		return nil, domain.ErrInvalidParam
	}

	res := &DiceResult{RoundID: newRoundID()}
	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		if err := s.checkWager(acc, bet); err != nil {
			return err
		}
		acc.Debit(bet)
		res.DiceRoll = game.RollDice(s.src, target, condition)
		res.WinAmount = res.DiceRoll.Win(bet)
		acc.Credit(res.WinAmount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Credits = acc.Credits
	s.publish(events.NewRoundEvent(playerID, "dice", res.RoundID, bet, res.WinAmount, acc.Credits, res.DiceRoll))
	return res, nil
}

// HighLowResult is the high-low endpoint response.
type HighLowResult struct {
	RoundID string `json:"round_id"`
	game.HighLowResult
	WinAmount int64 `json:"win_amount"`
	Credits   int64 `json:"credits"`
}

// PlayHighLow resolves one high-low round.
func (s *Casino) PlayHighLow(ctx context.Context, playerID string, bet int64, guess string) (*HighLowResult, error) {
	if guess != game.HighLowLow && guess != game.HighLowHigh {
		return nil, domain.ErrInvalidParam
	}

	res := &HighLowResult{RoundID: newRoundID()}
	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		if err := s.checkWager(acc, bet); err != nil {
			return err
		}
		acc.Debit(bet)
		res.HighLowResult = game.PlayHighLow(s.src, guess)
		res.WinAmount = res.HighLowResult.Win(bet)
		acc.Credit(res.WinAmount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Credits = acc.Credits
	s.publish(events.NewRoundEvent(playerID, "highlow", res.RoundID, bet, res.WinAmount, acc.Credits, res.HighLowResult))
	return res, nil
}

// RouletteResult is the roulette endpoint response.
type RouletteResult struct {
	RoundID   string                   `json:"round_id"`
	Pocket    game.RoulettePocket      `json:"pocket"`
	Bets      []game.RouletteBetResult `json:"bets"`
	TotalBet  int64                    `json:"total_bet"`
	WinAmount int64                    `json:"win_amount"`
	Credits   int64                    `json:"credits"`
}

// SpinRoulette resolves every bet in the list against a single spin.
func (s *Casino) SpinRoulette(ctx context.Context, playerID string, bets []game.RouletteBet) (*RouletteResult, error) {
	if len(bets) == 0 {
		return nil, domain.ErrInvalidWager
	}
	var total int64
	for _, b := range bets {
		if !game.ValidRouletteBet(b) {
			return nil, domain.ErrInvalidWager
		}
		total += b.Amount
	}

	res := &RouletteResult{RoundID: newRoundID(), TotalBet: total}
	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		if err := s.checkWager(acc, total); err != nil {
			return err
		}
		acc.Debit(total)
		res.Pocket = game.SpinRoulette(s.src)
		res.Bets, res.WinAmount = game.ResolveRouletteBets(res.Pocket, bets)
		acc.Credit(res.WinAmount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Credits = acc.Credits
	s.publish(events.NewRoundEvent(playerID, "roulette", res.RoundID, total, res.WinAmount, acc.Credits, res.Pocket))
	return res, nil
}

// PlinkoResult is the plinko endpoint response, aggregated over the batch.
type PlinkoResult struct {
	RoundID   string            `json:"round_id"`
	Rows      int               `json:"rows"`
	Risk      string            `json:"risk"`
	Drops     []game.PlinkoDrop `json:"drops"`
	TotalBet  int64             `json:"total_bet"`
	WinAmount int64             `json:"win_amount"`
	Credits   int64             `json:"credits"`
}

// DropPlinko runs 1-1000 balls in one request; the whole batch is a single
// wager against the balance.
func (s *Casino) DropPlinko(ctx context.Context, playerID string, bet int64, rows int, risk string, drops int) (*PlinkoResult, error) {
	if !game.ValidPlinko(rows, risk) {
		return nil, domain.ErrInvalidParam
	}
	if drops < game.PlinkoMinDrops || drops > game.PlinkoMaxDrops {
		return nil, domain.ErrInvalidParam
	}
	if bet <= 0 {
		return nil, domain.ErrInvalidWager
	}
	total := bet * int64(drops)

	res := &PlinkoResult{RoundID: newRoundID(), Rows: rows, Risk: risk, TotalBet: total}
	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		if err := s.checkWager(acc, total); err != nil {
			return err
		}
		acc.Debit(total)
		res.Drops = make([]game.PlinkoDrop, drops)
		for i := 0; i < drops; i++ {
			d := game.DropPlinko(s.src, bet, rows, risk)
			res.Drops[i] = d
			res.WinAmount += d.Win
		}
		acc.Credit(res.WinAmount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Credits = acc.Credits
	s.publish(events.NewRoundEvent(playerID, "plinko", res.RoundID, total, res.WinAmount, acc.Credits, nil))
	return res, nil
}

// CasesResult is the case-opening endpoint response.
type CasesResult struct {
	RoundID   string             `json:"round_id"`
	Openings  []game.CaseOpening `json:"openings"`
	TotalBet  int64              `json:"total_bet"`
	WinAmount int64              `json:"win_amount"`
	Credits   int64              `json:"credits"`
}

// OpenCases opens 1-3 cases at bet credits each.
func (s *Casino) OpenCases(ctx context.Context, playerID string, bet int64, count int) (*CasesResult, error) {
	if count < game.CaseMinCount || count > game.CaseMaxCount {
		return nil, domain.ErrInvalidParam
	}
	if bet <= 0 {
		return nil, domain.ErrInvalidWager
	}
	total := bet * int64(count)

	res := &CasesResult{RoundID: newRoundID(), TotalBet: total}
	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		if err := s.checkWager(acc, total); err != nil {
			return err
		}
		acc.Debit(total)
		res.Openings = make([]game.CaseOpening, count)
		for i := 0; i < count; i++ {
			o := game.OpenCase(s.src, bet)
			res.Openings[i] = o
			res.WinAmount += o.Win
		}
		acc.Credit(res.WinAmount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Credits = acc.Credits
	s.publish(events.NewRoundEvent(playerID, "cases", res.RoundID, total, res.WinAmount, acc.Credits, nil))
	return res, nil
}
