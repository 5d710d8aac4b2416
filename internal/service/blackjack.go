package service

import (
	"context"
	"time"

	"twitch_casino/internal/domain"
	"twitch_casino/internal/events"
	"twitch_casino/internal/game"
)

// Blackjack actions.
const (
	ActionHit    = "hit"
	ActionStand  = "stand"
	ActionDouble = "double"
)

// BlackjackView is the blackjack round as shown to the player. The dealer's
// hole card stays hidden until the round resolves.
type BlackjackView struct {
	RoundID     string      `json:"round_id"`
	PlayerHand  []game.Card `json:"player_hand"`
	DealerHand  []game.Card `json:"dealer_hand"`
	PlayerValue int         `json:"player_value"`
	DealerValue int         `json:"dealer_value"`
	Status      string      `json:"status"`
	Bet         int64       `json:"bet"`
	WinAmount   int64       `json:"win_amount"`
	Credits     int64       `json:"credits"`
}

func blackjackView(id string, st *game.BlackjackState, bet, win, credits int64) *BlackjackView {
	v := &BlackjackView{
		RoundID:     id,
		PlayerHand:  st.PlayerHand,
		PlayerValue: game.HandValue(st.PlayerHand),
		Status:      st.Status,
		Bet:         bet,
		WinAmount:   win,
		Credits:     credits,
	}
	if st.Terminal() {
		v.DealerHand = st.DealerHand
		v.DealerValue = game.HandValue(st.DealerHand)
	} else {
		v.DealerHand = st.DealerHand[:1]
		v.DealerValue = game.HandValue(st.DealerHand[:1])
	}
	return v
}

// DealBlackjack starts a round: debit the bet, deal two hands. A natural 21
// pays floor(2.5x) immediately and leaves no session behind.
func (s *Casino) DealBlackjack(ctx context.Context, playerID string, bet int64) (*BlackjackView, error) {
	roundID := newRoundID()
	var st *game.BlackjackState
	var win int64

	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		if acc.ActiveGame != nil {
			return domain.ErrSessionMismatch
		}
		if err := s.checkWager(acc, bet); err != nil {
			return err
		}
		acc.Debit(bet)

		st = game.DealBlackjack(s.src)
		if st.Terminal() {
			win = st.Payout(bet)
			acc.Credit(win)
			return nil
		}
		acc.ActiveGame = &domain.Session{
			Kind:      domain.GameBlackjack,
			ID:        roundID,
			Bet:       bet,
			CreatedAt: time.Now().UTC(),
			Blackjack: st,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if st.Terminal() {
		s.publish(events.NewRoundEvent(playerID, "blackjack", roundID, bet, win, acc.Credits, st.Status))
	}
	return blackjackView(roundID, st, bet, win, acc.Credits), nil
}

// BlackjackAction advances the active round with hit, stand or double.
// Double requires balance to match the original bet and resolves the hand
// after exactly one card.
func (s *Casino) BlackjackAction(ctx context.Context, playerID, action string) (*BlackjackView, error) {
	if action != ActionHit && action != ActionStand && action != ActionDouble {
		return nil, domain.ErrInvalidParam
	}

	var st *game.BlackjackState
	var roundID string
	var bet, win int64

	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		sess := acc.ActiveGame
		if sess == nil || sess.Kind != domain.GameBlackjack {
			return domain.ErrNoActiveSession
		}
		st = sess.Blackjack
		roundID = sess.ID

		switch action {
		case ActionHit:
			st.Hit(s.src)
		case ActionStand:
			st.Stand(s.src)
		case ActionDouble:
			if acc.Credits < sess.Bet {
				return domain.ErrInsufficientFunds
			}
			acc.Debit(sess.Bet)
			sess.Bet *= 2
			st.Double(s.src)
		}
		bet = sess.Bet

		if st.Terminal() {
			win = st.Payout(sess.Bet)
			acc.Credit(win)
			acc.ActiveGame = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if st.Terminal() {
		s.publish(events.NewRoundEvent(playerID, "blackjack", roundID, bet, win, acc.Credits, st.Status))
	}
	return blackjackView(roundID, st, bet, win, acc.Credits), nil
}

// BlackjackState returns the in-progress round, or nil when there is none.
func (s *Casino) BlackjackState(ctx context.Context, playerID string) (*BlackjackView, error) {
	acc, err := s.store.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	sess := acc.ActiveGame
	if sess == nil || sess.Kind != domain.GameBlackjack {
		return nil, nil
	}
	return blackjackView(sess.ID, sess.Blackjack, sess.Bet, 0, acc.Credits), nil
}
