package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"twitch_casino/internal/domain"
	"twitch_casino/internal/events"
	"twitch_casino/internal/game"
	"twitch_casino/internal/logger"
	"twitch_casino/internal/store"
)

// Limits holds the configured wager bounds.
type Limits struct {
	MinBet int64
	MaxBet int64
}

// Casino resolves game rounds. Every resolver runs inside a single
// store.Update for the player: validate the wager, debit, resolve, credit,
// one atomic read-modify-write per request.
type Casino struct {
	store  store.Store
	src    game.Source
	limits Limits
	pub    events.Publisher
}

func NewCasino(st store.Store, src game.Source, limits Limits, pub events.Publisher) *Casino {
	if pub == nil {
		pub = events.Noop{}
	}
	return &Casino{store: st, src: src, limits: limits, pub: pub}
}

// Limits returns the configured wager bounds.
func (s *Casino) Limits() Limits {
	return s.limits
}

// checkWager enforces bet bounds against config and balance. Called before
// any mutation.
func (s *Casino) checkWager(acc *domain.Account, bet int64) error {
	if bet <= 0 || bet < s.limits.MinBet || (s.limits.MaxBet > 0 && bet > s.limits.MaxBet) {
		return domain.ErrInvalidWager
	}
	if acc.Credits < bet {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// publish hands the resolved round to the event sinks without touching the
// request path.
func (s *Casino) publish(ev events.RoundEvent) {
	go s.pub.PublishRound(ev)
}

func newRoundID() string {
	return uuid.NewString()[:8]
}

// AccountView is the public account summary.
type AccountView struct {
	PlayerID    string          `json:"player_id"`
	Credits     int64           `json:"credits"`
	DailyStreak int             `json:"daily_streak"`
	ActiveGame  domain.GameKind `json:"active_game,omitempty"`
}

// Account returns (and lazily creates) the player's account summary.
func (s *Casino) Account(ctx context.Context, playerID string) (*AccountView, error) {
	acc, err := s.store.Update(ctx, playerID, func(*domain.Account) error { return nil })
	if err != nil {
		return nil, err
	}
	view := &AccountView{
		PlayerID:    acc.PlayerID,
		Credits:     acc.Credits,
		DailyStreak: acc.DailyStreak,
	}
	if acc.ActiveGame != nil {
		view.ActiveGame = acc.ActiveGame.Kind
	}
	return view, nil
}

// DailyResult is the daily-bonus response.
type DailyResult struct {
	Reward  int64 `json:"reward"`
	Streak  int   `json:"streak"`
	Credits int64 `json:"credits"`
}

const (
	dailyBase      = 200
	dailyPerStreak = 50
	dailyStreakCap = 7
)

// ClaimDaily grants the once-per-UTC-day bonus. Consecutive days grow the
// streak; a missed day resets it.
func (s *Casino) ClaimDaily(ctx context.Context, playerID string) (*DailyResult, error) {
	var res DailyResult
	acc, err := s.store.Update(ctx, playerID, func(acc *domain.Account) error {
		now := time.Now().UTC()
		today := now.Truncate(24 * time.Hour)
		last := acc.LastDaily.UTC().Truncate(24 * time.Hour)
		if !acc.LastDaily.IsZero() && last.Equal(today) {
			return domain.ErrDailyClaimed
		}
		if last.Equal(today.AddDate(0, 0, -1)) {
			acc.DailyStreak++
		} else {
			acc.DailyStreak = 1
		}
		streak := acc.DailyStreak
		if streak > dailyStreakCap {
			streak = dailyStreakCap
		}
		res.Reward = dailyBase + dailyPerStreak*int64(streak-1)
		acc.Credit(res.Reward)
		acc.LastDaily = now
		res.Streak = acc.DailyStreak
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Credits = acc.Credits
	logger.Debug("daily bonus claimed", "player", playerID, "reward", res.Reward, "streak", res.Streak)
	return &res, nil
}
