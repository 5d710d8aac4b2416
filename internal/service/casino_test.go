package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"twitch_casino/internal/domain"
	"twitch_casino/internal/game"
	"twitch_casino/internal/store"
)

// scriptSource replays scripted draws so round outcomes are exact. Intn
// values are taken modulo n; Shuffle is a no-op, which leaves mines bombs
// at the front of the field.
type scriptSource struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptSource) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptSource) Intn(n int) int {
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

func (s *scriptSource) Shuffle(int, func(i, j int)) {}

func newTestCasino(src game.Source) *Casino {
	return NewCasino(store.NewMemoryStore(1000), src, Limits{MinBet: 1, MaxBet: 100000}, nil)
}

func TestAccountLazyCreate(t *testing.T) {
	c := newTestCasino(game.NewSeededSource(1))
	view, err := c.Account(context.Background(), "viewer42")
	require.NoError(t, err)
	require.Equal(t, int64(1000), view.Credits)
	require.Empty(t, view.ActiveGame)
}

func TestWagerValidation(t *testing.T) {
	c := NewCasino(store.NewMemoryStore(1000), game.NewSeededSource(1), Limits{MinBet: 10, MaxBet: 500}, nil)
	ctx := context.Background()

	for _, bet := range []int64{0, -5, 9, 501} {
		_, err := c.RollDice(ctx, "a", bet, 50, game.DiceUnder)
		require.ErrorIs(t, err, domain.ErrInvalidWager, "bet %d", bet)
	}

	_, err := c.RollDice(ctx, "a", 500, 50, game.DiceUnder)
	require.NoError(t, err)

	// balance can no longer cover the max bet after a losing streak
	_, err = c.store.Update(ctx, "a", func(acc *domain.Account) error {
		acc.Credits = 100
		return nil
	})
	require.NoError(t, err)
	_, err = c.RollDice(ctx, "a", 500, 50, game.DiceUnder)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestDiceRound(t *testing.T) {
	// roll 25 against under-50: win at 1.98x
	c := newTestCasino(&scriptSource{floats: []float64{0.25}})
	res, err := c.RollDice(context.Background(), "a", 100, 50, game.DiceUnder)
	require.NoError(t, err)
	require.True(t, res.Won)
	require.Equal(t, int64(198), res.WinAmount)
	require.Equal(t, int64(1098), res.Credits)

	_, err = c.RollDice(context.Background(), "a", 100, 99, game.DiceUnder)
	require.ErrorIs(t, err, domain.ErrInvalidParam)
}

func TestBlackjackNaturalPaysImmediately(t *testing.T) {
	// A♠ 10♠ for the player
	c := newTestCasino(&scriptSource{ints: []int{0, 0, 0, 9, 1, 1, 1, 2}})
	ctx := context.Background()

	view, err := c.DealBlackjack(ctx, "a", 100)
	require.NoError(t, err)
	require.Equal(t, game.BlackjackNatural, view.Status)
	require.Equal(t, int64(250), view.WinAmount)
	require.Equal(t, int64(1150), view.Credits)

	acc, err := c.Account(ctx, "a")
	require.NoError(t, err)
	require.Empty(t, acc.ActiveGame)
}

func TestBlackjackHoleCardHidden(t *testing.T) {
	// player 10♠ 9♥ (19), dealer 6♦ 10♣
	src := &scriptSource{ints: []int{0, 9, 1, 8, 2, 5, 3, 9, 0, 0, 1, 0}}
	c := newTestCasino(src)
	ctx := context.Background()

	view, err := c.DealBlackjack(ctx, "a", 100)
	require.NoError(t, err)
	require.Equal(t, game.BlackjackPlaying, view.Status)
	require.Len(t, view.DealerHand, 1)
	require.Equal(t, 6, view.DealerValue)
	require.Equal(t, int64(900), view.Credits)

	// stand: dealer draws A♠ for a soft 17 and loses to 19
	view, err = c.BlackjackAction(ctx, "a", ActionStand)
	require.NoError(t, err)
	require.Equal(t, game.BlackjackWin, view.Status)
	require.Len(t, view.DealerHand, 3)
	require.Equal(t, int64(200), view.WinAmount)
	require.Equal(t, int64(1100), view.Credits)

	_, err = c.BlackjackAction(ctx, "a", ActionStand)
	require.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestBlackjackDoubleDebitsAgain(t *testing.T) {
	src := &scriptSource{ints: []int{0, 9, 1, 8, 2, 5, 3, 9, 0, 0, 1, 0}}
	c := newTestCasino(src)
	ctx := context.Background()

	_, err := c.DealBlackjack(ctx, "a", 100)
	require.NoError(t, err)

	// double draws A♠ (soft 20), dealer draws A♥ to 17 and loses
	view, err := c.BlackjackAction(ctx, "a", ActionDouble)
	require.NoError(t, err)
	require.Equal(t, game.BlackjackWin, view.Status)
	require.Equal(t, int64(200), view.Bet)
	require.Equal(t, int64(400), view.WinAmount)
	require.Equal(t, int64(1200), view.Credits)
}

func TestMinesLifecycle(t *testing.T) {
	// no-op shuffle keeps bombs on cells 0..2
	c := newTestCasino(&scriptSource{floats: []float64{0}, ints: []int{0}})
	ctx := context.Background()

	view, err := c.StartMines(ctx, "a", 100, 3)
	require.NoError(t, err)
	require.Equal(t, MinesActive, view.Status)
	require.Empty(t, view.Field)
	require.Equal(t, int64(900), view.Credits)

	view, err = c.RevealMines(ctx, "a", 10)
	require.NoError(t, err)
	require.Equal(t, MinesActive, view.Status)
	require.Equal(t, 1.06, view.Multiplier)

	_, err = c.RevealMines(ctx, "a", 10)
	require.ErrorIs(t, err, domain.ErrAlreadyRevealed)

	view, err = c.CashoutMines(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, MinesCashedOut, view.Status)
	require.Equal(t, int64(106), view.WinAmount)
	require.Equal(t, int64(1006), view.Credits)
	require.NotEmpty(t, view.Field)

	_, err = c.CashoutMines(ctx, "a")
	require.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestMinesBustForfeitsBet(t *testing.T) {
	c := newTestCasino(&scriptSource{floats: []float64{0}, ints: []int{0}})
	ctx := context.Background()

	_, err := c.StartMines(ctx, "a", 100, 3)
	require.NoError(t, err)

	view, err := c.RevealMines(ctx, "a", 0)
	require.NoError(t, err)
	require.Equal(t, MinesBusted, view.Status)
	require.Equal(t, int64(0), view.WinAmount)
	require.Equal(t, int64(900), view.Credits)
	require.NotEmpty(t, view.Field)

	state, err := c.MinesState(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, state)
}

func TestMinesCashoutNeedsReveal(t *testing.T) {
	c := newTestCasino(&scriptSource{floats: []float64{0}, ints: []int{0}})
	ctx := context.Background()

	_, err := c.StartMines(ctx, "a", 100, 3)
	require.NoError(t, err)

	_, err = c.CashoutMines(ctx, "a")
	require.ErrorIs(t, err, domain.ErrInvalidParam)
}

func TestMinesFullClearCashesOut(t *testing.T) {
	// 24 bombs with a no-op shuffle leaves the lone gem on cell 24;
	// revealing it clears the board and settles the round in one step
	c := newTestCasino(&scriptSource{floats: []float64{0}, ints: []int{0}})
	ctx := context.Background()

	_, err := c.StartMines(ctx, "a", 100, 24)
	require.NoError(t, err)

	view, err := c.RevealMines(ctx, "a", 24)
	require.NoError(t, err)
	require.Equal(t, MinesCashedOut, view.Status)
	require.Equal(t, 23.49, view.Multiplier)
	require.Zero(t, view.NextMultiplier)
	require.Equal(t, int64(2349), view.WinAmount)
	require.Equal(t, int64(3249), view.Credits)
	require.NotEmpty(t, view.Field)

	// the settled view must survive JSON encoding
	_, err = json.Marshal(view)
	require.NoError(t, err)

	state, err := c.MinesState(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, state)
}

func TestSessionExclusivity(t *testing.T) {
	c := newTestCasino(&scriptSource{floats: []float64{0.9}, ints: []int{0}})
	ctx := context.Background()

	_, err := c.StartMines(ctx, "a", 100, 3)
	require.NoError(t, err)

	_, err = c.DealBlackjack(ctx, "a", 100)
	require.ErrorIs(t, err, domain.ErrSessionMismatch)
	_, err = c.StartMines(ctx, "a", 100, 3)
	require.ErrorIs(t, err, domain.ErrSessionMismatch)
	_, err = c.StartGuess(ctx, "a", 100)
	require.ErrorIs(t, err, domain.ErrSessionMismatch)
	_, err = c.SpinSlots(ctx, "a", 100)
	require.ErrorIs(t, err, domain.ErrSessionMismatch)

	// instant games carry no session and stay available
	_, err = c.RollDice(ctx, "a", 100, 50, game.DiceOver)
	require.NoError(t, err)

	// the mines session must belong to mines only
	_, err = c.BlackjackAction(ctx, "a", ActionHit)
	require.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestGuessLifecycle(t *testing.T) {
	// Intn 41 -> target 42
	c := newTestCasino(&scriptSource{ints: []int{41}})
	ctx := context.Background()

	view, err := c.StartGuess(ctx, "a", 100)
	require.NoError(t, err)
	require.Equal(t, GuessPlaying, view.Status)
	require.Equal(t, 6, view.TriesLeft)
	require.Zero(t, view.Target)
	require.Equal(t, int64(900), view.Credits)

	view, err = c.Guess(ctx, "a", 10)
	require.NoError(t, err)
	require.Equal(t, GuessPlaying, view.Status)
	require.Equal(t, game.HintHigher, view.History[0].Hint)

	// hit with 4 tries remaining: 12x
	view, err = c.Guess(ctx, "a", 42)
	require.NoError(t, err)
	require.Equal(t, GuessWon, view.Status)
	require.Equal(t, 42, view.Target)
	require.Equal(t, int64(1200), view.WinAmount)
	require.Equal(t, int64(2100), view.Credits)

	_, err = c.Guess(ctx, "a", 42)
	require.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestGuessExhaustsTries(t *testing.T) {
	c := newTestCasino(&scriptSource{ints: []int{41}})
	ctx := context.Background()

	_, err := c.StartGuess(ctx, "a", 100)
	require.NoError(t, err)

	var view *GuessView
	for i := 0; i < game.GuessTries; i++ {
		view, err = c.Guess(ctx, "a", 1)
		require.NoError(t, err)
	}
	require.Equal(t, GuessLost, view.Status)
	require.Equal(t, 42, view.Target)
	require.Equal(t, int64(900), view.Credits)
}

// slot grid script: 15 row-major pool indices. In the base bag index 79 is
// a scatter; in the free-spin bag the same index lands on the extra joker.
func slotScript() *scriptSource {
	ints := make([]int, 15)
	ints[0], ints[1], ints[2] = 79, 79, 79
	return &scriptSource{ints: ints}
}

func TestSlotBonusLifecycle(t *testing.T) {
	c := newTestCasino(slotScript())
	ctx := context.Background()

	// paid spin: three scatters award ten free spins
	res, err := c.SpinSlots(ctx, "a", 100)
	require.NoError(t, err)
	require.False(t, res.FreeSpin)
	require.Equal(t, 3, res.ScatterCount)
	require.Equal(t, 10, res.FreeSpinsAwarded)
	require.Equal(t, 10, res.FreeSpinsLeft)

	acc, err := c.Account(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, domain.GameSlotBonus, acc.ActiveGame)

	// free spin: no debit, the same indices now draw jokers that stick
	before := res.Credits
	res, err = c.SpinSlots(ctx, "a", 0)
	require.NoError(t, err)
	require.True(t, res.FreeSpin)
	require.Equal(t, 9, res.FreeSpinsLeft)
	require.GreaterOrEqual(t, res.Credits, before) // wins only, no bet taken

	// other session games are locked out while the bonus runs
	_, err = c.StartMines(ctx, "a", 100, 3)
	require.ErrorIs(t, err, domain.ErrSessionMismatch)
}

func TestBalanceEquation(t *testing.T) {
	c := newTestCasino(game.NewSeededSource(77))
	ctx := context.Background()

	var wagered, paid int64
	for i := 0; i < 500; i++ {
		res, err := c.RollDice(ctx, "a", 10, 50, game.DiceUnder)
		require.NoError(t, err)
		wagered += 10
		paid += res.WinAmount
	}

	acc, err := c.Account(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, 1000-wagered+paid, acc.Credits)
}

func TestClaimDaily(t *testing.T) {
	c := newTestCasino(game.NewSeededSource(1))
	ctx := context.Background()

	res, err := c.ClaimDaily(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, int64(200), res.Reward)
	require.Equal(t, 1, res.Streak)
	require.Equal(t, int64(1200), res.Credits)

	_, err = c.ClaimDaily(ctx, "a")
	require.ErrorIs(t, err, domain.ErrDailyClaimed)

	// yesterday's claim continues the streak
	_, err = c.store.Update(ctx, "a", func(acc *domain.Account) error {
		acc.LastDaily = acc.LastDaily.AddDate(0, 0, -1)
		return nil
	})
	require.NoError(t, err)

	res, err = c.ClaimDaily(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, int64(250), res.Reward)
	require.Equal(t, 2, res.Streak)

	// a gap resets the streak
	_, err = c.store.Update(ctx, "a", func(acc *domain.Account) error {
		acc.LastDaily = acc.LastDaily.AddDate(0, 0, -3)
		return nil
	})
	require.NoError(t, err)

	res, err = c.ClaimDaily(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, int64(200), res.Reward)
	require.Equal(t, 1, res.Streak)
}

func TestRouletteMultipleBets(t *testing.T) {
	// wheel slot 3 is pocket 19, red
	c := newTestCasino(&scriptSource{ints: []int{3}})
	ctx := context.Background()

	res, err := c.SpinRoulette(ctx, "a", []game.RouletteBet{
		{Type: game.BetColor, Value: "red", Amount: 50},
		{Type: game.BetNumber, Value: "19", Amount: 10},
		{Type: game.BetDozen, Value: "1st", Amount: 40},
	})
	require.NoError(t, err)
	require.Equal(t, 19, res.Pocket.Number)
	require.Equal(t, int64(100), res.TotalBet)
	require.Equal(t, int64(100+360), res.WinAmount)
	require.Equal(t, int64(1000-100+460), res.Credits)

	_, err = c.SpinRoulette(ctx, "a", nil)
	require.ErrorIs(t, err, domain.ErrInvalidWager)
	_, err = c.SpinRoulette(ctx, "a", []game.RouletteBet{{Type: "corner", Value: "1", Amount: 10}})
	require.ErrorIs(t, err, domain.ErrInvalidWager)
}

func TestPlinkoBatch(t *testing.T) {
	c := newTestCasino(&scriptSource{floats: []float64{0.9}})
	ctx := context.Background()

	res, err := c.DropPlinko(ctx, "a", 10, 8, game.RiskLow, 5)
	require.NoError(t, err)
	require.Len(t, res.Drops, 5)
	require.Equal(t, int64(50), res.TotalBet)
	// every ball goes right into the 5.6x edge bucket
	require.Equal(t, int64(5*56), res.WinAmount)
	require.Equal(t, int64(1000-50+280), res.Credits)

	_, err = c.DropPlinko(ctx, "a", 10, 9, game.RiskLow, 1)
	require.ErrorIs(t, err, domain.ErrInvalidParam)
	_, err = c.DropPlinko(ctx, "a", 10, 8, game.RiskLow, 1001)
	require.ErrorIs(t, err, domain.ErrInvalidParam)
}

func TestOpenCasesCount(t *testing.T) {
	c := newTestCasino(game.NewSeededSource(5))
	ctx := context.Background()

	res, err := c.OpenCases(ctx, "a", 100, 3)
	require.NoError(t, err)
	require.Len(t, res.Openings, 3)
	require.Equal(t, int64(300), res.TotalBet)
	var sum int64
	for _, o := range res.Openings {
		sum += o.Win
	}
	require.Equal(t, sum, res.WinAmount)

	_, err = c.OpenCases(ctx, "a", 100, 0)
	require.ErrorIs(t, err, domain.ErrInvalidParam)
	_, err = c.OpenCases(ctx, "a", 100, 4)
	require.ErrorIs(t, err, domain.ErrInvalidParam)
}

func TestHighLowRound(t *testing.T) {
	c := newTestCasino(&scriptSource{ints: []int{49}})
	ctx := context.Background()

	res, err := c.PlayHighLow(ctx, "a", 100, game.HighLowLow)
	require.NoError(t, err)
	require.Equal(t, 50, res.Number)
	require.True(t, res.Won)
	require.Equal(t, int64(200), res.WinAmount)
	require.Equal(t, int64(1100), res.Credits)

	_, err = c.PlayHighLow(ctx, "a", 100, "middle")
	require.ErrorIs(t, err, domain.ErrInvalidParam)
}

func TestSessionSurvivesReload(t *testing.T) {
	st := store.NewMemoryStore(1000)
	src := &scriptSource{floats: []float64{0}, ints: []int{0}}
	c := NewCasino(st, src, Limits{MinBet: 1, MaxBet: 100000}, nil)
	ctx := context.Background()

	_, err := c.StartMines(ctx, "a", 100, 3)
	require.NoError(t, err)

	// a second service instance over the same store sees the session
	c2 := NewCasino(st, src, Limits{MinBet: 1, MaxBet: 100000}, nil)
	view, err := c2.MinesState(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Equal(t, MinesActive, view.Status)

	acc, err := st.Get(ctx, "a")
	require.NoError(t, err)
	require.False(t, acc.ActiveGame.CreatedAt.IsZero())
}
