package sim

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"twitch_casino/internal/game"
)

// Monte-Carlo RTP harness. Each round wagers a fixed bet, resolves one
// game round against a seeded source and records the payout multiplier.

const simBet = int64(100)

// Result is the aggregate of one simulation run.
type Result struct {
	Game    string
	Rounds  int
	Wagered decimal.Decimal
	Paid    decimal.Decimal
	RTP     float64
	StdDev  float64
	Elapsed time.Duration
}

func (r *Result) String() string {
	return fmt.Sprintf("%-10s rounds=%d wagered=%s paid=%s rtp=%.4f stddev=%.4f elapsed=%s",
		r.Game, r.Rounds, r.Wagered, r.Paid, r.RTP, r.StdDev, r.Elapsed.Round(time.Millisecond))
}

// roundFunc plays one full round at the given bet and returns the total
// payout. Session games are played to completion inside the round.
type roundFunc func(src game.Source, bet int64) int64

var rounds = map[string]roundFunc{
	"dice":      diceRound,
	"highlow":   highlowRound,
	"roulette":  rouletteRound,
	"plinko":    plinkoRound,
	"cases":     casesRound,
	"slots":     slotsRound,
	"mines":     minesRound,
	"blackjack": blackjackRound,
	"guess":     guessRound,
}

// Games lists the simulatable games, sorted.
func Games() []string {
	out := make([]string, 0, len(rounds))
	for name := range rounds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Run simulates n rounds of the named game across workers parallel
// sources seeded from seed.
func Run(name string, n, workers int, seed int64, out io.Writer) (*Result, error) {
	play, ok := rounds[name]
	if !ok {
		return nil, fmt.Errorf("unknown game %q", name)
	}
	if n < 1 || workers < 1 {
		return nil, fmt.Errorf("rounds and workers must be positive")
	}

	perWorker := n / workers
	if perWorker == 0 {
		workers = 1
		perWorker = n
	}
	total := perWorker * workers

	bar := pb.StartNew(total)
	if out == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(out)
	}

	multipliers := make([]float64, total)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			src := game.NewSeededSource(seed + int64(w))
			base := w * perWorker
			for i := 0; i < perWorker; i++ {
				win := play(src, simBet)
				multipliers[base+i] = float64(win) / float64(simBet)
				bar.Increment()
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(bar.StartTime())
	bar.Finish()

	paid := decimal.Zero
	for _, m := range multipliers {
		paid = paid.Add(decimal.NewFromFloat(m).Mul(decimal.NewFromInt(simBet)))
	}
	wagered := decimal.NewFromInt(simBet).Mul(decimal.NewFromInt(int64(total)))

	return &Result{
		Game:    name,
		Rounds:  total,
		Wagered: wagered,
		Paid:    paid.Round(0),
		RTP:     stat.Mean(multipliers, nil),
		StdDev:  stat.StdDev(multipliers, nil),
		Elapsed: elapsed,
	}, nil
}

func diceRound(src game.Source, bet int64) int64 {
	return game.RollDice(src, 50, game.DiceUnder).Win(bet)
}

func highlowRound(src game.Source, bet int64) int64 {
	return game.PlayHighLow(src, game.HighLowLow).Win(bet)
}

func rouletteRound(src game.Source, bet int64) int64 {
	pocket := game.SpinRoulette(src)
	_, win := game.ResolveRouletteBets(pocket, []game.RouletteBet{
		{Type: game.BetColor, Value: "red", Amount: bet},
	})
	return win
}

func plinkoRound(src game.Source, bet int64) int64 {
	return game.DropPlinko(src, bet, 16, game.RiskMedium).Win
}

func casesRound(src game.Source, bet int64) int64 {
	return game.OpenCase(src, bet).Win
}

// slotsRound plays the paid spin plus any free-spin bonus it triggers,
// sticky wilds included.
func slotsRound(src game.Source, bet int64) int64 {
	spin := game.SpinSlots(src, bet, false, nil)
	win := spin.TotalWin

	left := spin.FreeSpinsAwarded
	var sticky []game.GridCell
	// cap the retrigger chain to keep a pathological round finite
	for guard := 0; left > 0 && guard < 1000; guard++ {
		free := game.SpinSlots(src, bet, true, sticky)
		win += free.TotalWin
		sticky = game.NewStickyWilds(free.Grid, sticky)
		left += free.FreeSpinsAwarded - 1
	}
	return win
}

// minesRound reveals three cells with three bombs on the field and cashes
// out if still alive.
func minesRound(src game.Source, bet int64) int64 {
	st := game.NewMinesField(src, 3)
	for i := 0; i < 3; i++ {
		cell := src.Intn(game.MinesFieldSize)
		for st.Revealed[cell] {
			cell = src.Intn(game.MinesFieldSize)
		}
		if st.Reveal(cell) {
			return 0
		}
	}
	return st.CashoutWin(bet)
}

// blackjackRound plays dealer-style: hit to 17, then stand.
func blackjackRound(src game.Source, bet int64) int64 {
	st := game.DealBlackjack(src)
	for !st.Terminal() && game.HandValue(st.PlayerHand) < 17 {
		st.Hit(src)
	}
	if !st.Terminal() {
		st.Stand(src)
	}
	return st.Payout(bet)
}

// guessRound bisects the remaining range, the optimal strategy.
func guessRound(src game.Source, bet int64) int64 {
	st := game.NewGuessGame(src)
	lo, hi := game.GuessMin, game.GuessMax
	for st.TriesLeft > 0 {
		mid := (lo + hi) / 2
		hint, correct := st.Guess(mid)
		if correct {
			return st.Win(bet)
		}
		if hint == game.HintHigher {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return 0
}
