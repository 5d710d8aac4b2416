package game

import (
	"math"
)

// Slot symbols. The scatter never pays on a line; the joker is wild.
const (
	SymCherry  = "🍒"
	SymLemon   = "🍋"
	SymGrape   = "🍇"
	SymBell    = "🔔"
	SymDiamond = "💎"
	SymSeven   = "7️⃣"
	SymJoker   = "🃏"
	SymScatter = "🌟"
)

const (
	SlotCols = 5
	SlotRows = 3
)

// Symbol drop weights encoded as a flattened bag: frequency in the pool is
// the weight. During free spins the joker weight is bumped from 2 to 3.
var slotWeights = []struct {
	sym        string
	base, free int
}{
	{SymCherry, 20, 20},
	{SymLemon, 18, 18},
	{SymGrape, 15, 15},
	{SymBell, 12, 12},
	{SymDiamond, 8, 8},
	{SymSeven, 4, 4},
	{SymJoker, 2, 3},
	{SymScatter, 2, 2},
}

var slotBaseMultiplier = map[string]float64{
	SymCherry:  1.0,
	SymLemon:   1.5,
	SymGrape:   2.0,
	SymBell:    3.0,
	SymDiamond: 5.0,
	SymSeven:   10.0,
	SymJoker:   15.0,
}

// Match-length multipliers for 3, 4 and 5 of a kind.
var slotLengthMultiplier = map[int]float64{3: 1, 4: 3, 5: 7}

// The 11 fixed paylines, as row index per column on the 5x3 grid.
var SlotPaylines = [11][SlotCols]int{
	{1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0},
	{2, 2, 2, 2, 2},
	{0, 1, 2, 1, 0},
	{2, 1, 0, 1, 2},
	{0, 0, 1, 2, 2},
	{2, 2, 1, 0, 0},
	{1, 0, 0, 0, 1},
	{1, 2, 2, 2, 1},
	{0, 1, 1, 1, 0},
	{2, 1, 1, 1, 2},
}

// Free spins awarded per scatter count in the raw grid.
var slotScatterAward = map[int]int{3: 10, 4: 15, 5: 20}

// GridCell addresses one position on the 5x3 grid.
type GridCell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SlotBonusState is the free-spin bonus round carried between spins. Sticky
// wilds are overlaid onto every draw until the counter runs out.
type SlotBonusState struct {
	FreeSpinsLeft int        `json:"free_spins_left"`
	StickyWilds   []GridCell `json:"sticky_wilds"`
}

// LineWin is one winning payline.
type LineWin struct {
	Line   int    `json:"line"`
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
	Win    int64  `json:"win"`
}

// SlotSpin is the outcome of a single grid draw.
type SlotSpin struct {
	Grid             [SlotRows][SlotCols]string `json:"grid"`
	Lines            []LineWin                  `json:"lines"`
	TotalWin         int64                      `json:"total_win"`
	ScatterCount     int                        `json:"scatter_count"`
	FreeSpinsAwarded int                        `json:"free_spins_awarded"`
}

// SlotPaytable returns the per-symbol base multipliers for the paytable
// endpoint.
func SlotPaytable() map[string]float64 {
	out := make(map[string]float64, len(slotBaseMultiplier))
	for sym, m := range slotBaseMultiplier {
		out[sym] = m
	}
	return out
}

// SlotScatterAwards returns free spins granted per scatter count.
func SlotScatterAwards() map[int]int {
	out := make(map[int]int, len(slotScatterAward))
	for n, spins := range slotScatterAward {
		out[n] = spins
	}
	return out
}

func slotPool(freeSpin bool) []string {
	pool := make([]string, 0, 84)
	for _, w := range slotWeights {
		n := w.base
		if freeSpin {
			n = w.free
		}
		for i := 0; i < n; i++ {
			pool = append(pool, w.sym)
		}
	}
	return pool
}

// SpinSlots draws a full grid and evaluates it. sticky wilds (non-nil during
// free spins) are overlaid after the draw; scatters are counted on the raw
// grid before the overlay.
func SpinSlots(src Source, bet int64, freeSpin bool, sticky []GridCell) SlotSpin {
	pool := slotPool(freeSpin)

	var spin SlotSpin
	for r := 0; r < SlotRows; r++ {
		for c := 0; c < SlotCols; c++ {
			spin.Grid[r][c] = pool[src.Intn(len(pool))]
		}
	}

	for r := 0; r < SlotRows; r++ {
		for c := 0; c < SlotCols; c++ {
			if spin.Grid[r][c] == SymScatter {
				spin.ScatterCount++
			}
		}
	}

	for _, cell := range sticky {
		spin.Grid[cell.Row][cell.Col] = SymJoker
	}

	spin.Lines, spin.TotalWin = evaluateLines(spin.Grid, bet)

	if freeSpin {
		// retrigger: every scatter during the bonus adds one spin
		spin.FreeSpinsAwarded = spin.ScatterCount
	} else if award, ok := slotScatterAward[spin.ScatterCount]; ok {
		spin.FreeSpinsAwarded = award
	}

	return spin
}

// evaluateLines scores every payline left to right. The leftmost non-wild
// symbol anchors the line; jokers substitute for anything except the scatter.
// An all-joker line pays as jokers.
func evaluateLines(grid [SlotRows][SlotCols]string, bet int64) ([]LineWin, int64) {
	var wins []LineWin
	var total int64

	for li, line := range SlotPaylines {
		anchor := ""
		count := 0
		for c := 0; c < SlotCols; c++ {
			sym := grid[line[c]][c]
			if sym == SymScatter {
				break
			}
			if sym == SymJoker {
				count++
				continue
			}
			if anchor == "" {
				anchor = sym
				count++
				continue
			}
			if sym == anchor {
				count++
				continue
			}
			break
		}
		if anchor == "" && count > 0 {
			anchor = SymJoker
		}
		if count < 3 {
			continue
		}
		win := int64(math.Ceil(float64(bet) * slotBaseMultiplier[anchor] * slotLengthMultiplier[count]))
		wins = append(wins, LineWin{Line: li, Symbol: anchor, Count: count, Win: win})
		total += win
	}
	return wins, total
}

// NewStickyWilds collects joker positions from a free-spin grid, merged with
// the wilds that were already stuck.
func NewStickyWilds(grid [SlotRows][SlotCols]string, prev []GridCell) []GridCell {
	seen := make(map[GridCell]bool, len(prev))
	out := append([]GridCell(nil), prev...)
	for _, cell := range prev {
		seen[cell] = true
	}
	for r := 0; r < SlotRows; r++ {
		for c := 0; c < SlotCols; c++ {
			if grid[r][c] == SymJoker {
				cell := GridCell{Row: r, Col: c}
				if !seen[cell] {
					seen[cell] = true
					out = append(out, cell)
				}
			}
		}
	}
	return out
}
