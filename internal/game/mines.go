package game

import (
	"math"
)

const (
	MinesFieldSize = 25
	MinesMinBombs  = 1
	MinesMaxBombs  = 24

	// Target return on a fair reveal sequence.
	minesHouseEdge = 0.94
)

const (
	CellBomb = "bomb"
	CellGem  = "gem"
)

// MinesState is the persisted session for one mines round.
type MinesState struct {
	BombCount      int      `json:"bomb_count"`
	Field          []string `json:"field"`
	Revealed       []bool   `json:"revealed"`
	SafeRevealed   int      `json:"safe_revealed"`
	CurrentCashout float64  `json:"current_cashout"`
	Busted         bool     `json:"busted"`
}

// NewMinesField places bombCount bombs uniformly via a full-array shuffle.
func NewMinesField(src Source, bombCount int) *MinesState {
	field := make([]string, MinesFieldSize)
	for i := range field {
		if i < bombCount {
			field[i] = CellBomb
		} else {
			field[i] = CellGem
		}
	}
	src.Shuffle(len(field), func(i, j int) {
		field[i], field[j] = field[j], field[i]
	})
	return &MinesState{
		BombCount: bombCount,
		Field:     field,
		Revealed:  make([]bool, MinesFieldSize),
	}
}

// MinesMultiplier is the cashout multiplier after k safe reveals with b
// bombs: the house edge over the inverse survival probability, truncated to
// cents. P(k) = prod_{i=0}^{k-1} (25-b-i)/(25-i).
func MinesMultiplier(bombCount, revealed int) float64 {
	if revealed <= 0 || revealed > MinesFieldSize-bombCount {
		return 0
	}
	p := 1.0
	for i := 0; i < revealed; i++ {
		p *= float64(MinesFieldSize-bombCount-i) / float64(MinesFieldSize-i)
	}
	return math.Floor(minesHouseEdge/p*100) / 100
}

// Reveal uncovers one cell. Hitting a bomb terminates the round; a safe
// reveal recomputes the cashout multiplier.
func (st *MinesState) Reveal(cell int) (hitBomb bool) {
	st.Revealed[cell] = true
	if st.Field[cell] == CellBomb {
		st.Busted = true
		return true
	}
	st.SafeRevealed++
	st.CurrentCashout = MinesMultiplier(st.BombCount, st.SafeRevealed)
	return false
}

// CashoutWin is the credit owed at the most recent safe reveal.
func (st *MinesState) CashoutWin(bet int64) int64 {
	return int64(float64(bet) * st.CurrentCashout)
}

// MinesMultiplierTable lists the multiplier for every reveal count, for the
// info endpoint.
func MinesMultiplierTable(bombCount int) []float64 {
	safe := MinesFieldSize - bombCount
	table := make([]float64, safe)
	for k := 1; k <= safe; k++ {
		table[k-1] = MinesMultiplier(bombCount, k)
	}
	return table
}
