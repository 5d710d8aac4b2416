package game

import "strconv"

// European single-zero roulette. All bets in a request resolve against one
// spin; number bets pay total-return (stake included), everything else pays
// stake times the listed multiplier.

// Physical wheel order, clockwise from zero.
var RouletteWheel = [37]int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30, 8, 23,
	10, 5, 24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
}

var rouletteRed = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true,
	16: true, 18: true, 19: true, 21: true, 23: true, 25: true, 27: true,
	30: true, 32: true, 34: true, 36: true,
}

const (
	RouletteRed   = "red"
	RouletteBlack = "black"
	RouletteGreen = "green"
)

// Bet types.
const (
	BetNumber = "number"
	BetColor  = "color"
	BetParity = "parity"
	BetHalf   = "half"
	BetDozen  = "dozen"
)

// RouletteBet is one wager on the table.
type RouletteBet struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Amount int64  `json:"amount"`
}

// RoulettePocket is where the ball landed.
type RoulettePocket struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
}

// RouletteBetResult is one bet's outcome.
type RouletteBetResult struct {
	Bet RouletteBet `json:"bet"`
	Win int64       `json:"win"`
}

// PocketColor returns red/black/green for a pocket number.
func PocketColor(n int) string {
	switch {
	case n == 0:
		return RouletteGreen
	case rouletteRed[n]:
		return RouletteRed
	default:
		return RouletteBlack
	}
}

// SpinRoulette lands the ball on a uniform wheel slot.
func SpinRoulette(src Source) RoulettePocket {
	n := RouletteWheel[src.Intn(len(RouletteWheel))]
	return RoulettePocket{Number: n, Color: PocketColor(n)}
}

// ResolveRouletteBets pays every matching bet against one spin.
func ResolveRouletteBets(pocket RoulettePocket, bets []RouletteBet) ([]RouletteBetResult, int64) {
	results := make([]RouletteBetResult, len(bets))
	var total int64
	for i, b := range bets {
		win := resolveRouletteBet(pocket, b)
		results[i] = RouletteBetResult{Bet: b, Win: win}
		total += win
	}
	return results, total
}

func resolveRouletteBet(p RoulettePocket, b RouletteBet) int64 {
	n := p.Number
	switch b.Type {
	case BetNumber:
		if b.Value == strconv.Itoa(n) {
			return b.Amount * 36
		}
	case BetColor:
		if n != 0 && b.Value == p.Color {
			return b.Amount * 2
		}
	case BetParity:
		if n == 0 {
			return 0
		}
		if (b.Value == "even" && n%2 == 0) || (b.Value == "odd" && n%2 == 1) {
			return b.Amount * 2
		}
	case BetHalf:
		if n == 0 {
			return 0
		}
		if (b.Value == "1-18" && n <= 18) || (b.Value == "19-36" && n >= 19) {
			return b.Amount * 2
		}
	case BetDozen:
		if n == 0 {
			return 0
		}
		dozen := (n-1)/12 + 1
		if (b.Value == "1st" && dozen == 1) || (b.Value == "2nd" && dozen == 2) || (b.Value == "3rd" && dozen == 3) {
			return b.Amount * 3
		}
	}
	return 0
}

// ValidRouletteBet checks a bet's type, value domain and amount.
func ValidRouletteBet(b RouletteBet) bool {
	if b.Amount <= 0 {
		return false
	}
	switch b.Type {
	case BetNumber:
		n, err := strconv.Atoi(b.Value)
		return err == nil && n >= 0 && n <= 36 && b.Value == strconv.Itoa(n)
	case BetColor:
		return b.Value == RouletteRed || b.Value == RouletteBlack
	case BetParity:
		return b.Value == "even" || b.Value == "odd"
	case BetHalf:
		return b.Value == "1-18" || b.Value == "19-36"
	case BetDozen:
		return b.Value == "1st" || b.Value == "2nd" || b.Value == "3rd"
	}
	return false
}
