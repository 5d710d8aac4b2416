package game

// Dice rolls a uniform value in [0,100) against a player-chosen target.
// The multiplier is derived from the win chance under a 1% house edge, so
// expected return is 0.99 of the wager for every valid target.

const (
	DiceMinTarget = 2
	DiceMaxTarget = 98

	DiceUnder = "under"
	DiceOver  = "over"

	diceRTP = 0.99
)

// DiceRoll is the outcome of one dice round.
type DiceRoll struct {
	Roll       float64 `json:"roll"`
	Target     int     `json:"target"`
	Condition  string  `json:"condition"`
	WinChance  float64 `json:"win_chance"`
	Multiplier float64 `json:"multiplier"`
	Won        bool    `json:"won"`
}

// DiceWinChance is the winning percentage for a target/condition pair.
func DiceWinChance(target int, condition string) float64 {
	if condition == DiceUnder {
		return float64(target)
	}
	return float64(100 - target)
}

// DiceMultiplier is (100/winChance) scaled by the 0.99 RTP.
func DiceMultiplier(target int, condition string) float64 {
	return 100 / DiceWinChance(target, condition) * diceRTP
}

// RollDice resolves one round.
func RollDice(src Source, target int, condition string) DiceRoll {
	roll := src.Float64() * 100
	r := DiceRoll{
		Roll:       roll,
		Target:     target,
		Condition:  condition,
		WinChance:  DiceWinChance(target, condition),
		Multiplier: DiceMultiplier(target, condition),
	}
	if condition == DiceUnder {
		r.Won = roll < float64(target)
	} else {
		r.Won = roll > float64(target)
	}
	return r
}

// Win is the credit owed for the round.
func (r DiceRoll) Win(bet int64) int64 {
	if !r.Won {
		return 0
	}
	return int64(float64(bet) * r.Multiplier)
}
