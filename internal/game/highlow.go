package game

// High-Low: a uniform integer in [1,100], flat 2x payout for calling the
// right half. 50 belongs to the low half.

const (
	HighLowLow  = "low"
	HighLowHigh = "high"
)

// HighLowResult is the outcome of one high-low round.
type HighLowResult struct {
	Number int    `json:"number"`
	Guess  string `json:"guess"`
	Won    bool   `json:"won"`
}

// PlayHighLow resolves one round.
func PlayHighLow(src Source, guess string) HighLowResult {
	n := src.Intn(100) + 1
	r := HighLowResult{Number: n, Guess: guess}
	if guess == HighLowLow {
		r.Won = n <= 50
	} else {
		r.Won = n > 50
	}
	return r
}

// Win is the credit owed for the round.
func (r HighLowResult) Win(bet int64) int64 {
	if !r.Won {
		return 0
	}
	return bet * 2
}
