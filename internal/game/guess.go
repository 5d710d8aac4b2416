package game

// Guess-the-number: a secret uniform integer in [1,100] and six tries, with
// a ternary hint per guess. The earlier the hit, the higher the multiplier.

const (
	GuessMin   = 1
	GuessMax   = 100
	GuessTries = 6
)

const (
	HintHigher = "higher"
	HintLower  = "lower"
	HintEqual  = "equal"
)

// Multiplier keyed by tries remaining at the moment of the correct guess.
var guessMultiplier = map[int]float64{
	5: 20, 4: 12, 3: 8, 2: 4, 1: 2.5, 0: 2,
}

// GuessEntry is one guess and the hint it earned.
type GuessEntry struct {
	Guess int    `json:"guess"`
	Hint  string `json:"hint"`
}

// GuessState is the persisted session for one guess round.
type GuessState struct {
	Target    int          `json:"target"`
	TriesLeft int          `json:"tries_left"`
	History   []GuessEntry `json:"history"`
}

// NewGuessGame draws the secret number.
func NewGuessGame(src Source) *GuessState {
	return &GuessState{
		Target:    src.Intn(GuessMax-GuessMin+1) + GuessMin,
		TriesLeft: GuessTries,
	}
}

// Guess consumes one try and returns the hint. correct means the round is
// won; the round is over when correct or no tries remain.
func (st *GuessState) Guess(n int) (hint string, correct bool) {
	st.TriesLeft--
	switch {
	case n < st.Target:
		hint = HintHigher
	case n > st.Target:
		hint = HintLower
	default:
		hint = HintEqual
		correct = true
	}
	st.History = append(st.History, GuessEntry{Guess: n, Hint: hint})
	return hint, correct
}

// Win is the credit owed when the number was hit with st.TriesLeft remaining.
func (st *GuessState) Win(bet int64) int64 {
	return int64(float64(bet) * guessMultiplier[st.TriesLeft])
}
