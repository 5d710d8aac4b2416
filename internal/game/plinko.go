package game

// Plinko: a ball takes N independent 50/50 left/right steps; the bucket
// index is the count of rights, so landings are binomially distributed and
// the edge buckets carry the big multipliers.

const (
	PlinkoMinDrops = 1
	PlinkoMaxDrops = 1000
)

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// PlinkoRows are the supported board heights.
var PlinkoRows = []int{8, 12, 16}

// Multiplier per bucket, one table per (rows, risk).
var plinkoTables = map[int]map[string][]float64{
	8: {
		RiskLow:    {5.6, 2.1, 1.1, 1, 0.5, 1, 1.1, 2.1, 5.6},
		RiskMedium: {13, 3, 1.3, 0.7, 0.4, 0.7, 1.3, 3, 13},
		RiskHigh:   {29, 4, 1.5, 0.3, 0.2, 0.3, 1.5, 4, 29},
	},
	12: {
		RiskLow:    {10, 3, 1.6, 1.4, 1.1, 1, 0.5, 1, 1.1, 1.4, 1.6, 3, 10},
		RiskMedium: {33, 11, 4, 2, 1.1, 0.6, 0.3, 0.6, 1.1, 2, 4, 11, 33},
		RiskHigh:   {170, 24, 8.1, 2, 0.7, 0.2, 0.2, 0.2, 0.7, 2, 8.1, 24, 170},
	},
	16: {
		RiskLow:    {16, 9, 2, 1.4, 1.4, 1.2, 1.1, 1, 0.5, 1, 1.1, 1.2, 1.4, 1.4, 2, 9, 16},
		RiskMedium: {110, 41, 10, 5, 3, 1.5, 1, 0.5, 0.3, 0.5, 1, 1.5, 3, 5, 10, 41, 110},
		RiskHigh:   {1000, 130, 26, 9, 4, 2, 0.2, 0.2, 0.2, 0.2, 0.2, 2, 4, 9, 26, 130, 1000},
	},
}

// PlinkoDrop is the outcome of one ball.
type PlinkoDrop struct {
	Path       []string `json:"path"` // "L"/"R" per row
	Bucket     int      `json:"bucket"`
	Multiplier float64  `json:"multiplier"`
	Win        int64    `json:"win"`
}

// ValidPlinko checks the rows/risk parameter domain.
func ValidPlinko(rows int, risk string) bool {
	byRisk, ok := plinkoTables[rows]
	if !ok {
		return false
	}
	_, ok = byRisk[risk]
	return ok
}

// PlinkoTable returns the multiplier table for a board.
func PlinkoTable(rows int, risk string) []float64 {
	return plinkoTables[rows][risk]
}

// DropPlinko runs one ball down the board.
func DropPlinko(src Source, bet int64, rows int, risk string) PlinkoDrop {
	d := PlinkoDrop{Path: make([]string, rows)}
	for i := 0; i < rows; i++ {
		if src.Float64() < 0.5 {
			d.Path[i] = "L"
		} else {
			d.Path[i] = "R"
			d.Bucket++
		}
	}
	d.Multiplier = plinkoTables[rows][risk][d.Bucket]
	d.Win = int64(float64(bet) * d.Multiplier)
	return d
}
