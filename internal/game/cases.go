package game

import (
	"math"
)

// Case-opening: a rarity tier is drawn per item with a uniform multiplier
// inside the tier's range. The paying item sits at a fixed position in a
// cosmetic reel of 50 items; the other 49 never affect the payout.

const (
	CaseReelSize     = 50
	CaseWinningIndex = 39 // 40th item of the reel
	CaseMinCount     = 1
	CaseMaxCount     = 3
)

const (
	TierCommon    = "common"
	TierUncommon  = "uncommon"
	TierRare      = "rare"
	TierLegendary = "legendary"
)

// Cumulative draw thresholds, rarest first, with multiplier ranges per tier.
var caseTiers = []struct {
	tier     string
	cum      float64
	min, max float64
}{
	{TierLegendary, 0.003, 10.0, 100.0},
	{TierRare, 0.05, 2.0, 10.0},
	{TierUncommon, 0.30, 0.8, 2.0},
	{TierCommon, 1.0, 0.1, 0.8},
}

// CaseTierInfo describes one rarity tier for the info endpoint.
type CaseTierInfo struct {
	Tier          string  `json:"tier"`
	Chance        float64 `json:"chance"`
	MinMultiplier float64 `json:"min_multiplier"`
	MaxMultiplier float64 `json:"max_multiplier"`
}

// CaseTierTable returns per-tier draw chances and multiplier ranges.
func CaseTierTable() []CaseTierInfo {
	out := make([]CaseTierInfo, len(caseTiers))
	prev := 0.0
	for i, t := range caseTiers {
		out[i] = CaseTierInfo{
			Tier:          t.tier,
			Chance:        t.cum - prev,
			MinMultiplier: t.min,
			MaxMultiplier: t.max,
		}
		prev = t.cum
	}
	return out
}

// CaseItem is one simulated drop.
type CaseItem struct {
	Tier       string  `json:"tier"`
	Multiplier float64 `json:"multiplier"`
}

// CaseOpening is the outcome of one case: the reel shown to the client and
// the item that actually pays.
type CaseOpening struct {
	Reel    []CaseItem `json:"reel"`
	Winning CaseItem   `json:"winning"`
	Win     int64      `json:"win"`
}

// DrawCaseItem rolls a tier and a multiplier within it (two decimals).
func DrawCaseItem(src Source) CaseItem {
	r := src.Float64()
	for _, t := range caseTiers {
		if r < t.cum {
			m := t.min + src.Float64()*(t.max-t.min)
			return CaseItem{Tier: t.tier, Multiplier: math.Round(m*100) / 100}
		}
	}
	// r is always < 1.0; unreachable
	last := caseTiers[len(caseTiers)-1]
	return CaseItem{Tier: last.tier, Multiplier: last.min}
}

// OpenCase generates the display reel and resolves the payout from the item
// at the winning index.
func OpenCase(src Source, bet int64) CaseOpening {
	reel := make([]CaseItem, CaseReelSize)
	for i := range reel {
		reel[i] = DrawCaseItem(src)
	}
	winning := reel[CaseWinningIndex]
	return CaseOpening{
		Reel:    reel,
		Winning: winning,
		Win:     int64(float64(bet) * winning.Multiplier),
	}
}
