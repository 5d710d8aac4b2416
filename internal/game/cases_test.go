package game

import "testing"

func TestDrawCaseItemTiers(t *testing.T) {
	cases := []struct {
		roll float64
		tier string
	}{
		{0.0, TierLegendary},
		{0.0029, TierLegendary},
		{0.003, TierRare},
		{0.049, TierRare},
		{0.05, TierUncommon},
		{0.29, TierUncommon},
		{0.30, TierCommon},
		{0.999, TierCommon},
	}
	for _, c := range cases {
		src := &scriptSource{floats: []float64{c.roll, 0.5}}
		item := DrawCaseItem(src)
		if item.Tier != c.tier {
			t.Errorf("roll %v: tier %s, want %s", c.roll, item.Tier, c.tier)
		}
	}
}

func TestDrawCaseItemMultiplierInRange(t *testing.T) {
	src := NewSeededSource(4)
	ranges := map[string][2]float64{
		TierCommon:    {0.1, 0.8},
		TierUncommon:  {0.8, 2.0},
		TierRare:      {2.0, 10.0},
		TierLegendary: {10.0, 100.0},
	}
	for i := 0; i < 5000; i++ {
		item := DrawCaseItem(src)
		r, ok := ranges[item.Tier]
		if !ok {
			t.Fatalf("unknown tier %s", item.Tier)
		}
		if item.Multiplier < r[0] || item.Multiplier > r[1] {
			t.Fatalf("%s multiplier %v outside [%v,%v]", item.Tier, item.Multiplier, r[0], r[1])
		}
	}
}

func TestOpenCasePaysWinningIndex(t *testing.T) {
	src := NewSeededSource(11)
	o := OpenCase(src, 100)
	if len(o.Reel) != CaseReelSize {
		t.Fatalf("reel size %d", len(o.Reel))
	}
	if o.Winning != o.Reel[CaseWinningIndex] {
		t.Fatal("winning item is not the reel item at the winning index")
	}
	want := int64(float64(100) * o.Winning.Multiplier)
	if o.Win != want {
		t.Fatalf("win %d, want %d", o.Win, want)
	}
}

func TestCaseTierTableChances(t *testing.T) {
	table := CaseTierTable()
	sum := 0.0
	for _, ti := range table {
		sum += ti.Chance
	}
	if sum < 0.999999 || sum > 1.000001 {
		t.Fatalf("tier chances sum to %v", sum)
	}
	if table[0].Tier != TierLegendary || table[0].Chance != 0.003 {
		t.Fatalf("first tier = %+v", table[0])
	}
}
