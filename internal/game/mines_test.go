package game

import (
	"math"
	"testing"
)

func TestMinesMultiplier(t *testing.T) {
	cases := []struct {
		bombs, revealed int
		want            float64
	}{
		{5, 1, 1.17},   // 0.94 / (20/25) = 1.175, truncated
		{1, 1, 0.97},   // 0.94 / (24/25) = 0.979...
		{3, 1, 1.06},   // 0.94 / (22/25) = 1.068...
		{24, 1, 23.49}, // 0.94 / (1/25), a float hair under 23.5
		// reveal counts outside the board pay nothing
		{3, 0, 0},
		{3, 23, 0},
		{24, 2, 0},
		{24, -1, 0},
	}
	for _, c := range cases {
		if got := MinesMultiplier(c.bombs, c.revealed); got != c.want {
			t.Errorf("MinesMultiplier(%d, %d) = %v, want %v", c.bombs, c.revealed, got, c.want)
		}
	}
}

func TestMinesMultiplierMonotonic(t *testing.T) {
	for bombs := 1; bombs <= 24; bombs++ {
		table := MinesMultiplierTable(bombs)
		if len(table) != MinesFieldSize-bombs {
			t.Fatalf("bombs=%d: table length %d, want %d", bombs, len(table), MinesFieldSize-bombs)
		}
		for i := 1; i < len(table); i++ {
			if table[i] < table[i-1] {
				t.Fatalf("bombs=%d: multiplier shrank at reveal %d: %v -> %v", bombs, i+1, table[i-1], table[i])
			}
		}
	}
}

func TestMinesMultiplierTruncatedToCents(t *testing.T) {
	for bombs := 1; bombs <= 24; bombs++ {
		for _, m := range MinesMultiplierTable(bombs) {
			if math.Floor(m*100)/100 != m {
				t.Fatalf("bombs=%d: multiplier %v carries sub-cent precision", bombs, m)
			}
		}
	}
}

func TestNewMinesFieldBombCount(t *testing.T) {
	src := NewSeededSource(42)
	for bombs := 1; bombs <= 24; bombs++ {
		st := NewMinesField(src, bombs)
		n := 0
		for _, cell := range st.Field {
			if cell == CellBomb {
				n++
			}
		}
		if n != bombs {
			t.Fatalf("field has %d bombs, want %d", n, bombs)
		}
	}
}

func TestMinesReveal(t *testing.T) {
	// scripted shuffle keeps bombs at the front of the field
	src := &scriptSource{floats: []float64{0}, ints: []int{0}}
	st := NewMinesField(src, 3)

	if st.Reveal(5) {
		t.Fatal("cell 5 should be a gem")
	}
	if st.SafeRevealed != 1 || st.CurrentCashout != MinesMultiplier(3, 1) {
		t.Fatalf("after first reveal: safe=%d cashout=%v", st.SafeRevealed, st.CurrentCashout)
	}
	if !st.Reveal(0) {
		t.Fatal("cell 0 should be a bomb")
	}
	if !st.Busted {
		t.Fatal("round should be busted")
	}
}

func TestMinesCashoutWin(t *testing.T) {
	st := &MinesState{CurrentCashout: 1.17}
	if got := st.CashoutWin(100); got != 117 {
		t.Fatalf("CashoutWin = %d, want 117", got)
	}
}
