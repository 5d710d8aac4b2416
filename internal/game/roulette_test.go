package game

import "testing"

func TestPocketColor(t *testing.T) {
	if PocketColor(0) != RouletteGreen {
		t.Fatal("zero must be green")
	}
	if PocketColor(17) != RouletteBlack {
		t.Fatal("17 must be black")
	}
	if PocketColor(32) != RouletteRed {
		t.Fatal("32 must be red")
	}
}

func TestResolveRouletteBets(t *testing.T) {
	pocket := RoulettePocket{Number: 17, Color: RouletteBlack}
	bets := []RouletteBet{
		{Type: BetColor, Value: "black", Amount: 50},
		{Type: BetNumber, Value: "17", Amount: 10},
		{Type: BetNumber, Value: "18", Amount: 10},
		{Type: BetParity, Value: "odd", Amount: 20},
		{Type: BetHalf, Value: "1-18", Amount: 20},
		{Type: BetDozen, Value: "2nd", Amount: 30},
		{Type: BetDozen, Value: "1st", Amount: 30},
	}

	results, total := ResolveRouletteBets(pocket, bets)

	want := []int64{100, 360, 0, 40, 40, 90, 0}
	for i, r := range results {
		if r.Win != want[i] {
			t.Errorf("bet %d (%s %s): win %d, want %d", i, r.Bet.Type, r.Bet.Value, r.Win, want[i])
		}
	}
	if total != 630 {
		t.Fatalf("total = %d, want 630", total)
	}
}

func TestZeroLosesOutsideBets(t *testing.T) {
	pocket := RoulettePocket{Number: 0, Color: RouletteGreen}
	bets := []RouletteBet{
		{Type: BetColor, Value: "red", Amount: 100},
		{Type: BetColor, Value: "black", Amount: 100},
		{Type: BetParity, Value: "even", Amount: 100},
		{Type: BetHalf, Value: "1-18", Amount: 100},
		{Type: BetDozen, Value: "1st", Amount: 100},
	}
	_, total := ResolveRouletteBets(pocket, bets)
	if total != 0 {
		t.Fatalf("zero paid outside bets: %d", total)
	}

	_, numTotal := ResolveRouletteBets(pocket, []RouletteBet{{Type: BetNumber, Value: "0", Amount: 10}})
	if numTotal != 360 {
		t.Fatalf("straight-up zero paid %d, want 360", numTotal)
	}
}

func TestSpinRouletteUsesWheel(t *testing.T) {
	// slot 3 of the physical wheel is pocket 19
	src := &scriptSource{ints: []int{3}}
	p := SpinRoulette(src)
	if p.Number != 19 || p.Color != RouletteRed {
		t.Fatalf("pocket = %+v, want 19 red", p)
	}
}

func TestValidRouletteBet(t *testing.T) {
	valid := []RouletteBet{
		{Type: BetNumber, Value: "0", Amount: 1},
		{Type: BetNumber, Value: "36", Amount: 1},
		{Type: BetColor, Value: "red", Amount: 1},
		{Type: BetParity, Value: "odd", Amount: 1},
		{Type: BetHalf, Value: "19-36", Amount: 1},
		{Type: BetDozen, Value: "3rd", Amount: 1},
	}
	for _, b := range valid {
		if !ValidRouletteBet(b) {
			t.Errorf("rejected valid bet %+v", b)
		}
	}

	invalid := []RouletteBet{
		{Type: BetNumber, Value: "37", Amount: 1},
		{Type: BetNumber, Value: "-1", Amount: 1},
		{Type: BetNumber, Value: "007", Amount: 1},
		{Type: BetNumber, Value: "abc", Amount: 1},
		{Type: BetColor, Value: "green", Amount: 1},
		{Type: BetParity, Value: "none", Amount: 1},
		{Type: BetHalf, Value: "0-18", Amount: 1},
		{Type: BetDozen, Value: "4th", Amount: 1},
		{Type: "split", Value: "1", Amount: 1},
		{Type: BetColor, Value: "red", Amount: 0},
		{Type: BetColor, Value: "red", Amount: -5},
	}
	for _, b := range invalid {
		if ValidRouletteBet(b) {
			t.Errorf("accepted invalid bet %+v", b)
		}
	}
}
