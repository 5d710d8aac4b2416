package game

import "testing"

func card(rank string) Card { return Card{Suit: "♠", Rank: rank} }

func TestHandValue(t *testing.T) {
	cases := []struct {
		ranks []string
		want  int
	}{
		{[]string{"A", "K"}, 21},
		{[]string{"A", "A"}, 12},
		{[]string{"A", "A", "9"}, 21},
		{[]string{"A", "5"}, 16},
		{[]string{"A", "5", "9"}, 15}, // soft ace drops to 1
		{[]string{"K", "Q", "5"}, 25},
		{[]string{"2", "3", "4"}, 9},
		{[]string{"A", "A", "A", "8"}, 21},
	}
	for _, c := range cases {
		hand := make([]Card, len(c.ranks))
		for i, r := range c.ranks {
			hand[i] = card(r)
		}
		if got := HandValue(hand); got != c.want {
			t.Errorf("HandValue(%v) = %d, want %d", c.ranks, got, c.want)
		}
	}
}

func TestDrawCardAvoidsTable(t *testing.T) {
	// script the same card twice, then a different one: the duplicate must
	// be rejected
	src := &scriptSource{ints: []int{0, 0, 0, 0, 1, 1}}
	exclude := []Card{{Suit: cardSuits[0], Rank: cardRanks[0]}}
	got := DrawCard(src, exclude)
	if got == exclude[0] {
		t.Fatalf("drew a card already on the table: %v", got)
	}
}

func TestDealBlackjackNatural(t *testing.T) {
	// A♠ K♠ for the player
	src := &scriptSource{ints: []int{0, 0, 0, 9, 1, 1, 1, 2}}
	st := DealBlackjack(src)
	if st.Status != BlackjackNatural {
		t.Fatalf("status = %s, want %s", st.Status, BlackjackNatural)
	}
	if !st.Terminal() {
		t.Fatal("a natural must be terminal")
	}
	if got := st.Payout(100); got != 250 {
		t.Fatalf("natural Payout(100) = %d, want 250", got)
	}
}

func TestStandDealerDrawsTo17(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		src := NewSeededSource(seed)
		st := DealBlackjack(src)
		if st.Terminal() {
			continue
		}
		st.Stand(src)
		if dv := HandValue(st.DealerHand); dv < 17 {
			t.Fatalf("seed=%d: dealer stood on %d", seed, dv)
		}
		if !st.Terminal() {
			t.Fatalf("seed=%d: round not terminal after stand", seed)
		}
	}
}

func TestHitCanBust(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		src := NewSeededSource(seed)
		st := DealBlackjack(src)
		for !st.Terminal() {
			st.Hit(src)
			if v := HandValue(st.PlayerHand); v > 21 && st.Status != BlackjackBust {
				t.Fatalf("seed=%d: hand %d but status %s", seed, v, st.Status)
			}
		}
		if st.Status == BlackjackBust {
			if got := st.Payout(100); got != 0 {
				t.Fatalf("bust must pay 0, got %d", got)
			}
			return
		}
	}
	t.Fatal("no bust in 200 seeded rounds")
}

func TestPayouts(t *testing.T) {
	cases := []struct {
		status string
		want   int64
	}{
		{BlackjackNatural, 250},
		{BlackjackWin, 200},
		{BlackjackPush, 100},
		{BlackjackLose, 0},
		{BlackjackBust, 0},
	}
	for _, c := range cases {
		st := &BlackjackState{Status: c.status}
		if got := st.Payout(100); got != c.want {
			t.Errorf("Payout(%s) = %d, want %d", c.status, got, c.want)
		}
	}
}

func TestDoubleDrawsExactlyOneCard(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		src := NewSeededSource(seed)
		st := DealBlackjack(src)
		if st.Terminal() {
			continue
		}
		before := len(st.PlayerHand)
		st.Double(src)
		if len(st.PlayerHand) != before+1 {
			t.Fatalf("seed=%d: double drew %d cards", seed, len(st.PlayerHand)-before)
		}
		if !st.Terminal() {
			t.Fatalf("seed=%d: round must resolve after double", seed)
		}
		if !st.Doubled {
			t.Fatal("Doubled flag not set")
		}
	}
}
