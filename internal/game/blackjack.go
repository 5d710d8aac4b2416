package game

// Blackjack is played against an "infinite shoe": cards are drawn
// independently, with rejection sampling only against the cards already on
// the table this round. This mirrors the original game's fairness model and
// is deliberately not a finite deck.

var (
	cardSuits = []string{"♠", "♥", "♦", "♣"}
	cardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Card is drawn on demand; there is no stored deck.
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

func (c Card) String() string { return c.Rank + c.Suit }

func cardValue(rank string) int {
	switch rank {
	case "A":
		return 11
	case "J", "Q", "K", "10":
		return 10
	default:
		return int(rank[0] - '0')
	}
}

// HandValue totals a hand with soft-ace reduction: aces count 11, then drop
// to 1 one at a time while the hand busts.
func HandValue(hand []Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		if c.Rank == "A" {
			aces++
		}
		total += cardValue(c.Rank)
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// DrawCard samples a card not currently on the table. Rejection is
// best-effort: after a bounded number of collisions the duplicate is kept,
// matching the infinite-shoe model.
func DrawCard(src Source, exclude []Card) Card {
	for attempt := 0; attempt < 20; attempt++ {
		c := Card{
			Suit: cardSuits[src.Intn(len(cardSuits))],
			Rank: cardRanks[src.Intn(len(cardRanks))],
		}
		dup := false
		for _, e := range exclude {
			if e == c {
				dup = true
				break
			}
		}
		if !dup {
			return c
		}
	}
	return Card{
		Suit: cardSuits[src.Intn(len(cardSuits))],
		Rank: cardRanks[src.Intn(len(cardRanks))],
	}
}

// Blackjack round statuses. "playing" is the only non-terminal one.
const (
	BlackjackPlaying = "playing"
	BlackjackNatural = "blackjack"
	BlackjackBust    = "bust"
	BlackjackWin     = "win"
	BlackjackLose    = "lose"
	BlackjackPush    = "push"
)

// BlackjackState is the persisted session for one blackjack round.
type BlackjackState struct {
	PlayerHand []Card `json:"player_hand"`
	DealerHand []Card `json:"dealer_hand"`
	Status     string `json:"status"`
	Doubled    bool   `json:"doubled"`
}

// DealBlackjack draws the opening two-card hands. A natural 21 resolves the
// round immediately.
func DealBlackjack(src Source) *BlackjackState {
	st := &BlackjackState{Status: BlackjackPlaying}
	var table []Card
	draw := func() Card {
		c := DrawCard(src, table)
		table = append(table, c)
		return c
	}
	st.PlayerHand = []Card{draw(), draw()}
	st.DealerHand = []Card{draw(), draw()}
	if HandValue(st.PlayerHand) == 21 {
		st.Status = BlackjackNatural
	}
	return st
}

func (st *BlackjackState) table() []Card {
	return append(append([]Card(nil), st.PlayerHand...), st.DealerHand...)
}

// Hit draws one card for the player; a total over 21 busts the round.
func (st *BlackjackState) Hit(src Source) {
	st.PlayerHand = append(st.PlayerHand, DrawCard(src, st.table()))
	if HandValue(st.PlayerHand) > 21 {
		st.Status = BlackjackBust
	}
}

// Stand runs the dealer out (draw to 17 or better) and compares totals.
func (st *BlackjackState) Stand(src Source) {
	for HandValue(st.DealerHand) < 17 {
		st.DealerHand = append(st.DealerHand, DrawCard(src, st.table()))
	}
	player, dealer := HandValue(st.PlayerHand), HandValue(st.DealerHand)
	switch {
	case dealer > 21 || player > dealer:
		st.Status = BlackjackWin
	case player == dealer:
		st.Status = BlackjackPush
	default:
		st.Status = BlackjackLose
	}
}

// Double draws exactly one card and auto-stands. The caller is responsible
// for doubling the wager first.
func (st *BlackjackState) Double(src Source) {
	st.Doubled = true
	st.PlayerHand = append(st.PlayerHand, DrawCard(src, st.table()))
	if HandValue(st.PlayerHand) > 21 {
		st.Status = BlackjackBust
		return
	}
	st.Stand(src)
}

// Payout returns the credit owed for a terminal status, given the (possibly
// doubled) bet already debited.
func (st *BlackjackState) Payout(bet int64) int64 {
	switch st.Status {
	case BlackjackNatural:
		return int64(float64(bet) * 2.5)
	case BlackjackWin:
		return bet * 2
	case BlackjackPush:
		return bet
	default:
		return 0
	}
}

// Terminal reports whether the round has resolved.
func (st *BlackjackState) Terminal() bool { return st.Status != BlackjackPlaying }
