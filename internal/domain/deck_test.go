package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(deck))
	}
	seen := make(map[Card]int)
	for _, c := range deck {
		seen[c]++
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestNewGameDeckDuplicatesEveryCard(t *testing.T) {
	deck := NewGameDeck()
	if len(deck) != 104 {
		t.Fatalf("expected 104 cards, got %d", len(deck))
	}
	seen := make(map[Card]int)
	for _, c := range deck {
		seen[c]++
	}
	for c, n := range seen {
		if n != 2 {
			t.Errorf("card %v/%v appears %d times, want 2", c.Suit, c.Rank, n)
		}
	}
}

func TestJackFlags(t *testing.T) {
	tests := []struct {
		suit    Suit
		rank    Rank
		oneEyed bool
		twoEyed bool
	}{
		{Spades, "J", true, false},
		{Hearts, "J", true, false},
		{Diamonds, "J", false, true},
		{Clubs, "J", false, true},
		{Spades, "Q", false, false},
		{Diamonds, "10", false, false},
	}
	for _, tt := range tests {
		c := NewCard(tt.suit, tt.rank)
		if c.IsOneEyedJack != tt.oneEyed || c.IsTwoEyedJack != tt.twoEyed {
			t.Errorf("%v %v: got one-eyed=%v two-eyed=%v, want %v/%v",
				tt.suit, tt.rank, c.IsOneEyedJack, c.IsTwoEyedJack, tt.oneEyed, tt.twoEyed)
		}
		if c.IsOneEyedJack && c.IsTwoEyedJack {
			t.Errorf("%v %v: both jack flags set", tt.suit, tt.rank)
		}
	}
}

func TestShufflePreservesCards(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := NewGameDeck()
	shuffled := Shuffle(deck, rng)
	if len(shuffled) != len(deck) {
		t.Fatalf("shuffle changed deck size: %d != %d", len(shuffled), len(deck))
	}
	count := func(cards []Card) map[Card]int {
		m := make(map[Card]int)
		for _, c := range cards {
			m[c]++
		}
		return m
	}
	before, after := count(deck), count(shuffled)
	for c, n := range before {
		if after[c] != n {
			t.Fatalf("card %v/%v count changed after shuffle", c.Suit, c.Rank)
		}
	}
}

func TestDealRoundRobinFromDeckEnd(t *testing.T) {
	deck := NewGameDeck()
	hands, remaining := Deal(deck, 2, 7)

	if len(hands) != 2 {
		t.Fatalf("expected 2 hands, got %d", len(hands))
	}
	for i, hand := range hands {
		if len(hand) != 7 {
			t.Errorf("hand %d has %d cards, want 7", i, len(hand))
		}
	}
	if len(remaining) != len(deck)-14 {
		t.Errorf("remaining deck has %d cards, want %d", len(remaining), len(deck)-14)
	}
	// One card at a time from the end: last deck card goes to player 0,
	// the one before it to player 1.
	if hands[0][0] != deck[len(deck)-1] {
		t.Errorf("player 0 first card should be the last deck card")
	}
	if hands[1][0] != deck[len(deck)-2] {
		t.Errorf("player 1 first card should be the second-to-last deck card")
	}
	// Input deck untouched.
	if len(deck) != 104 {
		t.Errorf("input deck was modified")
	}
}

func TestDrawPopsLastCard(t *testing.T) {
	deck := []Card{NewCard(Spades, "2"), NewCard(Hearts, "K")}
	card, remaining, err := Draw(deck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card != NewCard(Hearts, "K") {
		t.Errorf("expected last card, got %v/%v", card.Suit, card.Rank)
	}
	if len(remaining) != 1 {
		t.Errorf("expected 1 remaining card, got %d", len(remaining))
	}
}

func TestDrawEmptyDeck(t *testing.T) {
	_, _, err := Draw(nil)
	if err != ErrEmptyDeck {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestHandSize(t *testing.T) {
	tests := []struct {
		players int
		want    int
	}{
		{2, 7},
		{3, 6},
		{4, 5},
		{12, 5},
	}
	for _, tt := range tests {
		if got := HandSize(tt.players); got != tt.want {
			t.Errorf("HandSize(%d) = %d, want %d", tt.players, got, tt.want)
		}
	}
}
