package domain

import (
	"errors"
	"math/rand"
)

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
var ErrEmptyDeck = errors.New("deck is empty")

// NewDeck returns a standard 52-card deck in suit then rank order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	return deck
}

// NewGameDeck returns the 104-card draw deck used for dealing: two full
// standard decks concatenated. The board is populated from a separate,
// fixed layout and does not consume this deck.
func NewGameDeck() []Card {
	deck := NewDeck()
	return append(deck, NewDeck()...)
}

// Shuffle returns a uniformly shuffled copy of the given deck.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits hands off the end of the deck, one card per player per round,
// and returns the per-player hands along with the remaining deck. The input
// deck is not modified.
func Deal(deck []Card, numPlayers, cardsPerPlayer int) ([][]Card, []Card) {
	remaining := make([]Card, len(deck))
	copy(remaining, deck)

	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = make([]Card, 0, cardsPerPlayer)
	}

	for i := 0; i < cardsPerPlayer; i++ {
		for j := 0; j < numPlayers; j++ {
			if len(remaining) == 0 {
				return hands, remaining
			}
			card := remaining[len(remaining)-1]
			remaining = remaining[:len(remaining)-1]
			hands[j] = append(hands[j], card)
		}
	}
	return hands, remaining
}

// Draw removes and returns the last card of the deck.
func Draw(deck []Card) (Card, []Card, error) {
	if len(deck) == 0 {
		return Card{}, deck, ErrEmptyDeck
	}
	remaining := make([]Card, len(deck)-1)
	copy(remaining, deck[:len(deck)-1])
	return deck[len(deck)-1], remaining, nil
}

// HandSize returns the cards dealt per player for a given player count:
// 7 for two players, 6 for three, 5 for four or more.
func HandSize(numPlayers int) int {
	switch {
	case numPlayers <= 2:
		return 7
	case numPlayers == 3:
		return 6
	default:
		return 5
	}
}
