package domain

// Suit identifies one of the four card suits.
type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Rank identifies a card rank, "2" through "10" plus "J", "Q", "K", "A".
type Rank string

// Suits lists every suit in deck-building order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Ranks lists every rank in deck-building order.
var Ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Card is a single playing card. The jack flags are derived from suit and
// rank at construction time and are never set independently: a jack is
// either one-eyed (spades, hearts) or two-eyed (diamonds, clubs), never
// both. One-eyed jacks remove an opponent's token, two-eyed jacks are wild.
type Card struct {
	Suit          Suit `json:"suit"`
	Rank          Rank `json:"rank"`
	IsOneEyedJack bool `json:"isOneEyedJack"`
	IsTwoEyedJack bool `json:"isTwoEyedJack"`
}

// NewCard builds a card with its jack flags derived from suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit:          suit,
		Rank:          rank,
		IsOneEyedJack: rank == "J" && (suit == Spades || suit == Hearts),
		IsTwoEyedJack: rank == "J" && (suit == Diamonds || suit == Clubs),
	}
}

// Matches reports whether two cards share suit and rank, ignoring identity.
// Board cells are matched this way because the layout repeats cards.
func (c Card) Matches(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}
