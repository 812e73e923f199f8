package domain

// boardLayout is the fixed card layout painted onto the production board,
// mirroring the physical game board. Entries are a suit letter followed by
// a rank. The four extreme corners are free spaces; their entries are never
// parsed.
var boardLayout = [BoardSize][BoardSize]string{
	{"SJ", "D6", "D7", "D8", "D9", "D10", "DQ", "DK", "DA", "S2"},
	{"D5", "H3", "H2", "S2", "S3", "S4", "S5", "S6", "S7", "CA"},
	{"D4", "H4", "DK", "DA", "CA", "CK", "CQ", "C10", "S8", "CK"},
	{"D3", "H5", "DQ", "HQ", "H10", "H9", "H8", "C9", "S9", "CQ"},
	{"D2", "H6", "D10", "HK", "H3", "H2", "H7", "C8", "H10", "C10"},
	{"SA", "H7", "D9", "HA", "H4", "H5", "H6", "C7", "CQ", "C9"},
	{"SK", "H8", "D8", "C2", "C3", "C4", "C5", "C6", "SK", "C8"},
	{"SQ", "H9", "D7", "D6", "D5", "D4", "D3", "D2", "SA", "C7"},
	{"S10", "H10", "HQ", "HK", "HA", "C2", "C3", "C4", "C5", "C6"},
	{"C3", "S9", "S8", "S7", "S6", "S5", "S4", "S3", "S2", "S5"},
}

var layoutSuits = map[byte]Suit{
	'S': Spades,
	'H': Hearts,
	'D': Diamonds,
	'C': Clubs,
}

// parseLayoutCard turns a layout entry such as "H10" into a card.
func parseLayoutCard(entry string) Card {
	return NewCard(layoutSuits[entry[0]], Rank(entry[1:]))
}
