package domain

// BoardSize is the fixed side length of the board grid.
const BoardSize = 10

// SequenceLength is the run length that completes a sequence.
const SequenceLength = 5

// TokenType marks the owner of a token on a board space.
type TokenType string

const (
	TokenNone    TokenType = "none"
	TokenPlayer1 TokenType = "player1"
	TokenPlayer2 TokenType = "player2"
)

// Position addresses a single board cell.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoardSpace is one cell of the board. Corner spaces have no card, never
// hold a token and are never targetable.
type BoardSpace struct {
	Card     *Card     `json:"card"`
	Token    TokenType `json:"token"`
	IsCorner bool      `json:"isCorner"`
}

// Board is the 10x10 grid of spaces. Boards are treated as immutable:
// every mutator returns a fresh copy so snapshots broadcast to clients
// never alias live state.
type Board [][]BoardSpace

func isCornerCell(row, col int) bool {
	return (row == 0 || row == BoardSize-1) && (col == 0 || col == BoardSize-1)
}

// NewEmptyBoard builds a board of card-less, token-less spaces with the
// four extreme corners marked free.
func NewEmptyBoard() Board {
	board := make(Board, BoardSize)
	for row := range board {
		board[row] = make([]BoardSpace, BoardSize)
		for col := range board[row] {
			board[row][col] = BoardSpace{Token: TokenNone, IsCorner: isCornerCell(row, col)}
		}
	}
	return board
}

// NewBoard builds the production board, painting every non-corner cell
// with its card from the fixed layout.
func NewBoard() Board {
	board := NewEmptyBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if board[row][col].IsCorner {
				continue
			}
			card := parseLayoutCard(boardLayout[row][col])
			board[row][col].Card = &card
		}
	}
	return board
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for row := range b {
		out[row] = make([]BoardSpace, len(b[row]))
		for col := range b[row] {
			space := b[row][col]
			if space.Card != nil {
				card := *space.Card
				space.Card = &card
			}
			out[row][col] = space
		}
	}
	return out
}

// InBounds reports whether the cell address is on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(b) && col >= 0 && col < len(b[0])
}

// PlaceToken returns a new board with a token set on the targeted cell.
func (b Board) PlaceToken(row, col int, token TokenType) Board {
	out := b.Clone()
	out[row][col].Token = token
	return out
}

// RemoveToken returns a new board with the targeted cell's token cleared.
func (b Board) RemoveToken(row, col int) Board {
	out := b.Clone()
	out[row][col].Token = TokenNone
	return out
}

// CardPositions returns every cell whose bound card matches the given
// card's suit and rank. The layout repeats cards, so a card usually maps
// to more than one cell.
func (b Board) CardPositions(card Card) []Position {
	var positions []Position
	for row := range b {
		for col := range b[row] {
			if b[row][col].Card != nil && b[row][col].Card.Matches(card) {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// ValidPlacements returns every empty, non-corner cell.
func (b Board) ValidPlacements() []Position {
	var positions []Position
	for row := range b {
		for col := range b[row] {
			if b[row][col].Token == TokenNone && !b[row][col].IsCorner {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// ValidRemovals returns every cell holding a token that does not belong to
// the given player.
func (b Board) ValidRemovals(token TokenType) []Position {
	var positions []Position
	for row := range b {
		for col := range b[row] {
			t := b[row][col].Token
			if t != TokenNone && t != token {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// scanDirections are the four line orientations checked for sequences.
var scanDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{1, -1}, // diagonal down-left
}

// LinePositions walks from a starting cell in the given direction,
// collecting up to length cells and stopping early at the board edge.
func (b Board) LinePositions(startRow, startCol, dirRow, dirCol, length int) []Position {
	positions := make([]Position, 0, length)
	for i := 0; i < length; i++ {
		row := startRow + i*dirRow
		col := startCol + i*dirCol
		if !b.InBounds(row, col) {
			break
		}
		positions = append(positions, Position{Row: row, Col: col})
	}
	return positions
}

// CanFormSequence reports whether a full run of length consecutive cells
// holding the given token passes through the cell, in any of the four
// orientations. The cell may sit anywhere inside the run, so contiguous
// cells are counted outward in both directions.
func (b Board) CanFormSequence(row, col int, token TokenType, length int) bool {
	if !b.InBounds(row, col) || b[row][col].Token != token {
		return false
	}
	for _, dir := range scanDirections {
		run := 1
		for _, sign := range []int{1, -1} {
			r, c := row+sign*dir[0], col+sign*dir[1]
			for b.InBounds(r, c) && b[r][c].Token == token {
				run++
				r += sign * dir[0]
				c += sign * dir[1]
			}
		}
		if run >= length {
			return true
		}
	}
	return false
}

// HasSequence exhaustively scans the whole board for any run of five
// same-token cells in a row, column or diagonal. This is the authoritative
// board-level win-line detector.
func (b Board) HasSequence(token TokenType) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col].Token != token {
				continue
			}
			for _, dir := range scanDirections {
				line := b.LinePositions(row, col, dir[0], dir[1], SequenceLength)
				if len(line) < SequenceLength {
					continue
				}
				full := true
				for _, pos := range line {
					if b[pos.Row][pos.Col].Token != token {
						full = false
						break
					}
				}
				if full {
					return true
				}
			}
		}
	}
	return false
}
