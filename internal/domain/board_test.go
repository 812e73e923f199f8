package domain

import "testing"

func TestNewBoardShape(t *testing.T) {
	board := NewBoard()
	if len(board) != BoardSize {
		t.Fatalf("expected %d rows, got %d", BoardSize, len(board))
	}

	corners := 0
	cardCells := 0
	for row := range board {
		if len(board[row]) != BoardSize {
			t.Fatalf("row %d has %d cells", row, len(board[row]))
		}
		for col := range board[row] {
			space := board[row][col]
			if space.Token != TokenNone {
				t.Errorf("(%d,%d) starts with token %v", row, col, space.Token)
			}
			if space.IsCorner {
				corners++
				if space.Card != nil {
					t.Errorf("corner (%d,%d) has a card", row, col)
				}
			} else {
				if space.Card == nil {
					t.Errorf("non-corner (%d,%d) has no card", row, col)
				} else {
					cardCells++
				}
			}
		}
	}
	if corners != 4 {
		t.Errorf("expected 4 corners, got %d", corners)
	}
	if cardCells != 96 {
		t.Errorf("expected 96 card cells, got %d", cardCells)
	}

	for _, pos := range [][2]int{{0, 0}, {0, 9}, {9, 0}, {9, 9}} {
		if !board[pos[0]][pos[1]].IsCorner {
			t.Errorf("(%d,%d) should be a corner", pos[0], pos[1])
		}
	}
	// No jacks on the board; jacks live in the draw deck only.
	for row := range board {
		for col := range board[row] {
			if c := board[row][col].Card; c != nil && c.Rank == "J" {
				t.Errorf("jack bound to board at (%d,%d)", row, col)
			}
		}
	}
}

func TestFreshBoardHasNoSequence(t *testing.T) {
	board := NewBoard()
	for _, token := range []TokenType{TokenNone, TokenPlayer1, TokenPlayer2} {
		if token == TokenNone {
			continue
		}
		if board.HasSequence(token) {
			t.Errorf("fresh board reports a sequence for %v", token)
		}
	}
}

func TestPlaceTokenReturnsNewBoard(t *testing.T) {
	board := NewBoard()
	updated := board.PlaceToken(4, 4, TokenPlayer1)

	if board[4][4].Token != TokenNone {
		t.Error("original board was mutated")
	}
	if updated[4][4].Token != TokenPlayer1 {
		t.Error("token was not placed on the new board")
	}
	for row := range board {
		for col := range board[row] {
			if row == 4 && col == 4 {
				continue
			}
			if board[row][col].Token != updated[row][col].Token {
				t.Errorf("unrelated cell (%d,%d) changed", row, col)
			}
		}
	}
}

func TestRemoveToken(t *testing.T) {
	board := NewBoard().PlaceToken(2, 3, TokenPlayer2)
	cleared := board.RemoveToken(2, 3)
	if cleared[2][3].Token != TokenNone {
		t.Error("token was not removed")
	}
	if board[2][3].Token != TokenPlayer2 {
		t.Error("original board was mutated")
	}
}

func TestCardPositions(t *testing.T) {
	board := NewBoard()
	positions := board.CardPositions(NewCard(Hearts, "Q"))
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions for HQ, got %d", len(positions))
	}
	want := map[Position]bool{{Row: 3, Col: 3}: true, {Row: 8, Col: 2}: true}
	for _, pos := range positions {
		if !want[pos] {
			t.Errorf("unexpected position %+v", pos)
		}
	}
}

func TestHasSequenceOrientations(t *testing.T) {
	tests := []struct {
		name  string
		cells []Position
	}{
		{"horizontal", []Position{{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}}},
		{"vertical", []Position{{2, 7}, {3, 7}, {4, 7}, {5, 7}, {6, 7}}},
		{"diagonal down-right", []Position{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}},
		{"diagonal down-left", []Position{{1, 8}, {2, 7}, {3, 6}, {4, 5}, {5, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard()
			for _, pos := range tt.cells[:4] {
				board = board.PlaceToken(pos.Row, pos.Col, TokenPlayer1)
			}
			if board.HasSequence(TokenPlayer1) {
				t.Fatal("four tokens should not form a sequence")
			}
			board = board.PlaceToken(tt.cells[4].Row, tt.cells[4].Col, TokenPlayer1)
			if !board.HasSequence(TokenPlayer1) {
				t.Fatal("five tokens in a line should form a sequence")
			}
			if board.HasSequence(TokenPlayer2) {
				t.Fatal("sequence reported for the wrong token")
			}
		})
	}
}

func TestCanFormSequenceScansBothDirections(t *testing.T) {
	board := NewBoard()
	for col := 1; col <= 5; col++ {
		board = board.PlaceToken(6, col, TokenPlayer2)
	}
	// The run is found from every one of its cells: either end, the exact
	// middle, and the cells between.
	for col := 1; col <= 5; col++ {
		if !board.CanFormSequence(6, col, TokenPlayer2, 5) {
			t.Errorf("run not detected from column %d", col)
		}
	}
	if board.CanFormSequence(6, 1, TokenPlayer2, 6) {
		t.Error("six-length run reported for a five-run")
	}
	if board.CanFormSequence(6, 7, TokenPlayer2, 5) {
		t.Error("run reported from a cell outside the line")
	}
}

func TestCanFormSequenceMiddleOfDiagonal(t *testing.T) {
	board := NewBoard()
	for i := 1; i <= 5; i++ {
		board = board.PlaceToken(i, i, TokenPlayer1)
	}
	if !board.CanFormSequence(3, 3, TokenPlayer1, 5) {
		t.Error("diagonal run through the middle cell not detected")
	}
	if board.CanFormSequence(3, 3, TokenPlayer2, 5) {
		t.Error("run reported for the wrong token")
	}
}

func TestValidPlacementsAndRemovals(t *testing.T) {
	board := NewBoard()
	if got := len(board.ValidPlacements()); got != 96 {
		t.Errorf("fresh board should have 96 placements, got %d", got)
	}

	board = board.PlaceToken(5, 5, TokenPlayer1)
	board = board.PlaceToken(5, 6, TokenPlayer2)
	if got := len(board.ValidPlacements()); got != 94 {
		t.Errorf("expected 94 placements, got %d", got)
	}

	removals := board.ValidRemovals(TokenPlayer1)
	if len(removals) != 1 || removals[0] != (Position{Row: 5, Col: 6}) {
		t.Errorf("expected only the opponent token to be removable, got %+v", removals)
	}
}

func TestLinePositionsStopsAtEdge(t *testing.T) {
	board := NewBoard()
	line := board.LinePositions(8, 8, 1, 1, 5)
	if len(line) != 2 {
		t.Errorf("expected 2 positions before the edge, got %d", len(line))
	}
}
