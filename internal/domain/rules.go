package domain

import "errors"

// RulesConfig carries the tunable rule parameters for a match.
type RulesConfig struct {
	SequencesToWin int
	MinPlayers     int
	MaxPlayers     int
}

// DefaultRules matches the standard two-player game.
var DefaultRules = RulesConfig{
	SequencesToWin: 2,
	MinPlayers:     2,
	MaxPlayers:     12,
}

var (
	ErrNotYourTurn          = errors.New("not your turn")
	ErrGameFinished         = errors.New("game is already finished")
	ErrCardIndexOutOfRange  = errors.New("card index out of range")
	ErrInvalidPosition      = errors.New("position is off the board")
	ErrNoTokenToRemove      = errors.New("no token to remove")
	ErrCannotRemoveOwnToken = errors.New("cannot remove your own token")
	ErrTokenInSequence      = errors.New("cannot remove a token in a completed sequence")
	ErrSpaceUnavailable     = errors.New("space is not available")
	ErrCardNotOnBoard       = errors.New("card does not match any board position")
	ErrCardPositionMismatch = errors.New("selected position does not match card")
	ErrSpaceOccupied        = errors.New("space is already occupied")

	ErrTooFewPlayers   = errors.New("not enough players to start")
	ErrTooManyPlayers  = errors.New("too many players")
	ErrDuplicateTokens = errors.New("each player must have a unique token type")
)

// IsPlayerTurn reports whether the given player is the one to move.
func IsPlayerTurn(state *GameState, playerID string) bool {
	return state.CurrentPlayer().ID == playerID
}

// ValidateSetup checks player count and token uniqueness before a match
// may start.
func ValidateSetup(players []Player, rules RulesConfig) error {
	if len(players) < rules.MinPlayers {
		return ErrTooFewPlayers
	}
	if len(players) > rules.MaxPlayers {
		return ErrTooManyPlayers
	}
	seen := make(map[TokenType]bool, len(players))
	for _, pl := range players {
		if seen[pl.TokenType] {
			return ErrDuplicateTokens
		}
		seen[pl.TokenType] = true
	}
	return nil
}

// ValidateMove checks a proposed play of the given card against the
// current state. The acting player is the one whose turn it is.
func ValidateMove(state *GameState, card Card, row, col int) error {
	if !state.Board.InBounds(row, col) {
		return ErrInvalidPosition
	}
	space := state.Board[row][col]
	mover := state.CurrentPlayer()

	if card.IsOneEyedJack {
		if space.Token == TokenNone {
			return ErrNoTokenToRemove
		}
		if space.Token == mover.TokenType {
			return ErrCannotRemoveOwnToken
		}
		pos := Position{Row: row, Col: col}
		for _, run := range state.Sequences {
			if run.Token == space.Token && run.Contains(pos) {
				return ErrTokenInSequence
			}
		}
		return nil
	}

	if card.IsTwoEyedJack {
		if space.Token != TokenNone || space.IsCorner {
			return ErrSpaceUnavailable
		}
		return nil
	}

	positions := state.Board.CardPositions(card)
	if len(positions) == 0 {
		return ErrCardNotOnBoard
	}
	matches := false
	for _, pos := range positions {
		if pos.Row == row && pos.Col == col {
			matches = true
			break
		}
	}
	if !matches {
		return ErrCardPositionMismatch
	}
	if space.Token != TokenNone {
		return ErrSpaceOccupied
	}
	return nil
}

// ApplyMove validates and applies the acting player's hand card at
// cardIndex to the targeted cell, returning a fresh state. On any
// validation failure the input state is returned unchanged alongside the
// error. A successful move always discards the played card, draws a
// replacement while the deck lasts and advances the turn by exactly one.
func ApplyMove(state *GameState, cardIndex, row, col int, rules RulesConfig) (*GameState, error) {
	if state.Phase == PhaseFinished {
		return state, ErrGameFinished
	}
	mover := state.CurrentPlayer()
	if cardIndex < 0 || cardIndex >= len(mover.Hand) {
		return state, ErrCardIndexOutOfRange
	}
	card := mover.Hand[cardIndex]
	if err := ValidateMove(state, card, row, col); err != nil {
		return state, err
	}

	next := state.Clone()
	if card.IsOneEyedJack {
		next.Board = next.Board.RemoveToken(row, col)
	} else {
		next.Board = next.Board.PlaceToken(row, col, mover.TokenType)
	}

	hand := next.CurrentPlayer().Hand
	hand = append(hand[:cardIndex], hand[cardIndex+1:]...)
	// An empty deck never fails an otherwise valid move; the hand just
	// shrinks from here on.
	if drawn, remaining, err := Draw(next.Deck); err == nil {
		next.Deck = remaining
		hand = append(hand, drawn)
	}
	next.CurrentPlayer().Hand = hand

	if !card.IsOneEyedJack {
		runs := newSequenceRuns(next.Board, row, col, mover.TokenType, next.Sequences)
		next.Sequences = append(next.Sequences, runs...)
		if next.SequenceCount(mover.TokenType) >= rules.SequencesToWin {
			next.Phase = PhaseFinished
			next.WinnerID = mover.ID
		}
	}

	next.CurrentTurn = (next.CurrentTurn + 1) % len(next.Players)
	return next, nil
}

// newSequenceRuns finds runs of five completed by the token just placed at
// the given cell. A new run may reuse at most one cell of each previously
// recorded run of the same token, so a shared cell can join two sequences
// but a longer line cannot be double-counted.
func newSequenceRuns(board Board, row, col int, token TokenType, recorded []SequenceRun) []SequenceRun {
	var runs []SequenceRun
	for _, dir := range scanDirections {
		// Walk to the start of the maximal run through the placed cell.
		startRow, startCol := row, col
		for board.InBounds(startRow-dir[0], startCol-dir[1]) &&
			board[startRow-dir[0]][startCol-dir[1]].Token == token {
			startRow -= dir[0]
			startCol -= dir[1]
		}
		line := maximalRun(board, startRow, startCol, dir[0], dir[1], token)
		if len(line) < SequenceLength {
			continue
		}
		for start := 0; start+SequenceLength <= len(line); start++ {
			candidate := SequenceRun{Token: token, Cells: line[start : start+SequenceLength]}
			if overlapOK(candidate, recorded) && overlapOK(candidate, runs) {
				runs = append(runs, candidate)
			}
		}
	}
	return runs
}

// maximalRun collects consecutive same-token cells from a starting cell.
func maximalRun(board Board, row, col, dirRow, dirCol int, token TokenType) []Position {
	var line []Position
	for board.InBounds(row, col) && board[row][col].Token == token {
		line = append(line, Position{Row: row, Col: col})
		row += dirRow
		col += dirCol
	}
	return line
}

// overlapOK reports whether the candidate shares at most one cell with
// every same-token run in the list.
func overlapOK(candidate SequenceRun, runs []SequenceRun) bool {
	for _, run := range runs {
		if run.Token != candidate.Token {
			continue
		}
		shared := 0
		for _, cell := range candidate.Cells {
			if run.Contains(cell) {
				shared++
			}
		}
		if shared > 1 {
			return false
		}
	}
	return true
}
