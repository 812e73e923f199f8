package domain

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseWaiting is the pre-game state where players can still join.
	PhaseWaiting Phase = "waiting_for_players"
	// PhaseInProgress is the active game state where moves are played.
	PhaseInProgress Phase = "in_progress"
	// PhaseFinished is the state after a player has won.
	PhaseFinished Phase = "finished"
)

// Player holds the in-game state for a participant.
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TokenType TokenType `json:"tokenType"`
	Hand      []Card    `json:"hand"`
}

// SequenceRun records one completed run of five cells for a token type.
// Recorded runs are permanent: their cells are protected from removal and
// they count toward the win condition.
type SequenceRun struct {
	Token TokenType  `json:"token"`
	Cells []Position `json:"cells"`
}

// Contains reports whether the run includes the given cell.
func (r SequenceRun) Contains(pos Position) bool {
	for _, cell := range r.Cells {
		if cell == pos {
			return true
		}
	}
	return false
}

// GameState is the authoritative state of a match. It is owned by the
// session and mutated only through ApplyMove, which returns a fresh value
// so snapshots sent to clients never alias live state.
type GameState struct {
	Board       Board         `json:"board"`
	CurrentTurn int           `json:"currentTurn"`
	Players     []Player      `json:"players"`
	Deck        []Card        `json:"deck"`
	Phase       Phase         `json:"phase"`
	Sequences   []SequenceRun `json:"sequences"`
	WinnerID    string        `json:"winnerId,omitempty"`
}

// CurrentPlayer returns the player whose turn it is.
func (s *GameState) CurrentPlayer() *Player {
	return &s.Players[s.CurrentTurn]
}

// PlayerByID returns the player with the given id, or nil.
func (s *GameState) PlayerByID(id string) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// SequenceCount returns how many runs have been recorded for a token type.
func (s *GameState) SequenceCount(token TokenType) int {
	count := 0
	for _, run := range s.Sequences {
		if run.Token == token {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the game state. Nil slices stay nil so a
// clone is deep-equal to its source.
func (s *GameState) Clone() *GameState {
	out := &GameState{
		Board:       s.Board.Clone(),
		CurrentTurn: s.CurrentTurn,
		Players:     make([]Player, len(s.Players)),
		Phase:       s.Phase,
		WinnerID:    s.WinnerID,
	}
	for i, pl := range s.Players {
		if pl.Hand != nil {
			hand := make([]Card, len(pl.Hand))
			copy(hand, pl.Hand)
			pl.Hand = hand
		}
		out.Players[i] = pl
	}
	if s.Deck != nil {
		out.Deck = make([]Card, len(s.Deck))
		copy(out.Deck, s.Deck)
	}
	if s.Sequences != nil {
		out.Sequences = make([]SequenceRun, len(s.Sequences))
		for i, run := range s.Sequences {
			cells := make([]Position, len(run.Cells))
			copy(cells, run.Cells)
			out.Sequences[i] = SequenceRun{Token: run.Token, Cells: cells}
		}
	}
	return out
}
