package app

import (
	"math/rand"
	"time"

	"sequence/internal/domain"
)

// Service contains the game use-cases operating on domain state. It is
// stateless apart from its rng; all match state lives in the session.
type Service struct {
	rng   *rand.Rand
	rules domain.RulesConfig
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand, rules domain.RulesConfig) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, rules: rules}
}

// Rules returns the rule parameters the service was configured with.
func (s *Service) Rules() domain.RulesConfig {
	return s.rules
}

// StartMatch validates the setup, builds the board, shuffles the draw deck
// and deals opening hands. The first player in the list moves first.
func (s *Service) StartMatch(players []domain.Player) (*domain.GameState, error) {
	if err := domain.ValidateSetup(players, s.rules); err != nil {
		return nil, err
	}

	deck := domain.Shuffle(domain.NewGameDeck(), s.rng)
	hands, remaining := domain.Deal(deck, len(players), domain.HandSize(len(players)))

	dealt := make([]domain.Player, len(players))
	for i, pl := range players {
		pl.Hand = hands[i]
		dealt[i] = pl
	}

	return &domain.GameState{
		Board:       domain.NewBoard(),
		CurrentTurn: 0,
		Players:     dealt,
		Deck:        remaining,
		Phase:       domain.PhaseInProgress,
	}, nil
}

// PlayCard applies the actor's move and emits the resulting events. On any
// rule violation the input state is returned unchanged with the error.
func (s *Service) PlayCard(state *domain.GameState, actorID string, cardIndex int, pos domain.Position) (*domain.GameState, []Event, error) {
	if !domain.IsPlayerTurn(state, actorID) {
		return state, nil, domain.ErrNotYourTurn
	}

	next, err := domain.ApplyMove(state, cardIndex, pos.Row, pos.Col, s.rules)
	if err != nil {
		return state, nil, err
	}

	events := []Event{{
		Kind:    EventStateUpdated,
		Payload: StateUpdatedPayload{State: next},
	}}

	for _, run := range next.Sequences[len(state.Sequences):] {
		events = append(events, Event{
			Kind:    EventSequenceCompleted,
			Payload: SequenceCompletedPayload{Run: run, PlayerID: actorID},
		})
	}

	if next.Phase == domain.PhaseFinished && state.Phase != domain.PhaseFinished {
		winner := next.PlayerByID(next.WinnerID)
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{WinnerID: winner.ID, WinnerName: winner.Name},
		})
	}

	return next, events, nil
}
