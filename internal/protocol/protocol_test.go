package protocol

import (
	"encoding/json"
	"math/rand"
	"reflect"
	"testing"

	"sequence/internal/domain"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	msg, err := NewMessage(TypeCreateGame, CreateGamePayload{PlayerName: "Alice"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Type != TypeCreateGame {
		t.Errorf("type = %q", decoded.Type)
	}
	var payload CreateGamePayload
	if err := json.Unmarshal(decoded.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.PlayerName != "Alice" {
		t.Errorf("playerName = %q", payload.PlayerName)
	}
}

func TestGameStateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck := domain.Shuffle(domain.NewGameDeck(), rng)
	hands, deck := domain.Deal(deck, 2, 7)

	state := &domain.GameState{
		Board:       domain.NewBoard().PlaceToken(3, 4, domain.TokenPlayer1),
		CurrentTurn: 1,
		Players: []domain.Player{
			{ID: "p1", Name: "Alice", TokenType: domain.TokenPlayer1, Hand: hands[0]},
			{ID: "p2", Name: "Bob", TokenType: domain.TokenPlayer2, Hand: hands[1]},
		},
		Deck:  deck,
		Phase: domain.PhaseInProgress,
		Sequences: []domain.SequenceRun{{
			Token: domain.TokenPlayer1,
			Cells: []domain.Position{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 0, Col: 5}},
		}},
	}

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatal(err)
	}
	var decoded domain.GameState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(state, &decoded) {
		t.Error("game state round trip is not identical")
	}
}

func TestErrorEvent(t *testing.T) {
	msg := Error("game not found")
	if msg.Type != TypeError {
		t.Errorf("type = %q", msg.Type)
	}
	var payload ErrorPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Message != "game not found" {
		t.Errorf("message = %q", payload.Message)
	}
}
