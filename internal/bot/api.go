package bot

import (
	"bartog/internal/domain"
)

// Move represents the decision made by the AI.
type Move struct {
	Draw  bool
	Index uint8
	Card  domain.Card
}

// Seat is what a CPU player can see when deciding: its own hand and the
// current legality rules.
type Seat struct {
	Player   domain.PlayerID
	Hand     []domain.Card
	Playable func(domain.Card) bool
	IsWild   func(domain.Card) bool
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(seat Seat) (Move, error)
}

type candidate struct {
	index uint8
	card  domain.Card
}

func legalMoves(seat Seat) []candidate {
	var out []candidate
	for i, card := range seat.Hand {
		if seat.Playable(card) {
			out = append(out, candidate{index: uint8(i), card: card})
		}
	}
	return out
}
