package bot

import (
	"math/rand/v2"
)

// RandomBot plays a uniformly random legal card and draws when it has none.
// It shares the game's RNG, so a seed replays every CPU decision.
type RandomBot struct {
	rng *rand.Rand
}

// CalculateMove picks the move. The RNG is only advanced when there is a
// card to pick.
func (b *RandomBot) CalculateMove(seat Seat) (Move, error) {
	return pick(b.rng, legalMoves(seat)), nil
}

// WildSaverBot behaves like RandomBot but only plays a wild card when no
// other card is legal.
type WildSaverBot struct {
	rng *rand.Rand
}

func (b *WildSaverBot) CalculateMove(seat Seat) (Move, error) {
	legal := legalMoves(seat)
	if seat.IsWild == nil {
		return pick(b.rng, legal), nil
	}

	plain := make([]candidate, 0, len(legal))
	for _, c := range legal {
		if !seat.IsWild(c.card) {
			plain = append(plain, c)
		}
	}
	if len(plain) > 0 {
		return pick(b.rng, plain), nil
	}
	return pick(b.rng, legal), nil
}

func pick(rng *rand.Rand, options []candidate) Move {
	if len(options) == 0 {
		return Move{Draw: true}
	}
	chosen := options[rng.IntN(len(options))]
	return Move{Index: chosen.index, Card: chosen.card}
}
