package domain

import "math/rand/v2"

// NewDeck returns the 52 cards in encoding order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for c := Card(0); c < DeckSize; c++ {
		deck = append(deck, c)
	}
	return deck
}

// NewShuffledDeck returns a full deck shuffled with rng, stacked at the deck position.
func NewShuffledDeck(rng *rand.Rand) Hand {
	deck := NewHand(Stack(DeckX, DeckY))
	deck.Fill(NewDeck())
	deck.Shuffle(rng)
	return deck
}

// NewRand builds the game's random source from a 16-byte seed.
func NewRand(seed [16]byte) *rand.Rand {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(seed[i])
		lo = lo<<8 | uint64(seed[8+i])
	}
	return rand.New(rand.NewPCG(hi, lo))
}
