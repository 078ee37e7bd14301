package domain

import "math/rand/v2"

// Hand is an ordered pile of cards together with the spread used to draw it.
// The deck, the discard pile and every player's hand are all Hands; cards only
// move between them through the transfer methods below.
type Hand struct {
	cards  []Card
	Spread Spread
}

// NewHand returns an empty hand drawn with the given spread.
func NewHand(spread Spread) Hand {
	return Hand{
		cards:  make([]Card, 0, DeckSize),
		Spread: spread,
	}
}

// Len returns the number of cards held, saturating at 255.
func (h *Hand) Len() uint8 {
	if n := len(h.cards); n < 0xFF {
		return uint8(n)
	}
	return 0xFF
}

// IsEmpty reports whether the hand holds no cards.
func (h *Hand) IsEmpty() bool { return len(h.cards) == 0 }

// Cards returns a copy of the held cards in display order.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Get returns the card at index, if present.
func (h *Hand) Get(index uint8) (Card, bool) {
	if int(index) >= len(h.cards) {
		return 0, false
	}
	return h.cards[index], true
}

// Last returns the top card, if any.
func (h *Hand) Last() (Card, bool) {
	if len(h.cards) == 0 {
		return 0, false
	}
	return h.cards[len(h.cards)-1], true
}

// Draw pops the top card.
func (h *Hand) Draw() (Card, bool) {
	card, ok := h.Last()
	if ok {
		h.cards = h.cards[:len(h.cards)-1]
	}
	return card, ok
}

// Push places a card on top.
func (h *Hand) Push(card Card) {
	h.cards = append(h.cards, card)
}

// DrawFrom moves the top card of other onto this hand. It is a no-op when
// other is empty.
func (h *Hand) DrawFrom(other *Hand) {
	if card, ok := other.Draw(); ok {
		h.Push(card)
	}
}

// DiscardTo moves the card at index onto other.
func (h *Hand) DiscardTo(other *Hand, index int) {
	if index < 0 || index >= len(h.cards) {
		return
	}
	other.Push(h.remove(index))
}

// RemoveIfPresent detaches the card at index, reporting where it was drawn.
func (h *Hand) RemoveIfPresent(index uint8) (PositionedCard, bool) {
	n := h.Len()
	if index >= n {
		return PositionedCard{}, false
	}

	x, y := h.Spread.Position(n, index)
	return PositionedCard{Card: h.remove(int(index)), X: x, Y: y}, true
}

// Fill appends the given cards.
func (h *Hand) Fill(cards []Card) {
	h.cards = append(h.cards, cards...)
}

// Drain removes and returns every card.
func (h *Hand) Drain() []Card {
	out := h.cards
	h.cards = make([]Card, 0, DeckSize)
	return out
}

// Shuffle permutes the hand with the provided source.
func (h *Hand) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(h.cards), func(i, j int) { h.cards[i], h.cards[j] = h.cards[j], h.cards[i] })
}

// MostCommonSuit returns the suit held most often. Ties go to the suit that
// comes first in Suits. It reports false for an empty hand.
func (h *Hand) MostCommonSuit() (Suit, bool) {
	if len(h.cards) == 0 {
		return 0, false
	}

	var counts [4]int
	for _, c := range h.cards {
		counts[c.Suit()]++
	}

	best := Suits[0]
	for _, s := range Suits[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best, true
}

func (h *Hand) remove(index int) Card {
	card := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return card
}
