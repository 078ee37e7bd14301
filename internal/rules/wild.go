package rules

import "bartog/internal/domain"

// WildFlags is the set of cards that are wild.
type WildFlags uint64

// DefaultWild makes the four Eights wild.
func DefaultWild() WildFlags {
	return RankWild(domain.Eight)
}

// RankWild returns a set containing every card of rank.
func RankWild(rank domain.Rank) WildFlags {
	var w WildFlags
	for _, s := range domain.Suits {
		w = w.With(domain.NewCard(rank, s))
	}
	return w
}

// Has reports whether card is wild.
func (w WildFlags) Has(card domain.Card) bool {
	return card.Valid() && w&(1<<card) != 0
}

// With returns a copy of w with card marked wild.
func (w WildFlags) With(card domain.Card) WildFlags {
	if !card.Valid() {
		return w
	}
	return w | 1<<card
}

// Without returns a copy of w with card no longer wild.
func (w WildFlags) Without(card domain.Card) WildFlags {
	return w &^ (1 << card)
}

// Cards lists the wild cards in encoding order.
func (w WildFlags) Cards() []domain.Card {
	var out []domain.Card
	for c := domain.Card(0); c < domain.DeckSize; c++ {
		if w.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
