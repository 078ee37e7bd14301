package rules

import "bartog/internal/domain"

// CanPlayGraph records, for every possible top-of-discard card, which cards
// may be played on it.
type CanPlayGraph struct {
	edges [domain.DeckSize]uint64
}

// NewCanPlayGraph returns the base rule: a card may follow another of the
// same suit or the same rank.
func NewCanPlayGraph() CanPlayGraph {
	var g CanPlayGraph
	for top := domain.Card(0); top < domain.DeckSize; top++ {
		for card := domain.Card(0); card < domain.DeckSize; card++ {
			if card.Suit() == top.Suit() || card.Rank() == top.Rank() {
				g.set(card, top, true)
			}
		}
	}
	return g
}

// IsPlayableOn reports whether card may be played when top is on the discard pile.
func (g *CanPlayGraph) IsPlayableOn(card, top domain.Card) bool {
	if !card.Valid() || !top.Valid() {
		return false
	}
	return g.edges[top]&(1<<card) != 0
}

func (g *CanPlayGraph) set(card, top domain.Card, allowed bool) {
	if allowed {
		g.edges[top] |= 1 << card
	} else {
		g.edges[top] &^= 1 << card
	}
}

// GraphChange adds or removes a single edge of the graph.
type GraphChange struct {
	Card    domain.Card
	Top     domain.Card
	Allowed bool
}

// SuitChanges builds the changes that let (or stop) every card of suit be
// played on every card of top.
func SuitChanges(suit, top domain.Suit, allowed bool) []GraphChange {
	changes := make([]GraphChange, 0, domain.RankCount*domain.RankCount)
	for r := domain.Rank(0); r < domain.RankCount; r++ {
		for tr := domain.Rank(0); tr < domain.RankCount; tr++ {
			changes = append(changes, GraphChange{
				Card:    domain.NewCard(r, suit),
				Top:     domain.NewCard(tr, top),
				Allowed: allowed,
			})
		}
	}
	return changes
}

// RankChanges builds the changes that let (or stop) every card of rank be
// played on every card of top.
func RankChanges(rank, top domain.Rank, allowed bool) []GraphChange {
	changes := make([]GraphChange, 0, 16)
	for _, s := range domain.Suits {
		for _, ts := range domain.Suits {
			changes = append(changes, GraphChange{
				Card:    domain.NewCard(rank, s),
				Top:     domain.NewCard(top, ts),
				Allowed: allowed,
			})
		}
	}
	return changes
}
