package app

import "bartog/internal/domain"

// Reset gathers every card, reshuffles and deals a new match. The rules the
// players have voted in so far are kept and open for another change.
func (g *Game) Reset() {
	cards := make([]domain.Card, 0, domain.DeckSize)
	cards = append(cards, g.Deck.Drain()...)
	cards = append(cards, g.Discard.Drain()...)
	cards = append(cards, g.Hand.Drain()...)
	for i := range g.CPUHands {
		cards = append(cards, g.CPUHands[i].Drain()...)
	}
	for _, a := range g.Animations {
		cards = append(cards, a.Card.Card)
	}
	g.Animations = g.Animations[:0]

	g.Deck.Fill(cards)
	g.Deck.Shuffle(g.rng)
	g.deal()

	g.HandIndex = 0
	g.Current = domain.Human
	g.WildSuit, g.HasWildSuit = 0, false
	g.Winners = nil
	g.Choice = ChoiceIdle
	g.pendingSuit = nil

	g.Rules.Unlock()
	g.Status = RuleSelection

	g.logger.Info("Game: table reset")
	g.emit(EventGameReset, nil)
}
