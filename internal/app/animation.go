package app

import (
	"bartog/internal/anim"
	"bartog/internal/domain"
	"bartog/internal/rules"
)

// startDiscard lifts the card at index out of player's hand and sends it
// towards the discard pile. A wild card will ask for a suit on arrival.
func (g *Game) startDiscard(player domain.PlayerID, index uint8) bool {
	card, ok := g.HandOf(player).RemoveIfPresent(index)
	if !ok {
		return false
	}

	if player.IsHuman() {
		g.clampCursor()
	}

	g.Log.Push(player.String() + " played " + article(card.Card) + " " + card.Card.String() + ".")
	g.emit(EventCardPlayed, CardPlayedPayload{Player: player, Card: card.Card})

	action := anim.Discard()
	if g.Rules.IsWild(card.Card) {
		action = anim.Wild(player)
	}
	g.Animations = append(g.Animations, anim.New(card, domain.DiscardX, domain.DiscardY, action))
	return true
}

// article picks the indefinite article for a card's rank.
func article(card domain.Card) string {
	switch card.Rank() {
	case domain.Ace, domain.Eight:
		return "an"
	default:
		return "a"
	}
}

func (g *Game) clampCursor() {
	if n := g.Hand.Len(); n == 0 {
		g.HandIndex = 0
	} else if g.HandIndex >= n {
		g.HandIndex = n - 1
	}
}

// startDraw sends the top of the deck towards the end of player's hand. An
// empty deck is refilled from everything under the top discard. When both
// piles are empty nothing happens.
func (g *Game) startDraw(player domain.PlayerID) bool {
	hand := g.HandOf(player)
	spread, n := hand.Spread, hand.Len()

	card, ok := g.Deck.Draw()
	if !ok {
		top, ok := g.Discard.Draw()
		if !ok {
			return false
		}

		recycled := g.Discard.Drain()
		g.Deck.Fill(recycled)
		g.Deck.Shuffle(g.rng)
		g.Discard.Push(top)
		g.logger.Debug("Game: recycled %d discards into the deck", len(recycled))
		g.emit(EventDeckRecycled, DeckRecycledPayload{Cards: len(recycled)})

		if card, ok = g.Deck.Draw(); !ok {
			return false
		}
	}

	x, y := spread.Position(n+1, n)

	g.Log.Push(player.String() + " drew a card.")
	g.emit(EventCardDrawn, CardDrawnPayload{Player: player})

	from := domain.PositionedCard{Card: card, X: domain.DeckX, Y: domain.DeckY}
	g.Animations = append(g.Animations, anim.New(from, x, y, anim.ToHand(player)))
	return true
}

func (g *Game) advanceAnimations() {
	g.Animations = anim.Sweep(g.Animations, g.completeAnimation)
}

// completeAnimation runs the arrival action of a. It returns false when the
// animation has to wait for a decision and should arrive again later.
func (g *Game) completeAnimation(a anim.CardAnimation, _ anim.Position) bool {
	card := a.Card.Card

	switch a.Action.Kind {
	case anim.MoveToDiscard:
		g.moveToDiscard(card)
	case anim.SelectWild:
		player := a.Action.Player
		if player.IsCPU() {
			suit, ok := g.HandOf(player).MostCommonSuit()
			g.WildSuit, g.HasWildSuit = suit, ok
			g.logWildSelection(player)
			g.moveToDiscard(card)
			break
		}

		suit, ok := g.takeSuit()
		if !ok {
			g.Choice = ChoiceSuit
			return false
		}
		g.WildSuit, g.HasWildSuit = suit, true
		g.logWildSelection(player)
		g.moveToDiscard(card)
	case anim.MoveToHand:
		g.HandOf(a.Action.Player).Push(card)
	}
	return true
}

// AwaitingSuit reports whether a wild card the human played still needs
// its suit, either in flight or parked on the choice marker.
func (g *Game) AwaitingSuit() bool {
	if g.Choice == ChoiceSuit {
		return true
	}
	for _, a := range g.Animations {
		if a.Action.Kind == anim.SelectWild && a.Action.Player.IsHuman() {
			return true
		}
	}
	return false
}

// takeSuit returns the suit the human picked, from the last idle poll or
// from asking now.
func (g *Game) takeSuit() (domain.Suit, bool) {
	if g.pendingSuit != nil {
		suit := *g.pendingSuit
		g.pendingSuit = nil
		return suit, true
	}
	return g.chooser.ChooseSuit()
}

func (g *Game) logWildSelection(player domain.PlayerID) {
	if !g.HasWildSuit {
		return
	}
	g.Log.Push(player.String() + " selected " + g.WildSuit.String() + ".")
	g.emit(EventSuitDeclared, SuitDeclaredPayload{Player: player, Suit: g.WildSuit})
}

// moveToDiscard lands card on the pile and applies its when-played effects.
// The turn has already passed to the next player, so effects are measured
// from the player before the current one.
func (g *Game) moveToDiscard(card domain.Card) {
	if !g.Rules.IsWild(card) {
		g.HasWildSuit = false
	}

	g.Discard.Push(card)

	for _, change := range g.Rules.WhenPlayedChanges(card) {
		switch change.Kind {
		case rules.ChangeCurrentPlayer:
			mover := g.Current.Offset(-1, CPUCount)
			g.Current = change.Player.Apply(mover, CPUCount)
		}
	}
}
