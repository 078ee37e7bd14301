// Package anim moves detached cards across the table one frame at a time.
package anim

import "bartog/internal/domain"

// DelayFactor divides the travel distance to get the per-frame rate, so long
// and short moves finish in a comparable number of frames.
const DelayFactor uint8 = 16

// ActionKind tags what happens when an animation arrives.
type ActionKind uint8

const (
	// MoveToDiscard puts the card on the discard pile.
	MoveToDiscard ActionKind = iota
	// SelectWild declares a suit for a wild card, then discards it.
	SelectWild
	// MoveToHand gives the card to a player.
	MoveToHand
)

func (k ActionKind) String() string {
	switch k {
	case SelectWild:
		return "select_wild"
	case MoveToHand:
		return "move_to_hand"
	default:
		return "move_to_discard"
	}
}

// Action is the completion action carried by an animation. Player is only
// meaningful for SelectWild and MoveToHand.
type Action struct {
	Kind   ActionKind
	Player domain.PlayerID
}

// Discard returns a MoveToDiscard action.
func Discard() Action { return Action{Kind: MoveToDiscard} }

// Wild returns a SelectWild action for player.
func Wild(player domain.PlayerID) Action { return Action{Kind: SelectWild, Player: player} }

// ToHand returns a MoveToHand action for player.
func ToHand(player domain.PlayerID) Action { return Action{Kind: MoveToHand, Player: player} }

// CardAnimation is a card in flight towards (X, Y).
type CardAnimation struct {
	Card   domain.PositionedCard
	X      uint8
	Y      uint8
	XRate  uint8
	YRate  uint8
	Action Action
}

// New starts moving card towards (x, y).
func New(card domain.PositionedCard, x, y uint8, action Action) CardAnimation {
	return CardAnimation{
		Card:   card,
		X:      x,
		Y:      y,
		XRate:  max(absDiff(card.X, x)/DelayFactor, 1),
		YRate:  max(absDiff(card.Y, y)/DelayFactor, 1),
		Action: action,
	}
}

// IsComplete reports whether the card has arrived on both axes.
func (a *CardAnimation) IsComplete() bool {
	return a.Card.X == a.X && a.Card.Y == a.Y
}

// Approach moves the card one frame closer to its target without overshooting.
func (a *CardAnimation) Approach() {
	a.Card.X = step(a.Card.X, a.X, a.XRate)
	a.Card.Y = step(a.Card.Y, a.Y, a.YRate)
}

func step(from, to, rate uint8) uint8 {
	rate = max(rate, 1)
	switch {
	case from < to:
		return from + min(to-from, rate)
	case from > to:
		return from - min(from-to, rate)
	default:
		return from
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
