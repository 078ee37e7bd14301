package rules

import "bartog/internal/domain"

// RelativePlayer names a seat relative to the player who just played a card.
type RelativePlayer uint8

const (
	// Previous hands the turn back to the player before the mover.
	Previous RelativePlayer = iota
	// Same gives the mover another turn.
	Same
	// Next is ordinary turn order.
	Next
	// Skip passes over the next player.
	Skip
)

func (r RelativePlayer) delta() int {
	switch r {
	case Previous:
		return -1
	case Same:
		return 0
	case Skip:
		return 2
	default:
		return 1
	}
}

// Apply resolves r against mover.
func (r RelativePlayer) Apply(mover domain.PlayerID, cpuCount int) domain.PlayerID {
	return mover.Offset(r.delta(), cpuCount)
}

// ChangeKind tags the variant of a Change.
type ChangeKind uint8

const (
	// ChangeCurrentPlayer moves the turn relative to the mover.
	ChangeCurrentPlayer ChangeKind = iota
)

// Change is a side effect triggered when a card reaches the discard pile.
type Change struct {
	Kind   ChangeKind
	Player RelativePlayer
}

// CurrentPlayer builds a turn-order change.
func CurrentPlayer(rel RelativePlayer) Change {
	return Change{Kind: ChangeCurrentPlayer, Player: rel}
}

// WhenPlayed maps every card to the changes it triggers.
type WhenPlayed [domain.DeckSize][]Change
