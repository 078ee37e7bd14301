package anim

// Position is a card's screen location.
type Position struct {
	X uint8
	Y uint8
}

// Sweep advances every animation by one frame in a single forward pass and
// returns the animations still in flight, in their original order.
//
// Each animation that arrives is handed to complete together with the
// position it held before this frame. When complete returns false the
// animation is put back at that earlier position, so it arrives again on the
// next sweep.
func Sweep(anims []CardAnimation, complete func(a CardAnimation, last Position) bool) []CardAnimation {
	pending := make([]CardAnimation, 0, len(anims))

	for _, a := range anims {
		last := Position{X: a.Card.X, Y: a.Card.Y}
		a.Approach()

		if !a.IsComplete() {
			pending = append(pending, a)
			continue
		}

		if !complete(a, last) {
			a.Card.X, a.Card.Y = last.X, last.Y
			pending = append(pending, a)
		}
	}

	return pending
}
