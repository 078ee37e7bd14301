package domain

// Axis is the direction a hand's cards are laid out along.
type Axis uint8

const (
	// LeftToRight lays cards out horizontally at a fixed y.
	LeftToRight Axis = iota
	// TopToBottom lays cards out vertically at a fixed x.
	TopToBottom
)

// Spread describes how a hand is drawn: the two boundary coordinates along
// Axis and the fixed coordinate on the cross axis.
type Spread struct {
	Axis  Axis
	Min   uint8
	Max   uint8
	Cross uint8
}

// LTR builds a left-to-right spread between the given edges at height y.
func LTR(edges [2]uint8, y uint8) Spread {
	return Spread{Axis: LeftToRight, Min: edges[0], Max: edges[1], Cross: y}
}

// TTB builds a top-to-bottom spread between the given edges at column x.
func TTB(edges [2]uint8, x uint8) Spread {
	return Spread{Axis: TopToBottom, Min: edges[0], Max: edges[1], Cross: x}
}

// Stack is a spread exactly one card wide, used for the deck and discard pile.
func Stack(x, y uint8) Spread {
	return LTR([2]uint8{x, satAdd(x, CardWidth)}, y)
}

// Offset returns the distance between consecutive cards of a hand with n
// cards. It never exceeds one card span and shrinks as the hand grows.
func (s Spread) Offset(n uint8) uint8 {
	if n == 0 {
		return 0
	}

	span := CardWidth
	if s.Axis == TopToBottom {
		span = CardHeight
	}

	usable := satSub(satSub(s.Max, s.Min), span)

	return min(usable/n, span)
}

// Position returns the screen coordinates of card index in a hand of n cards.
func (s Spread) Position(n, index uint8) (x, y uint8) {
	along := satAdd(s.Min, satMul(s.Offset(n), index))

	if s.Axis == TopToBottom {
		return s.Cross, along
	}
	return along, s.Cross
}
