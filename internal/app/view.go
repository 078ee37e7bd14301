package app

import (
	"bartog/internal/anim"
	"bartog/internal/domain"
)

// CardView is a card as a presentation layer should draw it.
type CardView struct {
	Card   domain.Card
	X, Y   uint8
	FaceUp bool
}

// HandView is one player's hand laid out on screen.
type HandView struct {
	Player domain.PlayerID
	Cards  []CardView
}

// View is a read-only snapshot of everything needed to draw a frame.
type View struct {
	Status      Status
	Choice      Choice
	Current     domain.PlayerID
	DeckCount   int
	Discard     []domain.Card
	WildSuit    domain.Suit
	HasWildSuit bool
	Hands       []HandView
	HandIndex   uint8
	Animations  []CardView
	Winners     []domain.PlayerID
	LogLines    []string
	LogHeight   uint8
	LogTop      int
}

// View builds the snapshot for the current frame. CPU hands and cards being
// drawn are face down.
func (g *Game) View() View {
	v := View{
		Status:      g.Status,
		Choice:      g.Choice,
		Current:     g.Current,
		DeckCount:   int(g.Deck.Len()),
		Discard:     g.Discard.Cards(),
		WildSuit:    g.WildSuit,
		HasWildSuit: g.HasWildSuit,
		HandIndex:   g.HandIndex,
		Winners:     append([]domain.PlayerID(nil), g.Winners...),
		LogLines:    g.Log.Window(g.opts.LogWindowLines),
		LogHeight:   g.LogHeight,
		LogTop:      g.Log.TopIndex,
	}

	for _, p := range g.Players() {
		v.Hands = append(v.Hands, layoutHand(p, g.HandOf(p)))
	}

	for _, a := range g.Animations {
		v.Animations = append(v.Animations, CardView{
			Card:   a.Card.Card,
			X:      a.Card.X,
			Y:      a.Card.Y,
			FaceUp: a.Action.Kind != anim.MoveToHand,
		})
	}
	return v
}

func layoutHand(player domain.PlayerID, hand *domain.Hand) HandView {
	cards := hand.Cards()
	n := hand.Len()
	out := HandView{Player: player, Cards: make([]CardView, 0, len(cards))}
	for i, card := range cards {
		x, y := hand.Spread.Position(n, uint8(i))
		out.Cards = append(out.Cards, CardView{Card: card, X: x, Y: y, FaceUp: player.IsHuman()})
	}
	return out
}
