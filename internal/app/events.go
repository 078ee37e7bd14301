package app

import "bartog/internal/domain"

// EventKind identifies emitted game events for Nakama dispatch.
type EventKind string

const (
	EventRuleChanged  EventKind = "rule_changed"
	EventMatchStarted EventKind = "match_started"
	EventCardPlayed   EventKind = "card_played"
	EventCardDrawn    EventKind = "card_drawn"
	EventSuitDeclared EventKind = "suit_declared"
	EventGameEnded    EventKind = "game_ended"
	EventGameReset    EventKind = "game_reset"
	EventDeckRecycled EventKind = "deck_recycled"
)

// Event is a game event. The text of most events also goes to the event log.
type Event struct {
	Kind    EventKind
	Payload any
}

type RuleChangedPayload struct {
	Description string
}

type CardPlayedPayload struct {
	Player domain.PlayerID
	Card   domain.Card
}

type CardDrawnPayload struct {
	Player domain.PlayerID
}

type SuitDeclaredPayload struct {
	Player domain.PlayerID
	Suit   domain.Suit
}

type GameEndedPayload struct {
	Winners []domain.PlayerID
}

type DeckRecycledPayload struct {
	Cards int
}

func (g *Game) emit(kind EventKind, payload any) {
	g.events = append(g.events, Event{Kind: kind, Payload: payload})
}

// DrainEvents returns the events emitted since the last call.
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = nil
	return out
}
