package rules

import (
	"errors"

	"bartog/internal/domain"
)

var (
	ErrLocked      = errors.New("rules are locked while a game is in progress")
	ErrInvalidCard = errors.New("card is outside the deck")
	ErrNoChanges   = errors.New("no rule changes supplied")
)

// Kind is the kind of customization chosen before a match.
type Kind uint8

const (
	// KindNone leaves the rules as they are.
	KindNone Kind = iota
	KindCanPlay
	KindWild
	KindWhenPlayed
)

func (k Kind) String() string {
	switch k {
	case KindCanPlay:
		return "can_play"
	case KindWild:
		return "wild"
	case KindWhenPlayed:
		return "when_played"
	default:
		return "none"
	}
}

// ParseKind maps the wire name of a kind back to its value.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindNone, KindCanPlay, KindWild, KindWhenPlayed} {
		if k.String() == s {
			return k, true
		}
	}
	return KindNone, false
}

// Table is the discard pile state legality is judged against.
type Table struct {
	Top         domain.Card
	HasTop      bool
	WildSuit    domain.Suit
	HasWildSuit bool
}

// Book holds the rule tables for a match. The tables can only be changed
// while the book is unlocked, which the game does between matches.
type Book struct {
	canPlay    CanPlayGraph
	wild       WildFlags
	whenPlayed WhenPlayed
	locked     bool
}

// NewBook returns the base Bartog rules: Crazy Eights with no side effects.
func NewBook() *Book {
	return &Book{
		canPlay: NewCanPlayGraph(),
		wild:    DefaultWild(),
	}
}

// Lock freezes the tables for the duration of a match.
func (b *Book) Lock() { b.locked = true }

// Unlock allows the tables to be customized again.
func (b *Book) Unlock() { b.locked = false }

// Locked reports whether the tables are frozen.
func (b *Book) Locked() bool { return b.locked }

// IsWild reports whether card is wild.
func (b *Book) IsWild(card domain.Card) bool { return b.wild.Has(card) }

// Wild returns the current wild set.
func (b *Book) Wild() WildFlags { return b.wild }

// IsPlayableOn consults the graph only, ignoring wild cards.
func (b *Book) IsPlayableOn(card, top domain.Card) bool {
	return b.canPlay.IsPlayableOn(card, top)
}

// WhenPlayedChanges returns the side effects registered for card.
func (b *Book) WhenPlayedChanges(card domain.Card) []Change {
	if !card.Valid() {
		return nil
	}
	return b.whenPlayed[card]
}

// IsPlayable reports whether card may legally be played onto table.
// Wild cards are always playable, as is anything onto an empty pile. When a
// wild card is on top only the declared suit matters.
func (b *Book) IsPlayable(card domain.Card, table Table) bool {
	if b.IsWild(card) || !table.HasTop {
		return true
	}
	if b.IsWild(table.Top) {
		return table.HasWildSuit && card.Suit() == table.WildSuit
	}
	return b.canPlay.IsPlayableOn(card, table.Top)
}

// ApplyCanPlayChanges edits the graph.
func (b *Book) ApplyCanPlayChanges(changes []GraphChange) error {
	if b.locked {
		return ErrLocked
	}
	if len(changes) == 0 {
		return ErrNoChanges
	}
	for _, c := range changes {
		if !c.Card.Valid() || !c.Top.Valid() {
			return ErrInvalidCard
		}
	}
	for _, c := range changes {
		b.canPlay.set(c.Card, c.Top, c.Allowed)
	}
	return nil
}

// ApplyWildFlags replaces the wild set.
func (b *Book) ApplyWildFlags(wild WildFlags) error {
	if b.locked {
		return ErrLocked
	}
	b.wild = wild
	return nil
}

// ApplyWhenPlayed replaces the side effects of card.
func (b *Book) ApplyWhenPlayed(card domain.Card, changes []Change) error {
	if b.locked {
		return ErrLocked
	}
	if !card.Valid() {
		return ErrInvalidCard
	}
	b.whenPlayed[card] = append([]Change(nil), changes...)
	return nil
}
