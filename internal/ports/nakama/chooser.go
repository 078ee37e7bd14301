package nakama

import (
	"bartog/internal/domain"
	"bartog/internal/rules"
)

// queuedChooser holds the latest committed choice of each kind sent by the
// client. Polling a choice consumes it.
type queuedChooser struct {
	rule      *rules.Kind
	canPlay   []rules.GraphChange
	wild      *rules.WildFlags
	whenCard  domain.Card
	when      []rules.Change
	suit      *domain.Suit
	playAgain bool
}

func (c *queuedChooser) ChooseRule() (rules.Kind, bool) {
	if c.rule == nil {
		return rules.KindNone, false
	}
	kind := *c.rule
	c.rule = nil
	return kind, true
}

func (c *queuedChooser) ChooseCanPlayChanges() []rules.GraphChange {
	changes := c.canPlay
	c.canPlay = nil
	return changes
}

func (c *queuedChooser) ChooseWildFlags() (rules.WildFlags, bool) {
	if c.wild == nil {
		return 0, false
	}
	wild := *c.wild
	c.wild = nil
	return wild, true
}

func (c *queuedChooser) ChooseWhenPlayed() (domain.Card, []rules.Change) {
	card, changes := c.whenCard, c.when
	c.when = nil
	return card, changes
}

func (c *queuedChooser) ChooseSuit() (domain.Suit, bool) {
	if c.suit == nil {
		return 0, false
	}
	suit := *c.suit
	c.suit = nil
	return suit, true
}

func (c *queuedChooser) ChoosePlayAgain() bool {
	again := c.playAgain
	c.playAgain = false
	return again
}
