package ports

import (
	"bartog/internal/domain"
	"bartog/internal/rules"
)

// Chooser supplies the choices a player commits to through the pre-game and
// wild-suit dialogs. Each method is polled once per frame; a false or empty
// result means the player has not decided yet.
type Chooser interface {
	// ChooseRule returns which kind of rule the player wants to change.
	// KindNone starts the match without changes.
	ChooseRule() (rules.Kind, bool)

	// ChooseCanPlayChanges returns the edits to make to the can-play graph.
	ChooseCanPlayChanges() []rules.GraphChange

	// ChooseWildFlags returns the new wild set.
	ChooseWildFlags() (rules.WildFlags, bool)

	// ChooseWhenPlayed returns the card and the effects it should have when
	// played. An empty change list means no decision yet.
	ChooseWhenPlayed() (domain.Card, []rules.Change)

	// ChooseSuit returns the suit declared for a wild card the human played.
	ChooseSuit() (domain.Suit, bool)

	// ChoosePlayAgain reports whether the player wants another match.
	ChoosePlayAgain() bool
}
