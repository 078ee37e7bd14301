package app

import "bartog/internal/domain"

// CPUCount is the number of computer opponents at the table.
const CPUCount = domain.CPUSeats

// Status is the phase the game is in. Every phase except InGame is a modal
// rule-selection dialog that only advances once the player commits a choice.
type Status uint8

const (
	RuleSelection Status = iota
	RuleSelectionCanPlay
	RuleSelectionWild
	RuleSelectionWhenPlayed
	InGame
)

func (s Status) String() string {
	switch s {
	case RuleSelection:
		return "rule_selection"
	case RuleSelectionCanPlay:
		return "rule_selection_can_play"
	case RuleSelectionWild:
		return "rule_selection_wild"
	case RuleSelectionWhenPlayed:
		return "rule_selection_when_played"
	case InGame:
		return "in_game"
	default:
		return "unknown"
	}
}

// Choice marks a dialog the engine is waiting on while in game.
type Choice uint8

const (
	ChoiceIdle Choice = iota
	ChoiceSuit
)

func (c Choice) String() string {
	if c == ChoiceSuit {
		return "suit"
	}
	return "idle"
}

// LogHeading is the direction the event log panel is sliding.
type LogHeading uint8

const (
	LogUp LogHeading = iota
	LogDown
)
