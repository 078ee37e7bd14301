package bot

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Level selects a CPU strategy.
type Level string

const (
	LevelRandom    Level = "random"
	LevelWildSaver Level = "wild_saver"
)

// ErrUnknownLevel is returned for a level with no strategy.
var ErrUnknownLevel = errors.New("unknown bot level")

// ParseLevel normalizes a configured level name.
func ParseLevel(name string) (Level, error) {
	switch level := Level(strings.ToLower(strings.TrimSpace(name))); level {
	case "", LevelRandom:
		return LevelRandom, nil
	case LevelWildSaver:
		return level, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// NewBrain creates a new AI brain based on the specified level. Every brain
// draws from rng, which should be the game's shared generator.
func NewBrain(level Level, rng *rand.Rand) (Brain, error) {
	if rng == nil {
		return nil, errors.New("bot: nil rng")
	}
	switch level {
	case LevelRandom:
		return &RandomBot{rng: rng}, nil
	case LevelWildSaver:
		return &WildSaverBot{rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}
