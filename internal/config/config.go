package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"bartog/internal/domain"
)

// GameConfig holds the tunables for Bartog matches.
type GameConfig struct {
	HandSize       int    `json:"hand_size"`
	LogCapacity    int    `json:"log_capacity"`
	LogWindowLines int    `json:"log_window_lines"`
	BotLevel       string `json:"bot_level"`
	TickRate       int    `json:"tick_rate"`
	// SeedTokenTTLSeconds bounds how long a shared seed token can be redeemed.
	SeedTokenTTLSeconds int `json:"seed_token_ttl_seconds"`
}

// Default returns the built-in configuration.
func Default() GameConfig {
	return GameConfig{
		HandSize:            5,
		LogCapacity:         256,
		LogWindowLines:      14,
		BotLevel:            "random",
		TickRate:            30,
		SeedTokenTTLSeconds: 7 * 24 * 60 * 60,
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := parse(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the defaults if
// none was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}

func parse(data []byte) (*GameConfig, error) {
	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}

	// Zero values fall back to the defaults.
	def := Default()
	if c.HandSize <= 0 {
		c.HandSize = def.HandSize
	}
	if c.LogCapacity <= 0 {
		c.LogCapacity = def.LogCapacity
	}
	if c.LogWindowLines <= 0 {
		c.LogWindowLines = def.LogWindowLines
	}
	if c.BotLevel == "" {
		c.BotLevel = def.BotLevel
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.SeedTokenTTLSeconds <= 0 {
		c.SeedTokenTTLSeconds = def.SeedTokenTTLSeconds
	}

	// Every seat's hand must fit in the deck with a card to spare.
	if c.HandSize*domain.SeatCount >= domain.DeckSize {
		return nil, fmt.Errorf("hand_size %d leaves no deck", c.HandSize)
	}
	return &c, nil
}
