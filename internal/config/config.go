package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type BetTier struct {
	ID      string `json:"id"`
	BaseBet int64  `json:"base_bet"`
}

type GameConfig struct {
	DefaultTier string    `json:"default_tier"`
	Tiers       []BetTier `json:"tiers"`
	// LogHistoryLimit caps how many log lines each room keeps.
	LogHistoryLimit int `json:"log_history_limit"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before
	// adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotMoveDelayTicks configures how many match ticks a bot waits before
	// acting, so bot play is visible to humans.
	BotMoveDelayTicks int `json:"bot_move_delay_ticks"`
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

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetBaseBet returns the ante for a given tier ID, or the default if not found.
func GetBaseBet(tierID string) int64 {
	if cfg == nil {
		return 100 // Safe default
	}

	target := tierID
	if target == "" {
		target = cfg.DefaultTier
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == target {
			return tier.BaseBet
		}
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == cfg.DefaultTier {
			return tier.BaseBet
		}
	}

	return 100
}

// GetLogHistoryLimit returns the configured log cap, or 0 to use the
// domain default.
func GetLogHistoryLimit() int {
	if cfg == nil {
		return 0
	}
	return cfg.LogHistoryLimit
}

// GetBotAutoFillDelaySeconds returns the lobby auto-fill delay.
func GetBotAutoFillDelaySeconds() int {
	if cfg == nil || cfg.BotAutoFillDelaySeconds <= 0 {
		return 10
	}
	return cfg.BotAutoFillDelaySeconds
}

// GetBotMoveDelayTicks returns how long bots wait before acting.
func GetBotMoveDelayTicks() int {
	if cfg == nil || cfg.BotMoveDelayTicks <= 0 {
		return 2
	}
	return cfg.BotMoveDelayTicks
}
