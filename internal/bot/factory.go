package bot

import "fmt"

// BotLevel selects a strategy family.
type BotLevel int

const (
	BotLevelCautious BotLevel = 1
	BotLevelBold     BotLevel = 2
)

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelCautious:
		return &CautiousBot{}, nil
	case BotLevelBold:
		return &BoldBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// BrainForDifficulty maps an identity difficulty string to a brain,
// defaulting to cautious.
func BrainForDifficulty(difficulty string) Brain {
	if difficulty == "hard" {
		return &BoldBot{}
	}
	return &CautiousBot{}
}
