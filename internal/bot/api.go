package bot

import "coup/internal/domain"

// MoveKind identifies what a bot wants to do with its decision window.
type MoveKind string

const (
	// MoveWait means the bot has nothing to do right now.
	MoveWait          MoveKind = "wait"
	MoveDeclareAction MoveKind = "declare_action"
	MoveChallenge     MoveKind = "challenge"
	MoveBlock         MoveKind = "block"
	MovePass          MoveKind = "pass"
	MoveReveal        MoveKind = "reveal"
	MoveExchange      MoveKind = "exchange"
)

// Move represents the decision made by the AI.
type Move struct {
	Kind     MoveKind
	Action   domain.ActionType // for MoveDeclareAction
	TargetID string            // for targeted actions
	Card     domain.Card       // block claim or reveal choice
	Kept     []domain.Card     // for MoveExchange
}

// Brain is the interface that all bot strategies must implement. The brain
// sees the full unredacted state; a strategy decides for itself how much of
// the hidden information it is willing to use.
type Brain interface {
	CalculateMove(state *domain.GameState, playerID string) (Move, error)
}
