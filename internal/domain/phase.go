package domain

// Phase represents the lifecycle stage of a Coup game.
type Phase string

const (
	// PhaseWaiting is the pre-game state where the roster can change.
	PhaseWaiting Phase = "waiting"
	// PhaseTurn waits for the current player to declare an action.
	PhaseTurn Phase = "turn"
	// PhaseActionResponse waits for every other live player to pass,
	// challenge, or block the pending action.
	PhaseActionResponse Phase = "action-response"
	// PhaseBlockResponse waits for the original actor to pass or challenge
	// a declared block.
	PhaseBlockResponse Phase = "block-response"
	// PhaseReveal waits for the named player to turn one influence face up.
	PhaseReveal Phase = "reveal"
	// PhaseExchange waits for the exchanging player to pick their new hand.
	PhaseExchange Phase = "exchange"
	// PhaseGameOver is terminal; exactly one player remains.
	PhaseGameOver Phase = "game-over"
	// PhasePaused overlays any active phase; the interrupted phase is kept
	// aside and restored on resume.
	PhasePaused Phase = "paused"
)

// RevealReason explains why a player owes a forced reveal.
type RevealReason string

const (
	RevealLostChallenge RevealReason = "lost-challenge"
	RevealAssassinated  RevealReason = "assassinated"
	RevealCoup          RevealReason = "coup"
)
