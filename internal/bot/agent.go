package bot

import "coup/internal/domain"

// Agent represents an autonomous bot player seated in a room.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move based on the current game state.
func (a *Agent) Play(state *domain.GameState) (Move, error) {
	move, err := a.Strategy.CalculateMove(state, a.ID)
	if err != nil {
		return Move{Kind: MoveWait}, err
	}
	return move, nil
}
