package nakama

import "coup/internal/domain"

// MatchLabel is the JSON label Nakama indexes for match listing queries.
type MatchLabel struct {
	// Open is "T" while the room accepts new players.
	Open  string `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// Client request payloads. All client messages are JSON.

type DeclareActionRequest struct {
	Action   string `json:"action"`
	TargetID string `json:"target_id,omitempty"`
}

type BlockRequest struct {
	Card string `json:"card"`
}

type RevealRequest struct {
	Card string `json:"card"`
}

type SelectExchangeRequest struct {
	Kept []string `json:"kept"`
}

// GameErrorEvent is sent privately to the player whose intent was rejected.
type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toDomainCards(names []string) []domain.Card {
	out := make([]domain.Card, len(names))
	for i, n := range names {
		out[i] = domain.Card(n)
	}
	return out
}
