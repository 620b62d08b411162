package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// PendingAction is the declared-but-unresolved action. At most one exists per
// game; it is discarded once the action succeeds, is blocked, or is voided by
// a lost challenge.
type PendingAction struct {
	Type     ActionType
	ActorID  string
	TargetID string
	// ClaimedCard backs the actor's claim; zero for unchallengeable actions.
	ClaimedCard Card
	BlockableBy []Card
	// BlockClaimedCard is set once a block has been declared against it.
	BlockClaimedCard Card
}

// Challengeable reports whether the pending action carries a role claim.
func (a *PendingAction) Challengeable() bool { return a.ClaimedCard != "" }

// Blockable reports whether any role can block the pending action.
func (a *PendingAction) Blockable() bool { return len(a.BlockableBy) > 0 }

// RevealChoice names which player owes a forced reveal and why.
type RevealChoice struct {
	PlayerID string
	Reason   RevealReason
}

// ExchangeInfo is the transient pool an exchanging player partitions into
// keep and return. Offered holds the player's hidden hand plus the drawn
// cards; the hand cards stay in the player's influence until selection.
type ExchangeInfo struct {
	PlayerID string
	Offered  []Card
}

// ChallengeVerdict records the outcome of a challenge so the branch taken
// after the forced reveal does not have to be inferred from the phase:
// challenge-of-action and challenge-of-block share PhaseReveal.
type ChallengeVerdict struct {
	// LoserID owes the forced reveal.
	LoserID string
	// ClaimTrue is true when the challenged claim was backed by a held card,
	// i.e. the challenger lost.
	ClaimTrue bool
	// AgainstBlock is true when the challenge targeted a block claim rather
	// than the action claim.
	AgainstBlock bool
}

// LogEntry is one human-readable line of the append-only game log.
type LogEntry struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// GameState is the aggregate state of one Coup game. It is owned by an Engine
// and mutated only through cloned transitions.
type GameState struct {
	Phase    Phase
	Players  []*Player // seating order
	Deck     []Card
	Treasury int

	CurrentPlayerID string
	Pending         *PendingAction
	ChallengerID    string
	BlockerID       string
	Verdict         *ChallengeVerdict
	Reveal          *RevealChoice
	Exchange        *ExchangeInfo
	RespondedIDs    []string

	WinnerID string
	Log      []LogEntry

	Paused      bool
	PausedPhase Phase

	logLimit int
}

func newGameState(logLimit int) *GameState {
	if logLimit <= 0 {
		logLimit = DefaultLogLimit
	}
	return &GameState{
		Phase:    PhaseWaiting,
		Treasury: TreasuryTotal,
		logLimit: logLimit,
	}
}

// player returns the roster entry for id, or nil.
func (g *GameState) player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// activePlayers returns the non-eliminated players in seating order.
func (g *GameState) activePlayers() []*Player {
	out := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if !p.Eliminated {
			out = append(out, p)
		}
	}
	return out
}

func (g *GameState) hasResponded(id string) bool {
	for _, r := range g.RespondedIDs {
		if r == id {
			return true
		}
	}
	return false
}

// pendingResponders returns the players whose pass/challenge/block is still
// owed in the current response phase.
func (g *GameState) pendingResponders() []*Player {
	var out []*Player
	switch g.Phase {
	case PhaseActionResponse:
		for _, p := range g.activePlayers() {
			if p.ID != g.CurrentPlayerID && !g.hasResponded(p.ID) {
				out = append(out, p)
			}
		}
	case PhaseBlockResponse:
		if actor := g.player(g.CurrentPlayerID); actor != nil && !actor.Eliminated && !g.hasResponded(actor.ID) {
			out = append(out, actor)
		}
	}
	return out
}

// addLog prepends a log line, trimming the history to the configured limit.
func (g *GameState) addLog(format string, args ...any) {
	entry := LogEntry{ID: uuid.NewString(), Message: fmt.Sprintf(format, args...)}
	g.Log = append([]LogEntry{entry}, g.Log...)
	if len(g.Log) > g.logLimit {
		g.Log = g.Log[:g.logLimit]
	}
}

// clone deep-copies the state so a transition can be applied and committed
// atomically.
func (g *GameState) clone() *GameState {
	cp := *g
	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp.Players[i] = p.clone()
	}
	cp.Deck = append([]Card{}, g.Deck...)
	cp.RespondedIDs = append([]string{}, g.RespondedIDs...)
	cp.Log = append([]LogEntry{}, g.Log...)
	if g.Pending != nil {
		pending := *g.Pending
		pending.BlockableBy = append([]Card{}, g.Pending.BlockableBy...)
		cp.Pending = &pending
	}
	if g.Verdict != nil {
		verdict := *g.Verdict
		cp.Verdict = &verdict
	}
	if g.Reveal != nil {
		reveal := *g.Reveal
		cp.Reveal = &reveal
	}
	if g.Exchange != nil {
		exchange := *g.Exchange
		exchange.Offered = append([]Card{}, g.Exchange.Offered...)
		cp.Exchange = &exchange
	}
	return &cp
}

// CardsInPlay counts every card the state accounts for: deck, held influence,
// and any drawn exchange cards not yet returned. It equals DeckSize at every
// stable phase boundary.
func (g *GameState) CardsInPlay() int {
	n := len(g.Deck)
	for _, p := range g.Players {
		n += len(p.Influence)
	}
	if g.Exchange != nil {
		if p := g.player(g.Exchange.PlayerID); p != nil {
			// Offered repeats the player's hidden hand; only the drawn
			// extras are cards not counted elsewhere.
			n += len(g.Exchange.Offered) - p.UnrevealedCount()
		}
	}
	return n
}

// CoinsInPlay sums the treasury and all player coins; always TreasuryTotal.
func (g *GameState) CoinsInPlay() int {
	n := g.Treasury
	for _, p := range g.Players {
		n += p.Coins
	}
	return n
}
