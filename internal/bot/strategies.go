package bot

import (
	"coup/internal/domain"
)

// CautiousBot plays honestly. It never claims a role it does not hold, never
// challenges, and blocks only with a card actually in hand.
type CautiousBot struct{}

func (b *CautiousBot) CalculateMove(state *domain.GameState, playerID string) (Move, error) {
	me := findPlayer(state, playerID)
	if me == nil || me.Eliminated || state.Paused {
		return Move{Kind: MoveWait}, nil
	}

	switch state.Phase {
	case domain.PhaseTurn:
		if state.CurrentPlayerID != playerID {
			return Move{Kind: MoveWait}, nil
		}
		return b.chooseAction(state, me), nil

	case domain.PhaseActionResponse:
		if !owesResponse(state, playerID) {
			return Move{Kind: MoveWait}, nil
		}
		if block := honestBlock(state.Pending, me); block != "" {
			return Move{Kind: MoveBlock, Card: block}, nil
		}
		return Move{Kind: MovePass}, nil

	case domain.PhaseBlockResponse:
		if !owesResponse(state, playerID) {
			return Move{Kind: MoveWait}, nil
		}
		return Move{Kind: MovePass}, nil

	case domain.PhaseReveal:
		if state.Reveal == nil || state.Reveal.PlayerID != playerID {
			return Move{Kind: MoveWait}, nil
		}
		return Move{Kind: MoveReveal, Card: leastValuedCard(me.UnrevealedCards())}, nil

	case domain.PhaseExchange:
		if state.Exchange == nil || state.Exchange.PlayerID != playerID {
			return Move{Kind: MoveWait}, nil
		}
		return Move{Kind: MoveExchange, Kept: bestCards(state.Exchange.Offered, me.UnrevealedCount())}, nil
	}
	return Move{Kind: MoveWait}, nil
}

func (b *CautiousBot) chooseAction(state *domain.GameState, me *domain.Player) Move {
	target := richestOpponent(state, me.ID)
	if me.Coins >= domain.MustCoupThreshold {
		return Move{Kind: MoveDeclareAction, Action: domain.ActionCoup, TargetID: target}
	}
	if me.Coins >= domain.CoupCost {
		return Move{Kind: MoveDeclareAction, Action: domain.ActionCoup, TargetID: target}
	}
	// Assassinate only as a finishing blow; a speculative assassination that
	// gets blocked wastes the turn without moving any coins.
	if me.HasUnrevealed(domain.CardAssassin) && me.Coins >= domain.AssassinateCost {
		if weak := opponentOneCardFromOut(state, me.ID); weak != "" {
			return Move{Kind: MoveDeclareAction, Action: domain.ActionAssassinate, TargetID: weak}
		}
	}
	if me.HasUnrevealed(domain.CardDuke) {
		return Move{Kind: MoveDeclareAction, Action: domain.ActionTax}
	}
	// Steal only from a flush target; raiding near-empty wallets stalls the
	// table's coin growth.
	if me.HasUnrevealed(domain.CardCaptain) && opponentCoins(state, target) > domain.StealAmount {
		return Move{Kind: MoveDeclareAction, Action: domain.ActionSteal, TargetID: target}
	}
	if me.HasUnrevealed(domain.CardAmbassador) {
		return Move{Kind: MoveDeclareAction, Action: domain.ActionExchange}
	}
	return Move{Kind: MoveDeclareAction, Action: domain.ActionIncome}
}

// BoldBot bluffs. It claims Duke for tax whether or not it holds one, blocks
// assassinations with a Contessa claim regardless of its hand, and always
// challenges blocks against its own actions.
type BoldBot struct{}

func (b *BoldBot) CalculateMove(state *domain.GameState, playerID string) (Move, error) {
	me := findPlayer(state, playerID)
	if me == nil || me.Eliminated || state.Paused {
		return Move{Kind: MoveWait}, nil
	}

	switch state.Phase {
	case domain.PhaseTurn:
		if state.CurrentPlayerID != playerID {
			return Move{Kind: MoveWait}, nil
		}
		target := richestOpponent(state, playerID)
		switch {
		case me.Coins >= domain.CoupCost:
			return Move{Kind: MoveDeclareAction, Action: domain.ActionCoup, TargetID: target}, nil
		case me.HasUnrevealed(domain.CardAssassin) && me.Coins >= domain.AssassinateCost:
			return Move{Kind: MoveDeclareAction, Action: domain.ActionAssassinate, TargetID: target}, nil
		default:
			return Move{Kind: MoveDeclareAction, Action: domain.ActionTax}, nil
		}

	case domain.PhaseActionResponse:
		if !owesResponse(state, playerID) {
			return Move{Kind: MoveWait}, nil
		}
		p := state.Pending
		if p != nil && p.TargetID == playerID && p.Type == domain.ActionAssassinate {
			return Move{Kind: MoveBlock, Card: domain.CardContessa}, nil
		}
		if block := honestBlock(p, me); block != "" {
			return Move{Kind: MoveBlock, Card: block}, nil
		}
		return Move{Kind: MovePass}, nil

	case domain.PhaseBlockResponse:
		if !owesResponse(state, playerID) {
			return Move{Kind: MoveWait}, nil
		}
		return Move{Kind: MoveChallenge}, nil

	case domain.PhaseReveal:
		if state.Reveal == nil || state.Reveal.PlayerID != playerID {
			return Move{Kind: MoveWait}, nil
		}
		return Move{Kind: MoveReveal, Card: leastValuedCard(me.UnrevealedCards())}, nil

	case domain.PhaseExchange:
		if state.Exchange == nil || state.Exchange.PlayerID != playerID {
			return Move{Kind: MoveWait}, nil
		}
		return Move{Kind: MoveExchange, Kept: bestCards(state.Exchange.Offered, me.UnrevealedCount())}, nil
	}
	return Move{Kind: MoveWait}, nil
}

/* ---- shared helpers ---- */

func findPlayer(state *domain.GameState, id string) *domain.Player {
	for _, p := range state.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// owesResponse reports whether playerID still owes a pass/challenge/block in
// the current response phase.
func owesResponse(state *domain.GameState, playerID string) bool {
	if state.Pending == nil {
		return false
	}
	for _, r := range state.RespondedIDs {
		if r == playerID {
			return false
		}
	}
	switch state.Phase {
	case domain.PhaseActionResponse:
		return playerID != state.Pending.ActorID
	case domain.PhaseBlockResponse:
		return playerID == state.Pending.ActorID
	}
	return false
}

// honestBlock returns a block claim the player can truthfully make against
// the pending action, or "".
func honestBlock(p *domain.PendingAction, me *domain.Player) domain.Card {
	if p == nil || !p.Blockable() {
		return ""
	}
	if p.TargetID != "" && p.TargetID != me.ID {
		return ""
	}
	for _, c := range p.BlockableBy {
		if me.HasUnrevealed(c) {
			return c
		}
	}
	return ""
}

// cardValue ranks roles by how much a bot wants to keep them.
var cardValue = map[domain.Card]int{
	domain.CardDuke:       5,
	domain.CardContessa:   4,
	domain.CardCaptain:    3,
	domain.CardAssassin:   2,
	domain.CardAmbassador: 1,
}

func leastValuedCard(cards []domain.Card) domain.Card {
	if len(cards) == 0 {
		return ""
	}
	worst := cards[0]
	for _, c := range cards[1:] {
		if cardValue[c] < cardValue[worst] {
			worst = c
		}
	}
	return worst
}

func bestCards(pool []domain.Card, n int) []domain.Card {
	sorted := append([]domain.Card{}, pool...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && cardValue[sorted[j]] > cardValue[sorted[j-1]]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func richestOpponent(state *domain.GameState, selfID string) string {
	best := ""
	bestCoins := -1
	for _, p := range state.Players {
		if p.ID == selfID || p.Eliminated {
			continue
		}
		if p.Coins > bestCoins {
			best = p.ID
			bestCoins = p.Coins
		}
	}
	return best
}

// opponentOneCardFromOut returns a live opponent holding exactly one hidden
// card, or "".
func opponentOneCardFromOut(state *domain.GameState, selfID string) string {
	for _, p := range state.Players {
		if p.ID == selfID || p.Eliminated {
			continue
		}
		if p.UnrevealedCount() == 1 {
			return p.ID
		}
	}
	return ""
}

func opponentCoins(state *domain.GameState, id string) int {
	if p := findPlayer(state, id); p != nil {
		return p.Coins
	}
	return 0
}
