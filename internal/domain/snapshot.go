package domain

// Snapshot is the redacted, wire-ready projection of a game. Hidden influence
// cards are collapsed to counts so the same payload can go to every client;
// private data travels separately via HandOf and ExchangeOfferFor.
type Snapshot struct {
	Phase           Phase              `json:"phase"`
	Players         []PlayerView       `json:"players"`
	DeckCount       int                `json:"deckCount"`
	Treasury        int                `json:"treasury"`
	CurrentPlayerID string             `json:"currentPlayerId"`
	Pending         *PendingActionView `json:"pendingAction,omitempty"`
	ChallengerID    string             `json:"challengerId,omitempty"`
	BlockerID       string             `json:"blockerId,omitempty"`
	Reveal          *RevealView        `json:"reveal,omitempty"`
	ExchangePlayer  string             `json:"exchangePlayerId,omitempty"`
	RespondedIDs    []string           `json:"respondedIds,omitempty"`
	WinnerID        string             `json:"winnerId,omitempty"`
	Paused          bool               `json:"paused"`
	Log             []LogEntry         `json:"log"`
}

// PlayerView is a player as every opponent sees them: revealed cards are
// named, hidden cards are only counted.
type PlayerView struct {
	ID            string `json:"id"`
	Nickname      string `json:"nickname"`
	Coins         int    `json:"coins"`
	HiddenCards   int    `json:"hiddenCards"`
	RevealedCards []Card `json:"revealedCards"`
	Eliminated    bool   `json:"eliminated"`
}

// PendingActionView carries only the public claims of the pending action.
type PendingActionView struct {
	Type             ActionType `json:"type"`
	ActorID          string     `json:"actorId"`
	TargetID         string     `json:"targetId,omitempty"`
	ClaimedCard      Card       `json:"claimedCard,omitempty"`
	BlockClaimedCard Card       `json:"blockClaimedCard,omitempty"`
}

// RevealView announces who owes a forced reveal and why.
type RevealView struct {
	PlayerID string       `json:"playerId"`
	Reason   RevealReason `json:"reason"`
}

// Public builds the shared redacted view of the state.
func (g *GameState) Public() *Snapshot {
	snap := &Snapshot{
		Phase:           g.Phase,
		Players:         make([]PlayerView, 0, len(g.Players)),
		DeckCount:       len(g.Deck),
		Treasury:        g.Treasury,
		CurrentPlayerID: g.CurrentPlayerID,
		ChallengerID:    g.ChallengerID,
		BlockerID:       g.BlockerID,
		WinnerID:        g.WinnerID,
		Paused:          g.Paused,
		RespondedIDs:    append([]string{}, g.RespondedIDs...),
		Log:             append([]LogEntry{}, g.Log...),
	}
	for _, p := range g.Players {
		view := PlayerView{
			ID:            p.ID,
			Nickname:      p.Nickname,
			Coins:         p.Coins,
			HiddenCards:   p.UnrevealedCount(),
			RevealedCards: make([]Card, 0, len(p.Influence)),
			Eliminated:    p.Eliminated,
		}
		for _, inf := range p.Influence {
			if inf.Revealed {
				view.RevealedCards = append(view.RevealedCards, inf.Card)
			}
		}
		snap.Players = append(snap.Players, view)
	}
	if g.Pending != nil {
		snap.Pending = &PendingActionView{
			Type:             g.Pending.Type,
			ActorID:          g.Pending.ActorID,
			TargetID:         g.Pending.TargetID,
			ClaimedCard:      g.Pending.ClaimedCard,
			BlockClaimedCard: g.Pending.BlockClaimedCard,
		}
	}
	if g.Reveal != nil {
		snap.Reveal = &RevealView{PlayerID: g.Reveal.PlayerID, Reason: g.Reveal.Reason}
	}
	if g.Exchange != nil {
		snap.ExchangePlayer = g.Exchange.PlayerID
	}
	return snap
}

// HandOf returns the named player's hidden cards, for private delivery.
func (g *GameState) HandOf(playerID string) []Card {
	p := g.player(playerID)
	if p == nil {
		return nil
	}
	return p.UnrevealedCards()
}

// ExchangeOfferFor returns the exchange pool if playerID is the one
// exchanging, else nil.
func (g *GameState) ExchangeOfferFor(playerID string) []Card {
	if g.Exchange == nil || g.Exchange.PlayerID != playerID {
		return nil
	}
	return append([]Card{}, g.Exchange.Offered...)
}
