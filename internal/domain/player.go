package domain

// Player holds the roster state for one participant.
type Player struct {
	ID         string
	Nickname   string
	Coins      int
	Influence  []InfluenceCard
	Eliminated bool
}

// UnrevealedCount returns how many hidden influence cards the player holds.
func (p *Player) UnrevealedCount() int {
	n := 0
	for _, inf := range p.Influence {
		if !inf.Revealed {
			n++
		}
	}
	return n
}

// UnrevealedCards returns the hidden role cards, in hand order.
func (p *Player) UnrevealedCards() []Card {
	out := make([]Card, 0, len(p.Influence))
	for _, inf := range p.Influence {
		if !inf.Revealed {
			out = append(out, inf.Card)
		}
	}
	return out
}

// HasUnrevealed reports whether the player holds a hidden copy of card.
func (p *Player) HasUnrevealed(card Card) bool {
	for _, inf := range p.Influence {
		if !inf.Revealed && inf.Card == card {
			return true
		}
	}
	return false
}

// AllRevealed reports whether the player has no hidden influence left.
// A player with no influence at all (pre-deal) counts as not revealed out.
func (p *Player) AllRevealed() bool {
	if len(p.Influence) == 0 {
		return false
	}
	return p.UnrevealedCount() == 0
}

func (p *Player) clone() *Player {
	cp := *p
	cp.Influence = append([]InfluenceCard{}, p.Influence...)
	return &cp
}
