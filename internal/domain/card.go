package domain

// Card is one of the five role cards in the influence deck.
type Card string

const (
	CardDuke       Card = "duke"
	CardAssassin   Card = "assassin"
	CardContessa   Card = "contessa"
	CardCaptain    Card = "captain"
	CardAmbassador Card = "ambassador"
)

// AllCards lists the five roles in deck-building order.
var AllCards = []Card{CardDuke, CardAssassin, CardContessa, CardCaptain, CardAmbassador}

// Valid reports whether c names one of the five roles.
func (c Card) Valid() bool {
	switch c {
	case CardDuke, CardAssassin, CardContessa, CardCaptain, CardAmbassador:
		return true
	}
	return false
}

// InfluenceCard is a role card held by a player. Once revealed it stays with
// the player for display and no longer backs any claim.
type InfluenceCard struct {
	Card     Card `json:"card"`
	Revealed bool `json:"revealed"`
}
