package domain

import "math/rand"

// NewDeck returns the ordered 15-card deck: three copies of each role.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, c := range AllCards {
		for i := 0; i < CopiesPerCard; i++ {
			deck = append(deck, c)
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck using the provided rng.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// removeOneCard removes a single copy of card from cards, reporting whether a
// copy was present.
func removeOneCard(cards []Card, card Card) ([]Card, bool) {
	for i, c := range cards {
		if c == card {
			return append(append([]Card{}, cards[:i]...), cards[i+1:]...), true
		}
	}
	return cards, false
}
