package domain

const (
	// CopiesPerCard is how many copies of each role exist in the deck.
	CopiesPerCard = 3
	// DeckSize is the total number of cards in the system.
	DeckSize = 15

	// TreasuryTotal is the shared coin pool; treasury plus all player coins
	// always sums to this.
	TreasuryTotal = 50
	// StartingCoins is each player's stake, taken from the treasury on join.
	StartingCoins = 2

	// MinPlayers and MaxPlayers bound the roster for a game.
	MinPlayers = 2
	MaxPlayers = 6

	// CoupCost and AssassinateCost are the coin prices of the paid actions.
	CoupCost        = 7
	AssassinateCost = 3
	// MustCoupThreshold forces a coup once a player's coins reach it.
	MustCoupThreshold = 10
	// StealAmount is the most a steal can transfer.
	StealAmount = 2
	// ExchangeDrawCount is how many cards an exchange draws into the offer pool.
	ExchangeDrawCount = 2

	// DefaultLogLimit caps the in-state game log.
	DefaultLogLimit = 50
)
