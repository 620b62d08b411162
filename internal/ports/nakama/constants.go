package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a
	// joinable room.
	RpcQuickMatch = "quick_match"

	// MatchNameCoup is the authoritative match handler name registered with
	// Nakama.
	MatchNameCoup = "coup_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame      int64 = 1
	OpDeclareAction  int64 = 2
	OpChallenge      int64 = 3
	OpBlock          int64 = 4
	OpPassResponse   int64 = 5
	OpReveal         int64 = 6
	OpSelectExchange int64 = 7
	OpPauseGame      int64 = 8
	OpResumeGame     int64 = 9
	OpRequestNewGame int64 = 10

	// Server -> Client events
	OpPlayerJoined  int64 = 101
	OpPlayerLeft    int64 = 102
	OpGameStarted   int64 = 103
	OpHandDealt     int64 = 104 // sent privately
	OpStateUpdated  int64 = 105
	OpExchangeOffer int64 = 106 // sent privately
	OpGameEnded     int64 = 107
	OpGameError     int64 = 108 // sent privately
)
