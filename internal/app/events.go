package app

import "coup/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventPlayerJoined  EventKind = "player_joined"
	EventPlayerLeft    EventKind = "player_left"
	EventGameStarted   EventKind = "game_started"
	EventHandDealt     EventKind = "hand_dealt"
	EventStateUpdated  EventKind = "state_updated"
	EventExchangeOffer EventKind = "exchange_offer"
	EventGameEnded     EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	UserID   string
	Nickname string
	Owner    bool
}

type PlayerLeftPayload struct {
	UserID string
}

type GameStartedPayload struct {
	FirstTurnUserID string
}

// HandDealtPayload is always delivered privately to its owner.
type HandDealtPayload struct {
	UserID string
	Hand   []domain.Card
}

// StateUpdatedPayload carries the shared redacted snapshot after every
// successful transition.
type StateUpdatedPayload struct {
	State *domain.Snapshot
}

// ExchangeOfferPayload is delivered privately to the exchanging player.
type ExchangeOfferPayload struct {
	UserID  string
	Offered []domain.Card
}

type GameEndedPayload struct {
	WinnerID string
}
