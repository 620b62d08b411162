package domain

import "errors"

// Rejection reasons for illegal intents. All are local and recoverable: the
// engine state is never mutated when one of these is returned.
var (
	ErrNotYourTurn          = errors.New("not this player's turn to act or respond")
	ErrPhaseMismatch        = errors.New("intent not legal in the current phase")
	ErrInsufficientFunds    = errors.New("not enough coins for this action")
	ErrInvalidTarget        = errors.New("target is missing, eliminated, or the actor")
	ErrMustCoup             = errors.New("10 or more coins: only coup may be declared")
	ErrUnknownAction        = errors.New("unknown action type")
	ErrDuplicateResponse    = errors.New("player already responded this phase")
	ErrInvalidRevealCard    = errors.New("player holds no such unrevealed card")
	ErrInvalidBlockCard     = errors.New("card cannot block this action")
	ErrInvalidExchangeCount = errors.New("wrong number of cards kept")
	ErrInvalidExchangeCard  = errors.New("kept card not in the offered pool")
	ErrGameNotStarted       = errors.New("game has not started")
	ErrAlreadyStarted       = errors.New("game has already started")
	ErrNotEnoughPlayers     = errors.New("not enough players to start")
	ErrRoomFull             = errors.New("room is full")
	ErrUnknownPlayer        = errors.New("player not found")
)
