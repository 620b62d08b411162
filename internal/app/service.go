package app

import (
	"math/rand"
	"time"

	"coup/internal/domain"
)

// Service contains Coup use-cases operating on domain state. Every successful
// mutation is followed by a refreshed redacted snapshot so clients never have
// to infer state; private payloads ride alongside with explicit recipients.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// NewGame creates the engine for a fresh room.
func (s *Service) NewGame() *domain.Engine {
	return domain.NewEngine(s.rng)
}

// Join seats a player in the room.
func (s *Service) Join(e *domain.Engine, userID, nickname string, owner bool) ([]Event, error) {
	if err := e.AddPlayer(userID, nickname); err != nil {
		return nil, err
	}
	events := []Event{{
		Kind:    EventPlayerJoined,
		Payload: PlayerJoinedPayload{UserID: userID, Nickname: nickname, Owner: owner},
	}}
	return append(events, s.syncEvents(e)...), nil
}

// Leave removes a player. Legal in any phase, including while paused.
func (s *Service) Leave(e *domain.Engine, userID string) []Event {
	e.RemovePlayer(userID)
	events := []Event{{
		Kind:    EventPlayerLeft,
		Payload: PlayerLeftPayload{UserID: userID},
	}}
	return append(events, s.syncEvents(e)...)
}

// Start deals the opening hands and opens the first turn. Each hand goes out
// privately to its owner.
func (s *Service) Start(e *domain.Engine) ([]Event, error) {
	if err := e.StartGame(); err != nil {
		return nil, err
	}
	g := e.Snapshot()
	events := []Event{{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{FirstTurnUserID: g.CurrentPlayerID},
	}}
	events = append(events, s.handEvents(e)...)
	return append(events, s.syncEvents(e)...), nil
}

// DeclareAction submits the current player's action for this turn.
func (s *Service) DeclareAction(e *domain.Engine, userID string, action domain.ActionType, targetID string) ([]Event, error) {
	if err := e.SubmitAction(userID, action, targetID); err != nil {
		return nil, err
	}
	return s.syncEvents(e), nil
}

// Challenge disputes the claim currently on the table. A proven claimant
// swaps the shown card for a fresh one, so hands are re-sent privately.
func (s *Service) Challenge(e *domain.Engine, userID string) ([]Event, error) {
	if err := e.SubmitChallenge(userID); err != nil {
		return nil, err
	}
	events := s.handEvents(e)
	return append(events, s.syncEvents(e)...), nil
}

// Block declares a counter-claim against the pending action.
func (s *Service) Block(e *domain.Engine, userID string, claimed domain.Card) ([]Event, error) {
	if err := e.SubmitBlock(userID, claimed); err != nil {
		return nil, err
	}
	return s.syncEvents(e), nil
}

// PassResponse records a declined challenge or block. Resolution of the
// pending action may change hands (an exchange draw), so hands are re-sent.
func (s *Service) PassResponse(e *domain.Engine, userID string) ([]Event, error) {
	if err := e.SubmitPass(userID); err != nil {
		return nil, err
	}
	return s.syncEvents(e), nil
}

// Reveal turns one of the player's hidden cards face up.
func (s *Service) Reveal(e *domain.Engine, userID string, card domain.Card) ([]Event, error) {
	if err := e.SubmitReveal(userID, card); err != nil {
		return nil, err
	}
	events := s.handEvents(e)
	return append(events, s.syncEvents(e)...), nil
}

// SelectExchange finishes an exchange with the kept cards.
func (s *Service) SelectExchange(e *domain.Engine, userID string, kept []domain.Card) ([]Event, error) {
	if err := e.SubmitExchangeSelection(userID, kept); err != nil {
		return nil, err
	}
	events := s.handEvents(e)
	return append(events, s.syncEvents(e)...), nil
}

// Pause freezes gameplay until Resume.
func (s *Service) Pause(e *domain.Engine) []Event {
	e.Pause()
	return s.syncEvents(e)
}

// Resume restores the phase interrupted by Pause.
func (s *Service) Resume(e *domain.Engine) []Event {
	e.Resume()
	return s.syncEvents(e)
}

// Reset returns the room to the lobby with the same roster for a rematch.
func (s *Service) Reset(e *domain.Engine) []Event {
	e.Reset()
	return s.syncEvents(e)
}

// syncEvents builds the broadcast snapshot plus any private follow-ups the
// current phase requires.
func (s *Service) syncEvents(e *domain.Engine) []Event {
	g := e.Snapshot()
	events := []Event{{
		Kind:    EventStateUpdated,
		Payload: StateUpdatedPayload{State: g.Public()},
	}}
	if g.Phase == domain.PhaseExchange {
		if offer := g.ExchangeOfferFor(g.Exchange.PlayerID); offer != nil {
			events = append(events, Event{
				Kind:       EventExchangeOffer,
				Payload:    ExchangeOfferPayload{UserID: g.Exchange.PlayerID, Offered: offer},
				Recipients: []string{g.Exchange.PlayerID},
			})
		}
	}
	if g.Phase == domain.PhaseGameOver {
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{WinnerID: g.WinnerID},
		})
	}
	return events
}

// handEvents re-sends every live player their hidden hand, privately.
func (s *Service) handEvents(e *domain.Engine) []Event {
	g := e.Snapshot()
	var events []Event
	for _, p := range g.Players {
		if p.Eliminated {
			continue
		}
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{UserID: p.ID, Hand: g.HandOf(p.ID)},
			Recipients: []string{p.ID},
		})
	}
	return events
}
