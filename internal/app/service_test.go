package app

import (
	"errors"
	"math/rand"
	"testing"

	"coup/internal/domain"
)

func newTestGame(t *testing.T, ids ...string) (*Service, *domain.Engine) {
	t.Helper()
	svc := NewService(rand.New(rand.NewSource(42)))
	e := svc.NewGame()
	for _, id := range ids {
		if _, err := svc.Join(e, id, "nick-"+id, id == ids[0]); err != nil {
			t.Fatalf("join %s: %v", id, err)
		}
	}
	return svc, e
}

func eventKinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestStartDealsPrivateHands(t *testing.T) {
	svc, e := newTestGame(t, "p1", "p2", "p3")

	events, err := svc.Start(e)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	hands := 0
	for _, ev := range events {
		switch ev.Kind {
		case EventHandDealt:
			hands++
			payload := ev.Payload.(HandDealtPayload)
			if len(ev.Recipients) != 1 || ev.Recipients[0] != payload.UserID {
				t.Fatalf("hand for %s must be private to its owner, recipients=%v", payload.UserID, ev.Recipients)
			}
			if len(payload.Hand) != 2 {
				t.Fatalf("hand size = %d, want 2", len(payload.Hand))
			}
		case EventStateUpdated:
			state := ev.Payload.(StateUpdatedPayload).State
			if len(ev.Recipients) != 0 {
				t.Fatal("snapshot must broadcast")
			}
			for _, p := range state.Players {
				if p.HiddenCards != 2 || len(p.RevealedCards) != 0 {
					t.Fatalf("snapshot leaked or miscounted cards: %+v", p)
				}
			}
		}
	}
	if hands != 3 {
		t.Fatalf("hand events = %d, want 3", hands)
	}
}

func TestStartRequiresEnoughPlayers(t *testing.T) {
	svc, e := newTestGame(t, "p1")
	if _, err := svc.Start(e); !errors.Is(err, domain.ErrNotEnoughPlayers) {
		t.Fatalf("got %v, want ErrNotEnoughPlayers", err)
	}
}

func TestRejectedIntentEmitsNothing(t *testing.T) {
	svc, e := newTestGame(t, "p1", "p2")
	if _, err := svc.Start(e); err != nil {
		t.Fatalf("start: %v", err)
	}

	events, err := svc.DeclareAction(e, "p2", domain.ActionIncome, "")
	if !errors.Is(err, domain.ErrNotYourTurn) {
		t.Fatalf("got %v, want ErrNotYourTurn", err)
	}
	if events != nil {
		t.Fatalf("rejected intent emitted events: %v", eventKinds(events))
	}
}

func TestActionEmitsSnapshot(t *testing.T) {
	svc, e := newTestGame(t, "p1", "p2")
	if _, err := svc.Start(e); err != nil {
		t.Fatalf("start: %v", err)
	}

	events, err := svc.DeclareAction(e, "p1", domain.ActionIncome, "")
	if err != nil {
		t.Fatalf("income: %v", err)
	}
	if len(events) != 1 || events[0].Kind != EventStateUpdated {
		t.Fatalf("events = %v, want one state_updated", eventKinds(events))
	}
	state := events[0].Payload.(StateUpdatedPayload).State
	if state.CurrentPlayerID != "p2" {
		t.Fatalf("turn = %s, want p2", state.CurrentPlayerID)
	}
}

func TestLeaveEndsTwoPlayerGame(t *testing.T) {
	svc, e := newTestGame(t, "p1", "p2")
	if _, err := svc.Start(e); err != nil {
		t.Fatalf("start: %v", err)
	}

	events := svc.Leave(e, "p2")
	kinds := eventKinds(events)
	var sawEnd bool
	for _, ev := range events {
		if ev.Kind == EventGameEnded {
			sawEnd = true
			if ev.Payload.(GameEndedPayload).WinnerID != "p1" {
				t.Fatalf("winner = %s, want p1", ev.Payload.(GameEndedPayload).WinnerID)
			}
		}
	}
	if !sawEnd {
		t.Fatalf("expected game_ended, got %v", kinds)
	}
}

func TestExchangeOfferIsPrivate(t *testing.T) {
	svc, e := newTestGame(t, "p1", "p2")
	if _, err := svc.Start(e); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.DeclareAction(e, "p1", domain.ActionExchange, ""); err != nil {
		t.Fatalf("exchange: %v", err)
	}
	events, err := svc.PassResponse(e, "p2")
	if err != nil {
		t.Fatalf("pass: %v", err)
	}

	var offer *Event
	for i := range events {
		if events[i].Kind == EventExchangeOffer {
			offer = &events[i]
		}
	}
	if offer == nil {
		t.Fatalf("expected exchange_offer, got %v", eventKinds(events))
	}
	if len(offer.Recipients) != 1 || offer.Recipients[0] != "p1" {
		t.Fatalf("offer recipients = %v, want [p1]", offer.Recipients)
	}
	payload := offer.Payload.(ExchangeOfferPayload)
	if len(payload.Offered) != 4 {
		t.Fatalf("offered = %d cards, want 4", len(payload.Offered))
	}

	kept := []domain.Card{payload.Offered[0], payload.Offered[1]}
	if _, err := svc.SelectExchange(e, "p1", kept); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := e.Snapshot().HandOf("p1"); len(got) != 2 {
		t.Fatalf("hand size after exchange = %d, want 2", len(got))
	}
}

func TestResetReturnsToLobby(t *testing.T) {
	svc, e := newTestGame(t, "p1", "p2")
	if _, err := svc.Start(e); err != nil {
		t.Fatalf("start: %v", err)
	}
	events := svc.Reset(e)
	state := events[0].Payload.(StateUpdatedPayload).State
	if state.Phase != domain.PhaseWaiting {
		t.Fatalf("phase = %s, want %s", state.Phase, domain.PhaseWaiting)
	}
	if len(state.Players) != 2 {
		t.Fatalf("roster = %d, want 2", len(state.Players))
	}
}
