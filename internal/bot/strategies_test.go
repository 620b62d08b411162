package bot

import (
	"math/rand"
	"testing"

	"coup/internal/domain"
)

// playGame builds a started engine with known hands so strategy decisions are
// deterministic, then returns the engine's state for the brains to read.
func startedGame(t *testing.T, ids ...string) *domain.Engine {
	t.Helper()
	e := domain.NewEngine(rand.New(rand.NewSource(5)))
	for _, id := range ids {
		if err := e.AddPlayer(id, id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := e.StartGame(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return e
}

func TestCautiousBotWaitsOutOfTurn(t *testing.T) {
	e := startedGame(t, "bot", "human")
	brain := &CautiousBot{}

	state := e.Snapshot()
	state.CurrentPlayerID = "human"
	move, err := brain.CalculateMove(state, "bot")
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if move.Kind != MoveWait {
		t.Fatalf("move = %s, want wait", move.Kind)
	}
}

func TestCautiousBotNeverBluffs(t *testing.T) {
	e := startedGame(t, "bot", "human")
	brain := &CautiousBot{}

	state := e.Snapshot()
	move, err := brain.CalculateMove(state, "bot")
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if move.Kind != MoveDeclareAction {
		t.Fatalf("move = %s, want declare_action", move.Kind)
	}

	hand := state.HandOf("bot")
	holds := func(c domain.Card) bool {
		for _, h := range hand {
			if h == c {
				return true
			}
		}
		return false
	}
	switch move.Action {
	case domain.ActionTax:
		if !holds(domain.CardDuke) {
			t.Fatal("cautious bot claimed Duke without holding one")
		}
	case domain.ActionSteal:
		if !holds(domain.CardCaptain) {
			t.Fatal("cautious bot claimed Captain without holding one")
		}
	case domain.ActionAssassinate:
		if !holds(domain.CardAssassin) {
			t.Fatal("cautious bot claimed Assassin without holding one")
		}
	case domain.ActionExchange:
		if !holds(domain.CardAmbassador) {
			t.Fatal("cautious bot claimed Ambassador without holding one")
		}
	case domain.ActionIncome, domain.ActionCoup:
		// Claimless, always fine.
	default:
		t.Fatalf("unexpected action %s", move.Action)
	}
}

func TestCautiousBotMovesAreLegal(t *testing.T) {
	// Drive a full two-bot game through the engine and require that every
	// produced move is accepted. Bounded so a stalemate fails fast.
	e := startedGame(t, "b1", "b2")
	brains := map[string]Brain{"b1": &CautiousBot{}, "b2": &CautiousBot{}}

	for i := 0; i < 500; i++ {
		state := e.Snapshot()
		if state.Phase == domain.PhaseGameOver {
			return
		}
		acted := false
		for id, brain := range brains {
			move, err := brain.CalculateMove(state, id)
			if err != nil {
				t.Fatalf("CalculateMove(%s): %v", id, err)
			}
			if move.Kind == MoveWait {
				continue
			}
			if err := applyMove(e, id, move); err != nil {
				t.Fatalf("step %d: %s move %s rejected: %v", i, id, move.Kind, err)
			}
			acted = true
			break
		}
		if !acted {
			t.Fatalf("step %d: no bot had a move in phase %s", i, state.Phase)
		}
	}
	t.Fatal("game did not finish within the step budget")
}

func applyMove(e *domain.Engine, id string, move Move) error {
	switch move.Kind {
	case MoveDeclareAction:
		return e.SubmitAction(id, move.Action, move.TargetID)
	case MoveChallenge:
		return e.SubmitChallenge(id)
	case MoveBlock:
		return e.SubmitBlock(id, move.Card)
	case MovePass:
		return e.SubmitPass(id)
	case MoveReveal:
		return e.SubmitReveal(id, move.Card)
	case MoveExchange:
		return e.SubmitExchangeSelection(id, move.Kept)
	}
	return nil
}

func TestBoldBotBlocksAssassinationWithoutContessa(t *testing.T) {
	e := startedGame(t, "human", "bot", "third")
	state := e.Snapshot()
	state.Phase = domain.PhaseActionResponse
	state.Pending = &domain.PendingAction{
		Type:        domain.ActionAssassinate,
		ActorID:     "human",
		TargetID:    "bot",
		ClaimedCard: domain.CardAssassin,
		BlockableBy: []domain.Card{domain.CardContessa},
	}

	move, err := (&BoldBot{}).CalculateMove(state, "bot")
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if move.Kind != MoveBlock || move.Card != domain.CardContessa {
		t.Fatalf("move = %+v, want a Contessa block", move)
	}
}

func TestBoldBotChallengesBlocks(t *testing.T) {
	e := startedGame(t, "bot", "human")
	state := e.Snapshot()
	state.Phase = domain.PhaseBlockResponse
	state.Pending = &domain.PendingAction{
		Type:             domain.ActionForeignAid,
		ActorID:          "bot",
		BlockableBy:      []domain.Card{domain.CardDuke},
		BlockClaimedCard: domain.CardDuke,
	}
	state.BlockerID = "human"

	move, err := (&BoldBot{}).CalculateMove(state, "bot")
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if move.Kind != MoveChallenge {
		t.Fatalf("move = %s, want challenge", move.Kind)
	}
}

func TestExchangeSelectionKeepsHandSize(t *testing.T) {
	e := startedGame(t, "bot", "human")
	state := e.Snapshot()
	me := state.HandOf("bot")
	state.Phase = domain.PhaseExchange
	state.Exchange = &domain.ExchangeInfo{
		PlayerID: "bot",
		Offered:  append(append([]domain.Card{}, me...), domain.CardDuke, domain.CardAssassin),
	}

	move, err := (&CautiousBot{}).CalculateMove(state, "bot")
	if err != nil {
		t.Fatalf("CalculateMove: %v", err)
	}
	if move.Kind != MoveExchange {
		t.Fatalf("move = %s, want exchange", move.Kind)
	}
	if len(move.Kept) != len(me) {
		t.Fatalf("kept %d cards, want %d", len(move.Kept), len(me))
	}
}

func TestBrainFactory(t *testing.T) {
	if _, err := NewBrain(BotLevelCautious); err != nil {
		t.Fatalf("cautious: %v", err)
	}
	if _, err := NewBrain(BotLevelBold); err != nil {
		t.Fatalf("bold: %v", err)
	}
	if _, err := NewBrain(BotLevel(99)); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
