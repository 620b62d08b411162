package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"coup/internal/app"
	"coup/internal/bot"
	"coup/internal/domain"
	"coup/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

func init() {
	// Load bot identities for testing.
	if err := bot.LoadIdentities("test_bot_identities.json"); err != nil {
		panic("Failed to load bot identities for tests: " + err.Error())
	}
}

// noopLogger implements runtime.Logger for tests that only need to satisfy
// the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type sentMessage struct {
	opCode     int64
	data       []byte
	recipients []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	messages     []sentMessage
	labelUpdates int
	lastLabel    string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.messages = append(md.messages, sentMessage{
		opCode:     opCode,
		data:       append([]byte(nil), data...),
		recipients: presences,
	})
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

func (md *mockDispatcher) byOpCode(opCode int64) []sentMessage {
	var out []sentMessage
	for _, m := range md.messages {
		if m.opCode == opCode {
			out = append(out, m)
		}
	}
	return out
}

type mockEconomy struct {
	updates []ports.WalletUpdate
}

func (me *mockEconomy) GetBalance(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (me *mockEconomy) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	me.updates = append(me.updates, updates...)
	return nil
}

type fakePresence struct {
	userID string
}

func (p fakePresence) GetUserId() string    { return p.userID }
func (p fakePresence) GetSessionId() string { return "session-" + p.userID }
func (p fakePresence) GetNodeId() string    { return "node" }
func (p fakePresence) GetHidden() bool      { return false }
func (p fakePresence) GetPersistence() bool { return true }
func (p fakePresence) GetUsername() string  { return "name-" + p.userID }
func (p fakePresence) GetStatus() string    { return "" }
func (p fakePresence) GetReason() runtime.PresenceReason {
	return runtime.PresenceReasonUnknown
}

type fakeMatchData struct {
	fakePresence
	opCode int64
	data   []byte
}

func (d fakeMatchData) GetOpCode() int64      { return d.opCode }
func (d fakeMatchData) GetData() []byte       { return d.data }
func (d fakeMatchData) GetReliable() bool     { return true }
func (d fakeMatchData) GetReceiveTime() int64 { return 0 }

func newRoomState() *MatchState {
	svc := app.NewService(nil)
	return &MatchState{
		Presences: make(map[string]runtime.Presence),
		App:       svc,
		Engine:    svc.NewGame(),
		Bots:      make(map[string]*bot.Agent),
		Economy:   &mockEconomy{},
		BaseBet:   100,
	}
}

func joinUsers(t *testing.T, mh *matchHandler, state *MatchState, dispatcher *mockDispatcher, ids ...string) {
	t.Helper()
	presences := make([]runtime.Presence, 0, len(ids))
	for _, id := range ids {
		presences = append(presences, fakePresence{userID: id})
	}
	result := mh.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, presences)
	if result == nil {
		t.Fatal("MatchJoin terminated the match")
	}
}

func loopMessage(mh *matchHandler, state *MatchState, dispatcher *mockDispatcher, tick int64, msg fakeMatchData) interface{} {
	return mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, tick, state, []runtime.MatchData{msg})
}

func TestMatchJoinSeatsPlayersAndAssignsOwner(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}

	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")

	if got := state.RosterIDs(); len(got) != 2 || got[0] != "user-1" {
		t.Fatalf("roster = %v", got)
	}
	if state.OwnerID != "user-1" {
		t.Fatalf("owner = %s, want user-1", state.OwnerID)
	}
	if len(dispatcher.byOpCode(OpPlayerJoined)) != 2 {
		t.Fatalf("player_joined events = %d, want 2", len(dispatcher.byOpCode(OpPlayerJoined)))
	}
	if dispatcher.labelUpdates == 0 {
		t.Fatal("expected a label update after join")
	}

	var label MatchLabel
	if err := json.Unmarshal([]byte(dispatcher.lastLabel), &label); err != nil {
		t.Fatalf("bad label: %v", err)
	}
	if label.Open != "T" || label.Game != "coup" || label.Phase != string(domain.PhaseWaiting) {
		t.Fatalf("label = %+v", label)
	}
}

func TestMatchJoinAttemptRejectsMidGameStrangers(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")

	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})
	if state.Engine.Phase() != domain.PhaseTurn {
		t.Fatalf("game did not start, phase=%s", state.Engine.Phase())
	}

	_, allowed, _ := mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, fakePresence{userID: "stranger"}, nil)
	if allowed {
		t.Fatal("stranger admitted into a running game")
	}
	_, allowed, _ = mh.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, fakePresence{userID: "user-2"}, nil)
	if !allowed {
		t.Fatal("seated player denied a reconnect")
	}
}

func TestStartGameIsOwnerOnly(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")

	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-2"}, opCode: OpStartGame})
	if state.Engine.Phase() != domain.PhaseWaiting {
		t.Fatal("non-owner started the game")
	}
	errs := dispatcher.byOpCode(OpGameError)
	if len(errs) != 1 || len(errs[0].recipients) != 1 || errs[0].recipients[0].GetUserId() != "user-2" {
		t.Fatalf("expected a private error for user-2, got %+v", errs)
	}

	loopMessage(mh, state, dispatcher, 2, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})
	if state.Engine.Phase() != domain.PhaseTurn {
		t.Fatalf("owner could not start, phase=%s", state.Engine.Phase())
	}
}

func TestStartGameCollectsAntesFromHumansOnly(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	economy := state.Economy.(*mockEconomy)
	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")

	botID := bot.GetBotIdentity(0).UserID
	if _, err := state.App.Join(state.Engine, botID, "bot", false); err != nil {
		t.Fatalf("seat bot: %v", err)
	}
	state.Bots[botID] = &bot.Agent{ID: botID, Strategy: &bot.CautiousBot{}}

	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})

	if len(economy.updates) != 2 {
		t.Fatalf("ante debits = %d, want 2 (humans only)", len(economy.updates))
	}
	for _, u := range economy.updates {
		if u.Amount != -100 {
			t.Fatalf("ante amount = %d, want -100", u.Amount)
		}
		if bot.IsBot(u.UserID) {
			t.Fatalf("bot %s was debited", u.UserID)
		}
	}
	if state.Pot != 300 {
		t.Fatalf("pot = %d, want 300", state.Pot)
	}
}

func TestHandDealtIsPrivate(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")

	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})

	hands := dispatcher.byOpCode(OpHandDealt)
	if len(hands) != 2 {
		t.Fatalf("hand_dealt messages = %d, want 2", len(hands))
	}
	for _, m := range hands {
		if len(m.recipients) != 1 {
			t.Fatalf("hand_dealt recipients = %d, want 1", len(m.recipients))
		}
		var payload app.HandDealtPayload
		if err := json.Unmarshal(m.data, &payload); err != nil {
			t.Fatalf("bad hand payload: %v", err)
		}
		if payload.UserID != m.recipients[0].GetUserId() {
			t.Fatalf("hand for %s sent to %s", payload.UserID, m.recipients[0].GetUserId())
		}
	}
}

func TestPrivateEventForBotIsNotBroadcast(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}

	botID := bot.GetBotIdentity(0).UserID
	ev := app.Event{
		Kind:       app.EventHandDealt,
		Payload:    app.HandDealtPayload{UserID: botID},
		Recipients: []string{botID},
	}
	mh.broadcastEvent(context.Background(), state, dispatcher, noopLogger{}, ev)

	if len(dispatcher.messages) != 0 {
		t.Fatal("targeted event with no connected recipients must be dropped, not broadcast")
	}
}

func TestGameplayMessagesDriveTheEngine(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")
	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})

	body, _ := json.Marshal(DeclareActionRequest{Action: string(domain.ActionIncome)})
	loopMessage(mh, state, dispatcher, 2, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpDeclareAction, data: body})

	snap := state.Engine.Snapshot()
	if snap.CurrentPlayerID != "user-2" {
		t.Fatalf("turn = %s, want user-2", snap.CurrentPlayerID)
	}
	if len(dispatcher.byOpCode(OpStateUpdated)) == 0 {
		t.Fatal("expected state_updated broadcasts")
	}
}

func TestLeaveMidGameSettlesAndPassesOwnership(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	economy := state.Economy.(*mockEconomy)
	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")
	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})
	economy.updates = nil

	result := mh.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, []runtime.Presence{fakePresence{userID: "user-1"}})
	if result == nil {
		t.Fatal("match terminated while a human remains")
	}

	snap := state.Engine.Snapshot()
	if snap.Phase != domain.PhaseGameOver || snap.WinnerID != "user-2" {
		t.Fatalf("phase=%s winner=%s", snap.Phase, snap.WinnerID)
	}
	if state.OwnerID != "user-2" {
		t.Fatalf("owner = %s, want user-2", state.OwnerID)
	}
	if len(economy.updates) != 1 || economy.updates[0].UserID != "user-2" || economy.updates[0].Amount != 200 {
		t.Fatalf("settlement = %+v, want 200 to user-2", economy.updates)
	}
	if state.Pot != 0 {
		t.Fatalf("pot = %d, want 0 after settlement", state.Pot)
	}
}

func TestMatchTerminatesWithoutHumans(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1")

	result := mh.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, []runtime.Presence{fakePresence{userID: "user-1"}})
	if result != nil {
		t.Fatal("expected termination with no humans left")
	}
}

func TestProcessBotsAutoFillsSoloLobby(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	state.BotsEnabled = true
	state.BotAutoFillDelay = 2
	state.LastSingleHumanTick = 8
	state.Tick = 10
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1")

	mh.processBots(context.Background(), state, dispatcher, noopLogger{})

	botCount := 0
	for _, id := range state.RosterIDs() {
		if bot.IsBot(id) {
			botCount++
		}
	}
	if botCount != domain.MaxPlayers-1 {
		t.Fatalf("bots seated = %d, want %d", botCount, domain.MaxPlayers-1)
	}
	if state.LastSingleHumanTick != 0 {
		t.Fatal("expected auto-fill timer reset")
	}
	if len(state.Bots) != botCount {
		t.Fatalf("agents = %d, want %d", len(state.Bots), botCount)
	}
}

func TestProcessBotsActsAfterDelay(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	state.BotsEnabled = true
	state.BotMinDelay = 1
	state.BotMaxDelay = 1
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1")

	botID := bot.GetBotIdentity(0).UserID
	if _, err := state.App.Join(state.Engine, botID, "bot", false); err != nil {
		t.Fatalf("seat bot: %v", err)
	}
	state.Bots[botID] = &bot.Agent{ID: botID, Strategy: &bot.CautiousBot{}}

	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})

	// Hand the turn to the bot.
	body, _ := json.Marshal(DeclareActionRequest{Action: string(domain.ActionIncome)})
	loopMessage(mh, state, dispatcher, 2, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpDeclareAction, data: body})
	if got := state.Engine.Snapshot().CurrentPlayerID; got != botID {
		t.Fatalf("turn = %s, want %s", got, botID)
	}

	// The loop that handed the bot the turn also armed its delay.
	if state.BotWaitUntil == 0 {
		t.Fatal("expected the bot delay to be armed")
	}
	mh.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, state.BotWaitUntil, state, nil)
	if state.BotWaitUntil != 0 {
		t.Fatal("expected the bot delay to be consumed")
	}

	snap := state.Engine.Snapshot()
	if snap.Phase == domain.PhaseTurn && snap.CurrentPlayerID == botID {
		t.Fatal("bot did not act on its turn")
	}
}

func TestRequestNewGameResetsAfterGameOver(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")
	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})

	// Rematch requests are rejected while the game runs.
	loopMessage(mh, state, dispatcher, 2, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpRequestNewGame})
	if state.Engine.Phase() == domain.PhaseWaiting {
		t.Fatal("reset applied mid-game")
	}

	mh.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 3, state, []runtime.Presence{fakePresence{userID: "user-2"}})
	if state.Engine.Phase() != domain.PhaseGameOver {
		t.Fatalf("phase = %s, want game over", state.Engine.Phase())
	}

	loopMessage(mh, state, dispatcher, 4, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpRequestNewGame})
	if state.Engine.Phase() != domain.PhaseWaiting {
		t.Fatalf("phase = %s, want waiting after rematch request", state.Engine.Phase())
	}
	if got := state.RosterIDs(); len(got) != 1 || got[0] != "user-1" {
		t.Fatalf("rematch roster = %v, want only the connected player", got)
	}
}

func TestPauseResumeIsOwnerOnly(t *testing.T) {
	mh := &matchHandler{}
	state := newRoomState()
	dispatcher := &mockDispatcher{}
	joinUsers(t, mh, state, dispatcher, "user-1", "user-2")
	loopMessage(mh, state, dispatcher, 1, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartGame})

	loopMessage(mh, state, dispatcher, 2, fakeMatchData{fakePresence: fakePresence{userID: "user-2"}, opCode: OpPauseGame})
	if state.Engine.Phase() == domain.PhasePaused {
		t.Fatal("non-owner paused the game")
	}

	loopMessage(mh, state, dispatcher, 3, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpPauseGame})
	if state.Engine.Phase() != domain.PhasePaused {
		t.Fatalf("phase = %s, want paused", state.Engine.Phase())
	}
	loopMessage(mh, state, dispatcher, 4, fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpResumeGame})
	if state.Engine.Phase() != domain.PhaseTurn {
		t.Fatalf("phase = %s, want turn after resume", state.Engine.Phase())
	}
}
