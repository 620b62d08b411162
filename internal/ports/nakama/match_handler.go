package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"

	"coup/internal/app"
	"coup/internal/bot"
	"coup/internal/config"
	"coup/internal/domain"
	"coup/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for one Coup room.
type MatchState struct {
	Presences map[string]runtime.Presence `json:"-"` // UserID -> Presence for targeted messaging
	App       *app.Service                `json:"-"`
	Engine    *domain.Engine              `json:"-"`

	OwnerID string `json:"owner_id"` // first human; may start games, pause, and request rematches
	Tick    int64  `json:"tick"`

	BotsEnabled         bool                  `json:"bots_enabled"`
	BotMinDelay         int                   `json:"bot_min_delay"`
	BotMaxDelay         int                   `json:"bot_max_delay"`
	BotAutoFillDelay    int                   `json:"bot_auto_fill_delay"`
	BotWaitUntil        int64                 `json:"bot_wait_until"`
	LastSingleHumanTick int64                 `json:"last_single_human_tick"`
	Bots                map[string]*bot.Agent `json:"-"`

	Economy ports.EconomyPort `json:"-"`
	BaseBet int64             `json:"base_bet"`
	Pot     int64             `json:"pot"` // antes collected for the running game
}

// RosterIDs returns the seated user IDs in seating order.
func (ms *MatchState) RosterIDs() []string {
	snap := ms.Engine.Snapshot()
	ids := make([]string, 0, len(snap.Players))
	for _, p := range snap.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

func (ms *MatchState) humanCount() int {
	count := 0
	for _, id := range ms.RosterIDs() {
		if !bot.IsBot(id) {
			count++
		}
	}
	return count
}

func (ms *MatchState) inRoster(userID string) bool {
	for _, id := range ms.RosterIDs() {
		if id == userID {
			return true
		}
	}
	return false
}

// firstConnectedHuman returns the first seated human who still has a live
// presence, or "".
func (ms *MatchState) firstConnectedHuman() string {
	for _, id := range ms.RosterIDs() {
		if bot.IsBot(id) {
			continue
		}
		if _, ok := ms.Presences[id]; ok {
			return id
		}
	}
	return ""
}

// ensureOwner keeps ownership on a connected human; a disconnected or bot
// owner hands off to the next connected human in seating order.
func (ms *MatchState) ensureOwner() {
	if ms.OwnerID != "" && !bot.IsBot(ms.OwnerID) {
		if _, ok := ms.Presences[ms.OwnerID]; ok {
			return
		}
	}
	ms.OwnerID = ms.firstConnectedHuman()
}

type matchHandler struct{}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing Coup room.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	svc := app.NewService(nil)
	engine := svc.NewGame()
	if limit := config.GetLogHistoryLimit(); limit > 0 {
		engine.SetLogLimit(limit)
	}

	state := &MatchState{
		Presences:        make(map[string]runtime.Presence),
		App:              svc,
		Engine:           engine,
		Bots:             make(map[string]*bot.Agent),
		Economy:          NewNakamaEconomyAdapter(nk),
		BaseBet:          config.GetBaseBet(""),
		BotAutoFillDelay: config.GetBotAutoFillDelaySeconds(),
		BotMinDelay:      config.GetBotMoveDelayTicks(),
		BotMaxDelay:      config.GetBotMoveDelayTicks() + 2,
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["coup_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["coup_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["coup_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i >= state.BotMinDelay {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["coup_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotAutoFillDelay = i
		}
	}

	labelBytes, err := json.Marshal(mh.buildLabel(state))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Reconnects are always allowed; the player still holds their seat.
	if matchState.inRoster(presence.GetUserId()) {
		return state, true, ""
	}

	if matchState.Engine.Phase() != domain.PhaseWaiting {
		return state, false, "Game in progress"
	}

	if len(matchState.RosterIDs()) >= domain.MaxPlayers {
		// A lobby bot can yield its seat to a human.
		hasBot := false
		for _, id := range matchState.RosterIDs() {
			if bot.IsBot(id) {
				hasBot = true
				break
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		matchState.Presences[userID] = p

		if matchState.inRoster(userID) {
			// Reconnect: replay the current state and their hand privately.
			logger.Info("MatchJoin: %s reconnected.", userID)
			mh.sendPrivateSync(matchState, dispatcher, logger, userID)
			continue
		}

		if len(matchState.RosterIDs()) >= domain.MaxPlayers {
			if !mh.evictLobbyBot(matchState, logger) {
				logger.Warn("MatchJoin: User %s joined but no seat was available.", userID)
				continue
			}
		}

		events, err := matchState.App.Join(matchState.Engine, userID, p.GetUsername(), matchState.OwnerID == "")
		if err != nil {
			logger.Warn("MatchJoin: Could not seat %s: %v", userID, err)
			continue
		}
		for _, ev := range events {
			mh.broadcastEvent(ctx, matchState, dispatcher, logger, ev)
		}
	}

	matchState.ensureOwner()
	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// evictLobbyBot frees one bot seat for a joining human. Lobby only.
func (mh *matchHandler) evictLobbyBot(state *MatchState, logger runtime.Logger) bool {
	if state.Engine.Phase() != domain.PhaseWaiting {
		return false
	}
	for _, id := range state.RosterIDs() {
		if bot.IsBot(id) {
			logger.Info("MatchJoin: Replacing bot %s with a joining human.", id)
			delete(state.Bots, id)
			state.Engine.RemovePlayer(id)
			return true
		}
	}
	return false
}

// MatchLeave is called when one or more players leave the match. A mid-game
// leaver is eliminated immediately, even while the game is paused.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)

		if !matchState.inRoster(userID) {
			continue
		}
		logger.Debug("MatchLeave: User %s left.", userID)
		for _, ev := range matchState.App.Leave(matchState.Engine, userID) {
			mh.broadcastEvent(ctx, matchState, dispatcher, logger, ev)
		}
	}

	previousOwner := matchState.OwnerID
	matchState.ensureOwner()
	if matchState.OwnerID != previousOwner && matchState.OwnerID != "" {
		logger.Debug("MatchLeave: Ownership passed to %s.", matchState.OwnerID)
	}

	if matchState.firstConnectedHuman() == "" {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		mh.handleMessage(ctx, matchState, dispatcher, logger, msg)
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) handleMessage(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	var events []app.Event
	var err error

	switch msg.GetOpCode() {
	case OpStartGame:
		mh.handleStartGame(ctx, state, dispatcher, logger, senderID)
		return
	case OpRequestNewGame:
		mh.handleRequestNewGame(ctx, state, dispatcher, logger, senderID)
		return
	case OpPauseGame:
		if senderID != state.OwnerID {
			mh.sendError(state, dispatcher, logger, senderID, 403, "only the owner may pause")
			return
		}
		events = state.App.Pause(state.Engine)
	case OpResumeGame:
		if senderID != state.OwnerID {
			mh.sendError(state, dispatcher, logger, senderID, 403, "only the owner may resume")
			return
		}
		events = state.App.Resume(state.Engine)
	case OpDeclareAction:
		var req DeclareActionRequest
		if jsonErr := json.Unmarshal(msg.GetData(), &req); jsonErr != nil {
			logger.Warn("handleMessage: Bad declare_action payload from %s: %v", senderID, jsonErr)
			return
		}
		events, err = state.App.DeclareAction(state.Engine, senderID, domain.ActionType(req.Action), req.TargetID)
	case OpChallenge:
		events, err = state.App.Challenge(state.Engine, senderID)
	case OpBlock:
		var req BlockRequest
		if jsonErr := json.Unmarshal(msg.GetData(), &req); jsonErr != nil {
			logger.Warn("handleMessage: Bad block payload from %s: %v", senderID, jsonErr)
			return
		}
		events, err = state.App.Block(state.Engine, senderID, domain.Card(req.Card))
	case OpPassResponse:
		events, err = state.App.PassResponse(state.Engine, senderID)
	case OpReveal:
		var req RevealRequest
		if jsonErr := json.Unmarshal(msg.GetData(), &req); jsonErr != nil {
			logger.Warn("handleMessage: Bad reveal payload from %s: %v", senderID, jsonErr)
			return
		}
		events, err = state.App.Reveal(state.Engine, senderID, domain.Card(req.Card))
	case OpSelectExchange:
		var req SelectExchangeRequest
		if jsonErr := json.Unmarshal(msg.GetData(), &req); jsonErr != nil {
			logger.Warn("handleMessage: Bad exchange payload from %s: %v", senderID, jsonErr)
			return
		}
		events, err = state.App.SelectExchange(state.Engine, senderID, toDomainCards(req.Kept))
	default:
		logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		return
	}

	if err != nil {
		logger.Warn("handleMessage: Intent %d from %s rejected: %v", msg.GetOpCode(), senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	if senderID != state.OwnerID {
		logger.Warn("StartGame: User %s tried to start but is not owner (owner=%s)", senderID, state.OwnerID)
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the owner may start the game")
		return
	}

	events, err := state.App.Start(state.Engine)
	if err != nil {
		logger.Warn("StartGame: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.collectAntes(ctx, state, logger)
	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	logger.Info("StartGame: Game started with %d players.", len(state.RosterIDs()))
}

func (mh *matchHandler) handleRequestNewGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string) {
	if senderID != state.OwnerID {
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the owner may request a new game")
		return
	}
	if state.Engine.Phase() != domain.PhaseGameOver {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game is still in progress")
		return
	}

	for _, ev := range state.App.Reset(state.Engine) {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	// Players who disconnected during the last game do not carry into the
	// rematch lobby.
	for _, id := range state.RosterIDs() {
		if bot.IsBot(id) {
			continue
		}
		if _, ok := state.Presences[id]; !ok {
			for _, ev := range state.App.Leave(state.Engine, id) {
				mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
			}
		}
	}
	mh.updateLabel(state, dispatcher, logger)
}

// collectAntes debits each human's wallet and builds the pot. Bots play for
// free; their share of the pot is house money.
func (mh *matchHandler) collectAntes(ctx context.Context, state *MatchState, logger runtime.Logger) {
	if state.Economy == nil || state.BaseBet <= 0 {
		return
	}

	roster := state.RosterIDs()
	state.Pot = state.BaseBet * int64(len(roster))

	updates := make([]ports.WalletUpdate, 0, len(roster))
	for _, id := range roster {
		if bot.IsBot(id) {
			continue
		}
		updates = append(updates, ports.WalletUpdate{
			UserID: id,
			Amount: -state.BaseBet,
			Metadata: map[string]interface{}{
				"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
				"reason":   "game_ante",
			},
		})
	}
	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("collectAntes: Failed to debit antes: %v", err)
	}
}

// settleGame pays the pot to a human winner.
func (mh *matchHandler) settleGame(ctx context.Context, state *MatchState, logger runtime.Logger, winnerID string) {
	pot := state.Pot
	state.Pot = 0
	if state.Economy == nil || pot <= 0 || winnerID == "" || bot.IsBot(winnerID) {
		return
	}

	updates := []ports.WalletUpdate{{
		UserID: winnerID,
		Amount: pot,
		Metadata: map[string]interface{}{
			"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
			"reason":   "game_settlement",
		},
	}}
	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("settleGame: Failed to pay out pot: %v", err)
	}
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill a solo human lobby after a grace period.
	if state.Engine.Phase() == domain.PhaseWaiting {
		if state.humanCount() == 1 && len(state.RosterIDs()) < domain.MaxPlayers {
			if state.LastSingleHumanTick == 0 {
				state.LastSingleHumanTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}
			if state.Tick-state.LastSingleHumanTick >= int64(state.BotAutoFillDelay) {
				mh.fillWithBots(ctx, state, dispatcher, logger)
				state.LastSingleHumanTick = 0
			}
		} else {
			state.LastSingleHumanTick = 0
		}
	}

	// In-game: let one pending bot act per delay window so humans can follow
	// the play.
	snap := state.Engine.Snapshot()
	if snap.Phase == domain.PhaseWaiting || snap.Phase == domain.PhaseGameOver || snap.Paused {
		state.BotWaitUntil = 0
		return
	}

	pending := mh.pendingBotMove(state, snap)
	if pending == nil {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	move, err := pending.agent.Play(snap)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate a move: %v", pending.agent.ID, err)
		return
	}
	events, err := mh.applyBotMove(state, pending.agent.ID, move)
	if err != nil {
		logger.Error("processBots: Bot %s move %s rejected: %v", pending.agent.ID, move.Kind, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

type pendingBot struct {
	agent *bot.Agent
}

// pendingBotMove returns the first bot that has a non-wait move available.
func (mh *matchHandler) pendingBotMove(state *MatchState, snap *domain.GameState) *pendingBot {
	for _, id := range state.RosterIDs() {
		agent, ok := state.Bots[id]
		if !ok {
			continue
		}
		move, err := agent.Play(snap)
		if err != nil || move.Kind == bot.MoveWait {
			continue
		}
		return &pendingBot{agent: agent}
	}
	return nil
}

func (mh *matchHandler) applyBotMove(state *MatchState, botID string, move bot.Move) ([]app.Event, error) {
	switch move.Kind {
	case bot.MoveDeclareAction:
		return state.App.DeclareAction(state.Engine, botID, move.Action, move.TargetID)
	case bot.MoveChallenge:
		return state.App.Challenge(state.Engine, botID)
	case bot.MoveBlock:
		return state.App.Block(state.Engine, botID, move.Card)
	case bot.MovePass:
		return state.App.PassResponse(state.Engine, botID)
	case bot.MoveReveal:
		return state.App.Reveal(state.Engine, botID, move.Card)
	case bot.MoveExchange:
		return state.App.SelectExchange(state.Engine, botID, move.Kept)
	}
	return nil, nil
}

func (mh *matchHandler) fillWithBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	added := false
	for i := len(state.RosterIDs()); i < domain.MaxPlayers; i++ {
		identity := bot.GetBotIdentity(i)
		botID := identity.UserID
		if state.inRoster(botID) {
			continue
		}

		events, err := state.App.Join(state.Engine, botID, identity.DisplayName, false)
		if err != nil {
			logger.Error("fillWithBots: Could not seat bot %s: %v", botID, err)
			break
		}
		state.Bots[botID] = &bot.Agent{
			ID:       botID,
			Name:     identity.DisplayName,
			Strategy: bot.BrainForDifficulty(identity.Difficulty),
		}
		logger.Info("fillWithBots: Added bot %s (%s).", identity.DisplayName, botID)
		for _, ev := range events {
			mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
		}
		added = true
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
	}
}

// sendPrivateSync replays the current state, plus hand and exchange pool if
// any, to a single reconnecting player.
func (mh *matchHandler) sendPrivateSync(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string) {
	presence, ok := state.Presences[userID]
	if !ok {
		return
	}
	recipients := []runtime.Presence{presence}
	snap := state.Engine.Snapshot()

	mh.dispatch(dispatcher, logger, OpStateUpdated, app.StateUpdatedPayload{State: snap.Public()}, recipients)
	if hand := snap.HandOf(userID); len(hand) > 0 {
		mh.dispatch(dispatcher, logger, OpHandDealt, app.HandDealtPayload{UserID: userID, Hand: hand}, recipients)
	}
	if offer := snap.ExchangeOfferFor(userID); offer != nil {
		mh.dispatch(dispatcher, logger, OpExchangeOffer, app.ExchangeOfferPayload{UserID: userID, Offered: offer}, recipients)
	}
}

// broadcastEvent converts an app event into a Nakama message.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	switch ev.Kind {
	case app.EventPlayerJoined:
		opCode = OpPlayerJoined
	case app.EventPlayerLeft:
		opCode = OpPlayerLeft
	case app.EventGameStarted:
		opCode = OpGameStarted
	case app.EventHandDealt:
		opCode = OpHandDealt
	case app.EventStateUpdated:
		opCode = OpStateUpdated
	case app.EventExchangeOffer:
		opCode = OpExchangeOffer
	case app.EventGameEnded:
		opCode = OpGameEnded
		p := ev.Payload.(app.GameEndedPayload)
		mh.settleGame(ctx, state, logger, p.WinnerID)
		mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	// Resolve targeted recipients. If the event had intended recipients but
	// none are connected (e.g. they are bots), it must NOT fall back to a
	// broadcast.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	mh.dispatch(dispatcher, logger, opCode, ev.Payload, recipients)
}

func (mh *matchHandler) dispatch(dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload any, recipients []runtime.Presence) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("dispatch: Failed to marshal payload for op %d: %v", opCode, err)
		return
	}
	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// sendError sends a GameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}
	mh.dispatch(dispatcher, logger, OpGameError, GameErrorEvent{Code: code, Message: message}, []runtime.Presence{presence})
}

func (mh *matchHandler) buildLabel(state *MatchState) MatchLabel {
	phase := state.Engine.Phase()
	open := "F"
	if phase == domain.PhaseWaiting && len(state.RosterIDs()) < domain.MaxPlayers {
		open = "T"
	}
	return MatchLabel{Open: open, Game: "coup", Phase: string(phase)}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(mh.buildLabel(state))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
