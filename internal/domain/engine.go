package domain

import (
	"math/rand"
	"time"
)

// Engine is the state machine for one Coup game. It is not safe for
// concurrent use; the owning room must serialize intents into it. Every
// intent is applied to a deep clone of the state and committed only on
// success, so a rejected intent never leaves partial mutations behind.
type Engine struct {
	rng   *rand.Rand
	state *GameState
}

// NewEngine constructs an engine with the provided rng or a time-seeded
// default.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		rng:   rng,
		state: newGameState(DefaultLogLimit),
	}
}

// SetLogLimit overrides the game log history cap.
func (e *Engine) SetLogLimit(n int) {
	if n > 0 {
		e.state.logLimit = n
	}
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() *GameState {
	return e.state.clone()
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

func (e *Engine) commit(fn func(g *GameState) error) error {
	next := e.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	e.state = next
	return nil
}

// AddPlayer adds a player to the roster. Only legal while waiting; a
// duplicate id is a no-op.
func (e *Engine) AddPlayer(id, nickname string) error {
	return e.commit(func(g *GameState) error { return g.addPlayer(id, nickname) })
}

// RemovePlayer removes a player, eliminating them if the game has started.
// Idempotent, and processed even while paused: a leaving player cannot be
// blocked by pause.
func (e *Engine) RemovePlayer(id string) {
	_ = e.commit(func(g *GameState) error {
		g.removePlayer(e.rng, id)
		return nil
	})
}

// StartGame deals two cards to every player and opens the first turn.
func (e *Engine) StartGame() error {
	return e.commit(func(g *GameState) error { return g.startGame(e.rng) })
}

// SubmitAction declares the current player's action for this turn.
func (e *Engine) SubmitAction(playerID string, action ActionType, targetID string) error {
	return e.commit(func(g *GameState) error { return g.declareAction(e.rng, playerID, action, targetID) })
}

// SubmitChallenge challenges the pending action claim, or the block claim
// when a block is on the table.
func (e *Engine) SubmitChallenge(playerID string) error {
	return e.commit(func(g *GameState) error { return g.challenge(e.rng, playerID) })
}

// SubmitBlock declares a counter-claim that cancels the pending action
// unless successfully challenged.
func (e *Engine) SubmitBlock(playerID string, claimed Card) error {
	return e.commit(func(g *GameState) error { return g.block(playerID, claimed) })
}

// SubmitPass records that a player declines to challenge or block.
func (e *Engine) SubmitPass(playerID string) error {
	return e.commit(func(g *GameState) error { return g.pass(e.rng, playerID) })
}

// SubmitReveal turns one of the named player's hidden cards face up.
func (e *Engine) SubmitReveal(playerID string, card Card) error {
	return e.commit(func(g *GameState) error { return g.revealCard(e.rng, playerID, card) })
}

// SubmitExchangeSelection finishes an exchange: kept becomes the player's new
// hidden hand and the remainder of the pool is shuffled back into the deck.
func (e *Engine) SubmitExchangeSelection(playerID string, kept []Card) error {
	return e.commit(func(g *GameState) error { return g.exchangeSelect(e.rng, playerID, kept) })
}

// Pause freezes all gameplay transitions, remembering the interrupted phase.
func (e *Engine) Pause() {
	_ = e.commit(func(g *GameState) error {
		g.pauseGame()
		return nil
	})
}

// Resume restores the phase interrupted by Pause.
func (e *Engine) Resume() {
	_ = e.commit(func(g *GameState) error {
		g.resumeGame()
		return nil
	})
}

// Reset returns the room to the waiting phase with the same roster and fresh
// stakes, ready for a new game.
func (e *Engine) Reset() {
	fresh := newGameState(e.state.logLimit)
	for _, p := range e.state.Players {
		_ = fresh.addPlayer(p.ID, p.Nickname)
	}
	e.state = fresh
}

/* ---- roster ---- */

func (g *GameState) addPlayer(id, nickname string) error {
	if g.Phase != PhaseWaiting {
		return ErrAlreadyStarted
	}
	if g.player(id) != nil {
		return nil
	}
	if len(g.Players) >= MaxPlayers {
		return ErrRoomFull
	}
	g.Players = append(g.Players, &Player{
		ID:       id,
		Nickname: nickname,
		Coins:    StartingCoins,
	})
	g.Treasury -= StartingCoins
	g.addLog("%s is ready to play Coup.", nickname)
	return nil
}

func (g *GameState) removePlayer(rng *rand.Rand, id string) {
	p := g.player(id)
	if p == nil {
		return
	}

	if g.Phase == PhaseWaiting {
		for i, other := range g.Players {
			if other.ID == id {
				g.Players = append(g.Players[:i], g.Players[i+1:]...)
				break
			}
		}
		g.Treasury += p.Coins
		g.addLog("%s left the lobby.", p.Nickname)
		return
	}

	// Removal is processed even while paused; unwrap the overlay, apply, and
	// restore it unless the game ended.
	wasPaused := g.Paused
	if wasPaused {
		g.Phase = g.PausedPhase
		g.PausedPhase = ""
		g.Paused = false
	}
	g.removeActivePlayer(rng, p)
	if wasPaused && g.Phase != PhaseGameOver {
		g.PausedPhase = g.Phase
		g.Phase = PhasePaused
		g.Paused = true
	}
}

func (g *GameState) removeActivePlayer(rng *rand.Rand, p *Player) {
	if g.Phase == PhaseGameOver {
		return
	}

	// Cards drawn for an in-flight exchange are not part of the hand; pull
	// them out of the offer pool before the hand itself is returned.
	var drawn []Card
	if g.Exchange != nil && g.Exchange.PlayerID == p.ID {
		pool := append([]Card{}, g.Exchange.Offered...)
		for _, c := range p.UnrevealedCards() {
			pool, _ = removeOneCard(pool, c)
		}
		drawn = pool
		g.Exchange = nil
	}

	if !p.Eliminated {
		hidden := p.UnrevealedCards()
		kept := make([]InfluenceCard, 0, len(p.Influence))
		for _, inf := range p.Influence {
			if inf.Revealed {
				kept = append(kept, inf)
			}
		}
		p.Influence = kept
		if len(hidden)+len(drawn) > 0 {
			g.Deck = ShuffleDeck(rng, append(g.Deck, append(hidden, drawn...)...))
		}
		p.Eliminated = true
		g.Treasury += p.Coins
		p.Coins = 0
		g.addLog("%s left the game and is eliminated.", p.Nickname)
	}

	switch {
	case g.Reveal != nil && g.Reveal.PlayerID == p.ID:
		// Elimination satisfies the forced reveal; resolve the recorded
		// branch as if they had revealed.
		g.Reveal = nil
		if !g.checkWinner() {
			g.finishReveal(rng)
		}
	case g.Pending != nil && g.Pending.ActorID == p.ID:
		g.Pending = nil
		g.Verdict = nil
		g.nextTurn()
	case g.Phase == PhaseBlockResponse && g.BlockerID == p.ID:
		// The block dies with the blocker and the action proceeds.
		g.BlockerID = ""
		g.Pending.BlockClaimedCard = ""
		g.resolvePending(rng)
	case g.CurrentPlayerID == p.ID:
		g.nextTurn()
	default:
		// If they owed a response, their departure may complete the phase.
		g.maybeResolveResponses(rng)
		g.checkWinner()
	}
}

/* ---- game start ---- */

func (g *GameState) startGame(rng *rand.Rand) error {
	if g.Phase != PhaseWaiting {
		return ErrAlreadyStarted
	}
	if len(g.Players) < MinPlayers {
		return ErrNotEnoughPlayers
	}

	g.Deck = ShuffleDeck(rng, NewDeck())
	for _, p := range g.Players {
		p.Influence = []InfluenceCard{
			{Card: g.popDeck()},
			{Card: g.popDeck()},
		}
	}

	g.CurrentPlayerID = g.Players[0].ID
	g.Phase = PhaseTurn
	g.addLog("The Coup game has started!")
	g.addLog("It's %s's turn.", g.Players[0].Nickname)
	return nil
}

/* ---- turn declarations ---- */

// requireActive rejects gameplay intents outside a live, unpaused game.
func (g *GameState) requireActive() error {
	if g.Phase == PhaseWaiting {
		return ErrGameNotStarted
	}
	if g.Paused || g.Phase == PhaseGameOver {
		return ErrPhaseMismatch
	}
	return nil
}

func (g *GameState) declareAction(rng *rand.Rand, playerID string, action ActionType, targetID string) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if g.Phase != PhaseTurn {
		return ErrPhaseMismatch
	}
	if playerID != g.CurrentPlayerID {
		return ErrNotYourTurn
	}
	p := g.player(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}

	spec, ok := LookupAction(action)
	if !ok {
		return ErrUnknownAction
	}
	if p.Coins >= MustCoupThreshold && action != ActionCoup {
		return ErrMustCoup
	}
	if p.Coins < spec.Cost {
		return ErrInsufficientFunds
	}

	var target *Player
	if spec.NeedsTarget {
		if targetID == "" || targetID == playerID {
			return ErrInvalidTarget
		}
		target = g.player(targetID)
		if target == nil || target.Eliminated {
			return ErrInvalidTarget
		}
	}

	switch action {
	case ActionIncome:
		g.gainFromTreasury(p, 1)
		g.addLog("%s takes Income and now has %d coins.", p.Nickname, p.Coins)
		g.nextTurn()
		return nil
	case ActionCoup:
		p.Coins -= CoupCost
		g.Treasury += CoupCost
		g.addLog("%s pays %d coins to launch a Coup against %s.", p.Nickname, CoupCost, target.Nickname)
		g.Reveal = &RevealChoice{PlayerID: target.ID, Reason: RevealCoup}
		g.Phase = PhaseReveal
		return nil
	}

	g.Pending = &PendingAction{
		Type:        action,
		ActorID:     playerID,
		ClaimedCard: spec.ClaimedCard,
		BlockableBy: append([]Card{}, spec.BlockableBy...),
	}
	if spec.NeedsTarget {
		g.Pending.TargetID = targetID
	}
	g.RespondedIDs = nil
	g.Phase = PhaseActionResponse

	switch action {
	case ActionForeignAid:
		g.addLog("%s attempts Foreign Aid.", p.Nickname)
	case ActionTax:
		g.addLog("%s claims Duke to take Tax.", p.Nickname)
	case ActionAssassinate:
		g.addLog("%s claims Assassin to assassinate %s.", p.Nickname, target.Nickname)
	case ActionSteal:
		g.addLog("%s claims Captain to steal from %s.", p.Nickname, target.Nickname)
	case ActionExchange:
		g.addLog("%s claims Ambassador to exchange cards.", p.Nickname)
	}
	return nil
}

/* ---- responses ---- */

func (g *GameState) challenge(rng *rand.Rand, playerID string) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if g.Phase != PhaseActionResponse && g.Phase != PhaseBlockResponse {
		return ErrPhaseMismatch
	}
	challenger := g.player(playerID)
	if challenger == nil {
		return ErrUnknownPlayer
	}
	if challenger.Eliminated {
		return ErrNotYourTurn
	}
	if g.hasResponded(playerID) {
		return ErrDuplicateResponse
	}

	var claimant *Player
	var claimed Card
	againstBlock := g.Phase == PhaseBlockResponse
	if againstBlock {
		// Only the blocked actor may challenge the block.
		if playerID != g.Pending.ActorID {
			return ErrNotYourTurn
		}
		claimant = g.player(g.BlockerID)
		claimed = g.Pending.BlockClaimedCard
	} else {
		if playerID == g.Pending.ActorID {
			return ErrNotYourTurn
		}
		if !g.Pending.Challengeable() {
			return ErrPhaseMismatch
		}
		claimant = g.player(g.Pending.ActorID)
		claimed = g.Pending.ClaimedCard
	}

	g.ChallengerID = playerID
	g.addLog("%s challenges %s's claim of %s.", challenger.Nickname, claimant.Nickname, claimed)

	if claimant.HasUnrevealed(claimed) {
		// Claim was true: the proven card is swapped for a fresh one and the
		// challenger owes the reveal.
		g.addLog("%s shows a %s and shuffles it back into the deck.", claimant.Nickname, claimed)
		g.returnCardToDeck(rng, claimant, claimed)
		g.drawCard(claimant)
		g.Verdict = &ChallengeVerdict{LoserID: playerID, ClaimTrue: true, AgainstBlock: againstBlock}
		g.Reveal = &RevealChoice{PlayerID: playerID, Reason: RevealLostChallenge}
	} else {
		g.addLog("%s does not have a %s! The bluff is exposed.", claimant.Nickname, claimed)
		g.Verdict = &ChallengeVerdict{LoserID: claimant.ID, ClaimTrue: false, AgainstBlock: againstBlock}
		g.Reveal = &RevealChoice{PlayerID: claimant.ID, Reason: RevealLostChallenge}
	}
	g.Phase = PhaseReveal
	return nil
}

func (g *GameState) block(playerID string, claimed Card) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if g.Phase != PhaseActionResponse {
		return ErrPhaseMismatch
	}
	blocker := g.player(playerID)
	if blocker == nil {
		return ErrUnknownPlayer
	}
	if blocker.Eliminated || playerID == g.Pending.ActorID {
		return ErrNotYourTurn
	}
	if g.hasResponded(playerID) {
		return ErrDuplicateResponse
	}
	allowed := false
	for _, c := range g.Pending.BlockableBy {
		if c == claimed {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidBlockCard
	}
	// Targeted actions may only be blocked by their target; an untargeted
	// blockable action (foreign aid) is open to any responder.
	if g.Pending.TargetID != "" && g.Pending.TargetID != playerID {
		return ErrNotYourTurn
	}

	g.BlockerID = playerID
	g.Pending.BlockClaimedCard = claimed
	g.RespondedIDs = nil
	g.Phase = PhaseBlockResponse
	g.addLog("%s claims %s to block the action.", blocker.Nickname, claimed)
	return nil
}

func (g *GameState) pass(rng *rand.Rand, playerID string) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if g.Phase != PhaseActionResponse && g.Phase != PhaseBlockResponse {
		return ErrPhaseMismatch
	}
	p := g.player(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if p.Eliminated {
		return ErrNotYourTurn
	}
	if g.Phase == PhaseActionResponse && playerID == g.Pending.ActorID {
		return ErrNotYourTurn
	}
	if g.Phase == PhaseBlockResponse && playerID != g.Pending.ActorID {
		return ErrNotYourTurn
	}
	if g.hasResponded(playerID) {
		return ErrDuplicateResponse
	}

	g.RespondedIDs = append(g.RespondedIDs, playerID)
	g.addLog("%s passes.", p.Nickname)
	g.maybeResolveResponses(rng)
	return nil
}

// maybeResolveResponses resolves the current response phase once no eligible
// responder is still owed.
func (g *GameState) maybeResolveResponses(rng *rand.Rand) {
	if len(g.pendingResponders()) > 0 {
		return
	}
	switch g.Phase {
	case PhaseActionResponse:
		g.addLog("No challenges or blocks. The action proceeds.")
		g.resolvePending(rng)
	case PhaseBlockResponse:
		g.addLog("The block is not challenged. The action is voided.")
		g.Pending = nil
		g.nextTurn()
	}
}

/* ---- reveal ---- */

func (g *GameState) revealCard(rng *rand.Rand, playerID string, card Card) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if g.Phase != PhaseReveal || g.Reveal == nil {
		return ErrPhaseMismatch
	}
	if g.Reveal.PlayerID != playerID {
		return ErrNotYourTurn
	}
	p := g.player(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}

	idx := -1
	for i, inf := range p.Influence {
		if inf.Card == card && !inf.Revealed {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrInvalidRevealCard
	}

	p.Influence[idx].Revealed = true
	g.addLog("%s reveals a %s.", p.Nickname, card)
	g.Reveal = nil

	if p.AllRevealed() && !p.Eliminated {
		g.eliminate(p)
		if g.checkWinner() {
			return nil
		}
	}
	g.finishReveal(rng)
	return nil
}

// finishReveal branches on why the reveal happened: a recorded challenge
// verdict decides whether the pending action or block ultimately stands;
// with no verdict the reveal came from a coup or assassination and the turn
// simply advances.
func (g *GameState) finishReveal(rng *rand.Rand) {
	v := g.Verdict
	g.Verdict = nil
	g.ChallengerID = ""

	if v == nil {
		g.nextTurn()
		return
	}
	if v.AgainstBlock {
		if v.ClaimTrue {
			g.addLog("The block stands. The action is voided.")
			g.Pending = nil
			g.nextTurn()
		} else {
			g.addLog("The block fails. The action proceeds.")
			g.BlockerID = ""
			g.resolvePending(rng)
		}
		return
	}
	if v.ClaimTrue {
		g.resolvePending(rng)
	} else {
		g.addLog("The action is voided.")
		g.Pending = nil
		g.nextTurn()
	}
}

/* ---- action resolution ---- */

func (g *GameState) resolvePending(rng *rand.Rand) {
	action := g.Pending
	g.Pending = nil
	if action == nil {
		g.nextTurn()
		return
	}

	actor := g.player(action.ActorID)
	if actor == nil || actor.Eliminated {
		g.nextTurn()
		return
	}
	target := g.player(action.TargetID)

	switch action.Type {
	case ActionForeignAid:
		gained := g.gainFromTreasury(actor, 2)
		g.addLog("%s takes Foreign Aid and gains %d coins.", actor.Nickname, gained)
		g.nextTurn()
	case ActionTax:
		gained := g.gainFromTreasury(actor, 3)
		g.addLog("%s collects Tax and gains %d coins.", actor.Nickname, gained)
		g.nextTurn()
	case ActionSteal:
		if target == nil || target.Eliminated {
			g.addLog("The steal has no effect; the target is gone.")
			g.nextTurn()
			return
		}
		amount := StealAmount
		if target.Coins < amount {
			amount = target.Coins
		}
		target.Coins -= amount
		actor.Coins += amount
		g.addLog("%s steals %d coins from %s.", actor.Nickname, amount, target.Nickname)
		g.nextTurn()
	case ActionAssassinate:
		actor.Coins -= AssassinateCost
		g.Treasury += AssassinateCost
		if target == nil || target.Eliminated {
			g.addLog("%s pays %d coins, but the target is already gone.", actor.Nickname, AssassinateCost)
			g.nextTurn()
			return
		}
		g.addLog("%s pays %d coins. The assassination succeeds.", actor.Nickname, AssassinateCost)
		g.Reveal = &RevealChoice{PlayerID: target.ID, Reason: RevealAssassinated}
		g.Phase = PhaseReveal
	case ActionExchange:
		drawn := make([]Card, 0, ExchangeDrawCount)
		for i := 0; i < ExchangeDrawCount && len(g.Deck) > 0; i++ {
			drawn = append(drawn, g.popDeck())
		}
		g.Exchange = &ExchangeInfo{
			PlayerID: actor.ID,
			Offered:  append(actor.UnrevealedCards(), drawn...),
		}
		g.Phase = PhaseExchange
		g.addLog("%s draws %d cards from the deck to exchange.", actor.Nickname, len(drawn))
	default:
		g.nextTurn()
	}
}

func (g *GameState) exchangeSelect(rng *rand.Rand, playerID string, kept []Card) error {
	if err := g.requireActive(); err != nil {
		return err
	}
	if g.Phase != PhaseExchange || g.Exchange == nil {
		return ErrPhaseMismatch
	}
	if g.Exchange.PlayerID != playerID {
		return ErrNotYourTurn
	}
	p := g.player(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}

	if len(kept) != p.UnrevealedCount() {
		return ErrInvalidExchangeCount
	}
	pool := append([]Card{}, g.Exchange.Offered...)
	for _, c := range kept {
		var ok bool
		pool, ok = removeOneCard(pool, c)
		if !ok {
			return ErrInvalidExchangeCard
		}
	}

	influence := make([]InfluenceCard, 0, len(p.Influence))
	for _, inf := range p.Influence {
		if inf.Revealed {
			influence = append(influence, inf)
		}
	}
	for _, c := range kept {
		influence = append(influence, InfluenceCard{Card: c})
	}
	p.Influence = influence

	if len(pool) > 0 {
		g.Deck = ShuffleDeck(rng, append(g.Deck, pool...))
	}
	g.Exchange = nil
	g.addLog("%s finishes exchanging cards.", p.Nickname)
	g.nextTurn()
	return nil
}

/* ---- pause overlay ---- */

func (g *GameState) pauseGame() {
	if g.Paused || g.Phase == PhaseGameOver {
		return
	}
	g.PausedPhase = g.Phase
	g.Phase = PhasePaused
	g.Paused = true
	g.addLog("The game has been paused.")
}

func (g *GameState) resumeGame() {
	if !g.Paused {
		return
	}
	g.Phase = g.PausedPhase
	g.PausedPhase = ""
	g.Paused = false
	g.addLog("The game has been resumed.")
}

/* ---- bookkeeping ---- */

func (g *GameState) popDeck() Card {
	c := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	return c
}

// gainFromTreasury moves up to n coins from the treasury to p, returning the
// amount actually moved.
func (g *GameState) gainFromTreasury(p *Player, n int) int {
	if n > g.Treasury {
		n = g.Treasury
	}
	g.Treasury -= n
	p.Coins += n
	return n
}

// returnCardToDeck moves one hidden copy of card from p's hand back into the
// deck and reshuffles.
func (g *GameState) returnCardToDeck(rng *rand.Rand, p *Player, card Card) {
	for i, inf := range p.Influence {
		if inf.Card == card && !inf.Revealed {
			p.Influence = append(p.Influence[:i], p.Influence[i+1:]...)
			g.Deck = ShuffleDeck(rng, append(g.Deck, card))
			return
		}
	}
}

func (g *GameState) drawCard(p *Player) {
	if len(g.Deck) == 0 {
		g.addLog("The deck is empty. %s cannot draw a new card.", p.Nickname)
		return
	}
	p.Influence = append(p.Influence, InfluenceCard{Card: g.popDeck()})
	g.addLog("%s draws a new card.", p.Nickname)
}

// eliminate marks p out of the game and returns their coins to the treasury.
// Elimination is monotonic.
func (g *GameState) eliminate(p *Player) {
	p.Eliminated = true
	g.Treasury += p.Coins
	p.Coins = 0
	g.addLog("%s has been eliminated from the game.", p.Nickname)
}

// checkWinner enters game-over once exactly one live player remains.
func (g *GameState) checkWinner() bool {
	if g.Phase == PhaseWaiting {
		return false
	}
	if g.Phase == PhaseGameOver {
		return true
	}
	active := g.activePlayers()
	switch {
	case len(active) == 1 && len(g.Players) >= MinPlayers:
		g.WinnerID = active[0].ID
		g.finishGame()
		g.addLog("%s is the winner!", active[0].Nickname)
		return true
	case len(active) == 0:
		g.finishGame()
		g.addLog("Game over. No players left.")
		return true
	}
	return false
}

func (g *GameState) finishGame() {
	g.Phase = PhaseGameOver
	g.Pending = nil
	g.Verdict = nil
	g.Reveal = nil
	g.Exchange = nil
	g.ChallengerID = ""
	g.BlockerID = ""
	g.RespondedIDs = nil
	g.Paused = false
	g.PausedPhase = ""
}

// nextTurn hands the turn to the next live player in seating order and
// clears all per-turn transient state.
func (g *GameState) nextTurn() {
	if g.checkWinner() {
		return
	}

	next := g.nextActiveAfter(g.CurrentPlayerID)
	if next == nil {
		return
	}

	g.CurrentPlayerID = next.ID
	g.Phase = PhaseTurn
	g.Pending = nil
	g.ChallengerID = ""
	g.BlockerID = ""
	g.Verdict = nil
	g.Reveal = nil
	g.Exchange = nil
	g.RespondedIDs = nil

	g.addLog("It's now %s's turn.", next.Nickname)
	if next.Coins >= MustCoupThreshold {
		g.addLog("%s has %d or more coins and must Coup.", next.Nickname, MustCoupThreshold)
	}
}

// nextActiveAfter returns the first non-eliminated player seated after id,
// wrapping around; id itself is returned only if no one else is live.
func (g *GameState) nextActiveAfter(id string) *Player {
	start := 0
	for i, p := range g.Players {
		if p.ID == id {
			start = i + 1
			break
		}
	}
	for i := 0; i < len(g.Players); i++ {
		p := g.Players[(start+i)%len(g.Players)]
		if !p.Eliminated {
			return p
		}
	}
	return nil
}
