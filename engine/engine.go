package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"rails/game"
)

// Engine-level rejections for commands issued out of sequence. Like the
// game package's rule rejections these are side-effect-free.
var (
	ErrNotYourTurn      = errors.New("not this player's turn")
	ErrWrongPhase       = errors.New("action not allowed in this phase")
	ErrActionInProgress = errors.New("another action is in progress this turn")
	ErrUnknownRoute     = errors.New("unknown route")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrNoPendingTickets = errors.New("no ticket offer pending for player")
)

// Seat describes one player in the roster handed to New.
type Seat struct {
	Name      string
	Color     string
	Automated bool
}

// Engine is the authoritative turn state machine. Every mutation of the
// deck, the claimed-routes index and the player ledgers passes through its
// command surface; commands either fully apply or reject without touching
// state. Human and automated seats use the same entry points.
type Engine struct {
	id     uuid.UUID
	state  *game.GameState
	obs    Observer
	logger zerolog.Logger
	scores []game.ScoreRow

	// justTriggered marks the turn during which the final round fired;
	// that turn does not consume the countdown, so every seat, the
	// trigger-er included, gets exactly one more turn.
	justTriggered bool
}

type Option func(*settings)

type settings struct {
	seed     uint64
	rng      *rand.Rand
	rules    *game.Rules
	observer Observer
	logger   *zerolog.Logger
}

// WithSeed seeds the deck shuffles so a game replays deterministically.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.seed = seed }
}

// WithRand injects a rand source directly, overriding WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}

// WithRules overrides the default rule switches.
func WithRules(rules game.Rules) Option {
	return func(s *settings) { s.rules = &rules }
}

// WithObserver subscribes a notification sink.
func WithObserver(obs Observer) Option {
	return func(s *settings) { s.observer = obs }
}

// WithLogger replaces the default global zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = &logger }
}

// New begins a game: it builds the board and decks, deals four train cards
// and a three-ticket offer to every seat, and enters the
// initial-ticket-selection phase. Rosters must hold two to five seats.
func New(seats []Seat, opts ...Option) (*Engine, error) {
	if len(seats) < 2 || len(seats) > 5 {
		return nil, fmt.Errorf("need 2-5 players, got %d", len(seats))
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	rng := s.rng
	if rng == nil {
		if s.seed == 0 {
			rng = rand.New(rand.NewSource(rand.Uint64()))
		} else {
			rng = rand.New(rand.NewSource(s.seed))
		}
	}
	// Holding both members of a parallel pair is only restricted in games
	// of three or more; with two players the pair is effectively open.
	rules := game.Rules{AllowOwnParallel: len(seats) <= 2}
	if s.rules != nil {
		rules = *s.rules
	}
	obs := s.observer
	if obs == nil {
		obs = NopObserver{}
	}

	id := uuid.New()
	logger := log.With().Str("game", id.String()).Logger()
	if s.logger != nil {
		logger = s.logger.With().Str("game", id.String()).Logger()
	}

	board := game.NewUSABoard()
	deck := game.NewDeck(rng)
	players := make([]*game.Player, len(seats))
	for i, seat := range seats {
		players[i] = game.NewPlayer(i, seat.Name, seat.Color, seat.Automated)
	}

	state := game.NewGameState(board, deck, players, rules)
	for _, p := range players {
		for i := 0; i < game.InitialCards; i++ {
			card, err := deck.DrawFromPile()
			if err != nil {
				return nil, fmt.Errorf("initial deal: %w", err)
			}
			p.AddCards(card)
		}
	}
	for _, p := range players {
		state.PendingTickets[p.ID] = deck.DrawDestinationTickets(3)
	}
	state.Phase = game.InitialTicketSelection

	e := &Engine{id: id, state: state, obs: obs, logger: logger}
	e.logger.Info().Int("players", len(seats)).Msg("game started")
	return e, nil
}

// ID returns the game instance identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// Phase returns the current top-level phase.
func (e *Engine) Phase() game.Phase { return e.state.Phase }

// CurrentPlayerID returns whose turn it is.
func (e *Engine) CurrentPlayerID() int { return e.state.CurrentPlayer().ID }

// Snapshot returns a deep copy of the game state for read-only use. The
// planner consumes these so the planning phase can never mutate or race
// the engine.
func (e *Engine) Snapshot() *game.GameState { return e.state.Copy() }

// Scores returns the final score table once the game has ended, or an
// on-demand computation while it is still running.
func (e *Engine) Scores() []game.ScoreRow {
	if e.scores != nil {
		return e.scores
	}
	return game.FinalScores(e.state.Players)
}

// SelectInitialTickets resolves a player's setup offer. At least two of
// the three tickets must be kept. Once every seat has resolved, play
// begins with the first seat.
func (e *Engine) SelectInitialTickets(playerID int, keepIDs []int) error {
	if e.state.Phase != game.InitialTicketSelection {
		return fmt.Errorf("%w: %s", ErrWrongPhase, e.state.Phase)
	}
	if err := e.resolveOffer(playerID, keepIDs, 2); err != nil {
		return err
	}
	if len(e.state.PendingTickets) == 0 {
		e.state.Phase = game.Playing
		e.state.Current = 0
		e.logger.Info().Msg("all tickets selected, play begins")
	}
	return nil
}

// DrawFromDeck draws one hidden card from the draw pile. The second draw
// of a turn ends the turn.
func (e *Engine) DrawFromDeck(playerID int) (game.Color, error) {
	if err := e.checkDraw(playerID); err != nil {
		return game.NoCard, err
	}
	card, err := e.state.Deck.DrawFromPile()
	if err != nil {
		return game.NoCard, err
	}
	p := e.state.CurrentPlayer()
	p.AddCards(card)
	e.state.TurnAction = game.ActionDrawing
	e.state.CardsDrawn++
	e.obs.CardsDrawn(playerID, card, true)
	if e.state.CardsDrawn >= 2 {
		e.endTurn()
	}
	return card, nil
}

// DrawFaceUp takes the card at the given face-up slot. A locomotive
// consumes both draws and can never be taken as the second draw.
func (e *Engine) DrawFaceUp(playerID, slot int) (game.Color, error) {
	if err := e.checkDraw(playerID); err != nil {
		return game.NoCard, err
	}
	faceUp := e.state.Deck.FaceUp()
	if slot < 0 || slot >= len(faceUp) || faceUp[slot] == game.NoCard {
		return game.NoCard, game.ErrDeckExhausted
	}
	if faceUp[slot] == game.Locomotive && e.state.CardsDrawn == 1 {
		return game.NoCard, game.ErrIllegalWildcardDraw
	}
	card, err := e.state.Deck.DrawFaceUp(slot)
	if err != nil {
		return game.NoCard, err
	}
	p := e.state.CurrentPlayer()
	p.AddCards(card)
	e.state.TurnAction = game.ActionDrawing
	if card == game.Locomotive {
		e.state.CardsDrawn = 2
	} else {
		e.state.CardsDrawn++
	}
	e.obs.CardsDrawn(playerID, card, false)
	if e.state.CardsDrawn >= 2 {
		e.endTurn()
	}
	return card, nil
}

// ClaimRoute claims an unowned route with the chosen combination, spends
// the cards into the discard pile, records the claim, checks the end-game
// trigger and ends the turn.
func (e *Engine) ClaimRoute(playerID, routeID int, combo game.CardCombination) error {
	if err := e.checkTurn(playerID); err != nil {
		return err
	}
	if e.state.TurnAction != game.ActionNone {
		return ErrActionInProgress
	}
	route, ok := e.state.Board.Route(routeID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownRoute, routeID)
	}
	if owner, claimed := e.state.RouteClaimed(routeID); claimed {
		return fmt.Errorf("%w: route %d by player %d", game.ErrRouteAlreadyClaimed, routeID, owner)
	}
	if route.Parallel != 0 && !e.state.Rules.AllowOwnParallel {
		if owner, claimed := e.state.RouteClaimed(route.Parallel); claimed && owner == playerID {
			return fmt.Errorf("%w: routes %d and %d", game.ErrParallelOwned, routeID, route.Parallel)
		}
	}
	p := e.state.CurrentPlayer()
	if !p.CanAfford(route) {
		return fmt.Errorf("%w: route %d length %d", game.ErrInsufficientResources, routeID, route.Length)
	}

	spent, err := p.ApplyClaim(route, combo)
	if err != nil {
		return err
	}
	e.state.Deck.Discard(spent...)
	e.state.ClaimedBy[routeID] = playerID
	points := game.PointsForLength(route.Length)
	e.logger.Info().
		Int("player", playerID).
		Int("route", routeID).
		Str("from", route.CityA).
		Str("to", route.CityB).
		Int("points", points).
		Msg("route claimed")
	e.obs.RouteClaimed(playerID, route, points)

	e.checkFinalRound(p)
	e.endTurn()
	return nil
}

// DrawTickets deals a ticket offer of up to three to the acting player,
// to be resolved with ResolveTickets before the turn can end.
func (e *Engine) DrawTickets(playerID int) ([]game.DestinationTicket, error) {
	if err := e.checkTurn(playerID); err != nil {
		return nil, err
	}
	if e.state.TurnAction != game.ActionNone {
		return nil, ErrActionInProgress
	}
	if e.state.Deck.TicketCount() == 0 {
		return nil, game.ErrNoTicketsAvailable
	}
	offer := e.state.Deck.DrawDestinationTickets(3)
	e.state.PendingTickets[playerID] = offer
	e.state.TurnAction = game.ActionTicketSelecting
	out := make([]game.DestinationTicket, len(offer))
	copy(out, offer)
	return out, nil
}

// ResolveTickets keeps at least one ticket from the pending offer, returns
// the rest to the bottom of the pile and ends the turn.
func (e *Engine) ResolveTickets(playerID int, keepIDs []int) error {
	if err := e.checkTurn(playerID); err != nil {
		return err
	}
	if e.state.TurnAction != game.ActionTicketSelecting {
		return ErrNoPendingTickets
	}
	if err := e.resolveOffer(playerID, keepIDs, 1); err != nil {
		return err
	}
	e.endTurn()
	return nil
}

// EndTurn acknowledges the end of a turn that cannot continue: a draw turn
// cut short by deck exhaustion, or an automated seat with no legal action.
// A pending ticket offer must be resolved first.
func (e *Engine) EndTurn(playerID int) error {
	if err := e.checkTurn(playerID); err != nil {
		return err
	}
	if e.state.TurnAction == game.ActionTicketSelecting {
		return ErrActionInProgress
	}
	e.endTurn()
	return nil
}

// resolveOffer applies a keep/return split to a pending offer. minKeep is
// clamped to the offer size for short piles.
func (e *Engine) resolveOffer(playerID int, keepIDs []int, minKeep int) error {
	offer, ok := e.state.PendingTickets[playerID]
	if !ok {
		return fmt.Errorf("%w: player %d", ErrNoPendingTickets, playerID)
	}
	if minKeep > len(offer) {
		minKeep = len(offer)
	}
	if len(keepIDs) < minKeep {
		return fmt.Errorf("must keep at least %d tickets, kept %d", minKeep, len(keepIDs))
	}

	byID := make(map[int]game.DestinationTicket, len(offer))
	for _, t := range offer {
		byID[t.ID] = t
	}
	kept := make([]game.DestinationTicket, 0, len(keepIDs))
	seen := make(map[int]bool, len(keepIDs))
	for _, id := range keepIDs {
		t, ok := byID[id]
		if !ok || seen[id] {
			return fmt.Errorf("ticket %d is not part of the pending offer", id)
		}
		seen[id] = true
		kept = append(kept, t)
	}
	var returned []game.DestinationTicket
	for _, t := range offer {
		if !seen[t.ID] {
			returned = append(returned, t)
		}
	}

	p := e.state.Player(playerID)
	if p == nil {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, playerID)
	}
	p.AddTickets(kept...)
	e.state.Deck.ReturnTickets(returned)
	delete(e.state.PendingTickets, playerID)
	e.logger.Info().Int("player", playerID).Int("kept", len(kept)).Msg("tickets resolved")
	e.obs.TicketsResolved(playerID, len(kept))
	return nil
}

func (e *Engine) checkTurn(playerID int) error {
	if e.state.Phase != game.Playing && e.state.Phase != game.FinalRound {
		return fmt.Errorf("%w: %s", ErrWrongPhase, e.state.Phase)
	}
	if e.state.CurrentPlayer().ID != playerID {
		return fmt.Errorf("%w: player %d, current %d", ErrNotYourTurn, playerID, e.state.CurrentPlayer().ID)
	}
	return nil
}

func (e *Engine) checkDraw(playerID int) error {
	if err := e.checkTurn(playerID); err != nil {
		return err
	}
	if e.state.TurnAction != game.ActionNone && e.state.TurnAction != game.ActionDrawing {
		return ErrActionInProgress
	}
	return nil
}

// checkFinalRound fires the end-game trigger: the first time any player
// drops to two or fewer trains, every seat (the trigger-er's current turn
// included) gets exactly one more turn.
func (e *Engine) checkFinalRound(p *game.Player) {
	if e.state.Phase != game.Playing || p.TrainsRemaining > 2 {
		return
	}
	e.state.Phase = game.FinalRound
	e.state.FinalRoundBy = p.ID
	e.state.TurnsRemaining = len(e.state.Players)
	e.justTriggered = true
	e.logger.Info().Int("player", p.ID).Int("trains", p.TrainsRemaining).Msg("final round triggered")
	e.obs.FinalRoundTriggered(p.ID)
}

// endTurn closes the current turn and advances round-robin, or ends the
// game when the final-round countdown runs out.
func (e *Engine) endTurn() {
	e.state.TurnAction = game.ActionNone
	e.state.CardsDrawn = 0

	if e.state.Phase == game.FinalRound {
		if e.justTriggered {
			e.justTriggered = false
		} else {
			e.state.TurnsRemaining--
		}
		if e.state.TurnsRemaining <= 0 {
			e.finish()
			return
		}
	}
	e.state.Current = e.state.NextPlayer()
}

// finish settles the game: scores are computed once and the state is frozen.
func (e *Engine) finish() {
	e.state.Phase = game.Ended
	e.scores = game.FinalScores(e.state.Players)
	e.logger.Info().Msg("game ended")
	e.obs.GameEnded(e.scores)
}
