package game

// Phase is the top-level game phase.
type Phase int

const (
	Setup Phase = iota
	InitialTicketSelection
	Playing
	FinalRound
	Ended
)

var phaseNames = map[Phase]string{
	Setup:                  "setup",
	InitialTicketSelection: "initial-ticket-selection",
	Playing:                "playing",
	FinalRound:             "final-round",
	Ended:                  "ended",
}

func (p Phase) String() string { return phaseNames[p] }

// TurnAction is the in-turn sub-state.
type TurnAction int

const (
	ActionNone TurnAction = iota
	ActionDrawing
	ActionClaiming
	ActionTicketSelecting
)

// Rules holds the configurable rule switches. Whether one player may hold
// both members of a parallel pair is ambiguous in the published rules, so
// it is an explicit switch rather than a baked-in policy.
type Rules struct {
	AllowOwnParallel bool
}

// GameState is the single mutable source of truth for one game instance.
// The board is shared read-only; everything else is owned here and mutated
// only through turn-engine transactions. There is exactly one turn in
// progress at a time, so no locking is needed; a multi-threaded host must
// serialize calls externally.
type GameState struct {
	Board   *Board
	Deck    *Deck
	Players []*Player
	Rules   Rules

	Phase          Phase
	Current        int // index into Players
	TurnAction     TurnAction
	CardsDrawn     int // cards drawn so far this turn (0..2)
	ClaimedBy      map[int]int // route ID → player ID
	FinalRoundBy   int         // player ID that triggered the final round, -1 before
	TurnsRemaining int         // countdown after the trigger

	// PendingTickets holds an unresolved ticket offer per player ID.
	// During initial selection every player has one; during play only the
	// active player can.
	PendingTickets map[int][]DestinationTicket
}

// NewGameState assembles a fresh state in the Setup phase.
func NewGameState(board *Board, deck *Deck, players []*Player, rules Rules) *GameState {
	return &GameState{
		Board:          board,
		Deck:           deck,
		Players:        players,
		Rules:          rules,
		Phase:          Setup,
		FinalRoundBy:   -1,
		ClaimedBy:      make(map[int]int),
		PendingTickets: make(map[int][]DestinationTicket),
	}
}

// Player returns the ledger for the given player ID, or nil.
func (gs *GameState) Player(id int) *Player {
	for _, p := range gs.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the ledger whose turn it is.
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.Current]
}

// RouteClaimed reports whether any player owns the route, and by whom.
func (gs *GameState) RouteClaimed(routeID int) (playerID int, claimed bool) {
	playerID, claimed = gs.ClaimedBy[routeID]
	return playerID, claimed
}

// NextPlayer returns the seat index after the current one, strictly
// round-robin in seating order.
func (gs *GameState) NextPlayer() int {
	return (gs.Current + 1) % len(gs.Players)
}

// Copy deep-copies the state for read-only snapshots. The board is shared:
// it is immutable after load.
func (gs *GameState) Copy() *GameState {
	players := make([]*Player, len(gs.Players))
	for i, p := range gs.Players {
		players[i] = p.Copy()
	}
	claimed := make(map[int]int, len(gs.ClaimedBy))
	for routeID, playerID := range gs.ClaimedBy {
		claimed[routeID] = playerID
	}
	pending := make(map[int][]DestinationTicket, len(gs.PendingTickets))
	for id, offer := range gs.PendingTickets {
		pending[id] = append([]DestinationTicket(nil), offer...)
	}
	return &GameState{
		Board:          gs.Board,
		Deck:           gs.Deck.Copy(),
		Players:        players,
		Rules:          gs.Rules,
		Phase:          gs.Phase,
		Current:        gs.Current,
		TurnAction:     gs.TurnAction,
		CardsDrawn:     gs.CardsDrawn,
		ClaimedBy:      claimed,
		FinalRoundBy:   gs.FinalRoundBy,
		TurnsRemaining: gs.TurnsRemaining,
		PendingTickets: pending,
	}
}
