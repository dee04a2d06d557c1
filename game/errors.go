package game

import "errors"

// Rule rejections are expected, user-facing outcomes. They are returned
// without mutating any state so the acting player can retry a different
// action within the same turn.
var (
	ErrRouteAlreadyClaimed   = errors.New("route already claimed")
	ErrParallelOwned         = errors.New("parallel route already owned by player")
	ErrInsufficientResources = errors.New("not enough cards or trains for route")
	ErrIllegalWildcardDraw   = errors.New("locomotive cannot be taken as second draw")
	ErrNoTicketsAvailable    = errors.New("destination ticket pile is empty")
	ErrDeckExhausted         = errors.New("draw and discard piles are both empty")
)

// Precondition violations signal a defect in the calling layer, not a
// game-legal outcome.
var (
	ErrInsufficientCards  = errors.New("hand does not contain the combination")
	ErrInvalidCombination = errors.New("combination does not pay for route")
)
