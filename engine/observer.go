package engine

import "rails/game"

// Observer receives push notifications as the engine applies transactions.
// A rendering or logging layer subscribes to these; the engine does not
// care how (or whether) they are displayed.
type Observer interface {
	RouteClaimed(playerID int, route game.Route, points int)
	// CardsDrawn reports a single drawn card. fromDeck draws are hidden
	// information: a display layer should show only the count to opponents.
	CardsDrawn(playerID int, card game.Color, fromDeck bool)
	TicketsResolved(playerID int, kept int)
	FinalRoundTriggered(playerID int)
	GameEnded(scores []game.ScoreRow)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) RouteClaimed(int, game.Route, int) {}
func (NopObserver) CardsDrawn(int, game.Color, bool)  {}
func (NopObserver) TicketsResolved(int, int)          {}
func (NopObserver) FinalRoundTriggered(int)           {}
func (NopObserver) GameEnded([]game.ScoreRow)         {}
