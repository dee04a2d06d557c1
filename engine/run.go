package engine

import (
	"errors"
	"fmt"

	"rails/game"
)

// ActionType tags an automated seat's intent.
type ActionType int

const (
	ActDrawDeck ActionType = iota
	ActDrawFaceUp
	ActClaim
	ActTickets
)

// Action is the intent an agent proposes. The engine validates and applies
// it; the agent never mutates state directly.
type Action struct {
	Type    ActionType
	Slot    int
	RouteID int
	Combo   game.CardCombination
}

// Agent decides for one automated seat from a read-only snapshot.
type Agent interface {
	// Decide proposes the turn's opening action.
	Decide(s *game.GameState) Action
	// DecideDraw proposes a card source. second marks the turn's second
	// draw, where a face-up locomotive is illegal.
	DecideDraw(s *game.GameState, second bool) Action
	// ChooseTickets picks the IDs to keep from a ticket offer.
	ChooseTickets(s *game.GameState, offer []game.DestinationTicket, minKeep int) []int
}

// MaxTurns bounds a runaway game; a legal game ends far earlier.
const MaxTurns = 2000

// Run drives a fully automated game to completion and returns the final
// scores. Every seat must have an agent. A seat that cannot produce a
// legal action has its turn forcibly ended so the game never stalls.
func (e *Engine) Run(agents map[int]Agent) ([]game.ScoreRow, error) {
	for _, p := range e.state.Players {
		if _, ok := agents[p.ID]; !ok {
			return nil, fmt.Errorf("%w: no agent for player %d", ErrUnknownPlayer, p.ID)
		}
	}

	if e.state.Phase == game.InitialTicketSelection {
		for _, p := range e.state.Players {
			offer := e.state.PendingTickets[p.ID]
			keep := agents[p.ID].ChooseTickets(e.Snapshot(), offer, 2)
			if err := e.SelectInitialTickets(p.ID, keep); err != nil {
				return nil, fmt.Errorf("initial tickets for player %d: %w", p.ID, err)
			}
		}
	}

	stalled := 0
	for turn := 0; e.state.Phase != game.Ended; turn++ {
		if turn >= MaxTurns {
			return nil, fmt.Errorf("game did not finish within %d turns", MaxTurns)
		}
		pid := e.CurrentPlayerID()
		before := e.progress()
		e.playTurn(pid, agents[pid])
		if e.state.Phase != game.Ended && e.progress() == before {
			stalled++
			// A full round with no card drawn, route claimed or ticket
			// resolved means every source is exhausted; settle the game.
			if stalled >= len(e.state.Players) {
				e.logger.Warn().Msg("no legal moves remain, settling game")
				e.finish()
			}
		} else {
			stalled = 0
		}
	}
	return e.scores, nil
}

// progress fingerprints the parts of the state a turn can advance.
func (e *Engine) progress() [3]int {
	cards, tickets := 0, 0
	for _, p := range e.state.Players {
		cards += p.TotalCards()
		tickets += len(p.Tickets)
	}
	return [3]int{len(e.state.ClaimedBy), cards, tickets}
}

// playTurn executes one automated turn end to end.
func (e *Engine) playTurn(pid int, agent Agent) {
	act := agent.Decide(e.Snapshot())

	switch act.Type {
	case ActClaim:
		if err := e.ClaimRoute(pid, act.RouteID, act.Combo); err != nil {
			e.logger.Warn().Err(err).Int("player", pid).Int("route", act.RouteID).
				Msg("claim rejected, drawing instead")
			e.drawTurn(pid, agent, Action{Type: ActDrawDeck})
		}
	case ActTickets:
		offer, err := e.DrawTickets(pid)
		if err != nil {
			e.drawTurn(pid, agent, Action{Type: ActDrawDeck})
			return
		}
		keep := agent.ChooseTickets(e.Snapshot(), offer, 1)
		if err := e.ResolveTickets(pid, keep); err != nil {
			// Keeping everything is always legal for a non-empty offer.
			all := make([]int, len(offer))
			for i, t := range offer {
				all[i] = t.ID
			}
			if err := e.ResolveTickets(pid, all); err != nil {
				e.logger.Warn().Err(err).Int("player", pid).Msg("forcing turn end")
				_ = e.EndTurn(pid)
			}
		}
	default:
		e.drawTurn(pid, agent, act)
	}
}

// drawTurn performs up to two draws, asking the agent again for the second
// source. Exhausted sources fall back to the deck, then to any remaining
// face-up card, then to ending the turn with however many draws completed.
func (e *Engine) drawTurn(pid int, agent Agent, first Action) {
	if !e.drawOnce(pid, first, false) {
		_ = e.EndTurn(pid)
		return
	}
	// A face-up locomotive consumes both draws and the turn is over.
	if e.state.Phase == game.Ended || e.CurrentPlayerID() != pid {
		return
	}
	second := agent.DecideDraw(e.Snapshot(), true)
	if !e.drawOnce(pid, second, true) {
		_ = e.EndTurn(pid)
	}
}

// drawOnce attempts one draw with fallbacks, reporting whether any card
// was obtained.
func (e *Engine) drawOnce(pid int, act Action, second bool) bool {
	if act.Type == ActDrawFaceUp {
		if _, err := e.DrawFaceUp(pid, act.Slot); err == nil {
			return true
		} else if !errors.Is(err, game.ErrDeckExhausted) && !errors.Is(err, game.ErrIllegalWildcardDraw) {
			return false
		}
	}
	if _, err := e.DrawFromDeck(pid); err == nil {
		return true
	}
	for slot, card := range e.state.Deck.FaceUp() {
		if card == game.NoCard || (second && card == game.Locomotive) {
			continue
		}
		if _, err := e.DrawFaceUp(pid, slot); err == nil {
			return true
		}
	}
	return false
}
