package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"rails/game"
)

func testSeats(n int) []Seat {
	names := []string{"ada", "bob", "cy", "dot", "eve"}
	colors := []string{"red", "blue", "green", "yellow", "black"}
	seats := make([]Seat, n)
	for i := range seats {
		seats[i] = Seat{Name: names[i], Color: colors[i], Automated: true}
	}
	return seats
}

func newTestEngine(t *testing.T, n int, opts ...Option) *Engine {
	t.Helper()
	opts = append(opts, WithSeed(11), WithLogger(zerolog.Nop()))
	e, err := New(testSeats(n), opts...)
	require.NoError(t, err)
	return e
}

// startPlaying resolves every setup offer by keeping the first two
// tickets, moving the game into the playing phase.
func startPlaying(t *testing.T, e *Engine) {
	t.Helper()
	for _, p := range e.state.Players {
		offer := e.state.PendingTickets[p.ID]
		require.NoError(t, e.SelectInitialTickets(p.ID, []int{offer[0].ID, offer[1].ID}))
	}
	require.Equal(t, game.Playing, e.Phase())
}

// setDeck swaps in a hand-built deck so draws are fully scripted.
func setDeck(e *Engine, drawPile, faceUp []game.Color, tickets []game.DestinationTicket) {
	e.state.Deck = game.RestoreDeck(rand.New(rand.NewSource(1)), drawPile, nil, faceUp, tickets)
}

func TestNew(t *testing.T) {
	t.Run("rejects rosters outside two to five", func(t *testing.T) {
		_, err := New(testSeats(1), WithLogger(zerolog.Nop()))
		require.Error(t, err)
		_, err = New(append(testSeats(5), Seat{Name: "fay"}), WithLogger(zerolog.Nop()))
		require.Error(t, err)
	})

	t.Run("deals four cards and a three-ticket offer per seat", func(t *testing.T) {
		e := newTestEngine(t, 3)

		require.Equal(t, game.InitialTicketSelection, e.Phase())
		for _, p := range e.state.Players {
			require.Equal(t, game.InitialCards, p.TotalCards(), "player %d", p.ID)
			require.Len(t, e.state.PendingTickets[p.ID], 3, "player %d", p.ID)
			require.Equal(t, game.StartingTrains, p.TrainsRemaining)
		}
		require.Equal(t, 30-3*3, e.state.Deck.TicketCount())
	})

	t.Run("same seed replays the same deal", func(t *testing.T) {
		a := newTestEngine(t, 2)
		b := newTestEngine(t, 2)
		require.Equal(t, a.state.Players[0].Hand, b.state.Players[0].Hand)
		require.Equal(t, a.state.PendingTickets, b.state.PendingTickets)
	})

	t.Run("parallel ownership follows the player count by default", func(t *testing.T) {
		two := newTestEngine(t, 2)
		three := newTestEngine(t, 3)
		require.True(t, two.state.Rules.AllowOwnParallel)
		require.False(t, three.state.Rules.AllowOwnParallel)
	})
}

func TestSelectInitialTickets(t *testing.T) {
	t.Run("keeping fewer than two is rejected", func(t *testing.T) {
		e := newTestEngine(t, 2)
		offer := e.state.PendingTickets[0]

		err := e.SelectInitialTickets(0, []int{offer[0].ID})
		require.Error(t, err)
		require.Len(t, e.state.PendingTickets[0], 3, "the offer stays pending")
	})

	t.Run("a ticket outside the offer is rejected", func(t *testing.T) {
		e := newTestEngine(t, 2)
		err := e.SelectInitialTickets(0, []int{-1, -2})
		require.Error(t, err)
	})

	t.Run("play begins once every seat has resolved", func(t *testing.T) {
		e := newTestEngine(t, 3)
		for i, p := range e.state.Players {
			require.Equal(t, game.InitialTicketSelection, e.Phase(), "before seat %d", i)
			offer := e.state.PendingTickets[p.ID]
			keep := []int{offer[0].ID, offer[1].ID, offer[2].ID}
			require.NoError(t, e.SelectInitialTickets(p.ID, keep))
		}
		require.Equal(t, game.Playing, e.Phase())
		require.Equal(t, 0, e.CurrentPlayerID(), "the first seat opens play")
		require.Len(t, e.state.Players[1].Tickets, 3)
	})

	t.Run("selection is refused after play begins", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		err := e.SelectInitialTickets(0, []int{1, 2})
		require.ErrorIs(t, err, ErrWrongPhase)
	})
}

func TestDrawFromDeck(t *testing.T) {
	t.Run("two hidden draws end the turn", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		setDeck(e, []game.Color{game.Red, game.Blue, game.Green}, make([]game.Color, game.FaceUpSlots), nil)
		before := e.state.Players[0].TotalCards()

		_, err := e.DrawFromDeck(0)
		require.NoError(t, err)
		require.Equal(t, 0, e.CurrentPlayerID(), "one draw leaves the turn open")
		require.Equal(t, 1, e.state.CardsDrawn)

		_, err = e.DrawFromDeck(0)
		require.NoError(t, err)
		require.Equal(t, before+2, e.state.Players[0].TotalCards())
		require.Equal(t, 1, e.CurrentPlayerID(), "the second draw passes the turn")
		require.Equal(t, 0, e.state.CardsDrawn, "the counter resets for the next turn")
	})

	t.Run("out of turn is rejected", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		_, err := e.DrawFromDeck(1)
		require.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("exhausted piles surface the deck error", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		setDeck(e, nil, make([]game.Color, game.FaceUpSlots), nil)

		_, err := e.DrawFromDeck(0)
		require.ErrorIs(t, err, game.ErrDeckExhausted)
		require.NoError(t, e.EndTurn(0), "the cut-short turn is acknowledged")
		require.Equal(t, 1, e.CurrentPlayerID())
	})
}

func TestDrawFaceUp(t *testing.T) {
	t.Run("a locomotive consumes both draws", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		setDeck(e, []game.Color{game.Red, game.Blue},
			[]game.Color{game.Locomotive, game.Green, game.Green, game.Green, game.Green}, nil)

		card, err := e.DrawFaceUp(0, 0)
		require.NoError(t, err)
		require.Equal(t, game.Locomotive, card)
		require.Equal(t, 1, e.CurrentPlayerID(), "the turn is over immediately")
	})

	t.Run("a locomotive is illegal as the second draw", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		setDeck(e, []game.Color{game.Red, game.Blue},
			[]game.Color{game.Green, game.Locomotive, game.Green, game.Green, game.Green}, nil)

		_, err := e.DrawFaceUp(0, 0)
		require.NoError(t, err)
		_, err = e.DrawFaceUp(0, 1)
		require.ErrorIs(t, err, game.ErrIllegalWildcardDraw)
		require.Equal(t, 0, e.CurrentPlayerID(), "the rejected draw leaves the turn open")

		_, err = e.DrawFaceUp(0, 2)
		require.NoError(t, err, "a colored card is fine as the second draw")
		require.Equal(t, 1, e.CurrentPlayerID())
	})

	t.Run("the slot refills from the draw pile", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		setDeck(e, []game.Color{game.Red, game.Blue},
			[]game.Color{game.Green, game.White, game.White, game.White, game.White}, nil)

		card, err := e.DrawFaceUp(0, 0)
		require.NoError(t, err)
		require.Equal(t, game.Green, card)
		require.Equal(t, game.Red, e.state.Deck.FaceUp()[0])
	})
}

func TestClaimRoute(t *testing.T) {
	// Route 1 is Vancouver-Seattle, gray, length 1, twinned with route 2.
	combo := game.CardCombination{Color: game.Red, ColorCount: 1}

	claimReady := func(t *testing.T, n int, opts ...Option) *Engine {
		e := newTestEngine(t, n, opts...)
		startPlaying(t, e)
		e.state.Players[0].Hand = map[game.Color]int{game.Red: 5}
		return e
	}

	t.Run("claims spend cards into the discard pile and pass the turn", func(t *testing.T) {
		e := claimReady(t, 2)
		discardBefore := e.state.Deck.DiscardCount()

		require.NoError(t, e.ClaimRoute(0, 1, combo))

		p := e.state.Players[0]
		require.Equal(t, 4, p.Hand[game.Red])
		require.Equal(t, game.StartingTrains-1, p.TrainsRemaining)
		require.Equal(t, 1, p.RoutePoints)
		require.Equal(t, discardBefore+1, e.state.Deck.DiscardCount())
		owner, claimed := e.state.RouteClaimed(1)
		require.True(t, claimed)
		require.Equal(t, 0, owner)
		require.Equal(t, 1, e.CurrentPlayerID())
	})

	t.Run("a claimed route stays claimed", func(t *testing.T) {
		e := claimReady(t, 2)
		e.state.Players[1].Hand = map[game.Color]int{game.Red: 5}

		require.NoError(t, e.ClaimRoute(0, 1, combo))
		err := e.ClaimRoute(1, 1, combo)
		require.ErrorIs(t, err, game.ErrRouteAlreadyClaimed)
	})

	t.Run("the twin of an owned route is barred in bigger games", func(t *testing.T) {
		e := claimReady(t, 3)
		e.state.ClaimedBy[2] = 0

		err := e.ClaimRoute(0, 1, combo)
		require.ErrorIs(t, err, game.ErrParallelOwned)
		require.Equal(t, 5, e.state.Players[0].Hand[game.Red], "rejection is side-effect-free")
		require.Equal(t, 0, e.CurrentPlayerID())
	})

	t.Run("the rule switch opens the twin", func(t *testing.T) {
		e := claimReady(t, 3, WithRules(game.Rules{AllowOwnParallel: true}))
		e.state.ClaimedBy[2] = 0

		require.NoError(t, e.ClaimRoute(0, 1, combo))
	})

	t.Run("an opponent's twin still bars nobody else's claim", func(t *testing.T) {
		e := claimReady(t, 3)
		e.state.ClaimedBy[2] = 1

		require.NoError(t, e.ClaimRoute(0, 1, combo), "only the claimant's own twin is barred")
	})

	t.Run("an unaffordable route is rejected cleanly", func(t *testing.T) {
		e := claimReady(t, 2)
		e.state.Players[0].Hand = map[game.Color]int{}

		err := e.ClaimRoute(0, 1, combo)
		require.ErrorIs(t, err, game.ErrInsufficientResources)
		require.Equal(t, 0, e.CurrentPlayerID())
		_, claimed := e.state.RouteClaimed(1)
		require.False(t, claimed)
	})

	t.Run("unknown routes are rejected", func(t *testing.T) {
		e := claimReady(t, 2)
		err := e.ClaimRoute(0, 9999, combo)
		require.ErrorIs(t, err, ErrUnknownRoute)
	})

	t.Run("claiming after a draw is rejected", func(t *testing.T) {
		e := claimReady(t, 2)
		_, err := e.DrawFromDeck(0)
		require.NoError(t, err)

		err = e.ClaimRoute(0, 1, combo)
		require.ErrorIs(t, err, ErrActionInProgress)
	})
}

func TestFinalRound(t *testing.T) {
	t.Run("every seat gets one more turn after the trigger", func(t *testing.T) {
		e := newTestEngine(t, 3)
		startPlaying(t, e)
		// Claiming the length-3 Vancouver-Calgary route drops the
		// claimant to two trains, firing the trigger.
		p := e.state.Players[0]
		p.Hand = map[game.Color]int{game.Blue: 5}
		p.TrainsRemaining = 5

		require.NoError(t, e.ClaimRoute(0, 16, game.CardCombination{Color: game.Blue, ColorCount: 3}))

		require.Equal(t, game.FinalRound, e.Phase())
		require.Equal(t, 0, e.state.FinalRoundBy)
		require.Equal(t, 3, e.state.TurnsRemaining, "the trigger turn itself consumes nothing")
		require.Equal(t, 1, e.CurrentPlayerID())

		require.NoError(t, e.EndTurn(1))
		require.Equal(t, 2, e.state.TurnsRemaining)
		require.NoError(t, e.EndTurn(2))
		require.NoError(t, e.EndTurn(0), "the trigger-er's one extra turn")

		require.Equal(t, game.Ended, e.Phase())
		require.Len(t, e.Scores(), 3)
	})

	t.Run("actions are refused after the game ends", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		e.finish()

		_, err := e.DrawFromDeck(0)
		require.ErrorIs(t, err, ErrWrongPhase)
		err = e.ClaimRoute(0, 1, game.CardCombination{Color: game.Red, ColorCount: 1})
		require.ErrorIs(t, err, ErrWrongPhase)
	})

	t.Run("the trigger only fires once", func(t *testing.T) {
		e := newTestEngine(t, 3)
		startPlaying(t, e)
		e.state.Phase = game.FinalRound
		e.state.FinalRoundBy = 1
		e.state.TurnsRemaining = 3

		p := e.state.Players[0]
		p.Hand = map[game.Color]int{game.Blue: 5}
		p.TrainsRemaining = 4

		require.NoError(t, e.ClaimRoute(0, 16, game.CardCombination{Color: game.Blue, ColorCount: 3}))
		require.Equal(t, 1, e.state.FinalRoundBy, "the original trigger stands")
		require.Equal(t, 2, e.state.TurnsRemaining, "the claim consumed a countdown turn")
	})
}

func TestTicketTurn(t *testing.T) {
	t.Run("an offer must be resolved before the turn ends", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)

		offer, err := e.DrawTickets(0)
		require.NoError(t, err)
		require.Len(t, offer, 3)

		err = e.EndTurn(0)
		require.ErrorIs(t, err, ErrActionInProgress)
		_, err = e.DrawFromDeck(0)
		require.ErrorIs(t, err, ErrActionInProgress)

		require.NoError(t, e.ResolveTickets(0, []int{offer[0].ID}))
		require.Equal(t, 1, e.CurrentPlayerID())
		require.Len(t, e.state.Players[0].Tickets, 2+1, "two setup keeps plus one")
	})

	t.Run("keeping nothing is rejected", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)

		offer, err := e.DrawTickets(0)
		require.NoError(t, err)
		err = e.ResolveTickets(0, nil)
		require.Error(t, err)
		require.Len(t, e.state.PendingTickets[0], len(offer), "the offer stays pending")
	})

	t.Run("unkept tickets return to the bottom of the pile", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		pileBefore := e.state.Deck.TicketCount()

		offer, err := e.DrawTickets(0)
		require.NoError(t, err)
		require.NoError(t, e.ResolveTickets(0, []int{offer[0].ID}))

		require.Equal(t, pileBefore-1, e.state.Deck.TicketCount(), "two of three went back")
	})

	t.Run("an empty pile refuses the draw", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		e.state.Deck.DrawDestinationTickets(e.state.Deck.TicketCount())

		_, err := e.DrawTickets(0)
		require.ErrorIs(t, err, game.ErrNoTicketsAvailable)
	})

	t.Run("a short pile still offers what it has", func(t *testing.T) {
		e := newTestEngine(t, 2)
		startPlaying(t, e)
		pile := e.state.Deck.TicketCount()
		e.state.Deck.DrawDestinationTickets(pile - 1)

		offer, err := e.DrawTickets(0)
		require.NoError(t, err)
		require.Len(t, offer, 1)
		require.NoError(t, e.ResolveTickets(0, []int{offer[0].ID}))
	})
}
