// Package planner implements the automated opponent. It consumes read-only
// snapshots of the game state and proposes intents for the turn engine to
// validate and apply; it never mutates state itself.
package planner

import (
	"math"
	"sort"

	"rails/engine"
	"rails/game"
)

// Planner decides for one automated seat. It is stateless between turns:
// every decision re-derives its strategy from the snapshot it is given.
type Planner struct {
	playerID int
}

// New returns a planner for the given seat.
func New(playerID int) *Planner {
	return &Planner{playerID: playerID}
}

// strategy is one snapshot's analysis: the routes still needed for
// uncompleted tickets, the card colors worth collecting for them, and the
// needed routes that have become structural bottlenecks.
type strategy struct {
	planned      []game.Route
	targetColors map[game.Color]int
	urgent       []game.Route
}

// Decide proposes the turn's opening action, first applicable wins:
// urgent claim, planned claim, draw when the hand is thin or nothing
// planned is payable, opportunistic claim, fresh tickets, draw.
func (p *Planner) Decide(s *game.GameState) engine.Action {
	me := s.Player(p.playerID)
	st := p.analyze(s)

	for _, route := range st.urgent {
		if _, claimed := s.RouteClaimed(route.ID); claimed {
			continue
		}
		if me.CanAfford(route) {
			return claimAction(me, route)
		}
	}

	for _, route := range st.planned {
		if _, claimed := s.RouteClaimed(route.ID); claimed {
			continue
		}
		if me.CanAfford(route) {
			return claimAction(me, route)
		}
	}

	if p.shouldDraw(s, me, st) {
		return p.DecideDraw(s, false)
	}

	if act, ok := p.opportunisticClaim(s, me); ok {
		return act
	}

	if p.shouldDrawTickets(s, me) {
		return engine.Action{Type: engine.ActTickets}
	}

	return p.DecideDraw(s, false)
}

// shouldDraw reports whether collecting cards beats claiming: always with
// fewer than four cards in hand, otherwise whenever no planned route can
// currently be paid for.
func (p *Planner) shouldDraw(s *game.GameState, me *game.Player, st strategy) bool {
	if me.TotalCards() < 4 {
		return true
	}
	for _, route := range st.planned {
		if _, claimed := s.RouteClaimed(route.ID); claimed {
			continue
		}
		if len(me.LegalCombinations(route)) > 0 {
			return false
		}
	}
	return true
}

// opportunisticClaim looks for an affordable route of length three or more
// touching the player's network, or any affordable route while the player
// owns nothing yet.
func (p *Planner) opportunisticClaim(s *game.GameState, me *game.Player) (engine.Action, bool) {
	network := make(map[string]bool)
	for _, city := range me.ClaimedCities() {
		network[city] = true
	}
	for _, route := range s.Board.Routes() {
		if _, claimed := s.RouteClaimed(route.ID); claimed {
			continue
		}
		if len(me.Claimed) > 0 {
			if route.Length < 3 || (!network[route.CityA] && !network[route.CityB]) {
				continue
			}
		}
		if me.CanAfford(route) {
			return claimAction(me, route), true
		}
	}
	return engine.Action{}, false
}

// shouldDrawTickets fires when essentially every held ticket is complete
// and enough trains remain to chase new goals.
func (p *Planner) shouldDrawTickets(s *game.GameState, me *game.Player) bool {
	if me.TrainsRemaining <= 20 || s.Deck.TicketCount() == 0 {
		return false
	}
	completed := 0
	for _, t := range me.Tickets {
		if done, _ := me.TicketStatus(t); done {
			completed++
		}
	}
	return completed >= len(me.Tickets)-1
}

// DecideDraw scores the five face-up slots: a locomotive rates a fixed 3,
// a color the plan needs rates its accumulated target length, anything
// else a 0.5 baseline. The locomotive is taken only when it is the strict
// maximum, since it consumes the whole turn; it is never considered for
// the second draw.
func (p *Planner) DecideDraw(s *game.GameState, second bool) engine.Action {
	st := p.analyze(s)
	faceUp := s.Deck.FaceUp()

	bestSlot := -1
	bestCard := game.NoCard
	bestScore := -1.0
	for slot, card := range faceUp {
		if card == game.NoCard || (second && card == game.Locomotive) {
			continue
		}
		score := 0.5
		switch {
		case card == game.Locomotive:
			score = 3
		case st.targetColors[card] > 0:
			score = float64(st.targetColors[card])
		}
		if score > bestScore {
			bestScore = score
			bestSlot = slot
			bestCard = card
		}
	}

	if bestCard == game.Locomotive && bestScore >= 3 {
		return engine.Action{Type: engine.ActDrawFaceUp, Slot: bestSlot}
	}
	if bestCard != game.NoCard && bestCard != game.Locomotive && bestScore >= 1 {
		return engine.Action{Type: engine.ActDrawFaceUp, Slot: bestSlot}
	}
	return engine.Action{Type: engine.ActDrawDeck}
}

// ChooseTickets ranks an offer by feasibility and points-per-train ratio,
// keeping the required minimum plus any extra whose ratio clears 0.5.
func (p *Planner) ChooseTickets(s *game.GameState, offer []game.DestinationTicket, minKeep int) []int {
	me := s.Player(p.playerID)
	if minKeep > len(offer) {
		minKeep = len(offer)
	}

	type evaluated struct {
		ticket   game.DestinationTicket
		feasible bool
		ratio    float64
	}
	evals := make([]evaluated, 0, len(offer))
	for _, t := range offer {
		ev := evaluated{ticket: t}
		if path, ok := p.shortestPath(s, me, t.CityA, t.CityB); ok {
			ev.feasible = true
			effort := 0
			for _, r := range path {
				if !me.OwnsRoute(r.ID) {
					effort += r.Length
				}
			}
			if effort == 0 {
				ev.ratio = math.Inf(1)
			} else {
				ev.ratio = float64(t.Points) / float64(effort)
			}
		}
		evals = append(evals, ev)
	}
	sort.SliceStable(evals, func(i, j int) bool {
		if evals[i].feasible != evals[j].feasible {
			return evals[i].feasible
		}
		return evals[i].ratio > evals[j].ratio
	})

	var keep []int
	for i := 0; i < len(evals) && (i < minKeep || evals[i].ratio > 0.5); i++ {
		if evals[i].feasible || len(keep) < minKeep {
			keep = append(keep, evals[i].ticket.ID)
		}
	}
	for _, ev := range evals {
		if len(keep) >= minKeep {
			break
		}
		if !containsInt(keep, ev.ticket.ID) {
			keep = append(keep, ev.ticket.ID)
		}
	}
	return keep
}

// analyze plans a shortest path for every uncompleted ticket, accumulates
// the routes still needed into a deduplicated worklist, tallies the card
// colors those routes want, and flags bottlenecks: needed connections with
// exactly one unclaimed route left game-wide.
func (p *Planner) analyze(s *game.GameState) strategy {
	me := s.Player(p.playerID)
	st := strategy{targetColors: make(map[game.Color]int)}

	seen := make(map[int]bool)
	for _, t := range me.Tickets {
		if me.IsConnected(t.CityA, t.CityB) {
			continue
		}
		path, ok := p.shortestPath(s, me, t.CityA, t.CityB)
		if !ok {
			continue
		}
		for _, r := range path {
			if me.OwnsRoute(r.ID) || seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			st.planned = append(st.planned, r)
		}
	}

	counts := me.CardCounts()
	for _, route := range st.planned {
		color := route.Color
		if color == game.Gray {
			// Attribute gray routes to whichever color the hand holds
			// most of, canonical order breaking ties.
			best := game.Colors[0]
			bestCount := 0
			for _, c := range game.Colors {
				if counts[c] > bestCount {
					bestCount = counts[c]
					best = c
				}
			}
			color = best
		}
		st.targetColors[color] += route.Length
	}

	for _, route := range st.planned {
		available := 0
		for _, r := range s.Board.RoutesBetween(route.CityA, route.CityB) {
			if _, claimed := s.RouteClaimed(r.ID); !claimed {
				available++
			}
		}
		if available == 1 {
			st.urgent = append(st.urgent, route)
		}
	}
	return st
}

// shortestPath runs Dijkstra from cityA to cityB over the full route
// graph. Routes claimed by opponents are closed unless a parallel twin is
// still open to this player; routes this player owns cost nothing. The
// returned path may be empty when the cities are already joined through
// owned routes.
func (p *Planner) shortestPath(s *game.GameState, me *game.Player, cityA, cityB string) ([]game.Route, bool) {
	if _, ok := s.Board.City(cityA); !ok {
		return nil, false
	}
	if _, ok := s.Board.City(cityB); !ok {
		return nil, false
	}

	const inf = math.MaxInt
	cities := s.Board.Cities()
	dist := make(map[string]int)
	prevRoute := make(map[string]game.Route)
	prevCity := make(map[string]string)
	unvisited := make(map[string]bool)
	for _, city := range cities {
		dist[city] = inf
		unvisited[city] = true
	}
	dist[cityA] = 0

	for len(unvisited) > 0 {
		current := ""
		best := inf
		for _, city := range cities {
			if unvisited[city] && dist[city] < best {
				best = dist[city]
				current = city
			}
		}
		if current == "" || current == cityB {
			break
		}
		delete(unvisited, current)

		for _, route := range s.Board.RoutesFrom(current) {
			usable, ok := p.usableRoute(s, me, route)
			if !ok {
				continue
			}
			weight := usable.Length
			if me.OwnsRoute(usable.ID) {
				weight = 0
			}
			next := usable.Other(current)
			if d := dist[current] + weight; d < dist[next] {
				dist[next] = d
				prevCity[next] = current
				prevRoute[next] = usable
			}
		}
	}

	if dist[cityB] == inf {
		return nil, false
	}
	var path []game.Route
	for at := cityB; at != cityA; at = prevCity[at] {
		path = append([]game.Route{prevRoute[at]}, path...)
	}
	return path, true
}

// usableRoute resolves which route between a city pair the planner may still
// traverse. A route claimed by an opponent is swapped for its open parallel
// twin when one exists; with no twin the connection is shut.
func (p *Planner) usableRoute(s *game.GameState, me *game.Player, route game.Route) (game.Route, bool) {
	owner, claimed := s.RouteClaimed(route.ID)
	if !claimed || owner == me.ID {
		return route, true
	}
	if route.Parallel == 0 {
		return route, false
	}
	twinOwner, twinClaimed := s.RouteClaimed(route.Parallel)
	if twinClaimed && twinOwner != me.ID {
		return route, false
	}
	twin, ok := s.Board.Route(route.Parallel)
	if !ok {
		return route, false
	}
	return twin, true
}

// claimAction wraps a route with the hand's cheapest paying combination,
// conserving locomotives: they are the scarcer, more flexible resource.
func claimAction(me *game.Player, route game.Route) engine.Action {
	combos := me.LegalCombinations(route)
	best := combos[0]
	for _, c := range combos[1:] {
		if c.Locomotives < best.Locomotives {
			best = c
		}
	}
	return engine.Action{Type: engine.ActClaim, RouteID: route.ID, Combo: best}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
