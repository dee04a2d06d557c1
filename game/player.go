package game

import "fmt"

// CardCombination is one way to pay for a route: ColorCount cards of Color
// plus Locomotives wildcards, summing to the route length.
type CardCombination struct {
	Color       Color
	ColorCount  int
	Locomotives int
}

// ClaimedRoute records a route's single, permanent owner together with the
// exact cards spent. A route is never reclaimed or released.
type ClaimedRoute struct {
	Route Route
	Spent []Color
}

// Player is the per-player resource ledger: hand, tickets, remaining
// train cars, accumulated route points and claimed routes. Only the turn
// engine mutates it.
type Player struct {
	ID        int
	Name      string
	Color     string
	Automated bool

	Hand            map[Color]int
	Tickets         []DestinationTicket
	TrainsRemaining int
	RoutePoints     int
	Claimed         []ClaimedRoute
}

// NewPlayer creates a player with an empty hand and the full train supply.
func NewPlayer(id int, name, color string, automated bool) *Player {
	return &Player{
		ID:              id,
		Name:            name,
		Color:           color,
		Automated:       automated,
		Hand:            make(map[Color]int),
		TrainsRemaining: StartingTrains,
	}
}

// AddCards adds drawn cards to the hand.
func (p *Player) AddCards(cards ...Color) {
	for _, c := range cards {
		p.Hand[c]++
	}
}

// AddTickets adds kept destination tickets.
func (p *Player) AddTickets(tickets ...DestinationTicket) {
	p.Tickets = append(p.Tickets, tickets...)
}

// CardCounts returns a copy of the hand as a color→count mapping,
// locomotives included.
func (p *Player) CardCounts() map[Color]int {
	out := make(map[Color]int, len(p.Hand))
	for c, n := range p.Hand {
		if n > 0 {
			out[c] = n
		}
	}
	return out
}

// TotalCards returns the hand size.
func (p *Player) TotalCards() int {
	total := 0
	for _, n := range p.Hand {
		total += n
	}
	return total
}

// LegalCombinations enumerates every way the hand can pay for the route.
// For a colored route the locomotive count runs from 0 upward; for a gray
// route the enumeration is repeated across the canonical color order. The
// order is deterministic: colors canonical, locomotives ascending.
func (p *Player) LegalCombinations(r Route) []CardCombination {
	locos := p.Hand[Locomotive]
	candidates := []Color{r.Color}
	if r.Color == Gray {
		candidates = Colors
	}

	var out []CardCombination
	for _, color := range candidates {
		have := p.Hand[color]
		if have+locos < r.Length {
			continue
		}
		maxLocos := locos
		if maxLocos > r.Length {
			maxLocos = r.Length
		}
		for used := 0; used <= maxLocos; used++ {
			need := r.Length - used
			if have >= need {
				out = append(out, CardCombination{Color: color, ColorCount: need, Locomotives: used})
			}
		}
	}
	return out
}

// CanAfford reports whether the player has both a paying combination and
// enough trains for the route.
func (p *Player) CanAfford(r Route) bool {
	return p.TrainsRemaining >= r.Length && len(p.LegalCombinations(r)) > 0
}

// ApplyClaim spends the combination from the hand, decrements the train
// supply, accrues route points and records the claim. It returns the spent
// cards (for discarding). A hand that cannot cover the combination is a
// caller bug, reported as ErrInsufficientCards without mutation. This is
// the only route-claiming entry point; global claim uniqueness is the
// caller's check.
func (p *Player) ApplyClaim(r Route, combo CardCombination) ([]Color, error) {
	if combo.ColorCount+combo.Locomotives != r.Length {
		return nil, fmt.Errorf("%w: %d+%d cards for length %d",
			ErrInvalidCombination, combo.ColorCount, combo.Locomotives, r.Length)
	}
	if p.Hand[combo.Color] < combo.ColorCount || p.Hand[Locomotive] < combo.Locomotives {
		return nil, fmt.Errorf("%w: %d %s + %d locomotives",
			ErrInsufficientCards, combo.ColorCount, combo.Color, combo.Locomotives)
	}
	if p.TrainsRemaining < r.Length {
		return nil, fmt.Errorf("%w: %d trains for length %d",
			ErrInsufficientResources, p.TrainsRemaining, r.Length)
	}

	spent := make([]Color, 0, r.Length)
	p.Hand[combo.Color] -= combo.ColorCount
	for i := 0; i < combo.ColorCount; i++ {
		spent = append(spent, combo.Color)
	}
	p.Hand[Locomotive] -= combo.Locomotives
	for i := 0; i < combo.Locomotives; i++ {
		spent = append(spent, Locomotive)
	}

	p.TrainsRemaining -= r.Length
	p.RoutePoints += PointsForLength(r.Length)
	p.Claimed = append(p.Claimed, ClaimedRoute{Route: r, Spent: spent})
	return spent, nil
}

// OwnsRoute reports whether the player has claimed the given route.
func (p *Player) OwnsRoute(id int) bool {
	for _, cr := range p.Claimed {
		if cr.Route.ID == id {
			return true
		}
	}
	return false
}

// IsConnected reports whether two cities are joined through this player's
// claimed routes only. Equal cities are trivially connected.
func (p *Player) IsConnected(cityA, cityB string) bool {
	if cityA == cityB {
		return true
	}
	visited := map[string]bool{cityA: true}
	queue := []string{cityA}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, cr := range p.Claimed {
			if !cr.Route.Touches(current) {
				continue
			}
			next := cr.Route.Other(current)
			if next == cityB {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// TicketStatus reports whether a ticket's cities are connected and the
// signed points it contributes at scoring time.
func (p *Player) TicketStatus(t DestinationTicket) (completed bool, points int) {
	if p.IsConnected(t.CityA, t.CityB) {
		return true, t.Points
	}
	return false, -t.Points
}

// ClaimedCities returns the distinct cities touched by the player's
// claimed routes.
func (p *Player) ClaimedCities() []string {
	seen := make(map[string]struct{})
	for _, cr := range p.Claimed {
		seen[cr.Route.CityA] = struct{}{}
		seen[cr.Route.CityB] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	return out
}

// Copy deep-copies the ledger for read-only snapshots.
func (p *Player) Copy() *Player {
	cp := *p
	cp.Hand = make(map[Color]int, len(p.Hand))
	for c, n := range p.Hand {
		cp.Hand[c] = n
	}
	cp.Tickets = append([]DestinationTicket(nil), p.Tickets...)
	cp.Claimed = make([]ClaimedRoute, len(p.Claimed))
	for i, cr := range p.Claimed {
		cp.Claimed[i] = ClaimedRoute{Route: cr.Route, Spent: append([]Color(nil), cr.Spent...)}
	}
	return &cp
}
