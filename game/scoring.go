package game

import "sort"

// LongestRouteBonus is awarded to every player tied for the single highest
// longest continuous path strictly greater than zero.
const LongestRouteBonus = 10

// ScoreRow is one player's final scoring breakdown.
type ScoreRow struct {
	PlayerID         int
	Name             string
	RoutePoints      int
	TicketPoints     int
	CompletedTickets int
	FailedTickets    int
	LongestRoute     int
	LongestBonus     int
	Total            int
}

type claimedEdge struct {
	routeID int
	to      string
	length  int
}

// LongestRoute computes the player's longest continuous path: the maximum
// summed length over trails in the claimed-route multigraph where no route
// is traversed twice, even between the same city pair. Exhaustive DFS is
// fine here: a player's routes are bounded by the 45-train supply and this
// runs once, at game end.
func LongestRoute(p *Player) int {
	graph := make(map[string][]claimedEdge)
	for _, cr := range p.Claimed {
		r := cr.Route
		graph[r.CityA] = append(graph[r.CityA], claimedEdge{r.ID, r.CityB, r.Length})
		graph[r.CityB] = append(graph[r.CityB], claimedEdge{r.ID, r.CityA, r.Length})
	}

	best := 0
	used := make(map[int]bool)
	var dfs func(city string, length int)
	dfs = func(city string, length int) {
		if length > best {
			best = length
		}
		for _, e := range graph[city] {
			if used[e.routeID] {
				continue
			}
			used[e.routeID] = true
			dfs(e.to, length+e.length)
			used[e.routeID] = false
		}
	}
	for city := range graph {
		dfs(city, 0)
	}
	return best
}

// FinalScores aggregates route points, signed ticket points and the
// longest-route bonus, ranked descending by total with ties broken by
// completed tickets then longest route. Remaining ties keep seating order.
func FinalScores(players []*Player) []ScoreRow {
	longest := make(map[int]int, len(players))
	maxLongest := 0
	for _, p := range players {
		l := LongestRoute(p)
		longest[p.ID] = l
		if l > maxLongest {
			maxLongest = l
		}
	}

	rows := make([]ScoreRow, 0, len(players))
	for _, p := range players {
		row := ScoreRow{
			PlayerID:     p.ID,
			Name:         p.Name,
			RoutePoints:  p.RoutePoints,
			LongestRoute: longest[p.ID],
		}
		for _, t := range p.Tickets {
			completed, points := p.TicketStatus(t)
			row.TicketPoints += points
			if completed {
				row.CompletedTickets++
			} else {
				row.FailedTickets++
			}
		}
		if row.LongestRoute == maxLongest && maxLongest > 0 {
			row.LongestBonus = LongestRouteBonus
		}
		row.Total = row.RoutePoints + row.TicketPoints + row.LongestBonus
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		if rows[i].CompletedTickets != rows[j].CompletedTickets {
			return rows[i].CompletedTickets > rows[j].CompletedTickets
		}
		return rows[i].LongestRoute > rows[j].LongestRoute
	})
	return rows
}
