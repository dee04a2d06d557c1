package game

import "sort"

// City is a node on the board. The coordinates are render hints for a UI
// layer and play no part in the rules.
type City struct {
	Name string
	X, Y float64
}

// Route is a direct connection between two cities. Parallel holds the ID
// of the twin route sharing the same city pair, or 0 when there is none.
// Routes are immutable after the board is built.
type Route struct {
	ID       int
	CityA    string
	CityB    string
	Length   int
	Color    Color
	Parallel int
}

// Touches reports whether the route has city as an endpoint.
func (r Route) Touches(city string) bool {
	return r.CityA == city || r.CityB == city
}

// Other returns the endpoint opposite to city. It assumes Touches(city).
func (r Route) Other(city string) string {
	if r.CityA == city {
		return r.CityB
	}
	return r.CityA
}

// Board is the static route network shared read-only by every component.
type Board struct {
	cities  map[string]City
	routes  map[int]Route
	byCity  map[string][]int // route IDs touching each city, sorted
	ordered []int            // all route IDs, sorted
}

// NewBoard builds a board from city and route definitions. Parallel
// references are made symmetric so either member of a pair finds the other.
func NewBoard(cities []City, routes []Route) *Board {
	b := &Board{
		cities: make(map[string]City, len(cities)),
		routes: make(map[int]Route, len(routes)),
		byCity: make(map[string][]int),
	}
	for _, c := range cities {
		b.cities[c.Name] = c
	}
	for _, r := range routes {
		b.routes[r.ID] = r
	}
	for id, r := range b.routes {
		if r.Parallel != 0 {
			twin := b.routes[r.Parallel]
			if twin.Parallel == 0 {
				twin.Parallel = id
				b.routes[twin.ID] = twin
			}
		}
	}
	for id, r := range b.routes {
		b.byCity[r.CityA] = append(b.byCity[r.CityA], id)
		b.byCity[r.CityB] = append(b.byCity[r.CityB], id)
		b.ordered = append(b.ordered, id)
	}
	for _, ids := range b.byCity {
		sort.Ints(ids)
	}
	sort.Ints(b.ordered)
	return b
}

// Route looks up a route by ID.
func (b *Board) Route(id int) (Route, bool) {
	r, ok := b.routes[id]
	return r, ok
}

// Routes returns every route in ID order.
func (b *Board) Routes() []Route {
	out := make([]Route, 0, len(b.ordered))
	for _, id := range b.ordered {
		out = append(out, b.routes[id])
	}
	return out
}

// City looks up a city by name.
func (b *Board) City(name string) (City, bool) {
	c, ok := b.cities[name]
	return c, ok
}

// Cities returns every city name in lexical order.
func (b *Board) Cities() []string {
	out := make([]string, 0, len(b.cities))
	for name := range b.cities {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// RoutesBetween returns all routes joining the given city pair, in either
// orientation. Unknown cities yield an empty result.
func (b *Board) RoutesBetween(cityA, cityB string) []Route {
	var out []Route
	for _, id := range b.byCity[cityA] {
		r := b.routes[id]
		if r.Touches(cityB) {
			out = append(out, r)
		}
	}
	return out
}

// RoutesFrom returns all routes touching the given city.
func (b *Board) RoutesFrom(city string) []Route {
	ids := b.byCity[city]
	out := make([]Route, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.routes[id])
	}
	return out
}

// ConnectedCities returns the distinct cities one route away from city,
// in lexical order.
func (b *Board) ConnectedCities(city string) []string {
	seen := make(map[string]struct{})
	for _, id := range b.byCity[city] {
		seen[b.routes[id].Other(city)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// routeScoring maps route length to the points scored for claiming it.
var routeScoring = map[int]int{1: 1, 2: 2, 3: 4, 4: 7, 5: 10, 6: 15}

// PointsForLength returns the points awarded for claiming a route of the
// given length, or 0 for lengths outside the 1–6 table.
func PointsForLength(length int) int {
	return routeScoring[length]
}
