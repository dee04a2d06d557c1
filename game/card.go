package game

// Color is a train-car card color. A card is just its color value; two
// cards of the same color are interchangeable.
type Color int

const (
	Red Color = iota
	Orange
	Yellow
	Green
	Blue
	Purple
	Black
	White
	Locomotive
	// Gray marks any-color routes. It never appears on a card.
	Gray
)

// NoCard marks an empty face-up slot when both piles are exhausted.
const NoCard Color = -1

// Colors lists the eight card colors in canonical order. Everything that
// enumerates colors iterates this slice so results are deterministic.
var Colors = []Color{Red, Orange, Yellow, Green, Blue, Purple, Black, White}

var colorNames = map[Color]string{
	Red:        "red",
	Orange:     "orange",
	Yellow:     "yellow",
	Green:      "green",
	Blue:       "blue",
	Purple:     "purple",
	Black:      "black",
	White:      "white",
	Locomotive: "locomotive",
	Gray:       "gray",
	NoCard:     "none",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Deck composition: 12 cards of each color plus 14 locomotives (110 total).
const (
	cardsPerColor  = 12
	locomotiveQty  = 14
	FaceUpSlots    = 5
	StartingTrains = 45
	InitialCards   = 4
)

// DestinationTicket is a hidden goal naming two cities. It scores its
// points positively when the holder connects the cities, negatively
// otherwise. Tickets are never mutated, only moved between piles and hands.
type DestinationTicket struct {
	ID     int
	CityA  string
	CityB  string
	Points int
}

// destinationTickets is the full 30-ticket set for the USA board.
var destinationTickets = []DestinationTicket{
	{1, "Los Angeles", "New York", 21},
	{2, "Duluth", "Houston", 8},
	{3, "Sault Ste Marie", "Nashville", 8},
	{4, "New York", "Atlanta", 6},
	{5, "Portland", "Nashville", 17},
	{6, "Vancouver", "Montreal", 20},
	{7, "Duluth", "El Paso", 10},
	{8, "Toronto", "Miami", 10},
	{9, "Portland", "Phoenix", 11},
	{10, "Dallas", "New York", 11},
	{11, "Calgary", "Salt Lake City", 7},
	{12, "Calgary", "Phoenix", 13},
	{13, "Los Angeles", "Miami", 20},
	{14, "Winnipeg", "Little Rock", 11},
	{15, "San Francisco", "Atlanta", 17},
	{16, "Kansas City", "Houston", 5},
	{17, "Los Angeles", "Chicago", 16},
	{18, "Denver", "Pittsburgh", 11},
	{19, "Chicago", "Santa Fe", 9},
	{20, "Vancouver", "Santa Fe", 13},
	{21, "Boston", "Miami", 12},
	{22, "Chicago", "New Orleans", 7},
	{23, "Montreal", "Atlanta", 9},
	{24, "Seattle", "New York", 22},
	{25, "Denver", "El Paso", 4},
	{26, "Helena", "Los Angeles", 8},
	{27, "Winnipeg", "Houston", 12},
	{28, "Montreal", "New Orleans", 13},
	{29, "Sault Ste Marie", "Oklahoma City", 9},
	{30, "Seattle", "Los Angeles", 9},
}
