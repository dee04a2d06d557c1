package game

// Static data for the classic USA board: 36 cities and 98 routes.
// Coordinates are percentages of the render canvas.

var usaCities = []City{
	{"Vancouver", 10, 8},
	{"Seattle", 11, 15},
	{"Portland", 9, 22},
	{"San Francisco", 6, 42},
	{"Los Angeles", 11, 58},
	{"Las Vegas", 18, 52},
	{"Phoenix", 23, 65},
	{"Salt Lake City", 24, 35},
	{"Helena", 28, 18},
	{"Calgary", 22, 5},
	{"Winnipeg", 48, 8},
	{"Duluth", 55, 20},
	{"Sault Ste Marie", 68, 15},
	{"Montreal", 85, 12},
	{"Boston", 92, 22},
	{"Toronto", 78, 20},
	{"New York", 88, 30},
	{"Pittsburgh", 78, 32},
	{"Washington", 85, 38},
	{"Raleigh", 82, 48},
	{"Charleston", 82, 58},
	{"Atlanta", 75, 55},
	{"Miami", 85, 78},
	{"New Orleans", 65, 72},
	{"Nashville", 70, 48},
	{"Saint Louis", 60, 42},
	{"Chicago", 65, 30},
	{"Omaha", 50, 32},
	{"Kansas City", 52, 42},
	{"Denver", 35, 42},
	{"Santa Fe", 32, 55},
	{"El Paso", 30, 70},
	{"Houston", 52, 75},
	{"Dallas", 48, 65},
	{"Oklahoma City", 48, 55},
	{"Little Rock", 58, 58},
}

var usaRoutes = []Route{
	// West Coast
	{1, "Vancouver", "Seattle", 1, Gray, 0},
	{2, "Vancouver", "Seattle", 1, Gray, 1},
	{3, "Seattle", "Portland", 1, Gray, 0},
	{4, "Seattle", "Portland", 1, Gray, 3},
	{5, "Portland", "San Francisco", 5, Green, 0},
	{6, "Portland", "San Francisco", 5, Purple, 5},
	{7, "San Francisco", "Los Angeles", 3, Yellow, 0},
	{8, "San Francisco", "Los Angeles", 3, Purple, 7},
	{9, "Los Angeles", "Las Vegas", 2, Gray, 0},
	{10, "Los Angeles", "Phoenix", 3, Gray, 0},
	{11, "Los Angeles", "El Paso", 6, Black, 0},
	{12, "Las Vegas", "Salt Lake City", 3, Orange, 0},
	{13, "Phoenix", "El Paso", 3, Gray, 0},
	{14, "Phoenix", "Santa Fe", 3, Gray, 0},
	{15, "Phoenix", "Denver", 5, White, 0},

	// Northwest to Mountain
	{16, "Vancouver", "Calgary", 3, Gray, 0},
	{17, "Seattle", "Calgary", 4, Gray, 0},
	{18, "Seattle", "Helena", 6, Yellow, 0},
	{19, "Portland", "Salt Lake City", 6, Blue, 0},
	{20, "Calgary", "Helena", 4, Gray, 0},
	{21, "Calgary", "Winnipeg", 6, White, 0},
	{22, "Helena", "Winnipeg", 4, Blue, 0},
	{23, "Helena", "Duluth", 6, Orange, 0},
	{24, "Helena", "Omaha", 5, Red, 0},
	{25, "Helena", "Denver", 4, Green, 0},
	{26, "Helena", "Salt Lake City", 3, Purple, 0},

	// Mountain Region
	{27, "Salt Lake City", "Denver", 3, Red, 0},
	{28, "Salt Lake City", "Denver", 3, Yellow, 27},
	{29, "Denver", "Omaha", 4, Purple, 0},
	{30, "Denver", "Kansas City", 4, Black, 0},
	{31, "Denver", "Kansas City", 4, Orange, 30},
	{32, "Denver", "Oklahoma City", 4, Red, 0},
	{33, "Denver", "Santa Fe", 2, Gray, 0},
	{34, "Santa Fe", "El Paso", 2, Gray, 0},
	{35, "Santa Fe", "Oklahoma City", 3, Blue, 0},

	// Southwest
	{36, "El Paso", "Dallas", 4, Red, 0},
	{37, "El Paso", "Houston", 6, Green, 0},
	{38, "Houston", "Dallas", 1, Gray, 0},
	{39, "Houston", "Dallas", 1, Gray, 38},
	{40, "Houston", "New Orleans", 2, Gray, 0},
	{41, "Dallas", "Oklahoma City", 2, Gray, 0},
	{42, "Dallas", "Oklahoma City", 2, Gray, 41},
	{43, "Dallas", "Little Rock", 2, Gray, 0},
	{44, "Oklahoma City", "Kansas City", 2, Gray, 0},
	{45, "Oklahoma City", "Kansas City", 2, Gray, 44},
	{46, "Oklahoma City", "Little Rock", 2, Gray, 0},

	// Central
	{47, "Winnipeg", "Duluth", 4, Black, 0},
	{48, "Winnipeg", "Sault Ste Marie", 6, Gray, 0},
	{49, "Duluth", "Sault Ste Marie", 3, Gray, 0},
	{50, "Duluth", "Toronto", 6, Purple, 0},
	{51, "Duluth", "Chicago", 3, Red, 0},
	{52, "Duluth", "Omaha", 2, Gray, 0},
	{53, "Duluth", "Omaha", 2, Gray, 52},
	{54, "Omaha", "Chicago", 4, Blue, 0},
	{55, "Omaha", "Kansas City", 1, Gray, 0},
	{56, "Omaha", "Kansas City", 1, Gray, 55},
	{57, "Kansas City", "Saint Louis", 2, Blue, 0},
	{58, "Kansas City", "Saint Louis", 2, Purple, 57},
	{59, "Saint Louis", "Chicago", 2, Green, 0},
	{60, "Saint Louis", "Chicago", 2, White, 59},
	{61, "Saint Louis", "Pittsburgh", 5, Green, 0},
	{62, "Saint Louis", "Nashville", 2, Gray, 0},
	{63, "Saint Louis", "Little Rock", 2, Gray, 0},
	{64, "Little Rock", "Nashville", 3, White, 0},
	{65, "Little Rock", "New Orleans", 3, Green, 0},

	// Northeast
	{66, "Sault Ste Marie", "Toronto", 2, Gray, 0},
	{67, "Sault Ste Marie", "Montreal", 5, Black, 0},
	{68, "Toronto", "Montreal", 3, Gray, 0},
	{69, "Toronto", "Pittsburgh", 2, Gray, 0},
	{70, "Toronto", "Chicago", 4, White, 0},
	{71, "Montreal", "Boston", 2, Gray, 0},
	{72, "Montreal", "Boston", 2, Gray, 71},
	{73, "Montreal", "New York", 3, Blue, 0},
	{74, "Boston", "New York", 2, Yellow, 0},
	{75, "Boston", "New York", 2, Red, 74},
	{76, "New York", "Pittsburgh", 2, White, 0},
	{77, "New York", "Pittsburgh", 2, Green, 76},
	{78, "New York", "Washington", 2, Orange, 0},
	{79, "New York", "Washington", 2, Black, 78},
	{80, "Pittsburgh", "Washington", 2, Gray, 0},
	{81, "Pittsburgh", "Raleigh", 2, Gray, 0},
	{82, "Pittsburgh", "Nashville", 4, Yellow, 0},
	{83, "Pittsburgh", "Chicago", 3, Orange, 0},
	{84, "Pittsburgh", "Chicago", 3, Black, 83},

	// Southeast
	{85, "Washington", "Raleigh", 2, Gray, 0},
	{86, "Washington", "Raleigh", 2, Gray, 85},
	{87, "Raleigh", "Charleston", 2, Gray, 0},
	{88, "Raleigh", "Atlanta", 2, Gray, 0},
	{89, "Raleigh", "Atlanta", 2, Gray, 88},
	{90, "Raleigh", "Nashville", 3, Black, 0},
	{91, "Charleston", "Atlanta", 2, Gray, 0},
	{92, "Charleston", "Miami", 4, Purple, 0},
	{93, "Atlanta", "Miami", 5, Blue, 0},
	{94, "Atlanta", "Nashville", 1, Gray, 0},
	{95, "Atlanta", "New Orleans", 4, Yellow, 0},
	{96, "Atlanta", "New Orleans", 4, Orange, 95},
	{97, "Nashville", "Chicago", 4, Gray, 0},
	{98, "New Orleans", "Miami", 6, Red, 0},
}

// NewUSABoard builds the classic USA board.
func NewUSABoard() *Board {
	return NewBoard(usaCities, usaRoutes)
}
