package fortytwo

// Position represents a seat at the table.
// Play and bidding proceed clockwise in this order
type Position int

var positionNames = []string{"North", "East", "South", "West"}

const (
	North Position = iota
	East
	South
	West
)

// NumSeats is the number of seats at a table
const NumSeats = 4

func (p Position) String() string {
	return positionNames[p]
}

// Next returns the seat to the left
func (p Position) Next() Position {
	return (p + 1) % NumSeats
}

// Partner returns the seat across the table
func (p Position) Partner() Position {
	return (p + 2) % NumSeats
}

// Partnership returns the fixed pair a seat belongs to
func (p Position) Partnership() Partnership {
	if p == North || p == South {
		return NorthSouth
	}
	return EastWest
}

// Partnership represents one of the two fixed pairs
type Partnership int

const (
	NorthSouth Partnership = iota
	EastWest
)

var partnershipNames = []string{"North-South", "East-West"}

func (ps Partnership) String() string {
	return partnershipNames[ps]
}

// Opponents returns the other pair
func (ps Partnership) Opponents() Partnership {
	return 1 - ps
}
