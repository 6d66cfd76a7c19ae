package maze

import "fmt"

// Direction names one of the four neighbours of a cell. The numeric values
// double as slot indices, so the order East, South, West, North is fixed.
type Direction uint8

const (
	East Direction = iota
	South
	West
	North

	directionCount = 4
)

// Directions lists every direction in slot order.
var Directions = [directionCount]Direction{East, South, West, North}

var (
	deltas = [directionCount]Position{
		East:  {X: 1, Y: 0},
		South: {X: 0, Y: 1},
		West:  {X: -1, Y: 0},
		North: {X: 0, Y: -1},
	}

	opposites = [directionCount]Direction{
		East:  West,
		South: North,
		West:  East,
		North: South,
	}

	directionNames = [directionCount]string{
		East:  "East",
		South: "South",
		West:  "West",
		North: "North",
	}
)

// Delta returns the coordinate offset of the neighbour in direction d.
// y grows downward.
func (d Direction) Delta() Position {
	return deltas[d]
}

// Opposite returns the direction pointing back from the neighbour.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

func (d Direction) String() string {
	if int(d) >= directionCount {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Position is a cell coordinate. X is the column, Y the row.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	delta := d.Delta()
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}
