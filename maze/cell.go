package maze

// Slot is the state of one of a cell's four edge slots.
type Slot uint8

const (
	// Clear means no outward edge is drawn in that direction.
	Clear Slot = iota
	// Edge means the cell points at that neighbour.
	Edge
	// Boundary means there is no neighbour; the slot never changes.
	Boundary
)

func (s Slot) String() string {
	switch s {
	case Clear:
		return "clear"
	case Edge:
		return "edge"
	case Boundary:
		return "boundary"
	}
	return "unknown"
}

// Cell represents a single cell of the grid with its edge slots kept in
// East, South, West, North order.
type Cell struct {
	Pos   Position
	Slots [directionCount]Slot
}

// Outward reports, per direction, whether the cell has an outward edge.
func (c *Cell) Outward() [4]bool {
	var out [4]bool
	for i, s := range c.Slots {
		out[i] = s == Edge
	}
	return out
}

// EdgeCount returns the number of outward edges.
func (c *Cell) EdgeCount() int {
	n := 0
	for _, s := range c.Slots {
		if s == Edge {
			n++
		}
	}
	return n
}

// pointsTo returns the direction of the cell's outward edge and whether one
// exists. With more than one edge the first in slot order wins.
func (c *Cell) pointsTo() (Direction, bool) {
	for _, d := range Directions {
		if c.Slots[d] == Edge {
			return d, true
		}
	}
	return 0, false
}

// clearEdges drops every outward edge, leaving boundaries untouched.
func (c *Cell) clearEdges() {
	for i, s := range c.Slots {
		if s == Edge {
			c.Slots[i] = Clear
		}
	}
}
