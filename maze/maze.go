/*
Package maze generates perfect mazes with the origin-shift algorithm.

A maze is a rectangular grid in which every cell but one points at exactly one
neighbour. The cell that points nowhere is the root, and following the arrows
from any cell always ends there, so the arrows form a spanning tree. Moving the
root one step along a random edge keeps that property, and repeating the move
many times scrambles the initial tree into a random one.

The package also exposes a read-only view of the arrows, which is all a
renderer or exporter needs.
*/
package maze

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrInvalidSize = errors.New("invalid maze size")
	ErrOutOfBounds = errors.New("position out of maze bounds")
	ErrNotPerfect  = errors.New("maze is not a perfect spanning tree")
)

// OriginShift is a perfect maze whose root can be relocated one step at a
// time. It is not safe for concurrent use.
type OriginShift struct {
	width  int      // Number of columns
	height int      // Number of rows
	cells  []Cell   // Row-major cells
	root   Position // The only cell without an outward edge
}

// New builds a width x height maze holding the initial snake tree: every row
// runs east into the rightmost column, which runs south into the bottom-right
// cell, the root.
func New(width, height int) (*OriginShift, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}

	m := &OriginShift{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		root:   Position{X: width - 1, Y: height - 1},
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.cells[m.index(x, y)] = Cell{
				Pos:   Position{X: x, Y: y},
				Slots: [directionCount]Slot{East: Edge},
			}
		}
	}

	for y := 0; y < height; y++ {
		m.cell(width-1, y).Slots = [directionCount]Slot{Boundary, Edge, Clear, Clear}
		m.cell(0, y).Slots[West] = Boundary
	}
	for x := 0; x < width; x++ {
		m.cell(x, height-1).Slots[South] = Boundary
		m.cell(x, 0).Slots[North] = Boundary
	}

	return m, nil
}

// ValidateSize reports ErrInvalidSize unless the grid has positive
// dimensions and at least two cells.
func ValidateSize(width, height int) error {
	if width < 1 || height < 1 || width+height < 3 {
		return fmt.Errorf("%w: %dx%d, need width and height of at least 1 and at least two cells", ErrInvalidSize, width, height)
	}
	return nil
}

// Width returns the number of columns.
func (m *OriginShift) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *OriginShift) Height() int {
	return m.height
}

// Root returns the position of the cell with no outward edge.
func (m *OriginShift) Root() Position {
	return m.root
}

// InBound reports whether (x, y) lies inside the grid.
func (m *OriginShift) InBound(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// ShiftRoot moves the root one step in a direction drawn from src and returns
// the new root. The old root starts pointing at the new one and the new root
// loses its outward edge, so only those two cells change. That edge is
// usually the new root's dir.Opposite() slot, pointing back at the old root.
func (m *OriginShift) ShiftRoot(src Source) Position {
	root := m.cell(m.root.X, m.root.Y)

	dir := Direction(src.Intn(directionCount))
	for root.Slots[dir] == Boundary {
		dir = Direction(src.Intn(directionCount))
	}
	root.Slots[dir] = Edge

	next := m.root.Step(dir)
	m.cell(next.X, next.Y).clearEdges()
	m.root = next

	return next
}

// Shuffle applies ShiftRoot steps times.
func (m *OriginShift) Shuffle(steps int, src Source) {
	for i := 0; i < steps; i++ {
		m.ShiftRoot(src)
	}
}

// ShuffleContext is Shuffle that stops early with ctx.Err() once ctx is done.
// The context is checked every ctxCheckInterval steps, starting before the
// first one.
func (m *OriginShift) ShuffleContext(ctx context.Context, steps int, src Source) error {
	for i := 0; i < steps; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		m.ShiftRoot(src)
	}
	return nil
}

// Outward returns, in East, South, West, North order, whether the cell at
// (x, y) has an outward edge in each direction.
func (m *OriginShift) Outward(x, y int) ([4]bool, error) {
	if !m.InBound(x, y) {
		return [4]bool{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.cell(x, y).Outward(), nil
}

// Slots returns the raw slot states of the cell at (x, y).
func (m *OriginShift) Slots(x, y int) ([4]Slot, error) {
	if !m.InBound(x, y) {
		return [4]Slot{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.cell(x, y).Slots, nil
}

// All iterates over every cell in row-major order, yielding its position and
// outward-edge flags.
func (m *OriginShift) All() iter.Seq2[Position, [4]bool] {
	return func(yield func(Position, [4]bool) bool) {
		for i := range m.cells {
			if !yield(m.cells[i].Pos, m.cells[i].Outward()) {
				return
			}
		}
	}
}

// Validate checks that the arrows form a spanning tree rooted at Root: the
// root has no outward edge, every other cell has exactly one that stays
// inside the grid, and following arrows from any cell reaches the root.
func (m *OriginShift) Validate() error {
	if !m.InBound(m.root.X, m.root.Y) {
		return fmt.Errorf("%w: root %v outside the grid", ErrNotPerfect, m.root)
	}

	for i := range m.cells {
		c := &m.cells[i]
		for _, d := range Directions {
			next := c.Pos.Step(d)
			if (c.Slots[d] == Boundary) == m.InBound(next.X, next.Y) {
				return fmt.Errorf("%w: cell %v has a wrong boundary to the %s", ErrNotPerfect, c.Pos, d)
			}
		}

		want := 1
		if c.Pos == m.root {
			want = 0
		}
		if got := c.EdgeCount(); got != want {
			return fmt.Errorf("%w: cell %v has %d outward edges, want %d", ErrNotPerfect, c.Pos, got, want)
		}
	}

	// reached[i] is set once cell i is known to lead to the root.
	reached := make([]bool, len(m.cells))
	reached[m.index(m.root.X, m.root.Y)] = true
	for i := range m.cells {
		var path []int
		onPath := map[int]struct{}{}
		cur := i
		for !reached[cur] {
			if _, seen := onPath[cur]; seen {
				return fmt.Errorf("%w: cycle through cell %v", ErrNotPerfect, m.cells[cur].Pos)
			}
			onPath[cur] = struct{}{}
			path = append(path, cur)

			d, _ := m.cells[cur].pointsTo()
			next := m.cells[cur].Pos.Step(d)
			cur = m.index(next.X, next.Y)
		}
		for _, p := range path {
			reached[p] = true
		}
	}

	return nil
}

// String draws every cell as the arrow it points along, with the root as 'o'.
// Rows are printed top (y = 0) to bottom.
func (m *OriginShift) String() string {
	var b strings.Builder
	arrows := [directionCount]byte{East: '>', South: 'v', West: '<', North: '^'}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			d, ok := m.cell(x, y).pointsTo()
			if !ok {
				b.WriteByte('o')
				continue
			}
			b.WriteByte(arrows[d])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (m *OriginShift) index(x, y int) int {
	return y*m.width + x
}

func (m *OriginShift) cell(x, y int) *Cell {
	return &m.cells[m.index(x, y)]
}
