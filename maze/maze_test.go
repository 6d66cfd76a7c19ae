package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed list of draws and records how many were used.
type scriptedSource struct {
	draws []int
	used  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.draws[s.used] % n
	s.used++
	return v
}

func slotGrid(m *OriginShift) [][4]Slot {
	grid := make([][4]Slot, 0, m.width*m.height)
	for _, c := range m.cells {
		grid = append(grid, c.Slots)
	}
	return grid
}

func TestNew(t *testing.T) {
	t.Run("rejects sizes below two cells", func(t *testing.T) {
		for _, size := range [][2]int{{1, 1}, {0, 5}, {5, 0}, {-1, 4}, {0, 0}} {
			m, err := New(size[0], size[1])
			assert.ErrorIs(t, err, ErrInvalidSize, "size %v", size)
			assert.Nil(t, m)
		}
	})

	t.Run("accepts every grid with at least two cells", func(t *testing.T) {
		for _, size := range [][2]int{{2, 1}, {1, 2}, {3, 3}, {5, 7}, {1, 9}} {
			m, err := New(size[0], size[1])
			require.NoError(t, err, "size %v", size)
			assert.Equal(t, size[0], m.Width())
			assert.Equal(t, size[1], m.Height())
			assert.Equal(t, Position{X: size[0] - 1, Y: size[1] - 1}, m.Root())
			assert.NoError(t, m.Validate())
		}
	})

	t.Run("builds the snake tree", func(t *testing.T) {
		m, err := New(3, 3)
		require.NoError(t, err)

		assert.Equal(t, "> > v\n> > v\n> > o\n", m.String())

		slots, err := m.Slots(0, 0)
		require.NoError(t, err)
		assert.Equal(t, [4]Slot{Edge, Clear, Boundary, Boundary}, slots)

		slots, err = m.Slots(2, 0)
		require.NoError(t, err)
		assert.Equal(t, [4]Slot{Boundary, Edge, Clear, Boundary}, slots)

		slots, err = m.Slots(2, 2)
		require.NoError(t, err)
		assert.Equal(t, [4]Slot{Boundary, Boundary, Clear, Clear}, slots)
	})

	t.Run("single row points east into the root", func(t *testing.T) {
		m, err := New(3, 1)
		require.NoError(t, err)
		assert.Equal(t, "> > o\n", m.String())
		assert.Equal(t, Position{X: 2, Y: 0}, m.Root())
	})

	t.Run("single column points south into the root", func(t *testing.T) {
		m, err := New(1, 3)
		require.NoError(t, err)
		assert.Equal(t, "v\nv\no\n", m.String())
	})
}

func TestShiftRoot(t *testing.T) {
	t.Run("moves west from the initial root", func(t *testing.T) {
		m, err := New(3, 3)
		require.NoError(t, err)

		// East is a boundary at the bottom-right corner, so the first draw is
		// rejected and the second picks West.
		src := &scriptedSource{draws: []int{int(East), int(West)}}
		root := m.ShiftRoot(src)

		assert.Equal(t, 2, src.used)
		assert.Equal(t, Position{X: 1, Y: 2}, root)
		assert.Equal(t, root, m.Root())

		newRoot, err := m.Slots(1, 2)
		require.NoError(t, err)
		assert.Equal(t, Clear, newRoot[West.Opposite()])

		oldRoot, err := m.Slots(2, 2)
		require.NoError(t, err)
		assert.Equal(t, Edge, oldRoot[West])

		assert.NoError(t, m.Validate())
	})

	t.Run("keeps the tree perfect after every step", func(t *testing.T) {
		for _, size := range [][2]int{{2, 1}, {1, 2}, {2, 2}, {4, 3}, {7, 5}} {
			m, err := New(size[0], size[1])
			require.NoError(t, err)
			src := NewSource(int64(size[0]*100 + size[1]))

			for step := 0; step < 300; step++ {
				m.ShiftRoot(src)
				require.NoError(t, m.Validate(), "size %v step %d", size, step)
			}
		}
	})

	t.Run("changes at most two cells and moves to a neighbour", func(t *testing.T) {
		m, err := New(6, 4)
		require.NoError(t, err)
		src := NewSource(7)

		for step := 0; step < 200; step++ {
			before := slotGrid(m)
			prev := m.Root()

			root := m.ShiftRoot(src)

			dx, dy := root.X-prev.X, root.Y-prev.Y
			assert.Equal(t, 1, dx*dx+dy*dy, "root must move to an adjacent cell")

			changed := 0
			for i, slots := range slotGrid(m) {
				if slots != before[i] {
					changed++
				}
			}
			assert.LessOrEqual(t, changed, 2)
		}
	})

	t.Run("never draws an edge across the boundary", func(t *testing.T) {
		m, err := New(5, 4)
		require.NoError(t, err)
		m.Shuffle(1000, NewSource(99))

		for pos, out := range m.All() {
			if pos.X == m.Width()-1 {
				assert.False(t, out[East], "cell %v", pos)
			}
			if pos.X == 0 {
				assert.False(t, out[West], "cell %v", pos)
			}
			if pos.Y == m.Height()-1 {
				assert.False(t, out[South], "cell %v", pos)
			}
			if pos.Y == 0 {
				assert.False(t, out[North], "cell %v", pos)
			}
		}
	})
}

func TestOutward(t *testing.T) {
	m, err := New(3, 2)
	require.NoError(t, err)

	out, err := m.Outward(0, 0)
	require.NoError(t, err)
	assert.Equal(t, [4]bool{true, false, false, false}, out)

	out, err = m.Outward(2, 1)
	require.NoError(t, err)
	assert.Equal(t, [4]bool{}, out)

	for _, pos := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		_, err := m.Outward(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = m.Slots(pos[0], pos[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestAll(t *testing.T) {
	m, err := New(3, 2)
	require.NoError(t, err)

	var visited []Position
	for pos := range m.All() {
		visited = append(visited, pos)
	}
	assert.Equal(t, []Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, visited)

	count := 0
	for range m.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestValidate(t *testing.T) {
	t.Run("root with an outward edge", func(t *testing.T) {
		m, err := New(2, 1)
		require.NoError(t, err)
		m.cell(1, 0).Slots[West] = Edge
		assert.ErrorIs(t, m.Validate(), ErrNotPerfect)
	})

	t.Run("cycle between two cells", func(t *testing.T) {
		m, err := New(2, 2)
		require.NoError(t, err)
		// (0,0) and (1,0) point at each other and (0,1) feeds into the loop.
		m.cell(0, 1).Slots = [4]Slot{Clear, Boundary, Boundary, Edge}
		m.cell(1, 0).Slots = [4]Slot{Boundary, Clear, Edge, Boundary}
		assert.ErrorIs(t, m.Validate(), ErrNotPerfect)
	})

	t.Run("edge through the boundary", func(t *testing.T) {
		m, err := New(2, 2)
		require.NoError(t, err)
		m.cell(0, 0).Slots[West] = Clear
		assert.ErrorIs(t, m.Validate(), ErrNotPerfect)
	})
}

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		delta    Position
		opposite Direction
		name     string
	}{
		{East, Position{X: 1}, West, "East"},
		{South, Position{Y: 1}, North, "South"},
		{West, Position{X: -1}, East, "West"},
		{North, Position{Y: -1}, South, "North"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.delta, tt.dir.Delta())
			assert.Equal(t, tt.opposite, tt.dir.Opposite())
			assert.Equal(t, tt.dir, tt.dir.Opposite().Opposite())
			assert.Equal(t, tt.name, tt.dir.String())
		})
	}

	assert.Equal(t, "Direction(9)", Direction(9).String())
}
