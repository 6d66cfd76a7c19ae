package domain

import (
	"testing"

	"github.com/beka-birhanu/vinom-originshift/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMazeRecord(t *testing.T) {
	m, err := maze.New(3, 2)
	require.NoError(t, err)

	r := NewMazeRecord(m, 60, 42)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, 3, r.Width)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, 60, r.Steps)
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, maze.Position{X: 2, Y: 1}, r.Root)
	assert.Len(t, r.Cells, 6)
	assert.False(t, r.CreatedAt.IsZero())

	t.Run("cell lookup", func(t *testing.T) {
		c, ok := r.Cell(1, 0)
		require.True(t, ok)
		assert.Equal(t, CellRecord{X: 1, Y: 0, Outward: [4]bool{true, false, false, false}}, c)

		c, ok = r.Cell(2, 1)
		require.True(t, ok)
		assert.Equal(t, [4]bool{}, c.Outward)

		_, ok = r.Cell(3, 0)
		assert.False(t, ok)
		_, ok = r.Cell(0, -1)
		assert.False(t, ok)
	})

	t.Run("fresh id per record", func(t *testing.T) {
		assert.NotEqual(t, r.ID, NewMazeRecord(m, 60, 42).ID)
	})
}
