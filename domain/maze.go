// Package domain holds the records the service stores and serves.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-originshift/maze"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned when no maze record matches a lookup.
var ErrMazeNotFound = errors.New("maze not found")

// CellRecord is the outward-edge view of one cell.
type CellRecord struct {
	X       int     `json:"x" bson:"x"`
	Y       int     `json:"y" bson:"y"`
	Outward [4]bool `json:"outward" bson:"outward"` // East, South, West, North
}

// MazeRecord is a generated maze together with everything needed to replay
// it: dimensions, step count and the seed actually used.
type MazeRecord struct {
	ID        uuid.UUID     `json:"id" bson:"_id"`
	Width     int           `json:"width" bson:"width"`
	Height    int           `json:"height" bson:"height"`
	Steps     int           `json:"steps" bson:"steps"`
	Seed      int64         `json:"seed" bson:"seed"`
	Root      maze.Position `json:"root" bson:"root"`
	Cells     []CellRecord  `json:"cells" bson:"cells"`
	CreatedAt time.Time     `json:"created_at" bson:"createdAt"`
}

// NewMazeRecord snapshots m under a fresh ID.
func NewMazeRecord(m maze.View, steps int, seed int64) *MazeRecord {
	cells := make([]CellRecord, 0, m.Width()*m.Height())
	for pos, out := range m.All() {
		cells = append(cells, CellRecord{X: pos.X, Y: pos.Y, Outward: out})
	}

	return &MazeRecord{
		ID:        uuid.New(),
		Width:     m.Width(),
		Height:    m.Height(),
		Steps:     steps,
		Seed:      seed,
		Root:      m.Root(),
		Cells:     cells,
		CreatedAt: time.Now().UTC(),
	}
}

// Cell returns the record of the cell at (x, y).
func (r *MazeRecord) Cell(x, y int) (CellRecord, bool) {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return CellRecord{}, false
	}
	idx := y*r.Width + x
	if idx >= len(r.Cells) {
		return CellRecord{}, false
	}
	return r.Cells[idx], true
}
