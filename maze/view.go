package maze

import "iter"

// View is the read-only surface a renderer or exporter needs.
type View interface {
	Width() int
	Height() int
	Root() Position
	Outward(x, y int) ([4]bool, error)
	All() iter.Seq2[Position, [4]bool]
}

var _ View = (*OriginShift)(nil)
