package mazeapi

// GenerateRequest is the body of a maze generation request. Seed 0 or
// missing asks for a fresh seed; Steps 0 or missing uses the default.
type GenerateRequest struct {
	Width  int   `json:"width" binding:"required"`
	Height int   `json:"height" binding:"required"`
	Seed   int64 `json:"seed"`
	Steps  int   `json:"steps" binding:"min=0"`
}

// CellResponse is the outward-edge view of one cell.
type CellResponse struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Outward [4]bool `json:"outward"`
}
