package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-originshift/domain"
)

// MazeCache keeps recently generated maze records keyed by their replay
// parameters.
type MazeCache interface {
	// Get returns the cached record for key, or nil with no error on a miss.
	Get(ctx context.Context, key string) (*dmn.MazeRecord, error)

	// Set stores record under key for ttl.
	Set(ctx context.Context, key string, record *dmn.MazeRecord, ttl time.Duration) error

	// Lock takes a lock named after key, shared by every service instance.
	// The returned function releases it.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
