package maze

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// StepsPerCell is the default number of root shifts per cell. It is an
// empirical figure that scrambles the initial tree well in practice; it is
// not a proven mixing bound.
const StepsPerCell = 10

const ctxCheckInterval = 1024

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Config controls Generate.
type Config struct {
	Width  int
	Height int
	// Steps is the number of root shifts. Zero or less means DefaultSteps.
	Steps int
	// Seed makes the run reproducible. Zero draws a fresh seed from SeedFunc.
	Seed int64
	// SeedFunc is called once when Seed is zero. Defaults to EntropySeed.
	SeedFunc func() int64
}

// DefaultSteps returns the default number of root shifts for a maze.
func DefaultSteps(width, height int) int {
	return width * height * StepsPerCell
}

// NewSource returns a deterministic source for seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// EntropySeed draws a positive seed from the operating system's entropy pool.
func EntropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand only fails on a broken platform.
		return rand.Int63n(1<<63-1) + 1
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Generate builds a maze and shuffles it with a single generator seeded once
// for the whole run. It returns the maze and the seed used; passing that seed
// back with the same dimensions and steps reproduces the maze exactly.
func Generate(c Config) (*OriginShift, int64, error) {
	return GenerateContext(context.Background(), c)
}

// GenerateContext is Generate that gives up with ctx.Err() when ctx is done
// before the shuffle finishes.
func GenerateContext(ctx context.Context, c Config) (*OriginShift, int64, error) {
	m, err := New(c.Width, c.Height)
	if err != nil {
		return nil, 0, err
	}

	steps := c.Steps
	if steps <= 0 {
		steps = DefaultSteps(c.Width, c.Height)
	}

	seed := c.Seed
	if seed == 0 {
		seedFunc := c.SeedFunc
		if seedFunc == nil {
			seedFunc = EntropySeed
		}
		seed = seedFunc()
	}

	if err := m.ShuffleContext(ctx, steps, NewSource(seed)); err != nil {
		return nil, 0, err
	}
	return m, seed, nil
}
