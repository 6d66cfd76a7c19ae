package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-originshift/domain"
	"github.com/beka-birhanu/vinom-originshift/logger"
	"github.com/beka-birhanu/vinom-originshift/maze"
	"github.com/beka-birhanu/vinom-originshift/monitor"
	"github.com/beka-birhanu/vinom-originshift/service/i"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultMaxDimension = 100
	defaultCacheTTL     = time.Hour
	metricsNamespace    = "originshift"
	mazeKeyFmt          = "%dx%d:seed_%d:steps_%d"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension too large")
	ErrTooManySteps      = errors.New("too many root shifts requested")
	ErrCellNotFound      = errors.New("cell not found")
)

// GenerateRequest describes the maze to build. Seed 0 asks for a fresh
// seed; Steps 0 asks for maze.DefaultSteps.
type GenerateRequest struct {
	Width  int
	Height int
	Steps  int
	Seed   int64
}

// Config holds the dependencies of a MazeService. Cache may be nil.
type Config struct {
	Repo         i.MazeRepo
	Cache        i.MazeCache
	Logger       *zap.SugaredLogger
	Metrics      *monitor.Metrics
	MaxDimension int
	// MaxSteps bounds explicit step counts. Zero means
	// maze.DefaultSteps(MaxDimension, MaxDimension).
	MaxSteps int
	CacheTTL time.Duration
	// SeedFunc replaces maze.EntropySeed when set.
	SeedFunc func() int64
}

// MazeService generates, stores and serves origin-shift mazes.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.MazeCache
	logger       *zap.SugaredLogger
	metrics      *monitor.Metrics
	maxDimension int
	maxSteps     int
	cacheTTL     time.Duration
	seedFunc     func() int64
}

// NewMazeService creates a MazeService, filling unset options with defaults.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Repo == nil {
		return nil, errors.New("maze service requires a repository")
	}

	s := &MazeService{
		repo:         c.Repo,
		cache:        c.Cache,
		logger:       c.Logger,
		metrics:      c.Metrics,
		maxDimension: c.MaxDimension,
		maxSteps:     c.MaxSteps,
		cacheTTL:     c.CacheTTL,
		seedFunc:     c.SeedFunc,
	}

	if s.logger == nil {
		s.logger = logger.Nop()
	}

	if s.metrics == nil {
		s.metrics = monitor.NewMetrics(metricsNamespace, nil)
	}

	if s.maxDimension <= 0 {
		s.maxDimension = defaultMaxDimension
	}

	if s.maxSteps <= 0 {
		s.maxSteps = maze.DefaultSteps(s.maxDimension, s.maxDimension)
	}

	if s.cacheTTL <= 0 {
		s.cacheTTL = defaultCacheTTL
	}

	if s.seedFunc == nil {
		s.seedFunc = maze.EntropySeed
	}

	return s, nil
}

// Generate builds the requested maze and stores it. A seeded request whose
// maze is already cached returns the cached record instead of a new one.
func (s *MazeService) Generate(ctx context.Context, req GenerateRequest) (*dmn.MazeRecord, error) {
	if max(req.Width, req.Height) > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, req.Width, req.Height, s.maxDimension)
	}
	if err := maze.ValidateSize(req.Width, req.Height); err != nil {
		return nil, err
	}

	if req.Steps > s.maxSteps {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManySteps, req.Steps, s.maxSteps)
	}

	steps := req.Steps
	if steps <= 0 {
		steps = maze.DefaultSteps(req.Width, req.Height)
	}

	if req.Seed == 0 || s.cache == nil {
		return s.generate(ctx, req.Width, req.Height, steps, req.Seed)
	}

	key := mazeKey(req.Width, req.Height, req.Seed, steps)
	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warnw("maze cache lookup failed", "key", key, "error", err)
	}
	if cached != nil {
		s.metrics.IncCacheHit()
		s.logger.Debugw("maze served from cache", "key", key, "id", cached.ID)
		return cached, nil
	}
	s.metrics.IncCacheMiss()

	return s.generate(ctx, req.Width, req.Height, steps, req.Seed)
}

// generate runs the origin-shift driver, persists the result and caches it
// under the seed actually used.
func (s *MazeService) generate(ctx context.Context, width, height, steps int, seed int64) (*dmn.MazeRecord, error) {
	start := time.Now()
	m, usedSeed, err := maze.GenerateContext(ctx, maze.Config{
		Width:    width,
		Height:   height,
		Steps:    steps,
		Seed:     seed,
		SeedFunc: s.seedFunc,
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	s.metrics.ObserveGeneration(width*height, elapsed)

	record := dmn.NewMazeRecord(m, steps, usedSeed)
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Infow("maze generated",
		"id", record.ID,
		"width", width,
		"height", height,
		"steps", steps,
		"seed", usedSeed,
		"elapsed", elapsed,
	)

	if s.cache != nil {
		key := mazeKey(width, height, usedSeed, steps)
		if err := s.cache.Set(ctx, key, record, s.cacheTTL); err != nil {
			s.logger.Warnw("caching maze failed", "key", key, "error", err)
		}
	}

	return record, nil
}

// ByID returns a stored maze record.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Cell returns the outward-edge view of one cell of a stored maze.
func (s *MazeService) Cell(ctx context.Context, id uuid.UUID, x, y int) (dmn.CellRecord, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return dmn.CellRecord{}, err
	}

	cell, ok := record.Cell(x, y)
	if !ok {
		return dmn.CellRecord{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrCellNotFound, x, y, record.Width, record.Height)
	}
	return cell, nil
}

func mazeKey(width, height int, seed int64, steps int) string {
	return fmt.Sprintf(mazeKeyFmt, width, height, seed, steps)
}
