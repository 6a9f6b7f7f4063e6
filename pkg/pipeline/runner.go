package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/adventofcode/pkg/cache"
	"github.com/matzehuels/adventofcode/pkg/observability"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// Runner solves puzzles with caching.
//
// The Runner holds no per-solve state, so one Runner can serve several
// goroutines as long as its cache is safe for concurrent use (all backends
// in pkg/cache are).
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Solve runs s over opts.Input, consulting the cache first.
//
// Cache failures never fail the solve: a read error is logged and treated as
// a miss, a write error is logged and dropped.
func (r *Runner) Solve(ctx context.Context, s puzzle.Solver, opts Options) (*Result, error) {
	start := time.Now()
	day := s.Day()
	key := r.Keyer.AnswerKey(day, opts.InputHash())

	if !opts.NoCache && !opts.Refresh {
		if ans, ok := r.lookup(ctx, key); ok {
			observability.Cache().OnCacheHit(ctx, keyType)
			r.Logger.Debug("answer from cache", "day", day)
			return &Result{Answer: ans, CacheHit: true, Duration: time.Since(start)}, nil
		}
		observability.Cache().OnCacheMiss(ctx, keyType)
	}

	observability.Solve().OnSolveStart(ctx, day)
	ans, err := s.Solve(ctx, opts.Input)
	elapsed := time.Since(start)
	observability.Solve().OnSolveComplete(ctx, day, elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}

	if !opts.NoCache {
		r.store(ctx, key, ans, opts.ttl())
	}

	return &Result{Answer: ans, Duration: elapsed}, nil
}

// Forget removes the cached answer for s and opts, if any.
func (r *Runner) Forget(ctx context.Context, s puzzle.Solver, opts Options) error {
	return r.Cache.Delete(ctx, r.Keyer.AnswerKey(s.Day(), opts.InputHash()))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) lookup(ctx context.Context, key string) (puzzle.Answer, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return puzzle.Answer{}, false
	}
	if !hit {
		return puzzle.Answer{}, false
	}
	var ans puzzle.Answer
	if err := json.Unmarshal(data, &ans); err != nil {
		// If deserialization fails, fall through to recompute
		r.Logger.Debug("discarding unreadable cache entry", "error", err)
		return puzzle.Answer{}, false
	}
	return ans, true
}

func (r *Runner) store(ctx context.Context, key string, ans puzzle.Answer, ttl time.Duration) {
	data, err := json.Marshal(ans)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
