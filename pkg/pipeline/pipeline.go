// Package pipeline runs puzzle solvers behind the answer cache.
//
// The CLI never calls a [puzzle.Solver] directly: it goes through a [Runner],
// which derives a cache key from the day and a hash of the input, returns a
// cached answer when one exists and otherwise solves and stores the result.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	defer runner.Close()
//
//	res, err := runner.Solve(ctx, solver, pipeline.Options{Input: in})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Answer.Part1, res.CacheHit)
package pipeline

import (
	"time"

	"github.com/matzehuels/adventofcode/pkg/cache"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
)

// keyType labels answer cache events reported to observability hooks.
const keyType = "answer"

// Options configures a single solve.
type Options struct {
	// Input is passed to the solver unchanged and hashed for the cache key.
	Input puzzle.Input

	// Refresh skips the cache lookup but still stores the new answer.
	Refresh bool

	// NoCache bypasses the cache entirely.
	NoCache bool

	// TTL overrides cache.TTLAnswer when positive.
	TTL time.Duration
}

func (o Options) ttl() time.Duration {
	if o.TTL > 0 {
		return o.TTL
	}
	return cache.TTLAnswer
}

// InputHash returns the hash that identifies o.Input in cache keys.
func (o Options) InputHash() string {
	return cache.HashLines(o.Input.Lines, o.Input.Layout)
}

// Result is the outcome of a solve.
type Result struct {
	Answer   puzzle.Answer
	CacheHit bool
	Duration time.Duration
}
