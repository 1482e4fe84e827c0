// Package random resolves uniform, percentile and weighted random tables on
// top of an injectable dice.Roller.
package random

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dg-generator/internal/errors"
)

// Source draws every random value used during generation.
// A Source is not safe for concurrent use; give each goroutine its own.
//
// Roller failures do not interrupt a draw. The first failure is kept and
// reported by Err, and the failed draw yields the lowest face.
type Source struct {
	roller dice.Roller
	err    error
}

// New wraps roller. A nil roller falls back to dice.DefaultRoller.
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// Err returns the first roller failure seen by this source, or nil
func (s *Source) Err() error {
	return s.err
}

func (s *Source) fail(err error, format string, args ...any) {
	if s.err == nil {
		s.err = errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf(format, args...))
	}
}

// Roll returns a value in [1, size].
func (s *Source) Roll(size int) int {
	v, err := s.roller.Roll(size)
	if err != nil {
		s.fail(err, "dice roller failed for d%d", size)
		return 1
	}
	return v
}

// Intn returns a value in [0, n).
func (s *Source) Intn(n int) int {
	return s.Roll(n) - 1
}

// D100 returns a percentile roll in [1, 100].
func (s *Source) D100() int {
	return s.Roll(100)
}

// Percent reports whether a percentile roll falls within chance.
func (s *Source) Percent(chance int) bool {
	return s.D100() <= chance
}

// Between returns a value in [lo, hi].
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// BestOf rolls count dice of the given size and sums the highest keep.
func (s *Source) BestOf(count, size, keep int) int {
	rolls, err := s.roller.RollN(count, size)
	if err != nil {
		s.fail(err, "dice roller failed for %dd%d", count, size)
		return min(keep, count)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	if keep > len(rolls) {
		keep = len(rolls)
	}

	total := 0
	for _, r := range rolls[:keep] {
		total += r
	}
	return total
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](s *Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Choice picks one element uniformly.
func Choice[T any](s *Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.FailedPrecondition("cannot choose from an empty table")
	}
	return items[s.Intn(len(items))], nil
}

// Sample picks n distinct positions from items without replacement,
// preserving the draw order. Asking for more entries than items holds is a
// FailedPrecondition error.
func Sample[T any](s *Source, items []T, n int) ([]T, error) {
	if n < 0 || n > len(items) {
		return nil, errors.FailedPreconditionf("cannot sample %d entries from a table of %d", n, len(items)).
			WithMeta("requested", n).
			WithMeta("available", len(items))
	}

	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < n; i++ {
		j := i + s.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}

// Weighted returns an index into weights, chosen with probability
// proportional to its weight.
func Weighted(s *Source, weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		if w < 0 {
			return 0, errors.FailedPreconditionf("negative weight %d", w)
		}
		total += w
	}
	if total == 0 {
		return 0, errors.FailedPrecondition("weighted table has no weight")
	}

	roll := s.Roll(total)
	for i, w := range weights {
		if roll <= w {
			return i, nil
		}
		roll -= w
	}
	return len(weights) - 1, nil
}
