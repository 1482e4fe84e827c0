package random

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dg-generator/internal/errors"
)

// SeededRoller is a deterministic dice.Roller. Two rollers built from the
// same seed produce the same sequence.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a roller from seed.
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var _ dice.Roller = (*SeededRoller)(nil)

// Roll returns a value in [1, size].
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
