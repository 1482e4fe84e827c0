package generator

import (
	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
)

// rolledPool marks the pool index that is rolled fresh as 4d6 keep 3
var rolledPool = len(deltagreen.StatPools)

// applyAttributes picks one of the fixed pools or a freshly rolled one,
// shuffles it and deals the values out in sheet order.
func (b *builder) applyAttributes(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()

	pool := b.attributePool()
	random.Shuffle(b.src, pool)
	for i, attr := range deltagreen.AllAttributes {
		c.Attributes.Set(attr, pool[i])
	}

	return c, nil
}

func (b *builder) attributePool() []int {
	idx := b.src.Intn(len(deltagreen.StatPools) + 1)
	if idx == rolledPool {
		pool := make([]int, len(deltagreen.AllAttributes))
		for i := range pool {
			pool[i] = b.src.BestOf(4, 6, 3)
		}
		return pool
	}
	return append([]int(nil), deltagreen.StatPools[idx]...)
}
