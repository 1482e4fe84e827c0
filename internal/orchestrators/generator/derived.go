package generator

import (
	"math"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
)

// applyDerived computes hit points, willpower, sanity, breaking point and
// damage bonus from the final attributes, and picks distinguishing
// features.
func (b *builder) applyDerived(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()
	a := c.Attributes

	c.HitPoints = hitPoints(a.Strength, a.Constitution)
	c.Willpower = a.Power
	c.Sanity = max(0, a.Power*5-c.SanityLoss)
	c.BreakingPoint = max(0, c.Sanity-a.Power)
	c.DamageBonus = damageBonus(a.Strength)

	c.Features = make(map[deltagreen.Attribute]string)
	for _, attr := range deltagreen.AllAttributes {
		phrases := b.catalog.Features(attr, a.Get(attr))
		if len(phrases) == 0 {
			continue
		}
		feature, err := random.Choice(b.src, phrases)
		if err != nil {
			return c, err
		}
		c.Features[attr] = feature
	}

	return c, nil
}

// hitPoints is the mean of strength and constitution, halves rounded to even
func hitPoints(strength, constitution int) int {
	return int(math.RoundToEven(float64(strength+constitution) / 2))
}

// damageBonus is floor((strength-1)/4) - 2
func damageBonus(strength int) int {
	n := strength - 1
	q := n / 4
	if n < 0 && n%4 != 0 {
		q--
	}
	return q - 2
}
