package generator

import (
	"log/slog"
	"math"
	"sort"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
)

// skillChecks returns the improvement rolls earned by age: every year from
// BaseAge on yields 4 checks, halving every ten years, floored in total.
func skillChecks(age int) int {
	if age <= deltagreen.BaseAge {
		return 0
	}

	total := 0.0
	for y := deltagreen.BaseAge; y <= age; y++ {
		total += 4 * math.Pow(0.5, float64(y-deltagreen.BaseAge)/10)
	}
	return int(math.Floor(total))
}

// declinePoints returns the physical attribute loss for an age
func declinePoints(age int) int {
	switch {
	case age >= 90:
		return 32
	case age >= 80:
		return 16
	case age >= 70:
		return 8
	case age >= 60:
		return 4
	case age >= 50:
		return 2
	case age >= 40:
		return 1
	}
	return 0
}

// veteranSkills lists the skills a profession trains: fixed, possible and
// bonus skills that currently hold a positive score, sorted by name.
func (b *builder) veteranSkills(c deltagreen.Character) []string {
	seen := map[string]bool{}
	for name := range b.profession.Skills.Fixed {
		seen[name] = true
	}
	for name := range b.profession.Skills.Possible {
		seen[name] = true
	}
	for _, name := range c.BonusSkills {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		v, ok := c.Skills[name]
		if !ok || v.IsLabel() || v.Score <= 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyVeterancy rolls d100 per check per trained skill; a roll above the
// current score, or a natural 100, raises the skill by one.
func (b *builder) applyVeterancy(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()

	checks := skillChecks(c.Age)
	if checks == 0 {
		return c, nil
	}

	improved := 0
	for _, name := range b.veteranSkills(c) {
		for i := 0; i < checks; i++ {
			score := c.Skills[name].Score
			if roll := b.src.D100(); roll > score || roll == 100 {
				c.Skills[name] = deltagreen.Score(score + 1)
				improved++
			}
		}
	}

	slog.Debug("Applied veterancy",
		"age", c.Age,
		"checks", checks,
		"improvements", improved,
	)

	return c, nil
}

// applyDecline removes age-band points from random physical attributes
// that are still above 1. Points left when all are at 1 are forfeited.
func (b *builder) applyDecline(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()

	points := declinePoints(c.Age)
	for i := 0; i < points; i++ {
		var open []deltagreen.Attribute
		for _, attr := range deltagreen.PhysicalAttributes {
			if c.Attributes.Get(attr) > 1 {
				open = append(open, attr)
			}
		}

		attr, err := random.Choice(b.src, open)
		if err != nil {
			slog.Debug("Physical attributes exhausted, forfeiting decline",
				"age", c.Age,
				"forfeited", points-i,
			)
			break
		}
		c.Attributes.Set(attr, c.Attributes.Get(attr)-1)
	}

	return c, nil
}
