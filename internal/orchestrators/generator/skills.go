package generator

import (
	"log/slog"
	"sort"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
)

// applySkills layers defaults, profession fixed values, sampled possible
// skills, bond slots and the initial bonus allocation, in that order.
func (b *builder) applySkills(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()
	profile := b.profession.Skills

	c.Skills = deltagreen.DefaultSkills()
	for name, v := range profile.Fixed {
		c.Skills[name] = v
	}

	possible, err := random.Sample(b.src, sortedKeys(profile.Possible), profile.PossibleCount)
	if err != nil {
		return c, errors.Wrapf(err, "profession %s cannot sample its possible skills", b.profession.ID)
	}
	for _, name := range possible {
		c.Skills[name] = deltagreen.Score(profile.Possible[name])
	}

	c.Bonds = make([]int, b.profession.Bonds)
	for i := range c.Bonds {
		c.Bonds[i] = c.Attributes.Charisma
	}

	var candidates []string
	for _, name := range profile.Bonus {
		if b.src.Percent(deltagreen.SuggestedBonusChance) {
			candidates = append(candidates, name)
		}
	}
	candidates = append(candidates, b.genericBonusPool()...)

	c.BonusSkills = allocateBonus(c.Skills, candidates, deltagreen.BonusSkillCount, deltagreen.BonusSkillLimit)

	return c, nil
}

// genericBonusPool returns the generic bonus skills in random order
func (b *builder) genericBonusPool() []string {
	pool := append([]string(nil), deltagreen.BonusSkillPool...)
	random.Shuffle(b.src, pool)
	return pool
}

// allocateBonus walks candidates in order, adding BonusSkillBoost to each
// skill that stays within limit, until count boosts have landed. Candidates
// that would exceed the limit, or that hold a label, are discarded. It
// returns the boosted skill names in the order they were applied.
func allocateBonus(skills deltagreen.Skills, candidates []string, count, limit int) []string {
	applied := make([]string, 0, count)
	for _, name := range candidates {
		if len(applied) == count {
			break
		}

		score, ok := skills.Score(name)
		if !ok || score+deltagreen.BonusSkillBoost > limit {
			continue
		}
		skills[name] = deltagreen.Score(score + deltagreen.BonusSkillBoost)
		applied = append(applied, name)
	}

	if len(applied) < count {
		slog.Warn("Bonus candidates exhausted",
			"applied", len(applied),
			"wanted", count,
		)
	}
	return applied
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
