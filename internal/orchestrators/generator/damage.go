package generator

import (
	"log/slog"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
)

// DamageCategory is one kind of traumatic "damaged veteran" event
type DamageCategory string

// Damage categories
const (
	DamageExtremeViolence DamageCategory = "extreme_violence"
	DamageCaptivity       DamageCategory = "captivity"
	DamageHardExperience  DamageCategory = "hard_experience"
	DamageUnnatural       DamageCategory = "unnatural"
)

// DamageCategories in table order
var DamageCategories = []DamageCategory{
	DamageExtremeViolence,
	DamageCaptivity,
	DamageHardExperience,
	DamageUnnatural,
}

// DamageEventWeights are the odds of 0, 1, 2, 3 and 4 events
var DamageEventWeights = []int{80, 10, 5, 4, 1}

const (
	damageSanityLoss     = 5
	damageOccultGain     = 10
	damageAttributeLoss  = 3
	damageMarks          = 3
	hardExperienceBoosts = 5
	hardExperienceLimit  = 90
	unnaturalSkillGain   = 10
	unnaturalOccultGain  = 20
)

var damageNarrative = map[DamageCategory]struct {
	line string
	note string
}{
	DamageExtremeViolence: {
		line: "• Extreme violence",
		note: "Extreme violence: +10 Occult, -5 SAN, -3 CHA and each Bond, adapted to violence.",
	},
	DamageCaptivity: {
		line: "• Captivity or imprisonment",
		note: "Captivity or imprisonment: +10 Occult, -5 SAN, -3 POW, adapted to helplessness.",
	},
	DamageHardExperience: {
		line: "• Hard experience",
		note: "Hard experience: +10 Occult, five +20 skill boosts (max 90), -5 SAN, lose one Bond.",
	},
	DamageUnnatural: {
		line: "• Things man was not meant to know",
		note: "Things man was not meant to know: +10 Unnatural, +20 Occult, lose POW in SAN, gain a disorder.",
	},
}

// applyDamage rolls how many trauma categories apply and applies each one
// once, in the drawn order.
func (b *builder) applyDamage(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()

	count, err := random.Weighted(b.src, DamageEventWeights)
	if err != nil {
		return c, errors.Wrap(err, "failed to roll damage events")
	}
	if count == 0 {
		return c, nil
	}

	categories, err := random.Sample(b.src, DamageCategories, count)
	if err != nil {
		return c, errors.Wrap(err, "failed to pick damage categories")
	}

	for _, category := range categories {
		c, err = b.applyDamageCategory(c, category)
		if err != nil {
			return c, err
		}
		b.damage = append(b.damage, category)

		narrative := damageNarrative[category]
		if len(c.DamageNarrative) >= deltagreen.MaxDamageLines {
			slog.Warn("Damage narrative full, dropping line",
				"category", category,
				"max_lines", deltagreen.MaxDamageLines,
			)
			continue
		}
		c.DamageNarrative = append(c.DamageNarrative, narrative.line+b.notes.Mark(narrative.note))
	}

	return c, nil
}

func (b *builder) applyDamageCategory(c deltagreen.Character, category DamageCategory) (deltagreen.Character, error) {
	switch category {
	case DamageExtremeViolence:
		c.Skills.Add(deltagreen.SkillOccult, damageOccultGain)
		c.SanityLoss += damageSanityLoss
		c.Attributes.Charisma = max(1, c.Attributes.Charisma-damageAttributeLoss)
		for i := range c.Bonds {
			c.Bonds[i] = max(0, c.Bonds[i]-damageAttributeLoss)
		}
		c.ViolenceMarks = damageMarks

	case DamageCaptivity:
		c.Skills.Add(deltagreen.SkillOccult, damageOccultGain)
		c.SanityLoss += damageSanityLoss
		c.Attributes.Power = max(1, c.Attributes.Power-damageAttributeLoss)
		c.HelplessnessMarks = damageMarks

	case DamageHardExperience:
		c.Skills.Add(deltagreen.SkillOccult, damageOccultGain)
		boosted := allocateBonus(c.Skills, b.genericBonusPool(), hardExperienceBoosts, hardExperienceLimit)
		c.BonusSkills = append(c.BonusSkills, boosted...)
		c.SanityLoss += damageSanityLoss
		if len(c.Bonds) > 0 {
			c.Bonds = c.Bonds[:len(c.Bonds)-1]
		}

	case DamageUnnatural:
		c.Skills.Add(deltagreen.SkillUnnatural, unnaturalSkillGain)
		c.Skills.Add(deltagreen.SkillOccult, unnaturalOccultGain)
		c.SanityLoss += c.Attributes.Power
		disorder, err := random.Choice(b.src, deltagreen.Disorders)
		if err != nil {
			return c, err
		}
		c.Disorder = disorder

	default:
		return c, errors.Internalf("unknown damage category %q", category)
	}

	return c, nil
}
