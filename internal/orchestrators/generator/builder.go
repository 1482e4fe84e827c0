package generator

import (
	"github.com/KirkDiggler/dg-generator/internal/catalog"
	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/footnotes"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
)

// stage takes a character value and returns the updated value. Stages
// clone before mutating so earlier snapshots stay untouched.
type stage func(deltagreen.Character) (deltagreen.Character, error)

// builder holds the per-character state shared by the pipeline stages
type builder struct {
	catalog    catalog.Catalog
	src        *random.Source
	notes      *footnotes.Registry
	profession *deltagreen.Profession
	opts       Options

	// damage records the trauma categories applied, in application order
	damage []DamageCategory
}

func (b *builder) stages() []stage {
	stages := []stage{
		b.applyDemographics,
		b.applyAttributes,
		b.applySkills,
	}
	if b.opts.Veterancy {
		stages = append(stages, b.applyVeterancy, b.applyDecline)
	}
	if b.opts.Damage {
		stages = append(stages, b.applyDamage)
	}
	stages = append(stages, b.applyDerived)
	if b.opts.Equip {
		stages = append(stages, b.applyEquipment)
	}
	return append(stages, b.applyFootnotes)
}

// run applies every stage in order. A roller failure during a stage fails
// the run even when the stage itself succeeded.
func (b *builder) run(char deltagreen.Character) (deltagreen.Character, error) {
	for _, s := range b.stages() {
		next, err := s(char)
		if err == nil {
			err = b.src.Err()
		}
		if err != nil {
			return deltagreen.Character{}, err
		}
		char = next
	}
	return char, nil
}

// applyFootnotes flattens the registry into the record
func (b *builder) applyFootnotes(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()
	c.Footnotes = b.notes.Notes()
	c.FootnoteLines = b.notes.Render(deltagreen.FootnoteLineWidth, deltagreen.MaxFootnoteLines)
	return c, nil
}
