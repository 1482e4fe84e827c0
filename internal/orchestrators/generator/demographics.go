package generator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
)

// applyDemographics picks name, nationality, age and birthday and copies the
// profession's display values.
func (b *builder) applyDemographics(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()

	given, err := random.Choice(b.src, b.catalog.GivenNames(c.Sex))
	if err != nil {
		return c, errors.Wrapf(err, "failed to pick a %s given name", c.Sex)
	}
	surname, err := random.Choice(b.src, b.catalog.Surnames())
	if err != nil {
		return c, errors.Wrap(err, "failed to pick a surname")
	}
	town, err := random.Choice(b.src, b.catalog.Towns())
	if err != nil {
		return c, errors.Wrap(err, "failed to pick a town")
	}

	c.Name = fmt.Sprintf("%s, %s", strings.ToUpper(surname), given)
	c.Nationality = "(U.S.A.) " + town
	c.Age = b.src.Between(b.opts.MinAge, b.opts.MaxAge)

	month, err := random.Choice(b.src, deltagreen.Months)
	if err != nil {
		return c, err
	}
	c.Birthday = fmt.Sprintf("%s %d", month, b.src.Between(1, 28))

	c.ProfessionID = b.profession.ID
	c.Profession = b.profession.Label
	if b.opts.Label != "" {
		c.Profession = b.opts.Label
	}

	c.Employer = b.profession.Employer
	if b.profession.Division != "" {
		c.Employer = strings.TrimPrefix(c.Employer+", "+b.profession.Division, ", ")
	}
	if b.opts.Employer != "" {
		c.Employer = b.opts.Employer
	}

	return c, nil
}
