package generator

import (
	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
)

// Options tune a single generation run
type Options struct {
	// MinAge and MaxAge bound the uniform age roll. Zero picks the default.
	MinAge int
	MaxAge int

	// Veterancy applies age-based skill improvement and physical decline
	Veterancy bool

	// Damage rolls for traumatic "damaged veteran" events
	Damage bool

	// Equip resolves the profession's equipment kit
	Equip bool

	// Label and Employer override the profession's display values
	Label    string
	Employer string
}

func (o Options) withDefaults() Options {
	if o.MinAge == 0 {
		o.MinAge = deltagreen.DefaultMinAge
	}
	if o.MaxAge == 0 {
		o.MaxAge = deltagreen.DefaultMaxAge
	}
	return o
}

// GenerateInput defines the request for generating one character
type GenerateInput struct {
	// ProfessionID is a profession id or display label
	ProfessionID string

	// Sex of the character; empty picks one at random
	Sex deltagreen.Sex

	Options Options
}

// GenerateOutput defines the response for generating one character
type GenerateOutput struct {
	Character *deltagreen.Character

	// Fields is the flat record handed to sheet renderers
	Fields map[string]string
}

// GenerateBatchInput defines the request for generating many characters
type GenerateBatchInput struct {
	// ProfessionIDs restricts the batch; empty means every profession
	ProfessionIDs []string

	// Count overrides each profession's number-to-generate when positive
	Count int

	// Sex forces every character's sex; empty alternates male and female
	Sex deltagreen.Sex

	Options Options

	// Persist stores every record and a batch index in the repository
	Persist bool
}

// GenerateBatchOutput defines the response for a batch
type GenerateBatchOutput struct {
	BatchID    string
	Characters []*deltagreen.Character

	// Skipped lists requested professions that were not in the catalog
	Skipped []string
}

// GetCharacterInput defines the request for loading a stored character
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the response for loading a stored character
type GetCharacterOutput struct {
	Character *deltagreen.Character
	Fields    map[string]string
}

// ListBatchInput defines the request for loading a stored batch
type ListBatchInput struct {
	BatchID string
}

// ListBatchOutput defines the response for loading a stored batch
type ListBatchOutput struct {
	Characters []*deltagreen.Character
}

// ListProfessionsInput defines the request for listing professions
type ListProfessionsInput struct{}

// ListProfessionsOutput defines the response for listing professions
type ListProfessionsOutput struct {
	Professions []*deltagreen.Profession
}
