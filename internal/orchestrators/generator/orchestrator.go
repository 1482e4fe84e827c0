// Package generator implements the character builder: it threads a
// Character value through demographics, attributes, skills, veterancy,
// trauma, derived values and equipment.
package generator

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dg-generator/internal/catalog"
	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/footnotes"
	"github.com/KirkDiggler/dg-generator/internal/pkg/clock"
	"github.com/KirkDiggler/dg-generator/internal/pkg/idgen"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
	characterrepo "github.com/KirkDiggler/dg-generator/internal/repositories/character"
)

// Service defines the interface for character generation
type Service interface {
	// Generate builds one character.
	// Returns errors.NotFound for unknown professions
	// Returns errors.InvalidArgument for bad options
	// Returns errors.FailedPrecondition when profession data cannot be sampled
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// GenerateBatch builds characters for many professions in catalog order
	GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchOutput, error)

	// GetCharacter and ListBatch read persisted records.
	// Both return errors.FailedPrecondition when no repository is configured.
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListBatch(ctx context.Context, input *ListBatchInput) (*ListBatchOutput, error)

	ListProfessions(ctx context.Context, input *ListProfessionsInput) (*ListProfessionsOutput, error)
}

// Config holds the dependencies for the generator
type Config struct {
	Catalog     catalog.Catalog
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Repository is optional; without it batches cannot be persisted
	Repository characterrepo.Repository

	// EventBus is optional; generation events are published when set
	EventBus events.EventBus

	// TTL applies to persisted records
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog  catalog.Catalog
	roller   dice.Roller
	idGen    idgen.Generator
	clock    clock.Clock
	repo     characterrepo.Repository
	eventBus events.EventBus
	ttl      time.Duration
}

// New creates a new generator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		catalog:  cfg.Catalog,
		roller:   cfg.Roller,
		idGen:    cfg.IDGenerator,
		clock:    c,
		repo:     cfg.Repository,
		eventBus: cfg.EventBus,
		ttl:      cfg.TTL,
	}, nil
}

func validateOptions(opts Options) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("MinAge", opts.MinAge, 1, deltagreen.MaxCharacterAge, vb)
	errors.ValidateRange("MaxAge", opts.MaxAge, 1, deltagreen.MaxCharacterAge, vb)
	if opts.MaxAge < opts.MinAge {
		vb.Fieldf("MaxAge", "must be at least MinAge (%d)", opts.MinAge)
	}

	return vb.Build()
}

func validateSex(sex deltagreen.Sex) error {
	switch sex {
	case "", deltagreen.SexMale, deltagreen.SexFemale:
		return nil
	}
	return errors.InvalidArgumentf("unknown sex %q", sex).WithMeta("sex", string(sex))
}

// Generate builds one character
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ProfessionID", input.ProfessionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := validateSex(input.Sex); err != nil {
		return nil, err
	}
	opts := input.Options.withDefaults()
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	profession, err := o.catalog.Profession(input.ProfessionID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve profession")
	}

	char, err := o.build(ctx, profession, input.Sex, opts)
	if err != nil {
		return nil, err
	}

	return &GenerateOutput{
		Character: char,
		Fields:    char.Fields(),
	}, nil
}

// build runs the full pipeline for one character. An empty sex is picked
// at random.
func (o *orchestrator) build(ctx context.Context, profession *deltagreen.Profession, sex deltagreen.Sex, opts Options) (*deltagreen.Character, error) {
	src := random.New(o.roller)
	if sex == "" {
		sex = deltagreen.SexMale
		if src.Percent(50) {
			sex = deltagreen.SexFemale
		}
	}

	b := &builder{
		catalog:    o.catalog,
		src:        src,
		notes:      footnotes.New(),
		profession: profession,
		opts:       opts,
	}

	char, err := b.run(deltagreen.Character{
		ID:      o.idGen.Generate(),
		Created: o.clock.Now(),
		Sex:     sex,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate %s", profession.ID)
	}

	slog.Info("Generated character",
		"character_id", char.ID,
		"profession", profession.ID,
		"age", char.Age,
		"damage_events", len(b.damage),
		"weapons", len(char.Weapons),
	)

	o.publishGenerated(ctx, &char, b.damage)

	return &char, nil
}

// GenerateBatch builds characters for every requested profession
func (o *orchestrator) GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Count < 0 {
		return nil, errors.InvalidArgumentf("count cannot be negative: %d", input.Count)
	}
	if err := validateSex(input.Sex); err != nil {
		return nil, err
	}
	opts := input.Options.withDefaults()
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if input.Persist && o.repo == nil {
		return nil, errors.FailedPrecondition("persistence is not configured")
	}

	professions, skipped, err := o.resolveProfessions(input.ProfessionIDs)
	if err != nil {
		return nil, err
	}

	output := &GenerateBatchOutput{
		BatchID: o.idGen.Generate(),
		Skipped: skipped,
	}

	for _, profession := range professions {
		count := profession.NumberToGenerate
		if input.Count > 0 {
			count = input.Count
		}

		for i := 0; i < count; i++ {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "batch cancelled")
			}

			sex := input.Sex
			if sex == "" {
				sex = deltagreen.SexMale
				if i%2 == 1 {
					sex = deltagreen.SexFemale
				}
			}

			char, err := o.build(ctx, profession, sex, opts)
			if err != nil {
				return nil, err
			}
			char.BatchID = output.BatchID

			if input.Persist {
				if _, err := o.repo.Create(ctx, characterrepo.CreateInput{
					Character: char,
					TTL:       o.ttl,
				}); err != nil {
					return nil, errors.Wrapf(err, "failed to persist character %s", char.ID)
				}
			}

			output.Characters = append(output.Characters, char)
		}
	}

	slog.Info("Generated batch",
		"batch_id", output.BatchID,
		"characters", len(output.Characters),
		"skipped", len(output.Skipped),
		"persisted", input.Persist,
	)

	return output, nil
}

func (o *orchestrator) resolveProfessions(ids []string) ([]*deltagreen.Profession, []string, error) {
	if len(ids) == 0 {
		return o.catalog.Professions(), nil, nil
	}

	var professions []*deltagreen.Profession
	var skipped []string
	for _, id := range ids {
		p, err := o.catalog.Profession(id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.Warn("Skipping unknown profession", "profession", id)
				skipped = append(skipped, id)
				continue
			}
			return nil, nil, errors.Wrapf(err, "failed to resolve profession %s", id)
		}
		professions = append(professions, p)
	}
	return professions, skipped, nil
}

// GetCharacter loads a persisted character
func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if o.repo == nil {
		return nil, errors.FailedPrecondition("persistence is not configured")
	}

	out, err := o.repo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}

	return &GetCharacterOutput{
		Character: out.Character,
		Fields:    out.Character.Fields(),
	}, nil
}

// ListBatch loads a persisted batch
func (o *orchestrator) ListBatch(ctx context.Context, input *ListBatchInput) (*ListBatchOutput, error) {
	if input == nil || input.BatchID == "" {
		return nil, errors.InvalidArgument("batch ID is required")
	}
	if o.repo == nil {
		return nil, errors.FailedPrecondition("persistence is not configured")
	}

	out, err := o.repo.ListByBatch(ctx, characterrepo.ListByBatchInput{BatchID: input.BatchID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list batch")
	}
	if len(out.Characters) == 0 {
		return nil, errors.NotFoundf("batch %s not found", input.BatchID)
	}

	return &ListBatchOutput{Characters: out.Characters}, nil
}

// ListProfessions returns the catalog's professions
func (o *orchestrator) ListProfessions(_ context.Context, _ *ListProfessionsInput) (*ListProfessionsOutput, error) {
	return &ListProfessionsOutput{Professions: o.catalog.Professions()}, nil
}
