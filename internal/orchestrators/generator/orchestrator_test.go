package generator

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dg-generator/internal/catalog"
	catalogmock "github.com/KirkDiggler/dg-generator/internal/catalog/mock"
	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/pkg/clock"
	"github.com/KirkDiggler/dg-generator/internal/pkg/idgen"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
	characterrepo "github.com/KirkDiggler/dg-generator/internal/repositories/character"
	charactermock "github.com/KirkDiggler/dg-generator/internal/repositories/character/mock"
	"github.com/KirkDiggler/dg-generator/internal/testutils"
)

var testNow = time.Date(2024, time.October, 31, 23, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *charactermock.MockRepository
	mockCatalog *catalogmock.MockCatalog
	catalog     *catalog.Store
	ctx         context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockCatalog = catalogmock.NewMockCatalog(s.ctrl)
	s.ctx = context.Background()

	store, err := catalog.LoadEmbedded()
	s.Require().NoError(err)
	s.catalog = store
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newService(seed uint64, opts ...func(*Config)) Service {
	cfg := &Config{
		Catalog:     s.catalog,
		Roller:      random.NewSeededRoller(seed),
		IDGenerator: idgen.NewSequential("char"),
		Clock:       clock.NewFixed(testNow),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	svc, err := New(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) TestNewValidation() {
	testCases := []struct {
		name   string
		cfg    *Config
		errMsg string
	}{
		{name: "nil config", cfg: nil, errMsg: "config cannot be nil"},
		{name: "missing catalog", cfg: &Config{Roller: random.NewSeededRoller(1), IDGenerator: idgen.NewUUID("")}, errMsg: "Catalog"},
		{name: "missing roller", cfg: &Config{Catalog: s.catalog, IDGenerator: idgen.NewUUID("")}, errMsg: "Roller"},
		{
			name: "negative ttl",
			cfg: &Config{
				Catalog: s.catalog, Roller: random.NewSeededRoller(1),
				IDGenerator: idgen.NewUUID(""), TTL: -time.Minute,
			},
			errMsg: "TTL",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := New(tc.cfg)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateFederalAgentAtBaseAge() {
	for seed := uint64(1); seed <= 25; seed++ {
		svc := s.newService(seed)
		out, err := svc.Generate(s.ctx, &GenerateInput{
			ProfessionID: "Federal Agent",
			Sex:          deltagreen.SexFemale,
			Options:      Options{MinAge: 25, MaxAge: 25},
		})
		s.Require().NoError(err)
		char := out.Character

		s.Equal(25, char.Age)
		s.Equal("Federal Agent", char.Profession)
		s.Equal("char_1", char.ID)
		s.Equal(testNow, char.Created)
		s.Empty(char.Weapons)
		s.Empty(char.DamageNarrative)

		for _, name := range []string{"humint", "unarmed combat"} {
			score, ok := char.Skills.Score(name)
			s.Require().True(ok)
			if score != 60 {
				// only a bonus boost may move a fixed value
				s.Equal(80, score, "%s seed %d", name, seed)
				s.Contains(char.BonusSkills, name)
			}
		}

		s.Require().Len(char.Bonds, 3)
		for i, bond := range char.Bonds {
			s.Equal(char.Attributes.Charisma, bond, "bond %d", i)
		}
		s.Contains(out.Fields, "bond2")
		s.NotContains(out.Fields, "bond3")
		s.Equal("X", out.Fields["female"])
	}
}

func (s *OrchestratorTestSuite) TestAttributesAreAPoolPermutation() {
	for seed := uint64(1); seed <= 200; seed++ {
		svc := s.newService(seed)
		out, err := svc.Generate(s.ctx, &GenerateInput{
			ProfessionID: "historian",
			Options:      Options{MinAge: 30, MaxAge: 30},
		})
		s.Require().NoError(err)

		values := out.Character.Attributes.Values()
		sort.Sort(sort.Reverse(sort.IntSlice(values)))

		fixed := false
		for _, pool := range deltagreen.StatPools {
			if assert.ObjectsAreEqual(pool, values) {
				fixed = true
			}
		}
		if !fixed {
			for _, v := range values {
				s.GreaterOrEqual(v, 3)
				s.LessOrEqual(v, 18)
			}
		}
	}
}

func (s *OrchestratorTestSuite) TestBonusSkillsStayWithinLimit() {
	for seed := uint64(1); seed <= 100; seed++ {
		svc := s.newService(seed)
		out, err := svc.Generate(s.ctx, &GenerateInput{ProfessionID: "soldier"})
		s.Require().NoError(err)

		char := out.Character
		s.Len(char.BonusSkills, deltagreen.BonusSkillCount)
		for _, name := range char.BonusSkills {
			score, ok := char.Skills.Score(name)
			s.True(ok)
			s.LessOrEqual(score, deltagreen.BonusSkillLimit, "%s seed %d", name, seed)
		}
	}
}

func (s *OrchestratorTestSuite) TestGenerateDeterministicForSeed() {
	input := &GenerateInput{
		ProfessionID: "special_operator",
		Options:      Options{Veterancy: true, Damage: true, Equip: true},
	}

	first, err := s.newService(42).Generate(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.newService(42).Generate(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(first.Fields, second.Fields)
}

func (s *OrchestratorTestSuite) TestGenerateEquipped() {
	svc := s.newService(7)
	out, err := svc.Generate(s.ctx, &GenerateInput{
		ProfessionID: "special_operator",
		Options:      Options{Equip: true, Label: "Operator", Employer: "JSOC"},
	})
	s.Require().NoError(err)

	char := out.Character
	s.Equal("Operator", char.Profession)
	s.Equal("JSOC", char.Employer)
	s.Require().NotEmpty(char.Weapons)
	s.LessOrEqual(len(char.Weapons), deltagreen.MaxWeaponSlots)
	s.Equal("Unarmed", char.Weapons[0].Name)
	s.LessOrEqual(len(char.Gear), deltagreen.MaxGearLines)
	s.Contains(char.Gear, "Military body armor (Armor 4)")
	s.Equal(out.Fields["weapon1_name"], "Unarmed")
	s.LessOrEqual(len(char.FootnoteLines), deltagreen.MaxFootnoteLines)
	s.Len(char.Footnotes, len(dedupeNotes(char.Footnotes)))
}

func (s *OrchestratorTestSuite) TestGenerateErrors() {
	svc := s.newService(1)

	testCases := []struct {
		name  string
		input *GenerateInput
		check func(error) bool
	}{
		{name: "nil input", input: nil, check: errors.IsInvalidArgument},
		{name: "no profession", input: &GenerateInput{}, check: errors.IsInvalidArgument},
		{name: "blank profession", input: &GenerateInput{ProfessionID: "  "}, check: errors.IsInvalidArgument},
		{name: "unknown profession", input: &GenerateInput{ProfessionID: "astronaut"}, check: errors.IsNotFound},
		{
			name:  "unknown sex",
			input: &GenerateInput{ProfessionID: "nurse", Sex: "other"},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "inverted age range",
			input: &GenerateInput{ProfessionID: "nurse", Options: Options{MinAge: 50, MaxAge: 30}},
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := svc.Generate(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), err.Error())
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateValidationFields() {
	svc := s.newService(1)

	testCases := []struct {
		name  string
		input *GenerateInput
		field string
	}{
		{name: "missing profession", input: &GenerateInput{}, field: "ProfessionID"},
		{
			name:  "negative min age",
			input: &GenerateInput{ProfessionID: "nurse", Options: Options{MinAge: -3}},
			field: "MinAge",
		},
		{
			name:  "max age beyond limit",
			input: &GenerateInput{ProfessionID: "nurse", Options: Options{MaxAge: deltagreen.MaxCharacterAge + 1}},
			field: "MaxAge",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := svc.Generate(s.ctx, tc.input)
			s.Require().Error(err)

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok, err.Error())
			s.Contains(fields, tc.field)
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateBatch() {
	s.Run("persists every character in order", func() {
		svc := s.newService(3, func(cfg *Config) {
			cfg.Repository = s.mockRepo
			cfg.TTL = time.Hour
		})

		var stored []string
		s.mockRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
				s.Equal(time.Hour, input.TTL)
				s.Equal("char_1", input.Character.BatchID)
				stored = append(stored, input.Character.ID)
				return &characterrepo.CreateOutput{Character: input.Character}, nil
			}).
			Times(4)

		out, err := svc.GenerateBatch(s.ctx, &GenerateBatchInput{
			ProfessionIDs: []string{"nurse", "astronaut", "physician"},
			Count:         2,
			Persist:       true,
		})
		s.Require().NoError(err)

		s.Equal("char_1", out.BatchID)
		s.Equal([]string{"astronaut"}, out.Skipped)
		s.Require().Len(out.Characters, 4)
		s.Equal("nurse", out.Characters[0].ProfessionID)
		s.Equal("physician", out.Characters[3].ProfessionID)
		s.Equal(deltagreen.SexMale, out.Characters[0].Sex)
		s.Equal(deltagreen.SexFemale, out.Characters[1].Sex)
		s.Equal([]string{"char_2", "char_3", "char_4", "char_5"}, stored)
	})

	s.Run("uses number to generate by default", func() {
		svc := s.newService(3)
		out, err := svc.GenerateBatch(s.ctx, &GenerateBatchInput{
			ProfessionIDs: []string{"anthropologist"},
			Sex:           deltagreen.SexFemale,
		})
		s.Require().NoError(err)
		s.Len(out.Characters, 8)
		for _, char := range out.Characters {
			s.Equal(deltagreen.SexFemale, char.Sex)
		}
	})

	s.Run("persistence needs a repository", func() {
		svc := s.newService(3)
		_, err := svc.GenerateBatch(s.ctx, &GenerateBatchInput{Persist: true})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("repository failure aborts the batch", func() {
		svc := s.newService(3, func(cfg *Config) { cfg.Repository = s.mockRepo })
		s.mockRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("redis down"))

		_, err := svc.GenerateBatch(s.ctx, &GenerateBatchInput{
			ProfessionIDs: []string{"nurse"},
			Count:         3,
			Persist:       true,
		})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestGetCharacterAndListBatch() {
	svc := s.newService(1, func(cfg *Config) { cfg.Repository = s.mockRepo })
	stored := &deltagreen.Character{ID: "char_9", Name: "MARSH, Dana", Sex: deltagreen.SexFemale}

	s.Run("get", func() {
		s.mockRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{ID: "char_9"}).
			Return(&characterrepo.GetOutput{Character: stored}, nil)

		out, err := svc.GetCharacter(s.ctx, &GetCharacterInput{ID: "char_9"})
		s.Require().NoError(err)
		s.Equal("MARSH, Dana", out.Fields["name"])
	})

	s.Run("empty batch is not found", func() {
		s.mockRepo.EXPECT().
			ListByBatch(s.ctx, characterrepo.ListByBatchInput{BatchID: "b1"}).
			Return(&characterrepo.ListByBatchOutput{}, nil)

		_, err := svc.ListBatch(s.ctx, &ListBatchInput{BatchID: "b1"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("without repository", func() {
		_, err := s.newService(1).GetCharacter(s.ctx, &GetCharacterInput{ID: "char_9"})
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *OrchestratorTestSuite) TestPublishesEvents() {
	bus := events.NewBus()
	var generated, damaged int
	bus.SubscribeFunc(EventCharacterGenerated, 0, func(_ context.Context, e events.Event) error {
		generated++
		s.Equal("character", e.Source().GetType())
		return nil
	})
	bus.SubscribeFunc(EventCharacterDamaged, 0, func(_ context.Context, _ events.Event) error {
		damaged++
		return nil
	})

	svc := s.newService(11, func(cfg *Config) { cfg.EventBus = bus })
	out, err := svc.GenerateBatch(s.ctx, &GenerateBatchInput{
		ProfessionIDs: []string{"soldier"},
		Count:         30,
		Options:       Options{Damage: true},
	})
	s.Require().NoError(err)

	total := 0
	for _, char := range out.Characters {
		total += len(char.DamageNarrative)
	}
	s.Equal(30, generated)
	s.Equal(total, damaged)
}

func (s *OrchestratorTestSuite) TestListProfessions() {
	out, err := s.newService(1).ListProfessions(s.ctx, &ListProfessionsInput{})
	s.Require().NoError(err)
	s.Equal(len(s.catalog.Professions()), len(out.Professions))
}

func (s *OrchestratorTestSuite) TestListProfessionsFromCatalog() {
	professions := []*deltagreen.Profession{
		{ID: "archivist", Label: "Archivist"},
		{ID: "pilot", Label: "Pilot"},
	}
	s.mockCatalog.EXPECT().Professions().Return(professions)

	svc := s.newService(1, func(cfg *Config) { cfg.Catalog = s.mockCatalog })
	out, err := svc.ListProfessions(s.ctx, &ListProfessionsInput{})
	s.Require().NoError(err)
	s.Equal(professions, out.Professions)
}

func (s *OrchestratorTestSuite) TestGenerateKeepsCatalogErrorCode() {
	s.mockCatalog.EXPECT().
		Profession("archivist").
		Return(nil, errors.NotFoundf("profession %q not found", "archivist"))

	svc := s.newService(1, func(cfg *Config) { cfg.Catalog = s.mockCatalog })
	_, err := svc.Generate(s.ctx, &GenerateInput{ProfessionID: "archivist"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("failed to resolve profession", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestRollerFailureReturnsError() {
	for _, after := range []int{0, 3, 40} {
		s.Run(fmt.Sprintf("fails after %d rolls", after), func() {
			svc := s.newService(1, func(cfg *Config) {
				cfg.Roller = &testutils.FailingRoller{After: after, Err: fmt.Errorf("entropy source closed")}
			})

			out, err := svc.Generate(s.ctx, &GenerateInput{ProfessionID: "nurse"})
			s.Require().Error(err)
			s.Nil(out)
			s.Equal(errors.CodeUnavailable, errors.GetCode(err), err.Error())
		})
	}
}

func dedupeNotes(notes []deltagreen.Footnote) map[string]bool {
	seen := map[string]bool{}
	for _, n := range notes {
		seen[n.Text] = true
	}
	return seen
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
