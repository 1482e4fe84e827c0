package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dg-generator/internal/catalog"
	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/footnotes"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
	"github.com/KirkDiggler/dg-generator/internal/testutils"
)

type BuilderTestSuite struct {
	suite.Suite
	cfg     *catalog.Config
	sources []*random.Source
}

func (s *BuilderTestSuite) SetupTest() {
	s.cfg = testutils.CreateTestCatalogConfig()
	s.sources = nil
}

// TearDownTest fails a test whose scripted rolls did not fit the dice the
// code asked for.
func (s *BuilderTestSuite) TearDownTest() {
	for _, src := range s.sources {
		s.NoError(src.Err())
	}
}

func (s *BuilderTestSuite) newBuilder(roller *testutils.ScriptedRoller, opts Options) *builder {
	store, err := catalog.New(s.cfg)
	s.Require().NoError(err)

	var src *random.Source
	if roller != nil {
		src = random.New(roller)
	} else {
		src = random.New(random.NewSeededRoller(99))
	}
	s.sources = append(s.sources, src)

	return &builder{
		catalog:    store,
		src:        src,
		notes:      footnotes.New(),
		profession: s.cfg.Professions[0],
		opts:       opts.withDefaults(),
	}
}

func (s *BuilderTestSuite) TestAttributesUseChosenPool() {
	// d4 = 2 picks the second fixed pool; every shuffle swap rolls 1
	roller := testutils.NewScriptedRoller(2)
	b := s.newBuilder(roller, Options{})

	c, err := b.applyAttributes(deltagreen.Character{})
	s.Require().NoError(err)

	s.Equal([]int{14, 12, 11, 10, 10, 15}, c.Attributes.Values())
	s.Equal(4, roller.Calls[0])
}

func (s *BuilderTestSuite) TestAttributesRolledPool() {
	// d4 = 4 rolls six 4d6-keep-3 scores
	values := []int{4}
	for i := 0; i < 6; i++ {
		values = append(values, 6, 5, 4, 1)
	}
	b := s.newBuilder(testutils.NewScriptedRoller(values...), Options{})

	c, err := b.applyAttributes(deltagreen.Character{})
	s.Require().NoError(err)

	for _, v := range c.Attributes.Values() {
		s.Equal(15, v)
	}
}

func (s *BuilderTestSuite) TestSkillProfile() {
	b := s.newBuilder(nil, Options{})
	in := deltagreen.Character{Attributes: deltagreen.Attributes{Charisma: 13}}

	c, err := b.applySkills(in)
	s.Require().NoError(err)

	s.Nil(in.Skills, "input must not be mutated")
	s.Equal([]int{13, 13, 13}, c.Bonds)
	s.Len(c.BonusSkills, deltagreen.BonusSkillCount)

	law, _ := c.Skills.Score("law")
	s.Contains([]int{30, 50, 70}, law)

	sampled := 0
	for name, base := range b.profession.Skills.Possible {
		if score, _ := c.Skills.Score(name); score >= base {
			sampled++
		}
	}
	s.GreaterOrEqual(sampled, b.profession.Skills.PossibleCount)
}

func (s *BuilderTestSuite) TestSkillProfileSamplingViolation() {
	s.cfg.Professions[0].Skills.PossibleCount = 5
	b := s.newBuilder(nil, Options{})

	_, err := b.applySkills(deltagreen.Character{})
	s.Require().Error(err)
	s.Contains(err.Error(), "FAILED_PRECONDITION")
}

func (s *BuilderTestSuite) TestDeclineAtEightyFive() {
	b := s.newBuilder(nil, Options{})
	in := deltagreen.Character{
		Age: 85,
		Attributes: deltagreen.Attributes{
			Strength: 10, Constitution: 10, Dexterity: 10,
			Intelligence: 12, Power: 11, Charisma: 9,
		},
	}

	c, err := b.applyDecline(in)
	s.Require().NoError(err)

	physical := func(a deltagreen.Attributes) int {
		return a.Strength + a.Constitution + a.Dexterity
	}
	s.Equal(16, physical(in.Attributes)-physical(c.Attributes))
	s.Equal(in.Attributes.Intelligence, c.Attributes.Intelligence)
	s.Equal(in.Attributes.Power, c.Attributes.Power)
	s.Equal(in.Attributes.Charisma, c.Attributes.Charisma)
	for _, attr := range deltagreen.PhysicalAttributes {
		s.GreaterOrEqual(c.Attributes.Get(attr), 1)
	}
}

func (s *BuilderTestSuite) TestDeclineForfeitsAtFloor() {
	b := s.newBuilder(nil, Options{})
	c, err := b.applyDecline(deltagreen.Character{
		Age:        95,
		Attributes: deltagreen.Attributes{Strength: 3, Constitution: 1, Dexterity: 2},
	})
	s.Require().NoError(err)

	s.Equal(1, c.Attributes.Strength)
	s.Equal(1, c.Attributes.Constitution)
	s.Equal(1, c.Attributes.Dexterity)
}

func (s *BuilderTestSuite) TestVeterancyImprovesTrainedSkills() {
	roller := testutils.NewScriptedRoller()
	roller.Default = 100
	b := s.newBuilder(roller, Options{})

	in := deltagreen.Character{
		Age: 30,
		Skills: deltagreen.Skills{
			"humint":      deltagreen.Score(60),
			"forensics":   deltagreen.Score(50),
			"swim":        deltagreen.Score(20),
			"law":         deltagreen.Score(0),
			"dodge":       deltagreen.Score(30),
			"craft1label": deltagreen.Label("Electrician"),
		},
		BonusSkills: []string{"dodge"},
	}

	c, err := b.applyVeterancy(in)
	s.Require().NoError(err)

	checks := skillChecks(30)
	s.Equal(deltagreen.Score(60+checks), c.Skills["humint"])
	s.Equal(deltagreen.Score(50+checks), c.Skills["forensics"])
	s.Equal(deltagreen.Score(30+checks), c.Skills["dodge"])
	s.Equal(deltagreen.Score(20), c.Skills["swim"], "untrained skills do not improve")
	s.Equal(deltagreen.Score(0), c.Skills["law"], "zero skills do not improve")
	s.Equal(deltagreen.Score(60), in.Skills["humint"], "input must not be mutated")
}

func (s *BuilderTestSuite) TestVeterancyRollMustBeatScore() {
	roller := testutils.NewScriptedRoller()
	roller.Default = 60
	b := s.newBuilder(roller, Options{})

	c, err := b.applyVeterancy(deltagreen.Character{
		Age:    40,
		Skills: deltagreen.Skills{"humint": deltagreen.Score(60), "alertness": deltagreen.Score(59)},
	})
	s.Require().NoError(err)

	s.Equal(deltagreen.Score(60), c.Skills["humint"])
	s.Equal(deltagreen.Score(60), c.Skills["alertness"])
}

func (s *BuilderTestSuite) baseCharacter() deltagreen.Character {
	return deltagreen.Character{
		Attributes: deltagreen.Attributes{
			Strength: 12, Constitution: 12, Dexterity: 12,
			Intelligence: 12, Power: 12, Charisma: 2,
		},
		Skills: deltagreen.DefaultSkills(),
		Bonds:  []int{2, 2, 2},
	}
}

func (s *BuilderTestSuite) TestDamageCategories() {
	s.Run("extreme violence clamps", func() {
		b := s.newBuilder(nil, Options{})
		c, err := b.applyDamageCategory(s.baseCharacter(), DamageExtremeViolence)
		s.Require().NoError(err)

		s.Equal(1, c.Attributes.Charisma)
		s.Equal([]int{0, 0, 0}, c.Bonds)
		s.Equal(3, c.ViolenceMarks)
		s.Equal(5, c.SanityLoss)
		s.Equal(deltagreen.Score(20), c.Skills[deltagreen.SkillOccult])
	})

	s.Run("captivity", func() {
		b := s.newBuilder(nil, Options{})
		c, err := b.applyDamageCategory(s.baseCharacter(), DamageCaptivity)
		s.Require().NoError(err)

		s.Equal(9, c.Attributes.Power)
		s.Equal(3, c.HelplessnessMarks)
		s.Len(c.Bonds, 3)
	})

	s.Run("hard experience with captivity removes one bond", func() {
		b := s.newBuilder(nil, Options{})
		c, err := b.applyDamageCategory(s.baseCharacter(), DamageCaptivity)
		s.Require().NoError(err)
		c, err = b.applyDamageCategory(c, DamageHardExperience)
		s.Require().NoError(err)

		s.Len(c.Bonds, 2)
		s.Equal(10, c.SanityLoss)
		s.Len(c.BonusSkills, hardExperienceBoosts)
		for _, name := range c.BonusSkills {
			score, _ := c.Skills.Score(name)
			s.LessOrEqual(score, hardExperienceLimit)
		}
	})

	s.Run("unnatural", func() {
		b := s.newBuilder(nil, Options{})
		in := s.baseCharacter()
		delete(in.Skills, deltagreen.SkillUnnatural)

		c, err := b.applyDamageCategory(in, DamageUnnatural)
		s.Require().NoError(err)

		s.Equal(deltagreen.Score(10), c.Skills[deltagreen.SkillUnnatural])
		s.Equal(deltagreen.Score(30), c.Skills[deltagreen.SkillOccult])
		s.Equal(12, c.SanityLoss)
		s.Contains(deltagreen.Disorders, c.Disorder)
	})
}

func (s *BuilderTestSuite) TestDamageEventFrequency() {
	const trials = 5000

	b := s.newBuilder(nil, Options{})
	zero := 0
	for i := 0; i < trials; i++ {
		b.damage = nil
		b.notes = footnotes.New()

		c, err := b.applyDamage(s.baseCharacter())
		s.Require().NoError(err)
		if len(b.damage) == 0 {
			zero++
			s.Empty(c.DamageNarrative)
			continue
		}

		s.Len(c.DamageNarrative, len(b.damage))
		seen := map[DamageCategory]bool{}
		for _, category := range b.damage {
			s.False(seen[category], "category applied twice")
			seen[category] = true
		}
	}

	s.InDelta(0.80, float64(zero)/trials, 0.03)
}

func (s *BuilderTestSuite) TestDerived() {
	b := s.newBuilder(nil, Options{})

	c, err := b.applyDerived(deltagreen.Character{
		Attributes: deltagreen.Attributes{Strength: 13, Constitution: 12, Power: 11},
		SanityLoss: 16,
	})
	s.Require().NoError(err)

	s.Equal(12, c.HitPoints)
	s.Equal(11, c.Willpower)
	s.Equal(39, c.Sanity)
	s.Equal(28, c.BreakingPoint)
	s.Equal(1, c.DamageBonus)
}

func (s *BuilderTestSuite) TestHitPointsRoundHalfToEven() {
	testCases := []struct {
		name         string
		strength     int
		constitution int
		want         int
	}{
		{"even sum", 14, 12, 13},
		{"13 and 12", 13, 12, 12},
		{"15 and 10", 15, 10, 12},
		{"17 and 8", 17, 8, 12},
		{"half rounds up to even", 13, 14, 14},
		{"21 rounds down", 10, 11, 10},
		{"23 rounds up", 11, 12, 12},
	}

	b := s.newBuilder(nil, Options{})
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := b.applyDerived(deltagreen.Character{
				Attributes: deltagreen.Attributes{
					Strength:     tc.strength,
					Constitution: tc.constitution,
					Power:        10,
				},
			})
			s.Require().NoError(err)
			s.Equal(tc.want, c.HitPoints)
		})
	}
}

func (s *BuilderTestSuite) TestFeaturesFollowFinalAttributes() {
	s.cfg.Features = map[deltagreen.Attribute]map[int][]string{
		deltagreen.Strength: {17: {"Powerful"}},
		deltagreen.Charisma: {5: {"Repellent"}},
	}
	b := s.newBuilder(nil, Options{})

	c, err := b.applyDerived(deltagreen.Character{
		Attributes: deltagreen.Attributes{Strength: 17, Charisma: 5, Power: 10},
	})
	s.Require().NoError(err)

	s.Equal(map[deltagreen.Attribute]string{
		deltagreen.Strength: "Powerful",
		deltagreen.Charisma: "Repellent",
	}, c.Features)
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func TestSkillChecks(t *testing.T) {
	testCases := []struct {
		age  int
		want int
	}{
		{age: 20, want: 0},
		{age: 25, want: 0},
		{age: 26, want: 7},
		{age: 30, want: 20},
		{age: 35, want: 31},
		{age: 45, want: 45},
		{age: 55, want: 52},
		{age: 85, want: 58},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, skillChecks(tc.age), "age %d", tc.age)
	}
}

func TestDeclinePoints(t *testing.T) {
	want := map[int]int{39: 0, 40: 1, 49: 1, 50: 2, 60: 4, 70: 8, 85: 16, 90: 32, 104: 32}
	for age, points := range want {
		assert.Equal(t, points, declinePoints(age), "age %d", age)
	}
}

func TestAllocateBonus(t *testing.T) {
	t.Run("respects the limit and discards", func(t *testing.T) {
		skills := deltagreen.Skills{
			"firearms":    deltagreen.Score(70),
			"humint":      deltagreen.Score(60),
			"craft1value": deltagreen.Label("Electrician"),
		}
		applied := allocateBonus(skills, []string{"firearms", "craft1value", "humint", "humint", "law"}, 3, 80)

		assert.Equal(t, []string{"humint", "law"}, applied)
		assert.Equal(t, deltagreen.Score(70), skills["firearms"])
		assert.Equal(t, deltagreen.Score(80), skills["humint"])
		assert.Equal(t, deltagreen.Score(20), skills["law"])
		assert.True(t, skills["craft1value"].IsLabel())
	})

	t.Run("duplicates boost twice", func(t *testing.T) {
		skills := deltagreen.Skills{"search": deltagreen.Score(20)}
		applied := allocateBonus(skills, []string{"search", "search", "search"}, 2, 80)

		assert.Equal(t, []string{"search", "search"}, applied)
		assert.Equal(t, deltagreen.Score(60), skills["search"])
	})

	t.Run("higher limit", func(t *testing.T) {
		skills := deltagreen.Skills{"occult": deltagreen.Score(70)}
		applied := allocateBonus(skills, []string{"occult"}, 5, 90)

		require.Len(t, applied, 1)
		assert.Equal(t, deltagreen.Score(90), skills["occult"])
	})
}
