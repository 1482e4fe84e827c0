package testutils

import (
	"github.com/KirkDiggler/dg-generator/internal/catalog"
	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
)

// Fixture identifiers
const (
	TestProfessionID = "federal_agent"
	TestKitID        = "federal_agent"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "HOLLOWAY, Ruth"
)

// CreateTestProfession returns a profession shaped like the catalog's
// Federal Agent
func CreateTestProfession() *deltagreen.Profession {
	return &deltagreen.Profession{
		ID:               TestProfessionID,
		Label:            "Federal Agent",
		Employer:         "FBI",
		NumberToGenerate: 2,
		Bonds:            3,
		Skills: deltagreen.ProfessionSkills{
			Fixed: deltagreen.Skills{
				"alertness":      deltagreen.Score(50),
				"criminology":    deltagreen.Score(50),
				"firearms":       deltagreen.Score(50),
				"humint":         deltagreen.Score(60),
				"law":            deltagreen.Score(30),
				"unarmed combat": deltagreen.Score(60),
			},
			Possible: map[string]int{
				"accounting": 60,
				"forensics":  50,
				"pharmacy":   50,
			},
			PossibleCount: 1,
			Bonus:         []string{"criminology", "firearms", "humint"},
		},
		EquipmentKit: TestKitID,
	}
}

// CreateTestCatalogConfig returns a small, complete catalog. Callers may
// mutate the returned tables before passing them to catalog.New.
func CreateTestCatalogConfig() *catalog.Config {
	return &catalog.Config{
		Male:        []string{"Arthur", "Walter"},
		Female:      []string{"Ruth", "Dana"},
		Surnames:    []string{"Holloway", "Marsh"},
		Towns:       []string{"Dunwich, MA", "Innsmouth, MA"},
		Professions: []*deltagreen.Profession{CreateTestProfession()},
		Weapons: []*deltagreen.WeaponDefinition{
			{
				ID: "unarmed", Name: "Unarmed", Skill: deltagreen.SkillUnarmedCombat,
				Damage: &deltagreen.Damage{Dice: 1, DieType: 4, Modifier: -1, DamageBonus: true},
			},
			{
				ID: "medium_pistol", Name: "Medium Pistol", Skill: "firearms",
				BaseRange: "15m", Ammo: 15,
				Damage: &deltagreen.Damage{Dice: 1, DieType: 10},
			},
			{
				ID: "shotgun", Name: "Shotgun", Skill: "firearms", BaseRange: "75m", Ammo: 5,
				Damage: &deltagreen.Damage{Dice: 2, DieType: 6, Special: "Shotgun slugs ignore the spread rule"},
			},
		},
		Armor: []*deltagreen.ArmorDefinition{
			{ID: "kevlar_vest", Name: "Kevlar vest", Rating: 3},
		},
		Kits: []*deltagreen.Kit{
			{
				ID: TestKitID,
				Weapons: []deltagreen.WeaponEntry{
					{Type: "unarmed"},
					{Type: "medium_pistol"},
				},
				Armor: []deltagreen.ItemEntry{{Type: "kevlar_vest"}},
				Gear:  []deltagreen.ItemEntry{{Text: "Badge and credentials"}},
			},
		},
		Features: map[deltagreen.Attribute]map[int][]string{},
	}
}

// CreateTestCharacter returns a finished character with sensible defaults
func CreateTestCharacter(id string) *deltagreen.Character {
	return &deltagreen.Character{
		ID:           id,
		Sex:          deltagreen.SexFemale,
		Name:         TestCharacterName,
		ProfessionID: TestProfessionID,
		Profession:   "Federal Agent",
		Employer:     "FBI",
		Nationality:  "(U.S.A.) Dunwich, MA",
		Age:          31,
		Birthday:     "OCT 12",
		Attributes: deltagreen.Attributes{
			Strength: 12, Constitution: 13, Dexterity: 11,
			Intelligence: 15, Power: 10, Charisma: 14,
		},
		HitPoints:     13,
		Willpower:     10,
		Sanity:        50,
		BreakingPoint: 40,
		DamageBonus:   0,
		Skills: deltagreen.Skills{
			"humint":      deltagreen.Score(60),
			"craft1label": deltagreen.Label("Locksmith"),
		},
		Bonds: []int{14, 14, 14},
	}
}
