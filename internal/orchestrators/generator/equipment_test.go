package generator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/footnotes"
	"github.com/KirkDiggler/dg-generator/internal/testutils"
)

func (s *BuilderTestSuite) equippedCharacter() deltagreen.Character {
	return deltagreen.Character{
		DamageBonus: 1,
		Skills: deltagreen.Skills{
			"firearms":       deltagreen.Score(50),
			"unarmed combat": deltagreen.Score(60),
		},
	}
}

func (s *BuilderTestSuite) TestEquipmentFormatsWeapons() {
	b := s.newBuilder(nil, Options{Equip: true})

	c, err := b.applyEquipment(s.equippedCharacter())
	s.Require().NoError(err)

	s.Require().Len(c.Weapons, 2)
	unarmed := c.Weapons[0]
	s.Equal("Unarmed", unarmed.Name)
	s.Equal("60%", unarmed.Skill)
	s.Equal("1D4", unarmed.Damage)

	pistol := c.Weapons[1]
	s.Equal(50, pistol.HitChance)
	s.Equal("15m", pistol.BaseRange)
	s.Equal("15", pistol.Ammo)
	s.Equal("1D10", pistol.Damage)

	s.Equal([]string{"Kevlar vest (Armor 3)", "Badge and credentials"}, c.Gear)
}

func (s *BuilderTestSuite) TestEquipmentWithoutKitIsUnarmed() {
	s.cfg.Professions[0].EquipmentKit = ""
	s.cfg.Weapons = s.cfg.Weapons[1:]
	b := s.newBuilder(nil, Options{Equip: true})

	c, err := b.applyEquipment(s.equippedCharacter())
	s.Require().NoError(err)

	s.Require().Len(c.Weapons, 1)
	s.Equal("Unarmed", c.Weapons[0].Name)
	s.Equal("1D4", c.Weapons[0].Damage)
	s.Empty(c.Gear)
}

func (s *BuilderTestSuite) TestEquipmentUnknownKitIsUnarmed() {
	s.cfg.Professions[0].EquipmentKit = "missing"
	b := s.newBuilder(nil, Options{Equip: true})

	c, err := b.applyEquipment(s.equippedCharacter())
	s.Require().NoError(err)
	s.Len(c.Weapons, 1)
}

func (s *BuilderTestSuite) TestWeaponTreeResolution() {
	s.Run("both expands every member", func() {
		b := s.newBuilder(nil, Options{})
		ids := b.resolveWeapons([]deltagreen.WeaponEntry{
			{Type: "unarmed"},
			{Both: []deltagreen.WeaponEntry{
				{Type: "medium_pistol"},
				{Both: []deltagreen.WeaponEntry{{Type: "shotgun"}, {Type: "knife"}}},
			}},
		})
		s.Equal([]string{"unarmed", "medium_pistol", "shotgun", "knife"}, ids)
	})

	s.Run("one of picks a single alternative", func() {
		// d3 = 2 picks the second alternative
		b := s.newBuilder(testutils.NewScriptedRoller(2), Options{})
		ids := b.resolveWeapons([]deltagreen.WeaponEntry{
			{OneOf: []deltagreen.WeaponEntry{{Type: "a"}, {Type: "b"}, {Type: "c"}}},
		})
		s.Equal([]string{"b"}, ids)
	})

	s.Run("chance gates each entry", func() {
		// 30 passes a 50% gate, 90 fails it, 10 passes the one-of gate
		b := s.newBuilder(testutils.NewScriptedRoller(30, 90, 10, 1), Options{})
		ids := b.resolveWeapons([]deltagreen.WeaponEntry{
			{Type: "shotgun", Chance: 50},
			{Type: "carbine", Chance: 50},
			{Chance: 20, OneOf: []deltagreen.WeaponEntry{{Type: "taser"}, {Type: "spray"}}},
		})
		s.Equal([]string{"shotgun", "taser"}, ids)
	})

	s.Run("a failed gate skips the whole subtree", func() {
		b := s.newBuilder(testutils.NewScriptedRoller(99), Options{})
		ids := b.resolveWeapons([]deltagreen.WeaponEntry{
			{Chance: 50, Both: []deltagreen.WeaponEntry{{Type: "x"}, {Type: "y"}}},
		})
		s.Empty(ids)
	})
}

func (s *BuilderTestSuite) TestWeaponSlotsCapAndSkipUnknown() {
	b := s.newBuilder(nil, Options{})
	ids := []string{"unknown"}
	for i := 0; i < 10; i++ {
		ids = append(ids, "medium_pistol")
	}

	slots := b.weaponSlots(s.equippedCharacter(), ids)
	s.Len(slots, deltagreen.MaxWeaponSlots)
	for _, slot := range slots {
		s.Equal("Medium Pistol", slot.Name)
	}
}

func (s *BuilderTestSuite) TestWeaponFootnotesAreMemoized() {
	s.cfg.Weapons = append(s.cfg.Weapons,
		&deltagreen.WeaponDefinition{
			ID: "rifle", Name: "Rifle", Skill: "firearms", SkillModifier: 20,
			Notes:     "Requires a bipod",
			Lethality: &deltagreen.Lethality{Rating: 10, Special: "Shared rule"},
			Damage:    &deltagreen.Damage{Dice: 1, DieType: 12, Modifier: 2, Special: "Shared rule"},
		},
		&deltagreen.WeaponDefinition{
			ID: "launcher", Name: "Launcher", Skill: "heavy weapons", KillRadius: "10m",
			Lethality: &deltagreen.Lethality{Special: "Shared rule"},
		},
	)
	b := s.newBuilder(nil, Options{})

	slots := b.weaponSlots(s.equippedCharacter(), []string{"rifle", "launcher"})
	s.Require().Len(slots, 2)

	rifle := slots[0]
	s.Equal(70, rifle.HitChance)
	s.Equal([]string{"†"}, rifle.Markers)
	s.Equal("1D12+2‡", rifle.Damage)
	s.Equal("10%‡", rifle.Lethality)

	launcher := slots[1]
	s.Equal("0%", launcher.Skill)
	s.Equal("‡", launcher.Lethality)
	s.Equal("10m", launcher.KillRadius)
	s.Empty(launcher.Damage)

	s.Equal([]deltagreen.Footnote{
		{Symbol: "†", Text: "Requires a bipod"},
		{Symbol: "‡", Text: "Shared rule"},
	}, b.notes.Notes())
}

func (s *BuilderTestSuite) TestGearWrapsAndCaps() {
	long := strings.Repeat("word ", 20)
	kit := &deltagreen.Kit{ID: "heavy"}
	for i := 0; i < 12; i++ {
		kit.Gear = append(kit.Gear, deltagreen.ItemEntry{
			Text:  fmt.Sprintf("Item %d %s", i, long),
			Notes: []string{"Issued by the armory"},
		})
	}
	b := s.newBuilder(nil, Options{})

	lines := b.gearLines(kit)
	s.Len(lines, deltagreen.MaxGearLines)
	for _, line := range lines {
		s.LessOrEqual(len([]rune(line)), deltagreen.GearLineWidth)
	}
	s.True(strings.HasPrefix(lines[0], "Item 0 "))
	s.Equal(1, b.notes.Len(), "the shared note is registered once")
	s.True(strings.HasSuffix(lines[1], "†"))
}

func (s *BuilderTestSuite) TestGearMarkerStaysWithItem() {
	kit := &deltagreen.Kit{ID: "padded"}
	for i := 0; i < 3; i++ {
		kit.Gear = append(kit.Gear, deltagreen.ItemEntry{
			Text:  fmt.Sprintf("Item %d %s", i, strings.Repeat("word ", 20)),
			Notes: []string{"Issued by the armory"},
		})
	}
	b := s.newBuilder(nil, Options{})

	lines := b.gearLines(kit)
	s.Require().Len(lines, 6)
	for i, line := range lines {
		s.NotEqual("†", strings.TrimSpace(line), "line %d holds only a marker", i)
		if i%2 == 1 {
			s.True(strings.HasSuffix(line, "word†"), "line %d: %q", i, line)
		}
	}
}

func (s *BuilderTestSuite) TestGearChanceAndUnknownArmor() {
	kit := &deltagreen.Kit{
		ID: "mixed",
		Armor: []deltagreen.ItemEntry{
			{Type: "powered_armor"},
			{Type: "kevlar_vest", Chance: 40},
		},
		Gear: []deltagreen.ItemEntry{
			{Text: "Flashlight", Chance: 40},
			{Text: "Radio"},
		},
	}
	// 41 fails the vest gate, 40 passes the flashlight gate
	b := s.newBuilder(testutils.NewScriptedRoller(41, 40), Options{})

	s.Equal([]string{"Flashlight", "Radio"}, b.gearLines(kit))
}

func (s *BuilderTestSuite) TestFootnoteFlattening() {
	b := s.newBuilder(nil, Options{})
	b.notes = footnotes.New()
	b.notes.Mark("First note")
	b.notes.Mark("Second note")

	c, err := b.applyFootnotes(deltagreen.Character{})
	s.Require().NoError(err)

	s.Equal([]string{"† First note", "‡ Second note"}, c.FootnoteLines)
	s.Len(c.Footnotes, 2)
}
