package generator

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/pkg/textwrap"
)

// fallbackUnarmed is used when the catalog carries no "unarmed" weapon
var fallbackUnarmed = &deltagreen.WeaponDefinition{
	ID:    unarmedWeaponID,
	Name:  "Unarmed",
	Skill: deltagreen.SkillUnarmedCombat,
	Damage: &deltagreen.Damage{
		Dice: 1, DieType: 4, Modifier: -1, DamageBonus: true,
	},
}

const unarmedWeaponID = "unarmed"

// applyEquipment expands the profession's kit into weapon slots and gear
// lines. A profession without a usable kit is only unarmed.
func (b *builder) applyEquipment(in deltagreen.Character) (deltagreen.Character, error) {
	c := in.Clone()

	kit := b.kit()
	if kit == nil {
		c.Weapons = []deltagreen.WeaponSlot{b.weaponSlot(c, b.unarmed())}
		c.Gear = nil
		return c, nil
	}

	c.Weapons = b.weaponSlots(c, b.resolveWeapons(kit.Weapons))
	c.Gear = b.gearLines(kit)

	return c, nil
}

func (b *builder) kit() *deltagreen.Kit {
	id := b.profession.EquipmentKit
	if id == "" {
		return nil
	}
	kit, err := b.catalog.Kit(id)
	if err != nil {
		slog.Warn("Equipment kit not in catalog, equipping unarmed only",
			"profession", b.profession.ID,
			"kit", id,
			"error", err,
		)
		return nil
	}
	return kit
}

func (b *builder) unarmed() *deltagreen.WeaponDefinition {
	if def, err := b.catalog.Weapon(unarmedWeaponID); err == nil {
		return def
	}
	return fallbackUnarmed
}

// resolveWeapons expands a weapon list into concrete weapon ids in order
func (b *builder) resolveWeapons(entries []deltagreen.WeaponEntry) []string {
	var ids []string
	for _, e := range entries {
		ids = append(ids, b.resolveWeapon(e)...)
	}
	return ids
}

// resolveWeapon applies an entry's chance gate, then either picks one of
// its alternatives, expands all of its members, or yields its type.
func (b *builder) resolveWeapon(e deltagreen.WeaponEntry) []string {
	if !b.passes(e.Chance) {
		return nil
	}

	switch {
	case len(e.OneOf) > 0:
		return b.resolveWeapon(e.OneOf[b.src.Intn(len(e.OneOf))])
	case len(e.Both) > 0:
		return b.resolveWeapons(e.Both)
	case e.Type != "":
		return []string{e.Type}
	}
	return nil
}

// passes evaluates a percentage gate; zero means the entry is unconditional
func (b *builder) passes(chance int) bool {
	return chance <= 0 || b.src.Percent(chance)
}

// weaponSlots looks up every resolved id and formats up to
// MaxWeaponSlots slots. Unknown ids are skipped.
func (b *builder) weaponSlots(c deltagreen.Character, ids []string) []deltagreen.WeaponSlot {
	slots := make([]deltagreen.WeaponSlot, 0, min(len(ids), deltagreen.MaxWeaponSlots))
	for i, id := range ids {
		def, err := b.catalog.Weapon(id)
		if err != nil {
			slog.Warn("Weapon not in catalog, skipping",
				"profession", b.profession.ID,
				"weapon", id,
			)
			continue
		}

		if len(slots) == deltagreen.MaxWeaponSlots {
			slog.Warn("Too many weapons, truncating",
				"profession", b.profession.ID,
				"max_slots", deltagreen.MaxWeaponSlots,
				"dropped", len(ids)-i,
			)
			break
		}
		slots = append(slots, b.weaponSlot(c, def))
	}
	return slots
}

// weaponSlot formats one weapon for the sheet. Footnotes are registered in
// the order: weapon notes, damage special, lethality special.
func (b *builder) weaponSlot(c deltagreen.Character, def *deltagreen.WeaponDefinition) deltagreen.WeaponSlot {
	score, _ := c.Skills.Score(def.Skill)
	hit := score + def.SkillModifier

	slot := deltagreen.WeaponSlot{
		Name:       def.Name,
		HitChance:  hit,
		Skill:      fmt.Sprintf("%d%%", hit),
		BaseRange:  def.BaseRange,
		KillRadius: def.KillRadius,
	}
	if marker := b.notes.Mark(def.Notes); marker != "" {
		slot.Markers = append(slot.Markers, marker)
	}

	if def.ArmorPiercing > 0 {
		slot.ArmorPiercing = strconv.Itoa(def.ArmorPiercing)
	}
	if def.Ammo > 0 {
		slot.Ammo = strconv.Itoa(def.Ammo)
	}

	if d := def.Damage; d != nil {
		if d.Dice > 0 && d.DieType > 0 {
			modifier := d.Modifier
			if d.DamageBonus {
				modifier += c.DamageBonus
			}
			slot.Damage = deltagreen.FormatDamage(d.Dice, d.DieType, modifier)
		}
		slot.Damage += b.notes.Mark(d.Special)
	}

	if l := def.Lethality; l != nil {
		if l.Rating > 0 {
			slot.Lethality = fmt.Sprintf("%d%%", l.Rating)
		}
		slot.Lethality += b.notes.Mark(l.Special)
	}

	return slot
}

// gearLines renders gated armor then gear entries, wrapped to
// GearLineWidth and capped at MaxGearLines.
func (b *builder) gearLines(kit *deltagreen.Kit) []string {
	var lines []string

	for _, entry := range kit.Armor {
		if !b.passes(entry.Chance) {
			continue
		}
		armor, err := b.catalog.Armor(entry.Type)
		if err != nil {
			slog.Warn("Armor not in catalog, skipping",
				"kit", kit.ID,
				"armor", entry.Type,
			)
			continue
		}
		text := fmt.Sprintf("%s (Armor %d)", armor.Name, armor.Rating)
		lines = append(lines, b.itemLines(text, entry.Notes)...)
	}

	for _, entry := range kit.Gear {
		if !b.passes(entry.Chance) {
			continue
		}
		if strings.TrimSpace(entry.Text) == "" {
			continue
		}
		lines = append(lines, b.itemLines(entry.Text, entry.Notes)...)
	}

	if len(lines) > deltagreen.MaxGearLines {
		slog.Warn("Too much gear, truncating",
			"kit", kit.ID,
			"lines", len(lines),
			"max_lines", deltagreen.MaxGearLines,
		)
		lines = lines[:deltagreen.MaxGearLines]
	}
	return lines
}

// itemLines appends note markers directly to the last word of text so a
// wrap never leaves a marker on a line of its own.
func (b *builder) itemLines(text string, notes []string) []string {
	text = strings.TrimSpace(text)
	for _, note := range notes {
		text += b.notes.Mark(note)
	}
	return textwrap.Wrap(text, deltagreen.GearLineWidth)
}
