// Package deltagreen contains the character, profession and equipment types
// produced and consumed by the generator.
package deltagreen

// Sex of a generated character
type Sex string

// Attribute names one of the six core statistics
type Attribute string

// Attributes holds the six core scores
type Attributes struct {
	Strength     int `json:"strength"`
	Constitution int `json:"constitution"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Power        int `json:"power"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for attr
func (a Attributes) Get(attr Attribute) int {
	switch attr {
	case Strength:
		return a.Strength
	case Constitution:
		return a.Constitution
	case Dexterity:
		return a.Dexterity
	case Intelligence:
		return a.Intelligence
	case Power:
		return a.Power
	case Charisma:
		return a.Charisma
	}
	return 0
}

// Set stores value for attr
func (a *Attributes) Set(attr Attribute, value int) {
	switch attr {
	case Strength:
		a.Strength = value
	case Constitution:
		a.Constitution = value
	case Dexterity:
		a.Dexterity = value
	case Intelligence:
		a.Intelligence = value
	case Power:
		a.Power = value
	case Charisma:
		a.Charisma = value
	}
}

// Values returns the scores in sheet order
func (a Attributes) Values() []int {
	out := make([]int, len(AllAttributes))
	for i, attr := range AllAttributes {
		out[i] = a.Get(attr)
	}
	return out
}

// Profession is a template a character is generated from
type Profession struct {
	ID               string           `yaml:"id" json:"id"`
	Label            string           `yaml:"label" json:"label"`
	Employer         string           `yaml:"employer,omitempty" json:"employer,omitempty"`
	Division         string           `yaml:"division,omitempty" json:"division,omitempty"`
	NumberToGenerate int              `yaml:"number_to_generate" json:"number_to_generate"`
	Bonds            int              `yaml:"bonds" json:"bonds"`
	Skills           ProfessionSkills `yaml:"skills" json:"skills"`
	EquipmentKit     string           `yaml:"equipment_kit,omitempty" json:"equipment_kit,omitempty"`
}

// ProfessionSkills describes how a profession shapes the skill map
type ProfessionSkills struct {
	// Fixed values always overwrite the defaults
	Fixed Skills `yaml:"fixed" json:"fixed"`

	// PossibleCount entries are sampled from Possible
	Possible      map[string]int `yaml:"possible" json:"possible"`
	PossibleCount int            `yaml:"possible_count" json:"possible_count"`

	// Bonus names are suggested bonus-skill candidates, in priority order
	Bonus []string `yaml:"bonus" json:"bonus"`
}

// Lethality is a weapon's chance to kill outright
type Lethality struct {
	Rating  int    `yaml:"rating" json:"rating"`
	Special string `yaml:"special,omitempty" json:"special,omitempty"`
}

// Damage describes a weapon's damage roll
type Damage struct {
	Dice        int    `yaml:"dice" json:"dice"`
	DieType     int    `yaml:"die_type" json:"die_type"`
	Modifier    int    `yaml:"modifier,omitempty" json:"modifier,omitempty"`
	DamageBonus bool   `yaml:"damage_bonus,omitempty" json:"damage_bonus,omitempty"`
	Special     string `yaml:"special,omitempty" json:"special,omitempty"`
}

// WeaponDefinition is a catalog weapon
type WeaponDefinition struct {
	ID            string     `yaml:"id" json:"id"`
	Name          string     `yaml:"name" json:"name"`
	Skill         string     `yaml:"skill" json:"skill"`
	SkillModifier int        `yaml:"skill_modifier,omitempty" json:"skill_modifier,omitempty"`
	ArmorPiercing int        `yaml:"armor_piercing,omitempty" json:"armor_piercing,omitempty"`
	BaseRange     string     `yaml:"base_range,omitempty" json:"base_range,omitempty"`
	Lethality     *Lethality `yaml:"lethality,omitempty" json:"lethality,omitempty"`
	Ammo          int        `yaml:"ammo,omitempty" json:"ammo,omitempty"`
	KillRadius    string     `yaml:"kill_radius,omitempty" json:"kill_radius,omitempty"`
	Damage        *Damage    `yaml:"damage,omitempty" json:"damage,omitempty"`
	Notes         string     `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// ArmorDefinition is a catalog armor piece
type ArmorDefinition struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Rating int    `yaml:"rating" json:"rating"`
}

// WeaponEntry is one node of a kit's weapon tree. Exactly one of Type, OneOf
// or Both is set. Chance is a percentage gate; 0 means always.
type WeaponEntry struct {
	Type   string        `yaml:"type,omitempty" json:"type,omitempty"`
	Chance int           `yaml:"chance,omitempty" json:"chance,omitempty"`
	OneOf  []WeaponEntry `yaml:"one_of,omitempty" json:"one_of,omitempty"`
	Both   []WeaponEntry `yaml:"both,omitempty" json:"both,omitempty"`
}

// ItemEntry is an armor or gear line of a kit. Armor entries reference the
// armor catalog through Type; gear entries carry their own Text.
type ItemEntry struct {
	Type   string   `yaml:"type,omitempty" json:"type,omitempty"`
	Text   string   `yaml:"text,omitempty" json:"text,omitempty"`
	Chance int      `yaml:"chance,omitempty" json:"chance,omitempty"`
	Notes  []string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Kit is a profession's abstract equipment description
type Kit struct {
	ID      string        `yaml:"id" json:"id"`
	Weapons []WeaponEntry `yaml:"weapons" json:"weapons"`
	Armor   []ItemEntry   `yaml:"armor" json:"armor"`
	Gear    []ItemEntry   `yaml:"gear" json:"gear"`
}
