package deltagreen

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

var _ core.Entity = (*Character)(nil)

// Character is a finished character sheet's data
type Character struct {
	ID      string    `json:"id"`
	BatchID string    `json:"batch_id,omitempty"`
	Created time.Time `json:"created"`

	// Identity
	Sex          Sex    `json:"sex"`
	Name         string `json:"name"`
	ProfessionID string `json:"profession_id"`
	Profession   string `json:"profession"`
	Employer     string `json:"employer,omitempty"`
	Nationality  string `json:"nationality"`
	Age          int    `json:"age"`
	Birthday     string `json:"birthday"`

	Attributes Attributes           `json:"attributes"`
	Features   map[Attribute]string `json:"features,omitempty"`

	// Derived values
	HitPoints     int `json:"hit_points"`
	Willpower     int `json:"willpower"`
	Sanity        int `json:"sanity"`
	BreakingPoint int `json:"breaking_point"`
	DamageBonus   int `json:"damage_bonus"`
	SanityLoss    int `json:"sanity_loss"`

	Skills      Skills   `json:"skills"`
	BonusSkills []string `json:"bonus_skills,omitempty"`
	Bonds       []int    `json:"bonds"`

	Weapons []WeaponSlot `json:"weapons,omitempty"`
	Gear    []string     `json:"gear,omitempty"`

	Footnotes     []Footnote `json:"footnotes,omitempty"`
	FootnoteLines []string   `json:"footnote_lines,omitempty"`

	// Trauma
	DamageNarrative   []string `json:"damage_narrative,omitempty"`
	Disorder          string   `json:"disorder,omitempty"`
	ViolenceMarks     int      `json:"violence_marks,omitempty"`
	HelplessnessMarks int      `json:"helplessness_marks,omitempty"`
}

// WeaponSlot is one pre-formatted weapon line
type WeaponSlot struct {
	Name          string   `json:"name"`
	HitChance     int      `json:"hit_chance"`
	Skill         string   `json:"skill"`
	BaseRange     string   `json:"base_range,omitempty"`
	ArmorPiercing string   `json:"armor_piercing,omitempty"`
	Lethality     string   `json:"lethality,omitempty"`
	KillRadius    string   `json:"kill_radius,omitempty"`
	Ammo          string   `json:"ammo,omitempty"`
	Damage        string   `json:"damage,omitempty"`
	Markers       []string `json:"markers,omitempty"`
}

// Footnote pairs a reference symbol with its text
type Footnote struct {
	Symbol string `json:"symbol"`
	Text   string `json:"text"`
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type
func (c *Character) GetType() string {
	return "character"
}

// Clone returns a deep copy so pipeline stages never share maps or slices
func (c Character) Clone() Character {
	out := c
	out.Skills = c.Skills.Clone()
	out.BonusSkills = append([]string(nil), c.BonusSkills...)
	out.Bonds = append([]int(nil), c.Bonds...)
	out.Weapons = append([]WeaponSlot(nil), c.Weapons...)
	out.Gear = append([]string(nil), c.Gear...)
	out.Footnotes = append([]Footnote(nil), c.Footnotes...)
	out.FootnoteLines = append([]string(nil), c.FootnoteLines...)
	out.DamageNarrative = append([]string(nil), c.DamageNarrative...)
	if c.Features != nil {
		out.Features = make(map[Attribute]string, len(c.Features))
		for k, v := range c.Features {
			out.Features[k] = v
		}
	}
	return out
}
