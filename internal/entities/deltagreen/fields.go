package deltagreen

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields flattens the character into the field->value mapping the sheet
// renderer consumes. Every value is already a display string.
func (c *Character) Fields() map[string]string {
	f := map[string]string{
		string(c.Sex):    "X",
		"name":           c.Name,
		"profession":     c.Profession,
		"employer":       c.Employer,
		"nationality":    c.Nationality,
		"age":            fmt.Sprintf("%d    (%s)", c.Age, c.Birthday),
		"hitpoints":      strconv.Itoa(c.HitPoints),
		"willpower":      strconv.Itoa(c.Willpower),
		"sanity":         strconv.Itoa(c.Sanity),
		"breaking point": strconv.Itoa(c.BreakingPoint),
		"damage bonus":   formatModifier(c.DamageBonus),
	}

	for _, attr := range AllAttributes {
		v := c.Attributes.Get(attr)
		f[string(attr)] = strconv.Itoa(v)
		f[string(attr)+"_x5"] = strconv.Itoa(v * 5)
		if feature := c.Features[attr]; feature != "" {
			f[string(attr)+"_feature"] = feature
		}
	}

	for name, v := range c.Skills {
		f[name] = v.String()
	}

	for i, b := range c.Bonds {
		f[fmt.Sprintf("bond%d", i)] = strconv.Itoa(b)
	}

	for i, w := range c.Weapons {
		prefix := fmt.Sprintf("weapon%d_", i+1)
		f[prefix+"name"] = w.Name + strings.Join(w.Markers, "")
		f[prefix+"skill"] = w.Skill
		f[prefix+"range"] = w.BaseRange
		f[prefix+"ap"] = w.ArmorPiercing
		f[prefix+"lethality"] = w.Lethality
		f[prefix+"kill_radius"] = w.KillRadius
		f[prefix+"ammo"] = w.Ammo
		f[prefix+"damage"] = w.Damage
	}

	for i, line := range c.Gear {
		f[fmt.Sprintf("gear%d", i+1)] = line
	}

	for i, line := range c.FootnoteLines {
		f[fmt.Sprintf("footnote%d", i+1)] = line
	}

	for i, line := range c.DamageNarrative {
		f[fmt.Sprintf("damage%d", i+1)] = line
	}
	if c.Disorder != "" {
		f["disorder"] = c.Disorder
	}
	if c.ViolenceMarks > 0 {
		f["violence"] = marks(c.ViolenceMarks)
	}
	if c.HelplessnessMarks > 0 {
		f["helplessness"] = marks(c.HelplessnessMarks)
	}

	return f
}

// FormatDamage renders dice as "{dice}D{die}{±modifier}"
func FormatDamage(dice, dieType, modifier int) string {
	expr := fmt.Sprintf("%dD%d", dice, dieType)
	if modifier != 0 {
		expr += formatModifier(modifier)
	}
	return expr
}

func formatModifier(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func marks(n int) string {
	return strings.TrimSpace(strings.Repeat("X ", n))
}
