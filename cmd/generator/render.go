package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
)

var title = cases.Title(language.AmericanEnglish)

// skillColumns is how many skills print per row on the text sheet
const skillColumns = 3

// renderSheet writes a plain-text character sheet
func renderSheet(w io.Writer, c *deltagreen.Character) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\n", c.Name)
	fmt.Fprintf(tw, "%s\t%s\n", c.Profession, c.Employer)
	fmt.Fprintf(tw, "%s\tAge %d (%s)\t%s\n", title.String(string(c.Sex)), c.Age, c.Birthday, c.Nationality)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "STATISTIC\tSCORE\tx5\tFEATURE")
	for _, attr := range deltagreen.AllAttributes {
		v := c.Attributes.Get(attr)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", title.String(string(attr)), v, v*5, c.Features[attr])
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "HP %d\tWP %d\tSAN %d\tBP %d\tDamage bonus %+d\n",
		c.HitPoints, c.Willpower, c.Sanity, c.BreakingPoint, c.DamageBonus)
	if len(c.Bonds) > 0 {
		bonds := make([]string, len(c.Bonds))
		for i, b := range c.Bonds {
			bonds[i] = fmt.Sprint(b)
		}
		fmt.Fprintf(tw, "Bonds\t%s\n", strings.Join(bonds, ", "))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "SKILLS")
	writeSkills(tw, c.Skills)
	fmt.Fprintln(tw)

	if len(c.Weapons) > 0 {
		fmt.Fprintln(tw, "WEAPON\tSKILL\tRANGE\tDAMAGE\tAP\tLETHALITY\tKILL RADIUS\tAMMO")
		for _, wpn := range c.Weapons {
			fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				wpn.Name, strings.Join(wpn.Markers, ""), wpn.Skill, wpn.BaseRange, wpn.Damage,
				wpn.ArmorPiercing, wpn.Lethality, wpn.KillRadius, wpn.Ammo)
		}
		fmt.Fprintln(tw)
	}

	if len(c.Gear) > 0 {
		fmt.Fprintln(tw, "GEAR")
		for _, line := range c.Gear {
			fmt.Fprintln(tw, line)
		}
		fmt.Fprintln(tw)
	}

	if len(c.DamageNarrative) > 0 {
		fmt.Fprintln(tw, "DAMAGED VETERAN")
		for _, line := range c.DamageNarrative {
			fmt.Fprintln(tw, line)
		}
		if c.Disorder != "" {
			fmt.Fprintf(tw, "Disorder: %s\n", c.Disorder)
		}
		fmt.Fprintln(tw)
	}

	for _, line := range c.FootnoteLines {
		fmt.Fprintln(tw, line)
	}

	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write sheet")
	}
	return nil
}

// writeSkills prints skills in name order, several per row. Numbered
// craft/science slots print as "Craft (Electrician) 30".
func writeSkills(tw *tabwriter.Writer, skills deltagreen.Skills) {
	var cells []string
	for _, name := range skills.Names() {
		v := skills[name]
		if v.IsLabel() {
			continue
		}

		display := name
		if slot, ok := strings.CutSuffix(name, "value"); ok {
			display = strings.TrimRight(slot, "0123456789")
			if label, ok := skills[slot+"label"]; ok && label.IsLabel() {
				display = fmt.Sprintf("%s (%s)", display, label.Label)
			}
		}
		cells = append(cells, fmt.Sprintf("%s %d%%", title.String(display), v.Score))
	}

	for i := 0; i < len(cells); i += skillColumns {
		end := min(i+skillColumns, len(cells))
		fmt.Fprintln(tw, strings.Join(cells[i:end], "\t"))
	}
}
