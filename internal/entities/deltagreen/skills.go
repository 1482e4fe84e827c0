package deltagreen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SkillKind distinguishes numeric skill scores from display labels
type SkillKind int

// Skill kinds
const (
	SkillKindScore SkillKind = iota
	SkillKindLabel
)

// SkillValue is one entry of a skill map: either a 0-100 score or a label
// naming a craft/science specialty (e.g. "Electrician").
type SkillValue struct {
	Kind  SkillKind
	Score int
	Label string
}

// Score builds a numeric skill value
func Score(n int) SkillValue {
	return SkillValue{Kind: SkillKindScore, Score: n}
}

// Label builds a label skill value
func Label(s string) SkillValue {
	return SkillValue{Kind: SkillKindLabel, Label: s}
}

// IsLabel reports whether the value is a display label
func (v SkillValue) IsLabel() bool {
	return v.Kind == SkillKindLabel
}

// String renders the value for the sheet
func (v SkillValue) String() string {
	if v.IsLabel() {
		return v.Label
	}
	return strconv.Itoa(v.Score)
}

// MarshalJSON writes scores as numbers and labels as strings
func (v SkillValue) MarshalJSON() ([]byte, error) {
	if v.IsLabel() {
		return json.Marshal(v.Label)
	}
	return json.Marshal(v.Score)
}

// UnmarshalJSON accepts a number or a string
func (v *SkillValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Score(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("skill value must be a number or a string: %s", data)
	}
	*v = Label(s)
	return nil
}

// UnmarshalYAML accepts an integer scalar or any other scalar as a label
func (v *SkillValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: skill value must be a scalar", node.Line)
	}
	if node.ShortTag() == "!!int" {
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*v = Score(n)
		return nil
	}
	*v = Label(node.Value)
	return nil
}

// Skills maps skill names to their values
type Skills map[string]SkillValue

// Score returns the numeric score of name. Missing skills read as 0; ok is
// false only when the entry is a label.
func (s Skills) Score(name string) (score int, ok bool) {
	v, exists := s[name]
	if !exists {
		return 0, true
	}
	if v.IsLabel() {
		return 0, false
	}
	return v.Score, true
}

// Add raises a numeric skill by delta, creating it from 0 when absent.
// Labels are left untouched and reported with false.
func (s Skills) Add(name string, delta int) bool {
	score, ok := s.Score(name)
	if !ok {
		return false
	}
	s[name] = Score(score + delta)
	return true
}

// Clone returns an independent copy
func (s Skills) Clone() Skills {
	out := make(Skills, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Names returns the skill names in lexical order
func (s Skills) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
