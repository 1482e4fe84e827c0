package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller returns queued values in order, then falls back to
// Default (or 1). Values larger than the requested die are an error so a
// test notices when the script drifts from the code under test.
type ScriptedRoller struct {
	Values  []int
	Default int
	Calls   []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that returns values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{Values: values}
}

// Roll returns the next scripted value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.Calls = append(r.Calls, size)
	v := r.Default
	if v == 0 {
		v = 1
	}
	if len(r.Values) > 0 {
		v = r.Values[0]
		r.Values = r.Values[1:]
	}
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted value %d does not fit d%d", v, size)
	}
	return v, nil
}

// RollN returns the next count scripted values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FailingRoller succeeds After times with a roll of 1, then returns Err
// for every later roll.
type FailingRoller struct {
	After int
	Err   error
	calls int
}

var _ dice.Roller = (*FailingRoller)(nil)

// Roll returns 1 until the budget is spent, then Err
func (r *FailingRoller) Roll(size int) (int, error) {
	r.calls++
	if r.calls > r.After {
		return 0, r.Err
	}
	return 1, nil
}

// RollN fails as soon as any single roll would
func (r *FailingRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
