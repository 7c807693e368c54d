// Package estimator defines the cost estimator wizard: an ordered sequence of
// single- and multi-select steps accumulating selections into a price estimate.
package estimator

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// StepKind distinguishes how many options a step accepts at once
type StepKind string

const (
	StepSingle StepKind = "single"
	StepMulti  StepKind = "multi"
)

// Option is one selectable choice within a step. Single-select options carry
// a multiplier, multi-select options carry a point value.
type Option struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Multiplier  float64 `json:"multiplier,omitempty"`
	Points      int     `json:"points,omitempty"`
}

// Step is one wizard screen with a stable key and a fixed option list
type Step struct {
	Key      string    `json:"key"`
	Title    string    `json:"title"`
	Kind     StepKind  `json:"kind"`
	Required bool      `json:"required,omitempty"`
	Options  []*Option `json:"options"`
}

// Definition is the wizard configuration loaded from the content store
type Definition struct {
	BasePrice   int     `json:"basePrice"`
	PointWeight int     `json:"pointWeight"`
	Currency    string  `json:"currency"`
	Steps       []*Step `json:"steps"`
}

// FindStep locates a step by key, nil when absent
func (d *Definition) FindStep(key string) *Step {
	for _, s := range d.Steps {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// FindOption locates an option within a step by ID, nil when absent
func (s *Step) FindOption(id string) *Option {
	for _, o := range s.Options {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Estimate is the computed result shown in the terminal wizard state
type Estimate struct {
	Total        int    `json:"total"`
	BasePrice    int    `json:"basePrice"`
	Multiplied   int    `json:"multiplied"`
	AddOns       int    `json:"addOns"`
	Currency     string `json:"currency"`
	OptionsCount int    `json:"optionsCount"`
}

// Wizard is per-session mutable selection state walking the step sequence.
// States are step indices 0..N-1 plus a terminal result state.
type Wizard struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	lastAccessed time.Time
	def          *Definition
	stepIndex    int
	resultOpen   bool
	selections   map[string]map[string]bool // step key -> chosen option IDs
}

// NewWizard creates a fresh wizard at step 0 with empty selections
func NewWizard(id string, def *Definition) *Wizard {
	now := time.Now().UTC()
	return &Wizard{
		ID:           id,
		CreatedAt:    now,
		lastAccessed: now,
		def:          def,
		selections:   make(map[string]map[string]bool),
	}
}

// Definition exposes the wizard configuration backing this session
func (w *Wizard) Definition() *Definition { return w.def }

// Touch refreshes the last-access timestamp used for TTL expiry
func (w *Wizard) Touch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastAccessed = time.Now().UTC()
}

// LastAccessedAt reports when the wizard state last changed
func (w *Wizard) LastAccessedAt() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastAccessed
}

// StepIndex returns the current step position
func (w *Wizard) StepIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stepIndex
}

// ResultShown reports whether the wizard is in its terminal state
func (w *Wizard) ResultShown() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resultOpen
}

// Selections returns a copy of the current selection state keyed by step
func (w *Wizard) Selections() map[string][]string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[string][]string, len(w.selections))
	for key, set := range w.selections {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		out[key] = ids
	}
	return out
}

// Select applies a choice to a step. Single-select steps replace any prior
// choice and auto-advance; multi-select steps toggle the option in or out.
func (w *Wizard) Select(stepKey, optionID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.resultOpen {
		return fmt.Errorf("wizard %s is showing its result; start over to change selections", w.ID)
	}

	step := w.def.FindStep(stepKey)
	if step == nil {
		return fmt.Errorf("unknown step %q", stepKey)
	}
	if step.FindOption(optionID) == nil {
		return fmt.Errorf("unknown option %q for step %q", optionID, stepKey)
	}

	switch step.Kind {
	case StepSingle:
		// Replace, never accumulate, a prior choice for this step key.
		w.selections[stepKey] = map[string]bool{optionID: true}
		if w.currentStepKey() == stepKey && w.stepIndex < len(w.def.Steps)-1 {
			w.stepIndex++
		}
	case StepMulti:
		set := w.selections[stepKey]
		if set == nil {
			set = make(map[string]bool)
			w.selections[stepKey] = set
		}
		if set[optionID] {
			delete(set, optionID)
		} else {
			set[optionID] = true
		}
	default:
		return fmt.Errorf("step %q has unsupported kind %q", stepKey, step.Kind)
	}

	w.lastAccessed = time.Now().UTC()
	return nil
}

// Next advances one step once the current step's selection constraint is met
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.resultOpen {
		return fmt.Errorf("wizard %s is showing its result; start over to continue", w.ID)
	}
	if w.stepIndex >= len(w.def.Steps)-1 {
		return fmt.Errorf("already at the last step; calculate to finish")
	}

	step := w.def.Steps[w.stepIndex]
	if step.Required && len(w.selections[step.Key]) == 0 {
		return fmt.Errorf("step %q requires a selection before advancing", step.Key)
	}

	w.stepIndex++
	w.lastAccessed = time.Now().UTC()
	return nil
}

// Back decrements the step index, clamped at 0. Not permitted from the
// terminal state without a full start-over.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.resultOpen {
		return fmt.Errorf("wizard %s is showing its result; start over to go back", w.ID)
	}
	if w.stepIndex > 0 {
		w.stepIndex--
	}
	w.lastAccessed = time.Now().UTC()
	return nil
}

// Calculate transitions from the last step into the terminal state and
// returns the price estimate.
func (w *Wizard) Calculate() (*Estimate, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.resultOpen {
		return w.estimateLocked(), nil
	}
	if w.stepIndex != len(w.def.Steps)-1 {
		return nil, fmt.Errorf("calculate is only permitted from the last step (at %d of %d)", w.stepIndex, len(w.def.Steps)-1)
	}

	step := w.def.Steps[w.stepIndex]
	if step.Required && len(w.selections[step.Key]) == 0 {
		return nil, fmt.Errorf("step %q requires a selection before calculating", step.Key)
	}

	w.resultOpen = true
	w.lastAccessed = time.Now().UTC()
	return w.estimateLocked(), nil
}

// Reset returns the wizard to step 0 with cleared selections and the result
// withdrawn.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stepIndex = 0
	w.resultOpen = false
	w.selections = make(map[string]map[string]bool)
	w.lastAccessed = time.Now().UTC()
}

// Estimate computes the current running total without changing wizard state
func (w *Wizard) Estimate() *Estimate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.estimateLocked()
}

// estimateLocked applies the scoring formula: the base price compounds
// through the single-select multipliers in step order and is rounded to the
// nearest whole unit, then multi-select points scale by the point weight and
// add on top. An unselected step contributes x1 and +0.
func (w *Wizard) estimateLocked() *Estimate {
	total := float64(w.def.BasePrice)
	addOns := 0
	count := 0

	for _, step := range w.def.Steps {
		set := w.selections[step.Key]
		if len(set) == 0 {
			continue
		}
		switch step.Kind {
		case StepSingle:
			for id := range set {
				if opt := step.FindOption(id); opt != nil && opt.Multiplier > 0 {
					total *= opt.Multiplier
					count++
				}
			}
		case StepMulti:
			for id := range set {
				if opt := step.FindOption(id); opt != nil {
					addOns += opt.Points * w.def.PointWeight
					count++
				}
			}
		}
	}

	multiplied := int(math.Round(total))
	return &Estimate{
		Total:        multiplied + addOns,
		BasePrice:    w.def.BasePrice,
		Multiplied:   multiplied,
		AddOns:       addOns,
		Currency:     w.def.Currency,
		OptionsCount: count,
	}
}

// currentStepKey assumes w.mu is held
func (w *Wizard) currentStepKey() string {
	if w.stepIndex >= 0 && w.stepIndex < len(w.def.Steps) {
		return w.def.Steps[w.stepIndex].Key
	}
	return ""
}
