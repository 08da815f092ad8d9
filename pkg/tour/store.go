package tour

import (
	"sync"

	"github.com/google/uuid"

	"github.com/spotlight-tour/spotlight/pkg/errors"
)

// Store is the authoring surface's ordered, mutable step collection.
//
// Reordering is true reordering of the canonical sequence: a step's
// position in the slice is its tour position. The synthetic step ID only
// keeps edit-form rows stable while the list is rearranged.
type Store struct {
	mu           sync.Mutex
	steps        []Step
	presentation Presentation
}

// NewStore creates a store seeded with a sequence.
// Steps without a synthetic ID are assigned one.
func NewStore(seq Sequence) *Store {
	steps := append([]Step(nil), seq.Steps...)
	for i := range steps {
		if steps[i].ID == "" {
			steps[i].ID = uuid.NewString()
		}
	}
	return &Store{steps: steps, presentation: seq.Presentation}
}

// Len returns the number of steps.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.steps)
}

// Step returns the step at index i.
func (st *Store) Step(i int) (Step, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if i < 0 || i >= len(st.steps) {
		return Step{}, errors.New(errors.ErrCodeInvalidIndex, "step index %d out of range [0,%d)", i, len(st.steps))
	}
	return st.steps[i], nil
}

// Steps returns a copy of the steps in tour order.
func (st *Store) Steps() []Step {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Step(nil), st.steps...)
}

// Sequence returns the store's current content as a sequence.
func (st *Store) Sequence() Sequence {
	st.mu.Lock()
	defer st.mu.Unlock()
	return Sequence{
		Steps:        append([]Step(nil), st.steps...),
		Presentation: st.presentation,
	}
}

// Replace swaps the store's entire content for seq, assigning synthetic
// IDs to steps that lack one. Used when a tour definition is reloaded
// from disk.
func (st *Store) Replace(seq Sequence) {
	st.mu.Lock()
	defer st.mu.Unlock()
	steps := append([]Step(nil), seq.Steps...)
	for i := range steps {
		if steps[i].ID == "" {
			steps[i].ID = uuid.NewString()
		}
	}
	st.steps = steps
	st.presentation = seq.Presentation
}

// Presentation returns the current presentation settings.
func (st *Store) Presentation() Presentation {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.presentation
}

// SetPresentation replaces the presentation settings.
func (st *Store) SetPresentation(p Presentation) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.presentation = p
}

// Add appends a step and returns the new length.
// A missing synthetic ID is filled in.
func (st *Store) Add(step Step) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	if step.ID == "" {
		step.ID = uuid.NewString()
	}
	st.steps = append(st.steps, step)
	return len(st.steps)
}

// RemoveAt deletes the step at index i. Subsequent steps shift down by
// one; no gaps remain.
func (st *Store) RemoveAt(i int) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if i < 0 || i >= len(st.steps) {
		return errors.New(errors.ErrCodeInvalidIndex, "step index %d out of range [0,%d)", i, len(st.steps))
	}
	st.steps = append(st.steps[:i], st.steps[i+1:]...)
	return nil
}

// MoveUp swaps the step at index i with its predecessor.
// MoveUp(0) is a no-op, not an error.
func (st *Store) MoveUp(i int) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if i < 0 || i >= len(st.steps) {
		return errors.New(errors.ErrCodeInvalidIndex, "step index %d out of range [0,%d)", i, len(st.steps))
	}
	if i == 0 {
		return nil
	}
	st.steps[i-1], st.steps[i] = st.steps[i], st.steps[i-1]
	return nil
}

// MoveDown swaps the step at index i with its successor.
// MoveDown on the last index is a no-op, not an error.
func (st *Store) MoveDown(i int) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if i < 0 || i >= len(st.steps) {
		return errors.New(errors.ErrCodeInvalidIndex, "step index %d out of range [0,%d)", i, len(st.steps))
	}
	if i == len(st.steps)-1 {
		return nil
	}
	st.steps[i], st.steps[i+1] = st.steps[i+1], st.steps[i]
	return nil
}

// Update merges a patch into the step at index i. Nil patch fields leave
// the corresponding step fields untouched. The synthetic ID never changes.
func (st *Store) Update(i int, patch Patch) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if i < 0 || i >= len(st.steps) {
		return errors.New(errors.ErrCodeInvalidIndex, "step index %d out of range [0,%d)", i, len(st.steps))
	}
	if patch.TargetID != nil {
		st.steps[i].TargetID = *patch.TargetID
	}
	if patch.Text != nil {
		st.steps[i].Text = *patch.Text
	}
	if patch.Anchor != nil {
		st.steps[i].Anchor = *patch.Anchor
	}
	return nil
}
