// Package rack models the drag-and-drop chord slots (Chord Cache,
// Chord Player, seed slot): a fixed-size array of optional chord
// values. Slots own their chords; storing clones the input so no
// mutable state is shared with the caller.
package rack

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/improperdecoherence/chordlab/chord"
)

// Entry is a stored chord tagged with an identity external UIs can
// reference across updates.
type Entry struct {
	ID    string
	Slot  int
	Chord *chord.Chord
}

type Rack struct {
	mu    sync.Mutex
	slots []*Entry
}

// New creates a rack with the given number of empty slots.
func New(size int) *Rack {
	return &Rack{slots: make([]*Entry, size)}
}

func (r *Rack) Size() int {
	return len(r.slots)
}

func (r *Rack) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.slots) {
		return fmt.Errorf("slot %d out of range [0,%d)", slot, len(r.slots))
	}
	return nil
}

// Store replaces the slot's chord with a copy of c and returns the
// new entry.
func (r *Rack) Store(slot int, c *chord.Chord) (Entry, error) {
	if err := r.checkSlot(slot); err != nil {
		return Entry{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	entry := &Entry{
		ID:    uuid.New().String(),
		Slot:  slot,
		Chord: c.Clone(),
	}
	r.slots[slot] = entry
	return r.snapshot(entry), nil
}

// Clear empties the slot. Clearing an empty slot is a no-op.
func (r *Rack) Clear(slot int) error {
	if err := r.checkSlot(slot); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot] = nil
	return nil
}

// Get returns a copy of the slot's entry, if occupied.
func (r *Rack) Get(slot int) (Entry, bool) {
	if err := r.checkSlot(slot); err != nil {
		return Entry{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slots[slot] == nil {
		return Entry{}, false
	}
	return r.snapshot(r.slots[slot]), true
}

// CycleInversion advances the stored chord's inversion in place and
// returns its new note sequence.
func (r *Rack) CycleInversion(slot int) ([]int, error) {
	if err := r.checkSlot(slot); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slots[slot] == nil {
		return nil, fmt.Errorf("slot %d is empty", slot)
	}
	return r.slots[slot].Chord.CycleInversion(), nil
}

// Entries returns copies of the occupied slots in slot order.
func (r *Rack) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []Entry
	for _, e := range r.slots {
		if e != nil {
			res = append(res, r.snapshot(e))
		}
	}
	return res
}

func (r *Rack) snapshot(e *Entry) Entry {
	return Entry{ID: e.ID, Slot: e.Slot, Chord: e.Chord.Clone()}
}
