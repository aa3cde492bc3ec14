// Package chorddb holds the candidate universe for the matching-chords
// generator: every root/type/modifier combination up to a bounded
// modifier depth, keyed by pitch-class-set signature. The universe is
// built once and read-only afterwards, so concurrent queries need no
// locking.
package chorddb

import (
	"context"
	"sort"
	"sync"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
)

// DefaultModifierDepth bounds the modifier combinations to what the
// chord editor can select at once.
const DefaultModifierDepth = 2

type entry struct {
	chord   *chord.Chord
	ordinal int // build order: root asc, type order, modifier-combo order
}

type DB struct {
	bySignature map[interval.Signature][]entry
	size        int
}

// modifierCombos enumerates the empty set, then singles, then pairs,
// and so on up to depth, in catalog declaration order.
func modifierCombos(depth int) [][]chord.Modifier {
	mods := chord.Modifiers()
	res := [][]chord.Modifier{nil}

	var walk func(combo []chord.Modifier, next int)
	walk = func(combo []chord.Modifier, next int) {
		if len(combo) == depth {
			return
		}
		for i := next; i < len(mods); i++ {
			grown := append(append([]chord.Modifier{}, combo...), mods[i])
			res = append(res, grown)
			walk(grown, i+1)
		}
	}
	walk(nil, 0)

	sort.SliceStable(res, func(i, j int) bool {
		return len(res[i]) < len(res[j])
	})
	return res
}

// New builds the universe for the given modifier-combination depth.
func New(depth int) *DB {
	db := &DB{bySignature: make(map[interval.Signature][]entry)}

	seen := make(map[interval.Signature]map[int]bool)
	combos := modifierCombos(depth)
	ordinal := 0

	for root := 0; root < note.OctaveSize; root++ {
		for _, t := range chord.Types() {
			for _, mods := range combos {
				c, err := chord.New(root, t, mods...)
				if err != nil {
					panic("chord catalog broke during universe build: " + err.Error())
				}

				sig := c.Signature()
				if seen[sig] == nil {
					seen[sig] = make(map[int]bool)
				}
				if seen[sig][c.Root] {
					continue
				}
				seen[sig][c.Root] = true

				db.bySignature[sig] = append(db.bySignature[sig], entry{chord: c, ordinal: ordinal})
				ordinal++
				db.size++
			}
		}
	}
	return db
}

var defaultDB *DB
var defaultOnce sync.Once

// Default returns the process-wide universe at the default depth,
// built on first use.
func Default() *DB {
	defaultOnce.Do(func() {
		defaultDB = New(DefaultModifierDepth)
	})
	return defaultDB
}

// Size is the number of distinct root+set candidates in the universe.
func (db *DB) Size() int {
	return db.size
}

// Match finds every candidate whose pitch-class set differs from the
// seed set in exactly distance tones. Results are clones in a stable
// order: root ascending, then catalog declaration order. An empty
// result is not an error.
func (db *DB) Match(seed []int, distance int) []*chord.Chord {
	res, _ := db.MatchContext(context.Background(), seed, distance)
	return res
}

// MatchContext is Match with cancellation for searches driven by
// interactive controls.
func (db *DB) MatchContext(ctx context.Context, seed []int, distance int) ([]*chord.Chord, error) {
	sig := interval.SignatureOf(seed)

	var found []entry
	for _, near := range interval.NearSignatures(sig, distance) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found = append(found, db.bySignature[near]...)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].ordinal < found[j].ordinal
	})

	res := make([]*chord.Chord, 0, len(found))
	for _, e := range found {
		res = append(res, e.chord.Clone())
	}
	return res, nil
}
