// Package finder dispatches the chord generators and coordinates
// interactive searches over the candidate universe.
package finder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/chorddb"
	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/scale"
)

// Kind selects a chord generator.
type Kind int

const (
	MatchingChords Kind = iota
	ChordsOfScale
)

func (k Kind) String() string {
	switch k {
	case MatchingChords:
		return "Matching Chords"
	case ChordsOfScale:
		return "Chords of Scale"
	}
	return fmt.Sprintf("generator(%d)", int(k))
}

// NeedsSeed reports whether the generator consumes a seed selection.
func (k Kind) NeedsSeed() bool {
	return k == MatchingChords
}

// Kinds lists the available generators.
func Kinds() []Kind {
	return []Kind{MatchingChords, ChordsOfScale}
}

// MatchingParams drive the Matching Chords generator: a seed
// pitch-class selection and the exact set distance to search at.
type MatchingParams struct {
	Seed     []int
	Distance int
}

// ScaleParams drive the Chords of Scale generator.
type ScaleParams struct {
	Scale string
	Key   note.PitchClass
}

// Query is a tagged union over the generator kinds; only the variant
// named by Kind is read.
type Query struct {
	Kind  Kind
	Match MatchingParams
	Scale ScaleParams
}

// Setting describes one UI-tunable generator parameter.
type Setting struct {
	Name    string
	Default string
	Values  []string
	ToolTip string
}

// Settings lists the parameters of a generator kind, for UIs that
// build their controls dynamically.
func Settings(k Kind) []Setting {
	switch k {
	case MatchingChords:
		return []Setting{{
			Name:    "Distance",
			Default: "0",
			Values:  []string{"0", "1", "2"},
			ToolTip: "0 = exact match, 1 = one note different, etc.",
		}}
	case ChordsOfScale:
		return []Setting{
			{
				Name:    "Scale",
				Default: "Natural Major",
				Values:  scale.TemplateNames(),
				ToolTip: "The scale to which the chords shall belong",
			},
			{
				Name:    "Key",
				Default: "C",
				Values:  note.Names(0, note.OctaveSize, note.Flat),
				ToolTip: "The key of the scale",
			},
		}
	}
	return nil
}

// Generate runs one query to completion. An empty result is not an
// error; errors only come from cancellation or catalog misses.
func Generate(ctx context.Context, db *chorddb.DB, q Query) ([]*chord.Chord, error) {
	switch q.Kind {
	case MatchingChords:
		if len(q.Match.Seed) == 0 {
			return nil, nil
		}
		return db.MatchContext(ctx, interval.Normalize(q.Match.Seed), q.Match.Distance)
	case ChordsOfScale:
		s, err := scale.New(q.Scale.Key, q.Scale.Scale)
		if err != nil {
			return nil, err
		}
		return s.DiatonicChords(), nil
	}
	return nil, fmt.Errorf("unknown generator kind: %v", q.Kind)
}

// Finder runs queries off the interaction thread. Submissions within
// the debounce window collapse into the newest one; a submission
// cancels any in-flight search, and only the most recent search may
// deliver results.
type Finder struct {
	db        *chorddb.DB
	onResults func(Query, []*chord.Chord)
	debounced func(f func())

	mu      sync.Mutex
	cancel  context.CancelFunc
	seq     uint64
	stopped bool
}

// NewFinder creates a finder delivering results through onResults.
// The callback runs on a search goroutine.
func NewFinder(db *chorddb.DB, wait time.Duration, onResults func(Query, []*chord.Chord)) *Finder {
	return &Finder{
		db:        db,
		onResults: onResults,
		debounced: debounce.New(wait),
	}
}

// Submit schedules a query, superseding anything still pending or
// running.
func (f *Finder) Submit(q Query) {
	f.mu.Lock()
	f.stopped = false
	f.mu.Unlock()
	f.debounced(func() {
		f.launch(q)
	})
}

func (f *Finder) launch(q Query) {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.seq++
	seq := f.seq
	f.mu.Unlock()

	go func() {
		res, err := Generate(ctx, f.db, q)
		if err != nil {
			return // superseded or invalid; newer results will follow
		}

		f.mu.Lock()
		stale := seq != f.seq
		f.mu.Unlock()
		if stale {
			return
		}
		f.onResults(q, res)
	}()
}

// Stop cancels any in-flight search and discards its results.
func (f *Finder) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
	f.seq++
	f.stopped = true
}
