package chord

import (
	"math"
	"sort"
	"strings"

	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/util"
)

// Chord is a root pitch class plus a resolved offset set and an
// inversion counter. The pitch-class set is independent of inversion;
// only NoteSequence ordering changes with it.
type Chord struct {
	Root      note.PitchClass
	Type      Type
	Modifiers []Modifier
	Inversion int

	shape []int // resolved offsets, sorted, 0 first
}

// New builds a chord with inversion 0, delegating shape resolution to
// the catalog.
func New(root int, t Type, mods ...Modifier) (*Chord, error) {
	shape, err := BuildShape(t, mods)
	if err != nil {
		return nil, err
	}
	return &Chord{
		Root:      note.PitchClassOf(root),
		Type:      t,
		Modifiers: resolveModifiers(mods),
		shape:     shape,
	}, nil
}

// MustNew is New for callers with catalog-constant arguments.
func MustNew(root int, t Type, mods ...Modifier) *Chord {
	c, err := New(root, t, mods...)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// FromShape builds a chord from explicit root-relative offsets, for
// shapes derived outside the catalog (scale degrees). The type is the
// exact catalog match, or Other.
func FromShape(root int, shape []int) *Chord {
	normalized := interval.Normalize(shape)
	return &Chord{
		Root:  note.PitchClassOf(root),
		Type:  matchType(normalized),
		shape: normalized,
	}
}

// FromPitchClasses detects a catalog chord inside a raw note
// selection. The lowest note is taken as the root; the match is by
// base-shape containment, so extra tones (modifiers) are tolerated.
// At least three notes are required.
func FromPitchClasses(values []int) (*Chord, bool) {
	if len(values) < 3 {
		return nil, false
	}

	sorted := util.CopySlice(values)
	sort.Ints(sorted)
	root := sorted[0]

	present := make(map[int]bool)
	for _, v := range sorted {
		present[note.PitchClassOf(v-root)] = true
	}

	found := Other
	for _, t := range Types() {
		contained := true
		for _, o := range typeDefs[t].shape {
			if !present[o] {
				contained = false
				break
			}
		}
		if contained {
			found = t
		}
	}

	if found == Other {
		return nil, false
	}
	return MustNew(root, found), true
}

// Shape returns the resolved offset set, sorted ascending.
func (c *Chord) Shape() []int {
	return util.CopySlice(c.shape)
}

// NumberOfNotes returns the size of the chord's shape.
func (c *Chord) NumberOfNotes() int {
	return len(c.shape)
}

// PitchClassSet derives the chord's pitch classes, sorted ascending.
// It is invariant under inversion.
func (c *Chord) PitchClassSet() []int {
	values := make([]int, 0, len(c.shape))
	for _, o := range c.shape {
		values = append(values, c.Root+o)
	}
	return interval.Normalize(values)
}

// Signature is the 12-bit form of PitchClassSet. Two chords are
// equivalent iff their signatures are equal.
func (c *Chord) Signature() interval.Signature {
	var sig interval.Signature
	for _, o := range c.shape {
		sig |= 1 << note.PitchClassOf(c.Root+o)
	}
	return sig
}

// Equal reports pitch-class-set equivalence, regardless of root,
// spelling or inversion.
func (c *Chord) Equal(other *Chord) bool {
	return c.Signature() == other.Signature()
}

// NoteSequence is the playback ordering: shape offsets sorted
// ascending, rotated left by the inversion, with wrapped entries an
// octave up, all relative to the root's note value.
func (c *Chord) NoteSequence() []int {
	n := len(c.shape)
	if n == 0 {
		return nil
	}

	rot := c.Inversion % n
	res := make([]int, 0, n)
	for i := 0; i < n; i++ {
		offset := c.shape[(i+rot)%n]
		if i+rot >= n {
			offset += interval.Octave
		}
		res = append(res, c.Root+offset)
	}
	return res
}

// SetInversion sets the inversion counter, reduced mod the shape size.
func (c *Chord) SetInversion(steps int) {
	n := len(c.shape)
	if n == 0 {
		return
	}
	c.Inversion = ((steps % n) + n) % n
}

// CycleInversion advances to the next inversion, wrapping back to root
// position after the last note, and returns the new note sequence.
func (c *Chord) CycleInversion() []int {
	c.SetInversion(c.Inversion + 1)
	return c.NoteSequence()
}

// Transpose moves the chord root by the given number of semitones.
func (c *Chord) Transpose(semitones int) {
	c.Root = note.PitchClassOf(c.Root + semitones)
}

// CenterOfGravity is the mean note value of the current voicing.
func (c *Chord) CenterOfGravity() float64 {
	if len(c.shape) == 0 {
		return 0
	}
	return float64(util.Sum(c.NoteSequence())) / float64(len(c.shape))
}

// InvertTowards picks the inversion whose center of gravity is closest
// to the target chord's, so that consecutive chords play in a similar
// register.
func (c *Chord) InvertTowards(target *Chord) {
	goal := target.CenterOfGravity()
	clone := c.Clone()

	best := 0
	bestDistance := math.Inf(1)
	for i := 0; i < c.NumberOfNotes(); i++ {
		clone.SetInversion(i)
		if d := math.Abs(goal - clone.CenterOfGravity()); d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	c.SetInversion(best)
}

// Clone returns an independent copy; slots store clones so that no
// mutable state is shared across owners.
func (c *Chord) Clone() *Chord {
	return &Chord{
		Root:      c.Root,
		Type:      c.Type,
		Modifiers: util.CopySlice(c.Modifiers),
		Inversion: c.Inversion,
		shape:     util.CopySlice(c.shape),
	}
}

// NoteNames resolves the current note sequence to display names.
func (c *Chord) NoteNames(style note.Style) []string {
	seq := c.NoteSequence()
	res := make([]string, 0, len(seq))
	for _, v := range seq {
		res = append(res, note.Name(v, style))
	}
	return res
}

// ShortName is the compact display name: root, type suffix, modifier
// suffixes, and a slash bass when the chord is inverted, e.g. "Cm7/G".
func (c *Chord) ShortName(style note.Style) string {
	var b strings.Builder
	b.WriteString(note.Name(c.Root, style))
	if c.Type.valid() {
		b.WriteString(typeDefs[c.Type].shortName)
	} else {
		b.WriteString("?")
	}
	for _, m := range c.Modifiers {
		b.WriteString(modifierDefs[m].shortName)
	}

	if seq := c.NoteSequence(); len(seq) > 0 {
		if bass := note.PitchClassOf(seq[0]); bass != c.Root {
			b.WriteString("/")
			b.WriteString(note.Name(bass, style))
		}
	}
	return b.String()
}

// LongName spells the chord out, e.g. "C minor dominant 7". The
// redundant "major" disappears once a modifier follows, except for
// "major 7".
func (c *Chord) LongName(style note.Style) string {
	name := note.Name(c.Root, style)
	if longType := c.Type.String(); longType != "" {
		name += " " + longType
	}

	for _, m := range c.Modifiers {
		if strings.Contains(name, " major") && !strings.Contains(name, "major 7") {
			name = strings.Replace(name, " major", "", 1)
		}
		name += " " + modifierDefs[m].longName
	}
	return name
}
