package chord

import (
	"sort"
	"strconv"
	"strings"

	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
)

// Type is one of the four base chord qualities in the catalog. Other
// marks a shape which matches no catalog entry exactly.
type Type int

const (
	Major Type = iota
	Minor
	Diminished
	Augmented

	Other Type = -1
)

type typeDef struct {
	longName  string
	shortName string
	shape     []int
}

// Catalog of base chord shapes, in declaration order.
var typeDefs = [...]typeDef{
	Major:      {"major", "", []int{interval.Root, interval.Major3rd, interval.Perfect5th}},
	Minor:      {"minor", "m", []int{interval.Root, interval.Minor3rd, interval.Perfect5th}},
	Diminished: {"diminished", note.DimChar, []int{interval.Root, interval.Minor3rd, interval.Dim5th}},
	Augmented:  {"augmented", "+", []int{interval.Root, interval.Major3rd, interval.Aug5th}},
}

// Types lists the base chord types in catalog order.
func Types() []Type {
	return []Type{Major, Minor, Diminished, Augmented}
}

func (t Type) valid() bool {
	return t >= 0 && int(t) < len(typeDefs)
}

func (t Type) String() string {
	if !t.valid() {
		return "other"
	}
	return typeDefs[t].longName
}

// ParseType resolves a chord-type name ("major", "minor", ...).
func ParseType(name string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(typeDefs[t].longName, name) {
			return t, nil
		}
	}
	return 0, &UnknownTypeError{Name: name}
}

// Modifier is a named transform of a chord shape: it may remove
// conflicting offsets and adds its own. Dominant extensions cancel the
// shorter dominants they subsume.
type Modifier int

const (
	Dominant7 Modifier = iota
	Major7
	Dominant9
	Dominant11
	Dominant13
	Sus2
	Sus4
	Add2
	Add6
	Add9
	Flat5
)

type modifierDef struct {
	longName  string
	shortName string
	add       []int
	remove    []int
	cancels   []Modifier
}

// Offsets are kept in root-relative chord space, so the compound
// intervals of the extended dominants reduce mod 12 (M9 -> 2,
// P11 -> 5, M13 -> 9).
var modifierDefs = [...]modifierDef{
	Dominant7:  {"dominant 7", "7", []int{interval.Minor7th}, nil, nil},
	Major7:     {"major 7", "maj7", []int{interval.Major7th}, nil, nil},
	Dominant9:  {"dominant 9", "9", []int{interval.Minor7th, interval.Major9th % note.OctaveSize}, nil, []Modifier{Dominant7}},
	Dominant11: {"dominant 11", "11", []int{interval.Minor7th, interval.Major9th % note.OctaveSize, interval.Perfect11th % note.OctaveSize}, nil, []Modifier{Dominant7, Dominant9}},
	Dominant13: {"dominant 13", "13", []int{interval.Minor7th, interval.Major9th % note.OctaveSize, interval.Perfect11th % note.OctaveSize, interval.Major13th % note.OctaveSize}, nil, []Modifier{Dominant7, Dominant9, Dominant11}},
	Sus2:       {"suspended 2nd", "sus2", []int{interval.Major2nd}, []int{interval.Minor3rd, interval.Major3rd}, nil},
	Sus4:       {"suspended 4th", "sus4", []int{interval.Perfect4th}, []int{interval.Minor3rd, interval.Major3rd}, nil},
	Add2:       {"add 2", "+2", []int{interval.Major2nd}, nil, nil},
	Add6:       {"add 6", "+6", []int{interval.Major6th}, nil, nil},
	Add9:       {"add 9", "+9", []int{interval.Major9th % note.OctaveSize}, nil, nil},
	Flat5:      {"flat 5th", "b5", []int{interval.Dim5th}, []int{interval.Perfect5th}, nil},
}

// Modifiers lists all modifiers in catalog order.
func Modifiers() []Modifier {
	res := make([]Modifier, len(modifierDefs))
	for i := range modifierDefs {
		res[i] = Modifier(i)
	}
	return res
}

func (m Modifier) valid() bool {
	return m >= 0 && int(m) < len(modifierDefs)
}

func (m Modifier) String() string {
	if !m.valid() {
		return "modifier(" + strconv.Itoa(int(m)) + ")"
	}
	return modifierDefs[m].longName
}

// ParseModifier resolves a modifier by short or long name.
func ParseModifier(name string) (Modifier, error) {
	for _, m := range Modifiers() {
		if strings.EqualFold(modifierDefs[m].shortName, name) ||
			strings.EqualFold(modifierDefs[m].longName, name) {
			return m, nil
		}
	}
	return 0, &UnknownModifierError{Name: name}
}

// resolveModifiers drops modifiers which a later modifier cancels,
// preserving the order of the survivors.
func resolveModifiers(mods []Modifier) []Modifier {
	canceled := make(map[Modifier]bool)
	for _, m := range mods {
		for _, c := range modifierDefs[m].cancels {
			canceled[c] = true
		}
	}

	var res []Modifier
	for _, m := range mods {
		if !canceled[m] {
			res = append(res, m)
		}
	}
	return res
}

// apply transforms a shape set in place: conflicting offsets go,
// added offsets come. Applying the same modifier twice is a no-op.
func (m Modifier) apply(shape map[int]bool) {
	def := modifierDefs[m]
	for _, r := range def.remove {
		delete(shape, r)
	}
	for _, a := range def.add {
		shape[a] = true
	}
}

// BuildShape resolves a base type plus an ordered modifier sequence
// into a sorted offset set. Modifiers apply left to right after
// cancellation.
func BuildShape(t Type, mods []Modifier) ([]int, error) {
	if !t.valid() {
		return nil, &UnknownTypeError{Name: "type(" + strconv.Itoa(int(t)) + ")"}
	}
	for _, m := range mods {
		if !m.valid() {
			return nil, &UnknownModifierError{Name: m.String()}
		}
	}

	shape := make(map[int]bool)
	for _, o := range typeDefs[t].shape {
		shape[o] = true
	}
	for _, m := range resolveModifiers(mods) {
		m.apply(shape)
	}

	res := make([]int, 0, len(shape))
	for o := range shape {
		res = append(res, o)
	}
	sort.Ints(res)
	return res, nil
}

// matchType finds the base type whose shape equals the given offsets
// exactly, or Other.
func matchType(shape []int) Type {
	sig := interval.SignatureOf(shape)
	for _, t := range Types() {
		if interval.SignatureOf(typeDefs[t].shape) == sig {
			return t
		}
	}
	return Other
}
