package scale

import (
	"fmt"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
)

// DegreeCount is the number of degrees in every supported scale; only
// diatonic heptatonic scales are modeled.
const DegreeCount = 7

// InvalidScaleDegreeError reports a degree index outside 0..6.
type InvalidScaleDegreeError struct {
	Degree int
}

func (e *InvalidScaleDegreeError) Error() string {
	return fmt.Sprintf("invalid scale degree: %d", e.Degree)
}

// Traditional names of the seven scale degrees, by index.
var degreeNames = [DegreeCount]string{
	"Tonic", "Supertonic", "Mediant", "Subdominant", "Dominant", "Submediant", "Subtonic",
}

// DegreeName resolves a 0-based degree index to its traditional name.
func DegreeName(degree int) (string, error) {
	if degree < 0 || degree >= DegreeCount {
		return "", &InvalidScaleDegreeError{Degree: degree}
	}
	return degreeNames[degree], nil
}

type template struct {
	name string
	base []int // ascending offsets of the base pattern, octave included
	mode int   // 1-based mode of the base pattern
}

var naturalMajor = []int{
	interval.Root, interval.Major2nd, interval.Major3rd, interval.Perfect4th,
	interval.Perfect5th, interval.Major6th, interval.Major7th, interval.Octave,
}

var harmonicMinor = []int{
	interval.Root, interval.Major2nd, interval.Minor3rd, interval.Perfect4th,
	interval.Perfect5th, interval.Minor6th, interval.Major7th, interval.Octave,
}

// The seven church modes are expressed as rotations of the
// natural-major step pattern; harmonic minor stands alone.
var templates = [...]template{
	{"Lydian", naturalMajor, 4},
	{"Natural Major", naturalMajor, 1},
	{"Mixolydian", naturalMajor, 5},
	{"Dorian", naturalMajor, 2},
	{"Natural minor", naturalMajor, 6},
	{"Phrygian", naturalMajor, 3},
	{"Locrian", naturalMajor, 7},
	{"Harmonic minor", harmonicMinor, 1},
}

// TemplateNames lists the supported scale names in catalog order.
func TemplateNames() []string {
	res := make([]string, 0, len(templates))
	for _, t := range templates {
		res = append(res, t.name)
	}
	return res
}

// Scale is a key pitch class plus one of the named interval patterns.
type Scale struct {
	Key  note.PitchClass
	tmpl *template
}

// New builds a scale in the given key. The scale name must be one of
// TemplateNames.
func New(key int, name string) (*Scale, error) {
	for i := range templates {
		if templates[i].name == name {
			return &Scale{Key: note.PitchClassOf(key), tmpl: &templates[i]}, nil
		}
	}
	return nil, fmt.Errorf("unknown scale: %q", name)
}

// MustNew is New for callers with catalog-constant names.
func MustNew(key int, name string) *Scale {
	s, err := New(key, name)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Name combines key and scale name, e.g. "Eb Dorian".
func (s *Scale) Name(style note.Style) string {
	return note.Name(s.Key, style) + " " + s.tmpl.name
}

// TemplateName returns the scale's pattern name.
func (s *Scale) TemplateName() string {
	return s.tmpl.name
}

// steps are the semitone step sizes of the scale, the base pattern's
// steps rotated left to start at the template's mode.
func (s *Scale) steps() []int {
	base := s.tmpl.base
	n := len(base) - 1

	res := make([]int, 0, n)
	for i := 0; i < n; i++ {
		j := (i + s.tmpl.mode - 1) % n
		res = append(res, base[j+1]-base[j])
	}
	return res
}

// Intervals returns the seven key-relative offsets of the scale,
// starting at 0.
func (s *Scale) Intervals() []int {
	steps := s.steps()
	res := make([]int, 0, DegreeCount)
	acc := 0
	for i := 0; i < DegreeCount; i++ {
		res = append(res, acc)
		acc += steps[i]
	}
	return res
}

// Members returns the seven pitch classes of the scale in degree
// order, starting at the key.
func (s *Scale) Members() []int {
	res := make([]int, 0, DegreeCount)
	for _, o := range s.Intervals() {
		res = append(res, note.PitchClassOf(s.Key+o))
	}
	return res
}

// MemberNames returns the display names of Members.
func (s *Scale) MemberNames(style note.Style) []string {
	members := s.Members()
	res := make([]string, 0, len(members))
	for _, m := range members {
		res = append(res, note.Name(m, style))
	}
	return res
}

// Contains reports whether the pitch class of value belongs to the
// scale.
func (s *Scale) Contains(value int) bool {
	pc := note.PitchClassOf(value)
	for _, m := range s.Members() {
		if m == pc {
			return true
		}
	}
	return false
}

// DegreeLabel names a pitch class relative to the scale: "1".."7" for
// members, "b3"/"#4" style labels for the chromatic neighbors of a
// member, "" otherwise.
func (s *Scale) DegreeLabel(value int) string {
	members := s.Members()
	position := make(map[int]int)
	for i, m := range members {
		position[m] = i + 1
	}

	pc := note.PitchClassOf(value)
	if p, ok := position[pc]; ok {
		return fmt.Sprintf("%d", p)
	}
	if p, ok := position[note.PitchClassOf(pc+1)]; ok {
		return fmt.Sprintf("b%d", p)
	}
	if p, ok := position[note.PitchClassOf(pc-1)]; ok {
		return fmt.Sprintf("#%d", p)
	}
	return ""
}

// DiatonicChord builds the triad rooted at the given degree by
// stacking the offsets at degrees i, i+2 and i+4, carrying wrapped
// degrees an octave up, then re-expressing them relative to the
// degree's own root. The chord type is the exact catalog match, or
// Other.
func (s *Scale) DiatonicChord(degree int) (*chord.Chord, error) {
	if degree < 0 || degree >= DegreeCount {
		return nil, &InvalidScaleDegreeError{Degree: degree}
	}

	offsets := s.Intervals()
	at := func(d int) int {
		if d < DegreeCount {
			return offsets[d]
		}
		return offsets[d%DegreeCount] + interval.Octave
	}

	root := at(degree)
	shape := []int{0, at(degree+2) - root, at(degree+4) - root}
	return chord.FromShape(s.Key+root, shape), nil
}

// DiatonicChords derives the triads of all seven degrees in degree
// order.
func (s *Scale) DiatonicChords() []*chord.Chord {
	res := make([]*chord.Chord, 0, DegreeCount)
	for i := 0; i < DegreeCount; i++ {
		c, _ := s.DiatonicChord(i)
		res = append(res, c)
	}
	return res
}
