package interval

import (
	"math/bits"
	"sort"

	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/util"
)

// Semitone distances for the named intervals.
const (
	Root        = 0
	SemiTone    = 1
	Minor2nd    = 1
	Major2nd    = 2
	Minor3rd    = 3
	Major3rd    = 4
	Perfect4th  = 5
	Dim5th      = 6
	TriTone     = 6
	Perfect5th  = 7
	Aug5th      = 8
	Minor6th    = 8
	Major6th    = 9
	Minor7th    = 10
	Major7th    = 11
	Octave      = 12
	Major9th    = 14
	Perfect11th = 17
	Major13th   = 21
)

// Signature is a 12-bit set of pitch classes, one bit per chromatic
// tone. Two note collections have the same signature iff they reduce
// to the same pitch-class set.
type Signature = uint16

// Normalize reduces arbitrary note values to a sorted, duplicate-free
// list of pitch classes.
func Normalize(values []int) []int {
	set := make(map[int]bool)
	for _, v := range values {
		set[note.PitchClassOf(v)] = true
	}
	res := util.GetKeys(set)
	sort.Ints(res)
	return res
}

// SignatureOf computes the pitch-class-set signature of values.
func SignatureOf(values []int) Signature {
	var sig Signature
	for _, v := range values {
		sig |= 1 << note.PitchClassOf(v)
	}
	return sig
}

// SetDistance is the size of the symmetric difference between the two
// pitch-class sets, i.e. how many tones appear in exactly one of them.
func SetDistance(a, b []int) int {
	return bits.OnesCount16(SignatureOf(a) ^ SignatureOf(b))
}

// NearSignatures enumerates every signature whose pitch-class set
// differs from sig in exactly distance tones.
func NearSignatures(sig Signature, distance int) []Signature {
	if distance < 0 {
		return nil
	}
	if distance == 0 {
		return []Signature{sig}
	}

	var res []Signature
	var walk func(mask Signature, next, left int)
	walk = func(mask Signature, next, left int) {
		if left == 0 {
			res = append(res, sig^mask)
			return
		}
		for bit := next; bit <= note.OctaveSize-left; bit++ {
			walk(mask|1<<bit, bit+1, left-1)
		}
	}
	walk(0, 0, distance)
	return res
}

// Distance is the minimal number of semitone steps between two pitch
// classes going either way around the 12-cycle, always in [0,6].
func Distance(a, b int) int {
	d := note.PitchClassOf(a - b)
	return util.Min(d, note.OctaveSize-d)
}

// Category classifies an unordered pair of pitch classes by minimal
// distance. A distance and its complement to 12 land in the same
// category; Unison (distance 0) is never drawn on the circle.
type Category int

const (
	Unison Category = iota
	Minor2Major7
	Major2Minor7
	Minor3Major6
	Major3Minor6
	Perfect4Perfect5
	Dim5
)

var categoryNames = [...]string{"unison", "m2/M7", "M2/m7", "m3/M6", "M3/m6", "P4/P5", "dim5"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Classify maps a pair of pitch classes to its interval category.
func Classify(a, b int) Category {
	return Category(Distance(a, b))
}
