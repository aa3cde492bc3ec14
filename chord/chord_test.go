package chord

import (
	"fmt"
	"testing"

	"github.com/improperdecoherence/chordlab/note"
	"github.com/stretchr/testify/assert"
)

func TestBaseShapes(t *testing.T) {
	cases := []struct {
		chordType Type
		expected  []int
	}{
		{Major, []int{0, 4, 7}},
		{Minor, []int{0, 3, 7}},
		{Diminished, []int{0, 3, 6}},
		{Augmented, []int{0, 4, 8}},
	}

	assert := assert.New(t)
	for _, c := range cases {
		shape, err := BuildShape(c.chordType, nil)
		assert.NoError(err)
		assert.Equal(c.expected, shape)
	}
}

func TestModifierShapes(t *testing.T) {
	cases := []struct {
		name     string
		mods     []Modifier
		expected []int
	}{
		{"dominant 7", []Modifier{Dominant7}, []int{0, 4, 7, 10}},
		{"major 7", []Modifier{Major7}, []int{0, 4, 7, 11}},
		{"dominant 9", []Modifier{Dominant9}, []int{0, 2, 4, 7, 10}},
		{"sus2 replaces the third", []Modifier{Sus2}, []int{0, 2, 7}},
		{"sus4 replaces the third", []Modifier{Sus4}, []int{0, 5, 7}},
		{"flat 5 replaces the fifth", []Modifier{Flat5}, []int{0, 4, 6}},
		{"add 6", []Modifier{Add6}, []int{0, 4, 7, 9}},
		{"sus2 then sus4 keeps both colors", []Modifier{Sus2, Sus4}, []int{0, 2, 5, 7}},
	}

	assert := assert.New(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			shape, err := BuildShape(Major, c.mods)
			assert.NoError(err)
			assert.Equal(c.expected, shape)
		})
	}
}

func TestModifiersAreIdempotent(t *testing.T) {
	assert := assert.New(t)
	for _, m := range Modifiers() {
		once, err := BuildShape(Major, []Modifier{m})
		assert.NoError(err)
		twice, err := BuildShape(Major, []Modifier{m, m})
		assert.NoError(err)
		assert.Equal(once, twice, "modifier %v not idempotent", m)
	}
}

func TestDominantExtensionsCancelShorterDominants(t *testing.T) {
	assert := assert.New(t)

	nine, err := BuildShape(Major, []Modifier{Dominant7, Dominant9})
	assert.NoError(err)
	justNine, err := BuildShape(Major, []Modifier{Dominant9})
	assert.NoError(err)
	assert.Equal(justNine, nine)

	c, err := New(0, Major, Dominant7, Dominant9)
	assert.NoError(err)
	assert.Equal([]Modifier{Dominant9}, c.Modifiers)
}

func TestUnknownCatalogLookups(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseType("dorian")
	var typeErr *UnknownTypeError
	assert.ErrorAs(err, &typeErr)
	assert.Equal("dorian", typeErr.Name)

	_, err = ParseModifier("sus13")
	var modErr *UnknownModifierError
	assert.ErrorAs(err, &modErr)

	_, err = BuildShape(Type(17), nil)
	assert.ErrorAs(err, &typeErr)

	_, err = New(0, Major, Modifier(42))
	assert.ErrorAs(err, &modErr)
}

func TestPitchClassSetIgnoresInversion(t *testing.T) {
	assert := assert.New(t)

	c := MustNew(0, Major, Dominant7)
	original := c.PitchClassSet()
	assert.Equal([]int{0, 4, 7, 10}, original)

	for i := 0; i < c.NumberOfNotes(); i++ {
		c.CycleInversion()
		assert.Equal(original, c.PitchClassSet())
	}
}

func TestCycleInversionWrapsBackToRootPosition(t *testing.T) {
	assert := assert.New(t)

	c := MustNew(0, Major)
	start := c.NoteSequence()
	assert.Equal([]int{0, 4, 7}, start)

	assert.Equal([]int{4, 7, 12}, c.CycleInversion())
	assert.Equal([]int{7, 12, 16}, c.CycleInversion())
	assert.Equal(start, c.CycleInversion())
	assert.Equal(0, c.Inversion)
}

func TestShortNames(t *testing.T) {
	cases := []struct {
		chord    *Chord
		expected string
	}{
		{MustNew(0, Major), "C"},
		{MustNew(2, Minor), "Dm"},
		{MustNew(11, Diminished), "B" + note.DimChar},
		{MustNew(4, Augmented), "E+"},
		{MustNew(0, Minor, Dominant7), "Cm7"},
		{MustNew(0, Major, Sus4), "Csus4"},
	}

	assert := assert.New(t)
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			assert.Equal(c.expected, c.chord.ShortName(note.Flat))
		})
	}
}

func TestInvertedChordGetsSlashBass(t *testing.T) {
	assert := assert.New(t)

	c := MustNew(0, Major)
	c.CycleInversion()
	assert.Equal("C/E", c.ShortName(note.Flat))

	c.CycleInversion()
	assert.Equal("C/G", c.ShortName(note.Flat))
}

func TestLongNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("C major", MustNew(0, Major).LongName(note.Flat))
	assert.Equal("C dominant 7", MustNew(0, Major, Dominant7).LongName(note.Flat))
	assert.Equal("C major 7", MustNew(0, Major, Major7).LongName(note.Flat))
	assert.Equal("Eb minor dominant 7", MustNew(3, Minor, Dominant7).LongName(note.Flat))
}

func TestEqualIsPitchClassSetEquivalence(t *testing.T) {
	assert := assert.New(t)

	cAug := MustNew(0, Augmented)
	eAug := MustNew(4, Augmented)
	abAug := MustNew(8, Augmented)
	cMaj := MustNew(0, Major)

	assert.True(cAug.Equal(eAug))
	assert.True(cAug.Equal(abAug))
	assert.False(cAug.Equal(cMaj))

	inverted := cAug.Clone()
	inverted.CycleInversion()
	assert.True(cAug.Equal(inverted))
}

func TestFromShapeMatchesCatalogExactly(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Major, FromShape(5, []int{0, 4, 7}).Type)
	assert.Equal(Diminished, FromShape(11, []int{0, 3, 6}).Type)
	assert.Equal(Other, FromShape(0, []int{0, 1, 2}).Type)
	assert.Equal(Other, FromShape(0, []int{0, 4, 7, 10}).Type)
}

func TestFromPitchClasses(t *testing.T) {
	assert := assert.New(t)

	c, ok := FromPitchClasses([]int{60, 64, 67})
	assert.True(ok)
	assert.Equal(Major, c.Type)
	assert.Equal(0, c.Root)

	c, ok = FromPitchClasses([]int{62, 65, 69, 72})
	assert.True(ok)
	assert.Equal(Minor, c.Type)
	assert.Equal(2, c.Root)

	_, ok = FromPitchClasses([]int{60, 64})
	assert.False(ok)

	_, ok = FromPitchClasses([]int{60, 61, 62})
	assert.False(ok)
}

func TestCloneIsIndependent(t *testing.T) {
	assert := assert.New(t)

	c := MustNew(0, Major, Dominant7)
	clone := c.Clone()
	clone.CycleInversion()
	clone.Transpose(2)

	assert.Equal(0, c.Inversion)
	assert.Equal(0, c.Root)
	assert.Equal(2, clone.Root)
}

func TestInvertTowardsPicksClosestRegister(t *testing.T) {
	assert := assert.New(t)

	target := MustNew(0, Major)
	target.SetInversion(2) // voicing [7 12 16]

	c := MustNew(2, Minor)
	c.InvertTowards(target)

	// The chosen inversion must be at least as close as every other.
	chosen := c.Inversion
	best := c.CenterOfGravity()
	for i := 0; i < c.NumberOfNotes(); i++ {
		c.SetInversion(i)
		d := c.CenterOfGravity() - target.CenterOfGravity()
		if d < 0 {
			d = -d
		}
		b := best - target.CenterOfGravity()
		if b < 0 {
			b = -b
		}
		assert.LessOrEqual(b, d, fmt.Sprintf("inversion %d beats chosen %d", i, chosen))
	}
}
