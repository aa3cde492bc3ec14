package scale

import (
	"testing"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/stretchr/testify/assert"
)

func TestNaturalMajorMembers(t *testing.T) {
	assert := assert.New(t)

	s := MustNew(0, "Natural Major")
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11}, s.Members())
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, s.MemberNames(note.Flat))
}

func TestModeMembers(t *testing.T) {
	cases := []struct {
		name     string
		key      int
		expected []int
	}{
		{"Lydian", 0, []int{0, 2, 4, 6, 7, 9, 11}},
		{"Mixolydian", 0, []int{0, 2, 4, 5, 7, 9, 10}},
		{"Dorian", 2, []int{2, 4, 5, 7, 9, 11, 0}},
		{"Natural minor", 9, []int{9, 11, 0, 2, 4, 5, 7}},
		{"Phrygian", 0, []int{0, 1, 3, 5, 7, 8, 10}},
		{"Locrian", 0, []int{0, 1, 3, 5, 6, 8, 10}},
		{"Harmonic minor", 0, []int{0, 2, 3, 5, 7, 8, 11}},
	}

	assert := assert.New(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(c.expected, MustNew(c.key, c.name).Members())
		})
	}
}

func TestDiatonicChordsOfCMajor(t *testing.T) {
	assert := assert.New(t)

	chords := MustNew(0, "Natural Major").DiatonicChords()
	assert.Len(chords, DegreeCount)

	names := make([]string, 0, len(chords))
	for _, c := range chords {
		names = append(names, c.ShortName(note.Flat))
	}
	assert.Equal([]string{"C", "Dm", "Em", "F", "G", "Am", "B" + note.DimChar}, names)
}

func TestDiatonicChordShapesAreCatalogTriads(t *testing.T) {
	assert := assert.New(t)

	expected := []chord.Type{
		chord.Major, chord.Minor, chord.Minor, chord.Major,
		chord.Major, chord.Minor, chord.Diminished,
	}
	for i, c := range MustNew(7, "Natural Major").DiatonicChords() {
		assert.Equal(expected[i], c.Type, "degree %d", i)
	}
}

func TestHarmonicMinorHasAugmentedMediant(t *testing.T) {
	assert := assert.New(t)

	chords := MustNew(0, "Harmonic minor").DiatonicChords()
	types := make([]chord.Type, 0, len(chords))
	for _, c := range chords {
		types = append(types, c.Type)
	}
	assert.Equal([]chord.Type{
		chord.Minor, chord.Diminished, chord.Augmented, chord.Minor,
		chord.Major, chord.Major, chord.Diminished,
	}, types)
}

func TestDiatonicChordDegreeBounds(t *testing.T) {
	assert := assert.New(t)

	s := MustNew(0, "Natural Major")
	var degreeErr *InvalidScaleDegreeError

	_, err := s.DiatonicChord(-1)
	assert.ErrorAs(err, &degreeErr)

	_, err = s.DiatonicChord(7)
	assert.ErrorAs(err, &degreeErr)
	assert.Equal(7, degreeErr.Degree)

	c, err := s.DiatonicChord(4)
	assert.NoError(err)
	assert.Equal("G", c.ShortName(note.Flat))
}

func TestDegreeNames(t *testing.T) {
	assert := assert.New(t)

	name, err := DegreeName(0)
	assert.NoError(err)
	assert.Equal("Tonic", name)

	name, err = DegreeName(6)
	assert.NoError(err)
	assert.Equal("Subtonic", name)

	_, err = DegreeName(7)
	var degreeErr *InvalidScaleDegreeError
	assert.ErrorAs(err, &degreeErr)
}

func TestContainsAndDegreeLabels(t *testing.T) {
	assert := assert.New(t)

	s := MustNew(0, "Natural Major")
	assert.True(s.Contains(7))
	assert.True(s.Contains(7 + 12))
	assert.False(s.Contains(6))

	assert.Equal("1", s.DegreeLabel(0))
	assert.Equal("5", s.DegreeLabel(7))
	assert.Equal("b3", s.DegreeLabel(3))
}

func TestUnknownScaleName(t *testing.T) {
	_, err := New(0, "Pentatonic")
	assert.Error(t, err)
}

func TestTemplateNames(t *testing.T) {
	assert.Equal(t, []string{
		"Lydian", "Natural Major", "Mixolydian", "Dorian",
		"Natural minor", "Phrygian", "Locrian", "Harmonic minor",
	}, TemplateNames())
}
