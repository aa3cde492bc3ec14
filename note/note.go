package note

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PitchClass is one of the 12 chromatic tones, 0 (C) through 11 (B).
// Note values outside [0,11] carry octave information on top of the
// pitch class: value 12 is C one octave up, and so on.
type PitchClass = int

const OctaveSize = 12

// Degree symbol used when naming diminished chords.
const DimChar = "°"

type Style int

const (
	Flat Style = iota
	Sharp
)

var namesFlat = [OctaveSize]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
var namesSharp = [OctaveSize]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func template(style Style) [OctaveSize]string {
	if style == Sharp {
		return namesSharp
	}
	return namesFlat
}

// Name returns the display name of a note value without its octave,
// e.g. Name(13, Flat) == "Db".
func Name(value int, style Style) string {
	return template(style)[PitchClassOf(value)]
}

// NameWithOctave appends the octave number to the name, e.g. "Db1".
func NameWithOctave(value int, style Style) string {
	return Name(value, style) + strconv.Itoa(value/OctaveSize)
}

// Names returns count consecutive note names starting at start.
func Names(start, count int, style Style) []string {
	res := make([]string, 0, count)
	for i := 0; i < count; i++ {
		res = append(res, Name(start+i, style))
	}
	return res
}

// PitchClassOf reduces a note value to its pitch class. Negative
// values are brought into range first.
func PitchClassOf(value int) PitchClass {
	return ((value % OctaveSize) + OctaveSize) % OctaveSize
}

// StyleOf infers the naming style from a set of note names: any flat
// name makes the whole set flat, which is also the default.
func StyleOf(names []string) Style {
	for _, n := range names {
		if strings.Contains(n, "#") {
			return Sharp
		}
	}
	return Flat
}

var namePattern = regexp.MustCompile(`^([A-G][b#]?)(\d*)$`)

// Value parses a note name with an optional octave suffix ("Eb", "C4")
// into a note value.
func Value(name string) (int, error) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, fmt.Errorf("invalid note name: %q", name)
	}

	tmpl := template(StyleOf([]string{m[1]}))
	for i, n := range tmpl {
		if n == m[1] {
			octave := 0
			if m[2] != "" {
				octave, _ = strconv.Atoi(m[2])
			}
			return i + octave*OctaveSize, nil
		}
	}
	return 0, fmt.Errorf("invalid note name: %q", name)
}

// IsDiatonic reports whether the note value is one of the white keys.
func IsDiatonic(value int) bool {
	name := Name(value, Flat)
	return !strings.ContainsAny(name, "b#")
}
