package model

import (
	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/note"
)

// Notes is a plain note-value selection as sent by UI clients.
type Notes = []int

// ChordSpec names a chord the way the chord editor builds one: root
// name, type name, ordered modifier names.
type ChordSpec struct {
	Root      string   `json:"root"`
	Type      string   `json:"type"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// ToChord resolves the spec against the catalog.
func (s ChordSpec) ToChord() (*chord.Chord, error) {
	root, err := note.Value(s.Root)
	if err != nil {
		return nil, err
	}
	t, err := chord.ParseType(s.Type)
	if err != nil {
		return nil, err
	}

	mods := make([]chord.Modifier, 0, len(s.Modifiers))
	for _, name := range s.Modifiers {
		m, err := chord.ParseModifier(name)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return chord.New(root, t, mods...)
}

// ChordInfo is the wire form of a chord.
type ChordInfo struct {
	Root          int      `json:"root"`
	RootName      string   `json:"root_name"`
	Name          string   `json:"name"`
	LongName      string   `json:"long_name"`
	Inversion     int      `json:"inversion"`
	PitchClassSet []int    `json:"pitch_class_set"`
	NoteSequence  []int    `json:"note_sequence"`
	NoteNames     []string `json:"note_names"`
}

// NewChordInfo flattens a chord for transport.
func NewChordInfo(c *chord.Chord) ChordInfo {
	return ChordInfo{
		Root:          c.Root,
		RootName:      note.Name(c.Root, note.Flat),
		Name:          c.ShortName(note.Flat),
		LongName:      c.LongName(note.Flat),
		Inversion:     c.Inversion,
		PitchClassSet: c.PitchClassSet(),
		NoteSequence:  c.NoteSequence(),
		NoteNames:     c.NoteNames(note.Flat),
	}
}

// NewChordInfos flattens a result sequence.
func NewChordInfos(chords []*chord.Chord) []ChordInfo {
	res := make([]ChordInfo, 0, len(chords))
	for _, c := range chords {
		res = append(res, NewChordInfo(c))
	}
	return res
}
