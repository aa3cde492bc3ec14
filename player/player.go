// Package player turns chord voicings into MIDI note material, for
// the live output command and for SMF export. It sends no audio; the
// engine stays synthesis-free.
package player

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/improperdecoherence/chordlab/chord"
)

// MiddleC anchors note value 0 (pitch class C) at MIDI key 60.
const MiddleC = 60

const DefaultVelocity = 100

// Keys maps a note-value sequence to MIDI keys around middle C,
// dropping anything outside the 0..127 key range.
func Keys(noteValues []int) []uint8 {
	res := make([]uint8, 0, len(noteValues))
	for _, v := range noteValues {
		key := MiddleC + v
		if key < 0 || key > 127 {
			continue
		}
		res = append(res, uint8(key))
	}
	return res
}

// ProgressionSMF renders a chord sequence as a single-track standard
// MIDI file, one chord per bar of the given length in quarter notes.
func ProgressionSMF(chords []*chord.Chord, quartersPerChord int) *smf.SMF {
	const ticksPerQuarter = 960

	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	duration := uint32(ticksPerQuarter * quartersPerChord)

	for _, c := range chords {
		keys := Keys(c.NoteSequence())
		for _, k := range keys {
			track.Add(0, midi.NoteOn(0, k, DefaultVelocity))
		}
		for i, k := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = duration
			}
			track.Add(delta, midi.NoteOff(0, k))
		}
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return &res
}
