package player

import (
	"testing"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/stretchr/testify/assert"
)

func TestKeysAnchorAtMiddleC(t *testing.T) {
	assert := assert.New(t)

	c := chord.MustNew(0, chord.Major)
	assert.Equal([]uint8{60, 64, 67}, Keys(c.NoteSequence()))

	c.CycleInversion()
	assert.Equal([]uint8{64, 67, 72}, Keys(c.NoteSequence()))
}

func TestKeysDropOutOfRangeValues(t *testing.T) {
	assert.Equal(t, []uint8{60, 127}, Keys([]int{-70, 0, 67, 90}))
}

func TestProgressionSMFHasOneEventPairPerNote(t *testing.T) {
	assert := assert.New(t)

	chords := []*chord.Chord{
		chord.MustNew(0, chord.Major),
		chord.MustNew(9, chord.Minor),
	}
	s := ProgressionSMF(chords, 4)

	assert.Len(s.Tracks, 1)
	// 3 on + 3 off per chord, plus end-of-track.
	assert.Len(s.Tracks[0], 2*2*3+1)
}
