package circle

import (
	"testing"

	"github.com/improperdecoherence/chordlab/interval"
	"github.com/stretchr/testify/assert"
)

func TestCMajorTriadAgainstKeyC(t *testing.T) {
	assert := assert.New(t)

	lines := Classify([]int{0, 4, 7}, 0)
	assert.Len(lines, 3)

	assert.Equal(Line{A: 0, B: 4, Category: interval.Major3Minor6}, lines[0])
	assert.Equal(Line{A: 0, B: 7, Category: interval.Perfect4Perfect5}, lines[1])
	assert.Equal(Line{A: 4, B: 7, Category: interval.Minor3Major6}, lines[2])
}

func TestUnisonPairsAreNotReported(t *testing.T) {
	lines := Classify([]int{5, 5, 17}, 0)
	assert.Empty(t, lines)
}

func TestCategoriesUseMinimalDistance(t *testing.T) {
	assert := assert.New(t)

	// 11 semitones up is 1 down: a m2/M7 line.
	lines := Classify([]int{0, 11}, 0)
	assert.Len(lines, 1)
	assert.Equal(interval.Minor2Major7, lines[0].Category)

	lines = Classify([]int{0, 6}, 0)
	assert.Equal(interval.Dim5, lines[0].Category)
}

func TestClockPositionsRotateWithKey(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, ClockPosition(7, 7))
	assert.Equal(5, ClockPosition(0, 7))
	assert.Equal(2, ClockPosition(9, 7))
}

func TestOrderFollowsClockPositionOfTheKey(t *testing.T) {
	assert := assert.New(t)

	// Key G: G leads, then B, then D.
	lines := Classify([]int{2, 7, 11}, 7)
	assert.Equal(7, lines[0].A)
	assert.Equal(11, lines[0].B)
	assert.Equal(7, lines[1].A)
	assert.Equal(2, lines[1].B)
	assert.Equal(11, lines[2].A)
	assert.Equal(2, lines[2].B)
}

func TestImpliedRootLinesAreDashed(t *testing.T) {
	assert := assert.New(t)

	// D minor against key C: C is implied, its lines dashed.
	lines := ClassifyWithImpliedRoot([]int{2, 5, 9}, 0)
	assert.Len(lines, 6)

	dashed := 0
	for _, l := range lines {
		if l.Dashed {
			dashed++
			assert.Equal(0, l.A)
		} else {
			assert.NotEqual(0, l.A)
		}
	}
	assert.Equal(3, dashed)

	// No implied root when the key is part of the set.
	for _, l := range ClassifyWithImpliedRoot([]int{0, 4, 7}, 0) {
		assert.False(l.Dashed)
	}
}
