// Package circle produces the classification data behind the
// interval-circle visualization: one classified line per pair of
// pitch classes, plus the 12-point clock layout relative to the
// current key. Drawing belongs to the consumer.
package circle

import (
	"github.com/improperdecoherence/chordlab/interval"
	"github.com/improperdecoherence/chordlab/note"
)

// Line is one interval to draw between two pitch classes. Dashed
// marks lines to an implied key root that is not actually part of the
// selection.
type Line struct {
	A        note.PitchClass
	B        note.PitchClass
	Category interval.Category
	Dashed   bool
}

// ClockPosition maps a pitch class to its radial position, clock-hour
// order with the key at 12 o'clock.
func ClockPosition(value, key int) int {
	return note.PitchClassOf(value - key)
}

// Classify tags every unordered pair of distinct pitch classes in the
// set with its interval category. Pairs at distance 0 (unison) are
// not drawn and not reported. Order follows clock position around the
// circle, so repeated calls are stable.
func Classify(set []int, key int) []Line {
	return classify(set, key, false)
}

// ClassifyWithImpliedRoot is Classify, but when the key itself is not
// in the set the key root joins as an implied tone and its lines come
// back dashed.
func ClassifyWithImpliedRoot(set []int, key int) []Line {
	return classify(set, key, true)
}

func classify(set []int, key int, implyRoot bool) []Line {
	normalized := interval.Normalize(set)

	// Order by clock position so the key's tone leads.
	byPosition := make([]int, 0, len(normalized)+1)
	rootPresent := false
	for _, pc := range normalized {
		if pc == note.PitchClassOf(key) {
			rootPresent = true
		}
	}

	implied := implyRoot && !rootPresent
	if implied {
		byPosition = append(byPosition, note.PitchClassOf(key))
	}
	for p := 0; p < note.OctaveSize; p++ {
		for _, pc := range normalized {
			if ClockPosition(pc, key) == p {
				byPosition = append(byPosition, pc)
			}
		}
	}

	var res []Line
	for i := 0; i < len(byPosition); i++ {
		for j := i + 1; j < len(byPosition); j++ {
			a, b := byPosition[i], byPosition[j]
			category := interval.Classify(a, b)
			if category == interval.Unison {
				continue
			}
			res = append(res, Line{
				A:        a,
				B:        b,
				Category: category,
				Dashed:   implied && i == 0,
			})
		}
	}
	return res
}
