package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/chorddb"
	"github.com/improperdecoherence/chordlab/constants"
	"github.com/improperdecoherence/chordlab/finder"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

var listenDistance int

func init() {
	listenCmd.Flags().IntVar(&listenDistance, "distance", 0, "exact set distance to search at")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Matches chords against a live MIDI input",
	Long:  `Treats the currently held keys of the first MIDI input as the seed selection and prints matching chords as you play.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func printMatches(q finder.Query, chords []*chord.Chord) {
	if len(chords) == 0 {
		fmt.Println("no matches")
		return
	}
	names := make([]string, 0, len(chords))
	for _, c := range chords {
		names = append(names, c.ShortName(note.Flat))
	}
	fmt.Printf("%v matches: %v\n", len(chords), names)
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	f := finder.NewFinder(chorddb.Default(), constants.SearchDebounce, printMatches)
	held := make(map[uint8]bool)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held[key] = true
		case msg.GetNoteEnd(&ch, &key):
			delete(held, key)
		default:
			return
		}

		seed := make([]int, 0, len(held))
		for k := range held {
			seed = append(seed, int(k))
		}
		f.Submit(finder.Query{
			Kind:  finder.MatchingChords,
			Match: finder.MatchingParams{Seed: seed, Distance: listenDistance},
		})
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	<-sigc

	stop()
	f.Stop()
}
