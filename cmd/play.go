package cmd

import (
	"fmt"
	"time"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/player"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

var playInversion int
var playArpeggioMs int
var playSustainMs int

func init() {
	playCmd.Flags().IntVar(&playInversion, "inversion", 0, "inversion to play the chord in")
	playCmd.Flags().IntVar(&playArpeggioMs, "arpeggio", 0, "milliseconds between note onsets, 0 plays a block chord")
	playCmd.Flags().IntVar(&playSustainMs, "sustain", 1000, "milliseconds to hold the chord")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play root type [modifier...]",
	Short: "Plays a chord on the first MIDI output",
	Long:  `Builds a chord from the catalog and plays its current voicing, e.g. "chordlab play C minor 7".`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(play(args[0], args[1], args[2:]))
	},
}

func buildChord(rootName, typeName string, modifierNames []string) (*chord.Chord, error) {
	root, err := note.Value(rootName)
	if err != nil {
		return nil, err
	}
	t, err := chord.ParseType(typeName)
	if err != nil {
		return nil, err
	}
	mods := make([]chord.Modifier, 0, len(modifierNames))
	for _, name := range modifierNames {
		m, err := chord.ParseModifier(name)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return chord.New(root, t, mods...)
}

func play(rootName, typeName string, modifierNames []string) error {
	c, err := buildChord(rootName, typeName, modifierNames)
	if err != nil {
		return err
	}
	c.SetInversion(playInversion)

	defer midi.CloseDriver()
	out, err := midi.OutPort(0)
	if err != nil {
		return fmt.Errorf("can't find a MIDI output port: %w", err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return err
	}

	fmt.Printf("%v  %v\n", c.ShortName(note.Flat), c.NoteNames(note.Flat))

	keys := player.Keys(c.NoteSequence())
	for _, k := range keys {
		if err := send(midi.NoteOn(0, k, player.DefaultVelocity)); err != nil {
			return err
		}
		time.Sleep(time.Duration(playArpeggioMs) * time.Millisecond)
	}
	time.Sleep(time.Duration(playSustainMs) * time.Millisecond)
	for _, k := range keys {
		if err := send(midi.NoteOff(0, k)); err != nil {
			return err
		}
	}
	return nil
}
