package cmd

import (
	"fmt"

	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/player"
	"github.com/improperdecoherence/chordlab/scale"
	"github.com/spf13/cobra"
)

var exportKey string
var exportScale string
var exportBeats int

func init() {
	exportCmd.Flags().StringVar(&exportKey, "key", "C", "key of the scale")
	exportCmd.Flags().StringVar(&exportScale, "scale", "Natural Major", "scale to derive chords from")
	exportCmd.Flags().IntVar(&exportBeats, "beats", 4, "quarter notes per chord")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export file",
	Short: "Exports a scale's diatonic chords as a MIDI file",
	Long:  `Writes the seven diatonic chords of a scale as a standard MIDI file, one chord per bar.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(export(args[0]))
	},
}

func export(path string) error {
	key, err := note.Value(exportKey)
	if err != nil {
		return err
	}
	s, err := scale.New(key, exportScale)
	if err != nil {
		return err
	}

	smfFile := player.ProgressionSMF(s.DiatonicChords(), exportBeats)
	if err := smfFile.WriteFile(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %v chords of %v to %v\n", scale.DegreeCount, s.Name(note.Flat), path)
	return nil
}
