package cmd

import (
	"fmt"

	"github.com/improperdecoherence/chordlab/chorddb"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/spf13/cobra"
)

var matchDistance int

func init() {
	matchCmd.Flags().IntVar(&matchDistance, "distance", 0, "exact set distance to search at")
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match note [note...]",
	Short: "Finds chords matching a note selection",
	Long:  `Searches the candidate universe for chords at an exact set distance from the given notes, e.g. "chordlab match --distance 1 C E G".`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(match(args))
	},
}

func match(names []string) error {
	seed := make([]int, 0, len(names))
	for _, name := range names {
		v, err := note.Value(name)
		if err != nil {
			return err
		}
		seed = append(seed, v)
	}

	matches := chorddb.Default().Match(seed, matchDistance)
	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, c := range matches {
		fmt.Printf("%-10v %v\n", c.ShortName(note.Flat), c.LongName(note.Flat))
	}
	return nil
}
