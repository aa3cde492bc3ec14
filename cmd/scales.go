package cmd

import (
	"fmt"
	"strings"

	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales [key] [scale]",
	Short: "Lists scales or the chords of one scale",
	Long:  `Without arguments, lists the supported scales. With a key and a scale name, prints its members and the diatonic chord of every degree, e.g. "chordlab scales C 'Natural Major'".`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			for _, name := range scale.TemplateNames() {
				fmt.Println(name)
			}
			return
		}
		cobra.CheckErr(printScale(args[0], args[1]))
	},
}

func printScale(keyName, scaleName string) error {
	key, err := note.Value(keyName)
	if err != nil {
		return err
	}
	s, err := scale.New(key, scaleName)
	if err != nil {
		return err
	}

	fmt.Printf("%v: %v\n", s.Name(note.Flat), strings.Join(s.MemberNames(note.Flat), " "))
	for i, c := range s.DiatonicChords() {
		degree, _ := scale.DegreeName(i)
		fmt.Printf("%-12v %-6v %v\n", degree, c.ShortName(note.Flat), c.LongName(note.Flat))
	}
	return nil
}
