package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordlab",
	Short: "Chord exploration engine",
	Long:  `Chord theory engine: matching-chord search, diatonic scale chords and interval classification.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
