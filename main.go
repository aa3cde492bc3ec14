package main

import (
	"github.com/improperdecoherence/chordlab/cmd"
)

func main() {
	cmd.Execute()
}
