package constants

import (
	"os"
	"time"
)

func GetServeAddr() string {
	addr := os.Getenv("CHORDLAB_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// Slot counts for the two chord racks backing the drag-and-drop UI.
const CacheRackSize = 8
const PlayerRackSize = 8

// SearchDebounce is how long interactive parameter changes settle
// before a search launches.
const SearchDebounce = 150 * time.Millisecond
