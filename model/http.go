package model

// SearchRequestBody asks for chords at an exact set distance from the
// seed notes.
type SearchRequestBody struct {
	Notes    Notes `json:"notes"`
	Distance int   `json:"distance"`
}

type SearchResponse struct {
	NumMatches int         `json:"num_matches"`
	Results    []ChordInfo `json:"results"`
}

type ScaleChordsResponse struct {
	Scale   string      `json:"scale"`
	Key     string      `json:"key"`
	Members []string    `json:"members"`
	Chords  []ChordInfo `json:"chords"`
}

type ClassifyRequestBody struct {
	Notes Notes `json:"notes"`
	Key   int   `json:"key"`
}

type IntervalLine struct {
	A         int    `json:"a"`
	B         int    `json:"b"`
	Category  string `json:"category"`
	PositionA int    `json:"position_a"`
	PositionB int    `json:"position_b"`
	Dashed    bool   `json:"dashed,omitempty"`
}

type ClassifyResponse struct {
	Lines []IntervalLine `json:"lines"`
}

type GeneratorSetting struct {
	Name    string   `json:"name"`
	Default string   `json:"default"`
	Values  []string `json:"values"`
	ToolTip string   `json:"tool_tip,omitempty"`
}

type GeneratorInfo struct {
	Name      string             `json:"name"`
	NeedsSeed bool               `json:"needs_seed"`
	Settings  []GeneratorSetting `json:"settings"`
}

type RackStoreRequestBody struct {
	Chord ChordSpec `json:"chord"`
}

type RackEntry struct {
	ID    string    `json:"id"`
	Slot  int       `json:"slot"`
	Chord ChordInfo `json:"chord"`
}

type RackResponse struct {
	Name    string      `json:"name"`
	Size    int         `json:"size"`
	Entries []RackEntry `json:"entries"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
