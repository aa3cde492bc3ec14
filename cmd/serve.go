package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/improperdecoherence/chordlab/chorddb"
	"github.com/improperdecoherence/chordlab/circle"
	"github.com/improperdecoherence/chordlab/constants"
	"github.com/improperdecoherence/chordlab/finder"
	"github.com/improperdecoherence/chordlab/model"
	"github.com/improperdecoherence/chordlab/note"
	"github.com/improperdecoherence/chordlab/rack"
	"github.com/improperdecoherence/chordlab/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var racks map[string]*rack.Rack

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	Long:  `Serves chord search, scale queries, interval classification and the chord racks over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeErr(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	if input.Distance < 0 {
		http.Error(w, "distance must be >= 0", http.StatusBadRequest)
		return
	}

	matches, err := chorddb.Default().MatchContext(r.Context(), input.Notes, input.Distance)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	json.NewEncoder(w).Encode(model.SearchResponse{
		NumMatches: len(matches),
		Results:    model.NewChordInfos(matches),
	})
}

func HandleScaleNames(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(scale.TemplateNames())
}

func scaleFromVars(r *http.Request) (*scale.Scale, error) {
	vars := mux.Vars(r)
	key, err := note.Value(vars["key"])
	if err != nil {
		return nil, err
	}
	return scale.New(key, vars["scale"])
}

func HandleScaleChords(w http.ResponseWriter, r *http.Request) {
	s, err := scaleFromVars(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	json.NewEncoder(w).Encode(model.ScaleChordsResponse{
		Scale:   s.TemplateName(),
		Key:     note.Name(s.Key, note.Flat),
		Members: s.MemberNames(note.Flat),
		Chords:  model.NewChordInfos(s.DiatonicChords()),
	})
}

func HandleScaleMembers(w http.ResponseWriter, r *http.Request) {
	s, err := scaleFromVars(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	json.NewEncoder(w).Encode(s.Members())
}

func HandleClassify(w http.ResponseWriter, r *http.Request) {
	var input model.ClassifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	lines := circle.ClassifyWithImpliedRoot(input.Notes, input.Key)
	res := model.ClassifyResponse{Lines: make([]model.IntervalLine, 0, len(lines))}
	for _, l := range lines {
		res.Lines = append(res.Lines, model.IntervalLine{
			A:         l.A,
			B:         l.B,
			Category:  l.Category.String(),
			PositionA: circle.ClockPosition(l.A, input.Key),
			PositionB: circle.ClockPosition(l.B, input.Key),
			Dashed:    l.Dashed,
		})
	}
	json.NewEncoder(w).Encode(res)
}

func HandleGenerators(w http.ResponseWriter, r *http.Request) {
	var res []model.GeneratorInfo
	for _, k := range finder.Kinds() {
		info := model.GeneratorInfo{Name: k.String(), NeedsSeed: k.NeedsSeed()}
		for _, s := range finder.Settings(k) {
			info.Settings = append(info.Settings, model.GeneratorSetting{
				Name:    s.Name,
				Default: s.Default,
				Values:  s.Values,
				ToolTip: s.ToolTip,
			})
		}
		res = append(res, info)
	}
	json.NewEncoder(w).Encode(res)
}

func rackFromVars(w http.ResponseWriter, r *http.Request) (*rack.Rack, int, bool) {
	vars := mux.Vars(r)
	rk, ok := racks[vars["name"]]
	if !ok {
		writeErr(w, http.StatusNotFound, fmt.Errorf("no such rack: %q", vars["name"]))
		return nil, 0, false
	}

	slot := -1
	if raw, ok := vars["slot"]; ok {
		var err error
		slot, err = strconv.Atoi(raw)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return nil, 0, false
		}
	}
	return rk, slot, true
}

func rackEntry(e rack.Entry) model.RackEntry {
	return model.RackEntry{ID: e.ID, Slot: e.Slot, Chord: model.NewChordInfo(e.Chord)}
}

func HandleRackGet(w http.ResponseWriter, r *http.Request) {
	rk, _, ok := rackFromVars(w, r)
	if !ok {
		return
	}

	res := model.RackResponse{
		Name:    mux.Vars(r)["name"],
		Size:    rk.Size(),
		Entries: make([]model.RackEntry, 0, rk.Size()),
	}
	for _, e := range rk.Entries() {
		res.Entries = append(res.Entries, rackEntry(e))
	}
	json.NewEncoder(w).Encode(res)
}

func HandleRackStore(w http.ResponseWriter, r *http.Request) {
	rk, slot, ok := rackFromVars(w, r)
	if !ok {
		return
	}

	var input model.RackStoreRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	c, err := input.Chord.ToChord()
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	entry, err := rk.Store(slot, c)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	json.NewEncoder(w).Encode(rackEntry(entry))
}

func HandleRackClear(w http.ResponseWriter, r *http.Request) {
	rk, slot, ok := rackFromVars(w, r)
	if !ok {
		return
	}
	if err := rk.Clear(slot); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func HandleRackCycle(w http.ResponseWriter, r *http.Request) {
	rk, slot, ok := rackFromVars(w, r)
	if !ok {
		return
	}

	if _, err := rk.CycleInversion(slot); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	entry, _ := rk.Get(slot)
	json.NewEncoder(w).Encode(rackEntry(entry))
}

// InitRacks builds the slot state served under /racks.
func InitRacks() {
	racks = map[string]*rack.Rack{
		"cache":  rack.New(constants.CacheRackSize),
		"player": rack.New(constants.PlayerRackSize),
		"seed":   rack.New(1),
	}
}

// NewRouter wires every engine query route.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	router.HandleFunc("/scales", HandleScaleNames).Methods("GET")
	router.HandleFunc("/scales/{key}/{scale}/chords", HandleScaleChords).Methods("GET")
	router.HandleFunc("/scales/{key}/{scale}/members", HandleScaleMembers).Methods("GET")
	router.HandleFunc("/classify", HandleClassify).Methods("POST")
	router.HandleFunc("/generators", HandleGenerators).Methods("GET")
	router.HandleFunc("/racks/{name}", HandleRackGet).Methods("GET")
	router.HandleFunc("/racks/{name}/{slot}", HandleRackStore).Methods("POST")
	router.HandleFunc("/racks/{name}/{slot}", HandleRackClear).Methods("DELETE")
	router.HandleFunc("/racks/{name}/{slot}/cycle", HandleRackCycle).Methods("POST")
	return router
}

func serve() {
	InitRacks()
	fmt.Printf("Building chord universe with %v candidates\n", chorddb.Default().Size())

	handler := cors.Default().Handler(NewRouter())
	addr := constants.GetServeAddr()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
