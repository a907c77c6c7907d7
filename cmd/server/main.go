// Command server exposes the valens analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/check?word=<word>
//	POST /api/check/batch   body: {"words":["..."]}
//	GET  /api/stem?word=<word>
//	GET  /api/pattern?stem=<stem>
//	POST /api/ambiguity     body: {"sentence":"..."}
//	POST /api/roles         body: {"sentence":"..."}
//	GET  /api/footprint
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"strings"

	"github.com/rs/cors"

	valens "github.com/valens-nlp/valens"
)

// ---- JSON response types ------------------------------------------------

type analysisJSON struct {
	Word           string   `json:"word"`
	Stem           string   `json:"stem"`
	Valency        int      `json:"valency"`
	Required       []string `json:"required"`
	Optional       []string `json:"optional"`
	Ambiguity      float64  `json:"ambiguity"`
	Interpretation string   `json:"interpretation"`
}

type batchItemJSON struct {
	Word     string        `json:"word"`
	Analysis *analysisJSON `json:"analysis,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItemJSON `json:"results"`
}

type stemResponse struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

type patternResponse struct {
	Stem     string   `json:"stem"`
	Valency  int      `json:"valency"`
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

type interpretationJSON struct {
	Verb        string   `json:"verb"`
	Valency     int      `json:"valency"`
	Roles       []string `json:"roles"`
	Score       float64  `json:"score"`
	Description string   `json:"description"`
}

type ambiguityResponse struct {
	Interpretations []interpretationJSON `json:"interpretations"`
}

type rolesResponse struct {
	Verb  string            `json:"verb"`
	Roles map[string]string `json:"roles"`
}

type footprintResponse struct {
	LexiconBytes int     `json:"lexicon_bytes"`
	StemmaBytes  int     `json:"stemma_bytes"`
	TotalBytes   int     `json:"total_bytes"`
	LexiconKB    float64 `json:"lexicon_kb"`
	StemmaKB     float64 `json:"stemma_kb"`
	TotalKB      float64 `json:"total_kb"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func roleStrings(roles []valens.SemanticRole) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func toAnalysisJSON(r *valens.AnalysisResult) *analysisJSON {
	return &analysisJSON{
		Word:           r.Word,
		Stem:           r.Stem,
		Valency:        r.Valency,
		Required:       roleStrings(r.Required),
		Optional:       roleStrings(r.Optional),
		Ambiguity:      r.Ambiguity,
		Interpretation: r.Interpretation,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// errStatus maps an analyzer error to an HTTP status code.
func errStatus(err error) int {
	switch {
	case errors.Is(err, valens.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, valens.ErrNotInLexicon),
		errors.Is(err, valens.ErrNoVerbsFound),
		errors.Is(err, valens.ErrNoVerbFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decodeSentence(r *http.Request) (string, bool) {
	var body struct {
		Sentence string `json:"sentence"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Sentence == "" {
		return "", false
	}
	return body.Sentence, true
}

// ---- handlers -----------------------------------------------------------

func handleCheck(an *valens.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		res, err := an.Check(word)
		if err != nil {
			writeError(w, errStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toAnalysisJSON(res))
	}
}

func handleCheckBatch(an *valens.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Words []string `json:"words"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'words' array")
			return
		}

		results := an.CheckBatch(body.Words)
		out := make([]batchItemJSON, 0, len(results))
		for _, res := range results {
			item := batchItemJSON{Word: res.Word}
			if res.Err != nil {
				item.Error = res.Err.Error()
			} else {
				item.Analysis = toAnalysisJSON(res.Analysis)
			}
			out = append(out, item)
		}
		writeJSON(w, http.StatusOK, batchResponse{Results: out})
	}
}

func handleStem(an *valens.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, stemResponse{Word: word, Stem: an.GetStem(word)})
	}
}

func handlePattern(an *valens.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		stem := r.URL.Query().Get("stem")
		if stem == "" {
			writeError(w, http.StatusBadRequest, "missing 'stem' query parameter")
			return
		}
		e, err := an.GetValencyPattern(stem)
		if err != nil {
			writeError(w, errStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, patternResponse{
			Stem:     valens.Normalize(stem),
			Valency:  e.Valency,
			Required: roleStrings(e.Required),
			Optional: roleStrings(e.Optional),
		})
	}
}

func handleAmbiguity(an *valens.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		sentence, ok := decodeSentence(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
			return
		}

		interpretations, err := an.EliminateAmbiguity(sentence)
		if err != nil {
			writeError(w, errStatus(err), err.Error())
			return
		}
		out := make([]interpretationJSON, 0, len(interpretations))
		for _, in := range interpretations {
			out = append(out, interpretationJSON{
				Verb:        in.Verb,
				Valency:     in.Valency,
				Roles:       roleStrings(in.Roles),
				Score:       in.Score,
				Description: in.Description,
			})
		}
		writeJSON(w, http.StatusOK, ambiguityResponse{Interpretations: out})
	}
}

func handleRoles(an *valens.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		sentence, ok := decodeSentence(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
			return
		}

		analysis, err := an.AnalyzeRoles(sentence)
		if err != nil {
			writeError(w, errStatus(err), err.Error())
			return
		}
		roles := make(map[string]string, len(analysis.Roles))
		for role, token := range analysis.Roles {
			roles[string(role)] = token
		}
		writeJSON(w, http.StatusOK, rolesResponse{Verb: analysis.Verb, Roles: roles})
	}
}

func handleFootprint(an *valens.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		fp := an.MemoryFootprint()
		writeJSON(w, http.StatusOK, footprintResponse{
			LexiconBytes: fp.LexiconBytes,
			StemmaBytes:  fp.StemmaBytes,
			TotalBytes:   fp.TotalBytes,
			LexiconKB:    fp.LexiconKB,
			StemmaKB:     fp.StemmaKB,
			TotalKB:      fp.TotalKB,
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	origins := flag.String("origins", "*", "comma-separated allowed CORS origins")
	flag.Parse()

	an := valens.New()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/check/batch", handleCheckBatch(an))
	mux.HandleFunc("/api/check", handleCheck(an))
	mux.HandleFunc("/api/stem", handleStem(an))
	mux.HandleFunc("/api/pattern", handlePattern(an))
	mux.HandleFunc("/api/ambiguity", handleAmbiguity(an))
	mux.HandleFunc("/api/roles", handleRoles(an))
	mux.HandleFunc("/api/footprint", handleFootprint(an))

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(*origins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, c.Handler(mux)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
