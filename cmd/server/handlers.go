package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/klingon-assistant/klingon"
	"github.com/klingon-assistant/klingon/internal/store"
)

// ---- JSON response types ------------------------------------------------

type analysisJSON struct {
	Stem           string   `json:"stem"`
	Kind           string   `json:"kind"`
	Key            string   `json:"key"`
	Surface        string   `json:"surface"`
	Prefix         string   `json:"prefix,omitempty"`
	Suffixes       []string `json:"suffixes,omitempty"`
	Adjectival     bool     `json:"adjectival,omitempty"`
	NumberLike     bool     `json:"number_like,omitempty"`
	NumberRoot     string   `json:"number_root,omitempty"`
	NumberModifier string   `json:"number_modifier,omitempty"`
	NumberSuffix   string   `json:"number_suffix,omitempty"`
}

type entryJSON struct {
	ID           int64    `json:"id,omitempty"`
	Name         string   `json:"name"`
	PartOfSpeech string   `json:"part_of_speech"`
	Base         string   `json:"base"`
	Definition   string   `json:"definition,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Source       string   `json:"source,omitempty"`
	Components   []string `json:"components,omitempty"`
	Homophone    int      `json:"homophone,omitempty"`
	Transitivity string   `json:"transitivity,omitempty"`
	URL          string   `json:"url,omitempty"`
}

type matchJSON struct {
	Key      string        `json:"key"`
	Entry    entryJSON     `json:"entry"`
	Analysis *analysisJSON `json:"analysis,omitempty"`
}

type analyzeResponse struct {
	Word     string         `json:"word"`
	Analyses []analysisJSON `json:"analyses"`
	// Truncated is set when the candidate cap cut the analysis short.
	Truncated bool `json:"truncated,omitempty"`
}

type lookupResponse struct {
	Query   string      `json:"query"`
	Matches []matchJSON `json:"matches"`
}

type wordResultJSON struct {
	Word    string      `json:"word"`
	Matches []matchJSON `json:"matches"`
}

type lookupTextResponse struct {
	Results []wordResultJSON `json:"results"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toAnalysisJSON(w *klingon.ComplexWord) analysisJSON {
	a := analysisJSON{
		Stem:       w.Stem(),
		Kind:       w.Kind().String(),
		Key:        w.Key(false),
		Surface:    w.Surface(),
		Prefix:     w.VerbPrefix(),
		Adjectival: w.IsAdjectivalVerb(),
		NumberLike: w.IsNumberLike(),
	}
	if w.Kind() == klingon.Verb {
		for i, s := range w.VerbSuffixes() {
			if s != "" {
				a.Suffixes = append(a.Suffixes, s)
			}
			a.Suffixes = append(a.Suffixes, w.RoversAt(i)...)
		}
	}
	for _, s := range w.NounSuffixes() {
		if s != "" {
			a.Suffixes = append(a.Suffixes, s)
		}
	}
	if a.NumberLike {
		a.NumberRoot = w.NumberRoot()
		a.NumberModifier = w.NumberModifier()
		a.NumberSuffix = w.NumberSuffix()
	}
	return a
}

func toEntryJSON(e *klingon.Entry) entryJSON {
	j := entryJSON{
		ID:           e.ID,
		Name:         e.Name,
		PartOfSpeech: e.PartOfSpeech,
		Base:         e.BasePartOfSpeech().Name(),
		Definition:   e.Definition,
		Notes:        e.Notes,
		Source:       e.Source,
		URL:          e.URL(),
	}
	if e.ShowHomophone() && e.Homophone() > 0 {
		j.Homophone = e.Homophone()
	}
	if e.BasePartOfSpeech() == klingon.POSVerb && e.Transitivity() != klingon.TransitivityUnknown {
		j.Transitivity = e.Transitivity().String()
	}
	for _, c := range e.ComponentEntries(zap.L()) {
		j.Components = append(j.Components, c.Name)
	}
	return j
}

func toMatchesJSON(matches []klingon.Match) []matchJSON {
	out := make([]matchJSON, 0, len(matches))
	for _, m := range matches {
		mj := matchJSON{Key: m.Key, Entry: toEntryJSON(m.Entry)}
		if m.Analysis != nil {
			a := toAnalysisJSON(m.Analysis)
			mj.Analysis = &a
		}
		out = append(out, mj)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encode error", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(dict *klingon.Dictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word := klingon.Normalize(r.URL.Query().Get("word"))
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		var kinds []klingon.Kind
		switch kind := r.URL.Query().Get("kind"); kind {
		case "", "both":
			kinds = []klingon.Kind{klingon.Noun, klingon.Verb}
		default:
			k, ok := klingon.ParseKind(kind)
			if !ok {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", kind))
				return
			}
			kinds = []klingon.Kind{k}
		}

		resp := analyzeResponse{Word: word, Analyses: []analysisJSON{}}
		for _, k := range kinds {
			leaves, err := dict.Analyzer().AnalyzeContext(r.Context(), word, k)
			if errors.Is(err, klingon.ErrTooManyCandidates) {
				zap.L().Warn("analysis truncated",
					zap.String("word", word),
					zap.Stringer("kind", k),
					zap.Int("leaves", len(leaves)))
				resp.Truncated = true
			} else if err != nil {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			for _, leaf := range leaves {
				resp.Analyses = append(resp.Analyses, toAnalysisJSON(leaf))
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleLookup(dict *klingon.Dictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if query == "" {
			writeError(w, http.StatusBadRequest, "missing 'query' query parameter")
			return
		}
		matches, err := dict.Lookup(r.Context(), query)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		status := http.StatusOK
		if len(matches) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, lookupResponse{
			Query:   klingon.Normalize(query),
			Matches: toMatchesJSON(matches),
		})
	}
}

func handleLookupText(dict *klingon.Dictionary) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		results, err := dict.LookupText(r.Context(), body.Text)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]wordResultJSON, 0, len(results))
		for _, res := range results {
			out = append(out, wordResultJSON{
				Word:    res.Word,
				Matches: toMatchesJSON(res.Matches),
			})
		}
		writeJSON(w, http.StatusOK, lookupTextResponse{Results: out})
	}
}

func handleDecode(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "missing 'name' query parameter")
			return
		}
		e := klingon.DecodeEntry(log, name, r.URL.Query().Get("pos"))
		writeJSON(w, http.StatusOK, toEntryJSON(e))
	}
}

func handleHealth(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := st.Count(r.Context())
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Entries: n})
	}
}

// newRouter wires the API routes. origins lists the CORS origins allowed.
func newRouter(dict *klingon.Dictionary, st store.Store, log *zap.Logger, origins []string) http.Handler {
	r := chi.NewMux()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/analyze", handleAnalyze(dict))
		r.Get("/lookup", handleLookup(dict))
		r.Post("/lookup/text", handleLookupText(dict))
		r.Get("/decode", handleDecode(log))
		r.Get("/healthz", handleHealth(st))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}
