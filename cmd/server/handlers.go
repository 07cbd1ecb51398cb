package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/openarabic/conjugation"
)

// ---- JSON response types ------------------------------------------------

type verbJSON struct {
	Dialect  string `json:"dialect"`
	Root     string `json:"root"`
	Stem     int    `json:"stem"`
	Context  string `json:"context,omitempty"`
	Category string `json:"category"`
}

type formJSON struct {
	Text    string                         `json:"text"`
	Letters []conjugation.DisplayVocalized `json:"letters"`
}

type conjugateResponse struct {
	Verb  verbJSON `json:"verb"`
	Query string   `json:"query"`
	Form  formJSON `json:"form"`
}

type tableCellJSON struct {
	Query string    `json:"query"`
	Form  *formJSON `json:"form,omitempty"`
	Error string    `json:"error,omitempty"`
}

type tableResponse struct {
	Verb  verbJSON        `json:"verb"`
	Cells []tableCellJSON `json:"cells"`
}

type participleResponse struct {
	Verb  verbJSON `json:"verb"`
	Voice string   `json:"voice"`
	Form  formJSON `json:"form"`
}

type verbalNounsResponse struct {
	Verb  verbJSON   `json:"verb"`
	Nouns []formJSON `json:"nouns"`
}

type dialectJSON struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	ISO639     string               `json:"iso639"`
	Glottocode string               `json:"glottocode"`
	Features   conjugation.Features `json:"features"`
}

type dialectsResponse struct {
	Dialects []dialectJSON `json:"dialects"`
}

type catalogResponse struct {
	Verbs []conjugation.CatalogEntry `json:"verbs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toVerbJSON(v *conjugation.Verb) verbJSON {
	return verbJSON{
		Dialect:  v.Dialect().ID(),
		Root:     v.Root().String(),
		Stem:     int(v.Stem()),
		Context:  string(v.Context()),
		Category: v.Category().String(),
	}
}

func toFormJSON(f []conjugation.DisplayVocalized) formJSON {
	return formJSON{Text: conjugation.Render(f), Letters: f}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, conjugation.ErrNotImplemented):
		return http.StatusNotImplemented
	case errors.Is(err, conjugation.ErrAmbiguousVerbalNoun):
		return http.StatusConflict
	case errors.Is(err, conjugation.ErrInvalidRoot),
		errors.Is(err, conjugation.ErrIllegalStem1Context),
		errors.Is(err, conjugation.ErrUnsupportedStem),
		errors.Is(err, conjugation.ErrUnsupportedFeature),
		errors.Is(err, conjugation.ErrUnknownDialect),
		errors.Is(err, conjugation.ErrInvalidQuery):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeEngineError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

// verbFromRequest reads the root, stem, context and dialect parameters.
// The dialect defaults to MSA and the stem to I.
func verbFromRequest(r *http.Request) (*conjugation.Verb, error) {
	p := r.URL.Query()
	dialectName := p.Get("dialect")
	if dialectName == "" {
		dialectName = conjugation.MSA.ID()
	}
	d, err := conjugation.LookupDialect(dialectName)
	if err != nil {
		return nil, err
	}
	if p.Get("root") == "" {
		return nil, fmt.Errorf("%w: missing 'root' query parameter", conjugation.ErrInvalidRoot)
	}
	root, err := conjugation.ParseRoot(p.Get("root"))
	if err != nil {
		return nil, err
	}
	stem := conjugation.Stem(1)
	if s := p.Get("stem"); s != "" {
		if stem, err = conjugation.ParseStem(s); err != nil {
			return nil, err
		}
	}
	return conjugation.NewVerb(d, root, stem, conjugation.Stem1Context(p.Get("context")))
}

// queryFromRequest reads q, or the separate parameters when q is absent.
// Voice, gender and numerus default to active, masculine and singular;
// a present query without a mood is indicative.
func queryFromRequest(r *http.Request) (conjugation.Query, error) {
	p := r.URL.Query()
	if s := p.Get("q"); s != "" {
		return conjugation.ParseQuery(s)
	}
	if p.Get("tense") == "" || p.Get("person") == "" {
		return conjugation.Query{}, fmt.Errorf("%w: need 'q' or 'tense' and 'person'", conjugation.ErrInvalidQuery)
	}

	var (
		q   conjugation.Query
		err error
	)
	if q.Tense, err = conjugation.ParseTense(p.Get("tense")); err != nil {
		return q, err
	}
	if q.Person, err = conjugation.ParsePerson(p.Get("person")); err != nil {
		return q, err
	}
	q.Mood, q.Voice, q.Gender, q.Numerus = conjugation.Indicative, conjugation.Active, conjugation.Male, conjugation.Singular
	if s := p.Get("mood"); s != "" {
		if q.Mood, err = conjugation.ParseMood(s); err != nil {
			return q, err
		}
	}
	if q.Tense == conjugation.Perfect {
		q.Mood = 0
	}
	if s := p.Get("voice"); s != "" {
		if q.Voice, err = conjugation.ParseVoice(s); err != nil {
			return q, err
		}
	}
	if s := p.Get("gender"); s != "" {
		if q.Gender, err = conjugation.ParseGender(s); err != nil {
			return q, err
		}
	}
	if s := p.Get("numerus"); s != "" {
		if q.Numerus, err = conjugation.ParseNumerus(s); err != nil {
			return q, err
		}
	}
	return q, nil
}

// ---- handlers -----------------------------------------------------------

func handleConjugate(c *conjugation.Conjugator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := verbFromRequest(r)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		q, err := queryFromRequest(r)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		form, err := c.Conjugate(v, q)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, conjugateResponse{Verb: toVerbJSON(v), Query: q.Code(), Form: toFormJSON(form)})
	}
}

func handleTable(c *conjugation.Conjugator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := verbFromRequest(r)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		table, err := c.ConjugationTable(v)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		cells := make([]tableCellJSON, 0, len(table.Cells))
		for _, cell := range table.Cells {
			cj := tableCellJSON{Query: cell.Query.Code()}
			if cell.Err != nil {
				cj.Error = cell.Err.Error()
			} else {
				f := toFormJSON(cell.Form)
				cj.Form = &f
			}
			cells = append(cells, cj)
		}
		writeJSON(w, http.StatusOK, tableResponse{Verb: toVerbJSON(v), Cells: cells})
	}
}

func handleParticiple(c *conjugation.Conjugator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := verbFromRequest(r)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		voice := conjugation.Active
		if s := r.URL.Query().Get("voice"); s != "" {
			if voice, err = conjugation.ParseVoice(s); err != nil {
				writeEngineError(w, err)
				return
			}
		}
		form, err := c.ConjugateParticiple(v, voice)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, participleResponse{Verb: toVerbJSON(v), Voice: voice.String(), Form: toFormJSON(form)})
	}
}

func handleVerbalNouns(c *conjugation.Conjugator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := verbFromRequest(r)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		nouns, err := c.VerbalNouns(v)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		out := make([]formJSON, 0, len(nouns))
		for _, n := range nouns {
			out = append(out, toFormJSON(n))
		}
		writeJSON(w, http.StatusOK, verbalNounsResponse{Verb: toVerbJSON(v), Nouns: out})
	}
}

func handleDialects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]dialectJSON, 0, 3)
		for _, d := range conjugation.Dialects() {
			out = append(out, dialectJSON{
				ID:         d.ID(),
				Name:       d.Name(),
				ISO639:     d.ISO639(),
				Glottocode: d.Glottocode(),
				Features:   d.Features(),
			})
		}
		writeJSON(w, http.StatusOK, dialectsResponse{Dialects: out})
	}
}

func handleCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := conjugation.Catalog()
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, catalogResponse{Verbs: entries})
	}
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// dialectLabel keeps the metric label set bounded.
func dialectLabel(r *http.Request) string {
	name := r.URL.Query().Get("dialect")
	if name == "" {
		return conjugation.MSA.ID()
	}
	d, err := conjugation.LookupDialect(name)
	if err != nil {
		return "unknown"
	}
	return d.ID()
}

// instrument wraps an API handler with the GET check, a request id, one
// log line per request and the request metrics.
func instrument(endpoint string, logger *slog.Logger, m *metrics, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		if r.Method != http.MethodGet {
			writeError(rec, http.StatusMethodNotAllowed, "GET required")
		} else {
			h(rec, r)
		}
		took := time.Since(start)

		if m != nil {
			m.requests.WithLabelValues(endpoint, dialectLabel(r), fmt.Sprint(rec.status)).Inc()
			m.duration.WithLabelValues(endpoint).Observe(took.Seconds())
		}
		logger.Info("Request",
			slog.String("id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.Int("status", rec.status),
			slog.Duration("took", took))
	}
}

// newHandler builds the API mux behind the CORS middleware. Metrics are
// registered on reg when the config enables them.
func newHandler(cfg *Config, c *conjugation.Conjugator, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	var m *metrics
	mux := http.NewServeMux()
	if cfg.Metrics && reg != nil {
		m = newMetrics(reg)
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	routes := []struct {
		path string
		h    http.HandlerFunc
	}{
		{"/api/conjugate", handleConjugate(c)},
		{"/api/table", handleTable(c)},
		{"/api/participle", handleParticiple(c)},
		{"/api/verbal-nouns", handleVerbalNouns(c)},
		{"/api/dialects", handleDialects()},
		{"/api/catalog", handleCatalog()},
	}
	for _, rt := range routes {
		endpoint := strings.TrimPrefix(rt.path, "/api/")
		mux.HandleFunc(rt.path, instrument(endpoint, logger, m, rt.h))
	}

	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(mux)
}
