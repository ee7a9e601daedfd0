package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"recurrent/internal/config"
	"recurrent/internal/ics"
	appLog "recurrent/internal/log"
	"recurrent/internal/model"
	"recurrent/internal/recurrent"
	"recurrent/internal/rule"
	"recurrent/internal/translate"
)

const describeCacheTTL = 30 * time.Second

// Server exposes parsing, formatting and calendar export over HTTP.
type Server struct {
	cfg        *config.Config
	translator translate.Translator
	fetcher    *ics.Fetcher
	mux        *http.ServeMux

	// Describing a remote calendar means a fetch plus a parse; repeated
	// requests for the same URL are served from memory for a short while.
	describeMu    sync.RWMutex
	describeCache map[string]describeEntry
}

type describeEntry struct {
	events    []eventDTO
	updatedAt time.Time
}

// NewServer constructs a Server. translator may be nil.
func NewServer(cfg *config.Config, translator translate.Translator) *Server {
	s := &Server{
		cfg:           cfg,
		translator:    translator,
		fetcher:       ics.NewFetcher(cfg.ICS.CacheDir),
		mux:           http.NewServeMux(),
		describeCache: make(map[string]describeEntry),
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	h := logRequests(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	// Empty credentials disable auth rather than lock everyone out.
	return s.cfg.BasicAuth.Username != "" && s.cfg.BasicAuth.Password != ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests logs every API call at INFO once it has been answered.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		appLog.Info("api request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	})
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="recurrent", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// StartServer serves on cfg.Listen until ctx is canceled, then shuts down
// gracefully.
func StartServer(ctx context.Context, cfg *config.Config, translator translate.Translator) error {
	s := NewServer(cfg, translator)
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLog.Error("HTTP shutdown failed", err)
		}
	}()

	appLog.Info("starting HTTP server", "listen", "http://"+cfg.Listen)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/parse", s.handleParse)
	s.mux.HandleFunc("/api/format", s.handleFormat)
	s.mux.HandleFunc("/api/cron", s.handleCron)
	s.mux.HandleFunc("/api/occurrences", s.handleOccurrences)
	s.mux.HandleFunc("/api/ics", s.handleICS)
	s.mux.HandleFunc("/api/xcal", s.handleXCal)
	s.mux.HandleFunc("/api/describe", s.handleDescribe)
}

// session builds a fresh Session per request; Sessions remember their last
// rule and are not shared. A now= query parameter overrides the configured
// reference clock.
func (s *Server) session(r *http.Request) (*recurrent.Session, error) {
	var opts []recurrent.Option
	ref, ok, err := config.ParseReference(r.URL.Query().Get("now"))
	if err != nil {
		return nil, err
	}
	if !ok {
		ref, ok, _ = s.cfg.ReferenceTime()
	}
	if ok {
		opts = append(opts, recurrent.WithReference(ref))
	}
	if !s.cfg.Fallback {
		opts = append(opts, recurrent.WithFallback(nil))
	}
	return recurrent.New(opts...), nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// parseResponse is the JSON shape for /api/parse and /api/cron.
type parseResponse struct {
	Input  string            `json:"input"`
	Kind   string            `json:"kind"`
	RRule  string            `json:"rrule,omitempty"`
	Time   string            `json:"time,omitempty"`
	Text   string            `json:"text"`
	Params map[string]string `json:"params,omitempty"`
}

func newParseResponse(sess *recurrent.Session, input string, o recurrent.Outcome) parseResponse {
	resp := parseResponse{Input: input, Kind: o.Kind.String(), Text: sess.Format(o)}
	switch o.Kind {
	case recurrent.Recurring:
		resp.RRule = sess.RFCRule()
		resp.Params = sess.Params()
	case recurrent.Absolute:
		resp.Time = o.String()
	}
	return resp
}

// GET /api/parse?text=every+other+tuesday
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.URL.Query().Get("text"))
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing text")
		return
	}
	sess, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := recurrent.Auto{Session: sess, Translator: s.translator}.Parse(r.Context(), text)
	if err != nil {
		appLog.Error("translate failed", err, "text", text)
		writeError(w, http.StatusBadGateway, "translation failed")
		return
	}
	if o.Kind == recurrent.None {
		writeError(w, http.StatusUnprocessableEntity, recurrent.ErrNoMatch.Error())
		return
	}
	appLog.Debug("api parse", "text", text, "kind", o.Kind)
	writeJSON(w, http.StatusOK, newParseResponse(sess, text, o))
}

// GET /api/format?rrule=RRULE:FREQ=DAILY;INTERVAL=1
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("rrule")
	if strings.TrimSpace(text) == "" {
		writeError(w, http.StatusBadRequest, "missing rrule")
		return
	}
	sess, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": sess.FormatText(text)})
}

// GET /api/cron?spec=30+15+*+*+1-5
func (s *Server) handleCron(w http.ResponseWriter, r *http.Request) {
	spec := strings.TrimSpace(r.URL.Query().Get("spec"))
	if spec == "" {
		writeError(w, http.StatusBadRequest, "missing spec")
		return
	}
	sess, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := sess.ParseCron(spec)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newParseResponse(sess, spec, o))
}

// outcomeFromRequest reads either text= (English) or rrule= (serialized).
func (s *Server) outcomeFromRequest(r *http.Request) (recurrent.Outcome, *recurrent.Session, error) {
	q := r.URL.Query()
	sess, err := s.session(r)
	if err != nil {
		return recurrent.Outcome{}, nil, err
	}
	if raw := q.Get("rrule"); strings.TrimSpace(raw) != "" {
		rr, err := rule.Read(raw)
		if err != nil {
			return recurrent.Outcome{}, sess, err
		}
		return recurrent.Outcome{Kind: recurrent.Recurring, Rule: rr}, sess, nil
	}
	text := strings.TrimSpace(q.Get("text"))
	if text == "" {
		return recurrent.Outcome{}, sess, errors.New("missing text or rrule")
	}
	o, err := recurrent.Auto{Session: sess, Translator: s.translator}.Parse(r.Context(), text)
	if err != nil {
		return recurrent.Outcome{}, sess, err
	}
	if o.Kind == recurrent.None {
		return o, sess, recurrent.ErrNoMatch
	}
	return o, sess, nil
}

// ruleFromRequest is outcomeFromRequest restricted to recurrences.
func (s *Server) ruleFromRequest(r *http.Request) (rule.Rule, *recurrent.Session, error) {
	o, sess, err := s.outcomeFromRequest(r)
	if err != nil {
		return rule.Rule{}, sess, err
	}
	if o.Kind != recurrent.Recurring {
		return rule.Rule{}, sess, errors.New("text does not describe a recurrence")
	}
	return o.Rule, sess, nil
}

type occurrenceDTO struct {
	Start  string `json:"start"`
	AllDay bool   `json:"all_day"`
	Label  string `json:"label"`
}

// GET /api/occurrences?text=every+friday&n=5
func (s *Server) handleOccurrences(w http.ResponseWriter, r *http.Request) {
	rr, sess, err := s.ruleFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n := parseIntDefault(r.URL.Query().Get("n"), s.cfg.ICS.Preview)
	occ, err := ics.Preview(rr, sess.Reference(), n, s.cfg.ICS.MaxOccurrences)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, occurrenceDTOs(occ))
}

func occurrenceDTOs(occ []model.Occurrence) []occurrenceDTO {
	out := make([]occurrenceDTO, 0, len(occ))
	for _, o := range occ {
		stamp := rule.ClockStamp(o.Start)
		if o.AllDay {
			stamp = rule.DateStamp(o.Start.Date())
		}
		out = append(out, occurrenceDTO{Start: stamp.String(), AllDay: o.AllDay, Label: o.Label})
	}
	return out
}

func (s *Server) summary(r *http.Request) string {
	if v := strings.TrimSpace(r.URL.Query().Get("summary")); v != "" {
		return v
	}
	return s.cfg.ICS.Summary
}

// GET /api/ics?text=every+friday&summary=Review
func (s *Server) handleICS(w http.ResponseWriter, r *http.Request) {
	o, sess, err := s.outcomeFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	body := ics.ExportAt(o.Stamp(), s.summary(r))
	if o.Kind == recurrent.Recurring {
		body = ics.Export(o.Rule, s.summary(r), sess.Reference())
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// GET /api/xcal?text=every+friday
func (s *Server) handleXCal(w http.ResponseWriter, r *http.Request) {
	rr, sess, err := s.ruleFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := ics.ExportXCal(rr, s.summary(r), sess.Reference())
	if err != nil {
		appLog.Error("xcal export failed", err)
		writeError(w, http.StatusInternalServerError, "failed to render xcal")
		return
	}
	w.Header().Set("Content-Type", "application/calendar+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

type eventDTO struct {
	UID     string `json:"uid"`
	Summary string `json:"summary"`
	AllDay  bool   `json:"all_day"`
	RRule   string `json:"rrule,omitempty"`
	Text    string `json:"text"`
}

// GET /api/describe?url=https://example.com/cal.ics
func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" {
		writeError(w, http.StatusBadRequest, "missing url")
		return
	}

	key := url + "\x00" + r.URL.Query().Get("now")
	s.describeMu.RLock()
	entry, ok := s.describeCache[key]
	s.describeMu.RUnlock()
	if ok && time.Since(entry.updatedAt) < describeCacheTTL {
		writeJSON(w, http.StatusOK, entry.events)
		return
	}

	res, err := s.fetcher.Fetch(r.Context(), url)
	if err != nil {
		appLog.Error("api describe: fetch failed", err)
		writeError(w, http.StatusBadGateway, "failed to fetch calendar")
		return
	}
	sess, err := s.session(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	events, err := ics.Describe(res.Body, sess.Formatter())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	dtos := make([]eventDTO, 0, len(events))
	for _, ev := range events {
		dtos = append(dtos, eventDTO{UID: ev.UID, Summary: ev.Summary, AllDay: ev.AllDay, RRule: ev.RRule, Text: ev.Text})
	}

	s.describeMu.Lock()
	s.describeCache[key] = describeEntry{events: dtos, updatedAt: time.Now()}
	s.describeMu.Unlock()

	writeJSON(w, http.StatusOK, dtos)
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
