// Package apitest provides an in-memory implementation of the bugdesk REST
// contract for tests. It records every request so tests can assert on what
// was (or was not) sent.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/joescharf/bugdesk/internal/models"
)

// Request is a recorded call.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// Server is a fake backend. Failures can be injected per route with Fail.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	bugs     []*models.Bug
	nextID   int64
	requests []Request
	fail     map[string]int

	// ReviewText is returned by POST /api/review.
	ReviewText string
}

// NewServer starts a fake backend seeded with bugs and closes it when the
// test ends.
func NewServer(t *testing.T, seed ...*models.Bug) *Server {
	t.Helper()
	s := &Server{fail: make(map[string]int), nextID: 1, ReviewText: "## Review\n\nLooks good."}
	for _, b := range seed {
		cp := *b
		s.bugs = append(s.bugs, &cp)
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

// Fail makes every request matching pattern (e.g. "PUT /api/bugs/{id}")
// answer with status.
func (s *Server) Fail(pattern string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[pattern] = status
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many recorded requests used method on path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Bugs returns a snapshot of the server-side collection.
func (s *Server) Bugs() []models.Bug {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Bug, 0, len(s.bugs))
	for _, b := range s.bugs {
		out = append(out, *b)
	}
	return out
}

func (s *Server) router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/review", s.guard("POST /api/review", s.review))
	mux.HandleFunc("POST /api/email/send", s.guard("POST /api/email/send", s.sendEmail))
	mux.HandleFunc("GET /api/bugs", s.guard("GET /api/bugs", s.listBugs))
	mux.HandleFunc("POST /api/bugs", s.guard("POST /api/bugs", s.createBug))
	mux.HandleFunc("PUT /api/bugs/{id}", s.guard("PUT /api/bugs/{id}", s.updateBug))
	mux.HandleFunc("DELETE /api/bugs/{id}", s.guard("DELETE /api/bugs/{id}", s.deleteBug))

	return s.record(mux)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) guard(pattern string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status := s.fail[pattern]
		s.mu.Unlock()
		if status != 0 {
			writeError(w, status, http.StatusText(status))
			return
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, text)
}

func (s *Server) review(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	s.mu.Lock()
	text := s.ReviewText
	s.mu.Unlock()
	writeText(w, text)
}

func (s *Server) sendEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	to := r.URL.Query().Get("to")
	writeText(w, "✅ Email sent to "+to)
}

func (s *Server) listBugs(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]*models.Bug, 0, len(s.bugs))
	for _, b := range s.bugs {
		cp := *b
		out = append(out, &cp)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createBug(w http.ResponseWriter, r *http.Request) {
	var nb models.NewBug
	if err := json.NewDecoder(r.Body).Decode(&nb); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	s.mu.Lock()
	b := &models.Bug{
		ID:          s.nextID,
		Title:       nb.Title,
		Description: nb.Description,
		Severity:    nb.Severity,
		Status:      models.StatusOpen,
		Language:    nb.Language,
	}
	s.nextID++
	s.bugs = append(s.bugs, b)
	cp := *b
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, cp)
}

func (s *Server) updateBug(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var upd models.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bugs {
		if b.ID == id {
			b.Status = upd.Status
			writeJSON(w, http.StatusOK, *b)
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("bug %d not found", id))
}

func (s *Server) deleteBug(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bugs {
		if b.ID == id {
			s.bugs = append(s.bugs[:i], s.bugs[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusOK)
}
