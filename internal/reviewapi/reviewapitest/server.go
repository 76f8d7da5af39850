// Package reviewapitest provides an in-process stand-in for the code review
// service, for tests of code that drives reviewapi.Client.
package reviewapitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/Harshitr03/Code-Reviewer/internal/reviewapi"
	"github.com/google/uuid"
)

// Request is one call the server received.
type Request struct {
	Method    string
	Path      string
	RequestID string
	Filename  string
	Content   string
}

// Server answers POST /api/review by storing the upload under a fresh id
// and GET /api/report/{id} from that store. Review controls the analysis
// attached to each stored report; SubmitStatus/SubmitError force a failure.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	requests     []Request
	reports      map[string]reviewapi.ReportData
	nextID       func() string
	Review       reviewapi.Review
	SubmitStatus int
	SubmitError  string
	ReportStatus int
	ReportError  string
}

func NewServer() *Server {
	s := &Server{
		reports: map[string]reviewapi.ReportData{},
		nextID:  uuid.NewString,
	}
	mux := http.NewServeMux()
	mux.HandleFunc(reviewapi.SubmitPath, s.handleSubmit)
	mux.HandleFunc(reviewapi.ReportPathPrefix, s.handleReport)
	s.Server = httptest.NewServer(mux)
	return s
}

// SetNextID fixes the identifiers handed out by subsequent submissions.
func (s *Server) SetNextID(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := 0
	s.nextID = func() string {
		if i >= len(ids) {
			return uuid.NewString()
		}
		id := ids[i]
		i++
		return id
	}
}

// Put stores a report directly.
func (s *Server) Put(id string, data reviewapi.ReportData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[id] = data
}

// Requests returns a copy of the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(r Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	rec := Request{Method: r.Method, Path: r.URL.Path, RequestID: r.Header.Get("X-Request-ID")}
	if r.Method != http.MethodPost {
		s.record(rec)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	file, header, err := r.FormFile(reviewapi.FileField)
	if err != nil {
		s.record(rec)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file part in the request"})
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		s.record(rec)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Failed to read file: %v", err)})
		return
	}
	rec.Filename = header.Filename
	rec.Content = string(content)
	s.record(rec)

	s.mu.Lock()
	status, message := s.SubmitStatus, s.SubmitError
	s.mu.Unlock()
	if status != 0 {
		if message == "" {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, map[string]string{"error": message})
		return
	}

	s.mu.Lock()
	id := s.nextID()
	s.reports[id] = reviewapi.ReportData{
		ID:       id,
		Filename: header.Filename,
		RawCode:  string(content),
		Review:   s.Review,
	}
	summary := s.Review.ReviewSummary
	s.mu.Unlock()

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message":        "Code review initiated successfully. Report available.",
		"report_id":      id,
		"review_summary": summary,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, reviewapi.ReportPathPrefix)
	s.record(Request{Method: r.Method, Path: r.URL.Path, RequestID: r.Header.Get("X-Request-ID")})

	s.mu.Lock()
	status, message := s.ReportStatus, s.ReportError
	data, ok := s.reports[id]
	s.mu.Unlock()

	if status != 0 {
		if message == "" {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, map[string]string{"error": message})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("Report with ID '%s' not found.", id)})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
