package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/jobmarket-insights/internal/pipeline"
	"github.com/jonathan/jobmarket-insights/internal/tracker"
)

// AskRequest represents the request body for /ask.
type AskRequest struct {
	Question string `json:"question" validate:"required,min=1"`
}

// AskResponse represents the response for /ask.
type AskResponse struct {
	Answer    string `json:"answer"`
	Intent    string `json:"intent"`
	Role      string `json:"role,omitempty"`
	Level     string `json:"level,omitempty"`
	Statistic string `json:"statistic,omitempty"`
}

// TicketRequest represents the request body for /tickets.
type TicketRequest struct {
	Title string `json:"title" validate:"required,min=1"`
	Body  string `json:"body" validate:"required,min=1"`
}

// TicketResponse represents the response for /tickets.
type TicketResponse struct {
	URL string `json:"url"`
}

// HighlightsResponse summarizes the dataset vocabulary.
type HighlightsResponse struct {
	Records          int      `json:"records"`
	ExperienceLevels []string `json:"experience_levels"`
	JobRoles         []string `json:"job_roles"`
}

// handleAsk runs the query pipeline on a question.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, qc, err := pipeline.Answer(r.Context(), s.ds, s.llm, req.Question)
	if err != nil {
		log.Printf("pipeline failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to process question")
		return
	}

	s.jsonResponse(w, http.StatusOK, AskResponse{
		Answer:    answer,
		Intent:    string(qc.Intent),
		Role:      qc.Role,
		Level:     qc.Level,
		Statistic: qc.Statistic,
	})
}

// handleCreateTicket files a support ticket against the issue tracker.
func (s *Server) handleCreateTicket(w http.ResponseWriter, r *http.Request) {
	var req TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "both title and body are required")
		return
	}

	url, err := s.tracker.CreateIssue(r.Context(), req.Title, req.Body)
	if err != nil {
		log.Printf("ticket creation failed: %v", err)
		if errors.Is(err, tracker.ErrMissingCredentials) {
			s.errorResponse(w, http.StatusServiceUnavailable, "ticket tracker is not configured")
			return
		}
		s.errorResponse(w, http.StatusBadGateway, "failed to create ticket")
		return
	}

	s.jsonResponse(w, http.StatusCreated, TicketResponse{URL: url})
}

// handleExamples returns the canned example questions.
func (s *Server) handleExamples(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{"examples": pipeline.ExampleQuestions})
}

// handleHighlights returns the dataset vocabulary summary.
func (s *Server) handleHighlights(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HighlightsResponse{
		Records:          s.ds.Len(),
		ExperienceLevels: pipeline.HighlightLevels,
		JobRoles:         pipeline.HighlightRoles,
	})
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
