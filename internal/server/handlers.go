package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dchen/career-portal/internal/db"
	"github.com/dchen/career-portal/internal/progress"
	"github.com/dchen/career-portal/internal/schemas"
	"github.com/dchen/career-portal/internal/server/middleware"
	"github.com/dchen/career-portal/internal/types"
	"github.com/dchen/career-portal/internal/validation"
)

// maxDocumentBytes bounds the size of an uploaded resume document.
const maxDocumentBytes = 1 << 20

// decodeDocument reads and shape-checks a resume document from the request
// body. Schema errors are reported per field; nil doc means the response
// was already written.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request) *types.ResumeDocument {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return nil
	}

	if err := schemas.ValidateResumeDocument(raw); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  "invalid document shape",
				"fields": schemaErr.Errors,
			})
			return nil
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return nil
	}
	return &doc
}

// handleValidate runs the full rule set over a document and returns the
// summary: errors, warnings, completion score and recommendations.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	doc := s.decodeDocument(w, r)
	if doc == nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, validation.Summarize(doc))
}

// handleScore returns just the completion score for a document.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	doc := s.decodeDocument(w, r)
	if doc == nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int{
		"completionScore": validation.CompletionScore(doc),
	})
}

// handleTemplates lists the available resume templates.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{
		"templates": s.renderer.TemplateNames(),
	})
}

// handleGenerate runs the submission pipeline for an authenticated user,
// streaming progress states over SSE as the steps advance.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	doc := s.decodeDocument(w, r)
	if doc == nil {
		return
	}

	attempt, err := s.db.CreateAttempt(r.Context(), userID, doc.SelectedTemplate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to create attempt")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	tracker := progress.NewTracker()
	unsubscribe := tracker.Subscribe(func(state progress.State) {
		_ = sse.WriteEvent("progress", state)
	})
	defer unsubscribe()

	if err := s.runner.Run(r.Context(), attempt.ID, doc, doc.PersonalInfo.Email, tracker); err != nil {
		sse.WriteError(tracker.Snapshot().Error)
		sse.WriteComplete(attempt.ID.String(), db.AttemptStatusFailed)
		return
	}

	sse.WriteComplete(attempt.ID.String(), db.AttemptStatusCompleted)
}

// handleGetAttempt returns an attempt with its recorded steps.
func (s *Server) handleGetAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	attemptID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid attempt id")
		return
	}

	attempt, err := s.db.GetAttempt(r.Context(), attemptID)
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "attempt not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load attempt")
		return
	}
	// Attempts are scoped to their owner
	if attempt.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "attempt not found")
		return
	}

	steps, err := s.db.ListSteps(r.Context(), attemptID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load steps")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"attempt": attempt,
		"steps":   steps,
	})
}

// handleGetAttemptPDF serves the generated PDF for a completed attempt.
func (s *Server) handleGetAttemptPDF(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	attemptID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid attempt id")
		return
	}

	attempt, err := s.db.GetAttempt(r.Context(), attemptID)
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "attempt not found")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load attempt")
		return
	}
	if attempt.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "attempt not found")
		return
	}

	pdf, err := s.db.GetArtifact(r.Context(), attemptID)
	if errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, http.StatusNotFound, "no PDF generated for this attempt")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
