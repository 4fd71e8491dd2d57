// Package pipeline orchestrates a resume submission from validation through
// email delivery, reporting progress after each step.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dchen/career-portal/internal/db"
	"github.com/dchen/career-portal/internal/email"
	"github.com/dchen/career-portal/internal/llm"
	"github.com/dchen/career-portal/internal/progress"
	"github.com/dchen/career-portal/internal/render"
	"github.com/dchen/career-portal/internal/types"
	"github.com/dchen/career-portal/internal/validation"
)

// Store persists attempt outcomes. *db.DB satisfies it; tests use fakes.
type Store interface {
	RecordStep(ctx context.Context, attemptID uuid.UUID, step, status, errMsg string, duration time.Duration) error
	SaveArtifact(ctx context.Context, attemptID uuid.UUID, pdf []byte) error
	CompleteAttempt(ctx context.Context, id uuid.UUID) error
	FailAttempt(ctx context.Context, id uuid.UUID, errMsg string) error
}

// Runner drives the submission pipeline. All dependencies are injected;
// a nil LLM skips AI enhancement and a nil Store skips persistence.
type Runner struct {
	LLM      llm.Client
	Renderer *render.Renderer
	PDF      render.PDFGenerator
	Mailer   email.Sender
	Store    Store
}

// Run executes the full submission pipeline for one attempt, updating the
// tracker as steps progress. Returns the first step error encountered.
func (r *Runner) Run(ctx context.Context, attemptID uuid.UUID, doc *types.ResumeDocument, recipient string, tracker *progress.Tracker) error {
	tracker.Start()

	// Step 1: validation
	tracker.Update(progress.StepValidation, "")
	err := r.step(ctx, attemptID, progress.StepValidation, func() error {
		result := validation.ValidateResume(doc)
		if !result.IsValid {
			return fmt.Errorf("resume has %d fields with errors", len(result.Errors))
		}
		return nil
	})
	if err != nil {
		return r.fail(ctx, attemptID, tracker, "Please fix the errors in your resume before submitting", err)
	}

	// Step 2: AI enhancement. Failures fall back to the original text inside
	// EnhanceDocument, so only context cancellation surfaces here.
	tracker.Update(progress.StepAIEnhancement, "")
	err = r.step(ctx, attemptID, progress.StepAIEnhancement, func() error {
		return EnhanceDocument(ctx, r.LLM, doc)
	})
	if err != nil {
		return r.fail(ctx, attemptID, tracker, "We could not enhance your resume, please try again", err)
	}

	// Step 3: template rendering
	tracker.Update(progress.StepTemplateRendering, "")
	var html string
	err = r.step(ctx, attemptID, progress.StepTemplateRendering, func() error {
		var renderErr error
		html, renderErr = r.Renderer.HTML(doc)
		return renderErr
	})
	if err != nil {
		return r.fail(ctx, attemptID, tracker, "We could not render your resume template", err)
	}

	// Step 4: PDF generation
	tracker.Update(progress.StepPDFGeneration, "")
	var pdf []byte
	err = r.step(ctx, attemptID, progress.StepPDFGeneration, func() error {
		var pdfErr error
		pdf, pdfErr = r.PDF.Generate(ctx, html)
		if pdfErr != nil {
			return pdfErr
		}
		if r.Store != nil {
			return r.Store.SaveArtifact(ctx, attemptID, pdf)
		}
		return nil
	})
	if err != nil {
		return r.fail(ctx, attemptID, tracker, "PDF generation failed, please try again", err)
	}

	// Step 5: email delivery
	tracker.Update(progress.StepEmailSending, "")
	err = r.step(ctx, attemptID, progress.StepEmailSending, func() error {
		body, textErr := render.PlainText(html)
		if textErr != nil {
			body = "Your resume is attached."
		}
		subject := fmt.Sprintf("Your resume, %s", doc.PersonalInfo.FullName)
		return r.Mailer.Send(recipient, subject, body, pdf)
	})
	if err != nil {
		return r.fail(ctx, attemptID, tracker, "We generated your resume but could not send it by email", err)
	}

	// Step 6: complete
	tracker.Update(progress.StepComplete, "")
	if r.Store != nil {
		if err := r.Store.CompleteAttempt(ctx, attemptID); err != nil {
			return fmt.Errorf("failed to mark attempt complete: %w", err)
		}
	}
	return nil
}

// step runs fn, recording the step transition and duration in the store.
func (r *Runner) step(ctx context.Context, attemptID uuid.UUID, step progress.Step, fn func() error) error {
	if r.Store != nil {
		_ = r.Store.RecordStep(ctx, attemptID, string(step), db.StepStatusInProgress, "", 0)
	}

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	if r.Store != nil {
		status := db.StepStatusCompleted
		errMsg := ""
		if err != nil {
			status = db.StepStatusFailed
			errMsg = err.Error()
		}
		_ = r.Store.RecordStep(ctx, attemptID, string(step), status, errMsg, elapsed)
	}
	return err
}

// fail records the terminal failure and reports the user-facing message.
func (r *Runner) fail(ctx context.Context, attemptID uuid.UUID, tracker *progress.Tracker, message string, err error) error {
	tracker.SetError(message)
	if r.Store != nil {
		_ = r.Store.FailAttempt(ctx, attemptID, err.Error())
	}
	return err
}
