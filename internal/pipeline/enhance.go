package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dchen/career-portal/internal/llm"
	"github.com/dchen/career-portal/internal/types"
)

// maxConcurrentEnhancements bounds parallel LLM calls per document.
const maxConcurrentEnhancements = 4

const enhanceDescriptionPrompt = `You are polishing a resume work-experience description.
Rewrite the text below to be clear, professional, and achievement-oriented.
Keep every fact; do not invent numbers, employers, or technologies.
Return only the rewritten text, no preamble.

Position: %s at %s

Description:
%s`

const enhanceAchievementPrompt = `You are polishing a resume achievement.
Rewrite the text below to be concise and achievement-oriented.
Keep every fact; do not invent metrics. Return only the rewritten text.

Achievement:
%s`

// guardUserText prepares user-submitted text for prompt embedding: strips
// obvious injection patterns, logs anything suspicious, and wraps the result
// in quoted-content delimiters.
func guardUserText(text, source string) string {
	llm.LogInjectionWarning(llm.CheckInjectionHeuristics(text), source)
	return llm.QuoteUserContent(llm.StripInjectionAttempts(text))
}

// EnhanceDocument rewrites work-experience descriptions and achievements
// in place using the LLM. Individual failures keep the original text, so
// the document is always usable afterwards. A nil client is a no-op.
func EnhanceDocument(ctx context.Context, client llm.Client, doc *types.ResumeDocument) error {
	if client == nil || doc == nil {
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEnhancements)

	for i := range doc.WorkExperience {
		exp := &doc.WorkExperience[i]
		if strings.TrimSpace(exp.Description) == "" {
			continue
		}
		g.Go(func() error {
			prompt := fmt.Sprintf(enhanceDescriptionPrompt, exp.Position, exp.Company, guardUserText(exp.Description, "work experience description"))
			enhanced, err := client.GenerateContent(gCtx, prompt, llm.TierStandard)
			if err != nil || strings.TrimSpace(enhanced) == "" {
				return nil // keep original text
			}
			exp.Description = strings.TrimSpace(enhanced)
			return nil
		})
	}

	for i := range doc.Achievements {
		ach := &doc.Achievements[i]
		if strings.TrimSpace(ach.Body()) == "" {
			continue
		}
		g.Go(func() error {
			prompt := fmt.Sprintf(enhanceAchievementPrompt, guardUserText(ach.Body(), "achievement"))
			enhanced, err := client.GenerateContent(gCtx, prompt, llm.TierLite)
			if err != nil || strings.TrimSpace(enhanced) == "" {
				return nil
			}
			ach.Text = strings.TrimSpace(enhanced)
			return nil
		})
	}

	// Goroutines only return nil today; Wait still propagates gCtx
	// cancellation semantics if that changes.
	return g.Wait()
}
