// Package progress models the lifecycle of one resume-submission attempt as a
// fixed, strictly-ordered sequence of six named steps with derived percentage
// progress and human-readable status messages.
package progress

// Step identifies one phase of the resume-generation lifecycle.
type Step string

// The six steps, in fixed order. StepComplete is terminal-success; a separate
// error condition can be entered from any non-terminal state.
const (
	StepValidation        Step = "validation"
	StepAIEnhancement     Step = "ai_enhancement"
	StepTemplateRendering Step = "template_rendering"
	StepPDFGeneration     Step = "pdf_generation"
	StepEmailSending      Step = "email_sending"
	StepComplete          Step = "complete"
)

// stepOrder is the canonical step sequence used for percentage derivation.
var stepOrder = []Step{
	StepValidation,
	StepAIEnhancement,
	StepTemplateRendering,
	StepPDFGeneration,
	StepEmailSending,
	StepComplete,
}

// stepMessages are the fixed status messages shown for each step unless the
// caller supplies an override.
var stepMessages = map[Step]string{
	StepValidation:        "Validating your information...",
	StepAIEnhancement:     "Enhancing your content with AI...",
	StepTemplateRendering: "Applying your selected template...",
	StepPDFGeneration:     "Generating your PDF resume...",
	StepEmailSending:      "Sending resume to your email...",
	StepComplete:          "Resume generated successfully!",
}

// StepIndex returns the position of step in the fixed order, or -1 for an
// unknown step. Callers building a parallel step-indicator UI use this.
func StepIndex(step Step) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// Steps returns the step sequence in order.
func Steps() []Step {
	out := make([]Step, len(stepOrder))
	copy(out, stepOrder)
	return out
}

// percent derives the completion percentage for a step:
// floor(100 * (index+1) / len(steps)).
func percent(step Step) int {
	idx := StepIndex(step)
	if idx < 0 {
		return 0
	}
	return 100 * (idx + 1) / len(stepOrder)
}

// Message returns the fixed status message for a step.
func Message(step Step) string {
	return stepMessages[step]
}
