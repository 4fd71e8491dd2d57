package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepIndex(t *testing.T) {
	tests := []struct {
		step Step
		want int
	}{
		{StepValidation, 0},
		{StepAIEnhancement, 1},
		{StepTemplateRendering, 2},
		{StepPDFGeneration, 3},
		{StepEmailSending, 4},
		{StepComplete, 5},
		{Step("bogus"), -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StepIndex(tt.step), "StepIndex(%q)", tt.step)
	}
}

func TestTrackerStart(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()

	state := tracker.Snapshot()
	assert.True(t, state.IsProcessing)
	assert.Equal(t, StepValidation, state.CurrentStep)
	assert.Equal(t, 0, state.Progress)
	assert.Empty(t, state.Error)
	assert.False(t, state.Success)
	assert.Equal(t, "Validating your information...", state.Message)
}

func TestTrackerStartIsReentrant(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()
	tracker.Update(StepPDFGeneration, "")
	tracker.Start()

	state := tracker.Snapshot()
	assert.Equal(t, StepValidation, state.CurrentStep)
	assert.Equal(t, 0, state.Progress)
	assert.True(t, state.IsProcessing)
}

func TestTrackerUpdatePercentages(t *testing.T) {
	tests := []struct {
		step         Step
		wantProgress int
		wantMessage  string
	}{
		{StepValidation, 16, "Validating your information..."},
		{StepAIEnhancement, 33, "Enhancing your content with AI..."},
		{StepTemplateRendering, 50, "Applying your selected template..."},
		{StepPDFGeneration, 66, "Generating your PDF resume..."},
		{StepEmailSending, 83, "Sending resume to your email..."},
		{StepComplete, 100, "Resume generated successfully!"},
	}

	for _, tt := range tests {
		t.Run(string(tt.step), func(t *testing.T) {
			tracker := NewTracker()
			tracker.Start()
			tracker.Update(tt.step, "")

			state := tracker.Snapshot()
			assert.Equal(t, tt.step, state.CurrentStep)
			assert.Equal(t, tt.wantProgress, state.Progress)
			assert.Equal(t, tt.wantMessage, state.Message)
		})
	}
}

func TestTrackerUpdateComplete(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()
	tracker.Update(StepComplete, "")

	state := tracker.Snapshot()
	assert.Equal(t, 100, state.Progress)
	assert.False(t, state.IsProcessing)
	assert.True(t, state.Success)
}

func TestTrackerUpdateCustomMessage(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()
	tracker.Update(StepAIEnhancement, "Uploading your data... 40%")

	state := tracker.Snapshot()
	assert.True(t, state.IsProcessing)
	assert.Equal(t, "Uploading your data... 40%", state.Message)
}

func TestTrackerUpdateAllowsBackwardSteps(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()
	tracker.Update(StepPDFGeneration, "")
	tracker.Update(StepAIEnhancement, "")

	state := tracker.Snapshot()
	assert.Equal(t, StepAIEnhancement, state.CurrentStep)
	assert.Equal(t, 33, state.Progress)
}

func TestTrackerSetError(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()
	tracker.Update(StepPDFGeneration, "")
	tracker.SetError("boom")

	state := tracker.Snapshot()
	assert.False(t, state.IsProcessing)
	assert.Equal(t, "boom", state.Error)
	assert.False(t, state.Success)
	// The failing step stays visible.
	assert.Equal(t, StepPDFGeneration, state.CurrentStep)
	assert.Equal(t, 66, state.Progress)
}

func TestTrackerReset(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()
	tracker.Update(StepEmailSending, "")
	tracker.SetError("boom")
	tracker.Reset()

	assert.Equal(t, State{}, tracker.Snapshot())
}

func TestTrackerGenerationGuardsLateUpdates(t *testing.T) {
	tracker := NewTracker()
	tracker.Start()
	gen := tracker.Generation()

	tracker.Reset()
	tracker.Start()

	// A caller that captured gen before the reset can tell its attempt was
	// superseded and must drop late callbacks.
	assert.NotEqual(t, gen, tracker.Generation())
}

func TestTrackerSubscribe(t *testing.T) {
	tracker := NewTracker()

	var states []State
	unsubscribe := tracker.Subscribe(func(s State) {
		states = append(states, s)
	})

	tracker.Start()
	tracker.Update(StepAIEnhancement, "")
	unsubscribe()
	tracker.Update(StepComplete, "")

	require.Len(t, states, 2)
	assert.Equal(t, StepValidation, states[0].CurrentStep)
	assert.Equal(t, StepAIEnhancement, states[1].CurrentStep)
}

func TestSteps(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 6)
	assert.Equal(t, StepValidation, steps[0])
	assert.Equal(t, StepComplete, steps[5])

	// Mutating the returned slice does not affect the canonical order.
	steps[0] = StepComplete
	assert.Equal(t, StepValidation, Steps()[0])
}
