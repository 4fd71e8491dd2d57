package progress

import "sync"

// State is the observable progress of one submission attempt. The zero value
// is the idle state.
type State struct {
	IsProcessing bool   `json:"isProcessing"`
	CurrentStep  Step   `json:"currentStep,omitempty"`
	Progress     int    `json:"progress"`
	Error        string `json:"error,omitempty"`
	Success      bool   `json:"success"`
	Message      string `json:"processingMessage,omitempty"`
}

// Tracker records the claimed progress of one in-flight submission attempt.
// It is a dumb recorder, not a sequence enforcer: callers may report steps
// out of order or repeat them, and the tracker simply recomputes the derived
// percentage. All state is in-memory; one tracker serves one attempt, and
// concurrent attempts need separate trackers.
//
// The tracker is safe for concurrent use so a pipeline goroutine can drive it
// while an observer (SSE writer, poller) reads it.
type Tracker struct {
	mu         sync.Mutex
	state      State
	generation uint64
	subs       map[int]func(State)
	nextSubID  int
}

// NewTracker returns a tracker in the idle state.
func NewTracker() *Tracker {
	return &Tracker{subs: map[int]func(State){}}
}

// Start begins a new attempt: processing at the validation step with zero
// percent, no error, no success. Calling Start while already processing is
// allowed and simply resets to this state.
func (t *Tracker) Start() {
	t.mu.Lock()
	t.generation++
	t.state = State{
		IsProcessing: true,
		CurrentStep:  StepValidation,
		Progress:     0,
		Message:      Message(StepValidation),
	}
	t.notifyLocked()
}

// Update records the caller's claimed step. customMessage overrides the fixed
// step message when non-empty. Reporting StepComplete ends processing with
// success.
func (t *Tracker) Update(step Step, customMessage string) {
	t.mu.Lock()
	t.state.CurrentStep = step
	t.state.Progress = percent(step)
	if customMessage != "" {
		t.state.Message = customMessage
	} else {
		t.state.Message = Message(step)
	}
	if step == StepComplete {
		t.state.IsProcessing = false
		t.state.Success = true
	}
	t.notifyLocked()
}

// SetError marks the attempt failed. CurrentStep and Progress are left
// untouched so an observer can still show which step failed.
func (t *Tracker) SetError(message string) {
	t.mu.Lock()
	t.state.IsProcessing = false
	t.state.Error = message
	t.state.Success = false
	t.notifyLocked()
}

// Reset returns the tracker to the idle state unconditionally. Resetting does
// not cancel work already handed to an external service; callers should use
// Generation to discard late updates from a superseded attempt.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.generation++
	t.state = State{}
	t.notifyLocked()
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Generation returns a counter that increments on Start and Reset. A caller
// that captured the generation before launching external work can compare it
// afterwards to detect that the attempt was superseded.
func (t *Tracker) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}

// Subscribe registers fn to be called with a state copy after every mutation.
// The returned function removes the subscription.
func (t *Tracker) Subscribe(fn func(State)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextSubID
	t.nextSubID++
	t.subs[id] = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, id)
	}
}

// notifyLocked snapshots state, releases the lock and invokes subscribers.
// Callers must hold t.mu; it is released on return.
func (t *Tracker) notifyLocked() {
	state := t.state
	subs := make([]func(State), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}
