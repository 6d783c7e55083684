package recorder

import (
	"errors"
	"slices"
	"sync"
)

// ErrClosed is returned when recording to a closed MemoryRecorder.
var ErrClosed = errors.New("recorder closed")

// MemoryRecorder keeps every notification in memory, in arrival order.
type MemoryRecorder struct {
	mu       sync.Mutex
	closed   bool
	values   []ValueChange
	steps    []StepChange
	gestures []GestureEvent
}

func NewMemoryRecorder() *MemoryRecorder { return &MemoryRecorder{} }

func (r *MemoryRecorder) RecordValueChange(evt *ValueChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.values = append(r.values, *evt)
	return nil
}

func (r *MemoryRecorder) RecordStepChange(evt *StepChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.steps = append(r.steps, *evt)
	return nil
}

func (r *MemoryRecorder) RecordGesture(evt *GestureEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.gestures = append(r.gestures, *evt)
	return nil
}

func (r *MemoryRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// ValueChanges returns a copy of the recorded value changes.
func (r *MemoryRecorder) ValueChanges() []ValueChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.values)
}

// StepChanges returns a copy of the recorded step changes.
func (r *MemoryRecorder) StepChanges() []StepChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.steps)
}

// Gestures returns a copy of the recorded gesture events.
func (r *MemoryRecorder) Gestures() []GestureEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.gestures)
}

// Last returns the most recent value change, if any.
func (r *MemoryRecorder) Last() (ValueChange, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return ValueChange{}, false
	}
	return r.values[len(r.values)-1], true
}
