package recorder

import "PriceSlider/internal/model"

// ValueChange holds the engine state after a value-changed notification.
type ValueChange struct {
	Selection model.Selection
	Index     model.SelectedIndex
	Price     model.SelectedPrice
	Tracking  model.Handle
}

// StepChange records a handle crossing onto a new quantized value.
type StepChange struct {
	Handle model.Handle
	Value  float64
}

// GestureEvent records the start or end of a drag.
type GestureEvent struct {
	Handle model.Handle
	Phase  string // "start" or "end"
}

// Recorder receives the notifications a slider emits to its owner.
type Recorder interface {
	RecordValueChange(evt *ValueChange) error
	RecordStepChange(evt *StepChange) error
	RecordGesture(evt *GestureEvent) error
	Close() error
}
