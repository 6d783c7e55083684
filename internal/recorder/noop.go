package recorder

// NoopRecorder discards every notification.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordValueChange(_ *ValueChange) error { return nil }
func (n *NoopRecorder) RecordStepChange(_ *StepChange) error   { return nil }
func (n *NoopRecorder) RecordGesture(_ *GestureEvent) error    { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
