package slider

import (
	"slices"

	"PriceSlider/internal/model"

	"go.uber.org/zap"
)

// Option configures an Engine at construction time.
type Option func(*settings)

type hooks struct {
	valueChanged    func()
	stepChanged     func(h model.Handle, value float64)
	trackingStarted func(h model.Handle)
	trackingEnded   func(h model.Handle)
}

type settings struct {
	logger      *zap.Logger
	dataset     []int
	minValue    float64
	maxValue    float64
	selection   *model.Selection
	step        float64
	quantize    bool
	minDistance float64
	maxDistance float64
	tickCount   int
	appearance  model.Appearance
	bounds      model.Size
	hooks       hooks
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDataset supplies the ordered price buckets. The domain maximum becomes
// step*(len-1) and the selection spans the whole dataset.
func WithDataset(values []int) Option {
	return func(s *settings) { s.dataset = slices.Clone(values) }
}

// WithRange sets the selectable domain. Ignored for the maximum when a dataset is supplied.
func WithRange(minValue, maxValue float64) Option {
	return func(s *settings) {
		s.minValue = minValue
		s.maxValue = maxValue
	}
}

// WithSelection sets the initial selection. Ignored when a dataset is supplied.
func WithSelection(lower, upper float64) Option {
	return func(s *settings) { s.selection = &model.Selection{Lower: lower, Upper: upper} }
}

// WithStep sets the quantization unit.
func WithStep(step float64) Option {
	return func(s *settings) { s.step = step }
}

// WithQuantization turns step snapping on or off.
func WithQuantization(enabled bool) Option {
	return func(s *settings) { s.quantize = enabled }
}

// WithMinDistance sets the smallest allowed gap between the handles.
func WithMinDistance(d float64) Option {
	return func(s *settings) { s.minDistance = d }
}

// WithMaxDistance sets the largest allowed gap between the handles.
func WithMaxDistance(d float64) Option {
	return func(s *settings) { s.maxDistance = d }
}

// WithTickCount overrides the number of ticks, which otherwise follows the dataset length.
func WithTickCount(n int) Option {
	return func(s *settings) { s.tickCount = n }
}

// WithAppearance sets styling. Zero sizes fall back to the defaults.
func WithAppearance(a model.Appearance) Option {
	return func(s *settings) { s.appearance = a }
}

// WithBounds sets the container size used for layout.
func WithBounds(width, height float64) Option {
	return func(s *settings) { s.bounds = model.Size{Width: width, Height: height} }
}

// OnValueChanged registers the owner notification fired after every resolved move.
func OnValueChanged(fn func()) Option {
	return func(s *settings) { s.hooks.valueChanged = fn }
}

// OnStepChanged registers the callback fired when snapping moves a handle to a new step.
// Hosts use it to trigger selection feedback.
func OnStepChanged(fn func(h model.Handle, value float64)) Option {
	return func(s *settings) { s.hooks.stepChanged = fn }
}

// OnTrackingStarted registers the callback fired when a gesture grabs a handle.
func OnTrackingStarted(fn func(h model.Handle)) Option {
	return func(s *settings) { s.hooks.trackingStarted = fn }
}

// OnTrackingEnded registers the callback fired when a gesture releases a handle.
func OnTrackingEnded(fn func(h model.Handle)) Option {
	return func(s *settings) { s.hooks.trackingEnded = fn }
}
