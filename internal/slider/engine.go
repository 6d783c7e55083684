// Package slider implements the range selection engine behind a dual-handle
// price slider: domain state, constraint resolution, handle hit testing and
// the geometry a renderer needs. All methods run on the caller's goroutine;
// the engine is not safe for concurrent use.
package slider

import (
	"iter"
	"math"
	"slices"

	"PriceSlider/internal/calculator"
	"PriceSlider/internal/model"
	"PriceSlider/internal/ticks"

	"go.uber.org/zap"
)

const (
	DefaultStep           = 20.0
	DefaultMinValue       = 0.0
	DefaultMaxValue       = 100.0
	DefaultHandleDiameter = 25.0
	DefaultLineHeight     = 2.0
)

// Engine owns the domain range, dataset, selection, step and distance
// constraints. Every mutation runs a resolution pass before returning.
type Engine struct {
	minValue    float64
	maxValue    float64
	lower       float64
	upper       float64
	step        float64
	quantize    bool
	minDistance float64
	maxDistance float64

	dataset   []int
	index     model.SelectedIndex
	price     model.SelectedPrice
	tickCount int

	// last quantized value per handle, for step-changed detection
	lastStep [2]float64
	seenStep [2]bool

	tracking      model.Handle
	bounds        model.Size
	layoutPending bool
	geometry      model.Geometry
	frames        model.Frames
	appearance    model.Appearance
	nextAppear    *model.Appearance
	ticks         *ticks.Layer

	log   *zap.Logger
	hooks hooks
}

// New creates an Engine and runs the initial resolution pass.
func New(opts ...Option) *Engine {
	s := &settings{
		logger:      zap.NewNop(),
		minValue:    DefaultMinValue,
		maxValue:    DefaultMaxValue,
		step:        DefaultStep,
		quantize:    true,
		maxDistance: math.Inf(1),
	}
	for _, opt := range opts {
		opt(s)
	}

	e := &Engine{
		minValue:    s.minValue,
		maxValue:    s.maxValue,
		step:        coerceStep(s.step),
		quantize:    s.quantize,
		minDistance: coerceMinDistance(s.minDistance),
		maxDistance: coerceMaxDistance(s.maxDistance),
		tickCount:   max(s.tickCount, 0),
		bounds:      s.bounds,
		appearance:  withAppearanceDefaults(s.appearance),
		log:         s.logger,
		hooks:       s.hooks,
	}
	e.ticks = ticks.NewLayer(e)

	if len(s.dataset) > 0 {
		e.applyDataset(s.dataset)
	} else {
		sel := model.Selection{Lower: e.minValue, Upper: e.maxValue}
		if s.selection != nil {
			sel = *s.selection
		}
		e.assignLower(sel.Lower)
		e.assignUpper(sel.Upper)
	}

	e.layout()
	e.resolve()
	return e
}

// SetDataset replaces the price buckets, resets the domain maximum to
// step*(len-1) and selects the full range. An empty dataset clears the
// buckets and the derived price but leaves the range alone.
func (e *Engine) SetDataset(values []int) model.Snapshot {
	if len(values) == 0 {
		e.dataset = nil
		e.index = model.SelectedIndex{}
		e.price = model.SelectedPrice{}
		e.log.Debug("dataset cleared")
		e.resolve()
		return e.Snapshot()
	}
	e.applyDataset(slices.Clone(values))
	e.resolve()
	return e.Snapshot()
}

func (e *Engine) applyDataset(values []int) {
	e.dataset = values
	e.maxValue = e.step * float64(len(values)-1)
	e.index = model.SelectedIndex{Lower: 0, Upper: len(values) - 1}
	e.assignUpper(e.maxValue)
	e.assignLower(e.minValue)
	e.updatePrice()
	e.log.Debug("dataset replaced",
		zap.Int("buckets", len(values)),
		zap.Float64("max_value", e.maxValue))
}

// SetMinValue changes the lower domain bound.
func (e *Engine) SetMinValue(v float64) model.Snapshot {
	e.minValue = v
	e.warnIfInverted()
	e.resolve()
	return e.Snapshot()
}

// SetMaxValue changes the upper domain bound.
func (e *Engine) SetMaxValue(v float64) model.Snapshot {
	e.maxValue = v
	e.warnIfInverted()
	e.resolve()
	return e.Snapshot()
}

// SetStep changes the quantization unit. A non-positive step falls back to DefaultStep.
// With a dataset the domain maximum is re-derived and the full range selected.
func (e *Engine) SetStep(step float64) model.Snapshot {
	e.step = coerceStep(step)
	if len(e.dataset) > 0 {
		e.applyDataset(e.dataset)
	}
	e.resolve()
	return e.Snapshot()
}

// SetQuantizationEnabled toggles step snapping.
func (e *Engine) SetQuantizationEnabled(enabled bool) model.Snapshot {
	e.quantize = enabled
	e.resolve()
	return e.Snapshot()
}

// SetMinDistance sets the smallest allowed handle gap. Negative values become 0.
func (e *Engine) SetMinDistance(d float64) model.Snapshot {
	e.minDistance = coerceMinDistance(d)
	e.resolve()
	return e.Snapshot()
}

// SetMaxDistance sets the largest allowed handle gap. Negative values remove the limit.
func (e *Engine) SetMaxDistance(d float64) model.Snapshot {
	e.maxDistance = coerceMaxDistance(d)
	e.resolve()
	return e.Snapshot()
}

// SetSelectedMinValue moves the lower handle. The value is clamped to the
// domain minimum but not to the upper handle; resolution restores ordering.
func (e *Engine) SetSelectedMinValue(v float64) model.Snapshot {
	e.assignLower(v)
	e.resolve()
	return e.Snapshot()
}

// SetSelectedMaxValue moves the upper handle, clamped to the domain maximum.
func (e *Engine) SetSelectedMaxValue(v float64) model.Snapshot {
	e.assignUpper(v)
	e.resolve()
	return e.Snapshot()
}

// SetSelectedRange moves both handles in one resolution pass.
func (e *Engine) SetSelectedRange(lower, upper float64) model.Snapshot {
	e.assignLower(lower)
	e.assignUpper(upper)
	e.resolve()
	return e.Snapshot()
}

// SetTickCount overrides the tick count. Zero makes it follow the dataset length.
func (e *Engine) SetTickCount(n int) model.Snapshot {
	e.tickCount = max(n, 0)
	e.ticks.SetCount(e.effectiveTickCount())
	return e.Snapshot()
}

// resolve enforces quantization, distance constraints and domain bounds, in
// that order, then refreshes the frames and notifies the owner while a drag is
// active. It writes through assignLower/assignUpper, which never call back
// into resolve.
func (e *Engine) resolve() {
	if e.quantize && e.step > 0 {
		e.assignLower(calculator.Quantize(e.lower, e.step))
		e.noteStep(model.HandleLeft, e.lower)
		e.assignUpper(calculator.Quantize(e.upper, e.step))
		e.noteStep(model.HandleRight, e.upper)
	}

	diff := e.upper - e.lower
	switch {
	case diff < e.minDistance:
		e.pushInactive(e.minDistance)
	case diff > e.maxDistance:
		e.pushInactive(e.maxDistance)
	}

	e.clamp()

	e.ticks.SetCount(e.effectiveTickCount())
	e.layoutFrames()

	if e.tracking != model.HandleNone && e.hooks.valueChanged != nil {
		e.hooks.valueChanged()
	}
}

// pushInactive moves the handle opposite the dragged one so the gap equals
// distance. Nothing moves while idle.
func (e *Engine) pushInactive(distance float64) {
	switch e.tracking {
	case model.HandleLeft:
		e.assignLower(e.upper - distance)
	case model.HandleRight:
		e.assignUpper(e.lower + distance)
	}
}

func (e *Engine) clamp() {
	lower, upper := e.lower, e.upper
	if lower < e.minValue {
		lower = e.minValue
	}
	if upper > e.maxValue {
		upper = e.maxValue
	}
	if e.minValue <= e.maxValue {
		lower = math.Min(lower, e.maxValue)
		upper = math.Max(upper, e.minValue)
		if lower > upper {
			if e.tracking == model.HandleRight {
				lower = upper
			} else {
				upper = lower
			}
		}
	}
	if lower != e.lower {
		e.assignLower(lower)
	}
	if upper != e.upper {
		e.assignUpper(upper)
	}
}

// assignLower stores the lower value, clamped to the domain minimum, and
// re-derives the lower index.
func (e *Engine) assignLower(v float64) {
	if v < e.minValue || math.IsNaN(v) {
		v = e.minValue
	}
	e.lower = v
	if idx, ok := calculator.ToIndex(v, e.step, len(e.dataset)); ok {
		e.index.Lower = idx
		e.updatePrice()
	} else if len(e.dataset) > 0 {
		e.log.Debug("lower index update rejected", zap.Float64("value", v))
	}
}

// assignUpper stores the upper value, clamped to the domain maximum, and
// re-derives the upper index.
func (e *Engine) assignUpper(v float64) {
	if v > e.maxValue || math.IsNaN(v) {
		v = e.maxValue
	}
	e.upper = v
	if idx, ok := calculator.ToIndex(v, e.step, len(e.dataset)); ok {
		e.index.Upper = idx
		e.updatePrice()
	} else if len(e.dataset) > 0 {
		e.log.Debug("upper index update rejected", zap.Float64("value", v))
	}
}

func (e *Engine) updatePrice() {
	if len(e.dataset) == 0 {
		return
	}
	e.price = model.SelectedPrice{
		Lower:  e.dataset[e.index.Lower],
		Higher: e.dataset[e.index.Upper],
	}
}

func (e *Engine) noteStep(h model.Handle, v float64) {
	i := int(h) - 1
	changed := e.seenStep[i] && e.lastStep[i] != v
	e.lastStep[i] = v
	e.seenStep[i] = true
	if !changed {
		return
	}
	e.log.Debug("step changed", zap.Stringer("handle", h), zap.Float64("value", v))
	if e.hooks.stepChanged != nil {
		e.hooks.stepChanged(h, v)
	}
}

func (e *Engine) effectiveTickCount() int {
	if e.tickCount > 0 {
		return e.tickCount
	}
	return len(e.dataset)
}

func (e *Engine) warnIfInverted() {
	if e.minValue > e.maxValue {
		e.log.Warn("domain range inverted",
			zap.Float64("min_value", e.minValue),
			zap.Float64("max_value", e.maxValue))
	}
}

// MinValue returns the lower domain bound.
func (e *Engine) MinValue() float64 { return e.minValue }

// MaxValue returns the upper domain bound.
func (e *Engine) MaxValue() float64 { return e.maxValue }

// SelectedMinValue returns the lower handle value.
func (e *Engine) SelectedMinValue() float64 { return e.lower }

// SelectedMaxValue returns the upper handle value.
func (e *Engine) SelectedMaxValue() float64 { return e.upper }

func (e *Engine) Selection() model.Selection {
	return model.Selection{Lower: e.lower, Upper: e.upper}
}

func (e *Engine) SelectedIndex() model.SelectedIndex { return e.index }

// SelectedPrice returns the dataset values at the selected indices.
func (e *Engine) SelectedPrice() model.SelectedPrice { return e.price }

func (e *Engine) Step() float64             { return e.step }
func (e *Engine) QuantizationEnabled() bool { return e.quantize }
func (e *Engine) MinDistance() float64      { return e.minDistance }
func (e *Engine) MaxDistance() float64      { return e.maxDistance }
func (e *Engine) Tracking() model.Handle    { return e.tracking }
func (e *Engine) Dataset() []int            { return slices.Clone(e.dataset) }
func (e *Engine) TickCount() int            { return e.effectiveTickCount() }

// IsFullRange reports whether the selection spans the whole domain.
func (e *Engine) IsFullRange() bool {
	return e.lower == e.minValue && e.upper == e.maxValue
}

// Ticks returns the tick strip for the current selection.
func (e *Engine) Ticks() iter.Seq[model.Tick] {
	return e.ticks.Ticks()
}

// Mapper returns a value mapper for the current range and geometry.
func (e *Engine) Mapper() calculator.Mapper {
	return calculator.NewMapper(e.minValue, e.maxValue, e.geometry)
}

// Snapshot copies the externally visible state.
func (e *Engine) Snapshot() model.Snapshot {
	return model.Snapshot{
		MinValue:  e.minValue,
		MaxValue:  e.maxValue,
		Selection: e.Selection(),
		Index:     e.index,
		Price:     e.price,
		Tracking:  e.tracking,
	}
}

func coerceStep(step float64) float64 {
	if step <= 0 || math.IsNaN(step) {
		return DefaultStep
	}
	return step
}

func coerceMinDistance(d float64) float64 {
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return d
}

func coerceMaxDistance(d float64) float64 {
	if d < 0 || math.IsNaN(d) {
		return math.Inf(1)
	}
	return d
}
