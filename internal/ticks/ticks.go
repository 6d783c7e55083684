// Package ticks derives the tick strip drawn under the track: where each tick
// sits and whether it falls inside the selected range.
package ticks

import (
	"iter"

	"PriceSlider/internal/model"
)

// TickWidth is the drawn width of a single tick.
const TickWidth = 3.0

// Source is the read side of the engine a Layer draws from. The layer never
// mutates it.
type Source interface {
	SelectedMinValue() float64
	SelectedMaxValue() float64
	MaxValue() float64
}

// Layer lays ticks out across its frame. Rects are relative to the frame origin.
type Layer struct {
	source Source
	count  int
	frame  model.Rect
}

// NewLayer creates a Layer reading selection state from src.
func NewLayer(src Source) *Layer {
	return &Layer{source: src}
}

// SetCount sets how many evenly spaced ticks are drawn.
func (l *Layer) SetCount(n int) { l.count = n }

// Count returns the number of ticks.
func (l *Layer) Count() int { return l.count }

// SetFrame positions the tick band inside the control.
func (l *Layer) SetFrame(r model.Rect) { l.frame = r }

// Frame returns the tick band rectangle.
func (l *Layer) Frame() model.Rect { return l.frame }

// Ticks returns the current tick strip. The selection is read when iteration
// starts, so the sequence can be ranged over again after every redraw.
func (l *Layer) Ticks() iter.Seq[model.Tick] {
	return func(yield func(model.Tick) bool) {
		if l.source == nil {
			return
		}
		sel := model.Selection{Lower: l.source.SelectedMinValue(), Upper: l.source.SelectedMaxValue()}
		for t := range Segment(l.count, l.frame.W, l.frame.H, l.source.MaxValue(), sel) {
			if !yield(t) {
				return
			}
		}
	}
}

// Segment lays count ticks across a band of the given size and classifies each
// against sel. Tick values are spread evenly over [0, maxValue]; the domain
// minimum is ignored.
func Segment(count int, width, height, maxValue float64, sel model.Selection) iter.Seq[model.Tick] {
	return func(yield func(model.Tick) bool) {
		if count <= 0 {
			return
		}
		if count == 1 {
			yield(model.Tick{
				Index:   0,
				Rect:    model.Rect{W: width, H: height},
				Value:   0,
				InRange: InRange(sel, 0),
			})
			return
		}

		stepDistance := width / float64(count-1)
		valuePerTick := maxValue / float64(count-1)
		for i := 0; i < count; i++ {
			x := float64(i) * stepDistance
			if i == count-1 {
				// keep the last tick inside the band
				x -= TickWidth
			}
			value := valuePerTick * float64(i)
			t := model.Tick{
				Index:   i,
				Rect:    model.Rect{X: x, W: TickWidth, H: height},
				Value:   value,
				InRange: InRange(sel, value),
			}
			if !yield(t) {
				return
			}
		}
	}
}

// InRange reports whether value lies inside sel, inclusive at both ends.
func InRange(sel model.Selection, value float64) bool {
	return sel.Lower <= value && value <= sel.Upper
}
