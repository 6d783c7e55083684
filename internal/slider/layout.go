package slider

import "PriceSlider/internal/model"

const (
	// SidePadding is the horizontal inset of the track from the container edges.
	SidePadding = 16.0
	// IntrinsicHeight is the natural height of the control.
	IntrinsicHeight = 65.0
)

// SetBounds records a new container size. While a handle is being dragged the
// layout is deferred until the gesture ends.
func (e *Engine) SetBounds(width, height float64) {
	e.bounds = model.Size{Width: width, Height: height}
	if e.tracking != model.HandleNone {
		e.layoutPending = true
		return
	}
	e.layout()
}

// SetAppearance replaces the styling options and lays the control out again.
// Like SetBounds, it takes effect when a drag in progress ends.
func (e *Engine) SetAppearance(a model.Appearance) {
	a = withAppearanceDefaults(a)
	if e.tracking != model.HandleNone {
		e.nextAppear = &a
		e.layoutPending = true
		return
	}
	e.appearance = a
	e.layout()
}

func (e *Engine) Bounds() model.Size           { return e.bounds }
func (e *Engine) Geometry() model.Geometry     { return e.geometry }
func (e *Engine) Frames() model.Frames         { return e.frames }
func (e *Engine) Appearance() model.Appearance { return e.appearance }

// LineColors returns the colours for the whole track and for the segment
// between the handles. When an initial colour is configured and the selection
// spans the full range, both use it.
func (e *Engine) LineColors() (track, between string) {
	a := e.appearance
	if a.InitialColor != "" && e.IsFullRange() {
		return a.InitialColor, a.InitialColor
	}
	return a.TrackColor, a.HighlightColor
}

// HandleCenter returns the centre of the given handle.
func (e *Engine) HandleCenter(h model.Handle) model.Point {
	if h == model.HandleRight {
		return e.frames.RightHandle.Center()
	}
	return e.frames.LeftHandle.Center()
}

// TouchPoint returns where a drag must move to put a handle on value.
func (e *Engine) TouchPoint(value float64) model.Point {
	return model.Point{X: e.Mapper().TouchX(value), Y: e.geometry.TrackY}
}

func (e *Engine) layout() {
	e.layoutPending = false
	if e.nextAppear != nil {
		e.appearance = *e.nextAppear
		e.nextAppear = nil
	}
	e.geometry = model.Geometry{
		TrackStart:     SidePadding,
		TrackEnd:       e.bounds.Width - SidePadding,
		TrackY:         e.bounds.Height / 2,
		HandleDiameter: e.appearance.HandleDiameter,
	}
	e.ticks.SetFrame(model.Rect{
		X: SidePadding,
		Y: e.bounds.Height / 3,
		W: e.geometry.TrackWidth(),
		H: e.bounds.Height / 3,
	})
	e.ticks.SetCount(e.effectiveTickCount())
	e.layoutFrames()
}

// layoutFrames positions the handles and the highlighted segment for the
// current selection.
func (e *Engine) layoutFrames() {
	m := e.Mapper()
	g := e.geometry
	lh := e.appearance.LineHeight

	line := model.Rect{X: g.TrackStart, Y: g.TrackY - lh/2, W: g.TrackWidth(), H: lh}
	left := model.RectCenteredAt(model.Point{X: m.PixelPosition(e.lower), Y: line.MidY()}, g.HandleDiameter)
	right := model.RectCenteredAt(model.Point{X: m.PixelPosition(e.upper), Y: line.MidY()}, g.HandleDiameter)

	e.frames = model.Frames{
		Line:        line,
		Highlight:   model.Rect{X: left.MidX(), Y: line.Y, W: right.MidX() - left.MidX(), H: lh},
		LeftHandle:  left,
		RightHandle: right,
		TickBand:    e.ticks.Frame(),
	}
}

func withAppearanceDefaults(a model.Appearance) model.Appearance {
	if a.HandleDiameter <= 0 {
		a.HandleDiameter = DefaultHandleDiameter
	}
	if a.LineHeight <= 0 {
		a.LineHeight = DefaultLineHeight
	}
	return a
}
