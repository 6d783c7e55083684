package slider

import (
	"math"

	"PriceSlider/internal/model"
)

// HitInset is how far each handle's hit box extends beyond its frame.
const HitInset = 30.0

// HitTest decides which handle a touch at p grabs. ok is false when p misses
// both enlarged hit boxes. The nearer centre wins; on a tie, or when the right
// handle is nearer, the left handle still wins if the selection is pinned at
// the domain maximum with both handles stacked, so the user can pull left off
// a collapsed selection.
func HitTest(p model.Point, left, right model.Rect, pinnedAtMax bool) (h model.Handle, ok bool) {
	onLeft := left.Inset(-HitInset, -HitInset).Contains(p)
	onRight := right.Inset(-HitInset, -HitInset).Contains(p)
	if !onLeft && !onRight {
		return model.HandleNone, false
	}

	switch {
	case p.Distance(left.Center()) < p.Distance(right.Center()):
		return model.HandleLeft, true
	case pinnedAtMax && left.MidX() == right.MidX():
		return model.HandleLeft, true
	default:
		return model.HandleRight, true
	}
}

// BeginTracking starts a gesture at p. It returns false, leaving the engine
// idle, when the touch is not near either handle.
func (e *Engine) BeginTracking(p model.Point) bool {
	h, ok := HitTest(p, e.frames.LeftHandle, e.frames.RightHandle, e.upper == e.maxValue)
	if !ok {
		return false
	}
	e.tracking = h
	if e.hooks.trackingStarted != nil {
		e.hooks.trackingStarted(h)
	}
	return true
}

// ContinueTracking moves the active handle toward p and resolves constraints.
// It returns false when no gesture is in progress.
func (e *Engine) ContinueTracking(p model.Point) bool {
	if e.tracking == model.HandleNone {
		return false
	}

	candidate := e.Mapper().TouchValue(p.X)
	switch e.tracking {
	case model.HandleLeft:
		e.assignLower(math.Min(candidate, e.upper))
	case model.HandleRight:
		if candidate >= e.minValue {
			e.assignUpper(candidate)
		} else {
			e.assignUpper(math.Max(candidate, e.lower))
		}
	}

	e.resolve()
	return true
}

// EndTracking releases the active handle and applies any layout deferred
// during the drag.
func (e *Engine) EndTracking() {
	h := e.tracking
	if h == model.HandleNone {
		return
	}
	e.tracking = model.HandleNone
	if e.hooks.trackingEnded != nil {
		e.hooks.trackingEnded(h)
	}
	if e.layoutPending {
		e.layout()
	}
}
