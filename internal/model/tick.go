package model

// Tick is one render instruction of the tick strip.
type Tick struct {
	Index   int
	Rect    Rect
	Value   float64
	InRange bool
}
