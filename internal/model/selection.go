package model

// Handle identifies which handle, if any, owns the current gesture.
type Handle int

const (
	HandleNone Handle = iota
	HandleLeft
	HandleRight
)

func (h Handle) String() string {
	switch h {
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	default:
		return "none"
	}
}

// Selection is the chosen sub-range in domain units.
type Selection struct {
	Lower float64
	Upper float64
}

// Width returns Upper - Lower.
func (s Selection) Width() float64 {
	return s.Upper - s.Lower
}

// SelectedIndex maps the selection to dataset positions.
type SelectedIndex struct {
	Lower int
	Upper int
}

// SelectedPrice is the dataset value at each selected index.
type SelectedPrice struct {
	Lower  int
	Higher int
}

// Snapshot is a read-only copy of the engine state after a resolution pass.
type Snapshot struct {
	MinValue  float64
	MaxValue  float64
	Selection Selection
	Index     SelectedIndex
	Price     SelectedPrice
	Tracking  Handle
}
