package calculator

import "PriceSlider/internal/model"

// Mapper converts between domain values and pixel positions along the track.
// The zero value maps everything to the track start.
type Mapper struct {
	MinValue float64
	MaxValue float64
	Geometry model.Geometry
}

// NewMapper creates a Mapper for the given domain range and track geometry.
func NewMapper(minValue, maxValue float64, g model.Geometry) Mapper {
	return Mapper{MinValue: minValue, MaxValue: maxValue, Geometry: g}
}

// PercentageAlongTrack returns where value sits within [MinValue, MaxValue].
// A degenerate domain (MinValue >= MaxValue) has no extent and always yields 0.
// The result is not clamped, so values outside the domain map outside [0, 1].
func (m Mapper) PercentageAlongTrack(value float64) float64 {
	if m.MinValue >= m.MaxValue {
		return 0
	}
	return (value - m.MinValue) / (m.MaxValue - m.MinValue)
}

// PixelPosition returns the x coordinate of value on the track.
func (m Mapper) PixelPosition(value float64) float64 {
	return m.Geometry.TrackStart + m.PercentageAlongTrack(value)*m.Geometry.TrackWidth()
}

// DomainValue is the inverse of PixelPosition.
func (m Mapper) DomainValue(x float64) float64 {
	width := m.Geometry.TrackWidth()
	if width <= 0 {
		return m.MinValue
	}
	return m.MinValue + (x-m.Geometry.TrackStart)/width*(m.MaxValue-m.MinValue)
}

// TouchValue converts a touch x coordinate into a candidate value for the
// dragged handle. The handle radius is subtracted so the finger drives the
// handle's centre rather than its leading edge.
func (m Mapper) TouchValue(x float64) float64 {
	return m.DomainValue(x - m.Geometry.HandleRadius())
}

// TouchX is the inverse of TouchValue: the x a touch must land on to select value.
func (m Mapper) TouchX(value float64) float64 {
	return m.PixelPosition(value) + m.Geometry.HandleRadius()
}
