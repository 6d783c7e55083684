package model

import "math"

// Point is a position in the control's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Size holds the container bounds the control is laid out in.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
// Negative values grow the rectangle.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// RectCenteredAt returns a square of the given side centred on c.
func RectCenteredAt(c Point, side float64) Rect {
	return Rect{X: c.X - side/2, Y: c.Y - side/2, W: side, H: side}
}

// Geometry is the pixel-space description of the track. It is derived from the
// container bounds and never holds domain state.
type Geometry struct {
	TrackStart     float64
	TrackEnd       float64
	TrackY         float64 // vertical centre of the track line
	HandleDiameter float64
}

// TrackWidth returns the horizontal extent of the track.
func (g Geometry) TrackWidth() float64 {
	return g.TrackEnd - g.TrackStart
}

// HandleRadius returns half the handle diameter.
func (g Geometry) HandleRadius() float64 {
	return g.HandleDiameter / 2
}

// Frames holds every rectangle a renderer needs to draw the control.
type Frames struct {
	Line        Rect
	Highlight   Rect // segment of the line between the two handles
	LeftHandle  Rect
	RightHandle Rect
	TickBand    Rect
}
