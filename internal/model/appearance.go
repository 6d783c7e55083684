package model

// Appearance carries styling options through to the renderer. The engine only
// reads HandleDiameter and LineHeight; colours are opaque names.
type Appearance struct {
	TrackColor        string
	HighlightColor    string
	InitialColor      string // used for the whole line when the selection spans the full range
	HandleColor       string
	HandleDiameter    float64
	HandleBorderWidth float64
	LineHeight        float64
}
