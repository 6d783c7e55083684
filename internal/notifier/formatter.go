package notifier

import (
	"fmt"
	"iter"
	"strings"

	"PriceSlider/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Tick glyphs differ so the strip reads the same with colour disabled.
const (
	InRangeGlyph  = "#"
	OutRangeGlyph = "-"
)

var (
	inRange  = color.New(color.FgGreen).SprintFunc()
	outRange = color.New(color.FgBlue).SprintFunc()
	label    = color.New(color.Bold).SprintFunc()
)

// FormatPrice renders a single bucket value with thousands separators.
func FormatPrice(v int) string {
	return humanize.Comma(int64(v)) + "$"
}

// FormatPriceLabel renders the selected price range, e.g. "500$ ~ 2,000$".
func FormatPriceLabel(p model.SelectedPrice) string {
	return FormatPrice(p.Lower) + " ~ " + FormatPrice(p.Higher)
}

// FormatTicks renders the tick strip as one glyph per tick, in order.
func FormatTicks(ticks iter.Seq[model.Tick]) string {
	var b strings.Builder
	for t := range ticks {
		if t.InRange {
			b.WriteString(inRange(InRangeGlyph))
		} else {
			b.WriteString(outRange(OutRangeGlyph))
		}
	}
	return b.String()
}

// FormatSnapshot formats the engine state for display.
func FormatSnapshot(s model.Snapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", label("Price:"), FormatPriceLabel(s.Price)))
	b.WriteString(fmt.Sprintf("Selection: %s ~ %s (of %s ~ %s)\n",
		humanize.Ftoa(s.Selection.Lower), humanize.Ftoa(s.Selection.Upper),
		humanize.Ftoa(s.MinValue), humanize.Ftoa(s.MaxValue)))
	b.WriteString(fmt.Sprintf("Index: %d ~ %d\n", s.Index.Lower, s.Index.Upper))
	if s.Tracking != model.HandleNone {
		b.WriteString(fmt.Sprintf("Dragging: %s\n", s.Tracking))
	}
	return b.String()
}

// FormatReport combines the snapshot and the tick strip.
func FormatReport(s model.Snapshot, ticks iter.Seq[model.Tick]) string {
	var b strings.Builder
	b.WriteString(FormatSnapshot(s))
	b.WriteString("Ticks: ")
	b.WriteString(FormatTicks(ticks))
	b.WriteString("\n")
	return b.String()
}
