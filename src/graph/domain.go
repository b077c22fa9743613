package graph

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/dayam8696/Graph-Pharma/src/dataset"
)

// DomainPolicy derives the Y axis range from the data: the observed range widened by
// Margin on both sides, then rounded outward to a multiple of Step. Values outside a
// previously seen range extend the domain; nothing is ever clipped.
type DomainPolicy struct {
	Margin float64
	Step   float64
}

// DefaultDomainPolicy yields [80, 220] for the bundled body weight table.
func DefaultDomainPolicy() DomainPolicy { return DomainPolicy{Margin: 5, Step: 20} }

// Domain is a resolved Y axis range with its tick step.
type Domain struct {
	Min, Max, Step float64
}

// YDomain resolves the Y axis range for ds.
func YDomain(ds dataset.Dataset, p DomainPolicy) Domain {
	step := p.Step
	if step <= 0 || math.IsNaN(step) {
		step = 1
	}
	min, max, ok := ds.Bounds()
	if !ok {
		return Domain{Min: 0, Max: step, Step: step}
	}
	lo := math.Floor((min-p.Margin)/step) * step
	hi := math.Ceil((max+p.Margin)/step) * step
	if hi <= lo {
		hi = lo + step
	}
	return Domain{Min: lo, Max: hi, Step: step}
}

// Contains reports whether v is drawn inside the domain.
func (d Domain) Contains(v float64) bool { return v >= d.Min && v <= d.Max }

// Ticks returns one tick per step from Min to Max inclusive.
func (d Domain) Ticks() []chart.Tick {
	if d.Step <= 0 || d.Max < d.Min {
		return nil
	}
	n := int(math.Round((d.Max-d.Min)/d.Step)) + 1
	ticks := make([]chart.Tick, 0, n)
	for i := 0; i < n; i++ {
		v := round6(d.Min + float64(i)*d.Step)
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// categoryTicks places one tick per label at positions 1..n. go-chart takes the X
// range from the ticks, so the axis ticks add unlabeled bounds at 0.5 and n+0.5 to keep
// half a category of room before the first and after the last time point.
func categoryTicks(labels []string) (ticks, axis []chart.Tick) {
	ticks = make([]chart.Tick, 0, len(labels))
	for i, l := range labels {
		ticks = append(ticks, chart.Tick{Value: float64(i + 1), Label: l})
	}
	axis = make([]chart.Tick, 0, len(ticks)+2)
	axis = append(axis, chart.Tick{Value: 0.5})
	axis = append(axis, ticks...)
	axis = append(axis, chart.Tick{Value: float64(len(labels)) + 0.5})
	return ticks, axis
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case av >= 10:
		if v == math.Trunc(v) {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// FormatGrams renders a measurement the way it was recorded (no trailing zeros).
func FormatGrams(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
